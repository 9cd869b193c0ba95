// main.go
package main

import (
	"context"
	"log"
	"time"

	"shopkart/cmd"
	"shopkart/internal/data/repository"
	"shopkart/internal/wire"
	"shopkart/pkg/database"
	"shopkart/pkg/mailer"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// SMTP transport, constructed once and injected
	mail := mailer.NewSMTPMailer(config.SMTP, logger)

	// Sweep expired signup tokens in the background so abandoned signups
	// don't pile up
	go sweepSignupTokens(repos.Signup, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func sweepSignupTokens(signupRepo repository.SignupRepository, logger *zap.Logger) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		removed, err := signupRepo.DeleteExpired(ctx)
		cancel()

		if err != nil {
			logger.Warn("Signup token sweep failed", zap.Error(err))
			continue
		}
		if removed > 0 {
			logger.Info("Swept expired signup tokens", zap.Int64("removed", removed))
		}
	}
}
