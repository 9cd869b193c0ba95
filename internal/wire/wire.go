// internal/wire/wire.go
package wire

import (
	"net/http"

	"shopkart/internal/adaptor"
	"shopkart/internal/data/repository"
	"shopkart/internal/usecase"
	"shopkart/pkg/mailer"
	"shopkart/pkg/middleware"
	"shopkart/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and the router
func Wiring(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // cookie-based sessions need this
		MaxAge:           300,
	}))

	wireAuth(r, handler.Auth, config, logger)
	wireMe(r, handler, repo, config, logger)

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Soft session probe - never 401s, returns {"user": null} when anonymous
	r.With(middleware.MaybeUser(repo.User, config.JWT, logger)).
		Get("/api/session", handler.User.Session)

	return r
}
