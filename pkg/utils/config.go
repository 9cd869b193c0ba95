package utils

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	SMTP     SMTPConfig
	OTP      OTPConfig
}

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret     string
	ExpiryDays int
	CookieName string
}

type CookieConfig struct {
	SameSite string // "lax" or "none"
	Secure   bool
	Domain   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	Length        int
	ExpiryMinutes int
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "shopkart")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("JWT_EXPIRES_DAYS", 7)
	viper.SetDefault("JWT_COOKIE_NAME", "sk_session")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("SMTP_FROM", "ShopKart <no-reply@example.com>")
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; environment variables alone are fine
		if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such file") {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	env := viper.GetString("APP_ENV")

	// Cookie flags follow the deploy target unless overridden: production sits
	// behind an HTTPS reverse proxy serving a cross-site frontend.
	sameSite := "lax"
	secure := false
	if env == "production" {
		sameSite = "none"
		secure = true
	}
	if viper.IsSet("COOKIE_SAMESITE") {
		sameSite = strings.ToLower(viper.GetString("COOKIE_SAMESITE"))
	}
	if viper.IsSet("COOKIE_SECURE") {
		secure = viper.GetBool("COOKIE_SECURE")
	}

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Env:            env,
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("JWT_SECRET"),
			ExpiryDays: viper.GetInt("JWT_EXPIRES_DAYS"),
			CookieName: viper.GetString("JWT_COOKIE_NAME"),
		},
		Cookie: CookieConfig{
			SameSite: sameSite,
			Secure:   secure,
			Domain:   viper.GetString("JWT_COOKIE_DOMAIN"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("SMTP_FROM"),
		},
		OTP: OTPConfig{
			Length:        viper.GetInt("OTP_LENGTH"),
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
