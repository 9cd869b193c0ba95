package middleware

import (
	"net/http"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequireUser is the strict session guard: missing cookie, bad signature,
// expired token, or a vanished user all fail closed with 401. On success the
// resolved user record rides on the request context.
func RequireUser(userRepo repository.UserRepository, jwtCfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolveUser(r, userRepo, jwtCfg)
			if err != nil || user == nil {
				if err != nil {
					logger.Warn("Session resolution failed",
						zap.Error(err),
						zap.String("path", r.URL.Path))
				}
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MaybeUser is the soft guard: identical lookup, but any failure just means
// no user on the context. The session probe stays a 200 either way.
func MaybeUser(userRepo repository.UserRepository, jwtCfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolveUser(r, userRepo, jwtCfg)
			if err != nil {
				logger.Debug("Soft session resolution failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
			}

			if user != nil {
				r = r.WithContext(utils.SetUserContext(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveUser reads the session cookie, verifies the token, and loads the
// referenced user. (nil, nil) means "no session" without an error worth
// logging at warn level.
func resolveUser(r *http.Request, userRepo repository.UserRepository, jwtCfg utils.JWTConfig) (*entity.User, error) {
	cookie, err := r.Cookie(jwtCfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	subject, err := utils.ParseSession(cookie.Value, jwtCfg)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, err
	}

	return userRepo.FindByID(r.Context(), userID)
}
