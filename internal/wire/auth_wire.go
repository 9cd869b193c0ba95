package wire

import (
	"shopkart/internal/adaptor"
	"shopkart/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures the public auth routes. Logout is public too: it only
// clears the client cookie, there is no server-side session to protect.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup/initiate", authHandler.InitiateSignup)
		r.Post("/signup/verify", authHandler.VerifySignup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})
}
