package wire

import (
	"shopkart/internal/adaptor"
	"shopkart/internal/data/repository"
	"shopkart/pkg/middleware"
	"shopkart/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireMe configures the authenticated /api/me surface behind the strict
// session guard.
func wireMe(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.RequireUser(repo.User, config.JWT, log)).
		Route("/api/me", func(r chi.Router) {
			r.Get("/", handler.User.Me)
			r.Patch("/profile", handler.User.UpdateProfile)

			r.Get("/cart", handler.Cart.GetCart)
			r.Put("/cart", handler.Cart.ReplaceCart)

			r.Get("/orders", handler.Order.ListOrders)
			r.Get("/orders/{id}", handler.Order.GetOrder)
			r.Post("/orders", handler.Order.PlaceOrder)
		})
}
