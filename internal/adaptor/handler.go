package adaptor

import (
	"shopkart/internal/usecase"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Cart  *CartHandler
	Order *OrderHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, config, log),
		User:  NewUserHandler(service.User, log),
		Cart:  NewCartHandler(service.Cart, log),
		Order: NewOrderHandler(service.Order, log),
	}
}
