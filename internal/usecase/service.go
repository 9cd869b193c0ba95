package usecase

import (
	"shopkart/internal/data/repository"
	"shopkart/pkg/mailer"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Cart  CartService
	Order OrderService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, mail, config, log),
		User:  NewUserService(repo.User, log),
		Cart:  NewCartService(repo.Cart, log),
		Order: NewOrderService(repo, mail, log),
	}
}
