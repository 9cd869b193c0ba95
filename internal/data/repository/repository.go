package repository

import (
	"shopkart/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Signup SignupRepository
	Cart   CartRepository
	Order  OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Signup: NewSignupRepository(db, log),
		Cart:   NewCartRepository(db, log),
		Order:  NewOrderRepository(db, log),
	}
}
