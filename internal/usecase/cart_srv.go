package usecase

import (
	"context"
	"fmt"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/internal/dto/request"
	"shopkart/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]response.CartLine, error)
	ReplaceCart(ctx context.Context, userID uuid.UUID, lines []request.CartLineInput) ([]response.CartLine, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	log      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]response.CartLine, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart")
	}
	return response.CartToResponse(items), nil
}

// ReplaceCart is a full replacement, not a merge. Prices are stored as sent;
// there is no catalog to validate against.
func (s *cartService) ReplaceCart(ctx context.Context, userID uuid.UUID, lines []request.CartLineInput) ([]response.CartLine, error) {
	items := make([]entity.CartItem, 0, len(lines))
	for i, line := range lines {
		items = append(items, sanitizeCartLine(userID, i, line))
	}

	if err := s.cartRepo.Replace(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	s.log.Info("Cart replaced",
		zap.String("user_id", userID.String()),
		zap.Int("lines", len(items)))

	return response.CartToResponse(items), nil
}

// sanitizeCartLine coerces a client cart line into a storable one: product id
// falls back between the two id fields, quantity is floored at 1, and absent
// strings become empty.
func sanitizeCartLine(userID uuid.UUID, position int, line request.CartLineInput) entity.CartItem {
	productID := line.ProductID
	if productID == "" {
		productID = line.ID
	}

	qty := line.Qty
	if qty < 1 {
		qty = 1
	}

	return entity.CartItem{
		UserID:    userID,
		Position:  position,
		ProductID: productID,
		Title:     line.Title,
		Price:     line.Price,
		Image:     line.Image,
		Qty:       qty,
	}
}
