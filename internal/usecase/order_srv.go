package usecase

import (
	"context"
	"fmt"
	"time"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/internal/dto/request"
	"shopkart/internal/dto/response"
	"shopkart/pkg/mailer"
	"shopkart/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, user *entity.User, draft *request.OrderDraft) (*response.OrderResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	GetOrder(ctx context.Context, userID uuid.UUID, code string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "order")),
	}
}

// PlaceOrder normalizes the draft, atomically appends the order and empties
// the cart, then sends a best-effort receipt. The order is committed by the
// time the email goes out, so a send failure is logged, never surfaced.
func (s *orderService) PlaceOrder(ctx context.Context, user *entity.User, draft *request.OrderDraft) (*response.OrderResponse, error) {
	// Client may omit items to save payload; the stored cart is the source then
	items := draft.Items
	if len(items) == 0 {
		cart, err := s.repo.Cart.FindByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load cart")
		}
		items = make([]request.CartLineInput, 0, len(cart))
		for _, c := range cart {
			items = append(items, request.CartLineInput{
				ID:        c.ProductID,
				ProductID: c.ProductID,
				Title:     c.Title,
				Price:     c.Price,
				Image:     c.Image,
				Qty:       c.Qty,
			})
		}
	}

	order := normalizeOrder(user.ID, draft, items)

	if err := s.repo.Order.CreateAndClearCart(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order")
	}

	s.log.Info("Order placed",
		zap.String("user_id", user.ID.String()),
		zap.String("code", order.Code),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)))

	// Fire-and-forget receipt; the order is already durable
	go s.sendReceipt(user, order)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders")
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, code string) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByCode(ctx, userID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// normalizeOrder fills server-assigned defaults: order code, COD unless the
// draft explicitly says UPI (the UPI handle is kept only in that case),
// creation time when the client sent none. PlacedAt is always server time so
// history ordering never depends on the client clock.
func normalizeOrder(userID uuid.UUID, draft *request.OrderDraft, items []request.CartLineInput) *entity.Order {
	code := draft.ID
	if code == "" {
		code = utils.GenerateOrderCode()
	}

	mode := entity.PaymentModeCOD
	var upiID *string
	if draft.Payment.Mode == string(entity.PaymentModeUPI) {
		mode = entity.PaymentModeUPI
		upi := draft.Payment.UPIID
		upiID = &upi
	}

	placedAt := time.Now()
	createdAt := placedAt
	if draft.CreatedAt > 0 {
		createdAt = time.UnixMilli(draft.CreatedAt)
	}

	orderID := uuid.New()
	orderItems := make([]entity.OrderItem, 0, len(items))
	for i, item := range items {
		itemID := item.ID
		if itemID == "" {
			itemID = item.ProductID
		}
		productID := item.ProductID
		if productID == "" {
			productID = item.ID
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}

		orderItems = append(orderItems, entity.OrderItem{
			OrderID:   orderID,
			Position:  i,
			ItemID:    itemID,
			ProductID: productID,
			Title:     item.Title,
			Price:     item.Price,
			Image:     item.Image,
			Qty:       qty,
		})
	}

	return &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        orderID,
			CreatedAt: createdAt,
		},
		UserID:   userID,
		Code:     code,
		Total:    draft.Total,
		Mode:     mode,
		UPIID:    upiID,
		PlacedAt: placedAt,
		Address: entity.Address{
			Name:  draft.Address.Name,
			Line1: draft.Address.Line1,
			City:  draft.Address.City,
			State: draft.Address.State,
			Zip:   draft.Address.Zip,
			Phone: draft.Address.Phone,
		},
		Items: orderItems,
	}
}

func (s *orderService) sendReceipt(user *entity.User, order *entity.Order) {
	if err := s.mail.SendOrderReceipt(user.Email, user, order); err != nil {
		s.log.Warn("Order receipt email failed",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("code", order.Code))
	}
}
