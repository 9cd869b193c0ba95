package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newOrderService(cartRepo *MockCartRepository, orderRepo *MockOrderRepository, mail *MockMailer) OrderService {
	repo := &repository.Repository{
		Cart:  cartRepo,
		Order: orderRepo,
	}
	return NewOrderService(repo, mail, zap.NewNop())
}

func testUser() *entity.User {
	return &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func TestPlaceOrder_DefaultsAndCartClear(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	var placed *entity.Order
	orderRepo.On("CreateAndClearCart", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			placed = args.Get(1).(*entity.Order)
		}).Return(nil)
	// Receipt goes out on a separate goroutine and may or may not land before
	// the test finishes
	mail.On("SendOrderReceipt", user.Email, user, mock.Anything).Return(nil).Maybe()

	svc := newOrderService(cartRepo, orderRepo, mail)

	resp, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{
		Total: 2498,
		Address: request.AddressDraft{
			Name: "Alice", Line1: "1 Main St", City: "Pune", State: "MH", Zip: "411001", Phone: "9999999999",
		},
		Items: []request.CartLineInput{
			{ProductID: "p1", Title: "Headphones", Price: 1999, Qty: 1},
			{ID: "p2", Title: "Charger", Price: 499, Qty: 1},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, placed)

	// Server assigns a code when the client sends none
	assert.True(t, strings.HasPrefix(placed.Code, "SK-"))
	assert.Equal(t, placed.Code, resp.ID)

	// COD is the default mode and carries no UPI handle
	assert.Equal(t, entity.PaymentModeCOD, placed.Mode)
	assert.Nil(t, placed.UPIID)

	assert.Equal(t, user.ID, placed.UserID)
	assert.Equal(t, 2498.0, placed.Total)
	assert.WithinDuration(t, time.Now(), placed.CreatedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now(), placed.PlacedAt, 5*time.Second)

	// Item ids backfill each other
	assert.Equal(t, "p1", placed.Items[0].ItemID)
	assert.Equal(t, "p2", placed.Items[1].ProductID)

	// Stored cart untouched here; clearing happens inside the repository call
	cartRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrder_UPIKeepsHandle(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	var placed *entity.Order
	orderRepo.On("CreateAndClearCart", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			placed = args.Get(1).(*entity.Order)
		}).Return(nil)
	mail.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := newOrderService(cartRepo, orderRepo, mail)

	_, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{
		Total:   100,
		Payment: request.PaymentDraft{Mode: "UPI", UPIID: "alice@upi"},
		Items:   []request.CartLineInput{{ProductID: "p1", Price: 100, Qty: 1}},
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentModeUPI, placed.Mode)
	assert.NotNil(t, placed.UPIID)
	assert.Equal(t, "alice@upi", *placed.UPIID)
}

func TestPlaceOrder_ClientFieldsPreserved(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	var placed *entity.Order
	orderRepo.On("CreateAndClearCart", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			placed = args.Get(1).(*entity.Order)
		}).Return(nil)
	mail.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := newOrderService(cartRepo, orderRepo, mail)

	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{
		ID:        "SK-1748779200000",
		Total:     50,
		CreatedAt: sentAt.UnixMilli(),
		Items:     []request.CartLineInput{{ProductID: "p1", Price: 50, Qty: 1}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "SK-1748779200000", placed.Code)
	assert.True(t, placed.CreatedAt.Equal(sentAt))
}

func TestPlaceOrder_BackdatedTimestampDoesNotReorder(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	var placed *entity.Order
	orderRepo.On("CreateAndClearCart", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			placed = args.Get(1).(*entity.Order)
		}).Return(nil)
	mail.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := newOrderService(cartRepo, orderRepo, mail)

	// A client can backdate createdAt; placement time must stay server-set so
	// the new order still lists first
	backdated := time.Now().Add(-48 * time.Hour)
	_, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{
		Total:     50,
		CreatedAt: backdated.UnixMilli(),
		Items:     []request.CartLineInput{{ProductID: "p1", Price: 50, Qty: 1}},
	})

	assert.NoError(t, err)
	assert.WithinDuration(t, backdated, placed.CreatedAt, time.Second)
	assert.WithinDuration(t, time.Now(), placed.PlacedAt, 5*time.Second)
	assert.True(t, placed.PlacedAt.After(placed.CreatedAt))
}

func TestPlaceOrder_FallsBackToStoredCart(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	cartRepo.On("FindByUser", mock.Anything, user.ID).Return([]entity.CartItem{
		{UserID: user.ID, Position: 0, ProductID: "p9", Title: "Kettle", Price: 899, Qty: 2},
	}, nil)

	var placed *entity.Order
	orderRepo.On("CreateAndClearCart", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			placed = args.Get(1).(*entity.Order)
		}).Return(nil)
	mail.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := newOrderService(cartRepo, orderRepo, mail)

	_, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{Total: 1798})

	assert.NoError(t, err)
	assert.Len(t, placed.Items, 1)
	assert.Equal(t, "p9", placed.Items[0].ProductID)
	assert.Equal(t, 2, placed.Items[0].Qty)
	cartRepo.AssertExpectations(t)
}

func TestPlaceOrder_RepoError(t *testing.T) {
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	mail := new(MockMailer)
	user := testUser()

	orderRepo.On("CreateAndClearCart", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := newOrderService(cartRepo, orderRepo, mail)

	_, err := svc.PlaceOrder(context.Background(), user, &request.OrderDraft{
		Total: 100,
		Items: []request.CartLineInput{{ProductID: "p1", Price: 100, Qty: 1}},
	})

	assert.EqualError(t, err, "failed to place order")
	mail.AssertNotCalled(t, "SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func TestListOrders_NewestFirstPassthrough(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userID := uuid.New()

	orders := []*entity.Order{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, Code: "SK-2", Total: 200, Mode: entity.PaymentModeCOD},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, Code: "SK-1", Total: 100, Mode: entity.PaymentModeCOD},
	}
	orderRepo.On("FindByUser", mock.Anything, userID).Return(orders, nil)

	svc := newOrderService(new(MockCartRepository), orderRepo, new(MockMailer))

	resp, err := svc.ListOrders(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "SK-2", resp[0].ID)
	assert.Equal(t, "SK-1", resp[1].ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userID := uuid.New()

	orderRepo.On("FindByCode", mock.Anything, userID, "SK-404").Return(nil, nil)

	svc := newOrderService(new(MockCartRepository), orderRepo, new(MockMailer))

	_, err := svc.GetOrder(context.Background(), userID, "SK-404")

	assert.EqualError(t, err, "order not found")
}

func TestGetOrder_Found(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userID := uuid.New()

	upi := "alice@upi"
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Code:       "SK-1",
		Total:      100,
		Mode:       entity.PaymentModeUPI,
		UPIID:      &upi,
		Items: []entity.OrderItem{
			{ItemID: "p1", ProductID: "p1", Title: "Headphones", Price: 100, Qty: 1},
		},
	}
	orderRepo.On("FindByCode", mock.Anything, userID, "SK-1").Return(order, nil)

	svc := newOrderService(new(MockCartRepository), orderRepo, new(MockMailer))

	resp, err := svc.GetOrder(context.Background(), userID, "SK-1")

	assert.NoError(t, err)
	assert.Equal(t, "SK-1", resp.ID)
	assert.Equal(t, "UPI", resp.Payment.Mode)
	assert.Equal(t, "alice@upi", *resp.Payment.UPIID)
	assert.Len(t, resp.Items, 1)
}
