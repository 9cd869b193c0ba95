package usecase

import (
	"context"
	"testing"

	"shopkart/internal/data/entity"
	"shopkart/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestGetCart_MapsItems(t *testing.T) {
	cartRepo := new(MockCartRepository)
	userID := uuid.New()

	stored := []entity.CartItem{
		{UserID: userID, Position: 0, ProductID: "p1", Title: "Headphones", Price: 1999, Image: "/img/p1.jpg", Qty: 2},
		{UserID: userID, Position: 1, ProductID: "p2", Title: "Charger", Price: 499, Image: "/img/p2.jpg", Qty: 1},
	}
	cartRepo.On("FindByUser", mock.Anything, userID).Return(stored, nil)

	svc := NewCartService(cartRepo, zap.NewNop())

	lines, err := svc.GetCart(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, "Charger", lines[1].Title)
}

func TestGetCart_EmptyIsEmptySlice(t *testing.T) {
	cartRepo := new(MockCartRepository)
	userID := uuid.New()

	cartRepo.On("FindByUser", mock.Anything, userID).Return([]entity.CartItem{}, nil)

	svc := NewCartService(cartRepo, zap.NewNop())

	lines, err := svc.GetCart(context.Background(), userID)

	assert.NoError(t, err)
	// Serializes as [] rather than null
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestReplaceCart_SanitizesLines(t *testing.T) {
	cartRepo := new(MockCartRepository)
	userID := uuid.New()

	var saved []entity.CartItem
	cartRepo.On("Replace", mock.Anything, userID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]entity.CartItem)
		}).Return(nil)

	svc := NewCartService(cartRepo, zap.NewNop())

	lines, err := svc.ReplaceCart(context.Background(), userID, []request.CartLineInput{
		{ID: "p1", Title: "Headphones", Price: 1999, Qty: 0},  // no productId, qty below floor
		{ProductID: "p2", Title: "Charger", Price: 499, Qty: 3},
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 2)

	// id stands in for a missing productId
	assert.Equal(t, "p1", saved[0].ProductID)
	assert.Equal(t, 1, saved[0].Qty)
	assert.Equal(t, 0, saved[0].Position)

	assert.Equal(t, "p2", saved[1].ProductID)
	assert.Equal(t, 3, saved[1].Qty)
	assert.Equal(t, 1, saved[1].Position)

	assert.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestReplaceCart_EmptyClears(t *testing.T) {
	cartRepo := new(MockCartRepository)
	userID := uuid.New()

	cartRepo.On("Replace", mock.Anything, userID, []entity.CartItem{}).Return(nil)

	svc := NewCartService(cartRepo, zap.NewNop())

	lines, err := svc.ReplaceCart(context.Background(), userID, nil)

	assert.NoError(t, err)
	assert.Empty(t, lines)
	cartRepo.AssertExpectations(t)
}

func TestReplaceCart_RepoError(t *testing.T) {
	cartRepo := new(MockCartRepository)
	userID := uuid.New()

	cartRepo.On("Replace", mock.Anything, userID, mock.Anything).Return(assert.AnError)

	svc := NewCartService(cartRepo, zap.NewNop())

	_, err := svc.ReplaceCart(context.Background(), userID, []request.CartLineInput{
		{ProductID: "p1", Qty: 1},
	})

	assert.EqualError(t, err, "failed to save cart")
}
