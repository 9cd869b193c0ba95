package adaptor

import (
	"context"

	"shopkart/internal/data/entity"
	"shopkart/internal/dto/request"
	"shopkart/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks usecase.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) InitiateSignup(ctx context.Context, req *request.InitiateSignupRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifySignup(ctx context.Context, req *request.VerifySignupRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCartService mocks usecase.CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID uuid.UUID) ([]response.CartLine, error) {
	args := m.Called(ctx, userID)
	if lines := args.Get(0); lines != nil {
		return lines.([]response.CartLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) ReplaceCart(ctx context.Context, userID uuid.UUID, lines []request.CartLineInput) ([]response.CartLine, error) {
	args := m.Called(ctx, userID, lines)
	if out := args.Get(0); out != nil {
		return out.([]response.CartLine), args.Error(1)
	}
	return nil, args.Error(1)
}
