package usecase

import (
	"context"
	"time"

	"shopkart/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSignupRepository mocks repository.SignupRepository
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, token *entity.SignupToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSignupRepository) FindByEmail(ctx context.Context, email string) (*entity.SignupToken, error) {
	args := m.Called(ctx, email)
	if t := args.Get(0); t != nil {
		return t.(*entity.SignupToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSignupRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockSignupRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCartRepository mocks repository.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]entity.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) Replace(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateAndClearCart(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Order, error) {
	args := m.Called(ctx, userID, code)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMailer mocks mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(to, name, code string, expiry time.Duration) error {
	args := m.Called(to, name, code, expiry)
	return args.Error(0)
}

func (m *MockMailer) SendOrderReceipt(to string, user *entity.User, order *entity.Order) error {
	args := m.Called(to, user, order)
	return args.Error(0)
}
