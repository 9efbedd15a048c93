package shop

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepository) LowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) Exists(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *mockWishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *mockWishlistRepository) ListProducts(ctx context.Context, userID int64) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) Recent(ctx context.Context, limit int) ([]OrderWithEmail, error) {
	args := m.Called(ctx, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]OrderWithEmail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) Amounts(ctx context.Context) ([]float64, error) {
	args := m.Called(ctx)
	if rows := args.Get(0); rows != nil {
		return rows.([]float64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error) {
	args := m.Called(ctx, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]PopularProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) FrequentCustomers(ctx context.Context, limit int) ([]FrequentCustomer, error) {
	args := m.Called(ctx, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]FrequentCustomer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) MonthlyVolume(ctx context.Context, months int) ([]MonthVolume, error) {
	args := m.Called(ctx, months)
	if rows := args.Get(0); rows != nil {
		return rows.([]MonthVolume), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) Export(ctx context.Context, from, to time.Time) ([]OrderExportRow, error) {
	args := m.Called(ctx, from, to)
	if rows := args.Get(0); rows != nil {
		return rows.([]OrderExportRow), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
