package shop

import (
	"context"
	"sync"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

func TestAdjustStock(t *testing.T) {
	products := new(mockProductRepository)
	products.On("AdjustStock", mock.Anything, int64(7), 5).Return(12, nil)

	svc := NewAdminService(products, new(mockOrderRepository), new(mockUserRepository), nil, nil)

	stock, err := svc.AdjustStock(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, stock)
}

func TestAdjustStockAllowsNegativeResult(t *testing.T) {
	products := new(mockProductRepository)
	products.On("AdjustStock", mock.Anything, int64(7), -20).Return(-8, nil)

	svc := NewAdminService(products, new(mockOrderRepository), new(mockUserRepository), nil, nil)

	stock, err := svc.AdjustStock(context.Background(), 7, -20)
	require.NoError(t, err)
	assert.Equal(t, -8, stock)
}

func TestAdjustStockZeroDelta(t *testing.T) {
	svc := NewAdminService(new(mockProductRepository), new(mockOrderRepository), new(mockUserRepository), nil, nil)

	_, err := svc.AdjustStock(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	products := new(mockProductRepository)
	products.On("AdjustStock", mock.Anything, int64(99), 1).Return(0, gorm.ErrRecordNotFound)

	svc := NewAdminService(products, new(mockOrderRepository), new(mockUserRepository), nil, nil)

	_, err := svc.AdjustStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStockPublishesLowStockEvent(t *testing.T) {
	products := new(mockProductRepository)
	products.On("AdjustStock", mock.Anything, int64(7), -3).Return(4, nil)

	bus := EventBus.New()
	var mu sync.Mutex
	var gotID int64
	var gotStock int
	require.NoError(t, bus.Subscribe(EventStockLow, func(productID int64, stock int) {
		mu.Lock()
		gotID, gotStock = productID, stock
		mu.Unlock()
	}))

	svc := NewAdminService(products, new(mockOrderRepository), new(mockUserRepository), bus, func() int { return 10 })

	_, err := svc.AdjustStock(context.Background(), 7, -3)
	require.NoError(t, err)
	bus.WaitAsync()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, 4, gotStock)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewAdminService(new(mockProductRepository), new(mockOrderRepository), new(mockUserRepository), nil, nil)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "  ", Price: 1, Category: "men"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Name: "Tee", Price: -1, Category: "men"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Name: "Tee", Price: 1, Stock: -2, Category: "men"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Name: "Tee", Price: 1, Category: "kids"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProduct(t *testing.T) {
	products := new(mockProductRepository)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Canvas Tote" && p.Category == "accessories"
	})).Return(nil)

	svc := NewAdminService(products, new(mockOrderRepository), new(mockUserRepository), nil, nil)

	p, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:     " Canvas Tote ",
		Price:    24.50,
		Category: "accessories",
		Stock:    10,
		Image:    "abc123.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Canvas Tote", p.Name)
	assert.Equal(t, "abc123.png", p.Image)
	products.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	products := new(mockProductRepository)
	products.On("Count", mock.Anything).Return(int64(42), nil)
	products.On("LowStock", mock.Anything, 10, 5).
		Return([]domain.Product{{ID: 3, Name: "Beanie", Stock: 2}}, nil)

	orders := new(mockOrderRepository)
	orders.On("TotalRevenue", mock.Anything).Return(1234.56, nil)
	orders.On("Count", mock.Anything).Return(int64(17), nil)
	orders.On("Recent", mock.Anything, 5).Return([]OrderWithEmail{}, nil)
	orders.On("PopularProducts", mock.Anything, 5).
		Return([]PopularProduct{{ID: 7, Name: "Denim Jacket", TotalOrdered: 9}}, nil)
	orders.On("FrequentCustomers", mock.Anything, 5).Return([]FrequentCustomer{}, nil)
	orders.On("MonthlyVolume", mock.Anything, 12).
		Return([]MonthVolume{{Month: "2026-08", OrderCount: 4, Revenue: 300}}, nil)
	orders.On("Amounts", mock.Anything).Return([]float64{10, 20, 30, 40}, nil)

	users := new(mockUserRepository)
	users.On("CountCustomers", mock.Anything).Return(int64(8), nil)

	svc := NewAdminService(products, orders, users, nil, nil)

	out, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.56, out.TotalRevenue)
	assert.Equal(t, int64(17), out.TotalOrders)
	assert.Equal(t, int64(8), out.TotalCustomers)
	assert.Equal(t, int64(42), out.TotalProducts)
	require.Len(t, out.LowStockProducts, 1)
	assert.Equal(t, 25.0, out.OrderValue.Mean)
	assert.Equal(t, 25.0, out.OrderValue.Median)
}

func TestOrderValueStatsEmpty(t *testing.T) {
	assert.Equal(t, OrderValueStats{}, orderValueStats(nil))
}
