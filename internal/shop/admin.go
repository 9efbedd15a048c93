package shop

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// Event topics published by the admin write paths.
const (
	EventStockLow       = "shop.stock.low"
	EventProductCreated = "shop.product.created"
)

const DefaultLowStockThreshold = 10

// DashboardStats is the admin dashboard roll-up.
type DashboardStats struct {
	TotalRevenue      float64            `json:"total_revenue"`
	TotalOrders       int64              `json:"total_orders"`
	TotalCustomers    int64              `json:"total_customers"`
	TotalProducts     int64              `json:"total_products"`
	LowStockProducts  []domain.Product   `json:"low_stock_products"`
	RecentOrders      []OrderWithEmail   `json:"recent_orders"`
	PopularProducts   []PopularProduct   `json:"popular_products"`
	FrequentCustomers []FrequentCustomer `json:"frequent_customers"`
	MonthlyVolume     []MonthVolume      `json:"monthly_volume"`
	OrderValue        OrderValueStats    `json:"order_value"`
}

// OrderValueStats summarizes the distribution of order totals.
type OrderValueStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// CreateProductInput is the validated product-creation request. Image
// is the already-stored server-generated filename, never the client's.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// AdminService is the inventory and reporting backend of the admin
// dashboard.
type AdminService struct {
	products  ProductRepository
	orders    OrderRepository
	users     UserRepository
	bus       EventBus.Bus
	threshold func() int
}

func NewAdminService(products ProductRepository, orders OrderRepository, users UserRepository, bus EventBus.Bus, threshold func() int) *AdminService {
	if threshold == nil {
		threshold = func() int { return DefaultLowStockThreshold }
	}
	return &AdminService{
		products:  products,
		orders:    orders,
		users:     users,
		bus:       bus,
		threshold: threshold,
	}
}

// Dashboard computes the full stats roll-up.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	out := &DashboardStats{}
	var err error
	if out.TotalRevenue, err = s.orders.TotalRevenue(ctx); err != nil {
		return nil, errors.Wrap(err, "total revenue")
	}
	if out.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "order count")
	}
	if out.TotalCustomers, err = s.users.CountCustomers(ctx); err != nil {
		return nil, errors.Wrap(err, "customer count")
	}
	if out.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "product count")
	}
	if out.LowStockProducts, err = s.products.LowStock(ctx, s.threshold(), 5); err != nil {
		return nil, errors.Wrap(err, "low stock")
	}
	if out.RecentOrders, err = s.orders.Recent(ctx, 5); err != nil {
		return nil, errors.Wrap(err, "recent orders")
	}
	if out.PopularProducts, err = s.orders.PopularProducts(ctx, 5); err != nil {
		return nil, errors.Wrap(err, "popular products")
	}
	if out.FrequentCustomers, err = s.orders.FrequentCustomers(ctx, 5); err != nil {
		return nil, errors.Wrap(err, "frequent customers")
	}
	if out.MonthlyVolume, err = s.orders.MonthlyVolume(ctx, 12); err != nil {
		return nil, errors.Wrap(err, "monthly volume")
	}
	amounts, err := s.orders.Amounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "order amounts")
	}
	out.OrderValue = orderValueStats(amounts)
	return out, nil
}

func orderValueStats(amounts []float64) OrderValueStats {
	if len(amounts) == 0 {
		return OrderValueStats{}
	}
	mean, _ := stats.Mean(amounts)
	median, _ := stats.Median(amounts)
	p90, _ := stats.Percentile(amounts, 90)
	return OrderValueStats{Mean: mean, Median: median, P90: p90}
}

// AdjustStock applies stock = stock + delta at the storage layer.
// Negative results are allowed; manual deduction below zero is a
// legitimate admin action here. A low-stock event fires when the
// resulting stock drops under the configured threshold.
func (s *AdminService) AdjustStock(ctx context.Context, productID int64, delta int) (int, error) {
	if delta == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "stock_delta must be non-zero")
	}
	newStock, err := s.products.AdjustStock(ctx, productID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, errors.Wrap(err, "adjust stock")
	}
	zap.L().Info("stock adjusted",
		zap.Int64("product_id", productID),
		zap.Int("delta", delta),
		zap.Int("stock", newStock))
	if s.bus != nil && newStock < s.threshold() {
		s.bus.Publish(EventStockLow, productID, newStock)
	}
	return newStock, nil
}

// CreateProduct validates and inserts a new catalog product.
func (s *AdminService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "name is required")
	}
	if in.Price < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "price must be >= 0")
	}
	if in.Stock < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "stock must be >= 0")
	}
	if !common.InSlice(in.Category, domain.ProductCategories) {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown category %q", in.Category)
	}
	now := time.Now()
	p := &domain.Product{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	if s.bus != nil {
		s.bus.Publish(EventProductCreated, p.ID)
	}
	return p, nil
}

// Inventory lists all products, lowest stock first.
func (s *AdminService) Inventory(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.products.List(ctx, ProductFilter{OrderBy: "stock"})
	return rows, errors.Wrap(err, "list inventory")
}

// ExportOrders returns flattened order rows for the CSV export.
func (s *AdminService) ExportOrders(ctx context.Context, from, to time.Time) ([]OrderExportRow, error) {
	rows, err := s.orders.Export(ctx, from, to)
	return rows, errors.Wrap(err, "export orders")
}
