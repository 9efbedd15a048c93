package shop

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List retrieves products matching the filter
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// Create inserts a new product
	Create(ctx context.Context, p *domain.Product) error

	// AdjustStock applies stock = stock + delta in a single statement
	// and returns the resulting stock value
	AdjustStock(ctx context.Context, id int64, delta int) (int, error)

	// LowStock retrieves products with stock below threshold
	LowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error)

	// Count returns the total number of products
	Count(ctx context.Context) (int64, error)
}

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Category string
	Search   string
	OrderBy  string // whitelisted by the repository
}

// WishlistRepository handles database operations for wishlist pairs
type WishlistRepository interface {
	// Exists reports whether (userID, productID) is a member
	Exists(ctx context.Context, userID, productID int64) (bool, error)

	// Add inserts the pair; inserting an existing pair is a no-op
	Add(ctx context.Context, userID, productID int64) error

	// Remove deletes the pair; removing a non-member pair is a no-op
	Remove(ctx context.Context, userID, productID int64) error

	// ListProducts retrieves the wishlist products for a user
	ListProducts(ctx context.Context, userID int64) ([]domain.Product, error)
}

// OrderRepository handles read-only order history access plus the
// aggregate roll-ups used by the admin dashboard
type OrderRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Recent(ctx context.Context, limit int) ([]OrderWithEmail, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
	Amounts(ctx context.Context) ([]float64, error)
	PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error)
	FrequentCustomers(ctx context.Context, limit int) ([]FrequentCustomer, error)
	MonthlyVolume(ctx context.Context, months int) ([]MonthVolume, error)
	Export(ctx context.Context, from, to time.Time) ([]OrderExportRow, error)
}

// UserRepository handles account access
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	CountCustomers(ctx context.Context) (int64, error)
}

// OrderWithEmail is a recent-orders row joined with the buyer email.
type OrderWithEmail struct {
	domain.Order
	Email string `json:"email"`
}

// PopularProduct is a most-ordered roll-up row.
type PopularProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	TotalOrdered int64  `json:"total_ordered"`
}

// FrequentCustomer is an orders-per-customer roll-up row.
type FrequentCustomer struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	OrderCount int64  `json:"order_count"`
}

// MonthVolume is one month of order volume.
type MonthVolume struct {
	Month      string  `json:"month"` // YYYY-MM
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// OrderExportRow is one flattened row of the orders CSV export.
type OrderExportRow struct {
	OrderID     int64   `csv:"order_id"`
	Email       string  `csv:"email"`
	TotalAmount float64 `csv:"total_amount"`
	Status      string  `csv:"status"`
	OrderDate   string  `csv:"order_date"`
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	db := r.db.WithContext(ctx).Model(&domain.Product{})
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	order := "id"
	switch filter.OrderBy {
	case "stock":
		order = "stock ASC"
	case "price":
		order = "price ASC"
	case "name":
		order = "name ASC"
	}
	var rows []domain.Product
	err := db.Order(order).Find(&rows).Error
	return rows, err
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	// stock = stock + delta as one statement; the database serializes
	// concurrent adjustments, no application-level locking
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var p domain.Product
	if err := r.db.WithContext(ctx).Select("stock").First(&p, id).Error; err != nil {
		return 0, err
	}
	return p.Stock, nil
}

func (r *GormProductRepository) LowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	return total, err
}

// GormWishlistRepository is the GORM implementation of WishlistRepository
type GormWishlistRepository struct {
	db *gorm.DB
}

func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

func (r *GormWishlistRepository) Exists(ctx context.Context, userID, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormWishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	// racing double-adds hit the unique pair index; DO NOTHING keeps
	// the call idempotent
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&domain.Wishlist{
			UserID:    userID,
			ProductID: productID,
			CreatedAt: time.Now(),
		}).Error
}

func (r *GormWishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.Wishlist{}).Error
}

func (r *GormWishlistRepository) ListProducts(ctx context.Context, userID int64) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.*").
		Joins("JOIN wishlist ON wishlist.product_id = products.id").
		Where("wishlist.user_id = ?", userID).
		Order("wishlist.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// GormOrderRepository is the GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var rows []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) Recent(ctx context.Context, limit int) ([]OrderWithEmail, error) {
	var rows []OrderWithEmail
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.email").
		Joins("JOIN users ON orders.user_id = users.id").
		Order("orders.order_date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue *float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("status = ?", domain.OrderStatusDelivered).
		Select("SUM(total_amount)").
		Scan(&revenue).Error
	if err != nil || revenue == nil {
		return 0, err
	}
	return *revenue, nil
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&total).Error
	return total, err
}

func (r *GormOrderRepository) Amounts(ctx context.Context) ([]float64, error) {
	var amounts []float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Pluck("total_amount", &amounts).Error
	return amounts, err
}

func (r *GormOrderRepository) PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error) {
	var rows []PopularProduct
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("products.id, products.name, products.image, SUM(order_items.quantity) AS total_ordered").
		Joins("JOIN products ON order_items.product_id = products.id").
		Group("products.id, products.name, products.image").
		Order("total_ordered DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) FrequentCustomers(ctx context.Context, limit int) ([]FrequentCustomer, error) {
	var rows []FrequentCustomer
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.email, users.firstname, users.lastname, COUNT(orders.id) AS order_count").
		Joins("JOIN orders ON users.id = orders.user_id").
		Where("users.is_admin = ?", false).
		Group("users.id, users.email, users.firstname, users.lastname").
		Order("order_count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) MonthlyVolume(ctx context.Context, months int) ([]MonthVolume, error) {
	var rows []MonthVolume
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("to_char(order_date, 'YYYY-MM') AS month, COUNT(*) AS order_count, SUM(total_amount) AS revenue").
		Group("to_char(order_date, 'YYYY-MM')").
		Order("month DESC").
		Limit(months).
		Find(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) Export(ctx context.Context, from, to time.Time) ([]OrderExportRow, error) {
	var orders []OrderWithEmail
	db := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.email").
		Joins("JOIN users ON orders.user_id = users.id").
		Order("orders.order_date DESC")
	if !from.IsZero() {
		db = db.Where("orders.order_date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("orders.order_date <= ?", to)
	}
	if err := db.Find(&orders).Error; err != nil {
		return nil, err
	}
	rows := make([]OrderExportRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderExportRow{
			OrderID:     o.ID,
			Email:       o.Email,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			OrderDate:   o.OrderDate.Format(time.RFC3339),
		})
	}
	return rows, nil
}

// GormUserRepository is the GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *GormUserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *GormUserRepository) CountCustomers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("is_admin = ?", false).
		Count(&total).Error
	return total, err
}
