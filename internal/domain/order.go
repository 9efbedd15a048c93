package domain

import "time"

// Order lifecycle states. Display-only in this system; orders are
// written by the (external) checkout flow.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64       `gorm:"index" json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `gorm:"index;size:20" json:"status"`
	OrderDate   time.Time   `gorm:"index" json:"order_date"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"index" json:"order_id"`
	ProductID int64   `gorm:"index" json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at purchase time
}
