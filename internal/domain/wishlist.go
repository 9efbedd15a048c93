package domain

import "time"

// Wishlist is one saved (user, product) pair, unique per pair.
type Wishlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID int64     `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (Wishlist) TableName() string {
	return "wishlist"
}
