package domain

import "time"

// Product categories sold by the store.
var ProductCategories = []string{"men", "women", "shoes", "accessories"}

// Product represents one catalog item.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"index;size:200" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"` // price in main currency units
	Category    string    `gorm:"index;size:32" json:"category"`
	Stock       int       `json:"stock"`
	Image       string    `gorm:"size:1024" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
