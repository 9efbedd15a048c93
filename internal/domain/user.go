package domain

import "time"

// User represents a storefront account. Admin accounts carry the
// is_admin flag; there is no separate operator table.
type User struct {
	ID        int64     `json:"id,string" form:"id"`
	Email     string    `gorm:"uniqueIndex;size:200" json:"email" form:"email"`
	Password  string    `json:"-" form:"password"`
	Firstname string    `json:"firstname" form:"firstname"`
	Lastname  string    `json:"lastname" form:"lastname"`
	Address   string    `json:"address" form:"address"`
	IsAdmin   bool      `gorm:"index" json:"is_admin"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
