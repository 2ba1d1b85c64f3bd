package models

import (
	"gorm.io/gorm"
)

// CartItem is a per-user server-side cart row. Title, price, type and the
// category names are copied from the product at add time so the identity
// requirement can be derived without joining the live catalog.
type CartItem struct {
	gorm.Model
	UserID          uint    `gorm:"index;not null"`
	ProductID       uint    `gorm:"not null"`
	Title           string  `gorm:"not null"`
	Price           float64 `gorm:"not null"`
	Quantity        int     `gorm:"default:1"`
	ProductType     string  `gorm:"default:''"`
	CategoryName    string  `gorm:"default:''"`
	SubCategoryName string  `gorm:"default:''"`
	IsDeleted       bool    `gorm:"default:false"`
}
