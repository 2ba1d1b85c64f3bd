package models

import (
	"gorm.io/gorm"
)

// Product identity-document tags. Legacy catalog rows predate this field and
// carry an empty string; the resolver falls back to keyword matching for those.
const (
	ProductTypeAadhaar = "aadhaar"
	ProductTypePan     = "pan"
	ProductTypeBoth    = "both"
	ProductTypeNone    = "none"
)

type Product struct {
	gorm.Model
	CategoryID      uint    `gorm:"index"`
	SubCategoryID   uint    `gorm:"index"`
	Title           string  `gorm:"not null"`
	Description     string  `gorm:"default:''"`
	Image           string  `gorm:"default:''"`
	Price           float64 `gorm:"not null"`
	DiscountPercent float64 `gorm:"default:0"`  // display only, never applied to order totals
	ProductType     string  `gorm:"default:''"` // aadhaar, pan, both, none, '' (legacy)
	InStock         bool    `gorm:"default:true"`
	IsActive        bool    `gorm:"default:true"`
	IsDeleted       bool    `gorm:"default:false"`
}
