package models

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"unique;not null"`
	Description string `gorm:"default:''"`
	Image       string `gorm:"default:''"`
	SortOrder   int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

type SubCategory struct {
	gorm.Model
	CategoryID  uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"default:''"`
	Image       string `gorm:"default:''"`
	SortOrder   int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
