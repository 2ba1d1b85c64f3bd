package models

import (
	"gorm.io/gorm"
)

// Checkout steps, in workflow order.
const (
	StepIdentity = "identity"
	StepDelivery = "delivery"
	StepReview   = "review"
	StepPayment  = "payment"
)

// CheckoutSession holds a buyer's in-progress checkout so a reload resumes
// where they left off. One live (unconsumed) session per user; consumed when
// an order is placed.
type CheckoutSession struct {
	gorm.Model
	UserID           uint            `gorm:"index;not null"`
	Step             string          `gorm:"default:'identity'"`
	RequiredForm     string          `gorm:"default:'none'"` // last resolved identity requirement
	IdentityFormID   *uint           `gorm:"default:NULL"`
	DeliveryCaptured bool            `gorm:"default:false"`
	Shipping         ShippingAddress `gorm:"embedded"`
	Consumed         bool            `gorm:"default:false"`
	IsDeleted        bool            `gorm:"default:false"`
}
