package models

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order lifecycle statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Gateway-side payment statuses. Credit is terminal and never reverts.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusCredit  = "Credit"
)

// ValidOrderStatus reports whether s is one of the six lifecycle statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item snapshot stored on the order. Decoupled from the
// live catalog so later product edits don't corrupt historical orders.
type OrderItem struct {
	ProductID   uint    `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ProductType string  `json:"productType"`
}

// PaymentDetails is the payment sub-record embedded in an Order.
// RequestID is the gateway payment-request identifier; both confirmation
// channels look the order up by it.
type PaymentDetails struct {
	RequestID string  `gorm:"column:payment_request_id;uniqueIndex" json:"payment_request_id"`
	PaymentID string  `gorm:"column:payment_id;default:''" json:"payment_id"`
	Amount    float64 `gorm:"column:payment_amount" json:"amount"`
	Currency  string  `gorm:"column:payment_currency;default:'INR'" json:"currency"`
	Status    string  `gorm:"column:payment_status;default:'Pending'" json:"payment_status"`
}

// ShippingAddress is the delivery address embedded in an Order.
type ShippingAddress struct {
	FullName string `gorm:"column:ship_full_name" json:"fullName"`
	Line1    string `gorm:"column:ship_line1" json:"line1"`
	Line2    string `gorm:"column:ship_line2;default:''" json:"line2"`
	City     string `gorm:"column:ship_city" json:"city"`
	State    string `gorm:"column:ship_state" json:"state"`
	PinCode  string `gorm:"column:ship_pin_code" json:"pinCode"`
	Mobile   string `gorm:"column:ship_mobile" json:"mobile"`
}

type Order struct {
	gorm.Model
	UserID              uint            `gorm:"index;not null"`
	UserEmail           string          `gorm:"not null"`
	UserName            string          `gorm:"default:''"`
	Items               datatypes.JSON  `gorm:"type:jsonb"`
	Shipping            ShippingAddress `gorm:"embedded"`
	IdentityFormID      *uint           `gorm:"default:NULL"`
	NeedsIdentityReview bool            `gorm:"default:false"`
	Payment             PaymentDetails  `gorm:"embedded"`
	Subtotal            float64         `gorm:"not null"`
	Tax                 float64         `gorm:"not null"`
	ShippingCharge      float64         `gorm:"default:0"`
	Total               float64         `gorm:"not null"`
	Status              string          `gorm:"default:'pending';index"`
	OrderDate           time.Time
	IsDeleted           bool `gorm:"default:false"`
}

// LineItems decodes the stored items snapshot.
func (o *Order) LineItems() ([]OrderItem, error) {
	var items []OrderItem
	if len(o.Items) == 0 {
		return items, nil
	}
	err := json.Unmarshal(o.Items, &items)
	return items, err
}

// CreditResult is the outcome of attempting to credit a payment to an order.
type CreditResult int

const (
	CreditApplied CreditResult = iota
	CreditAlreadyApplied
	CreditNotFound
)

// CreditPayment moves an order's payment from Pending to Credit exactly once.
// The guard is a single conditional UPDATE keyed on payment_request_id and the
// current Pending status, so two racing confirmation channels cannot both win:
// the storage layer applies the check and the write atomically and exactly one
// caller sees RowsAffected == 1. Only that caller should run the one-time side
// effects (cart clear, emails).
func CreditPayment(db *gorm.DB, paymentRequestID, gatewayPaymentID string) (CreditResult, *Order, error) {
	res := db.Model(&Order{}).
		Where("payment_request_id = ? AND payment_status = ? AND is_deleted = false",
			paymentRequestID, PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_id":     gatewayPaymentID,
			"payment_status": PaymentStatusCredit,
			"status":         OrderStatusConfirmed,
		})
	if res.Error != nil {
		return CreditNotFound, nil, res.Error
	}

	var order Order
	err := db.Where("payment_request_id = ? AND is_deleted = false", paymentRequestID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CreditNotFound, nil, nil
		}
		return CreditNotFound, nil, err
	}

	if res.RowsAffected == 1 {
		return CreditApplied, &order, nil
	}
	// Row exists but the guard matched nothing: a previous call already
	// moved it to Credit. Success-shaped no-op for the caller.
	return CreditAlreadyApplied, &order, nil
}
