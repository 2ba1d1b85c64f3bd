package utils

import (
	"log"

	"docseva/models"

	"gorm.io/gorm"
)

// SettleCredit applies a gateway-confirmed payment to its order and, when
// this call is the one that actually wins the Pending->Credit transition,
// runs the one-time side effects: clear the buyer's cart and send the
// confirmation emails. Duplicate settlements are success-shaped no-ops.
//
// Callers must have authenticated the credit first (MAC-verified webhook,
// gateway-confirmed status fetch, or the sweeper's own status poll).
func SettleCredit(db *gorm.DB, paymentRequestID, gatewayPaymentID string) (models.CreditResult, *models.Order, error) {
	result, order, err := models.CreditPayment(db, paymentRequestID, gatewayPaymentID)
	if err != nil || result != models.CreditApplied {
		return result, order, err
	}

	// Side effects are best-effort: the gateway already captured the funds,
	// so failures here are logged and never roll the transition back.
	if err := db.Model(&models.CartItem{}).
		Where("user_id = ? AND is_deleted = false", order.UserID).
		Update("is_deleted", true).Error; err != nil {
		log.Printf("Failed to clear cart for user %d after order %d credit: %v", order.UserID, order.ID, err)
	}

	SendOrderConfirmationEmail(order.UserEmail, order.UserName, order)
	SendAdminOrderNotification(order)

	return result, order, nil
}
