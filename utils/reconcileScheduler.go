package utils

import (
	"log"
	"time"

	"docseva/config"
	"docseva/database"
	"docseva/models"

	"github.com/robfig/cron/v3"
)

// How long an order may sit Pending before the sweeper polls the gateway.
const pendingGracePeriod = 15 * time.Minute

// SweepPendingPayments polls the gateway for stale pending orders and feeds
// any gateway-side Credit through the same idempotent transition the webhook
// and redirect paths use. A third confirmation channel, safe by construction.
func SweepPendingPayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-pendingGracePeriod)

	var orders []models.Order
	if err := db.Where("payment_status = ? AND is_deleted = false AND created_at < ?",
		models.PaymentStatusPending, cutoff).
		Limit(100).
		Find(&orders).Error; err != nil {
		log.Printf("Payment sweep: failed to list pending orders: %v", err)
		return
	}

	for _, order := range orders {
		status, err := GetPaymentStatus(order.Payment.RequestID)
		if err != nil {
			log.Printf("Payment sweep: status fetch failed for %s: %v", order.Payment.RequestID, err)
			continue
		}

		payment, ok := status.CreditedPayment()
		if !ok {
			continue
		}

		result, _, err := SettleCredit(db, order.Payment.RequestID, payment.PaymentID)
		if err != nil {
			log.Printf("Payment sweep: settle failed for %s: %v", order.Payment.RequestID, err)
			continue
		}
		if result == models.CreditApplied {
			log.Printf("Payment sweep: credited order %d from gateway poll", order.ID)
		}
	}
}

// InitializePaymentSweeper starts the cron job that reconciles stale pending
// payments against the gateway.
func InitializePaymentSweeper() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.SweepIntervalIn, SweepPendingPayments); err != nil {
		log.Printf("Failed to schedule payment sweeper: %v", err)
		return c
	}

	c.Start()
	log.Println("Payment sweeper scheduled:", config.AppConfig.SweepIntervalIn)
	return c
}
