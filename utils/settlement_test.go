package utils

import (
	"fmt"
	"testing"
	"time"

	"docseva/config"
	"docseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSettlementDb(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.CartItem{}))
	return db
}

func seedOrderWithCart(t *testing.T, db *gorm.DB, userId uint, paymentRequestID string) {
	t.Helper()

	require.NoError(t, db.Create(&models.Order{
		UserID:    userId,
		UserEmail: "ram@example.com",
		UserName:  "Ram",
		Payment: models.PaymentDetails{
			RequestID: paymentRequestID,
			Amount:    234.82,
			Status:    models.PaymentStatusPending,
		},
		Subtotal:  199,
		Tax:       35.82,
		Total:     234.82,
		Status:    models.OrderStatusPending,
		OrderDate: time.Now(),
	}).Error)

	require.NoError(t, db.Create(&models.CartItem{
		UserID: userId, ProductID: 1, Title: "PAN Correction", Price: 199, Quantity: 1, ProductType: "pan",
	}).Error)
}

func liveCartCount(t *testing.T, db *gorm.DB, userId uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ? AND is_deleted = false", userId).Count(&n).Error)
	return n
}

func TestSettleCredit_ClearsCartOnApply(t *testing.T) {
	config.AppConfig = &config.Config{} // no SendGrid key: emails become logged no-ops
	db := openSettlementDb(t, "settle_clears_cart")
	seedOrderWithCart(t, db, 7, "REQ1")

	result, order, err := SettleCredit(db, "REQ1", "MOJO1")
	require.NoError(t, err)
	assert.Equal(t, models.CreditApplied, result)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.EqualValues(t, 0, liveCartCount(t, db, 7))
}

func TestSettleCredit_DuplicateDoesNotReclear(t *testing.T) {
	config.AppConfig = &config.Config{}
	db := openSettlementDb(t, "settle_duplicate")
	seedOrderWithCart(t, db, 7, "REQ1")

	result, _, err := SettleCredit(db, "REQ1", "MOJO1")
	require.NoError(t, err)
	require.Equal(t, models.CreditApplied, result)

	// Buyer refills the cart before the duplicate confirmation lands.
	require.NoError(t, db.Create(&models.CartItem{
		UserID: 7, ProductID: 2, Title: "Aadhaar Reprint", Price: 99, Quantity: 1, ProductType: "aadhaar",
	}).Error)

	result, _, err = SettleCredit(db, "REQ1", "MOJO1")
	require.NoError(t, err)
	assert.Equal(t, models.CreditAlreadyApplied, result)

	// The duplicate must not clear the new cart.
	assert.EqualValues(t, 1, liveCartCount(t, db, 7))
}

func TestSettleCredit_UnknownRequest(t *testing.T) {
	config.AppConfig = &config.Config{}
	db := openSettlementDb(t, "settle_unknown")
	seedOrderWithCart(t, db, 7, "REQ1")

	result, _, err := SettleCredit(db, "REQ-MISSING", "MOJO1")
	require.NoError(t, err)
	assert.Equal(t, models.CreditNotFound, result)
	assert.EqualValues(t, 1, liveCartCount(t, db, 7))
}
