package models_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"docseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDb(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent writers the way the production pool would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.CartItem{}))
	return db
}

func seedPendingOrder(t *testing.T, db *gorm.DB, paymentRequestID string) *models.Order {
	t.Helper()

	items, err := json.Marshal([]models.OrderItem{
		{ProductID: 1, Title: "PAN Correction", Price: 199, Quantity: 1, ProductType: "pan"},
	})
	require.NoError(t, err)

	order := &models.Order{
		UserID:    7,
		UserEmail: "ram@example.com",
		UserName:  "Ram",
		Items:     datatypes.JSON(items),
		Payment: models.PaymentDetails{
			RequestID: paymentRequestID,
			Amount:    234.82,
			Currency:  "INR",
			Status:    models.PaymentStatusPending,
		},
		Subtotal:  199,
		Tax:       35.82,
		Total:     234.82,
		Status:    models.OrderStatusPending,
		OrderDate: time.Now(),
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestCreditPayment_AppliesOnce(t *testing.T) {
	db := openTestDb(t, "credit_applies_once")
	seedPendingOrder(t, db, "REQ1")

	result, order, err := models.CreditPayment(db, "REQ1", "MOJO1")
	require.NoError(t, err)
	assert.Equal(t, models.CreditApplied, result)
	assert.Equal(t, models.PaymentStatusCredit, order.Payment.Status)
	assert.Equal(t, "MOJO1", order.Payment.PaymentID)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestCreditPayment_SecondCallIsNoOp(t *testing.T) {
	db := openTestDb(t, "credit_second_noop")
	seedPendingOrder(t, db, "REQ1")

	result, _, err := models.CreditPayment(db, "REQ1", "MOJO1")
	require.NoError(t, err)
	require.Equal(t, models.CreditApplied, result)

	result, order, err := models.CreditPayment(db, "REQ1", "MOJO-LATE")
	require.NoError(t, err)
	assert.Equal(t, models.CreditAlreadyApplied, result)

	// The first payment id sticks; the duplicate never overwrites it.
	assert.Equal(t, "MOJO1", order.Payment.PaymentID)
	assert.Equal(t, models.PaymentStatusCredit, order.Payment.Status)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestCreditPayment_UnknownRequestID(t *testing.T) {
	db := openTestDb(t, "credit_unknown")
	seedPendingOrder(t, db, "REQ1")

	result, order, err := models.CreditPayment(db, "REQ-MISSING", "MOJO1")
	require.NoError(t, err)
	assert.Equal(t, models.CreditNotFound, result)
	assert.Nil(t, order)
}

func TestCreditPayment_ConcurrentChannelsExactlyOneWins(t *testing.T) {
	db := openTestDb(t, "credit_race")
	seedPendingOrder(t, db, "REQ1")

	const callers = 8
	results := make([]models.CreditResult, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = models.CreditPayment(db, "REQ1", fmt.Sprintf("MOJO%d", i))
		}(i)
	}
	wg.Wait()

	applied := 0
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		if results[i] == models.CreditApplied {
			applied++
		} else {
			assert.Equal(t, models.CreditAlreadyApplied, results[i])
		}
	}
	assert.Equal(t, 1, applied, "exactly one channel must win the transition")

	var order models.Order
	require.NoError(t, db.Where("payment_request_id = ?", "REQ1").First(&order).Error)
	assert.Equal(t, models.PaymentStatusCredit, order.Payment.Status)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, models.ValidOrderStatus(s), s)
	}
	assert.False(t, models.ValidOrderStatus("refunded"))
	assert.False(t, models.ValidOrderStatus(""))
	assert.False(t, models.ValidOrderStatus("Pending"))
}

func TestOrderLineItems(t *testing.T) {
	db := openTestDb(t, "order_line_items")
	order := seedPendingOrder(t, db, "REQ1")

	items, err := order.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PAN Correction", items[0].Title)
	assert.Equal(t, 199.0, items[0].Price)
}
