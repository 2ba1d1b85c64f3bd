package checkoutController

import (
	"testing"

	"docseva/config"
	"docseva/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_SingleItemWithTax(t *testing.T) {
	config.AppConfig = &config.Config{TaxRatePercent: 18, ShippingCharge: 0}

	totals := ComputeTotals([]models.CartItem{
		{Title: "PAN Correction", Price: 199, Quantity: 1, ProductType: "pan"},
	})

	assert.Equal(t, 199.0, totals.Subtotal)
	assert.Equal(t, 35.82, totals.Tax)
	assert.Equal(t, 0.0, totals.ShippingCharge)
	assert.Equal(t, 234.82, totals.Total)
}

func TestComputeTotals_MultipleQuantities(t *testing.T) {
	config.AppConfig = &config.Config{TaxRatePercent: 18, ShippingCharge: 50}

	totals := ComputeTotals([]models.CartItem{
		{Price: 100, Quantity: 2},
		{Price: 49.50, Quantity: 1},
	})

	assert.Equal(t, 249.50, totals.Subtotal)
	assert.Equal(t, 44.91, totals.Tax)
	assert.Equal(t, 50.0, totals.ShippingCharge)
	assert.Equal(t, 344.41, totals.Total)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	config.AppConfig = &config.Config{TaxRatePercent: 18}

	totals := ComputeTotals(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}
