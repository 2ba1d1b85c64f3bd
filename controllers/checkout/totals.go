package checkoutController

import (
	"math"

	"docseva/config"
	"docseva/models"
)

// OrderTotals is the authoritative money breakdown for an order.
// Catalog-side discount percentages are display data and are not re-applied
// here; the cart line prices are what the buyer pays.
type OrderTotals struct {
	Subtotal       float64
	Tax            float64
	ShippingCharge float64
	Total          float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals prices a cart: subtotal from line items, tax at the
// configured rate, flat shipping charge.
func ComputeTotals(items []models.CartItem) OrderTotals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	tax := round2(subtotal * config.AppConfig.TaxRatePercent / 100)
	shipping := config.AppConfig.ShippingCharge

	return OrderTotals{
		Subtotal:       round2(subtotal),
		Tax:            tax,
		ShippingCharge: shipping,
		Total:          round2(subtotal + tax + shipping),
	}
}
