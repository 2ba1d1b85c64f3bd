package paymentRoutes

import (
	paymentController "docseva/controllers/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	// Both confirmation channels are unauthenticated HTTP endpoints: the
	// redirect path authenticates via a gateway status fetch, the webhook
	// via its MAC.
	paymentGroup.Get("/verify", paymentController.VerifyPayment)
	paymentGroup.Post("/webhook", paymentController.PaymentWebhook)
}
