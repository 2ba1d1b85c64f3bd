package paymentController

import (
	"encoding/json"
	"log"

	"docseva/config"
	"docseva/database"
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
)

// VerifyPayment handles the buyer's browser returning from the hosted
// payment page. The query parameters are advisory only: the browser controls
// them, so the gateway is asked for the authoritative payment record before
// anything is credited.
func VerifyPayment(c *fiber.Ctx) error {
	paymentRequestID := c.Query("payment_request_id")
	if paymentRequestID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "payment_request_id is required!", nil)
	}

	status, err := utils.GetPaymentStatus(paymentRequestID)
	if err != nil {
		log.Printf("Gateway status fetch failed for %s: %v", paymentRequestID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not verify payment with gateway!", fiber.Map{
			"detail": err.Error(),
		})
	}

	payment, credited := status.CreditedPayment()
	if !credited {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment not successful!", fiber.Map{
			"paymentRequestId": paymentRequestID,
			"gatewayStatus":    status.Status,
		})
	}

	result, order, err := utils.SettleCredit(database.Database.Db, paymentRequestID, payment.PaymentID)
	if err != nil {
		log.Printf("Settlement failed for %s: %v", paymentRequestID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	switch result {
	case models.CreditNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No order found for this payment!", nil)
	default:
		// Applied and AlreadyApplied both look like success to the buyer;
		// a duplicate verification must not show an error.
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", fiber.Map{
			"orderId":       order.ID,
			"orderStatus":   order.Status,
			"paymentStatus": order.Payment.Status,
		})
	}
}

// webhookFields collects the webhook body into a flat map. The gateway posts
// form-encoded data; JSON bodies are accepted too.
func webhookFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})

	if len(fields) == 0 {
		var body map[string]interface{}
		if err := json.Unmarshal(c.Body(), &body); err == nil {
			for k, v := range body {
				if s, ok := v.(string); ok {
					fields[k] = s
				}
			}
		}
	}

	return fields
}

// PaymentWebhook handles the gateway's server-to-server confirmation. The
// payload authenticates itself through its MAC; a mismatch is rejected with
// no state change. Anything authenticated but non-Credit is acknowledged
// without a transition so the gateway stops retrying.
func PaymentWebhook(c *fiber.Ctx) error {
	fields := webhookFields(c)

	suppliedMac, ok := fields["mac"]
	if !ok || suppliedMac == "" {
		log.Printf("Webhook rejected: missing MAC (payment_request_id=%s)", fields["payment_request_id"])
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "MAC verification failed!", nil)
	}
	delete(fields, "mac")

	if !utils.VerifyWebhookMAC(fields, suppliedMac, config.AppConfig.GatewaySalt) {
		// Potential security event: someone posted a forged confirmation.
		log.Printf("Webhook rejected: MAC mismatch (payment_request_id=%s)", fields["payment_request_id"])
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "MAC verification failed!", nil)
	}

	paymentRequestID := fields["payment_request_id"]
	if paymentRequestID == "" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No order found for this payment!", nil)
	}

	if fields["status"] != models.PaymentStatusCredit {
		// Authenticated but not captured; ack so the gateway stops retrying.
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook acknowledged.", nil)
	}

	result, order, err := utils.SettleCredit(database.Database.Db, paymentRequestID, fields["payment_id"])
	if err != nil {
		log.Printf("Webhook settlement failed for %s: %v", paymentRequestID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	switch result {
	case models.CreditNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No order found for this payment!", nil)
	case models.CreditAlreadyApplied:
		// Legitimate duplicate delivery; success-shaped so the gateway
		// does not keep retrying.
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook acknowledged.", nil)
	default:
		log.Printf("Order %d credited via webhook (payment %s)", order.ID, order.Payment.PaymentID)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook acknowledged.", nil)
	}
}
