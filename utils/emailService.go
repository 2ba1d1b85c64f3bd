package utils

import (
	"fmt"
	"log"
	"strings"

	"docseva/config"
	"docseva/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid key not configured, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("DocSeva", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by all portal emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.items-table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
			.items-table th, .items-table td { padding: 8px 10px; border-bottom: 1px solid #E0E0E0; text-align: left; font-size: 14px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #D7B56D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>DOCSEVA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 DocSeva. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func orderItemsTable(order *models.Order) string {
	items, err := order.LineItems()
	if err != nil {
		log.Printf("Failed to decode order %d items for email: %v", order.ID, err)
		return ""
	}

	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%d</td><td>&#8377;%.2f</td></tr>`,
			item.Title, item.Quantity, item.Price))
	}

	return fmt.Sprintf(`
		<table class="items-table">
			<tr><th>Item</th><th>Qty</th><th>Price</th></tr>
			%s
			<tr><td></td><td><strong>Total</strong></td><td><strong>&#8377;%.2f</strong></td></tr>
		</table>
	`, rows.String(), order.Total)
}

// --- Triggers ---

// SendOrderConfirmationEmail tells the buyer their payment was received.
// Fire-and-forget: a send failure never affects the payment transition.
func SendOrderConfirmationEmail(email, name string, order *models.Order) {
	subject := fmt.Sprintf("Order Confirmed: #%d", order.ID)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment was received and order <strong>#%d</strong> is confirmed.</p>
		%s
		<div class="info-box">
			We will notify you as your documents move through processing and dispatch.
		</div>
	`, name, order.ID, orderItemsTable(order))

	go SendEmail(email, name, subject, getEmailTemplate("Payment Received", body))
}

// SendAdminOrderNotification tells the operator a new paid order arrived.
func SendAdminOrderNotification(order *models.Order) {
	subject := fmt.Sprintf("New Paid Order: #%d", order.ID)
	body := fmt.Sprintf(`
		<p>Order <strong>#%d</strong> was just paid by %s (%s).</p>
		%s
		<p>Payment request: %s<br>Payment ID: %s</p>
	`, order.ID, order.UserName, order.UserEmail, orderItemsTable(order),
		order.Payment.RequestID, order.Payment.PaymentID)

	go SendEmail(config.AppConfig.AdminEmail, "DocSeva Admin", subject, getEmailTemplate("New Order", body))
}

// SendOrderStatusEmail tells the buyer an admin moved their order.
func SendOrderStatusEmail(email, name string, order *models.Order) {
	subject := fmt.Sprintf("Order #%d is now %s", order.ID, order.Status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your order <strong>#%d</strong> status changed to <strong>%s</strong>.</p>
	`, name, order.ID, order.Status)

	go SendEmail(email, name, subject, getEmailTemplate("Order Update", body))
}
