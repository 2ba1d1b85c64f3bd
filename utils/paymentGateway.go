package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"docseva/config"

	"github.com/go-resty/resty/v2"
)

// GatewayError carries the upstream status and body from a failed gateway
// call so support can diagnose it. Never retried by the adapter.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (%d): %s", e.StatusCode, e.Message)
}

// ErrInvalidPhone is a user-correctable validation failure: the buyer phone
// could not be normalized to 10 digits, so the gateway is never called.
type ErrInvalidPhone struct {
	Input string
}

func (e *ErrInvalidPhone) Error() string {
	return fmt.Sprintf("invalid phone number: %q", e.Input)
}

// PaymentRequest is the gateway-side record created to collect a payment.
type PaymentRequest struct {
	ID      string `json:"id"`
	LongURL string `json:"longurl"` // hosted checkout page
	Status  string `json:"status"`
}

// GatewayPayment is one payment attempt against a payment request.
type GatewayPayment struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"` // "Credit" means funds captured
}

// PaymentRequestStatus is the full gateway record including its payments.
type PaymentRequestStatus struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	Payments []GatewayPayment `json:"payments"`
}

// NormalizePhone reduces a buyer-entered phone number to the 10-digit local
// form the gateway accepts. Strips non-digits, drops a leading "91" country
// code from 12-digit forms, strips leading zeros, and keeps the last 10
// digits if still longer. Returns ErrInvalidPhone if the result is not
// exactly 10 digits.
func NormalizePhone(input string) (string, error) {
	digits := keepDigits(input, len(input))

	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	if len(digits) != 10 {
		return "", &ErrInvalidPhone{Input: input}
	}
	return digits, nil
}

func gatewayClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.GatewayBaseURL).
		SetHeader("X-Api-Key", config.AppConfig.GatewayApiKey).
		SetHeader("X-Auth-Token", config.AppConfig.GatewayAuthToken)
}

// CreatePaymentRequest asks the gateway for a hosted payment page.
// Phone is normalized first; a bad phone fails before any network call.
func CreatePaymentRequest(amount float64, purpose, buyerName, email, phone string) (*PaymentRequest, error) {
	normalizedPhone, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	resp, err := gatewayClient().R().
		SetFormData(map[string]string{
			"amount":                  fmt.Sprintf("%.2f", amount),
			"purpose":                 purpose,
			"buyer_name":              buyerName,
			"email":                   email,
			"phone":                   normalizedPhone,
			"redirect_url":            config.AppConfig.PaymentRedirect,
			"webhook":                 config.AppConfig.PaymentWebhook,
			"allow_repeated_payments": "false",
			"send_email":              "false",
			"send_sms":                "false",
		}).
		Post("payment-requests/")
	if err != nil {
		return nil, &GatewayError{StatusCode: 0, Message: err.Error()}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	var body struct {
		Success        bool           `json:"success"`
		PaymentRequest PaymentRequest `json:"payment_request"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: "invalid gateway response: " + err.Error()}
	}
	if !body.Success || body.PaymentRequest.ID == "" {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	return &body.PaymentRequest, nil
}

// GetPaymentStatus fetches the authoritative payment-request record from the
// gateway. The redirect-verification path must use this rather than trusting
// browser-supplied query parameters.
func GetPaymentStatus(paymentRequestID string) (*PaymentRequestStatus, error) {
	resp, err := gatewayClient().R().
		Get("payment-requests/" + paymentRequestID + "/")
	if err != nil {
		return nil, &GatewayError{StatusCode: 0, Message: err.Error()}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	var body struct {
		Success        bool                 `json:"success"`
		PaymentRequest PaymentRequestStatus `json:"payment_request"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: "invalid gateway response: " + err.Error()}
	}
	if !body.Success {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	return &body.PaymentRequest, nil
}

// CreditedPayment returns the credited payment on the record, if any.
func (s *PaymentRequestStatus) CreditedPayment() (*GatewayPayment, bool) {
	for i := range s.Payments {
		if s.Payments[i].Status == "Credit" {
			return &s.Payments[i], true
		}
	}
	return nil, false
}
