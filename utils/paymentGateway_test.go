package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"docseva/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestGatewayConfig(baseURL string) {
	config.AppConfig = &config.Config{
		GatewayBaseURL:   baseURL,
		GatewayApiKey:    "k",
		GatewayAuthToken: "t",
		PaymentRedirect:  "http://localhost/payment/verify",
		PaymentWebhook:   "http://localhost/payment/webhook",
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"+91 9876543210", "9876543210", false},
		{"09876543210", "9876543210", false},
		{"9876543210", "9876543210", false},
		{"91-98765-43210", "9876543210", false},
		{"919876543210999", "6543210999", false}, // 15 digits, keep last 10
		{"12345", "", true},
		{"", "", true},
		{"abcdefghij", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			var invalid *ErrInvalidPhone
			assert.ErrorAs(t, err, &invalid)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestCreatePaymentRequest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/payment-requests/", r.URL.Path)
		require.Equal(t, "k", r.Header.Get("X-Api-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "234.82", r.PostForm.Get("amount"))
		assert.Equal(t, "9876543210", r.PostForm.Get("phone"))
		assert.Equal(t, "false", r.PostForm.Get("allow_repeated_payments"))
		assert.Equal(t, "false", r.PostForm.Get("send_email"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"payment_request":{"id":"REQ1","longurl":"https://pay.example/REQ1","status":"Pending"}}`))
	}))
	defer server.Close()
	setTestGatewayConfig(server.URL + "/")

	pr, err := CreatePaymentRequest(234.82, "Order abc", "Ram", "ram@example.com", "+91 9876543210")
	require.NoError(t, err)
	assert.Equal(t, "REQ1", pr.ID)
	assert.Equal(t, "https://pay.example/REQ1", pr.LongURL)
}

func TestCreatePaymentRequest_BadPhoneNeverCallsGateway(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()
	setTestGatewayConfig(server.URL + "/")

	_, err := CreatePaymentRequest(100, "Order abc", "Ram", "ram@example.com", "12345")
	require.Error(t, err)
	var invalid *ErrInvalidPhone
	assert.ErrorAs(t, err, &invalid)
	assert.False(t, called)
}

func TestCreatePaymentRequest_GatewayErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid API key"}`))
	}))
	defer server.Close()
	setTestGatewayConfig(server.URL + "/")

	_, err := CreatePaymentRequest(100, "Order abc", "Ram", "ram@example.com", "9876543210")
	require.Error(t, err)
	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)
	assert.Contains(t, gatewayErr.Message, "Invalid API key")
}

func TestGetPaymentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment-requests/REQ1/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"payment_request":{"id":"REQ1","status":"Completed","payments":[{"payment_id":"MOJO1","status":"Credit"}]}}`))
	}))
	defer server.Close()
	setTestGatewayConfig(server.URL + "/")

	status, err := GetPaymentStatus("REQ1")
	require.NoError(t, err)

	payment, ok := status.CreditedPayment()
	require.True(t, ok)
	assert.Equal(t, "MOJO1", payment.PaymentID)
}

func TestGetPaymentStatus_NoCreditedPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"payment_request":{"id":"REQ1","status":"Pending","payments":[{"payment_id":"MOJO1","status":"Failed"}]}}`))
	}))
	defer server.Close()
	setTestGatewayConfig(server.URL + "/")

	status, err := GetPaymentStatus("REQ1")
	require.NoError(t, err)

	_, ok := status.CreditedPayment()
	assert.False(t, ok)
}
