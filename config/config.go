package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Payment gateway (Instamojo-style hosted checkout)
	GatewayBaseURL   string
	GatewayApiKey    string
	GatewayAuthToken string
	GatewaySalt      string // HMAC salt for webhook MAC verification
	PaymentRedirect  string // browser returns here after the hosted page
	PaymentWebhook   string // gateway posts server-to-server here

	SendGridApiKey string
	EmailSender    string
	AdminEmail     string // operator address for order notifications

	TaxRatePercent  float64
	ShippingCharge  float64
	SweepIntervalIn string // cron spec for the pending-payment sweeper
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		GatewayBaseURL:   getEnv("GATEWAY_BASE_URL", "https://test.instamojo.com/api/1.1/"),
		GatewayApiKey:    getEnv("GATEWAY_API_KEY", "test_api_key"),
		GatewayAuthToken: getEnv("GATEWAY_AUTH_TOKEN", "test_auth_token"),
		GatewaySalt:      getEnv("GATEWAY_SALT", "test_salt"),
		PaymentRedirect:  getEnv("PAYMENT_REDIRECT_URL", "http://localhost:3000/payment/verify"),
		PaymentWebhook:   getEnv("PAYMENT_WEBHOOK_URL", "http://localhost:3000/payment/webhook"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "orders@docseva.in"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@docseva.in"),

		TaxRatePercent:  getEnvFloat("TAX_RATE_PERCENT", 18),
		ShippingCharge:  getEnvFloat("SHIPPING_CHARGE", 0),
		SweepIntervalIn: getEnv("PAYMENT_SWEEP_CRON", "@every 10m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GatewaySalt == "test_salt" {
		log.Println("Warning: Using default GATEWAY_SALT. Webhook verification will reject live traffic.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
