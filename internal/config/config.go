package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	AdminEmail    string
	AdminPassword string

	// best-effort order notifications
	OrderWebhookURL string

	// hosted card checkout
	PaymentGatewayURL  string
	PaymentGatewayKey  string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

func Load() Config {
	return Config{
		Addr:        getenv("HIDESTYLE_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		OrderWebhookURL: os.Getenv("ORDER_WEBHOOK_URL"),

		PaymentGatewayURL:  os.Getenv("PAYMENT_GATEWAY_URL"),
		PaymentGatewayKey:  os.Getenv("PAYMENT_GATEWAY_KEY"),
		CheckoutSuccessURL: getenv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		CheckoutCancelURL:  getenv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
