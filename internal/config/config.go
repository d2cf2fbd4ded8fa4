package config

import (
	"fmt"
	"os"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress        string
	DatabaseURL        string
	WebhookSecret      string
	CheckoutBaseURL    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddress:        valueOrDefault(os.Getenv("HTTP_ADDRESS"), ":8080"),
		DatabaseURL:        valueOrDefault(os.Getenv("DATABASE_URL"), ""),
		WebhookSecret:      valueOrDefault(os.Getenv("WEBHOOK_SECRET"), ""),
		CheckoutBaseURL:    valueOrDefault(os.Getenv("CHECKOUT_BASE_URL"), ""),
		CheckoutSuccessURL: valueOrDefault(os.Getenv("CHECKOUT_SUCCESS_URL"), "http://localhost:8080/checkout/success"),
		CheckoutCancelURL:  valueOrDefault(os.Getenv("CHECKOUT_CANCEL_URL"), "http://localhost:8080/checkout/cancel"),
	}

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL must be provided")
	}
	if cfg.WebhookSecret == "" {
		return cfg, fmt.Errorf("WEBHOOK_SECRET must be provided")
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
