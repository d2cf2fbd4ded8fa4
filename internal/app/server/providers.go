package server

import (
	"log/slog"
	"os"

	"github.com/drivekit/drivekit/internal/adapter/notify"
	"github.com/drivekit/drivekit/internal/adapter/payments/fake"
	"github.com/drivekit/drivekit/internal/config"
	"github.com/drivekit/drivekit/internal/usecase"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger constructs the process-wide structured logger.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// NewFakePaymentProcessor returns a fake payment processor implementation.
func NewFakePaymentProcessor(cfg config.Config) *fake.Processor {
	return fake.NewProcessor(cfg.CheckoutBaseURL, cfg.WebhookSecret)
}

// NewNotifier returns the log-backed notifier.
func NewNotifier(logger *slog.Logger) *notify.LogNotifier {
	return notify.NewLogNotifier(logger)
}

// NewCheckoutURLs extracts the checkout redirect targets from configuration.
func NewCheckoutURLs(cfg config.Config) usecase.CheckoutURLs {
	return usecase.CheckoutURLs{
		SuccessURL: cfg.CheckoutSuccessURL,
		CancelURL:  cfg.CheckoutCancelURL,
	}
}
