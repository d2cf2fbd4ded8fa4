package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/drivekit/drivekit/internal/core"
)

// WebhookService verifies, de-duplicates and dispatches inbound payment
// processor events.
type WebhookService struct {
	processor   core.PaymentProcessor
	ledger      core.EventLedger
	bookings    core.BookingService
	instructors core.InstructorRepository
	logger      *slog.Logger
}

// NewWebhookService constructs a WebhookService.
func NewWebhookService(
	processor core.PaymentProcessor,
	ledger core.EventLedger,
	bookings core.BookingService,
	instructors core.InstructorRepository,
	logger *slog.Logger,
) *WebhookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{
		processor:   processor,
		ledger:      ledger,
		bookings:    bookings,
		instructors: instructors,
		logger:      logger,
	}
}

var _ core.WebhookService = (*WebhookService)(nil)

// ProcessEvent verifies the delivery's signature, admits it into the event
// ledger and applies it. A replayed event id short-circuits with a duplicate
// outcome so the sender sees success and stops retrying.
func (s *WebhookService) ProcessEvent(ctx context.Context, payload []byte, signature string) (*core.WebhookOutcome, error) {
	event, err := s.processor.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return nil, err
	}

	admitted, err := s.ledger.Admit(ctx, event.ID, event.Type, payload)
	if err != nil {
		return nil, err
	}
	outcome := &core.WebhookOutcome{EventID: event.ID, Type: event.Type}
	if !admitted {
		outcome.Duplicate = true
		return outcome, nil
	}

	if err := s.dispatch(ctx, event); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *WebhookService) dispatch(ctx context.Context, event *core.InboundEvent) error {
	switch event.Type {
	case core.EventCheckoutCompleted, core.EventPaymentSucceeded:
		return s.applyPaymentConfirmed(ctx, event)

	case core.EventInvoicePaid:
		err := s.bookings.ApplyInvoicePaid(ctx, event.ObjectRef)
		if errors.Is(err, core.ErrNotFound) {
			// A due can be settled manually before its invoice event lands.
			s.logger.WarnContext(ctx, "invoice event matched no payment",
				slog.String("event_id", event.ID),
				slog.String("invoice_ref", event.ObjectRef),
			)
			return nil
		}
		return err

	case core.EventAccountUpdated:
		return s.applyAccountUpdated(ctx, event)

	case core.EventPaymentFailed, core.EventInvoicePaymentFailed:
		s.logger.WarnContext(ctx, "payment failed",
			slog.String("event_id", event.ID),
			slog.String("event_type", string(event.Type)),
			slog.String("object_ref", event.ObjectRef),
		)
		return nil

	default:
		// Unknown types are admitted and ignored so the sender stops
		// retrying them.
		s.logger.InfoContext(ctx, "ignoring event",
			slog.String("event_id", event.ID),
			slog.String("event_type", string(event.Type)),
		)
		return nil
	}
}

func (s *WebhookService) applyPaymentConfirmed(ctx context.Context, event *core.InboundEvent) error {
	if event.Type == core.EventCheckoutCompleted && !event.Paid {
		s.logger.InfoContext(ctx, "checkout completed unpaid",
			slog.String("event_id", event.ID),
			slog.String("checkout_ref", event.ObjectRef),
		)
		return nil
	}

	order, err := s.orderForEvent(ctx, event)
	if err != nil {
		return err
	}
	return s.bookings.ApplyPaymentConfirmed(ctx, order.ID, event.PaymentRef)
}

func (s *WebhookService) orderForEvent(ctx context.Context, event *core.InboundEvent) (*core.Order, error) {
	order, err := s.bookings.OrderByCheckoutRef(ctx, event.ObjectRef)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("%w: no order for checkout %s", core.ErrNotFound, event.ObjectRef)
		}
		return nil, err
	}
	return order, nil
}

func (s *WebhookService) applyAccountUpdated(ctx context.Context, event *core.InboundEvent) error {
	if event.Account == nil {
		return fmt.Errorf("%w: account event without account state", core.ErrValidation)
	}
	instructor, err := s.instructors.GetByAccountRef(ctx, event.ObjectRef)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.WarnContext(ctx, "account event matched no instructor",
				slog.String("event_id", event.ID),
				slog.String("account_ref", event.ObjectRef),
			)
			return nil
		}
		return err
	}
	return s.instructors.UpdateAccountStatus(ctx, instructor.ID,
		event.Account.DetailsSubmitted,
		event.Account.ChargesEnabled,
		event.Account.PayoutsEnabled,
	)
}
