package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestWebhookService_CheckoutCompletedActivatesOrder(t *testing.T) {
	orderID := uuid.New()
	var activated uuid.UUID
	var paymentRef string

	processor := &stubProcessor{
		verifyFn: func(payload []byte, signature string) (*core.InboundEvent, error) {
			return &core.InboundEvent{
				ID:         "evt_1",
				Type:       core.EventCheckoutCompleted,
				ObjectRef:  "cs_1",
				PaymentRef: "pay_1",
				Paid:       true,
			}, nil
		},
	}
	bookings := &stubBookingService{
		orderByCheckoutRefFn: func(ctx context.Context, ref string) (*core.Order, error) {
			if ref != "cs_1" {
				t.Fatalf("looked up checkout %q, want cs_1", ref)
			}
			return &core.Order{ID: orderID, Status: core.OrderStatusPending}, nil
		},
		applyPaymentConfirmedFn: func(ctx context.Context, id uuid.UUID, ref string) error {
			activated = id
			paymentRef = ref
			return nil
		},
	}
	service := NewWebhookService(processor, &stubLedger{}, bookings, &stubInstructorRepo{}, nil)

	outcome, err := service.ProcessEvent(context.Background(), []byte(`{}`), "sig")
	if err != nil {
		t.Fatalf("ProcessEvent() error = %v", err)
	}
	if outcome.Duplicate {
		t.Fatal("first delivery should not be a duplicate")
	}
	if activated != orderID || paymentRef != "pay_1" {
		t.Fatalf("order %v activated with ref %q", activated, paymentRef)
	}
}

func TestWebhookService_ReplayShortCircuits(t *testing.T) {
	processor := &stubProcessor{
		verifyFn: func(payload []byte, signature string) (*core.InboundEvent, error) {
			return &core.InboundEvent{ID: "evt_1", Type: core.EventInvoicePaid, ObjectRef: "in_1"}, nil
		},
	}
	bookings := &stubBookingService{
		applyInvoicePaidFn: func(ctx context.Context, invoiceRef string) error {
			t.Fatal("replayed event must not be dispatched")
			return nil
		},
	}
	service := NewWebhookService(processor, &stubLedger{admitted: map[string]bool{"evt_1": true}}, bookings, &stubInstructorRepo{}, nil)

	outcome, err := service.ProcessEvent(context.Background(), []byte(`{}`), "sig")
	if err != nil {
		t.Fatalf("ProcessEvent() error = %v", err)
	}
	if !outcome.Duplicate {
		t.Fatal("replay should be reported as duplicate")
	}
}

func TestWebhookService_BadSignatureRejected(t *testing.T) {
	processor := &stubProcessor{
		verifyFn: func(payload []byte, signature string) (*core.InboundEvent, error) {
			return nil, core.ErrValidation
		},
	}
	ledger := &stubLedger{}
	service := NewWebhookService(processor, ledger, &stubBookingService{}, &stubInstructorRepo{}, nil)

	if _, err := service.ProcessEvent(context.Background(), []byte(`{}`), "bad"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(ledger.seen) != 0 {
		t.Fatal("unverified delivery must not reach the ledger")
	}
}

func TestWebhookService_AccountUpdated(t *testing.T) {
	instructorID := uuid.New()
	var updated [3]bool
	var updatedID uuid.UUID

	processor := &stubProcessor{
		verifyFn: func(payload []byte, signature string) (*core.InboundEvent, error) {
			return &core.InboundEvent{
				ID:        "evt_acct",
				Type:      core.EventAccountUpdated,
				ObjectRef: "acct_1",
				Account:   &core.AccountState{DetailsSubmitted: true, ChargesEnabled: true, PayoutsEnabled: false},
			}, nil
		},
	}
	instructors := &stubInstructorRepo{
		getByAccountRefFn: func(ctx context.Context, ref string) (*core.Instructor, error) {
			return &core.Instructor{ID: instructorID, AccountRef: ref}, nil
		},
		updateAccountStatusFn: func(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error {
			updatedID = id
			updated = [3]bool{onboardingComplete, chargesEnabled, payoutsEnabled}
			return nil
		},
	}
	service := NewWebhookService(processor, &stubLedger{}, &stubBookingService{}, instructors, nil)

	if _, err := service.ProcessEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("ProcessEvent() error = %v", err)
	}
	if updatedID != instructorID {
		t.Fatalf("updated instructor %v, want %v", updatedID, instructorID)
	}
	if updated != [3]bool{true, true, false} {
		t.Fatalf("unexpected flags: %v", updated)
	}
}

func TestWebhookService_InvoicePaidUnmatchedTolerated(t *testing.T) {
	processor := &stubProcessor{
		verifyFn: func(payload []byte, signature string) (*core.InboundEvent, error) {
			return &core.InboundEvent{ID: "evt_in", Type: core.EventInvoicePaid, ObjectRef: "in_missing"}, nil
		},
	}
	bookings := &stubBookingService{
		applyInvoicePaidFn: func(ctx context.Context, invoiceRef string) error {
			return core.ErrNotFound
		},
	}
	service := NewWebhookService(processor, &stubLedger{}, bookings, &stubInstructorRepo{}, nil)

	if _, err := service.ProcessEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("unmatched invoice should be tolerated, got %v", err)
	}
}

type stubLedger struct {
	admitted map[string]bool
	seen     []string
}

func (s *stubLedger) Admit(ctx context.Context, eventID string, eventType core.EventType, payload []byte) (bool, error) {
	s.seen = append(s.seen, eventID)
	if s.admitted[eventID] {
		return false, nil
	}
	if s.admitted == nil {
		s.admitted = make(map[string]bool)
	}
	s.admitted[eventID] = true
	return true, nil
}

type stubBookingService struct {
	finalizeOrderFn         func(ctx context.Context, params core.FinalizeOrderParams) (*core.FinalizedOrder, error)
	orderByCheckoutRefFn    func(ctx context.Context, ref string) (*core.Order, error)
	prepareCheckoutFn       func(ctx context.Context, orderID uuid.UUID, buyerEmail, buyerName string) (*core.CheckoutSession, error)
	applyPaymentConfirmedFn func(ctx context.Context, orderID uuid.UUID, paymentRef string) error
	applyInvoicePaidFn      func(ctx context.Context, invoiceRef string) error
	sendDueInvoicesFn       func(ctx context.Context) (int, error)
}

func (s *stubBookingService) FinalizeOrder(ctx context.Context, params core.FinalizeOrderParams) (*core.FinalizedOrder, error) {
	if s.finalizeOrderFn != nil {
		return s.finalizeOrderFn(ctx, params)
	}
	return nil, nil
}

func (s *stubBookingService) GetOrderLessons(ctx context.Context, orderID uuid.UUID) (*core.Order, []core.Lesson, error) {
	return nil, nil, core.ErrNotFound
}

func (s *stubBookingService) OrderByCheckoutRef(ctx context.Context, ref string) (*core.Order, error) {
	if s.orderByCheckoutRefFn != nil {
		return s.orderByCheckoutRefFn(ctx, ref)
	}
	return nil, core.ErrNotFound
}

func (s *stubBookingService) PrepareCheckout(ctx context.Context, orderID uuid.UUID, buyerEmail, buyerName string) (*core.CheckoutSession, error) {
	if s.prepareCheckoutFn != nil {
		return s.prepareCheckoutFn(ctx, orderID, buyerEmail, buyerName)
	}
	return nil, nil
}

func (s *stubBookingService) ApplyPaymentConfirmed(ctx context.Context, orderID uuid.UUID, paymentRef string) error {
	if s.applyPaymentConfirmedFn != nil {
		return s.applyPaymentConfirmedFn(ctx, orderID, paymentRef)
	}
	return nil
}

func (s *stubBookingService) ApplyInvoicePaid(ctx context.Context, invoiceRef string) error {
	if s.applyInvoicePaidFn != nil {
		return s.applyInvoicePaidFn(ctx, invoiceRef)
	}
	return nil
}

func (s *stubBookingService) SendDueInvoices(ctx context.Context) (int, error) {
	if s.sendDueInvoicesFn != nil {
		return s.sendDueInvoicesFn(ctx)
	}
	return 0, nil
}
