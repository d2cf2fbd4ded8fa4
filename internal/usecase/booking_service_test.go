package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func weeklySeries(instructorID uuid.UUID, weeks int) core.BookingSeries {
	ids := make([]uuid.UUID, weeks)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return core.BookingSeries{
		InstructorID: instructorID,
		AnchorDate:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
		SlotIDs:      ids,
	}
}

func TestBookingService_FinalizeOrderWeekly(t *testing.T) {
	var capturedOrder core.Order
	var capturedLessons []core.Lesson
	var capturedPayments []core.LessonPayment
	var capturedTarget core.SlotStatus

	repo := &stubBookingRepo{
		finalizeOrderFn: func(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error) {
			capturedOrder = order
			capturedLessons = lessons
			capturedPayments = payments
			capturedTarget = target
			return &core.FinalizedOrder{Order: order, Lessons: lessons}, nil
		},
	}
	service := NewBookingService(repo, &stubProcessor{}, CheckoutURLs{})

	instructorID := uuid.New()
	series := weeklySeries(instructorID, 3)

	result, err := service.FinalizeOrder(context.Background(), core.FinalizeOrderParams{
		StudentID:    uuid.New(),
		InstructorID: instructorID,
		Mode:         core.PaymentModeWeekly,
		Package: core.PackageSnapshot{
			Name:            "Three pack",
			TotalPricePence: 10000,
			LessonCount:     3,
		},
		Series: series,
	})
	if err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}
	if result == nil {
		t.Fatal("FinalizeOrder() returned nil")
	}

	// Floor division: 10000 / 3 = 3333, remainder retained.
	if capturedOrder.Package.LessonPricePence != 3333 {
		t.Fatalf("per-lesson price = %d, want 3333", capturedOrder.Package.LessonPricePence)
	}
	if capturedTarget != core.SlotStatusReserved {
		t.Fatalf("weekly target = %s, want reserved", capturedTarget)
	}
	if len(capturedLessons) != 3 || len(capturedPayments) != 3 {
		t.Fatalf("got %d lessons / %d payments, want 3/3", len(capturedLessons), len(capturedPayments))
	}

	for i, lesson := range capturedLessons {
		wantDate := series.AnchorDate.AddDate(0, 0, 7*i)
		if !lesson.Date.Equal(wantDate) {
			t.Fatalf("lesson %d date = %v, want %v", i, lesson.Date, wantDate)
		}
		if lesson.AmountPence != 3333 {
			t.Fatalf("lesson %d amount = %d, want 3333", i, lesson.AmountPence)
		}
		wantDue := wantDate.Add(-24 * time.Hour)
		if !capturedPayments[i].DueDate.Equal(wantDue) {
			t.Fatalf("payment %d due = %v, want %v", i, capturedPayments[i].DueDate, wantDue)
		}
	}
}

func TestBookingService_FinalizeOrderUpfront(t *testing.T) {
	var capturedTarget core.SlotStatus
	var capturedPayments []core.LessonPayment

	repo := &stubBookingRepo{
		finalizeOrderFn: func(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error) {
			capturedTarget = target
			capturedPayments = payments
			return &core.FinalizedOrder{Order: order, Lessons: lessons}, nil
		},
	}
	service := NewBookingService(repo, &stubProcessor{}, CheckoutURLs{})

	instructorID := uuid.New()
	_, err := service.FinalizeOrder(context.Background(), core.FinalizeOrderParams{
		StudentID:    uuid.New(),
		InstructorID: instructorID,
		Mode:         core.PaymentModeUpfront,
		Package: core.PackageSnapshot{
			Name:            "Single",
			TotalPricePence: 3500,
			LessonCount:     1,
		},
		Series: weeklySeries(instructorID, 1),
	})
	if err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}
	if capturedTarget != core.SlotStatusBooked {
		t.Fatalf("upfront target = %s, want booked", capturedTarget)
	}
	if len(capturedPayments) != 0 {
		t.Fatalf("upfront mode should create no weekly dues, got %d", len(capturedPayments))
	}
}

func TestBookingService_FinalizeOrderSeriesMismatch(t *testing.T) {
	repo := &stubBookingRepo{
		finalizeOrderFn: func(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error) {
			return nil, errors.New("should not be called")
		},
	}
	service := NewBookingService(repo, &stubProcessor{}, CheckoutURLs{})

	instructorID := uuid.New()
	_, err := service.FinalizeOrder(context.Background(), core.FinalizeOrderParams{
		StudentID:    uuid.New(),
		InstructorID: instructorID,
		Mode:         core.PaymentModeWeekly,
		Package: core.PackageSnapshot{
			Name:            "Five pack",
			TotalPricePence: 17500,
			LessonCount:     5,
		},
		Series: weeklySeries(instructorID, 3),
	})
	if !errors.Is(err, core.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestBookingService_PrepareCheckout(t *testing.T) {
	orderID := uuid.New()
	order := core.Order{
		ID:     orderID,
		Mode:   core.PaymentModeUpfront,
		Status: core.OrderStatusPending,
		Package: core.PackageSnapshot{
			Name:             "Ten pack",
			TotalPricePence:  30000,
			LessonPricePence: 3000,
			LessonCount:      10,
		},
	}

	var capturedCustomer, capturedSession string
	var capturedAmount int64

	repo := &stubBookingRepo{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (*core.Order, error) {
			copy := order
			return &copy, nil
		},
		setCheckoutRefsFn: func(ctx context.Context, id uuid.UUID, customerRef, sessionRef string) error {
			capturedCustomer = customerRef
			capturedSession = sessionRef
			return nil
		},
	}
	processor := &stubProcessor{
		createPriceFn: func(ctx context.Context, productRef string, amountPence int64) (string, error) {
			capturedAmount = amountPence
			return "price_1", nil
		},
	}
	service := NewBookingService(repo, processor, CheckoutURLs{SuccessURL: "https://ok", CancelURL: "https://no"})

	session, err := service.PrepareCheckout(context.Background(), orderID, "student@example.com", "Sam Driver")
	if err != nil {
		t.Fatalf("PrepareCheckout() error = %v", err)
	}
	if session.Ref == "" || session.URL == "" {
		t.Fatalf("incomplete session: %+v", session)
	}
	if capturedCustomer == "" || capturedSession != session.Ref {
		t.Fatalf("refs not stamped: customer %q session %q", capturedCustomer, capturedSession)
	}
	// Upfront checkout charges the whole package.
	if capturedAmount != 30000 {
		t.Fatalf("checkout amount = %d, want 30000", capturedAmount)
	}
}

func TestBookingService_SendDueInvoices(t *testing.T) {
	fixedNow := time.Date(2026, 6, 9, 8, 0, 0, 0, time.UTC)
	lessonID := uuid.New()
	paymentID := uuid.New()

	var capturedBefore time.Time
	var stamped []string

	repo := &stubBookingRepo{
		listDuePaymentsFn: func(ctx context.Context, before time.Time) ([]core.LessonPayment, error) {
			capturedBefore = before
			return []core.LessonPayment{{
				ID:          paymentID,
				LessonID:    lessonID,
				AmountPence: 3500,
				Status:      core.PaymentStatusDue,
				DueDate:     time.Date(2026, 6, 9, 9, 0, 0, 0, time.UTC),
			}}, nil
		},
		getLessonOrderFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, *core.Order, error) {
			return &core.Lesson{
					ID:        lessonID,
					Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
					StartTime: "09:00",
				}, &core.Order{
					ID:          uuid.New(),
					CustomerRef: "cus_1",
					Mode:        core.PaymentModeWeekly,
				}, nil
		},
		setInvoiceRefFn: func(ctx context.Context, id uuid.UUID, invoiceRef string) error {
			stamped = append(stamped, invoiceRef)
			return nil
		},
	}
	processor := &stubProcessor{
		createInvoiceFn: func(ctx context.Context, params core.InvoiceParams) (string, error) {
			if params.CustomerRef != "cus_1" || params.AmountPence != 3500 {
				t.Fatalf("unexpected invoice params: %+v", params)
			}
			return "in_42", nil
		},
	}
	service := NewBookingService(repo, processor, CheckoutURLs{})
	service.WithClock(func() time.Time { return fixedNow })

	sent, err := service.SendDueInvoices(context.Background())
	if err != nil {
		t.Fatalf("SendDueInvoices() error = %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if !capturedBefore.Equal(fixedNow.Add(24 * time.Hour)) {
		t.Fatalf("collection window end = %v, want %v", capturedBefore, fixedNow.Add(24*time.Hour))
	}
	if len(stamped) != 1 || stamped[0] != "in_42" {
		t.Fatalf("invoice ref not stamped: %v", stamped)
	}
}

func TestBookingService_GetOrderLessons(t *testing.T) {
	orderID := uuid.New()
	repo := &stubBookingRepo{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (*core.Order, error) {
			if id != orderID {
				return nil, core.ErrNotFound
			}
			return &core.Order{ID: orderID, Status: core.OrderStatusActive}, nil
		},
		listLessonsFn: func(ctx context.Context, id uuid.UUID) ([]core.Lesson, error) {
			return []core.Lesson{{OrderID: id}, {OrderID: id}}, nil
		},
	}
	service := NewBookingService(repo, &stubProcessor{}, CheckoutURLs{})

	order, lessons, err := service.GetOrderLessons(context.Background(), orderID)
	if err != nil {
		t.Fatalf("GetOrderLessons() error = %v", err)
	}
	if order.ID != orderID {
		t.Fatalf("order id = %s, want %s", order.ID, orderID)
	}
	if len(lessons) != 2 {
		t.Fatalf("lessons = %d, want 2", len(lessons))
	}

	if _, _, err := service.GetOrderLessons(context.Background(), uuid.New()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingService_ApplyInvoicePaidRequiresRef(t *testing.T) {
	service := NewBookingService(&stubBookingRepo{}, &stubProcessor{}, CheckoutURLs{})
	if err := service.ApplyInvoicePaid(context.Background(), ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

type stubBookingRepo struct {
	finalizeOrderFn         func(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error)
	getOrderFn              func(ctx context.Context, id uuid.UUID) (*core.Order, error)
	getOrderByCheckoutRefFn func(ctx context.Context, ref string) (*core.Order, error)
	setCheckoutRefsFn       func(ctx context.Context, orderID uuid.UUID, customerRef, sessionRef string) error
	activateOrderFn         func(ctx context.Context, orderID uuid.UUID, paymentRef string) (*core.Order, error)
	listLessonsFn           func(ctx context.Context, orderID uuid.UUID) ([]core.Lesson, error)
	getLessonOrderFn        func(ctx context.Context, lessonID uuid.UUID) (*core.Lesson, *core.Order, error)
	markInvoicePaidFn       func(ctx context.Context, invoiceRef string, paidAt time.Time) (*core.LessonPayment, error)
	listDuePaymentsFn       func(ctx context.Context, before time.Time) ([]core.LessonPayment, error)
	setInvoiceRefFn         func(ctx context.Context, paymentID uuid.UUID, invoiceRef string) error
}

func (s *stubBookingRepo) FinalizeOrder(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error) {
	if s.finalizeOrderFn != nil {
		return s.finalizeOrderFn(ctx, order, lessons, payments, target)
	}
	return nil, nil
}

func (s *stubBookingRepo) GetOrder(ctx context.Context, id uuid.UUID) (*core.Order, error) {
	if s.getOrderFn != nil {
		return s.getOrderFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubBookingRepo) GetOrderByCheckoutRef(ctx context.Context, ref string) (*core.Order, error) {
	if s.getOrderByCheckoutRefFn != nil {
		return s.getOrderByCheckoutRefFn(ctx, ref)
	}
	return nil, core.ErrNotFound
}

func (s *stubBookingRepo) SetCheckoutRefs(ctx context.Context, orderID uuid.UUID, customerRef, sessionRef string) error {
	if s.setCheckoutRefsFn != nil {
		return s.setCheckoutRefsFn(ctx, orderID, customerRef, sessionRef)
	}
	return nil
}

func (s *stubBookingRepo) ActivateOrder(ctx context.Context, orderID uuid.UUID, paymentRef string) (*core.Order, error) {
	if s.activateOrderFn != nil {
		return s.activateOrderFn(ctx, orderID, paymentRef)
	}
	return &core.Order{ID: orderID, Status: core.OrderStatusActive}, nil
}

func (s *stubBookingRepo) ListLessons(ctx context.Context, orderID uuid.UUID) ([]core.Lesson, error) {
	if s.listLessonsFn != nil {
		return s.listLessonsFn(ctx, orderID)
	}
	return nil, nil
}

func (s *stubBookingRepo) GetLessonOrder(ctx context.Context, lessonID uuid.UUID) (*core.Lesson, *core.Order, error) {
	if s.getLessonOrderFn != nil {
		return s.getLessonOrderFn(ctx, lessonID)
	}
	return nil, nil, core.ErrNotFound
}

func (s *stubBookingRepo) MarkInvoicePaid(ctx context.Context, invoiceRef string, paidAt time.Time) (*core.LessonPayment, error) {
	if s.markInvoicePaidFn != nil {
		return s.markInvoicePaidFn(ctx, invoiceRef, paidAt)
	}
	return &core.LessonPayment{InvoiceRef: invoiceRef, Status: core.PaymentStatusPaid}, nil
}

func (s *stubBookingRepo) ListDuePayments(ctx context.Context, before time.Time) ([]core.LessonPayment, error) {
	if s.listDuePaymentsFn != nil {
		return s.listDuePaymentsFn(ctx, before)
	}
	return nil, nil
}

func (s *stubBookingRepo) SetInvoiceRef(ctx context.Context, paymentID uuid.UUID, invoiceRef string) error {
	if s.setInvoiceRefFn != nil {
		return s.setInvoiceRefFn(ctx, paymentID, invoiceRef)
	}
	return nil
}

type stubProcessor struct {
	createCustomerFn        func(ctx context.Context, params core.CustomerParams) (string, error)
	createProductFn         func(ctx context.Context, name, description string) (string, error)
	createPriceFn           func(ctx context.Context, productRef string, amountPence int64) (string, error)
	createCheckoutSessionFn func(ctx context.Context, params core.CheckoutParams) (*core.CheckoutSession, error)
	createInvoiceFn         func(ctx context.Context, params core.InvoiceParams) (string, error)
	createTransferFn        func(ctx context.Context, params core.TransferParams) (string, error)
	retrieveAccountFn       func(ctx context.Context, accountRef string) (*core.PayoutAccount, error)
	verifyFn                func(payload []byte, signature string) (*core.InboundEvent, error)
}

func (s *stubProcessor) CreateCustomer(ctx context.Context, params core.CustomerParams) (string, error) {
	if s.createCustomerFn != nil {
		return s.createCustomerFn(ctx, params)
	}
	return "cus_stub", nil
}

func (s *stubProcessor) CreateProduct(ctx context.Context, name, description string) (string, error) {
	if s.createProductFn != nil {
		return s.createProductFn(ctx, name, description)
	}
	return "prod_stub", nil
}

func (s *stubProcessor) CreatePrice(ctx context.Context, productRef string, amountPence int64) (string, error) {
	if s.createPriceFn != nil {
		return s.createPriceFn(ctx, productRef, amountPence)
	}
	return "price_stub", nil
}

func (s *stubProcessor) CreateCheckoutSession(ctx context.Context, params core.CheckoutParams) (*core.CheckoutSession, error) {
	if s.createCheckoutSessionFn != nil {
		return s.createCheckoutSessionFn(ctx, params)
	}
	return &core.CheckoutSession{Ref: "cs_stub", URL: "https://checkout/cs_stub"}, nil
}

func (s *stubProcessor) CreateInvoice(ctx context.Context, params core.InvoiceParams) (string, error) {
	if s.createInvoiceFn != nil {
		return s.createInvoiceFn(ctx, params)
	}
	return "in_stub", nil
}

func (s *stubProcessor) CreateTransfer(ctx context.Context, params core.TransferParams) (string, error) {
	if s.createTransferFn != nil {
		return s.createTransferFn(ctx, params)
	}
	return "tr_stub", nil
}

func (s *stubProcessor) RetrieveAccount(ctx context.Context, accountRef string) (*core.PayoutAccount, error) {
	if s.retrieveAccountFn != nil {
		return s.retrieveAccountFn(ctx, accountRef)
	}
	return &core.PayoutAccount{Ref: accountRef, DetailsSubmitted: true, ChargesEnabled: true, PayoutsEnabled: true}, nil
}

func (s *stubProcessor) VerifyWebhookSignature(payload []byte, signature string) (*core.InboundEvent, error) {
	if s.verifyFn != nil {
		return s.verifyFn(payload, signature)
	}
	return nil, core.ErrValidation
}
