package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// invoiceLeadTime is how far ahead of a lesson its weekly due is collectable.
const invoiceLeadTime = 24 * time.Hour

// BookingService coordinates order finalization, checkout preparation and the
// weekly invoicing lifecycle.
type BookingService struct {
	bookings  core.BookingRepository
	processor core.PaymentProcessor
	checkout  CheckoutURLs
	now       func() time.Time
}

// CheckoutURLs are the redirect targets handed to the processor when a
// checkout session is opened.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

// NewBookingService constructs a BookingService.
func NewBookingService(bookings core.BookingRepository, processor core.PaymentProcessor, checkout CheckoutURLs) *BookingService {
	return &BookingService{
		bookings:  bookings,
		processor: processor,
		checkout:  checkout,
		now:       time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *BookingService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.BookingService = (*BookingService)(nil)

// FinalizeOrder turns a held series into a pending order with one lesson per
// slot, dated weekly from the anchor. The package snapshot is copied onto the
// order so later catalog edits never change what was sold. Weekly mode gets a
// due per lesson payable 24 hours before it runs; upfront slots go straight
// to booked, weekly to reserved.
func (s *BookingService) FinalizeOrder(ctx context.Context, params core.FinalizeOrderParams) (*core.FinalizedOrder, error) {
	if params.StudentID == uuid.Nil || params.InstructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: student and instructor ids required", core.ErrValidation)
	}
	if !params.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown payment mode %q", core.ErrValidation, params.Mode)
	}
	if params.Package.LessonCount < 1 {
		return nil, fmt.Errorf("%w: package must contain at least one lesson", core.ErrValidation)
	}
	if params.Package.TotalPricePence <= 0 {
		return nil, fmt.Errorf("%w: package price must be positive", core.ErrValidation)
	}
	if len(params.Series.SlotIDs) != params.Package.LessonCount {
		return nil, fmt.Errorf("%w: series has %d slots for a %d lesson package",
			core.ErrInvalidSeries, len(params.Series.SlotIDs), params.Package.LessonCount)
	}

	snapshot := params.Package
	// Floor division; the undistributed remainder stays with the platform.
	snapshot.LessonPricePence = snapshot.TotalPricePence / int64(snapshot.LessonCount)

	order := core.Order{
		ID:           uuid.New(),
		StudentID:    params.StudentID,
		InstructorID: params.InstructorID,
		Package:      snapshot,
		Mode:         params.Mode,
		Status:       core.OrderStatusPending,
	}

	lessons := make([]core.Lesson, 0, len(params.Series.SlotIDs))
	payments := make([]core.LessonPayment, 0, len(params.Series.SlotIDs))
	for i, slotID := range params.Series.SlotIDs {
		id := slotID
		lessonDate := params.Series.AnchorDate.AddDate(0, 0, 7*i)
		lesson := core.Lesson{
			ID:           uuid.New(),
			OrderID:      order.ID,
			InstructorID: params.InstructorID,
			SlotID:       &id,
			Date:         lessonDate,
			StartTime:    params.Series.StartTime,
			EndTime:      params.Series.EndTime,
			AmountPence:  snapshot.LessonPricePence,
			Status:       core.LessonStatusPending,
		}
		lessons = append(lessons, lesson)

		if params.Mode == core.PaymentModeWeekly {
			payments = append(payments, core.LessonPayment{
				LessonID:    lesson.ID,
				AmountPence: snapshot.LessonPricePence,
				Status:      core.PaymentStatusDue,
				DueDate:     lessonDate.Add(-invoiceLeadTime),
			})
		}
	}

	target := core.SlotStatusBooked
	if params.Mode == core.PaymentModeWeekly {
		target = core.SlotStatusReserved
	}
	return s.bookings.FinalizeOrder(ctx, order, lessons, payments, target)
}

// GetOrderLessons returns an order together with its lessons in date order.
func (s *BookingService) GetOrderLessons(ctx context.Context, orderID uuid.UUID) (*core.Order, []core.Lesson, error) {
	order, err := s.bookings.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	lessons, err := s.bookings.ListLessons(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, lessons, nil
}

// OrderByCheckoutRef resolves the order an inbound checkout event points at.
func (s *BookingService) OrderByCheckoutRef(ctx context.Context, ref string) (*core.Order, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: checkout reference required", core.ErrValidation)
	}
	return s.bookings.GetOrderByCheckoutRef(ctx, ref)
}

// PrepareCheckout registers the buyer, product and price with the processor,
// opens a checkout session and stamps its references on the order.
func (s *BookingService) PrepareCheckout(ctx context.Context, orderID uuid.UUID, buyerEmail, buyerName string) (*core.CheckoutSession, error) {
	order, err := s.bookings.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != core.OrderStatusPending {
		return nil, fmt.Errorf("%w: order %s is %s, not pending", core.ErrValidation, order.ID, order.Status)
	}

	customerRef := order.CustomerRef
	if customerRef == "" {
		customerRef, err = s.processor.CreateCustomer(ctx, core.CustomerParams{
			Email: buyerEmail,
			Name:  buyerName,
			Meta:  map[string]string{"order_id": order.ID.String()},
		})
		if err != nil {
			return nil, err
		}
	}

	productRef, err := s.processor.CreateProduct(ctx, order.Package.Name,
		fmt.Sprintf("%d driving lessons", order.Package.LessonCount))
	if err != nil {
		return nil, err
	}

	// Upfront charges the full package; weekly only anchors the session and
	// collects per lesson through invoices.
	amount := order.Package.TotalPricePence
	if order.Mode == core.PaymentModeWeekly {
		amount = order.Package.LessonPricePence
	}
	priceRef, err := s.processor.CreatePrice(ctx, productRef, amount)
	if err != nil {
		return nil, err
	}

	session, err := s.processor.CreateCheckoutSession(ctx, core.CheckoutParams{
		CustomerRef: customerRef,
		PriceRef:    priceRef,
		AmountPence: amount,
		OrderID:     order.ID,
		SuccessURL:  s.checkout.SuccessURL,
		CancelURL:   s.checkout.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	if err := s.bookings.SetCheckoutRefs(ctx, order.ID, customerRef, session.Ref); err != nil {
		return nil, err
	}
	return session, nil
}

// ApplyPaymentConfirmed activates a pending order. Replays against an already
// active order are a no-op.
func (s *BookingService) ApplyPaymentConfirmed(ctx context.Context, orderID uuid.UUID, paymentRef string) error {
	_, err := s.bookings.ActivateOrder(ctx, orderID, paymentRef)
	return err
}

// ApplyInvoicePaid settles the weekly due the invoice reference points at.
func (s *BookingService) ApplyInvoicePaid(ctx context.Context, invoiceRef string) error {
	if invoiceRef == "" {
		return fmt.Errorf("%w: invoice reference required", core.ErrValidation)
	}
	_, err := s.bookings.MarkInvoicePaid(ctx, invoiceRef, s.now().UTC())
	return err
}

// SendDueInvoices creates processor invoices for weekly dues entering their
// 24-hour collection window and stamps each reference back. It returns how
// many invoices were sent.
func (s *BookingService) SendDueInvoices(ctx context.Context) (int, error) {
	now := s.now().UTC()
	due, err := s.bookings.ListDuePayments(ctx, now.Add(invoiceLeadTime))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, payment := range due {
		lesson, order, err := s.bookings.GetLessonOrder(ctx, payment.LessonID)
		if err != nil {
			return sent, err
		}
		invoiceRef, err := s.processor.CreateInvoice(ctx, core.InvoiceParams{
			CustomerRef: order.CustomerRef,
			AmountPence: payment.AmountPence,
			LessonID:    payment.LessonID,
			DueDate:     payment.DueDate,
			Description: fmt.Sprintf("Driving lesson on %s %s", lesson.Date.Format("2006-01-02"), lesson.StartTime),
		})
		if err != nil {
			return sent, err
		}
		if err := s.bookings.SetInvoiceRef(ctx, payment.ID, invoiceRef); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
