package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	entlesson "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	entpayment "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	entorder "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	entslot "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/drivekit/drivekit/internal/core"
)

// BookingRepository persists orders, lessons and weekly dues using Ent.
type BookingRepository struct {
	client *entgenerated.Client
}

// NewBookingRepository constructs an Ent-backed booking repository.
func NewBookingRepository(client *entgenerated.Client) *BookingRepository {
	return &BookingRepository{client: client}
}

var _ core.BookingRepository = (*BookingRepository)(nil)

// FinalizeOrder confirms every series slot from draft to the target status
// and inserts the order, its lessons and any weekly dues in one transaction.
// Each slot must be held as draft and carry the lesson's instructor, date and
// interval; any mismatch aborts with ErrInvalidSeries and nothing is mutated.
func (r *BookingRepository) FinalizeOrder(ctx context.Context, order core.Order, lessons []core.Lesson, payments []core.LessonPayment, target core.SlotStatus) (*core.FinalizedOrder, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	orderRow, err := tx.Order.Create().
		SetID(order.ID).
		SetStudentID(order.StudentID).
		SetInstructorID(order.InstructorID).
		SetPackageName(order.Package.Name).
		SetPackageTotalPricePence(order.Package.TotalPricePence).
		SetPackageLessonPricePence(order.Package.LessonPricePence).
		SetPackageLessonCount(order.Package.LessonCount).
		SetPaymentMode(string(order.Mode)).
		SetStatus(string(core.OrderStatusPending)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	for _, l := range lessons {
		if l.SlotID == nil {
			_ = tx.Rollback()
			return nil, core.ErrInvalidSeries
		}
		// The slot must match the lesson it backs, not just exist as a
		// draft, so a tampered series cannot desynchronize lessons from
		// their slots.
		confirmed, err := tx.TimeSlot.Update().
			Where(
				entslot.IDEQ(*l.SlotID),
				entslot.StatusEQ(string(core.SlotStatusDraft)),
				entslot.InstructorIDEQ(l.InstructorID),
				entslot.DateEQ(dateOnly(l.Date)),
				entslot.StartTimeEQ(l.StartTime),
				entslot.EndTimeEQ(l.EndTime),
			).
			SetStatus(string(target)).
			SetIsAvailable(false).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if confirmed == 0 {
			_ = tx.Rollback()
			return nil, core.ErrInvalidSeries
		}
	}

	lessonRows := make([]*entgenerated.Lesson, 0, len(lessons))
	for _, l := range lessons {
		row, err := tx.Lesson.Create().
			SetID(l.ID).
			SetOrderID(orderRow.ID).
			SetInstructorID(l.InstructorID).
			SetSlotID(*l.SlotID).
			SetDate(l.Date).
			SetStartTime(l.StartTime).
			SetEndTime(l.EndTime).
			SetAmountPence(l.AmountPence).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		lessonRows = append(lessonRows, row)
	}

	for _, p := range payments {
		if _, err := tx.LessonPayment.Create().
			SetLessonID(p.LessonID).
			SetAmountPence(p.AmountPence).
			SetDueDate(p.DueDate).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &core.FinalizedOrder{
		Order: *toDomainOrder(orderRow),
		Lessons: lo.Map(lessonRows, func(row *entgenerated.Lesson, _ int) core.Lesson {
			return *toDomainLesson(row)
		}),
	}, nil
}

// GetOrder fetches an order by id.
func (r *BookingRepository) GetOrder(ctx context.Context, id uuid.UUID) (*core.Order, error) {
	row, err := r.client.Order.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainOrder(row), nil
}

// GetOrderByCheckoutRef fetches the order an inbound checkout event points at.
func (r *BookingRepository) GetOrderByCheckoutRef(ctx context.Context, ref string) (*core.Order, error) {
	row, err := r.client.Order.Query().
		Where(entorder.CheckoutSessionRefEQ(ref)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainOrder(row), nil
}

// SetCheckoutRefs stamps the processor customer and checkout session
// references on an order.
func (r *BookingRepository) SetCheckoutRefs(ctx context.Context, orderID uuid.UUID, customerRef, sessionRef string) error {
	err := r.client.Order.UpdateOneID(orderID).
		SetCustomerRef(customerRef).
		SetCheckoutSessionRef(sessionRef).
		Exec(ctx)
	if entgenerated.IsNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

// ActivateOrder moves a pending order to active. Calling it on an order that
// is already active is a no-op, not an error.
func (r *BookingRepository) ActivateOrder(ctx context.Context, orderID uuid.UUID, paymentRef string) (*core.Order, error) {
	update := r.client.Order.Update().
		Where(
			entorder.IDEQ(orderID),
			entorder.StatusEQ(string(core.OrderStatusPending)),
		).
		SetStatus(string(core.OrderStatusActive))
	if paymentRef != "" {
		update.SetPaymentRef(paymentRef)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, err
	}
	return r.GetOrder(ctx, orderID)
}

// ListLessons returns an order's lessons ordered by date.
func (r *BookingRepository) ListLessons(ctx context.Context, orderID uuid.UUID) ([]core.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.OrderIDEQ(orderID)).
		Order(entlesson.ByDate()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Lesson, _ int) core.Lesson {
		return *toDomainLesson(row)
	}), nil
}

// GetLessonOrder fetches a lesson together with the order that owns it.
func (r *BookingRepository) GetLessonOrder(ctx context.Context, lessonID uuid.UUID) (*core.Lesson, *core.Order, error) {
	row, err := r.client.Lesson.Query().
		Where(entlesson.IDEQ(lessonID)).
		WithOrder().
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, nil, core.ErrNotFound
		}
		return nil, nil, err
	}
	return toDomainLesson(row), toDomainOrder(row.Edges.Order), nil
}

// MarkInvoicePaid settles the weekly due the invoice reference points at.
// An unmatched reference reports ErrNotFound; callers treat that as a
// loggable condition, not a fatal one.
func (r *BookingRepository) MarkInvoicePaid(ctx context.Context, invoiceRef string, paidAt time.Time) (*core.LessonPayment, error) {
	n, err := r.client.LessonPayment.Update().
		Where(entpayment.InvoiceRefEQ(invoiceRef)).
		SetStatus(string(core.PaymentStatusPaid)).
		SetPaidAt(paidAt).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, core.ErrNotFound
	}

	row, err := r.client.LessonPayment.Query().
		Where(entpayment.InvoiceRefEQ(invoiceRef)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainPayment(row), nil
}

// ListDuePayments returns weekly dues that are still owed, not yet invoiced,
// and due before the given instant.
func (r *BookingRepository) ListDuePayments(ctx context.Context, before time.Time) ([]core.LessonPayment, error) {
	rows, err := r.client.LessonPayment.Query().
		Where(
			entpayment.StatusEQ(string(core.PaymentStatusDue)),
			entpayment.InvoiceRefEQ(""),
			entpayment.DueDateLTE(before),
		).
		Order(entpayment.ByDueDate()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.LessonPayment, _ int) core.LessonPayment {
		return *toDomainPayment(row)
	}), nil
}

// SetInvoiceRef stamps the processor invoice reference on a weekly due.
func (r *BookingRepository) SetInvoiceRef(ctx context.Context, paymentID uuid.UUID, invoiceRef string) error {
	err := r.client.LessonPayment.UpdateOneID(paymentID).
		SetInvoiceRef(invoiceRef).
		Exec(ctx)
	if entgenerated.IsNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

func toDomainOrder(row *entgenerated.Order) *core.Order {
	if row == nil {
		return nil
	}
	return &core.Order{
		ID:           row.ID,
		StudentID:    row.StudentID,
		InstructorID: row.InstructorID,
		Package: core.PackageSnapshot{
			Name:             row.PackageName,
			TotalPricePence:  row.PackageTotalPricePence,
			LessonPricePence: row.PackageLessonPricePence,
			LessonCount:      row.PackageLessonCount,
		},
		Mode:               core.PaymentMode(row.PaymentMode),
		Status:             core.OrderStatus(row.Status),
		CustomerRef:        row.CustomerRef,
		CheckoutSessionRef: row.CheckoutSessionRef,
		PaymentRef:         row.PaymentRef,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func toDomainLesson(row *entgenerated.Lesson) *core.Lesson {
	if row == nil {
		return nil
	}
	lesson := &core.Lesson{
		ID:           row.ID,
		OrderID:      row.OrderID,
		InstructorID: row.InstructorID,
		Date:         row.Date,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		AmountPence:  row.AmountPence,
		Status:       core.LessonStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.SlotID != nil {
		id := *row.SlotID
		lesson.SlotID = &id
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		lesson.CompletedAt = &t
	}
	return lesson
}

func toDomainPayment(row *entgenerated.LessonPayment) *core.LessonPayment {
	if row == nil {
		return nil
	}
	payment := &core.LessonPayment{
		ID:          row.ID,
		LessonID:    row.LessonID,
		AmountPence: row.AmountPence,
		Status:      core.PaymentStatus(row.Status),
		DueDate:     row.DueDate,
		InvoiceRef:  row.InvoiceRef,
		CreatedAt:   row.CreatedAt,
	}
	if row.PaidAt != nil {
		t := *row.PaidAt
		payment.PaidAt = &t
	}
	return payment
}
