package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentMode selects how a purchase is collected: one upfront charge or a
// per-lesson weekly due.
type PaymentMode string

const (
	PaymentModeUpfront PaymentMode = "upfront"
	PaymentModeWeekly  PaymentMode = "weekly"
)

// Valid reports whether the mode is known.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeUpfront || m == PaymentModeWeekly
}

// OrderStatus is the purchase lifecycle state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is known.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// LessonStatus is the lifecycle state of a scheduled lesson. It only ever
// advances forward.
type LessonStatus string

const (
	LessonStatusPending   LessonStatus = "pending"
	LessonStatusCompleted LessonStatus = "completed"
	LessonStatusCancelled LessonStatus = "cancelled"
)

// Valid reports whether the status is known.
func (s LessonStatus) Valid() bool {
	switch s {
	case LessonStatusPending, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is the state of one weekly lesson due.
type PaymentStatus string

const (
	PaymentStatusDue      PaymentStatus = "due"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Valid reports whether the status is known.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusDue, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// PackageSnapshot is the immutable copy of catalog pricing taken when an
// order is created. Later catalog edits never affect it.
type PackageSnapshot struct {
	Name             string
	TotalPricePence  int64
	LessonPricePence int64
	LessonCount      int
}

// Order is one purchase of a lesson package.
type Order struct {
	ID                 uuid.UUID
	StudentID          uuid.UUID
	InstructorID       uuid.UUID
	Package            PackageSnapshot
	Mode               PaymentMode
	Status             OrderStatus
	CustomerRef        string
	CheckoutSessionRef string
	PaymentRef         string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Lesson is one scheduled teaching session, tied 1:1 to a time slot and owned
// by an order. Date and times are a denormalized copy of the slot's schedule;
// the slot's status remains the authoritative booking signal.
type Lesson struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	InstructorID uuid.UUID
	SlotID       *uuid.UUID
	Date         time.Time
	StartTime    string
	EndTime      string
	AmountPence  int64
	Status       LessonStatus
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LessonPayment is the weekly-mode due for one lesson, payable 24 hours
// before the lesson is delivered.
type LessonPayment struct {
	ID          uuid.UUID
	LessonID    uuid.UUID
	AmountPence int64
	Status      PaymentStatus
	DueDate     time.Time
	InvoiceRef  string
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// FinalizeOrderParams is the input to order finalization: the buyer, the
// chosen package snapshot and payment mode, and the draft series to confirm.
type FinalizeOrderParams struct {
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	Package      PackageSnapshot
	Mode         PaymentMode
	Series       BookingSeries
}

// FinalizedOrder is the result of a successful finalization.
type FinalizedOrder struct {
	Order   Order
	Lessons []Lesson
}

// BookingRepository persists orders, lessons and weekly dues. FinalizeOrder
// is a single all-or-nothing transaction: it confirms every series slot from
// draft to the target status and inserts the order, lessons and payments, or
// mutates nothing at all.
type BookingRepository interface {
	FinalizeOrder(ctx context.Context, order Order, lessons []Lesson, payments []LessonPayment, target SlotStatus) (*FinalizedOrder, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrderByCheckoutRef(ctx context.Context, ref string) (*Order, error)
	SetCheckoutRefs(ctx context.Context, orderID uuid.UUID, customerRef, sessionRef string) error
	ActivateOrder(ctx context.Context, orderID uuid.UUID, paymentRef string) (*Order, error)
	ListLessons(ctx context.Context, orderID uuid.UUID) ([]Lesson, error)
	GetLessonOrder(ctx context.Context, lessonID uuid.UUID) (*Lesson, *Order, error)
	MarkInvoicePaid(ctx context.Context, invoiceRef string, paidAt time.Time) (*LessonPayment, error)
	ListDuePayments(ctx context.Context, before time.Time) ([]LessonPayment, error)
	SetInvoiceRef(ctx context.Context, paymentID uuid.UUID, invoiceRef string) error
}

// BookingService exposes the order/payment-mode coordination use cases.
type BookingService interface {
	FinalizeOrder(ctx context.Context, params FinalizeOrderParams) (*FinalizedOrder, error)
	GetOrderLessons(ctx context.Context, orderID uuid.UUID) (*Order, []Lesson, error)
	OrderByCheckoutRef(ctx context.Context, ref string) (*Order, error)
	PrepareCheckout(ctx context.Context, orderID uuid.UUID, buyerEmail, buyerName string) (*CheckoutSession, error)
	ApplyPaymentConfirmed(ctx context.Context, orderID uuid.UUID, paymentRef string) error
	ApplyInvoicePaid(ctx context.Context, invoiceRef string) error
	SendDueInvoices(ctx context.Context) (int, error)
}
