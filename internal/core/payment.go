package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names the inbound payment-processor events this core reacts to.
type EventType string

const (
	EventCheckoutCompleted    EventType = "checkout_completed"
	EventPaymentSucceeded     EventType = "payment_succeeded"
	EventPaymentFailed        EventType = "payment_failed"
	EventAccountUpdated       EventType = "account_updated"
	EventInvoicePaid          EventType = "invoice_paid"
	EventInvoicePaymentFailed EventType = "invoice_payment_failed"
)

// AccountState is the payout-account snapshot carried by account_updated
// events.
type AccountState struct {
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

// InboundEvent is a verified processor event. ObjectRef points at the
// checkout session, payment, invoice or account the event concerns.
type InboundEvent struct {
	ID         string
	Type       EventType
	ObjectRef  string
	PaymentRef string
	Paid       bool
	Account    *AccountState
}

// CustomerParams describes the buyer a processor customer is created for.
type CustomerParams struct {
	Email string
	Name  string
	Meta  map[string]string
}

// CheckoutParams describes one checkout session.
type CheckoutParams struct {
	CustomerRef string
	PriceRef    string
	AmountPence int64
	OrderID     uuid.UUID
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the processor's handle for an opened checkout.
type CheckoutSession struct {
	Ref string
	URL string
}

// InvoiceParams describes one weekly-lesson invoice.
type InvoiceParams struct {
	CustomerRef string
	AmountPence int64
	LessonID    uuid.UUID
	DueDate     time.Time
	Description string
}

// TransferParams describes one instructor payout transfer.
type TransferParams struct {
	AccountRef  string
	AmountPence int64
	LessonID    uuid.UUID
}

// PayoutAccount is the processor-side view of an instructor account.
type PayoutAccount struct {
	Ref              string
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

// PaymentProcessor is the opaque boundary to the external payment gateway.
// Every call either succeeds with an external reference or fails; wire
// formats are the adapter's concern.
type PaymentProcessor interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)
	CreateProduct(ctx context.Context, name, description string) (string, error)
	CreatePrice(ctx context.Context, productRef string, amountPence int64) (string, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	CreateInvoice(ctx context.Context, params InvoiceParams) (string, error)
	CreateTransfer(ctx context.Context, params TransferParams) (string, error)
	RetrieveAccount(ctx context.Context, accountRef string) (*PayoutAccount, error)
	VerifyWebhookSignature(payload []byte, signature string) (*InboundEvent, error)
}
