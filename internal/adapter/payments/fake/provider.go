package fake

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// Processor offers a simplified payment processor that simulates gateway
// behaviour. References are prefixed by object kind so test assertions can
// tell them apart.
type Processor struct {
	checkoutBase  string
	webhookSecret string
	now           func() time.Time

	mu       sync.Mutex
	accounts map[string]core.PayoutAccount
	failNext bool
}

// NewProcessor constructs a fake payment processor.
func NewProcessor(checkoutBase, webhookSecret string) *Processor {
	return &Processor{
		checkoutBase:  normalizeBase(checkoutBase, "https://fake-checkout.example.com"),
		webhookSecret: webhookSecret,
		now:           time.Now,
		accounts:      make(map[string]core.PayoutAccount),
	}
}

// WithClock overrides the clock used for generated timestamps.
func (p *Processor) WithClock(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// FailNextTransfer makes the next CreateTransfer call return an error. It is
// a one-shot toggle used to exercise the payout failure path.
func (p *Processor) FailNextTransfer() {
	p.mu.Lock()
	p.failNext = true
	p.mu.Unlock()
}

// RegisterAccount seeds a payout account the processor will report back.
func (p *Processor) RegisterAccount(account core.PayoutAccount) {
	p.mu.Lock()
	p.accounts[account.Ref] = account
	p.mu.Unlock()
}

var _ core.PaymentProcessor = (*Processor)(nil)

// CreateCustomer simulates registering a buyer with the gateway.
func (p *Processor) CreateCustomer(ctx context.Context, params core.CustomerParams) (string, error) {
	_ = ctx // unused in fake implementation

	if params.Email == "" {
		return "", fmt.Errorf("%w: customer email is required", core.ErrValidation)
	}
	return "cus_" + uuid.New().String(), nil
}

// CreateProduct simulates registering a sellable product.
func (p *Processor) CreateProduct(ctx context.Context, name, description string) (string, error) {
	_ = ctx
	_ = description

	if name == "" {
		return "", fmt.Errorf("%w: product name is required", core.ErrValidation)
	}
	return "prod_" + uuid.New().String(), nil
}

// CreatePrice simulates attaching a price to a product.
func (p *Processor) CreatePrice(ctx context.Context, productRef string, amountPence int64) (string, error) {
	_ = ctx

	if productRef == "" || amountPence <= 0 {
		return "", fmt.Errorf("%w: price needs a product and a positive amount", core.ErrValidation)
	}
	return "price_" + uuid.New().String(), nil
}

// CreateCheckoutSession simulates opening a hosted checkout page.
func (p *Processor) CreateCheckoutSession(ctx context.Context, params core.CheckoutParams) (*core.CheckoutSession, error) {
	_ = ctx

	if params.CustomerRef == "" {
		return nil, fmt.Errorf("%w: checkout needs a customer", core.ErrValidation)
	}
	ref := "cs_" + uuid.New().String()
	return &core.CheckoutSession{
		Ref: ref,
		URL: fmt.Sprintf("%s/pay/%s", p.checkoutBase, ref),
	}, nil
}

// CreateInvoice simulates issuing a weekly-lesson invoice.
func (p *Processor) CreateInvoice(ctx context.Context, params core.InvoiceParams) (string, error) {
	_ = ctx

	if params.CustomerRef == "" || params.AmountPence <= 0 {
		return "", fmt.Errorf("%w: invoice needs a customer and a positive amount", core.ErrValidation)
	}
	return "in_" + uuid.New().String(), nil
}

// CreateTransfer simulates paying an instructor out. A pending FailNextTransfer
// toggle consumes itself and fails the call.
func (p *Processor) CreateTransfer(ctx context.Context, params core.TransferParams) (string, error) {
	_ = ctx

	p.mu.Lock()
	shouldFail := p.failNext
	p.failNext = false
	p.mu.Unlock()

	if shouldFail {
		return "", fmt.Errorf("%w: gateway rejected transfer", core.ErrTransferFailed)
	}
	if params.AccountRef == "" || params.AmountPence <= 0 {
		return "", fmt.Errorf("%w: transfer needs an account and a positive amount", core.ErrValidation)
	}
	return "tr_" + uuid.New().String(), nil
}

// RetrieveAccount returns a seeded payout account, or a fully-enabled one for
// unknown references so happy paths need no setup.
func (p *Processor) RetrieveAccount(ctx context.Context, accountRef string) (*core.PayoutAccount, error) {
	_ = ctx

	p.mu.Lock()
	defer p.mu.Unlock()
	if account, ok := p.accounts[accountRef]; ok {
		return &account, nil
	}
	return &core.PayoutAccount{
		Ref:              accountRef,
		DetailsSubmitted: true,
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
	}, nil
}

// eventEnvelope is the wire shape the fake signs and parses.
type eventEnvelope struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	ObjectRef  string             `json:"object_ref"`
	PaymentRef string             `json:"payment_ref,omitempty"`
	Paid       bool               `json:"paid,omitempty"`
	Account    *core.AccountState `json:"account,omitempty"`
}

// VerifyWebhookSignature checks the HMAC signature and decodes the payload
// into a verified event.
func (p *Processor) VerifyWebhookSignature(payload []byte, signature string) (*core.InboundEvent, error) {
	if !hmac.Equal([]byte(p.Sign(payload)), []byte(signature)) {
		return nil, fmt.Errorf("%w: webhook signature mismatch", core.ErrValidation)
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook payload", core.ErrValidation)
	}
	if envelope.ID == "" {
		return nil, fmt.Errorf("%w: webhook event id is required", core.ErrValidation)
	}
	return &core.InboundEvent{
		ID:         envelope.ID,
		Type:       core.EventType(envelope.Type),
		ObjectRef:  envelope.ObjectRef,
		PaymentRef: envelope.PaymentRef,
		Paid:       envelope.Paid,
		Account:    envelope.Account,
	}, nil
}

// Sign computes the signature for a payload, so tests and local tooling can
// craft deliveries the verifier accepts.
func (p *Processor) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(p.webhookSecret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func normalizeBase(base, fallback string) string {
	if base == "" {
		return fallback
	}
	return strings.TrimSuffix(base, "/")
}
