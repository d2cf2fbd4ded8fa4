package fake

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestProcessor_VerifyWebhookSignature(t *testing.T) {
	t.Parallel()

	processor := NewProcessor("", "whsec_test")
	payload := []byte(`{"id":"evt_1","type":"checkout_completed","object_ref":"cs_1","paid":true}`)

	event, err := processor.VerifyWebhookSignature(payload, processor.Sign(payload))
	if err != nil {
		t.Fatalf("VerifyWebhookSignature() error = %v", err)
	}
	if event.ID != "evt_1" || event.Type != core.EventCheckoutCompleted || !event.Paid {
		t.Fatalf("unexpected event: %+v", event)
	}

	if _, err := processor.VerifyWebhookSignature(payload, "forged"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad signature, got %v", err)
	}
}

func TestProcessor_FailNextTransfer(t *testing.T) {
	t.Parallel()

	processor := NewProcessor("", "whsec_test")
	params := core.TransferParams{AccountRef: "acct_1", AmountPence: 3500, LessonID: uuid.New()}

	processor.FailNextTransfer()
	if _, err := processor.CreateTransfer(context.Background(), params); !errors.Is(err, core.ErrTransferFailed) {
		t.Fatalf("expected ErrTransferFailed, got %v", err)
	}

	// The toggle is one-shot.
	ref, err := processor.CreateTransfer(context.Background(), params)
	if err != nil {
		t.Fatalf("CreateTransfer() error = %v", err)
	}
	if ref == "" {
		t.Fatal("expected a transfer reference")
	}
}
