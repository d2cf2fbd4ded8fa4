package db

import (
	"context"
	"testing"

	"github.com/drivekit/drivekit/internal/core"
)

func TestEventLedger_AdmitOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "event_ledger")
	defer client.Close()
	ledger := NewEventLedger(client)

	admitted, err := ledger.Admit(ctx, "evt_1", core.EventCheckoutCompleted, []byte(`{"id":"evt_1"}`))
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if !admitted {
		t.Fatal("first delivery should be admitted")
	}

	admitted, err = ledger.Admit(ctx, "evt_1", core.EventCheckoutCompleted, []byte(`{"id":"evt_1"}`))
	if err != nil {
		t.Fatalf("Admit() replay error = %v", err)
	}
	if admitted {
		t.Fatal("replayed delivery must not be admitted")
	}

	admitted, err = ledger.Admit(ctx, "evt_2", core.EventInvoicePaid, nil)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if !admitted {
		t.Fatal("distinct event id should be admitted")
	}
}
