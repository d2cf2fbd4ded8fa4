package core

import "context"

// EventLedger is the append-only record of processor events already applied.
// Admit returns true exactly once per distinct external event id; the
// check-and-record is atomic so concurrent duplicate deliveries admit one.
// Entries are never pruned by this core.
type EventLedger interface {
	Admit(ctx context.Context, eventID string, eventType EventType, payload []byte) (bool, error)
}

// WebhookService verifies, de-duplicates and dispatches inbound processor
// events.
type WebhookService interface {
	ProcessEvent(ctx context.Context, payload []byte, signature string) (*WebhookOutcome, error)
}

// WebhookOutcome reports what an inbound delivery did. Duplicate indicates an
// already-processed event that was short-circuited with a success response.
type WebhookOutcome struct {
	EventID   string
	Type      EventType
	Duplicate bool
}
