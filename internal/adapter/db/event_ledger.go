package db

import (
	"context"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	"github.com/drivekit/drivekit/internal/core"
)

// EventLedger records processed processor events using Ent. The unique
// event_id column makes Admit atomic: concurrent duplicate deliveries race on
// the insert and exactly one wins.
type EventLedger struct {
	client *entgenerated.Client
}

// NewEventLedger constructs an Ent-backed event ledger.
func NewEventLedger(client *entgenerated.Client) *EventLedger {
	return &EventLedger{client: client}
}

var _ core.EventLedger = (*EventLedger)(nil)

// Admit records the event id and returns true on first sight, false when the
// id is already on file.
func (l *EventLedger) Admit(ctx context.Context, eventID string, eventType core.EventType, payload []byte) (bool, error) {
	create := l.client.ProcessedEvent.Create().
		SetEventID(eventID).
		SetEventType(string(eventType))
	if len(payload) > 0 {
		create.SetPayload(payload)
	}
	if err := create.Exec(ctx); err != nil {
		if entgenerated.IsConstraintError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
