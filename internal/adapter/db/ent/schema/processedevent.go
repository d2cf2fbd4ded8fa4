package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ProcessedEvent holds the schema definition for the ProcessedEvent entity:
// the append-only ledger of processor events already applied. The unique
// event_id index is what makes Admit atomic under concurrent deliveries.
type ProcessedEvent struct {
	ent.Schema
}

// Fields of the ProcessedEvent.
func (ProcessedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("event_id").
			Unique(),
		field.String("event_type"),
		field.Bytes("payload").
			Optional(),
		field.Time("received_at").
			Immutable().
			Default(time.Now),
	}
}
