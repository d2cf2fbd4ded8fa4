package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ActivityLog holds the schema definition for the ActivityLog entity. The
// actor is a closed tagged union {kind, id}; the kind is validated here
// rather than left to dynamic association.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("actor_kind").
			Validate(statusIn("instructor", "student")),
		field.UUID("actor_id", uuid.UUID{}),
		field.String("category").
			Default(""),
		field.String("message"),
		field.JSON("meta", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_kind", "actor_id", "created_at"),
	}
}
