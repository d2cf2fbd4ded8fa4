package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalendarDay holds the schema definition for the CalendarDay entity.
type CalendarDay struct {
	ent.Schema
}

// Fields of the CalendarDay.
func (CalendarDay) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("instructor_id", uuid.UUID{}),
		field.Time("date"),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Edges of the CalendarDay.
func (CalendarDay) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("slots", TimeSlot.Type),
	}
}

// Indexes of the CalendarDay.
func (CalendarDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instructor_id", "date").
			Unique(),
	}
}
