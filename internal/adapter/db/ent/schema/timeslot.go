package schema

import (
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// statusIn builds a field validator that rejects any value outside the closed
// set. Booking statuses are stored as strings; unknown values must fail at
// the persistence boundary rather than default silently.
func statusIn(values ...string) func(string) error {
	return func(s string) error {
		for _, v := range values {
			if s == v {
				return nil
			}
		}
		return fmt.Errorf("invalid status %q", s)
	}
}

// TimeSlot holds the schema definition for the TimeSlot entity.
type TimeSlot struct {
	ent.Schema
}

// Fields of the TimeSlot.
func (TimeSlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("day_id", uuid.UUID{}),
		field.UUID("instructor_id", uuid.UUID{}),
		field.Time("date"),
		field.String("start_time"),
		field.String("end_time"),
		field.Bool("is_available").
			Default(true),
		field.String("status").
			Default("open").
			Validate(statusIn("open", "draft", "reserved", "booked", "completed")),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TimeSlot.
func (TimeSlot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("day", CalendarDay.Type).
			Ref("slots").
			Field("day_id").
			Unique().
			Required(),
		edge.To("lessons", Lesson.Type),
	}
}

// Indexes of the TimeSlot.
func (TimeSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("day_id"),
		index.Fields("instructor_id", "date"),
		index.Fields("status", "created_at"),
	}
}
