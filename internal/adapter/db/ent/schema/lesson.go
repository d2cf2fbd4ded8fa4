package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lesson holds the schema definition for the Lesson entity. The slot edge is
// a weak back-reference kept for display; deleting a lesson never cascades to
// its slot.
type Lesson struct {
	ent.Schema
}

// Fields of the Lesson.
func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("order_id", uuid.UUID{}),
		field.UUID("instructor_id", uuid.UUID{}),
		field.UUID("slot_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Time("date"),
		field.String("start_time").
			Default(""),
		field.String("end_time").
			Default(""),
		field.Int64("amount_pence"),
		field.String("status").
			Default("pending").
			Validate(statusIn("pending", "completed", "cancelled")),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lesson.
func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("lessons").
			Field("order_id").
			Unique().
			Required(),
		edge.From("slot", TimeSlot.Type).
			Ref("lessons").
			Field("slot_id").
			Unique(),
		edge.To("payment", LessonPayment.Type).
			Unique(),
		edge.To("payout", Payout.Type).
			Unique(),
	}
}

// Indexes of the Lesson.
func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id"),
		index.Fields("slot_id"),
		index.Fields("instructor_id", "date"),
	}
}
