package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LessonPayment holds the schema definition for the LessonPayment entity:
// one weekly-mode due per lesson.
type LessonPayment struct {
	ent.Schema
}

// Fields of the LessonPayment.
func (LessonPayment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("lesson_id", uuid.UUID{}).
			Unique(),
		field.Int64("amount_pence"),
		field.String("status").
			Default("due").
			Validate(statusIn("due", "paid", "refunded")),
		field.Time("due_date"),
		field.String("invoice_ref").
			Default(""),
		field.Time("paid_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Edges of the LessonPayment.
func (LessonPayment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("payment").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

// Indexes of the LessonPayment.
func (LessonPayment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_ref"),
		index.Fields("status", "due_date"),
	}
}
