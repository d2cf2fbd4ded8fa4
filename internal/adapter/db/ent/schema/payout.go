package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Payout holds the schema definition for the Payout entity. The unique
// lesson_id index enforces at most one payout per lesson even under
// concurrent sign-off attempts.
type Payout struct {
	ent.Schema
}

// Fields of the Payout.
func (Payout) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("lesson_id", uuid.UUID{}).
			Unique(),
		field.UUID("instructor_id", uuid.UUID{}),
		field.Int64("amount_pence"),
		field.String("status").
			Default("pending").
			Validate(statusIn("pending", "paid", "failed")),
		field.String("transfer_ref").
			Default(""),
		field.Time("paid_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Edges of the Payout.
func (Payout) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("payout").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

// Indexes of the Payout.
func (Payout) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instructor_id"),
	}
}
