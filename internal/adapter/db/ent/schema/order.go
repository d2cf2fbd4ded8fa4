package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Order holds the schema definition for the Order entity. Package fields are
// an immutable snapshot of catalog pricing taken at purchase time.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("student_id", uuid.UUID{}),
		field.UUID("instructor_id", uuid.UUID{}),
		field.String("package_name"),
		field.Int64("package_total_price_pence"),
		field.Int64("package_lesson_price_pence"),
		field.Int("package_lesson_count"),
		field.String("payment_mode").
			Validate(statusIn("upfront", "weekly")),
		field.String("status").
			Default("pending").
			Validate(statusIn("pending", "active", "completed", "cancelled")),
		field.String("customer_ref").
			Default(""),
		field.String("checkout_session_ref").
			Default(""),
		field.String("payment_ref").
			Default(""),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lessons", Lesson.Type),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("instructor_id"),
		index.Fields("checkout_session_ref"),
	}
}
