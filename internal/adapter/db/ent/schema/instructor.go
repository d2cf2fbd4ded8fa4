package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Instructor holds the schema definition for the Instructor entity.
type Instructor struct {
	ent.Schema
}

// Fields of the Instructor.
func (Instructor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("name"),
		field.String("email").
			Default(""),
		field.String("account_ref").
			Default(""),
		field.Bool("onboarding_complete").
			Default(false),
		field.Bool("charges_enabled").
			Default(false),
		field.Bool("payouts_enabled").
			Default(false),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Instructor.
func (Instructor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_ref"),
	}
}
