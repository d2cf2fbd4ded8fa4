// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/google/uuid"
)

// Instructor is the model entity for the Instructor schema.
type Instructor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// AccountRef holds the value of the "account_ref" field.
	AccountRef string `json:"account_ref,omitempty"`
	// OnboardingComplete holds the value of the "onboarding_complete" field.
	OnboardingComplete bool `json:"onboarding_complete,omitempty"`
	// ChargesEnabled holds the value of the "charges_enabled" field.
	ChargesEnabled bool `json:"charges_enabled,omitempty"`
	// PayoutsEnabled holds the value of the "payouts_enabled" field.
	PayoutsEnabled bool `json:"payouts_enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instructor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instructor.FieldOnboardingComplete, instructor.FieldChargesEnabled, instructor.FieldPayoutsEnabled:
			values[i] = new(sql.NullBool)
		case instructor.FieldName, instructor.FieldEmail, instructor.FieldAccountRef:
			values[i] = new(sql.NullString)
		case instructor.FieldCreatedAt, instructor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case instructor.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instructor fields.
func (i *Instructor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case instructor.FieldID:
			if value, ok := values[j].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[j])
			} else if value != nil {
				i.ID = *value
			}
		case instructor.FieldName:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[j])
			} else if value.Valid {
				i.Name = value.String
			}
		case instructor.FieldEmail:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[j])
			} else if value.Valid {
				i.Email = value.String
			}
		case instructor.FieldAccountRef:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_ref", values[j])
			} else if value.Valid {
				i.AccountRef = value.String
			}
		case instructor.FieldOnboardingComplete:
			if value, ok := values[j].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_complete", values[j])
			} else if value.Valid {
				i.OnboardingComplete = value.Bool
			}
		case instructor.FieldChargesEnabled:
			if value, ok := values[j].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field charges_enabled", values[j])
			} else if value.Valid {
				i.ChargesEnabled = value.Bool
			}
		case instructor.FieldPayoutsEnabled:
			if value, ok := values[j].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field payouts_enabled", values[j])
			} else if value.Valid {
				i.PayoutsEnabled = value.Bool
			}
		case instructor.FieldCreatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[j])
			} else if value.Valid {
				i.CreatedAt = value.Time
			}
		case instructor.FieldUpdatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[j])
			} else if value.Valid {
				i.UpdatedAt = value.Time
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Instructor.
// This includes values selected through modifiers, order, etc.
func (i *Instructor) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// Update returns a builder for updating this Instructor.
// Note that you need to call Instructor.Unwrap() before calling this method if this Instructor
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Instructor) Update() *InstructorUpdateOne {
	return NewInstructorClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Instructor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Instructor) Unwrap() *Instructor {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("generated: Instructor is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Instructor) String() string {
	var builder strings.Builder
	builder.WriteString("Instructor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("name=")
	builder.WriteString(i.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(i.Email)
	builder.WriteString(", ")
	builder.WriteString("account_ref=")
	builder.WriteString(i.AccountRef)
	builder.WriteString(", ")
	builder.WriteString("onboarding_complete=")
	builder.WriteString(fmt.Sprintf("%v", i.OnboardingComplete))
	builder.WriteString(", ")
	builder.WriteString("charges_enabled=")
	builder.WriteString(fmt.Sprintf("%v", i.ChargesEnabled))
	builder.WriteString(", ")
	builder.WriteString("payouts_enabled=")
	builder.WriteString(fmt.Sprintf("%v", i.PayoutsEnabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(i.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(i.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Instructors is a parsable slice of Instructor.
type Instructors []*Instructor
