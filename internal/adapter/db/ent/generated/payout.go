// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/google/uuid"
)

// Payout is the model entity for the Payout schema.
type Payout struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID uuid.UUID `json:"lesson_id,omitempty"`
	// InstructorID holds the value of the "instructor_id" field.
	InstructorID uuid.UUID `json:"instructor_id,omitempty"`
	// AmountPence holds the value of the "amount_pence" field.
	AmountPence int64 `json:"amount_pence,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TransferRef holds the value of the "transfer_ref" field.
	TransferRef string `json:"transfer_ref,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayoutQuery when eager-loading is set.
	Edges        PayoutEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayoutEdges holds the relations/edges for other nodes in the graph.
type PayoutEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayoutEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Payout) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payout.FieldAmountPence:
			values[i] = new(sql.NullInt64)
		case payout.FieldStatus, payout.FieldTransferRef:
			values[i] = new(sql.NullString)
		case payout.FieldPaidAt, payout.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case payout.FieldID, payout.FieldLessonID, payout.FieldInstructorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Payout fields.
func (pa *Payout) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payout.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				pa.ID = *value
			}
		case payout.FieldLessonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value != nil {
				pa.LessonID = *value
			}
		case payout.FieldInstructorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_id", values[i])
			} else if value != nil {
				pa.InstructorID = *value
			}
		case payout.FieldAmountPence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_pence", values[i])
			} else if value.Valid {
				pa.AmountPence = value.Int64
			}
		case payout.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				pa.Status = value.String
			}
		case payout.FieldTransferRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_ref", values[i])
			} else if value.Valid {
				pa.TransferRef = value.String
			}
		case payout.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				pa.PaidAt = new(time.Time)
				*pa.PaidAt = value.Time
			}
		case payout.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pa.CreatedAt = value.Time
			}
		default:
			pa.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Payout.
// This includes values selected through modifiers, order, etc.
func (pa *Payout) Value(name string) (ent.Value, error) {
	return pa.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the Payout entity.
func (pa *Payout) QueryLesson() *LessonQuery {
	return NewPayoutClient(pa.config).QueryLesson(pa)
}

// Update returns a builder for updating this Payout.
// Note that you need to call Payout.Unwrap() before calling this method if this Payout
// was returned from a transaction, and the transaction was committed or rolled back.
func (pa *Payout) Update() *PayoutUpdateOne {
	return NewPayoutClient(pa.config).UpdateOne(pa)
}

// Unwrap unwraps the Payout entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pa *Payout) Unwrap() *Payout {
	_tx, ok := pa.config.driver.(*txDriver)
	if !ok {
		panic("generated: Payout is not a transactional entity")
	}
	pa.config.driver = _tx.drv
	return pa
}

// String implements the fmt.Stringer.
func (pa *Payout) String() string {
	var builder strings.Builder
	builder.WriteString("Payout(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pa.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", pa.LessonID))
	builder.WriteString(", ")
	builder.WriteString("instructor_id=")
	builder.WriteString(fmt.Sprintf("%v", pa.InstructorID))
	builder.WriteString(", ")
	builder.WriteString("amount_pence=")
	builder.WriteString(fmt.Sprintf("%v", pa.AmountPence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(pa.Status)
	builder.WriteString(", ")
	builder.WriteString("transfer_ref=")
	builder.WriteString(pa.TransferRef)
	builder.WriteString(", ")
	if v := pa.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pa.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Payouts is a parsable slice of Payout.
type Payouts []*Payout
