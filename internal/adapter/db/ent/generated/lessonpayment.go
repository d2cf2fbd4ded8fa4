// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/google/uuid"
)

// LessonPayment is the model entity for the LessonPayment schema.
type LessonPayment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID uuid.UUID `json:"lesson_id,omitempty"`
	// AmountPence holds the value of the "amount_pence" field.
	AmountPence int64 `json:"amount_pence,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// InvoiceRef holds the value of the "invoice_ref" field.
	InvoiceRef string `json:"invoice_ref,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonPaymentQuery when eager-loading is set.
	Edges        LessonPaymentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LessonPaymentEdges holds the relations/edges for other nodes in the graph.
type LessonPaymentEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonPaymentEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonPayment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonpayment.FieldAmountPence:
			values[i] = new(sql.NullInt64)
		case lessonpayment.FieldStatus, lessonpayment.FieldInvoiceRef:
			values[i] = new(sql.NullString)
		case lessonpayment.FieldDueDate, lessonpayment.FieldPaidAt, lessonpayment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case lessonpayment.FieldID, lessonpayment.FieldLessonID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonPayment fields.
func (lp *LessonPayment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonpayment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				lp.ID = *value
			}
		case lessonpayment.FieldLessonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value != nil {
				lp.LessonID = *value
			}
		case lessonpayment.FieldAmountPence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_pence", values[i])
			} else if value.Valid {
				lp.AmountPence = value.Int64
			}
		case lessonpayment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				lp.Status = value.String
			}
		case lessonpayment.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				lp.DueDate = value.Time
			}
		case lessonpayment.FieldInvoiceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_ref", values[i])
			} else if value.Valid {
				lp.InvoiceRef = value.String
			}
		case lessonpayment.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				lp.PaidAt = new(time.Time)
				*lp.PaidAt = value.Time
			}
		case lessonpayment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				lp.CreatedAt = value.Time
			}
		default:
			lp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonPayment.
// This includes values selected through modifiers, order, etc.
func (lp *LessonPayment) Value(name string) (ent.Value, error) {
	return lp.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the LessonPayment entity.
func (lp *LessonPayment) QueryLesson() *LessonQuery {
	return NewLessonPaymentClient(lp.config).QueryLesson(lp)
}

// Update returns a builder for updating this LessonPayment.
// Note that you need to call LessonPayment.Unwrap() before calling this method if this LessonPayment
// was returned from a transaction, and the transaction was committed or rolled back.
func (lp *LessonPayment) Update() *LessonPaymentUpdateOne {
	return NewLessonPaymentClient(lp.config).UpdateOne(lp)
}

// Unwrap unwraps the LessonPayment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lp *LessonPayment) Unwrap() *LessonPayment {
	_tx, ok := lp.config.driver.(*txDriver)
	if !ok {
		panic("generated: LessonPayment is not a transactional entity")
	}
	lp.config.driver = _tx.drv
	return lp
}

// String implements the fmt.Stringer.
func (lp *LessonPayment) String() string {
	var builder strings.Builder
	builder.WriteString("LessonPayment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lp.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", lp.LessonID))
	builder.WriteString(", ")
	builder.WriteString("amount_pence=")
	builder.WriteString(fmt.Sprintf("%v", lp.AmountPence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(lp.Status)
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(lp.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("invoice_ref=")
	builder.WriteString(lp.InvoiceRef)
	builder.WriteString(", ")
	if v := lp.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(lp.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonPayments is a parsable slice of LessonPayment.
type LessonPayments []*LessonPayment
