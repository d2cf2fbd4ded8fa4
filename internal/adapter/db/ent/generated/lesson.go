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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID uuid.UUID `json:"order_id,omitempty"`
	// InstructorID holds the value of the "instructor_id" field.
	InstructorID uuid.UUID `json:"instructor_id,omitempty"`
	// SlotID holds the value of the "slot_id" field.
	SlotID *uuid.UUID `json:"slot_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// AmountPence holds the value of the "amount_pence" field.
	AmountPence int64 `json:"amount_pence,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonQuery when eager-loading is set.
	Edges        LessonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LessonEdges holds the relations/edges for other nodes in the graph.
type LessonEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// Slot holds the value of the slot edge.
	Slot *TimeSlot `json:"slot,omitempty"`
	// Payment holds the value of the payment edge.
	Payment *LessonPayment `json:"payment,omitempty"`
	// Payout holds the value of the payout edge.
	Payout *Payout `json:"payout,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// SlotOrErr returns the Slot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) SlotOrErr() (*TimeSlot, error) {
	if e.Slot != nil {
		return e.Slot, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: timeslot.Label}
	}
	return nil, &NotLoadedError{edge: "slot"}
}

// PaymentOrErr returns the Payment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) PaymentOrErr() (*LessonPayment, error) {
	if e.Payment != nil {
		return e.Payment, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: lessonpayment.Label}
	}
	return nil, &NotLoadedError{edge: "payment"}
}

// PayoutOrErr returns the Payout value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) PayoutOrErr() (*Payout, error) {
	if e.Payout != nil {
		return e.Payout, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: payout.Label}
	}
	return nil, &NotLoadedError{edge: "payout"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldSlotID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case lesson.FieldAmountPence:
			values[i] = new(sql.NullInt64)
		case lesson.FieldStartTime, lesson.FieldEndTime, lesson.FieldStatus:
			values[i] = new(sql.NullString)
		case lesson.FieldDate, lesson.FieldCompletedAt, lesson.FieldCreatedAt, lesson.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case lesson.FieldID, lesson.FieldOrderID, lesson.FieldInstructorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (l *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				l.ID = *value
			}
		case lesson.FieldOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value != nil {
				l.OrderID = *value
			}
		case lesson.FieldInstructorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_id", values[i])
			} else if value != nil {
				l.InstructorID = *value
			}
		case lesson.FieldSlotID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field slot_id", values[i])
			} else if value.Valid {
				l.SlotID = new(uuid.UUID)
				*l.SlotID = *value.S.(*uuid.UUID)
			}
		case lesson.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				l.Date = value.Time
			}
		case lesson.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				l.StartTime = value.String
			}
		case lesson.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				l.EndTime = value.String
			}
		case lesson.FieldAmountPence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_pence", values[i])
			} else if value.Valid {
				l.AmountPence = value.Int64
			}
		case lesson.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				l.Status = value.String
			}
		case lesson.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				l.CompletedAt = new(time.Time)
				*l.CompletedAt = value.Time
			}
		case lesson.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				l.CreatedAt = value.Time
			}
		case lesson.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				l.UpdatedAt = value.Time
			}
		default:
			l.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (l *Lesson) Value(name string) (ent.Value, error) {
	return l.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the Lesson entity.
func (l *Lesson) QueryOrder() *OrderQuery {
	return NewLessonClient(l.config).QueryOrder(l)
}

// QuerySlot queries the "slot" edge of the Lesson entity.
func (l *Lesson) QuerySlot() *TimeSlotQuery {
	return NewLessonClient(l.config).QuerySlot(l)
}

// QueryPayment queries the "payment" edge of the Lesson entity.
func (l *Lesson) QueryPayment() *LessonPaymentQuery {
	return NewLessonClient(l.config).QueryPayment(l)
}

// QueryPayout queries the "payout" edge of the Lesson entity.
func (l *Lesson) QueryPayout() *PayoutQuery {
	return NewLessonClient(l.config).QueryPayout(l)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (l *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(l.config).UpdateOne(l)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (l *Lesson) Unwrap() *Lesson {
	_tx, ok := l.config.driver.(*txDriver)
	if !ok {
		panic("generated: Lesson is not a transactional entity")
	}
	l.config.driver = _tx.drv
	return l
}

// String implements the fmt.Stringer.
func (l *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", l.ID))
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", l.OrderID))
	builder.WriteString(", ")
	builder.WriteString("instructor_id=")
	builder.WriteString(fmt.Sprintf("%v", l.InstructorID))
	builder.WriteString(", ")
	if v := l.SlotID; v != nil {
		builder.WriteString("slot_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(l.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(l.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(l.EndTime)
	builder.WriteString(", ")
	builder.WriteString("amount_pence=")
	builder.WriteString(fmt.Sprintf("%v", l.AmountPence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(l.Status)
	builder.WriteString(", ")
	if v := l.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(l.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(l.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
