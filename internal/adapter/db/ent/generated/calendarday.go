// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/google/uuid"
)

// CalendarDay is the model entity for the CalendarDay schema.
type CalendarDay struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InstructorID holds the value of the "instructor_id" field.
	InstructorID uuid.UUID `json:"instructor_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarDayQuery when eager-loading is set.
	Edges        CalendarDayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarDayEdges holds the relations/edges for other nodes in the graph.
type CalendarDayEdges struct {
	// Slots holds the value of the slots edge.
	Slots []*TimeSlot `json:"slots,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SlotsOrErr returns the Slots value or an error if the edge
// was not loaded in eager-loading.
func (e CalendarDayEdges) SlotsOrErr() ([]*TimeSlot, error) {
	if e.loadedTypes[0] {
		return e.Slots, nil
	}
	return nil, &NotLoadedError{edge: "slots"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarday.FieldDate, calendarday.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case calendarday.FieldID, calendarday.FieldInstructorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarDay fields.
func (cd *CalendarDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarday.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cd.ID = *value
			}
		case calendarday.FieldInstructorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_id", values[i])
			} else if value != nil {
				cd.InstructorID = *value
			}
		case calendarday.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				cd.Date = value.Time
			}
		case calendarday.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cd.CreatedAt = value.Time
			}
		default:
			cd.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarDay.
// This includes values selected through modifiers, order, etc.
func (cd *CalendarDay) Value(name string) (ent.Value, error) {
	return cd.selectValues.Get(name)
}

// QuerySlots queries the "slots" edge of the CalendarDay entity.
func (cd *CalendarDay) QuerySlots() *TimeSlotQuery {
	return NewCalendarDayClient(cd.config).QuerySlots(cd)
}

// Update returns a builder for updating this CalendarDay.
// Note that you need to call CalendarDay.Unwrap() before calling this method if this CalendarDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (cd *CalendarDay) Update() *CalendarDayUpdateOne {
	return NewCalendarDayClient(cd.config).UpdateOne(cd)
}

// Unwrap unwraps the CalendarDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cd *CalendarDay) Unwrap() *CalendarDay {
	_tx, ok := cd.config.driver.(*txDriver)
	if !ok {
		panic("generated: CalendarDay is not a transactional entity")
	}
	cd.config.driver = _tx.drv
	return cd
}

// String implements the fmt.Stringer.
func (cd *CalendarDay) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cd.ID))
	builder.WriteString("instructor_id=")
	builder.WriteString(fmt.Sprintf("%v", cd.InstructorID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(cd.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cd.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarDays is a parsable slice of CalendarDay.
type CalendarDays []*CalendarDay
