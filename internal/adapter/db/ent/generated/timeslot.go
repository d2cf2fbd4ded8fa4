// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// TimeSlot is the model entity for the TimeSlot schema.
type TimeSlot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DayID holds the value of the "day_id" field.
	DayID uuid.UUID `json:"day_id,omitempty"`
	// InstructorID holds the value of the "instructor_id" field.
	InstructorID uuid.UUID `json:"instructor_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// IsAvailable holds the value of the "is_available" field.
	IsAvailable bool `json:"is_available,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TimeSlotQuery when eager-loading is set.
	Edges        TimeSlotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TimeSlotEdges holds the relations/edges for other nodes in the graph.
type TimeSlotEdges struct {
	// Day holds the value of the day edge.
	Day *CalendarDay `json:"day,omitempty"`
	// Lessons holds the value of the lessons edge.
	Lessons []*Lesson `json:"lessons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DayOrErr returns the Day value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TimeSlotEdges) DayOrErr() (*CalendarDay, error) {
	if e.Day != nil {
		return e.Day, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: calendarday.Label}
	}
	return nil, &NotLoadedError{edge: "day"}
}

// LessonsOrErr returns the Lessons value or an error if the edge
// was not loaded in eager-loading.
func (e TimeSlotEdges) LessonsOrErr() ([]*Lesson, error) {
	if e.loadedTypes[1] {
		return e.Lessons, nil
	}
	return nil, &NotLoadedError{edge: "lessons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TimeSlot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case timeslot.FieldIsAvailable:
			values[i] = new(sql.NullBool)
		case timeslot.FieldStartTime, timeslot.FieldEndTime, timeslot.FieldStatus:
			values[i] = new(sql.NullString)
		case timeslot.FieldDate, timeslot.FieldCreatedAt, timeslot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case timeslot.FieldID, timeslot.FieldDayID, timeslot.FieldInstructorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TimeSlot fields.
func (ts *TimeSlot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case timeslot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ts.ID = *value
			}
		case timeslot.FieldDayID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field day_id", values[i])
			} else if value != nil {
				ts.DayID = *value
			}
		case timeslot.FieldInstructorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_id", values[i])
			} else if value != nil {
				ts.InstructorID = *value
			}
		case timeslot.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				ts.Date = value.Time
			}
		case timeslot.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				ts.StartTime = value.String
			}
		case timeslot.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				ts.EndTime = value.String
			}
		case timeslot.FieldIsAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_available", values[i])
			} else if value.Valid {
				ts.IsAvailable = value.Bool
			}
		case timeslot.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ts.Status = value.String
			}
		case timeslot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ts.CreatedAt = value.Time
			}
		case timeslot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ts.UpdatedAt = value.Time
			}
		default:
			ts.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TimeSlot.
// This includes values selected through modifiers, order, etc.
func (ts *TimeSlot) Value(name string) (ent.Value, error) {
	return ts.selectValues.Get(name)
}

// QueryDay queries the "day" edge of the TimeSlot entity.
func (ts *TimeSlot) QueryDay() *CalendarDayQuery {
	return NewTimeSlotClient(ts.config).QueryDay(ts)
}

// QueryLessons queries the "lessons" edge of the TimeSlot entity.
func (ts *TimeSlot) QueryLessons() *LessonQuery {
	return NewTimeSlotClient(ts.config).QueryLessons(ts)
}

// Update returns a builder for updating this TimeSlot.
// Note that you need to call TimeSlot.Unwrap() before calling this method if this TimeSlot
// was returned from a transaction, and the transaction was committed or rolled back.
func (ts *TimeSlot) Update() *TimeSlotUpdateOne {
	return NewTimeSlotClient(ts.config).UpdateOne(ts)
}

// Unwrap unwraps the TimeSlot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ts *TimeSlot) Unwrap() *TimeSlot {
	_tx, ok := ts.config.driver.(*txDriver)
	if !ok {
		panic("generated: TimeSlot is not a transactional entity")
	}
	ts.config.driver = _tx.drv
	return ts
}

// String implements the fmt.Stringer.
func (ts *TimeSlot) String() string {
	var builder strings.Builder
	builder.WriteString("TimeSlot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ts.ID))
	builder.WriteString("day_id=")
	builder.WriteString(fmt.Sprintf("%v", ts.DayID))
	builder.WriteString(", ")
	builder.WriteString("instructor_id=")
	builder.WriteString(fmt.Sprintf("%v", ts.InstructorID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(ts.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(ts.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(ts.EndTime)
	builder.WriteString(", ")
	builder.WriteString("is_available=")
	builder.WriteString(fmt.Sprintf("%v", ts.IsAvailable))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ts.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ts.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ts.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TimeSlots is a parsable slice of TimeSlot.
type TimeSlots []*TimeSlot
