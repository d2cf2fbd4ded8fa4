// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
	"github.com/google/uuid"
)

// ProcessedEvent is the model entity for the ProcessedEvent schema.
type ProcessedEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload []byte `json:"payload,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt   time.Time `json:"received_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processedevent.FieldPayload:
			values[i] = new([]byte)
		case processedevent.FieldEventID, processedevent.FieldEventType:
			values[i] = new(sql.NullString)
		case processedevent.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		case processedevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedEvent fields.
func (pe *ProcessedEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processedevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				pe.ID = *value
			}
		case processedevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				pe.EventID = value.String
			}
		case processedevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				pe.EventType = value.String
			}
		case processedevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				pe.Payload = *value
			}
		case processedevent.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				pe.ReceivedAt = value.Time
			}
		default:
			pe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedEvent.
// This includes values selected through modifiers, order, etc.
func (pe *ProcessedEvent) Value(name string) (ent.Value, error) {
	return pe.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessedEvent.
// Note that you need to call ProcessedEvent.Unwrap() before calling this method if this ProcessedEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (pe *ProcessedEvent) Update() *ProcessedEventUpdateOne {
	return NewProcessedEventClient(pe.config).UpdateOne(pe)
}

// Unwrap unwraps the ProcessedEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pe *ProcessedEvent) Unwrap() *ProcessedEvent {
	_tx, ok := pe.config.driver.(*txDriver)
	if !ok {
		panic("generated: ProcessedEvent is not a transactional entity")
	}
	pe.config.driver = _tx.drv
	return pe
}

// String implements the fmt.Stringer.
func (pe *ProcessedEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pe.ID))
	builder.WriteString("event_id=")
	builder.WriteString(pe.EventID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(pe.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", pe.Payload))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(pe.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedEvents is a parsable slice of ProcessedEvent.
type ProcessedEvents []*ProcessedEvent
