// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/google/uuid"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// InstructorID holds the value of the "instructor_id" field.
	InstructorID uuid.UUID `json:"instructor_id,omitempty"`
	// PackageName holds the value of the "package_name" field.
	PackageName string `json:"package_name,omitempty"`
	// PackageTotalPricePence holds the value of the "package_total_price_pence" field.
	PackageTotalPricePence int64 `json:"package_total_price_pence,omitempty"`
	// PackageLessonPricePence holds the value of the "package_lesson_price_pence" field.
	PackageLessonPricePence int64 `json:"package_lesson_price_pence,omitempty"`
	// PackageLessonCount holds the value of the "package_lesson_count" field.
	PackageLessonCount int `json:"package_lesson_count,omitempty"`
	// PaymentMode holds the value of the "payment_mode" field.
	PaymentMode string `json:"payment_mode,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CustomerRef holds the value of the "customer_ref" field.
	CustomerRef string `json:"customer_ref,omitempty"`
	// CheckoutSessionRef holds the value of the "checkout_session_ref" field.
	CheckoutSessionRef string `json:"checkout_session_ref,omitempty"`
	// PaymentRef holds the value of the "payment_ref" field.
	PaymentRef string `json:"payment_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Lessons holds the value of the lessons edge.
	Lessons []*Lesson `json:"lessons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonsOrErr returns the Lessons value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) LessonsOrErr() ([]*Lesson, error) {
	if e.loadedTypes[0] {
		return e.Lessons, nil
	}
	return nil, &NotLoadedError{edge: "lessons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldPackageTotalPricePence, order.FieldPackageLessonPricePence, order.FieldPackageLessonCount:
			values[i] = new(sql.NullInt64)
		case order.FieldPackageName, order.FieldPaymentMode, order.FieldStatus, order.FieldCustomerRef, order.FieldCheckoutSessionRef, order.FieldPaymentRef:
			values[i] = new(sql.NullString)
		case order.FieldCreatedAt, order.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case order.FieldID, order.FieldStudentID, order.FieldInstructorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (o *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				o.ID = *value
			}
		case order.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				o.StudentID = *value
			}
		case order.FieldInstructorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_id", values[i])
			} else if value != nil {
				o.InstructorID = *value
			}
		case order.FieldPackageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_name", values[i])
			} else if value.Valid {
				o.PackageName = value.String
			}
		case order.FieldPackageTotalPricePence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_total_price_pence", values[i])
			} else if value.Valid {
				o.PackageTotalPricePence = value.Int64
			}
		case order.FieldPackageLessonPricePence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_lesson_price_pence", values[i])
			} else if value.Valid {
				o.PackageLessonPricePence = value.Int64
			}
		case order.FieldPackageLessonCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_lesson_count", values[i])
			} else if value.Valid {
				o.PackageLessonCount = int(value.Int64)
			}
		case order.FieldPaymentMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_mode", values[i])
			} else if value.Valid {
				o.PaymentMode = value.String
			}
		case order.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				o.Status = value.String
			}
		case order.FieldCustomerRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_ref", values[i])
			} else if value.Valid {
				o.CustomerRef = value.String
			}
		case order.FieldCheckoutSessionRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkout_session_ref", values[i])
			} else if value.Valid {
				o.CheckoutSessionRef = value.String
			}
		case order.FieldPaymentRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_ref", values[i])
			} else if value.Valid {
				o.PaymentRef = value.String
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				o.CreatedAt = value.Time
			}
		case order.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				o.UpdatedAt = value.Time
			}
		default:
			o.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (o *Order) Value(name string) (ent.Value, error) {
	return o.selectValues.Get(name)
}

// QueryLessons queries the "lessons" edge of the Order entity.
func (o *Order) QueryLessons() *LessonQuery {
	return NewOrderClient(o.config).QueryLessons(o)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (o *Order) Update() *OrderUpdateOne {
	return NewOrderClient(o.config).UpdateOne(o)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (o *Order) Unwrap() *Order {
	_tx, ok := o.config.driver.(*txDriver)
	if !ok {
		panic("generated: Order is not a transactional entity")
	}
	o.config.driver = _tx.drv
	return o
}

// String implements the fmt.Stringer.
func (o *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", o.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", o.StudentID))
	builder.WriteString(", ")
	builder.WriteString("instructor_id=")
	builder.WriteString(fmt.Sprintf("%v", o.InstructorID))
	builder.WriteString(", ")
	builder.WriteString("package_name=")
	builder.WriteString(o.PackageName)
	builder.WriteString(", ")
	builder.WriteString("package_total_price_pence=")
	builder.WriteString(fmt.Sprintf("%v", o.PackageTotalPricePence))
	builder.WriteString(", ")
	builder.WriteString("package_lesson_price_pence=")
	builder.WriteString(fmt.Sprintf("%v", o.PackageLessonPricePence))
	builder.WriteString(", ")
	builder.WriteString("package_lesson_count=")
	builder.WriteString(fmt.Sprintf("%v", o.PackageLessonCount))
	builder.WriteString(", ")
	builder.WriteString("payment_mode=")
	builder.WriteString(o.PaymentMode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(o.Status)
	builder.WriteString(", ")
	builder.WriteString("customer_ref=")
	builder.WriteString(o.CustomerRef)
	builder.WriteString(", ")
	builder.WriteString("checkout_session_ref=")
	builder.WriteString(o.CheckoutSessionRef)
	builder.WriteString(", ")
	builder.WriteString("payment_ref=")
	builder.WriteString(o.PaymentRef)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(o.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(o.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Orders is a parsable slice of Order.
type Orders []*Order
