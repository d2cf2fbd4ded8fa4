// Code generated by ent, DO NOT EDIT.

package calendarday

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the calendarday type in the database.
	Label = "calendar_day"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInstructorID holds the string denoting the instructor_id field in the database.
	FieldInstructorID = "instructor_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSlots holds the string denoting the slots edge name in mutations.
	EdgeSlots = "slots"
	// Table holds the table name of the calendarday in the database.
	Table = "calendar_days"
	// SlotsTable is the table that holds the slots relation/edge.
	SlotsTable = "time_slots"
	// SlotsInverseTable is the table name for the TimeSlot entity.
	// It exists in this package in order to avoid circular dependency with the "timeslot" package.
	SlotsInverseTable = "time_slots"
	// SlotsColumn is the table column denoting the slots relation/edge.
	SlotsColumn = "day_id"
)

// Columns holds all SQL columns for calendarday fields.
var Columns = []string{
	FieldID,
	FieldInstructorID,
	FieldDate,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CalendarDay queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInstructorID orders the results by the instructor_id field.
func ByInstructorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructorID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySlotsCount orders the results by slots count.
func BySlotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSlotsStep(), opts...)
	}
}

// BySlots orders the results by slots terms.
func BySlots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSlotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSlotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SlotsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SlotsTable, SlotsColumn),
	)
}
