// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldInstructorID holds the string denoting the instructor_id field in the database.
	FieldInstructorID = "instructor_id"
	// FieldPackageName holds the string denoting the package_name field in the database.
	FieldPackageName = "package_name"
	// FieldPackageTotalPricePence holds the string denoting the package_total_price_pence field in the database.
	FieldPackageTotalPricePence = "package_total_price_pence"
	// FieldPackageLessonPricePence holds the string denoting the package_lesson_price_pence field in the database.
	FieldPackageLessonPricePence = "package_lesson_price_pence"
	// FieldPackageLessonCount holds the string denoting the package_lesson_count field in the database.
	FieldPackageLessonCount = "package_lesson_count"
	// FieldPaymentMode holds the string denoting the payment_mode field in the database.
	FieldPaymentMode = "payment_mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCustomerRef holds the string denoting the customer_ref field in the database.
	FieldCustomerRef = "customer_ref"
	// FieldCheckoutSessionRef holds the string denoting the checkout_session_ref field in the database.
	FieldCheckoutSessionRef = "checkout_session_ref"
	// FieldPaymentRef holds the string denoting the payment_ref field in the database.
	FieldPaymentRef = "payment_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLessons holds the string denoting the lessons edge name in mutations.
	EdgeLessons = "lessons"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// LessonsTable is the table that holds the lessons relation/edge.
	LessonsTable = "lessons"
	// LessonsInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonsInverseTable = "lessons"
	// LessonsColumn is the table column denoting the lessons relation/edge.
	LessonsColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldInstructorID,
	FieldPackageName,
	FieldPackageTotalPricePence,
	FieldPackageLessonPricePence,
	FieldPackageLessonCount,
	FieldPaymentMode,
	FieldStatus,
	FieldCustomerRef,
	FieldCheckoutSessionRef,
	FieldPaymentRef,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// PaymentModeValidator is a validator for the "payment_mode" field. It is called by the builders before save.
	PaymentModeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCustomerRef holds the default value on creation for the "customer_ref" field.
	DefaultCustomerRef string
	// DefaultCheckoutSessionRef holds the default value on creation for the "checkout_session_ref" field.
	DefaultCheckoutSessionRef string
	// DefaultPaymentRef holds the default value on creation for the "payment_ref" field.
	DefaultPaymentRef string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByInstructorID orders the results by the instructor_id field.
func ByInstructorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructorID, opts...).ToFunc()
}

// ByPackageName orders the results by the package_name field.
func ByPackageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageName, opts...).ToFunc()
}

// ByPackageTotalPricePence orders the results by the package_total_price_pence field.
func ByPackageTotalPricePence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageTotalPricePence, opts...).ToFunc()
}

// ByPackageLessonPricePence orders the results by the package_lesson_price_pence field.
func ByPackageLessonPricePence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageLessonPricePence, opts...).ToFunc()
}

// ByPackageLessonCount orders the results by the package_lesson_count field.
func ByPackageLessonCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageLessonCount, opts...).ToFunc()
}

// ByPaymentMode orders the results by the payment_mode field.
func ByPaymentMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCustomerRef orders the results by the customer_ref field.
func ByCustomerRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerRef, opts...).ToFunc()
}

// ByCheckoutSessionRef orders the results by the checkout_session_ref field.
func ByCheckoutSessionRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckoutSessionRef, opts...).ToFunc()
}

// ByPaymentRef orders the results by the payment_ref field.
func ByPaymentRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLessonsCount orders the results by lessons count.
func ByLessonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLessonsStep(), opts...)
	}
}

// ByLessons orders the results by lessons terms.
func ByLessons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLessonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
	)
}
