// Code generated by ent, DO NOT EDIT.

package instructor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the instructor type in the database.
	Label = "instructor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAccountRef holds the string denoting the account_ref field in the database.
	FieldAccountRef = "account_ref"
	// FieldOnboardingComplete holds the string denoting the onboarding_complete field in the database.
	FieldOnboardingComplete = "onboarding_complete"
	// FieldChargesEnabled holds the string denoting the charges_enabled field in the database.
	FieldChargesEnabled = "charges_enabled"
	// FieldPayoutsEnabled holds the string denoting the payouts_enabled field in the database.
	FieldPayoutsEnabled = "payouts_enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the instructor in the database.
	Table = "instructors"
)

// Columns holds all SQL columns for instructor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldAccountRef,
	FieldOnboardingComplete,
	FieldChargesEnabled,
	FieldPayoutsEnabled,
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
	// DefaultEmail holds the default value on creation for the "email" field.
	DefaultEmail string
	// DefaultAccountRef holds the default value on creation for the "account_ref" field.
	DefaultAccountRef string
	// DefaultOnboardingComplete holds the default value on creation for the "onboarding_complete" field.
	DefaultOnboardingComplete bool
	// DefaultChargesEnabled holds the default value on creation for the "charges_enabled" field.
	DefaultChargesEnabled bool
	// DefaultPayoutsEnabled holds the default value on creation for the "payouts_enabled" field.
	DefaultPayoutsEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Instructor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAccountRef orders the results by the account_ref field.
func ByAccountRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountRef, opts...).ToFunc()
}

// ByOnboardingComplete orders the results by the onboarding_complete field.
func ByOnboardingComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnboardingComplete, opts...).ToFunc()
}

// ByChargesEnabled orders the results by the charges_enabled field.
func ByChargesEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChargesEnabled, opts...).ToFunc()
}

// ByPayoutsEnabled orders the results by the payouts_enabled field.
func ByPayoutsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayoutsEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
