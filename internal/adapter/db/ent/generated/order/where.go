// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStudentID, v))
}

// InstructorID applies equality check predicate on the "instructor_id" field. It's identical to InstructorIDEQ.
func InstructorID(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldInstructorID, v))
}

// PackageName applies equality check predicate on the "package_name" field. It's identical to PackageNameEQ.
func PackageName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageName, v))
}

// PackageTotalPricePence applies equality check predicate on the "package_total_price_pence" field. It's identical to PackageTotalPricePenceEQ.
func PackageTotalPricePence(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageTotalPricePence, v))
}

// PackageLessonPricePence applies equality check predicate on the "package_lesson_price_pence" field. It's identical to PackageLessonPricePenceEQ.
func PackageLessonPricePence(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageLessonPricePence, v))
}

// PackageLessonCount applies equality check predicate on the "package_lesson_count" field. It's identical to PackageLessonCountEQ.
func PackageLessonCount(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageLessonCount, v))
}

// PaymentMode applies equality check predicate on the "payment_mode" field. It's identical to PaymentModeEQ.
func PaymentMode(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentMode, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// CustomerRef applies equality check predicate on the "customer_ref" field. It's identical to CustomerRefEQ.
func CustomerRef(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerRef, v))
}

// CheckoutSessionRef applies equality check predicate on the "checkout_session_ref" field. It's identical to CheckoutSessionRefEQ.
func CheckoutSessionRef(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCheckoutSessionRef, v))
}

// PaymentRef applies equality check predicate on the "payment_ref" field. It's identical to PaymentRefEQ.
func PaymentRef(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldStudentID, v))
}

// InstructorIDEQ applies the EQ predicate on the "instructor_id" field.
func InstructorIDEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldInstructorID, v))
}

// InstructorIDNEQ applies the NEQ predicate on the "instructor_id" field.
func InstructorIDNEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldInstructorID, v))
}

// InstructorIDIn applies the In predicate on the "instructor_id" field.
func InstructorIDIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldInstructorID, vs...))
}

// InstructorIDNotIn applies the NotIn predicate on the "instructor_id" field.
func InstructorIDNotIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldInstructorID, vs...))
}

// InstructorIDGT applies the GT predicate on the "instructor_id" field.
func InstructorIDGT(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldInstructorID, v))
}

// InstructorIDGTE applies the GTE predicate on the "instructor_id" field.
func InstructorIDGTE(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldInstructorID, v))
}

// InstructorIDLT applies the LT predicate on the "instructor_id" field.
func InstructorIDLT(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldInstructorID, v))
}

// InstructorIDLTE applies the LTE predicate on the "instructor_id" field.
func InstructorIDLTE(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldInstructorID, v))
}

// PackageNameEQ applies the EQ predicate on the "package_name" field.
func PackageNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageName, v))
}

// PackageNameNEQ applies the NEQ predicate on the "package_name" field.
func PackageNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPackageName, v))
}

// PackageNameIn applies the In predicate on the "package_name" field.
func PackageNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPackageName, vs...))
}

// PackageNameNotIn applies the NotIn predicate on the "package_name" field.
func PackageNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPackageName, vs...))
}

// PackageNameGT applies the GT predicate on the "package_name" field.
func PackageNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPackageName, v))
}

// PackageNameGTE applies the GTE predicate on the "package_name" field.
func PackageNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPackageName, v))
}

// PackageNameLT applies the LT predicate on the "package_name" field.
func PackageNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPackageName, v))
}

// PackageNameLTE applies the LTE predicate on the "package_name" field.
func PackageNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPackageName, v))
}

// PackageNameContains applies the Contains predicate on the "package_name" field.
func PackageNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPackageName, v))
}

// PackageNameHasPrefix applies the HasPrefix predicate on the "package_name" field.
func PackageNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPackageName, v))
}

// PackageNameHasSuffix applies the HasSuffix predicate on the "package_name" field.
func PackageNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPackageName, v))
}

// PackageNameEqualFold applies the EqualFold predicate on the "package_name" field.
func PackageNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPackageName, v))
}

// PackageNameContainsFold applies the ContainsFold predicate on the "package_name" field.
func PackageNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPackageName, v))
}

// PackageTotalPricePenceEQ applies the EQ predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageTotalPricePence, v))
}

// PackageTotalPricePenceNEQ applies the NEQ predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceNEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPackageTotalPricePence, v))
}

// PackageTotalPricePenceIn applies the In predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPackageTotalPricePence, vs...))
}

// PackageTotalPricePenceNotIn applies the NotIn predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceNotIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPackageTotalPricePence, vs...))
}

// PackageTotalPricePenceGT applies the GT predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceGT(v int64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPackageTotalPricePence, v))
}

// PackageTotalPricePenceGTE applies the GTE predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceGTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPackageTotalPricePence, v))
}

// PackageTotalPricePenceLT applies the LT predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceLT(v int64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPackageTotalPricePence, v))
}

// PackageTotalPricePenceLTE applies the LTE predicate on the "package_total_price_pence" field.
func PackageTotalPricePenceLTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPackageTotalPricePence, v))
}

// PackageLessonPricePenceEQ applies the EQ predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageLessonPricePence, v))
}

// PackageLessonPricePenceNEQ applies the NEQ predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceNEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPackageLessonPricePence, v))
}

// PackageLessonPricePenceIn applies the In predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPackageLessonPricePence, vs...))
}

// PackageLessonPricePenceNotIn applies the NotIn predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceNotIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPackageLessonPricePence, vs...))
}

// PackageLessonPricePenceGT applies the GT predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceGT(v int64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPackageLessonPricePence, v))
}

// PackageLessonPricePenceGTE applies the GTE predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceGTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPackageLessonPricePence, v))
}

// PackageLessonPricePenceLT applies the LT predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceLT(v int64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPackageLessonPricePence, v))
}

// PackageLessonPricePenceLTE applies the LTE predicate on the "package_lesson_price_pence" field.
func PackageLessonPricePenceLTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPackageLessonPricePence, v))
}

// PackageLessonCountEQ applies the EQ predicate on the "package_lesson_count" field.
func PackageLessonCountEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPackageLessonCount, v))
}

// PackageLessonCountNEQ applies the NEQ predicate on the "package_lesson_count" field.
func PackageLessonCountNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPackageLessonCount, v))
}

// PackageLessonCountIn applies the In predicate on the "package_lesson_count" field.
func PackageLessonCountIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPackageLessonCount, vs...))
}

// PackageLessonCountNotIn applies the NotIn predicate on the "package_lesson_count" field.
func PackageLessonCountNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPackageLessonCount, vs...))
}

// PackageLessonCountGT applies the GT predicate on the "package_lesson_count" field.
func PackageLessonCountGT(v int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPackageLessonCount, v))
}

// PackageLessonCountGTE applies the GTE predicate on the "package_lesson_count" field.
func PackageLessonCountGTE(v int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPackageLessonCount, v))
}

// PackageLessonCountLT applies the LT predicate on the "package_lesson_count" field.
func PackageLessonCountLT(v int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPackageLessonCount, v))
}

// PackageLessonCountLTE applies the LTE predicate on the "package_lesson_count" field.
func PackageLessonCountLTE(v int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPackageLessonCount, v))
}

// PaymentModeEQ applies the EQ predicate on the "payment_mode" field.
func PaymentModeEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentMode, v))
}

// PaymentModeNEQ applies the NEQ predicate on the "payment_mode" field.
func PaymentModeNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentMode, v))
}

// PaymentModeIn applies the In predicate on the "payment_mode" field.
func PaymentModeIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentMode, vs...))
}

// PaymentModeNotIn applies the NotIn predicate on the "payment_mode" field.
func PaymentModeNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentMode, vs...))
}

// PaymentModeGT applies the GT predicate on the "payment_mode" field.
func PaymentModeGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPaymentMode, v))
}

// PaymentModeGTE applies the GTE predicate on the "payment_mode" field.
func PaymentModeGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPaymentMode, v))
}

// PaymentModeLT applies the LT predicate on the "payment_mode" field.
func PaymentModeLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPaymentMode, v))
}

// PaymentModeLTE applies the LTE predicate on the "payment_mode" field.
func PaymentModeLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPaymentMode, v))
}

// PaymentModeContains applies the Contains predicate on the "payment_mode" field.
func PaymentModeContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPaymentMode, v))
}

// PaymentModeHasPrefix applies the HasPrefix predicate on the "payment_mode" field.
func PaymentModeHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPaymentMode, v))
}

// PaymentModeHasSuffix applies the HasSuffix predicate on the "payment_mode" field.
func PaymentModeHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPaymentMode, v))
}

// PaymentModeEqualFold applies the EqualFold predicate on the "payment_mode" field.
func PaymentModeEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPaymentMode, v))
}

// PaymentModeContainsFold applies the ContainsFold predicate on the "payment_mode" field.
func PaymentModeContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPaymentMode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldStatus, v))
}

// CustomerRefEQ applies the EQ predicate on the "customer_ref" field.
func CustomerRefEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerRef, v))
}

// CustomerRefNEQ applies the NEQ predicate on the "customer_ref" field.
func CustomerRefNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerRef, v))
}

// CustomerRefIn applies the In predicate on the "customer_ref" field.
func CustomerRefIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerRef, vs...))
}

// CustomerRefNotIn applies the NotIn predicate on the "customer_ref" field.
func CustomerRefNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerRef, vs...))
}

// CustomerRefGT applies the GT predicate on the "customer_ref" field.
func CustomerRefGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerRef, v))
}

// CustomerRefGTE applies the GTE predicate on the "customer_ref" field.
func CustomerRefGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerRef, v))
}

// CustomerRefLT applies the LT predicate on the "customer_ref" field.
func CustomerRefLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerRef, v))
}

// CustomerRefLTE applies the LTE predicate on the "customer_ref" field.
func CustomerRefLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerRef, v))
}

// CustomerRefContains applies the Contains predicate on the "customer_ref" field.
func CustomerRefContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerRef, v))
}

// CustomerRefHasPrefix applies the HasPrefix predicate on the "customer_ref" field.
func CustomerRefHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerRef, v))
}

// CustomerRefHasSuffix applies the HasSuffix predicate on the "customer_ref" field.
func CustomerRefHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerRef, v))
}

// CustomerRefEqualFold applies the EqualFold predicate on the "customer_ref" field.
func CustomerRefEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerRef, v))
}

// CustomerRefContainsFold applies the ContainsFold predicate on the "customer_ref" field.
func CustomerRefContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerRef, v))
}

// CheckoutSessionRefEQ applies the EQ predicate on the "checkout_session_ref" field.
func CheckoutSessionRefEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefNEQ applies the NEQ predicate on the "checkout_session_ref" field.
func CheckoutSessionRefNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefIn applies the In predicate on the "checkout_session_ref" field.
func CheckoutSessionRefIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCheckoutSessionRef, vs...))
}

// CheckoutSessionRefNotIn applies the NotIn predicate on the "checkout_session_ref" field.
func CheckoutSessionRefNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCheckoutSessionRef, vs...))
}

// CheckoutSessionRefGT applies the GT predicate on the "checkout_session_ref" field.
func CheckoutSessionRefGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefGTE applies the GTE predicate on the "checkout_session_ref" field.
func CheckoutSessionRefGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefLT applies the LT predicate on the "checkout_session_ref" field.
func CheckoutSessionRefLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefLTE applies the LTE predicate on the "checkout_session_ref" field.
func CheckoutSessionRefLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefContains applies the Contains predicate on the "checkout_session_ref" field.
func CheckoutSessionRefContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefHasPrefix applies the HasPrefix predicate on the "checkout_session_ref" field.
func CheckoutSessionRefHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefHasSuffix applies the HasSuffix predicate on the "checkout_session_ref" field.
func CheckoutSessionRefHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefEqualFold applies the EqualFold predicate on the "checkout_session_ref" field.
func CheckoutSessionRefEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCheckoutSessionRef, v))
}

// CheckoutSessionRefContainsFold applies the ContainsFold predicate on the "checkout_session_ref" field.
func CheckoutSessionRefContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCheckoutSessionRef, v))
}

// PaymentRefEQ applies the EQ predicate on the "payment_ref" field.
func PaymentRefEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentRef, v))
}

// PaymentRefNEQ applies the NEQ predicate on the "payment_ref" field.
func PaymentRefNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentRef, v))
}

// PaymentRefIn applies the In predicate on the "payment_ref" field.
func PaymentRefIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentRef, vs...))
}

// PaymentRefNotIn applies the NotIn predicate on the "payment_ref" field.
func PaymentRefNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentRef, vs...))
}

// PaymentRefGT applies the GT predicate on the "payment_ref" field.
func PaymentRefGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPaymentRef, v))
}

// PaymentRefGTE applies the GTE predicate on the "payment_ref" field.
func PaymentRefGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPaymentRef, v))
}

// PaymentRefLT applies the LT predicate on the "payment_ref" field.
func PaymentRefLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPaymentRef, v))
}

// PaymentRefLTE applies the LTE predicate on the "payment_ref" field.
func PaymentRefLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPaymentRef, v))
}

// PaymentRefContains applies the Contains predicate on the "payment_ref" field.
func PaymentRefContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPaymentRef, v))
}

// PaymentRefHasPrefix applies the HasPrefix predicate on the "payment_ref" field.
func PaymentRefHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPaymentRef, v))
}

// PaymentRefHasSuffix applies the HasSuffix predicate on the "payment_ref" field.
func PaymentRefHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPaymentRef, v))
}

// PaymentRefEqualFold applies the EqualFold predicate on the "payment_ref" field.
func PaymentRefEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPaymentRef, v))
}

// PaymentRefContainsFold applies the ContainsFold predicate on the "payment_ref" field.
func PaymentRefContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPaymentRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLessons applies the HasEdge predicate on the "lessons" edge.
func HasLessons() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonsWith applies the HasEdge predicate on the "lessons" edge with a given conditions (other predicates).
func HasLessonsWith(preds ...predicate.Lesson) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newLessonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
