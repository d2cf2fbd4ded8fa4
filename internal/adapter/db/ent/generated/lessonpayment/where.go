// Code generated by ent, DO NOT EDIT.

package lessonpayment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldLessonID, v))
}

// AmountPence applies equality check predicate on the "amount_pence" field. It's identical to AmountPenceEQ.
func AmountPence(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldAmountPence, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldStatus, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldDueDate, v))
}

// InvoiceRef applies equality check predicate on the "invoice_ref" field. It's identical to InvoiceRefEQ.
func InvoiceRef(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldInvoiceRef, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldPaidAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldCreatedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...uuid.UUID) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldLessonID, vs...))
}

// AmountPenceEQ applies the EQ predicate on the "amount_pence" field.
func AmountPenceEQ(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldAmountPence, v))
}

// AmountPenceNEQ applies the NEQ predicate on the "amount_pence" field.
func AmountPenceNEQ(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldAmountPence, v))
}

// AmountPenceIn applies the In predicate on the "amount_pence" field.
func AmountPenceIn(vs ...int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldAmountPence, vs...))
}

// AmountPenceNotIn applies the NotIn predicate on the "amount_pence" field.
func AmountPenceNotIn(vs ...int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldAmountPence, vs...))
}

// AmountPenceGT applies the GT predicate on the "amount_pence" field.
func AmountPenceGT(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldAmountPence, v))
}

// AmountPenceGTE applies the GTE predicate on the "amount_pence" field.
func AmountPenceGTE(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldAmountPence, v))
}

// AmountPenceLT applies the LT predicate on the "amount_pence" field.
func AmountPenceLT(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldAmountPence, v))
}

// AmountPenceLTE applies the LTE predicate on the "amount_pence" field.
func AmountPenceLTE(v int64) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldAmountPence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldContainsFold(FieldStatus, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldDueDate, v))
}

// InvoiceRefEQ applies the EQ predicate on the "invoice_ref" field.
func InvoiceRefEQ(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldInvoiceRef, v))
}

// InvoiceRefNEQ applies the NEQ predicate on the "invoice_ref" field.
func InvoiceRefNEQ(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldInvoiceRef, v))
}

// InvoiceRefIn applies the In predicate on the "invoice_ref" field.
func InvoiceRefIn(vs ...string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldInvoiceRef, vs...))
}

// InvoiceRefNotIn applies the NotIn predicate on the "invoice_ref" field.
func InvoiceRefNotIn(vs ...string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldInvoiceRef, vs...))
}

// InvoiceRefGT applies the GT predicate on the "invoice_ref" field.
func InvoiceRefGT(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldInvoiceRef, v))
}

// InvoiceRefGTE applies the GTE predicate on the "invoice_ref" field.
func InvoiceRefGTE(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldInvoiceRef, v))
}

// InvoiceRefLT applies the LT predicate on the "invoice_ref" field.
func InvoiceRefLT(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldInvoiceRef, v))
}

// InvoiceRefLTE applies the LTE predicate on the "invoice_ref" field.
func InvoiceRefLTE(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldInvoiceRef, v))
}

// InvoiceRefContains applies the Contains predicate on the "invoice_ref" field.
func InvoiceRefContains(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldContains(FieldInvoiceRef, v))
}

// InvoiceRefHasPrefix applies the HasPrefix predicate on the "invoice_ref" field.
func InvoiceRefHasPrefix(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldHasPrefix(FieldInvoiceRef, v))
}

// InvoiceRefHasSuffix applies the HasSuffix predicate on the "invoice_ref" field.
func InvoiceRefHasSuffix(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldHasSuffix(FieldInvoiceRef, v))
}

// InvoiceRefEqualFold applies the EqualFold predicate on the "invoice_ref" field.
func InvoiceRefEqualFold(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEqualFold(FieldInvoiceRef, v))
}

// InvoiceRefContainsFold applies the ContainsFold predicate on the "invoice_ref" field.
func InvoiceRefContainsFold(v string) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldContainsFold(FieldInvoiceRef, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotNull(FieldPaidAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonPayment {
	return predicate.LessonPayment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.LessonPayment {
	return predicate.LessonPayment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.LessonPayment {
	return predicate.LessonPayment(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonPayment) predicate.LessonPayment {
	return predicate.LessonPayment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonPayment) predicate.LessonPayment {
	return predicate.LessonPayment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonPayment) predicate.LessonPayment {
	return predicate.LessonPayment(sql.NotPredicates(p))
}
