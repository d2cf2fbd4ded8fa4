// Code generated by ent, DO NOT EDIT.

package payout

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldLessonID, v))
}

// InstructorID applies equality check predicate on the "instructor_id" field. It's identical to InstructorIDEQ.
func InstructorID(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldInstructorID, v))
}

// AmountPence applies equality check predicate on the "amount_pence" field. It's identical to AmountPenceEQ.
func AmountPence(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldAmountPence, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldStatus, v))
}

// TransferRef applies equality check predicate on the "transfer_ref" field. It's identical to TransferRefEQ.
func TransferRef(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldTransferRef, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldPaidAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldCreatedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldLessonID, vs...))
}

// InstructorIDEQ applies the EQ predicate on the "instructor_id" field.
func InstructorIDEQ(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldInstructorID, v))
}

// InstructorIDNEQ applies the NEQ predicate on the "instructor_id" field.
func InstructorIDNEQ(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldInstructorID, v))
}

// InstructorIDIn applies the In predicate on the "instructor_id" field.
func InstructorIDIn(vs ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldInstructorID, vs...))
}

// InstructorIDNotIn applies the NotIn predicate on the "instructor_id" field.
func InstructorIDNotIn(vs ...uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldInstructorID, vs...))
}

// InstructorIDGT applies the GT predicate on the "instructor_id" field.
func InstructorIDGT(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldInstructorID, v))
}

// InstructorIDGTE applies the GTE predicate on the "instructor_id" field.
func InstructorIDGTE(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldInstructorID, v))
}

// InstructorIDLT applies the LT predicate on the "instructor_id" field.
func InstructorIDLT(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldInstructorID, v))
}

// InstructorIDLTE applies the LTE predicate on the "instructor_id" field.
func InstructorIDLTE(v uuid.UUID) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldInstructorID, v))
}

// AmountPenceEQ applies the EQ predicate on the "amount_pence" field.
func AmountPenceEQ(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldAmountPence, v))
}

// AmountPenceNEQ applies the NEQ predicate on the "amount_pence" field.
func AmountPenceNEQ(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldAmountPence, v))
}

// AmountPenceIn applies the In predicate on the "amount_pence" field.
func AmountPenceIn(vs ...int64) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldAmountPence, vs...))
}

// AmountPenceNotIn applies the NotIn predicate on the "amount_pence" field.
func AmountPenceNotIn(vs ...int64) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldAmountPence, vs...))
}

// AmountPenceGT applies the GT predicate on the "amount_pence" field.
func AmountPenceGT(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldAmountPence, v))
}

// AmountPenceGTE applies the GTE predicate on the "amount_pence" field.
func AmountPenceGTE(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldAmountPence, v))
}

// AmountPenceLT applies the LT predicate on the "amount_pence" field.
func AmountPenceLT(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldAmountPence, v))
}

// AmountPenceLTE applies the LTE predicate on the "amount_pence" field.
func AmountPenceLTE(v int64) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldAmountPence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Payout {
	return predicate.Payout(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Payout {
	return predicate.Payout(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Payout {
	return predicate.Payout(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Payout {
	return predicate.Payout(sql.FieldContainsFold(FieldStatus, v))
}

// TransferRefEQ applies the EQ predicate on the "transfer_ref" field.
func TransferRefEQ(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldTransferRef, v))
}

// TransferRefNEQ applies the NEQ predicate on the "transfer_ref" field.
func TransferRefNEQ(v string) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldTransferRef, v))
}

// TransferRefIn applies the In predicate on the "transfer_ref" field.
func TransferRefIn(vs ...string) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldTransferRef, vs...))
}

// TransferRefNotIn applies the NotIn predicate on the "transfer_ref" field.
func TransferRefNotIn(vs ...string) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldTransferRef, vs...))
}

// TransferRefGT applies the GT predicate on the "transfer_ref" field.
func TransferRefGT(v string) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldTransferRef, v))
}

// TransferRefGTE applies the GTE predicate on the "transfer_ref" field.
func TransferRefGTE(v string) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldTransferRef, v))
}

// TransferRefLT applies the LT predicate on the "transfer_ref" field.
func TransferRefLT(v string) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldTransferRef, v))
}

// TransferRefLTE applies the LTE predicate on the "transfer_ref" field.
func TransferRefLTE(v string) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldTransferRef, v))
}

// TransferRefContains applies the Contains predicate on the "transfer_ref" field.
func TransferRefContains(v string) predicate.Payout {
	return predicate.Payout(sql.FieldContains(FieldTransferRef, v))
}

// TransferRefHasPrefix applies the HasPrefix predicate on the "transfer_ref" field.
func TransferRefHasPrefix(v string) predicate.Payout {
	return predicate.Payout(sql.FieldHasPrefix(FieldTransferRef, v))
}

// TransferRefHasSuffix applies the HasSuffix predicate on the "transfer_ref" field.
func TransferRefHasSuffix(v string) predicate.Payout {
	return predicate.Payout(sql.FieldHasSuffix(FieldTransferRef, v))
}

// TransferRefEqualFold applies the EqualFold predicate on the "transfer_ref" field.
func TransferRefEqualFold(v string) predicate.Payout {
	return predicate.Payout(sql.FieldEqualFold(FieldTransferRef, v))
}

// TransferRefContainsFold applies the ContainsFold predicate on the "transfer_ref" field.
func TransferRefContainsFold(v string) predicate.Payout {
	return predicate.Payout(sql.FieldContainsFold(FieldTransferRef, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.Payout {
	return predicate.Payout(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.Payout {
	return predicate.Payout(sql.FieldNotNull(FieldPaidAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Payout {
	return predicate.Payout(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.Payout {
	return predicate.Payout(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.Payout {
	return predicate.Payout(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Payout) predicate.Payout {
	return predicate.Payout(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Payout) predicate.Payout {
	return predicate.Payout(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Payout) predicate.Payout {
	return predicate.Payout(sql.NotPredicates(p))
}
