// Code generated by ent, DO NOT EDIT.

package calendarday

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLTE(FieldID, id))
}

// InstructorID applies equality check predicate on the "instructor_id" field. It's identical to InstructorIDEQ.
func InstructorID(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldInstructorID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldCreatedAt, v))
}

// InstructorIDEQ applies the EQ predicate on the "instructor_id" field.
func InstructorIDEQ(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldInstructorID, v))
}

// InstructorIDNEQ applies the NEQ predicate on the "instructor_id" field.
func InstructorIDNEQ(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNEQ(FieldInstructorID, v))
}

// InstructorIDIn applies the In predicate on the "instructor_id" field.
func InstructorIDIn(vs ...uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldIn(FieldInstructorID, vs...))
}

// InstructorIDNotIn applies the NotIn predicate on the "instructor_id" field.
func InstructorIDNotIn(vs ...uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNotIn(FieldInstructorID, vs...))
}

// InstructorIDGT applies the GT predicate on the "instructor_id" field.
func InstructorIDGT(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGT(FieldInstructorID, v))
}

// InstructorIDGTE applies the GTE predicate on the "instructor_id" field.
func InstructorIDGTE(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGTE(FieldInstructorID, v))
}

// InstructorIDLT applies the LT predicate on the "instructor_id" field.
func InstructorIDLT(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLT(FieldInstructorID, v))
}

// InstructorIDLTE applies the LTE predicate on the "instructor_id" field.
func InstructorIDLTE(v uuid.UUID) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLTE(FieldInstructorID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLTE(FieldDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarDay {
	return predicate.CalendarDay(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSlots applies the HasEdge predicate on the "slots" edge.
func HasSlots() predicate.CalendarDay {
	return predicate.CalendarDay(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SlotsTable, SlotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSlotsWith applies the HasEdge predicate on the "slots" edge with a given conditions (other predicates).
func HasSlotsWith(preds ...predicate.TimeSlot) predicate.CalendarDay {
	return predicate.CalendarDay(func(s *sql.Selector) {
		step := newSlotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarDay) predicate.CalendarDay {
	return predicate.CalendarDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarDay) predicate.CalendarDay {
	return predicate.CalendarDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarDay) predicate.CalendarDay {
	return predicate.CalendarDay(sql.NotPredicates(p))
}
