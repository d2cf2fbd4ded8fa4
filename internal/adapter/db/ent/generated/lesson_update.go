// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (lu *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	lu.mutation.Where(ps...)
	return lu
}

// SetOrderID sets the "order_id" field.
func (lu *LessonUpdate) SetOrderID(u uuid.UUID) *LessonUpdate {
	lu.mutation.SetOrderID(u)
	return lu
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableOrderID(u *uuid.UUID) *LessonUpdate {
	if u != nil {
		lu.SetOrderID(*u)
	}
	return lu
}

// SetInstructorID sets the "instructor_id" field.
func (lu *LessonUpdate) SetInstructorID(u uuid.UUID) *LessonUpdate {
	lu.mutation.SetInstructorID(u)
	return lu
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableInstructorID(u *uuid.UUID) *LessonUpdate {
	if u != nil {
		lu.SetInstructorID(*u)
	}
	return lu
}

// SetSlotID sets the "slot_id" field.
func (lu *LessonUpdate) SetSlotID(u uuid.UUID) *LessonUpdate {
	lu.mutation.SetSlotID(u)
	return lu
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableSlotID(u *uuid.UUID) *LessonUpdate {
	if u != nil {
		lu.SetSlotID(*u)
	}
	return lu
}

// ClearSlotID clears the value of the "slot_id" field.
func (lu *LessonUpdate) ClearSlotID() *LessonUpdate {
	lu.mutation.ClearSlotID()
	return lu
}

// SetDate sets the "date" field.
func (lu *LessonUpdate) SetDate(t time.Time) *LessonUpdate {
	lu.mutation.SetDate(t)
	return lu
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableDate(t *time.Time) *LessonUpdate {
	if t != nil {
		lu.SetDate(*t)
	}
	return lu
}

// SetStartTime sets the "start_time" field.
func (lu *LessonUpdate) SetStartTime(s string) *LessonUpdate {
	lu.mutation.SetStartTime(s)
	return lu
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableStartTime(s *string) *LessonUpdate {
	if s != nil {
		lu.SetStartTime(*s)
	}
	return lu
}

// SetEndTime sets the "end_time" field.
func (lu *LessonUpdate) SetEndTime(s string) *LessonUpdate {
	lu.mutation.SetEndTime(s)
	return lu
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableEndTime(s *string) *LessonUpdate {
	if s != nil {
		lu.SetEndTime(*s)
	}
	return lu
}

// SetAmountPence sets the "amount_pence" field.
func (lu *LessonUpdate) SetAmountPence(i int64) *LessonUpdate {
	lu.mutation.ResetAmountPence()
	lu.mutation.SetAmountPence(i)
	return lu
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableAmountPence(i *int64) *LessonUpdate {
	if i != nil {
		lu.SetAmountPence(*i)
	}
	return lu
}

// AddAmountPence adds i to the "amount_pence" field.
func (lu *LessonUpdate) AddAmountPence(i int64) *LessonUpdate {
	lu.mutation.AddAmountPence(i)
	return lu
}

// SetStatus sets the "status" field.
func (lu *LessonUpdate) SetStatus(s string) *LessonUpdate {
	lu.mutation.SetStatus(s)
	return lu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableStatus(s *string) *LessonUpdate {
	if s != nil {
		lu.SetStatus(*s)
	}
	return lu
}

// SetCompletedAt sets the "completed_at" field.
func (lu *LessonUpdate) SetCompletedAt(t time.Time) *LessonUpdate {
	lu.mutation.SetCompletedAt(t)
	return lu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableCompletedAt(t *time.Time) *LessonUpdate {
	if t != nil {
		lu.SetCompletedAt(*t)
	}
	return lu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (lu *LessonUpdate) ClearCompletedAt() *LessonUpdate {
	lu.mutation.ClearCompletedAt()
	return lu
}

// SetUpdatedAt sets the "updated_at" field.
func (lu *LessonUpdate) SetUpdatedAt(t time.Time) *LessonUpdate {
	lu.mutation.SetUpdatedAt(t)
	return lu
}

// SetOrder sets the "order" edge to the Order entity.
func (lu *LessonUpdate) SetOrder(o *Order) *LessonUpdate {
	return lu.SetOrderID(o.ID)
}

// SetSlot sets the "slot" edge to the TimeSlot entity.
func (lu *LessonUpdate) SetSlot(t *TimeSlot) *LessonUpdate {
	return lu.SetSlotID(t.ID)
}

// SetPaymentID sets the "payment" edge to the LessonPayment entity by ID.
func (lu *LessonUpdate) SetPaymentID(id uuid.UUID) *LessonUpdate {
	lu.mutation.SetPaymentID(id)
	return lu
}

// SetNillablePaymentID sets the "payment" edge to the LessonPayment entity by ID if the given value is not nil.
func (lu *LessonUpdate) SetNillablePaymentID(id *uuid.UUID) *LessonUpdate {
	if id != nil {
		lu = lu.SetPaymentID(*id)
	}
	return lu
}

// SetPayment sets the "payment" edge to the LessonPayment entity.
func (lu *LessonUpdate) SetPayment(l *LessonPayment) *LessonUpdate {
	return lu.SetPaymentID(l.ID)
}

// SetPayoutID sets the "payout" edge to the Payout entity by ID.
func (lu *LessonUpdate) SetPayoutID(id uuid.UUID) *LessonUpdate {
	lu.mutation.SetPayoutID(id)
	return lu
}

// SetNillablePayoutID sets the "payout" edge to the Payout entity by ID if the given value is not nil.
func (lu *LessonUpdate) SetNillablePayoutID(id *uuid.UUID) *LessonUpdate {
	if id != nil {
		lu = lu.SetPayoutID(*id)
	}
	return lu
}

// SetPayout sets the "payout" edge to the Payout entity.
func (lu *LessonUpdate) SetPayout(p *Payout) *LessonUpdate {
	return lu.SetPayoutID(p.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (lu *LessonUpdate) Mutation() *LessonMutation {
	return lu.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (lu *LessonUpdate) ClearOrder() *LessonUpdate {
	lu.mutation.ClearOrder()
	return lu
}

// ClearSlot clears the "slot" edge to the TimeSlot entity.
func (lu *LessonUpdate) ClearSlot() *LessonUpdate {
	lu.mutation.ClearSlot()
	return lu
}

// ClearPayment clears the "payment" edge to the LessonPayment entity.
func (lu *LessonUpdate) ClearPayment() *LessonUpdate {
	lu.mutation.ClearPayment()
	return lu
}

// ClearPayout clears the "payout" edge to the Payout entity.
func (lu *LessonUpdate) ClearPayout() *LessonUpdate {
	lu.mutation.ClearPayout()
	return lu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lu *LessonUpdate) Save(ctx context.Context) (int, error) {
	lu.defaults()
	return withHooks(ctx, lu.sqlSave, lu.mutation, lu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lu *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := lu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lu *LessonUpdate) Exec(ctx context.Context) error {
	_, err := lu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lu *LessonUpdate) ExecX(ctx context.Context) {
	if err := lu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lu *LessonUpdate) defaults() {
	if _, ok := lu.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		lu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lu *LessonUpdate) check() error {
	if v, ok := lu.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	if lu.mutation.OrderCleared() && len(lu.mutation.OrderIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Lesson.order"`)
	}
	return nil
}

func (lu *LessonUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := lu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lu.mutation.InstructorID(); ok {
		_spec.SetField(lesson.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := lu.mutation.Date(); ok {
		_spec.SetField(lesson.FieldDate, field.TypeTime, value)
	}
	if value, ok := lu.mutation.StartTime(); ok {
		_spec.SetField(lesson.FieldStartTime, field.TypeString, value)
	}
	if value, ok := lu.mutation.EndTime(); ok {
		_spec.SetField(lesson.FieldEndTime, field.TypeString, value)
	}
	if value, ok := lu.mutation.AmountPence(); ok {
		_spec.SetField(lesson.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lu.mutation.AddedAmountPence(); ok {
		_spec.AddField(lesson.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lu.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := lu.mutation.CompletedAt(); ok {
		_spec.SetField(lesson.FieldCompletedAt, field.TypeTime, value)
	}
	if lu.mutation.CompletedAtCleared() {
		_spec.ClearField(lesson.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := lu.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if lu.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.OrderTable,
			Columns: []string{lesson.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lu.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.OrderTable,
			Columns: []string{lesson.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if lu.mutation.SlotCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SlotTable,
			Columns: []string{lesson.SlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lu.mutation.SlotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SlotTable,
			Columns: []string{lesson.SlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if lu.mutation.PaymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PaymentTable,
			Columns: []string{lesson.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lu.mutation.PaymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PaymentTable,
			Columns: []string{lesson.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if lu.mutation.PayoutCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PayoutTable,
			Columns: []string{lesson.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lu.mutation.PayoutIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PayoutTable,
			Columns: []string{lesson.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lu.mutation.done = true
	return n, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetOrderID sets the "order_id" field.
func (luo *LessonUpdateOne) SetOrderID(u uuid.UUID) *LessonUpdateOne {
	luo.mutation.SetOrderID(u)
	return luo
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableOrderID(u *uuid.UUID) *LessonUpdateOne {
	if u != nil {
		luo.SetOrderID(*u)
	}
	return luo
}

// SetInstructorID sets the "instructor_id" field.
func (luo *LessonUpdateOne) SetInstructorID(u uuid.UUID) *LessonUpdateOne {
	luo.mutation.SetInstructorID(u)
	return luo
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableInstructorID(u *uuid.UUID) *LessonUpdateOne {
	if u != nil {
		luo.SetInstructorID(*u)
	}
	return luo
}

// SetSlotID sets the "slot_id" field.
func (luo *LessonUpdateOne) SetSlotID(u uuid.UUID) *LessonUpdateOne {
	luo.mutation.SetSlotID(u)
	return luo
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableSlotID(u *uuid.UUID) *LessonUpdateOne {
	if u != nil {
		luo.SetSlotID(*u)
	}
	return luo
}

// ClearSlotID clears the value of the "slot_id" field.
func (luo *LessonUpdateOne) ClearSlotID() *LessonUpdateOne {
	luo.mutation.ClearSlotID()
	return luo
}

// SetDate sets the "date" field.
func (luo *LessonUpdateOne) SetDate(t time.Time) *LessonUpdateOne {
	luo.mutation.SetDate(t)
	return luo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableDate(t *time.Time) *LessonUpdateOne {
	if t != nil {
		luo.SetDate(*t)
	}
	return luo
}

// SetStartTime sets the "start_time" field.
func (luo *LessonUpdateOne) SetStartTime(s string) *LessonUpdateOne {
	luo.mutation.SetStartTime(s)
	return luo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableStartTime(s *string) *LessonUpdateOne {
	if s != nil {
		luo.SetStartTime(*s)
	}
	return luo
}

// SetEndTime sets the "end_time" field.
func (luo *LessonUpdateOne) SetEndTime(s string) *LessonUpdateOne {
	luo.mutation.SetEndTime(s)
	return luo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableEndTime(s *string) *LessonUpdateOne {
	if s != nil {
		luo.SetEndTime(*s)
	}
	return luo
}

// SetAmountPence sets the "amount_pence" field.
func (luo *LessonUpdateOne) SetAmountPence(i int64) *LessonUpdateOne {
	luo.mutation.ResetAmountPence()
	luo.mutation.SetAmountPence(i)
	return luo
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableAmountPence(i *int64) *LessonUpdateOne {
	if i != nil {
		luo.SetAmountPence(*i)
	}
	return luo
}

// AddAmountPence adds i to the "amount_pence" field.
func (luo *LessonUpdateOne) AddAmountPence(i int64) *LessonUpdateOne {
	luo.mutation.AddAmountPence(i)
	return luo
}

// SetStatus sets the "status" field.
func (luo *LessonUpdateOne) SetStatus(s string) *LessonUpdateOne {
	luo.mutation.SetStatus(s)
	return luo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableStatus(s *string) *LessonUpdateOne {
	if s != nil {
		luo.SetStatus(*s)
	}
	return luo
}

// SetCompletedAt sets the "completed_at" field.
func (luo *LessonUpdateOne) SetCompletedAt(t time.Time) *LessonUpdateOne {
	luo.mutation.SetCompletedAt(t)
	return luo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableCompletedAt(t *time.Time) *LessonUpdateOne {
	if t != nil {
		luo.SetCompletedAt(*t)
	}
	return luo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (luo *LessonUpdateOne) ClearCompletedAt() *LessonUpdateOne {
	luo.mutation.ClearCompletedAt()
	return luo
}

// SetUpdatedAt sets the "updated_at" field.
func (luo *LessonUpdateOne) SetUpdatedAt(t time.Time) *LessonUpdateOne {
	luo.mutation.SetUpdatedAt(t)
	return luo
}

// SetOrder sets the "order" edge to the Order entity.
func (luo *LessonUpdateOne) SetOrder(o *Order) *LessonUpdateOne {
	return luo.SetOrderID(o.ID)
}

// SetSlot sets the "slot" edge to the TimeSlot entity.
func (luo *LessonUpdateOne) SetSlot(t *TimeSlot) *LessonUpdateOne {
	return luo.SetSlotID(t.ID)
}

// SetPaymentID sets the "payment" edge to the LessonPayment entity by ID.
func (luo *LessonUpdateOne) SetPaymentID(id uuid.UUID) *LessonUpdateOne {
	luo.mutation.SetPaymentID(id)
	return luo
}

// SetNillablePaymentID sets the "payment" edge to the LessonPayment entity by ID if the given value is not nil.
func (luo *LessonUpdateOne) SetNillablePaymentID(id *uuid.UUID) *LessonUpdateOne {
	if id != nil {
		luo = luo.SetPaymentID(*id)
	}
	return luo
}

// SetPayment sets the "payment" edge to the LessonPayment entity.
func (luo *LessonUpdateOne) SetPayment(l *LessonPayment) *LessonUpdateOne {
	return luo.SetPaymentID(l.ID)
}

// SetPayoutID sets the "payout" edge to the Payout entity by ID.
func (luo *LessonUpdateOne) SetPayoutID(id uuid.UUID) *LessonUpdateOne {
	luo.mutation.SetPayoutID(id)
	return luo
}

// SetNillablePayoutID sets the "payout" edge to the Payout entity by ID if the given value is not nil.
func (luo *LessonUpdateOne) SetNillablePayoutID(id *uuid.UUID) *LessonUpdateOne {
	if id != nil {
		luo = luo.SetPayoutID(*id)
	}
	return luo
}

// SetPayout sets the "payout" edge to the Payout entity.
func (luo *LessonUpdateOne) SetPayout(p *Payout) *LessonUpdateOne {
	return luo.SetPayoutID(p.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (luo *LessonUpdateOne) Mutation() *LessonMutation {
	return luo.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (luo *LessonUpdateOne) ClearOrder() *LessonUpdateOne {
	luo.mutation.ClearOrder()
	return luo
}

// ClearSlot clears the "slot" edge to the TimeSlot entity.
func (luo *LessonUpdateOne) ClearSlot() *LessonUpdateOne {
	luo.mutation.ClearSlot()
	return luo
}

// ClearPayment clears the "payment" edge to the LessonPayment entity.
func (luo *LessonUpdateOne) ClearPayment() *LessonUpdateOne {
	luo.mutation.ClearPayment()
	return luo
}

// ClearPayout clears the "payout" edge to the Payout entity.
func (luo *LessonUpdateOne) ClearPayout() *LessonUpdateOne {
	luo.mutation.ClearPayout()
	return luo
}

// Where appends a list predicates to the LessonUpdate builder.
func (luo *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	luo.mutation.Where(ps...)
	return luo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (luo *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	luo.fields = append([]string{field}, fields...)
	return luo
}

// Save executes the query and returns the updated Lesson entity.
func (luo *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	luo.defaults()
	return withHooks(ctx, luo.sqlSave, luo.mutation, luo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (luo *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := luo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (luo *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := luo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (luo *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := luo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (luo *LessonUpdateOne) defaults() {
	if _, ok := luo.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		luo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (luo *LessonUpdateOne) check() error {
	if v, ok := luo.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	if luo.mutation.OrderCleared() && len(luo.mutation.OrderIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Lesson.order"`)
	}
	return nil
}

func (luo *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := luo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := luo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := luo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := luo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := luo.mutation.InstructorID(); ok {
		_spec.SetField(lesson.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := luo.mutation.Date(); ok {
		_spec.SetField(lesson.FieldDate, field.TypeTime, value)
	}
	if value, ok := luo.mutation.StartTime(); ok {
		_spec.SetField(lesson.FieldStartTime, field.TypeString, value)
	}
	if value, ok := luo.mutation.EndTime(); ok {
		_spec.SetField(lesson.FieldEndTime, field.TypeString, value)
	}
	if value, ok := luo.mutation.AmountPence(); ok {
		_spec.SetField(lesson.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := luo.mutation.AddedAmountPence(); ok {
		_spec.AddField(lesson.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := luo.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := luo.mutation.CompletedAt(); ok {
		_spec.SetField(lesson.FieldCompletedAt, field.TypeTime, value)
	}
	if luo.mutation.CompletedAtCleared() {
		_spec.ClearField(lesson.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := luo.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if luo.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.OrderTable,
			Columns: []string{lesson.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := luo.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.OrderTable,
			Columns: []string{lesson.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if luo.mutation.SlotCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SlotTable,
			Columns: []string{lesson.SlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := luo.mutation.SlotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SlotTable,
			Columns: []string{lesson.SlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if luo.mutation.PaymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PaymentTable,
			Columns: []string{lesson.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := luo.mutation.PaymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PaymentTable,
			Columns: []string{lesson.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if luo.mutation.PayoutCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PayoutTable,
			Columns: []string{lesson.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := luo.mutation.PayoutIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.PayoutTable,
			Columns: []string{lesson.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: luo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, luo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	luo.mutation.done = true
	return _node, nil
}
