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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// LessonPaymentUpdate is the builder for updating LessonPayment entities.
type LessonPaymentUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPaymentMutation
}

// Where appends a list predicates to the LessonPaymentUpdate builder.
func (lpu *LessonPaymentUpdate) Where(ps ...predicate.LessonPayment) *LessonPaymentUpdate {
	lpu.mutation.Where(ps...)
	return lpu
}

// SetLessonID sets the "lesson_id" field.
func (lpu *LessonPaymentUpdate) SetLessonID(u uuid.UUID) *LessonPaymentUpdate {
	lpu.mutation.SetLessonID(u)
	return lpu
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillableLessonID(u *uuid.UUID) *LessonPaymentUpdate {
	if u != nil {
		lpu.SetLessonID(*u)
	}
	return lpu
}

// SetAmountPence sets the "amount_pence" field.
func (lpu *LessonPaymentUpdate) SetAmountPence(i int64) *LessonPaymentUpdate {
	lpu.mutation.ResetAmountPence()
	lpu.mutation.SetAmountPence(i)
	return lpu
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillableAmountPence(i *int64) *LessonPaymentUpdate {
	if i != nil {
		lpu.SetAmountPence(*i)
	}
	return lpu
}

// AddAmountPence adds i to the "amount_pence" field.
func (lpu *LessonPaymentUpdate) AddAmountPence(i int64) *LessonPaymentUpdate {
	lpu.mutation.AddAmountPence(i)
	return lpu
}

// SetStatus sets the "status" field.
func (lpu *LessonPaymentUpdate) SetStatus(s string) *LessonPaymentUpdate {
	lpu.mutation.SetStatus(s)
	return lpu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillableStatus(s *string) *LessonPaymentUpdate {
	if s != nil {
		lpu.SetStatus(*s)
	}
	return lpu
}

// SetDueDate sets the "due_date" field.
func (lpu *LessonPaymentUpdate) SetDueDate(t time.Time) *LessonPaymentUpdate {
	lpu.mutation.SetDueDate(t)
	return lpu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillableDueDate(t *time.Time) *LessonPaymentUpdate {
	if t != nil {
		lpu.SetDueDate(*t)
	}
	return lpu
}

// SetInvoiceRef sets the "invoice_ref" field.
func (lpu *LessonPaymentUpdate) SetInvoiceRef(s string) *LessonPaymentUpdate {
	lpu.mutation.SetInvoiceRef(s)
	return lpu
}

// SetNillableInvoiceRef sets the "invoice_ref" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillableInvoiceRef(s *string) *LessonPaymentUpdate {
	if s != nil {
		lpu.SetInvoiceRef(*s)
	}
	return lpu
}

// SetPaidAt sets the "paid_at" field.
func (lpu *LessonPaymentUpdate) SetPaidAt(t time.Time) *LessonPaymentUpdate {
	lpu.mutation.SetPaidAt(t)
	return lpu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (lpu *LessonPaymentUpdate) SetNillablePaidAt(t *time.Time) *LessonPaymentUpdate {
	if t != nil {
		lpu.SetPaidAt(*t)
	}
	return lpu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (lpu *LessonPaymentUpdate) ClearPaidAt() *LessonPaymentUpdate {
	lpu.mutation.ClearPaidAt()
	return lpu
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (lpu *LessonPaymentUpdate) SetLesson(l *Lesson) *LessonPaymentUpdate {
	return lpu.SetLessonID(l.ID)
}

// Mutation returns the LessonPaymentMutation object of the builder.
func (lpu *LessonPaymentUpdate) Mutation() *LessonPaymentMutation {
	return lpu.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (lpu *LessonPaymentUpdate) ClearLesson() *LessonPaymentUpdate {
	lpu.mutation.ClearLesson()
	return lpu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lpu *LessonPaymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lpu.sqlSave, lpu.mutation, lpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpu *LessonPaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := lpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lpu *LessonPaymentUpdate) Exec(ctx context.Context) error {
	_, err := lpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpu *LessonPaymentUpdate) ExecX(ctx context.Context) {
	if err := lpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpu *LessonPaymentUpdate) check() error {
	if v, ok := lpu.mutation.Status(); ok {
		if err := lessonpayment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "LessonPayment.status": %w`, err)}
		}
	}
	if lpu.mutation.LessonCleared() && len(lpu.mutation.LessonIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "LessonPayment.lesson"`)
	}
	return nil
}

func (lpu *LessonPaymentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonpayment.Table, lessonpayment.Columns, sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID))
	if ps := lpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpu.mutation.AmountPence(); ok {
		_spec.SetField(lessonpayment.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lpu.mutation.AddedAmountPence(); ok {
		_spec.AddField(lessonpayment.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lpu.mutation.Status(); ok {
		_spec.SetField(lessonpayment.FieldStatus, field.TypeString, value)
	}
	if value, ok := lpu.mutation.DueDate(); ok {
		_spec.SetField(lessonpayment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := lpu.mutation.InvoiceRef(); ok {
		_spec.SetField(lessonpayment.FieldInvoiceRef, field.TypeString, value)
	}
	if value, ok := lpu.mutation.PaidAt(); ok {
		_spec.SetField(lessonpayment.FieldPaidAt, field.TypeTime, value)
	}
	if lpu.mutation.PaidAtCleared() {
		_spec.ClearField(lessonpayment.FieldPaidAt, field.TypeTime)
	}
	if lpu.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   lessonpayment.LessonTable,
			Columns: []string{lessonpayment.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lpu.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   lessonpayment.LessonTable,
			Columns: []string{lessonpayment.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpayment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lpu.mutation.done = true
	return n, nil
}

// LessonPaymentUpdateOne is the builder for updating a single LessonPayment entity.
type LessonPaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPaymentMutation
}

// SetLessonID sets the "lesson_id" field.
func (lpuo *LessonPaymentUpdateOne) SetLessonID(u uuid.UUID) *LessonPaymentUpdateOne {
	lpuo.mutation.SetLessonID(u)
	return lpuo
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillableLessonID(u *uuid.UUID) *LessonPaymentUpdateOne {
	if u != nil {
		lpuo.SetLessonID(*u)
	}
	return lpuo
}

// SetAmountPence sets the "amount_pence" field.
func (lpuo *LessonPaymentUpdateOne) SetAmountPence(i int64) *LessonPaymentUpdateOne {
	lpuo.mutation.ResetAmountPence()
	lpuo.mutation.SetAmountPence(i)
	return lpuo
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillableAmountPence(i *int64) *LessonPaymentUpdateOne {
	if i != nil {
		lpuo.SetAmountPence(*i)
	}
	return lpuo
}

// AddAmountPence adds i to the "amount_pence" field.
func (lpuo *LessonPaymentUpdateOne) AddAmountPence(i int64) *LessonPaymentUpdateOne {
	lpuo.mutation.AddAmountPence(i)
	return lpuo
}

// SetStatus sets the "status" field.
func (lpuo *LessonPaymentUpdateOne) SetStatus(s string) *LessonPaymentUpdateOne {
	lpuo.mutation.SetStatus(s)
	return lpuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillableStatus(s *string) *LessonPaymentUpdateOne {
	if s != nil {
		lpuo.SetStatus(*s)
	}
	return lpuo
}

// SetDueDate sets the "due_date" field.
func (lpuo *LessonPaymentUpdateOne) SetDueDate(t time.Time) *LessonPaymentUpdateOne {
	lpuo.mutation.SetDueDate(t)
	return lpuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillableDueDate(t *time.Time) *LessonPaymentUpdateOne {
	if t != nil {
		lpuo.SetDueDate(*t)
	}
	return lpuo
}

// SetInvoiceRef sets the "invoice_ref" field.
func (lpuo *LessonPaymentUpdateOne) SetInvoiceRef(s string) *LessonPaymentUpdateOne {
	lpuo.mutation.SetInvoiceRef(s)
	return lpuo
}

// SetNillableInvoiceRef sets the "invoice_ref" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillableInvoiceRef(s *string) *LessonPaymentUpdateOne {
	if s != nil {
		lpuo.SetInvoiceRef(*s)
	}
	return lpuo
}

// SetPaidAt sets the "paid_at" field.
func (lpuo *LessonPaymentUpdateOne) SetPaidAt(t time.Time) *LessonPaymentUpdateOne {
	lpuo.mutation.SetPaidAt(t)
	return lpuo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (lpuo *LessonPaymentUpdateOne) SetNillablePaidAt(t *time.Time) *LessonPaymentUpdateOne {
	if t != nil {
		lpuo.SetPaidAt(*t)
	}
	return lpuo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (lpuo *LessonPaymentUpdateOne) ClearPaidAt() *LessonPaymentUpdateOne {
	lpuo.mutation.ClearPaidAt()
	return lpuo
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (lpuo *LessonPaymentUpdateOne) SetLesson(l *Lesson) *LessonPaymentUpdateOne {
	return lpuo.SetLessonID(l.ID)
}

// Mutation returns the LessonPaymentMutation object of the builder.
func (lpuo *LessonPaymentUpdateOne) Mutation() *LessonPaymentMutation {
	return lpuo.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (lpuo *LessonPaymentUpdateOne) ClearLesson() *LessonPaymentUpdateOne {
	lpuo.mutation.ClearLesson()
	return lpuo
}

// Where appends a list predicates to the LessonPaymentUpdate builder.
func (lpuo *LessonPaymentUpdateOne) Where(ps ...predicate.LessonPayment) *LessonPaymentUpdateOne {
	lpuo.mutation.Where(ps...)
	return lpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lpuo *LessonPaymentUpdateOne) Select(field string, fields ...string) *LessonPaymentUpdateOne {
	lpuo.fields = append([]string{field}, fields...)
	return lpuo
}

// Save executes the query and returns the updated LessonPayment entity.
func (lpuo *LessonPaymentUpdateOne) Save(ctx context.Context) (*LessonPayment, error) {
	return withHooks(ctx, lpuo.sqlSave, lpuo.mutation, lpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpuo *LessonPaymentUpdateOne) SaveX(ctx context.Context) *LessonPayment {
	node, err := lpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lpuo *LessonPaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := lpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpuo *LessonPaymentUpdateOne) ExecX(ctx context.Context) {
	if err := lpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpuo *LessonPaymentUpdateOne) check() error {
	if v, ok := lpuo.mutation.Status(); ok {
		if err := lessonpayment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "LessonPayment.status": %w`, err)}
		}
	}
	if lpuo.mutation.LessonCleared() && len(lpuo.mutation.LessonIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "LessonPayment.lesson"`)
	}
	return nil
}

func (lpuo *LessonPaymentUpdateOne) sqlSave(ctx context.Context) (_node *LessonPayment, err error) {
	if err := lpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonpayment.Table, lessonpayment.Columns, sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID))
	id, ok := lpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "LessonPayment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonpayment.FieldID)
		for _, f := range fields {
			if !lessonpayment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != lessonpayment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpuo.mutation.AmountPence(); ok {
		_spec.SetField(lessonpayment.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lpuo.mutation.AddedAmountPence(); ok {
		_spec.AddField(lessonpayment.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := lpuo.mutation.Status(); ok {
		_spec.SetField(lessonpayment.FieldStatus, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.DueDate(); ok {
		_spec.SetField(lessonpayment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := lpuo.mutation.InvoiceRef(); ok {
		_spec.SetField(lessonpayment.FieldInvoiceRef, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.PaidAt(); ok {
		_spec.SetField(lessonpayment.FieldPaidAt, field.TypeTime, value)
	}
	if lpuo.mutation.PaidAtCleared() {
		_spec.ClearField(lessonpayment.FieldPaidAt, field.TypeTime)
	}
	if lpuo.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   lessonpayment.LessonTable,
			Columns: []string{lessonpayment.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lpuo.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   lessonpayment.LessonTable,
			Columns: []string{lessonpayment.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LessonPayment{config: lpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpayment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lpuo.mutation.done = true
	return _node, nil
}
