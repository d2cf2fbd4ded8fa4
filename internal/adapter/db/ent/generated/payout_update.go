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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// PayoutUpdate is the builder for updating Payout entities.
type PayoutUpdate struct {
	config
	hooks    []Hook
	mutation *PayoutMutation
}

// Where appends a list predicates to the PayoutUpdate builder.
func (pu *PayoutUpdate) Where(ps ...predicate.Payout) *PayoutUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetLessonID sets the "lesson_id" field.
func (pu *PayoutUpdate) SetLessonID(u uuid.UUID) *PayoutUpdate {
	pu.mutation.SetLessonID(u)
	return pu
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillableLessonID(u *uuid.UUID) *PayoutUpdate {
	if u != nil {
		pu.SetLessonID(*u)
	}
	return pu
}

// SetInstructorID sets the "instructor_id" field.
func (pu *PayoutUpdate) SetInstructorID(u uuid.UUID) *PayoutUpdate {
	pu.mutation.SetInstructorID(u)
	return pu
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillableInstructorID(u *uuid.UUID) *PayoutUpdate {
	if u != nil {
		pu.SetInstructorID(*u)
	}
	return pu
}

// SetAmountPence sets the "amount_pence" field.
func (pu *PayoutUpdate) SetAmountPence(i int64) *PayoutUpdate {
	pu.mutation.ResetAmountPence()
	pu.mutation.SetAmountPence(i)
	return pu
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillableAmountPence(i *int64) *PayoutUpdate {
	if i != nil {
		pu.SetAmountPence(*i)
	}
	return pu
}

// AddAmountPence adds i to the "amount_pence" field.
func (pu *PayoutUpdate) AddAmountPence(i int64) *PayoutUpdate {
	pu.mutation.AddAmountPence(i)
	return pu
}

// SetStatus sets the "status" field.
func (pu *PayoutUpdate) SetStatus(s string) *PayoutUpdate {
	pu.mutation.SetStatus(s)
	return pu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillableStatus(s *string) *PayoutUpdate {
	if s != nil {
		pu.SetStatus(*s)
	}
	return pu
}

// SetTransferRef sets the "transfer_ref" field.
func (pu *PayoutUpdate) SetTransferRef(s string) *PayoutUpdate {
	pu.mutation.SetTransferRef(s)
	return pu
}

// SetNillableTransferRef sets the "transfer_ref" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillableTransferRef(s *string) *PayoutUpdate {
	if s != nil {
		pu.SetTransferRef(*s)
	}
	return pu
}

// SetPaidAt sets the "paid_at" field.
func (pu *PayoutUpdate) SetPaidAt(t time.Time) *PayoutUpdate {
	pu.mutation.SetPaidAt(t)
	return pu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (pu *PayoutUpdate) SetNillablePaidAt(t *time.Time) *PayoutUpdate {
	if t != nil {
		pu.SetPaidAt(*t)
	}
	return pu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (pu *PayoutUpdate) ClearPaidAt() *PayoutUpdate {
	pu.mutation.ClearPaidAt()
	return pu
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (pu *PayoutUpdate) SetLesson(l *Lesson) *PayoutUpdate {
	return pu.SetLessonID(l.ID)
}

// Mutation returns the PayoutMutation object of the builder.
func (pu *PayoutUpdate) Mutation() *PayoutMutation {
	return pu.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (pu *PayoutUpdate) ClearLesson() *PayoutUpdate {
	pu.mutation.ClearLesson()
	return pu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PayoutUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PayoutUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PayoutUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PayoutUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PayoutUpdate) check() error {
	if v, ok := pu.mutation.Status(); ok {
		if err := payout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Payout.status": %w`, err)}
		}
	}
	if pu.mutation.LessonCleared() && len(pu.mutation.LessonIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Payout.lesson"`)
	}
	return nil
}

func (pu *PayoutUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(payout.Table, payout.Columns, sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.InstructorID(); ok {
		_spec.SetField(payout.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := pu.mutation.AmountPence(); ok {
		_spec.SetField(payout.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := pu.mutation.AddedAmountPence(); ok {
		_spec.AddField(payout.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := pu.mutation.Status(); ok {
		_spec.SetField(payout.FieldStatus, field.TypeString, value)
	}
	if value, ok := pu.mutation.TransferRef(); ok {
		_spec.SetField(payout.FieldTransferRef, field.TypeString, value)
	}
	if value, ok := pu.mutation.PaidAt(); ok {
		_spec.SetField(payout.FieldPaidAt, field.TypeTime, value)
	}
	if pu.mutation.PaidAtCleared() {
		_spec.ClearField(payout.FieldPaidAt, field.TypeTime)
	}
	if pu.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payout.LessonTable,
			Columns: []string{payout.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payout.LessonTable,
			Columns: []string{payout.LessonColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payout.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PayoutUpdateOne is the builder for updating a single Payout entity.
type PayoutUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayoutMutation
}

// SetLessonID sets the "lesson_id" field.
func (puo *PayoutUpdateOne) SetLessonID(u uuid.UUID) *PayoutUpdateOne {
	puo.mutation.SetLessonID(u)
	return puo
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillableLessonID(u *uuid.UUID) *PayoutUpdateOne {
	if u != nil {
		puo.SetLessonID(*u)
	}
	return puo
}

// SetInstructorID sets the "instructor_id" field.
func (puo *PayoutUpdateOne) SetInstructorID(u uuid.UUID) *PayoutUpdateOne {
	puo.mutation.SetInstructorID(u)
	return puo
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillableInstructorID(u *uuid.UUID) *PayoutUpdateOne {
	if u != nil {
		puo.SetInstructorID(*u)
	}
	return puo
}

// SetAmountPence sets the "amount_pence" field.
func (puo *PayoutUpdateOne) SetAmountPence(i int64) *PayoutUpdateOne {
	puo.mutation.ResetAmountPence()
	puo.mutation.SetAmountPence(i)
	return puo
}

// SetNillableAmountPence sets the "amount_pence" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillableAmountPence(i *int64) *PayoutUpdateOne {
	if i != nil {
		puo.SetAmountPence(*i)
	}
	return puo
}

// AddAmountPence adds i to the "amount_pence" field.
func (puo *PayoutUpdateOne) AddAmountPence(i int64) *PayoutUpdateOne {
	puo.mutation.AddAmountPence(i)
	return puo
}

// SetStatus sets the "status" field.
func (puo *PayoutUpdateOne) SetStatus(s string) *PayoutUpdateOne {
	puo.mutation.SetStatus(s)
	return puo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillableStatus(s *string) *PayoutUpdateOne {
	if s != nil {
		puo.SetStatus(*s)
	}
	return puo
}

// SetTransferRef sets the "transfer_ref" field.
func (puo *PayoutUpdateOne) SetTransferRef(s string) *PayoutUpdateOne {
	puo.mutation.SetTransferRef(s)
	return puo
}

// SetNillableTransferRef sets the "transfer_ref" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillableTransferRef(s *string) *PayoutUpdateOne {
	if s != nil {
		puo.SetTransferRef(*s)
	}
	return puo
}

// SetPaidAt sets the "paid_at" field.
func (puo *PayoutUpdateOne) SetPaidAt(t time.Time) *PayoutUpdateOne {
	puo.mutation.SetPaidAt(t)
	return puo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (puo *PayoutUpdateOne) SetNillablePaidAt(t *time.Time) *PayoutUpdateOne {
	if t != nil {
		puo.SetPaidAt(*t)
	}
	return puo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (puo *PayoutUpdateOne) ClearPaidAt() *PayoutUpdateOne {
	puo.mutation.ClearPaidAt()
	return puo
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (puo *PayoutUpdateOne) SetLesson(l *Lesson) *PayoutUpdateOne {
	return puo.SetLessonID(l.ID)
}

// Mutation returns the PayoutMutation object of the builder.
func (puo *PayoutUpdateOne) Mutation() *PayoutMutation {
	return puo.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (puo *PayoutUpdateOne) ClearLesson() *PayoutUpdateOne {
	puo.mutation.ClearLesson()
	return puo
}

// Where appends a list predicates to the PayoutUpdate builder.
func (puo *PayoutUpdateOne) Where(ps ...predicate.Payout) *PayoutUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PayoutUpdateOne) Select(field string, fields ...string) *PayoutUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Payout entity.
func (puo *PayoutUpdateOne) Save(ctx context.Context) (*Payout, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PayoutUpdateOne) SaveX(ctx context.Context) *Payout {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PayoutUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PayoutUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PayoutUpdateOne) check() error {
	if v, ok := puo.mutation.Status(); ok {
		if err := payout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Payout.status": %w`, err)}
		}
	}
	if puo.mutation.LessonCleared() && len(puo.mutation.LessonIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Payout.lesson"`)
	}
	return nil
}

func (puo *PayoutUpdateOne) sqlSave(ctx context.Context) (_node *Payout, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payout.Table, payout.Columns, sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Payout.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payout.FieldID)
		for _, f := range fields {
			if !payout.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != payout.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.InstructorID(); ok {
		_spec.SetField(payout.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := puo.mutation.AmountPence(); ok {
		_spec.SetField(payout.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := puo.mutation.AddedAmountPence(); ok {
		_spec.AddField(payout.FieldAmountPence, field.TypeInt64, value)
	}
	if value, ok := puo.mutation.Status(); ok {
		_spec.SetField(payout.FieldStatus, field.TypeString, value)
	}
	if value, ok := puo.mutation.TransferRef(); ok {
		_spec.SetField(payout.FieldTransferRef, field.TypeString, value)
	}
	if value, ok := puo.mutation.PaidAt(); ok {
		_spec.SetField(payout.FieldPaidAt, field.TypeTime, value)
	}
	if puo.mutation.PaidAtCleared() {
		_spec.ClearField(payout.FieldPaidAt, field.TypeTime)
	}
	if puo.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payout.LessonTable,
			Columns: []string{payout.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payout.LessonTable,
			Columns: []string{payout.LessonColumn},
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
	_node = &Payout{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payout.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
