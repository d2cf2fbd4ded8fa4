// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetOrderID sets the "order_id" field.
func (lc *LessonCreate) SetOrderID(u uuid.UUID) *LessonCreate {
	lc.mutation.SetOrderID(u)
	return lc
}

// SetInstructorID sets the "instructor_id" field.
func (lc *LessonCreate) SetInstructorID(u uuid.UUID) *LessonCreate {
	lc.mutation.SetInstructorID(u)
	return lc
}

// SetSlotID sets the "slot_id" field.
func (lc *LessonCreate) SetSlotID(u uuid.UUID) *LessonCreate {
	lc.mutation.SetSlotID(u)
	return lc
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (lc *LessonCreate) SetNillableSlotID(u *uuid.UUID) *LessonCreate {
	if u != nil {
		lc.SetSlotID(*u)
	}
	return lc
}

// SetDate sets the "date" field.
func (lc *LessonCreate) SetDate(t time.Time) *LessonCreate {
	lc.mutation.SetDate(t)
	return lc
}

// SetStartTime sets the "start_time" field.
func (lc *LessonCreate) SetStartTime(s string) *LessonCreate {
	lc.mutation.SetStartTime(s)
	return lc
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (lc *LessonCreate) SetNillableStartTime(s *string) *LessonCreate {
	if s != nil {
		lc.SetStartTime(*s)
	}
	return lc
}

// SetEndTime sets the "end_time" field.
func (lc *LessonCreate) SetEndTime(s string) *LessonCreate {
	lc.mutation.SetEndTime(s)
	return lc
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (lc *LessonCreate) SetNillableEndTime(s *string) *LessonCreate {
	if s != nil {
		lc.SetEndTime(*s)
	}
	return lc
}

// SetAmountPence sets the "amount_pence" field.
func (lc *LessonCreate) SetAmountPence(i int64) *LessonCreate {
	lc.mutation.SetAmountPence(i)
	return lc
}

// SetStatus sets the "status" field.
func (lc *LessonCreate) SetStatus(s string) *LessonCreate {
	lc.mutation.SetStatus(s)
	return lc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lc *LessonCreate) SetNillableStatus(s *string) *LessonCreate {
	if s != nil {
		lc.SetStatus(*s)
	}
	return lc
}

// SetCompletedAt sets the "completed_at" field.
func (lc *LessonCreate) SetCompletedAt(t time.Time) *LessonCreate {
	lc.mutation.SetCompletedAt(t)
	return lc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (lc *LessonCreate) SetNillableCompletedAt(t *time.Time) *LessonCreate {
	if t != nil {
		lc.SetCompletedAt(*t)
	}
	return lc
}

// SetCreatedAt sets the "created_at" field.
func (lc *LessonCreate) SetCreatedAt(t time.Time) *LessonCreate {
	lc.mutation.SetCreatedAt(t)
	return lc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lc *LessonCreate) SetNillableCreatedAt(t *time.Time) *LessonCreate {
	if t != nil {
		lc.SetCreatedAt(*t)
	}
	return lc
}

// SetUpdatedAt sets the "updated_at" field.
func (lc *LessonCreate) SetUpdatedAt(t time.Time) *LessonCreate {
	lc.mutation.SetUpdatedAt(t)
	return lc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (lc *LessonCreate) SetNillableUpdatedAt(t *time.Time) *LessonCreate {
	if t != nil {
		lc.SetUpdatedAt(*t)
	}
	return lc
}

// SetID sets the "id" field.
func (lc *LessonCreate) SetID(u uuid.UUID) *LessonCreate {
	lc.mutation.SetID(u)
	return lc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (lc *LessonCreate) SetNillableID(u *uuid.UUID) *LessonCreate {
	if u != nil {
		lc.SetID(*u)
	}
	return lc
}

// SetOrder sets the "order" edge to the Order entity.
func (lc *LessonCreate) SetOrder(o *Order) *LessonCreate {
	return lc.SetOrderID(o.ID)
}

// SetSlot sets the "slot" edge to the TimeSlot entity.
func (lc *LessonCreate) SetSlot(t *TimeSlot) *LessonCreate {
	return lc.SetSlotID(t.ID)
}

// SetPaymentID sets the "payment" edge to the LessonPayment entity by ID.
func (lc *LessonCreate) SetPaymentID(id uuid.UUID) *LessonCreate {
	lc.mutation.SetPaymentID(id)
	return lc
}

// SetNillablePaymentID sets the "payment" edge to the LessonPayment entity by ID if the given value is not nil.
func (lc *LessonCreate) SetNillablePaymentID(id *uuid.UUID) *LessonCreate {
	if id != nil {
		lc = lc.SetPaymentID(*id)
	}
	return lc
}

// SetPayment sets the "payment" edge to the LessonPayment entity.
func (lc *LessonCreate) SetPayment(l *LessonPayment) *LessonCreate {
	return lc.SetPaymentID(l.ID)
}

// SetPayoutID sets the "payout" edge to the Payout entity by ID.
func (lc *LessonCreate) SetPayoutID(id uuid.UUID) *LessonCreate {
	lc.mutation.SetPayoutID(id)
	return lc
}

// SetNillablePayoutID sets the "payout" edge to the Payout entity by ID if the given value is not nil.
func (lc *LessonCreate) SetNillablePayoutID(id *uuid.UUID) *LessonCreate {
	if id != nil {
		lc = lc.SetPayoutID(*id)
	}
	return lc
}

// SetPayout sets the "payout" edge to the Payout entity.
func (lc *LessonCreate) SetPayout(p *Payout) *LessonCreate {
	return lc.SetPayoutID(p.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (lc *LessonCreate) Mutation() *LessonMutation {
	return lc.mutation
}

// Save creates the Lesson in the database.
func (lc *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	lc.defaults()
	return withHooks(ctx, lc.sqlSave, lc.mutation, lc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lc *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := lc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lc *LessonCreate) Exec(ctx context.Context) error {
	_, err := lc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lc *LessonCreate) ExecX(ctx context.Context) {
	if err := lc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lc *LessonCreate) defaults() {
	if _, ok := lc.mutation.StartTime(); !ok {
		v := lesson.DefaultStartTime
		lc.mutation.SetStartTime(v)
	}
	if _, ok := lc.mutation.EndTime(); !ok {
		v := lesson.DefaultEndTime
		lc.mutation.SetEndTime(v)
	}
	if _, ok := lc.mutation.Status(); !ok {
		v := lesson.DefaultStatus
		lc.mutation.SetStatus(v)
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		lc.mutation.SetCreatedAt(v)
	}
	if _, ok := lc.mutation.UpdatedAt(); !ok {
		v := lesson.DefaultUpdatedAt()
		lc.mutation.SetUpdatedAt(v)
	}
	if _, ok := lc.mutation.ID(); !ok {
		v := lesson.DefaultID()
		lc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lc *LessonCreate) check() error {
	if _, ok := lc.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`generated: missing required field "Lesson.order_id"`)}
	}
	if _, ok := lc.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "Lesson.instructor_id"`)}
	}
	if _, ok := lc.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`generated: missing required field "Lesson.date"`)}
	}
	if _, ok := lc.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`generated: missing required field "Lesson.start_time"`)}
	}
	if _, ok := lc.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`generated: missing required field "Lesson.end_time"`)}
	}
	if _, ok := lc.mutation.AmountPence(); !ok {
		return &ValidationError{Name: "amount_pence", err: errors.New(`generated: missing required field "Lesson.amount_pence"`)}
	}
	if _, ok := lc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Lesson.status"`)}
	}
	if v, ok := lc.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Lesson.created_at"`)}
	}
	if _, ok := lc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Lesson.updated_at"`)}
	}
	if len(lc.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`generated: missing required edge "Lesson.order"`)}
	}
	return nil
}

func (lc *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
	if err := lc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	lc.mutation.id = &_node.ID
	lc.mutation.done = true
	return _node, nil
}

func (lc *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: lc.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	)
	if id, ok := lc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := lc.mutation.InstructorID(); ok {
		_spec.SetField(lesson.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := lc.mutation.Date(); ok {
		_spec.SetField(lesson.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := lc.mutation.StartTime(); ok {
		_spec.SetField(lesson.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := lc.mutation.EndTime(); ok {
		_spec.SetField(lesson.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := lc.mutation.AmountPence(); ok {
		_spec.SetField(lesson.FieldAmountPence, field.TypeInt64, value)
		_node.AmountPence = value
	}
	if value, ok := lc.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := lc.mutation.CompletedAt(); ok {
		_spec.SetField(lesson.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := lc.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := lc.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := lc.mutation.OrderIDs(); len(nodes) > 0 {
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
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := lc.mutation.SlotIDs(); len(nodes) > 0 {
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
		_node.SlotID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := lc.mutation.PaymentIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := lc.mutation.PayoutIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (lcb *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if lcb.err != nil {
		return nil, lcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lcb.builders))
	nodes := make([]*Lesson, len(lcb.builders))
	mutators := make([]Mutator, len(lcb.builders))
	for i := range lcb.builders {
		func(i int, root context.Context) {
			builder := lcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, lcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, lcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lcb *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := lcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lcb *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := lcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcb *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := lcb.Exec(ctx); err != nil {
		panic(err)
	}
}
