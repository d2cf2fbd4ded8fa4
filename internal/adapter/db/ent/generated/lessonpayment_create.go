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
	"github.com/google/uuid"
)

// LessonPaymentCreate is the builder for creating a LessonPayment entity.
type LessonPaymentCreate struct {
	config
	mutation *LessonPaymentMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (lpc *LessonPaymentCreate) SetLessonID(u uuid.UUID) *LessonPaymentCreate {
	lpc.mutation.SetLessonID(u)
	return lpc
}

// SetAmountPence sets the "amount_pence" field.
func (lpc *LessonPaymentCreate) SetAmountPence(i int64) *LessonPaymentCreate {
	lpc.mutation.SetAmountPence(i)
	return lpc
}

// SetStatus sets the "status" field.
func (lpc *LessonPaymentCreate) SetStatus(s string) *LessonPaymentCreate {
	lpc.mutation.SetStatus(s)
	return lpc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpc *LessonPaymentCreate) SetNillableStatus(s *string) *LessonPaymentCreate {
	if s != nil {
		lpc.SetStatus(*s)
	}
	return lpc
}

// SetDueDate sets the "due_date" field.
func (lpc *LessonPaymentCreate) SetDueDate(t time.Time) *LessonPaymentCreate {
	lpc.mutation.SetDueDate(t)
	return lpc
}

// SetInvoiceRef sets the "invoice_ref" field.
func (lpc *LessonPaymentCreate) SetInvoiceRef(s string) *LessonPaymentCreate {
	lpc.mutation.SetInvoiceRef(s)
	return lpc
}

// SetNillableInvoiceRef sets the "invoice_ref" field if the given value is not nil.
func (lpc *LessonPaymentCreate) SetNillableInvoiceRef(s *string) *LessonPaymentCreate {
	if s != nil {
		lpc.SetInvoiceRef(*s)
	}
	return lpc
}

// SetPaidAt sets the "paid_at" field.
func (lpc *LessonPaymentCreate) SetPaidAt(t time.Time) *LessonPaymentCreate {
	lpc.mutation.SetPaidAt(t)
	return lpc
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (lpc *LessonPaymentCreate) SetNillablePaidAt(t *time.Time) *LessonPaymentCreate {
	if t != nil {
		lpc.SetPaidAt(*t)
	}
	return lpc
}

// SetCreatedAt sets the "created_at" field.
func (lpc *LessonPaymentCreate) SetCreatedAt(t time.Time) *LessonPaymentCreate {
	lpc.mutation.SetCreatedAt(t)
	return lpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lpc *LessonPaymentCreate) SetNillableCreatedAt(t *time.Time) *LessonPaymentCreate {
	if t != nil {
		lpc.SetCreatedAt(*t)
	}
	return lpc
}

// SetID sets the "id" field.
func (lpc *LessonPaymentCreate) SetID(u uuid.UUID) *LessonPaymentCreate {
	lpc.mutation.SetID(u)
	return lpc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (lpc *LessonPaymentCreate) SetNillableID(u *uuid.UUID) *LessonPaymentCreate {
	if u != nil {
		lpc.SetID(*u)
	}
	return lpc
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (lpc *LessonPaymentCreate) SetLesson(l *Lesson) *LessonPaymentCreate {
	return lpc.SetLessonID(l.ID)
}

// Mutation returns the LessonPaymentMutation object of the builder.
func (lpc *LessonPaymentCreate) Mutation() *LessonPaymentMutation {
	return lpc.mutation
}

// Save creates the LessonPayment in the database.
func (lpc *LessonPaymentCreate) Save(ctx context.Context) (*LessonPayment, error) {
	lpc.defaults()
	return withHooks(ctx, lpc.sqlSave, lpc.mutation, lpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lpc *LessonPaymentCreate) SaveX(ctx context.Context) *LessonPayment {
	v, err := lpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpc *LessonPaymentCreate) Exec(ctx context.Context) error {
	_, err := lpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpc *LessonPaymentCreate) ExecX(ctx context.Context) {
	if err := lpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpc *LessonPaymentCreate) defaults() {
	if _, ok := lpc.mutation.Status(); !ok {
		v := lessonpayment.DefaultStatus
		lpc.mutation.SetStatus(v)
	}
	if _, ok := lpc.mutation.InvoiceRef(); !ok {
		v := lessonpayment.DefaultInvoiceRef
		lpc.mutation.SetInvoiceRef(v)
	}
	if _, ok := lpc.mutation.CreatedAt(); !ok {
		v := lessonpayment.DefaultCreatedAt()
		lpc.mutation.SetCreatedAt(v)
	}
	if _, ok := lpc.mutation.ID(); !ok {
		v := lessonpayment.DefaultID()
		lpc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpc *LessonPaymentCreate) check() error {
	if _, ok := lpc.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`generated: missing required field "LessonPayment.lesson_id"`)}
	}
	if _, ok := lpc.mutation.AmountPence(); !ok {
		return &ValidationError{Name: "amount_pence", err: errors.New(`generated: missing required field "LessonPayment.amount_pence"`)}
	}
	if _, ok := lpc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "LessonPayment.status"`)}
	}
	if v, ok := lpc.mutation.Status(); ok {
		if err := lessonpayment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "LessonPayment.status": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`generated: missing required field "LessonPayment.due_date"`)}
	}
	if _, ok := lpc.mutation.InvoiceRef(); !ok {
		return &ValidationError{Name: "invoice_ref", err: errors.New(`generated: missing required field "LessonPayment.invoice_ref"`)}
	}
	if _, ok := lpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "LessonPayment.created_at"`)}
	}
	if len(lpc.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`generated: missing required edge "LessonPayment.lesson"`)}
	}
	return nil
}

func (lpc *LessonPaymentCreate) sqlSave(ctx context.Context) (*LessonPayment, error) {
	if err := lpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lpc.driver, _spec); err != nil {
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
	lpc.mutation.id = &_node.ID
	lpc.mutation.done = true
	return _node, nil
}

func (lpc *LessonPaymentCreate) createSpec() (*LessonPayment, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPayment{config: lpc.config}
		_spec = sqlgraph.NewCreateSpec(lessonpayment.Table, sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID))
	)
	if id, ok := lpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := lpc.mutation.AmountPence(); ok {
		_spec.SetField(lessonpayment.FieldAmountPence, field.TypeInt64, value)
		_node.AmountPence = value
	}
	if value, ok := lpc.mutation.Status(); ok {
		_spec.SetField(lessonpayment.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := lpc.mutation.DueDate(); ok {
		_spec.SetField(lessonpayment.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := lpc.mutation.InvoiceRef(); ok {
		_spec.SetField(lessonpayment.FieldInvoiceRef, field.TypeString, value)
		_node.InvoiceRef = value
	}
	if value, ok := lpc.mutation.PaidAt(); ok {
		_spec.SetField(lessonpayment.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := lpc.mutation.CreatedAt(); ok {
		_spec.SetField(lessonpayment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := lpc.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonPaymentCreateBulk is the builder for creating many LessonPayment entities in bulk.
type LessonPaymentCreateBulk struct {
	config
	err      error
	builders []*LessonPaymentCreate
}

// Save creates the LessonPayment entities in the database.
func (lpcb *LessonPaymentCreateBulk) Save(ctx context.Context) ([]*LessonPayment, error) {
	if lpcb.err != nil {
		return nil, lpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lpcb.builders))
	nodes := make([]*LessonPayment, len(lpcb.builders))
	mutators := make([]Mutator, len(lpcb.builders))
	for i := range lpcb.builders {
		func(i int, root context.Context) {
			builder := lpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPaymentMutation)
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
					_, err = mutators[i+1].Mutate(root, lpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lpcb *LessonPaymentCreateBulk) SaveX(ctx context.Context) []*LessonPayment {
	v, err := lpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpcb *LessonPaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := lpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpcb *LessonPaymentCreateBulk) ExecX(ctx context.Context) {
	if err := lpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
