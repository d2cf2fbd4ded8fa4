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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/google/uuid"
)

// PayoutCreate is the builder for creating a Payout entity.
type PayoutCreate struct {
	config
	mutation *PayoutMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (pc *PayoutCreate) SetLessonID(u uuid.UUID) *PayoutCreate {
	pc.mutation.SetLessonID(u)
	return pc
}

// SetInstructorID sets the "instructor_id" field.
func (pc *PayoutCreate) SetInstructorID(u uuid.UUID) *PayoutCreate {
	pc.mutation.SetInstructorID(u)
	return pc
}

// SetAmountPence sets the "amount_pence" field.
func (pc *PayoutCreate) SetAmountPence(i int64) *PayoutCreate {
	pc.mutation.SetAmountPence(i)
	return pc
}

// SetStatus sets the "status" field.
func (pc *PayoutCreate) SetStatus(s string) *PayoutCreate {
	pc.mutation.SetStatus(s)
	return pc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pc *PayoutCreate) SetNillableStatus(s *string) *PayoutCreate {
	if s != nil {
		pc.SetStatus(*s)
	}
	return pc
}

// SetTransferRef sets the "transfer_ref" field.
func (pc *PayoutCreate) SetTransferRef(s string) *PayoutCreate {
	pc.mutation.SetTransferRef(s)
	return pc
}

// SetNillableTransferRef sets the "transfer_ref" field if the given value is not nil.
func (pc *PayoutCreate) SetNillableTransferRef(s *string) *PayoutCreate {
	if s != nil {
		pc.SetTransferRef(*s)
	}
	return pc
}

// SetPaidAt sets the "paid_at" field.
func (pc *PayoutCreate) SetPaidAt(t time.Time) *PayoutCreate {
	pc.mutation.SetPaidAt(t)
	return pc
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (pc *PayoutCreate) SetNillablePaidAt(t *time.Time) *PayoutCreate {
	if t != nil {
		pc.SetPaidAt(*t)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PayoutCreate) SetCreatedAt(t time.Time) *PayoutCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PayoutCreate) SetNillableCreatedAt(t *time.Time) *PayoutCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *PayoutCreate) SetID(u uuid.UUID) *PayoutCreate {
	pc.mutation.SetID(u)
	return pc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pc *PayoutCreate) SetNillableID(u *uuid.UUID) *PayoutCreate {
	if u != nil {
		pc.SetID(*u)
	}
	return pc
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (pc *PayoutCreate) SetLesson(l *Lesson) *PayoutCreate {
	return pc.SetLessonID(l.ID)
}

// Mutation returns the PayoutMutation object of the builder.
func (pc *PayoutCreate) Mutation() *PayoutMutation {
	return pc.mutation
}

// Save creates the Payout in the database.
func (pc *PayoutCreate) Save(ctx context.Context) (*Payout, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PayoutCreate) SaveX(ctx context.Context) *Payout {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PayoutCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PayoutCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PayoutCreate) defaults() {
	if _, ok := pc.mutation.Status(); !ok {
		v := payout.DefaultStatus
		pc.mutation.SetStatus(v)
	}
	if _, ok := pc.mutation.TransferRef(); !ok {
		v := payout.DefaultTransferRef
		pc.mutation.SetTransferRef(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := payout.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.ID(); !ok {
		v := payout.DefaultID()
		pc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PayoutCreate) check() error {
	if _, ok := pc.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`generated: missing required field "Payout.lesson_id"`)}
	}
	if _, ok := pc.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "Payout.instructor_id"`)}
	}
	if _, ok := pc.mutation.AmountPence(); !ok {
		return &ValidationError{Name: "amount_pence", err: errors.New(`generated: missing required field "Payout.amount_pence"`)}
	}
	if _, ok := pc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Payout.status"`)}
	}
	if v, ok := pc.mutation.Status(); ok {
		if err := payout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Payout.status": %w`, err)}
		}
	}
	if _, ok := pc.mutation.TransferRef(); !ok {
		return &ValidationError{Name: "transfer_ref", err: errors.New(`generated: missing required field "Payout.transfer_ref"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Payout.created_at"`)}
	}
	if len(pc.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`generated: missing required edge "Payout.lesson"`)}
	}
	return nil
}

func (pc *PayoutCreate) sqlSave(ctx context.Context) (*Payout, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
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
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PayoutCreate) createSpec() (*Payout, *sqlgraph.CreateSpec) {
	var (
		_node = &Payout{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(payout.Table, sqlgraph.NewFieldSpec(payout.FieldID, field.TypeUUID))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := pc.mutation.InstructorID(); ok {
		_spec.SetField(payout.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := pc.mutation.AmountPence(); ok {
		_spec.SetField(payout.FieldAmountPence, field.TypeInt64, value)
		_node.AmountPence = value
	}
	if value, ok := pc.mutation.Status(); ok {
		_spec.SetField(payout.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := pc.mutation.TransferRef(); ok {
		_spec.SetField(payout.FieldTransferRef, field.TypeString, value)
		_node.TransferRef = value
	}
	if value, ok := pc.mutation.PaidAt(); ok {
		_spec.SetField(payout.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(payout.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := pc.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PayoutCreateBulk is the builder for creating many Payout entities in bulk.
type PayoutCreateBulk struct {
	config
	err      error
	builders []*PayoutCreate
}

// Save creates the Payout entities in the database.
func (pcb *PayoutCreateBulk) Save(ctx context.Context) ([]*Payout, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Payout, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PayoutCreateBulk) SaveX(ctx context.Context) []*Payout {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PayoutCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PayoutCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
