// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// CalendarDayCreate is the builder for creating a CalendarDay entity.
type CalendarDayCreate struct {
	config
	mutation *CalendarDayMutation
	hooks    []Hook
}

// SetInstructorID sets the "instructor_id" field.
func (cdc *CalendarDayCreate) SetInstructorID(u uuid.UUID) *CalendarDayCreate {
	cdc.mutation.SetInstructorID(u)
	return cdc
}

// SetDate sets the "date" field.
func (cdc *CalendarDayCreate) SetDate(t time.Time) *CalendarDayCreate {
	cdc.mutation.SetDate(t)
	return cdc
}

// SetCreatedAt sets the "created_at" field.
func (cdc *CalendarDayCreate) SetCreatedAt(t time.Time) *CalendarDayCreate {
	cdc.mutation.SetCreatedAt(t)
	return cdc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cdc *CalendarDayCreate) SetNillableCreatedAt(t *time.Time) *CalendarDayCreate {
	if t != nil {
		cdc.SetCreatedAt(*t)
	}
	return cdc
}

// SetID sets the "id" field.
func (cdc *CalendarDayCreate) SetID(u uuid.UUID) *CalendarDayCreate {
	cdc.mutation.SetID(u)
	return cdc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cdc *CalendarDayCreate) SetNillableID(u *uuid.UUID) *CalendarDayCreate {
	if u != nil {
		cdc.SetID(*u)
	}
	return cdc
}

// AddSlotIDs adds the "slots" edge to the TimeSlot entity by IDs.
func (cdc *CalendarDayCreate) AddSlotIDs(ids ...uuid.UUID) *CalendarDayCreate {
	cdc.mutation.AddSlotIDs(ids...)
	return cdc
}

// AddSlots adds the "slots" edges to the TimeSlot entity.
func (cdc *CalendarDayCreate) AddSlots(t ...*TimeSlot) *CalendarDayCreate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cdc.AddSlotIDs(ids...)
}

// Mutation returns the CalendarDayMutation object of the builder.
func (cdc *CalendarDayCreate) Mutation() *CalendarDayMutation {
	return cdc.mutation
}

// Save creates the CalendarDay in the database.
func (cdc *CalendarDayCreate) Save(ctx context.Context) (*CalendarDay, error) {
	cdc.defaults()
	return withHooks(ctx, cdc.sqlSave, cdc.mutation, cdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cdc *CalendarDayCreate) SaveX(ctx context.Context) *CalendarDay {
	v, err := cdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cdc *CalendarDayCreate) Exec(ctx context.Context) error {
	_, err := cdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cdc *CalendarDayCreate) ExecX(ctx context.Context) {
	if err := cdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cdc *CalendarDayCreate) defaults() {
	if _, ok := cdc.mutation.CreatedAt(); !ok {
		v := calendarday.DefaultCreatedAt()
		cdc.mutation.SetCreatedAt(v)
	}
	if _, ok := cdc.mutation.ID(); !ok {
		v := calendarday.DefaultID()
		cdc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cdc *CalendarDayCreate) check() error {
	if _, ok := cdc.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "CalendarDay.instructor_id"`)}
	}
	if _, ok := cdc.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`generated: missing required field "CalendarDay.date"`)}
	}
	if _, ok := cdc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "CalendarDay.created_at"`)}
	}
	return nil
}

func (cdc *CalendarDayCreate) sqlSave(ctx context.Context) (*CalendarDay, error) {
	if err := cdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cdc.driver, _spec); err != nil {
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
	cdc.mutation.id = &_node.ID
	cdc.mutation.done = true
	return _node, nil
}

func (cdc *CalendarDayCreate) createSpec() (*CalendarDay, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarDay{config: cdc.config}
		_spec = sqlgraph.NewCreateSpec(calendarday.Table, sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID))
	)
	if id, ok := cdc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cdc.mutation.InstructorID(); ok {
		_spec.SetField(calendarday.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := cdc.mutation.Date(); ok {
		_spec.SetField(calendarday.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := cdc.mutation.CreatedAt(); ok {
		_spec.SetField(calendarday.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := cdc.mutation.SlotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CalendarDayCreateBulk is the builder for creating many CalendarDay entities in bulk.
type CalendarDayCreateBulk struct {
	config
	err      error
	builders []*CalendarDayCreate
}

// Save creates the CalendarDay entities in the database.
func (cdcb *CalendarDayCreateBulk) Save(ctx context.Context) ([]*CalendarDay, error) {
	if cdcb.err != nil {
		return nil, cdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cdcb.builders))
	nodes := make([]*CalendarDay, len(cdcb.builders))
	mutators := make([]Mutator, len(cdcb.builders))
	for i := range cdcb.builders {
		func(i int, root context.Context) {
			builder := cdcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarDayMutation)
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
					_, err = mutators[i+1].Mutate(root, cdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cdcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cdcb *CalendarDayCreateBulk) SaveX(ctx context.Context) []*CalendarDay {
	v, err := cdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cdcb *CalendarDayCreateBulk) Exec(ctx context.Context) error {
	_, err := cdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cdcb *CalendarDayCreateBulk) ExecX(ctx context.Context) {
	if err := cdcb.Exec(ctx); err != nil {
		panic(err)
	}
}
