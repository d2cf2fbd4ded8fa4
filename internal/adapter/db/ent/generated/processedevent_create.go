// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
	"github.com/google/uuid"
)

// ProcessedEventCreate is the builder for creating a ProcessedEvent entity.
type ProcessedEventCreate struct {
	config
	mutation *ProcessedEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (pec *ProcessedEventCreate) SetEventID(s string) *ProcessedEventCreate {
	pec.mutation.SetEventID(s)
	return pec
}

// SetEventType sets the "event_type" field.
func (pec *ProcessedEventCreate) SetEventType(s string) *ProcessedEventCreate {
	pec.mutation.SetEventType(s)
	return pec
}

// SetPayload sets the "payload" field.
func (pec *ProcessedEventCreate) SetPayload(b []byte) *ProcessedEventCreate {
	pec.mutation.SetPayload(b)
	return pec
}

// SetReceivedAt sets the "received_at" field.
func (pec *ProcessedEventCreate) SetReceivedAt(t time.Time) *ProcessedEventCreate {
	pec.mutation.SetReceivedAt(t)
	return pec
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (pec *ProcessedEventCreate) SetNillableReceivedAt(t *time.Time) *ProcessedEventCreate {
	if t != nil {
		pec.SetReceivedAt(*t)
	}
	return pec
}

// SetID sets the "id" field.
func (pec *ProcessedEventCreate) SetID(u uuid.UUID) *ProcessedEventCreate {
	pec.mutation.SetID(u)
	return pec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pec *ProcessedEventCreate) SetNillableID(u *uuid.UUID) *ProcessedEventCreate {
	if u != nil {
		pec.SetID(*u)
	}
	return pec
}

// Mutation returns the ProcessedEventMutation object of the builder.
func (pec *ProcessedEventCreate) Mutation() *ProcessedEventMutation {
	return pec.mutation
}

// Save creates the ProcessedEvent in the database.
func (pec *ProcessedEventCreate) Save(ctx context.Context) (*ProcessedEvent, error) {
	pec.defaults()
	return withHooks(ctx, pec.sqlSave, pec.mutation, pec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pec *ProcessedEventCreate) SaveX(ctx context.Context) *ProcessedEvent {
	v, err := pec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pec *ProcessedEventCreate) Exec(ctx context.Context) error {
	_, err := pec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pec *ProcessedEventCreate) ExecX(ctx context.Context) {
	if err := pec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pec *ProcessedEventCreate) defaults() {
	if _, ok := pec.mutation.ReceivedAt(); !ok {
		v := processedevent.DefaultReceivedAt()
		pec.mutation.SetReceivedAt(v)
	}
	if _, ok := pec.mutation.ID(); !ok {
		v := processedevent.DefaultID()
		pec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pec *ProcessedEventCreate) check() error {
	if _, ok := pec.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`generated: missing required field "ProcessedEvent.event_id"`)}
	}
	if _, ok := pec.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`generated: missing required field "ProcessedEvent.event_type"`)}
	}
	if _, ok := pec.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`generated: missing required field "ProcessedEvent.received_at"`)}
	}
	return nil
}

func (pec *ProcessedEventCreate) sqlSave(ctx context.Context) (*ProcessedEvent, error) {
	if err := pec.check(); err != nil {
		return nil, err
	}
	_node, _spec := pec.createSpec()
	if err := sqlgraph.CreateNode(ctx, pec.driver, _spec); err != nil {
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
	pec.mutation.id = &_node.ID
	pec.mutation.done = true
	return _node, nil
}

func (pec *ProcessedEventCreate) createSpec() (*ProcessedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedEvent{config: pec.config}
		_spec = sqlgraph.NewCreateSpec(processedevent.Table, sqlgraph.NewFieldSpec(processedevent.FieldID, field.TypeUUID))
	)
	if id, ok := pec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := pec.mutation.EventID(); ok {
		_spec.SetField(processedevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := pec.mutation.EventType(); ok {
		_spec.SetField(processedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := pec.mutation.Payload(); ok {
		_spec.SetField(processedevent.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := pec.mutation.ReceivedAt(); ok {
		_spec.SetField(processedevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// ProcessedEventCreateBulk is the builder for creating many ProcessedEvent entities in bulk.
type ProcessedEventCreateBulk struct {
	config
	err      error
	builders []*ProcessedEventCreate
}

// Save creates the ProcessedEvent entities in the database.
func (pecb *ProcessedEventCreateBulk) Save(ctx context.Context) ([]*ProcessedEvent, error) {
	if pecb.err != nil {
		return nil, pecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pecb.builders))
	nodes := make([]*ProcessedEvent, len(pecb.builders))
	mutators := make([]Mutator, len(pecb.builders))
	for i := range pecb.builders {
		func(i int, root context.Context) {
			builder := pecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedEventMutation)
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
					_, err = mutators[i+1].Mutate(root, pecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pecb *ProcessedEventCreateBulk) SaveX(ctx context.Context) []*ProcessedEvent {
	v, err := pecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pecb *ProcessedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := pecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pecb *ProcessedEventCreateBulk) ExecX(ctx context.Context) {
	if err := pecb.Exec(ctx); err != nil {
		panic(err)
	}
}
