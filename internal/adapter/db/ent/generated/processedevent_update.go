// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
)

// ProcessedEventUpdate is the builder for updating ProcessedEvent entities.
type ProcessedEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedEventMutation
}

// Where appends a list predicates to the ProcessedEventUpdate builder.
func (peu *ProcessedEventUpdate) Where(ps ...predicate.ProcessedEvent) *ProcessedEventUpdate {
	peu.mutation.Where(ps...)
	return peu
}

// SetEventID sets the "event_id" field.
func (peu *ProcessedEventUpdate) SetEventID(s string) *ProcessedEventUpdate {
	peu.mutation.SetEventID(s)
	return peu
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (peu *ProcessedEventUpdate) SetNillableEventID(s *string) *ProcessedEventUpdate {
	if s != nil {
		peu.SetEventID(*s)
	}
	return peu
}

// SetEventType sets the "event_type" field.
func (peu *ProcessedEventUpdate) SetEventType(s string) *ProcessedEventUpdate {
	peu.mutation.SetEventType(s)
	return peu
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (peu *ProcessedEventUpdate) SetNillableEventType(s *string) *ProcessedEventUpdate {
	if s != nil {
		peu.SetEventType(*s)
	}
	return peu
}

// SetPayload sets the "payload" field.
func (peu *ProcessedEventUpdate) SetPayload(b []byte) *ProcessedEventUpdate {
	peu.mutation.SetPayload(b)
	return peu
}

// ClearPayload clears the value of the "payload" field.
func (peu *ProcessedEventUpdate) ClearPayload() *ProcessedEventUpdate {
	peu.mutation.ClearPayload()
	return peu
}

// Mutation returns the ProcessedEventMutation object of the builder.
func (peu *ProcessedEventUpdate) Mutation() *ProcessedEventMutation {
	return peu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (peu *ProcessedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, peu.sqlSave, peu.mutation, peu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peu *ProcessedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := peu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (peu *ProcessedEventUpdate) Exec(ctx context.Context) error {
	_, err := peu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peu *ProcessedEventUpdate) ExecX(ctx context.Context) {
	if err := peu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (peu *ProcessedEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedevent.Table, processedevent.Columns, sqlgraph.NewFieldSpec(processedevent.FieldID, field.TypeUUID))
	if ps := peu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peu.mutation.EventID(); ok {
		_spec.SetField(processedevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := peu.mutation.EventType(); ok {
		_spec.SetField(processedevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := peu.mutation.Payload(); ok {
		_spec.SetField(processedevent.FieldPayload, field.TypeBytes, value)
	}
	if peu.mutation.PayloadCleared() {
		_spec.ClearField(processedevent.FieldPayload, field.TypeBytes)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, peu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	peu.mutation.done = true
	return n, nil
}

// ProcessedEventUpdateOne is the builder for updating a single ProcessedEvent entity.
type ProcessedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedEventMutation
}

// SetEventID sets the "event_id" field.
func (peuo *ProcessedEventUpdateOne) SetEventID(s string) *ProcessedEventUpdateOne {
	peuo.mutation.SetEventID(s)
	return peuo
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (peuo *ProcessedEventUpdateOne) SetNillableEventID(s *string) *ProcessedEventUpdateOne {
	if s != nil {
		peuo.SetEventID(*s)
	}
	return peuo
}

// SetEventType sets the "event_type" field.
func (peuo *ProcessedEventUpdateOne) SetEventType(s string) *ProcessedEventUpdateOne {
	peuo.mutation.SetEventType(s)
	return peuo
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (peuo *ProcessedEventUpdateOne) SetNillableEventType(s *string) *ProcessedEventUpdateOne {
	if s != nil {
		peuo.SetEventType(*s)
	}
	return peuo
}

// SetPayload sets the "payload" field.
func (peuo *ProcessedEventUpdateOne) SetPayload(b []byte) *ProcessedEventUpdateOne {
	peuo.mutation.SetPayload(b)
	return peuo
}

// ClearPayload clears the value of the "payload" field.
func (peuo *ProcessedEventUpdateOne) ClearPayload() *ProcessedEventUpdateOne {
	peuo.mutation.ClearPayload()
	return peuo
}

// Mutation returns the ProcessedEventMutation object of the builder.
func (peuo *ProcessedEventUpdateOne) Mutation() *ProcessedEventMutation {
	return peuo.mutation
}

// Where appends a list predicates to the ProcessedEventUpdate builder.
func (peuo *ProcessedEventUpdateOne) Where(ps ...predicate.ProcessedEvent) *ProcessedEventUpdateOne {
	peuo.mutation.Where(ps...)
	return peuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (peuo *ProcessedEventUpdateOne) Select(field string, fields ...string) *ProcessedEventUpdateOne {
	peuo.fields = append([]string{field}, fields...)
	return peuo
}

// Save executes the query and returns the updated ProcessedEvent entity.
func (peuo *ProcessedEventUpdateOne) Save(ctx context.Context) (*ProcessedEvent, error) {
	return withHooks(ctx, peuo.sqlSave, peuo.mutation, peuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peuo *ProcessedEventUpdateOne) SaveX(ctx context.Context) *ProcessedEvent {
	node, err := peuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (peuo *ProcessedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := peuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peuo *ProcessedEventUpdateOne) ExecX(ctx context.Context) {
	if err := peuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (peuo *ProcessedEventUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedevent.Table, processedevent.Columns, sqlgraph.NewFieldSpec(processedevent.FieldID, field.TypeUUID))
	id, ok := peuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ProcessedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := peuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedevent.FieldID)
		for _, f := range fields {
			if !processedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != processedevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := peuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peuo.mutation.EventID(); ok {
		_spec.SetField(processedevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.EventType(); ok {
		_spec.SetField(processedevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := peuo.mutation.Payload(); ok {
		_spec.SetField(processedevent.FieldPayload, field.TypeBytes, value)
	}
	if peuo.mutation.PayloadCleared() {
		_spec.ClearField(processedevent.FieldPayload, field.TypeBytes)
	}
	_node = &ProcessedEvent{config: peuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, peuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	peuo.mutation.done = true
	return _node, nil
}
