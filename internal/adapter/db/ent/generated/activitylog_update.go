// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/activitylog"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ActivityLogUpdate is the builder for updating ActivityLog entities.
type ActivityLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityLogMutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (alu *ActivityLogUpdate) Where(ps ...predicate.ActivityLog) *ActivityLogUpdate {
	alu.mutation.Where(ps...)
	return alu
}

// SetActorKind sets the "actor_kind" field.
func (alu *ActivityLogUpdate) SetActorKind(s string) *ActivityLogUpdate {
	alu.mutation.SetActorKind(s)
	return alu
}

// SetNillableActorKind sets the "actor_kind" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableActorKind(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetActorKind(*s)
	}
	return alu
}

// SetActorID sets the "actor_id" field.
func (alu *ActivityLogUpdate) SetActorID(u uuid.UUID) *ActivityLogUpdate {
	alu.mutation.SetActorID(u)
	return alu
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableActorID(u *uuid.UUID) *ActivityLogUpdate {
	if u != nil {
		alu.SetActorID(*u)
	}
	return alu
}

// SetCategory sets the "category" field.
func (alu *ActivityLogUpdate) SetCategory(s string) *ActivityLogUpdate {
	alu.mutation.SetCategory(s)
	return alu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableCategory(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetCategory(*s)
	}
	return alu
}

// SetMessage sets the "message" field.
func (alu *ActivityLogUpdate) SetMessage(s string) *ActivityLogUpdate {
	alu.mutation.SetMessage(s)
	return alu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableMessage(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetMessage(*s)
	}
	return alu
}

// SetMeta sets the "meta" field.
func (alu *ActivityLogUpdate) SetMeta(m map[string]string) *ActivityLogUpdate {
	alu.mutation.SetMeta(m)
	return alu
}

// ClearMeta clears the value of the "meta" field.
func (alu *ActivityLogUpdate) ClearMeta() *ActivityLogUpdate {
	alu.mutation.ClearMeta()
	return alu
}

// Mutation returns the ActivityLogMutation object of the builder.
func (alu *ActivityLogUpdate) Mutation() *ActivityLogMutation {
	return alu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (alu *ActivityLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, alu.sqlSave, alu.mutation, alu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (alu *ActivityLogUpdate) SaveX(ctx context.Context) int {
	affected, err := alu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (alu *ActivityLogUpdate) Exec(ctx context.Context) error {
	_, err := alu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alu *ActivityLogUpdate) ExecX(ctx context.Context) {
	if err := alu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alu *ActivityLogUpdate) check() error {
	if v, ok := alu.mutation.ActorKind(); ok {
		if err := activitylog.ActorKindValidator(v); err != nil {
			return &ValidationError{Name: "actor_kind", err: fmt.Errorf(`generated: validator failed for field "ActivityLog.actor_kind": %w`, err)}
		}
	}
	return nil
}

func (alu *ActivityLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := alu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUUID))
	if ps := alu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := alu.mutation.ActorKind(); ok {
		_spec.SetField(activitylog.FieldActorKind, field.TypeString, value)
	}
	if value, ok := alu.mutation.ActorID(); ok {
		_spec.SetField(activitylog.FieldActorID, field.TypeUUID, value)
	}
	if value, ok := alu.mutation.Category(); ok {
		_spec.SetField(activitylog.FieldCategory, field.TypeString, value)
	}
	if value, ok := alu.mutation.Message(); ok {
		_spec.SetField(activitylog.FieldMessage, field.TypeString, value)
	}
	if value, ok := alu.mutation.Meta(); ok {
		_spec.SetField(activitylog.FieldMeta, field.TypeJSON, value)
	}
	if alu.mutation.MetaCleared() {
		_spec.ClearField(activitylog.FieldMeta, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, alu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	alu.mutation.done = true
	return n, nil
}

// ActivityLogUpdateOne is the builder for updating a single ActivityLog entity.
type ActivityLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityLogMutation
}

// SetActorKind sets the "actor_kind" field.
func (aluo *ActivityLogUpdateOne) SetActorKind(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetActorKind(s)
	return aluo
}

// SetNillableActorKind sets the "actor_kind" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableActorKind(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetActorKind(*s)
	}
	return aluo
}

// SetActorID sets the "actor_id" field.
func (aluo *ActivityLogUpdateOne) SetActorID(u uuid.UUID) *ActivityLogUpdateOne {
	aluo.mutation.SetActorID(u)
	return aluo
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableActorID(u *uuid.UUID) *ActivityLogUpdateOne {
	if u != nil {
		aluo.SetActorID(*u)
	}
	return aluo
}

// SetCategory sets the "category" field.
func (aluo *ActivityLogUpdateOne) SetCategory(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetCategory(s)
	return aluo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableCategory(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetCategory(*s)
	}
	return aluo
}

// SetMessage sets the "message" field.
func (aluo *ActivityLogUpdateOne) SetMessage(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetMessage(s)
	return aluo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableMessage(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetMessage(*s)
	}
	return aluo
}

// SetMeta sets the "meta" field.
func (aluo *ActivityLogUpdateOne) SetMeta(m map[string]string) *ActivityLogUpdateOne {
	aluo.mutation.SetMeta(m)
	return aluo
}

// ClearMeta clears the value of the "meta" field.
func (aluo *ActivityLogUpdateOne) ClearMeta() *ActivityLogUpdateOne {
	aluo.mutation.ClearMeta()
	return aluo
}

// Mutation returns the ActivityLogMutation object of the builder.
func (aluo *ActivityLogUpdateOne) Mutation() *ActivityLogMutation {
	return aluo.mutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (aluo *ActivityLogUpdateOne) Where(ps ...predicate.ActivityLog) *ActivityLogUpdateOne {
	aluo.mutation.Where(ps...)
	return aluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aluo *ActivityLogUpdateOne) Select(field string, fields ...string) *ActivityLogUpdateOne {
	aluo.fields = append([]string{field}, fields...)
	return aluo
}

// Save executes the query and returns the updated ActivityLog entity.
func (aluo *ActivityLogUpdateOne) Save(ctx context.Context) (*ActivityLog, error) {
	return withHooks(ctx, aluo.sqlSave, aluo.mutation, aluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aluo *ActivityLogUpdateOne) SaveX(ctx context.Context) *ActivityLog {
	node, err := aluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aluo *ActivityLogUpdateOne) Exec(ctx context.Context) error {
	_, err := aluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aluo *ActivityLogUpdateOne) ExecX(ctx context.Context) {
	if err := aluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aluo *ActivityLogUpdateOne) check() error {
	if v, ok := aluo.mutation.ActorKind(); ok {
		if err := activitylog.ActorKindValidator(v); err != nil {
			return &ValidationError{Name: "actor_kind", err: fmt.Errorf(`generated: validator failed for field "ActivityLog.actor_kind": %w`, err)}
		}
	}
	return nil
}

func (aluo *ActivityLogUpdateOne) sqlSave(ctx context.Context) (_node *ActivityLog, err error) {
	if err := aluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUUID))
	id, ok := aluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ActivityLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitylog.FieldID)
		for _, f := range fields {
			if !activitylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != activitylog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aluo.mutation.ActorKind(); ok {
		_spec.SetField(activitylog.FieldActorKind, field.TypeString, value)
	}
	if value, ok := aluo.mutation.ActorID(); ok {
		_spec.SetField(activitylog.FieldActorID, field.TypeUUID, value)
	}
	if value, ok := aluo.mutation.Category(); ok {
		_spec.SetField(activitylog.FieldCategory, field.TypeString, value)
	}
	if value, ok := aluo.mutation.Message(); ok {
		_spec.SetField(activitylog.FieldMessage, field.TypeString, value)
	}
	if value, ok := aluo.mutation.Meta(); ok {
		_spec.SetField(activitylog.FieldMeta, field.TypeJSON, value)
	}
	if aluo.mutation.MetaCleared() {
		_spec.ClearField(activitylog.FieldMeta, field.TypeJSON)
	}
	_node = &ActivityLog{config: aluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aluo.mutation.done = true
	return _node, nil
}
