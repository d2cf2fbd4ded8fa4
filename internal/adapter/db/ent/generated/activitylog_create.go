// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/activitylog"
	"github.com/google/uuid"
)

// ActivityLogCreate is the builder for creating a ActivityLog entity.
type ActivityLogCreate struct {
	config
	mutation *ActivityLogMutation
	hooks    []Hook
}

// SetActorKind sets the "actor_kind" field.
func (alc *ActivityLogCreate) SetActorKind(s string) *ActivityLogCreate {
	alc.mutation.SetActorKind(s)
	return alc
}

// SetActorID sets the "actor_id" field.
func (alc *ActivityLogCreate) SetActorID(u uuid.UUID) *ActivityLogCreate {
	alc.mutation.SetActorID(u)
	return alc
}

// SetCategory sets the "category" field.
func (alc *ActivityLogCreate) SetCategory(s string) *ActivityLogCreate {
	alc.mutation.SetCategory(s)
	return alc
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableCategory(s *string) *ActivityLogCreate {
	if s != nil {
		alc.SetCategory(*s)
	}
	return alc
}

// SetMessage sets the "message" field.
func (alc *ActivityLogCreate) SetMessage(s string) *ActivityLogCreate {
	alc.mutation.SetMessage(s)
	return alc
}

// SetMeta sets the "meta" field.
func (alc *ActivityLogCreate) SetMeta(m map[string]string) *ActivityLogCreate {
	alc.mutation.SetMeta(m)
	return alc
}

// SetCreatedAt sets the "created_at" field.
func (alc *ActivityLogCreate) SetCreatedAt(t time.Time) *ActivityLogCreate {
	alc.mutation.SetCreatedAt(t)
	return alc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableCreatedAt(t *time.Time) *ActivityLogCreate {
	if t != nil {
		alc.SetCreatedAt(*t)
	}
	return alc
}

// SetID sets the "id" field.
func (alc *ActivityLogCreate) SetID(u uuid.UUID) *ActivityLogCreate {
	alc.mutation.SetID(u)
	return alc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableID(u *uuid.UUID) *ActivityLogCreate {
	if u != nil {
		alc.SetID(*u)
	}
	return alc
}

// Mutation returns the ActivityLogMutation object of the builder.
func (alc *ActivityLogCreate) Mutation() *ActivityLogMutation {
	return alc.mutation
}

// Save creates the ActivityLog in the database.
func (alc *ActivityLogCreate) Save(ctx context.Context) (*ActivityLog, error) {
	alc.defaults()
	return withHooks(ctx, alc.sqlSave, alc.mutation, alc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (alc *ActivityLogCreate) SaveX(ctx context.Context) *ActivityLog {
	v, err := alc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alc *ActivityLogCreate) Exec(ctx context.Context) error {
	_, err := alc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alc *ActivityLogCreate) ExecX(ctx context.Context) {
	if err := alc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (alc *ActivityLogCreate) defaults() {
	if _, ok := alc.mutation.Category(); !ok {
		v := activitylog.DefaultCategory
		alc.mutation.SetCategory(v)
	}
	if _, ok := alc.mutation.CreatedAt(); !ok {
		v := activitylog.DefaultCreatedAt()
		alc.mutation.SetCreatedAt(v)
	}
	if _, ok := alc.mutation.ID(); !ok {
		v := activitylog.DefaultID()
		alc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alc *ActivityLogCreate) check() error {
	if _, ok := alc.mutation.ActorKind(); !ok {
		return &ValidationError{Name: "actor_kind", err: errors.New(`generated: missing required field "ActivityLog.actor_kind"`)}
	}
	if v, ok := alc.mutation.ActorKind(); ok {
		if err := activitylog.ActorKindValidator(v); err != nil {
			return &ValidationError{Name: "actor_kind", err: fmt.Errorf(`generated: validator failed for field "ActivityLog.actor_kind": %w`, err)}
		}
	}
	if _, ok := alc.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`generated: missing required field "ActivityLog.actor_id"`)}
	}
	if _, ok := alc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`generated: missing required field "ActivityLog.category"`)}
	}
	if _, ok := alc.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`generated: missing required field "ActivityLog.message"`)}
	}
	if _, ok := alc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ActivityLog.created_at"`)}
	}
	return nil
}

func (alc *ActivityLogCreate) sqlSave(ctx context.Context) (*ActivityLog, error) {
	if err := alc.check(); err != nil {
		return nil, err
	}
	_node, _spec := alc.createSpec()
	if err := sqlgraph.CreateNode(ctx, alc.driver, _spec); err != nil {
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
	alc.mutation.id = &_node.ID
	alc.mutation.done = true
	return _node, nil
}

func (alc *ActivityLogCreate) createSpec() (*ActivityLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityLog{config: alc.config}
		_spec = sqlgraph.NewCreateSpec(activitylog.Table, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUUID))
	)
	if id, ok := alc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := alc.mutation.ActorKind(); ok {
		_spec.SetField(activitylog.FieldActorKind, field.TypeString, value)
		_node.ActorKind = value
	}
	if value, ok := alc.mutation.ActorID(); ok {
		_spec.SetField(activitylog.FieldActorID, field.TypeUUID, value)
		_node.ActorID = value
	}
	if value, ok := alc.mutation.Category(); ok {
		_spec.SetField(activitylog.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := alc.mutation.Message(); ok {
		_spec.SetField(activitylog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := alc.mutation.Meta(); ok {
		_spec.SetField(activitylog.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := alc.mutation.CreatedAt(); ok {
		_spec.SetField(activitylog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ActivityLogCreateBulk is the builder for creating many ActivityLog entities in bulk.
type ActivityLogCreateBulk struct {
	config
	err      error
	builders []*ActivityLogCreate
}

// Save creates the ActivityLog entities in the database.
func (alcb *ActivityLogCreateBulk) Save(ctx context.Context) ([]*ActivityLog, error) {
	if alcb.err != nil {
		return nil, alcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(alcb.builders))
	nodes := make([]*ActivityLog, len(alcb.builders))
	mutators := make([]Mutator, len(alcb.builders))
	for i := range alcb.builders {
		func(i int, root context.Context) {
			builder := alcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityLogMutation)
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
					_, err = mutators[i+1].Mutate(root, alcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, alcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, alcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (alcb *ActivityLogCreateBulk) SaveX(ctx context.Context) []*ActivityLog {
	v, err := alcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alcb *ActivityLogCreateBulk) Exec(ctx context.Context) error {
	_, err := alcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alcb *ActivityLogCreateBulk) ExecX(ctx context.Context) {
	if err := alcb.Exec(ctx); err != nil {
		panic(err)
	}
}
