// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/google/uuid"
)

// InstructorCreate is the builder for creating a Instructor entity.
type InstructorCreate struct {
	config
	mutation *InstructorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (ic *InstructorCreate) SetName(s string) *InstructorCreate {
	ic.mutation.SetName(s)
	return ic
}

// SetEmail sets the "email" field.
func (ic *InstructorCreate) SetEmail(s string) *InstructorCreate {
	ic.mutation.SetEmail(s)
	return ic
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableEmail(s *string) *InstructorCreate {
	if s != nil {
		ic.SetEmail(*s)
	}
	return ic
}

// SetAccountRef sets the "account_ref" field.
func (ic *InstructorCreate) SetAccountRef(s string) *InstructorCreate {
	ic.mutation.SetAccountRef(s)
	return ic
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableAccountRef(s *string) *InstructorCreate {
	if s != nil {
		ic.SetAccountRef(*s)
	}
	return ic
}

// SetOnboardingComplete sets the "onboarding_complete" field.
func (ic *InstructorCreate) SetOnboardingComplete(b bool) *InstructorCreate {
	ic.mutation.SetOnboardingComplete(b)
	return ic
}

// SetNillableOnboardingComplete sets the "onboarding_complete" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableOnboardingComplete(b *bool) *InstructorCreate {
	if b != nil {
		ic.SetOnboardingComplete(*b)
	}
	return ic
}

// SetChargesEnabled sets the "charges_enabled" field.
func (ic *InstructorCreate) SetChargesEnabled(b bool) *InstructorCreate {
	ic.mutation.SetChargesEnabled(b)
	return ic
}

// SetNillableChargesEnabled sets the "charges_enabled" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableChargesEnabled(b *bool) *InstructorCreate {
	if b != nil {
		ic.SetChargesEnabled(*b)
	}
	return ic
}

// SetPayoutsEnabled sets the "payouts_enabled" field.
func (ic *InstructorCreate) SetPayoutsEnabled(b bool) *InstructorCreate {
	ic.mutation.SetPayoutsEnabled(b)
	return ic
}

// SetNillablePayoutsEnabled sets the "payouts_enabled" field if the given value is not nil.
func (ic *InstructorCreate) SetNillablePayoutsEnabled(b *bool) *InstructorCreate {
	if b != nil {
		ic.SetPayoutsEnabled(*b)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InstructorCreate) SetCreatedAt(t time.Time) *InstructorCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableCreatedAt(t *time.Time) *InstructorCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InstructorCreate) SetUpdatedAt(t time.Time) *InstructorCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableUpdatedAt(t *time.Time) *InstructorCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InstructorCreate) SetID(u uuid.UUID) *InstructorCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *InstructorCreate) SetNillableID(u *uuid.UUID) *InstructorCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// Mutation returns the InstructorMutation object of the builder.
func (ic *InstructorCreate) Mutation() *InstructorMutation {
	return ic.mutation
}

// Save creates the Instructor in the database.
func (ic *InstructorCreate) Save(ctx context.Context) (*Instructor, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InstructorCreate) SaveX(ctx context.Context) *Instructor {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InstructorCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InstructorCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InstructorCreate) defaults() {
	if _, ok := ic.mutation.Email(); !ok {
		v := instructor.DefaultEmail
		ic.mutation.SetEmail(v)
	}
	if _, ok := ic.mutation.AccountRef(); !ok {
		v := instructor.DefaultAccountRef
		ic.mutation.SetAccountRef(v)
	}
	if _, ok := ic.mutation.OnboardingComplete(); !ok {
		v := instructor.DefaultOnboardingComplete
		ic.mutation.SetOnboardingComplete(v)
	}
	if _, ok := ic.mutation.ChargesEnabled(); !ok {
		v := instructor.DefaultChargesEnabled
		ic.mutation.SetChargesEnabled(v)
	}
	if _, ok := ic.mutation.PayoutsEnabled(); !ok {
		v := instructor.DefaultPayoutsEnabled
		ic.mutation.SetPayoutsEnabled(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := instructor.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := instructor.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := instructor.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InstructorCreate) check() error {
	if _, ok := ic.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "Instructor.name"`)}
	}
	if _, ok := ic.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`generated: missing required field "Instructor.email"`)}
	}
	if _, ok := ic.mutation.AccountRef(); !ok {
		return &ValidationError{Name: "account_ref", err: errors.New(`generated: missing required field "Instructor.account_ref"`)}
	}
	if _, ok := ic.mutation.OnboardingComplete(); !ok {
		return &ValidationError{Name: "onboarding_complete", err: errors.New(`generated: missing required field "Instructor.onboarding_complete"`)}
	}
	if _, ok := ic.mutation.ChargesEnabled(); !ok {
		return &ValidationError{Name: "charges_enabled", err: errors.New(`generated: missing required field "Instructor.charges_enabled"`)}
	}
	if _, ok := ic.mutation.PayoutsEnabled(); !ok {
		return &ValidationError{Name: "payouts_enabled", err: errors.New(`generated: missing required field "Instructor.payouts_enabled"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Instructor.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Instructor.updated_at"`)}
	}
	return nil
}

func (ic *InstructorCreate) sqlSave(ctx context.Context) (*Instructor, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
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
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InstructorCreate) createSpec() (*Instructor, *sqlgraph.CreateSpec) {
	var (
		_node = &Instructor{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(instructor.Table, sqlgraph.NewFieldSpec(instructor.FieldID, field.TypeUUID))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.Name(); ok {
		_spec.SetField(instructor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ic.mutation.Email(); ok {
		_spec.SetField(instructor.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := ic.mutation.AccountRef(); ok {
		_spec.SetField(instructor.FieldAccountRef, field.TypeString, value)
		_node.AccountRef = value
	}
	if value, ok := ic.mutation.OnboardingComplete(); ok {
		_spec.SetField(instructor.FieldOnboardingComplete, field.TypeBool, value)
		_node.OnboardingComplete = value
	}
	if value, ok := ic.mutation.ChargesEnabled(); ok {
		_spec.SetField(instructor.FieldChargesEnabled, field.TypeBool, value)
		_node.ChargesEnabled = value
	}
	if value, ok := ic.mutation.PayoutsEnabled(); ok {
		_spec.SetField(instructor.FieldPayoutsEnabled, field.TypeBool, value)
		_node.PayoutsEnabled = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(instructor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(instructor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InstructorCreateBulk is the builder for creating many Instructor entities in bulk.
type InstructorCreateBulk struct {
	config
	err      error
	builders []*InstructorCreate
}

// Save creates the Instructor entities in the database.
func (icb *InstructorCreateBulk) Save(ctx context.Context) ([]*Instructor, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Instructor, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstructorMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InstructorCreateBulk) SaveX(ctx context.Context) []*Instructor {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InstructorCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InstructorCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
