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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
)

// InstructorUpdate is the builder for updating Instructor entities.
type InstructorUpdate struct {
	config
	hooks    []Hook
	mutation *InstructorMutation
}

// Where appends a list predicates to the InstructorUpdate builder.
func (iu *InstructorUpdate) Where(ps ...predicate.Instructor) *InstructorUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetName sets the "name" field.
func (iu *InstructorUpdate) SetName(s string) *InstructorUpdate {
	iu.mutation.SetName(s)
	return iu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillableName(s *string) *InstructorUpdate {
	if s != nil {
		iu.SetName(*s)
	}
	return iu
}

// SetEmail sets the "email" field.
func (iu *InstructorUpdate) SetEmail(s string) *InstructorUpdate {
	iu.mutation.SetEmail(s)
	return iu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillableEmail(s *string) *InstructorUpdate {
	if s != nil {
		iu.SetEmail(*s)
	}
	return iu
}

// SetAccountRef sets the "account_ref" field.
func (iu *InstructorUpdate) SetAccountRef(s string) *InstructorUpdate {
	iu.mutation.SetAccountRef(s)
	return iu
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillableAccountRef(s *string) *InstructorUpdate {
	if s != nil {
		iu.SetAccountRef(*s)
	}
	return iu
}

// SetOnboardingComplete sets the "onboarding_complete" field.
func (iu *InstructorUpdate) SetOnboardingComplete(b bool) *InstructorUpdate {
	iu.mutation.SetOnboardingComplete(b)
	return iu
}

// SetNillableOnboardingComplete sets the "onboarding_complete" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillableOnboardingComplete(b *bool) *InstructorUpdate {
	if b != nil {
		iu.SetOnboardingComplete(*b)
	}
	return iu
}

// SetChargesEnabled sets the "charges_enabled" field.
func (iu *InstructorUpdate) SetChargesEnabled(b bool) *InstructorUpdate {
	iu.mutation.SetChargesEnabled(b)
	return iu
}

// SetNillableChargesEnabled sets the "charges_enabled" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillableChargesEnabled(b *bool) *InstructorUpdate {
	if b != nil {
		iu.SetChargesEnabled(*b)
	}
	return iu
}

// SetPayoutsEnabled sets the "payouts_enabled" field.
func (iu *InstructorUpdate) SetPayoutsEnabled(b bool) *InstructorUpdate {
	iu.mutation.SetPayoutsEnabled(b)
	return iu
}

// SetNillablePayoutsEnabled sets the "payouts_enabled" field if the given value is not nil.
func (iu *InstructorUpdate) SetNillablePayoutsEnabled(b *bool) *InstructorUpdate {
	if b != nil {
		iu.SetPayoutsEnabled(*b)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InstructorUpdate) SetUpdatedAt(t time.Time) *InstructorUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// Mutation returns the InstructorMutation object of the builder.
func (iu *InstructorUpdate) Mutation() *InstructorMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InstructorUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InstructorUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InstructorUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InstructorUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InstructorUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := instructor.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

func (iu *InstructorUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(instructor.Table, instructor.Columns, sqlgraph.NewFieldSpec(instructor.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Name(); ok {
		_spec.SetField(instructor.FieldName, field.TypeString, value)
	}
	if value, ok := iu.mutation.Email(); ok {
		_spec.SetField(instructor.FieldEmail, field.TypeString, value)
	}
	if value, ok := iu.mutation.AccountRef(); ok {
		_spec.SetField(instructor.FieldAccountRef, field.TypeString, value)
	}
	if value, ok := iu.mutation.OnboardingComplete(); ok {
		_spec.SetField(instructor.FieldOnboardingComplete, field.TypeBool, value)
	}
	if value, ok := iu.mutation.ChargesEnabled(); ok {
		_spec.SetField(instructor.FieldChargesEnabled, field.TypeBool, value)
	}
	if value, ok := iu.mutation.PayoutsEnabled(); ok {
		_spec.SetField(instructor.FieldPayoutsEnabled, field.TypeBool, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(instructor.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instructor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InstructorUpdateOne is the builder for updating a single Instructor entity.
type InstructorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstructorMutation
}

// SetName sets the "name" field.
func (iuo *InstructorUpdateOne) SetName(s string) *InstructorUpdateOne {
	iuo.mutation.SetName(s)
	return iuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillableName(s *string) *InstructorUpdateOne {
	if s != nil {
		iuo.SetName(*s)
	}
	return iuo
}

// SetEmail sets the "email" field.
func (iuo *InstructorUpdateOne) SetEmail(s string) *InstructorUpdateOne {
	iuo.mutation.SetEmail(s)
	return iuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillableEmail(s *string) *InstructorUpdateOne {
	if s != nil {
		iuo.SetEmail(*s)
	}
	return iuo
}

// SetAccountRef sets the "account_ref" field.
func (iuo *InstructorUpdateOne) SetAccountRef(s string) *InstructorUpdateOne {
	iuo.mutation.SetAccountRef(s)
	return iuo
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillableAccountRef(s *string) *InstructorUpdateOne {
	if s != nil {
		iuo.SetAccountRef(*s)
	}
	return iuo
}

// SetOnboardingComplete sets the "onboarding_complete" field.
func (iuo *InstructorUpdateOne) SetOnboardingComplete(b bool) *InstructorUpdateOne {
	iuo.mutation.SetOnboardingComplete(b)
	return iuo
}

// SetNillableOnboardingComplete sets the "onboarding_complete" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillableOnboardingComplete(b *bool) *InstructorUpdateOne {
	if b != nil {
		iuo.SetOnboardingComplete(*b)
	}
	return iuo
}

// SetChargesEnabled sets the "charges_enabled" field.
func (iuo *InstructorUpdateOne) SetChargesEnabled(b bool) *InstructorUpdateOne {
	iuo.mutation.SetChargesEnabled(b)
	return iuo
}

// SetNillableChargesEnabled sets the "charges_enabled" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillableChargesEnabled(b *bool) *InstructorUpdateOne {
	if b != nil {
		iuo.SetChargesEnabled(*b)
	}
	return iuo
}

// SetPayoutsEnabled sets the "payouts_enabled" field.
func (iuo *InstructorUpdateOne) SetPayoutsEnabled(b bool) *InstructorUpdateOne {
	iuo.mutation.SetPayoutsEnabled(b)
	return iuo
}

// SetNillablePayoutsEnabled sets the "payouts_enabled" field if the given value is not nil.
func (iuo *InstructorUpdateOne) SetNillablePayoutsEnabled(b *bool) *InstructorUpdateOne {
	if b != nil {
		iuo.SetPayoutsEnabled(*b)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InstructorUpdateOne) SetUpdatedAt(t time.Time) *InstructorUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// Mutation returns the InstructorMutation object of the builder.
func (iuo *InstructorUpdateOne) Mutation() *InstructorMutation {
	return iuo.mutation
}

// Where appends a list predicates to the InstructorUpdate builder.
func (iuo *InstructorUpdateOne) Where(ps ...predicate.Instructor) *InstructorUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InstructorUpdateOne) Select(field string, fields ...string) *InstructorUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Instructor entity.
func (iuo *InstructorUpdateOne) Save(ctx context.Context) (*Instructor, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InstructorUpdateOne) SaveX(ctx context.Context) *Instructor {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InstructorUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InstructorUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InstructorUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := instructor.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

func (iuo *InstructorUpdateOne) sqlSave(ctx context.Context) (_node *Instructor, err error) {
	_spec := sqlgraph.NewUpdateSpec(instructor.Table, instructor.Columns, sqlgraph.NewFieldSpec(instructor.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Instructor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instructor.FieldID)
		for _, f := range fields {
			if !instructor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != instructor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Name(); ok {
		_spec.SetField(instructor.FieldName, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Email(); ok {
		_spec.SetField(instructor.FieldEmail, field.TypeString, value)
	}
	if value, ok := iuo.mutation.AccountRef(); ok {
		_spec.SetField(instructor.FieldAccountRef, field.TypeString, value)
	}
	if value, ok := iuo.mutation.OnboardingComplete(); ok {
		_spec.SetField(instructor.FieldOnboardingComplete, field.TypeBool, value)
	}
	if value, ok := iuo.mutation.ChargesEnabled(); ok {
		_spec.SetField(instructor.FieldChargesEnabled, field.TypeBool, value)
	}
	if value, ok := iuo.mutation.PayoutsEnabled(); ok {
		_spec.SetField(instructor.FieldPayoutsEnabled, field.TypeBool, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(instructor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Instructor{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instructor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
