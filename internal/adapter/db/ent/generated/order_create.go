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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/google/uuid"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (oc *OrderCreate) SetStudentID(u uuid.UUID) *OrderCreate {
	oc.mutation.SetStudentID(u)
	return oc
}

// SetInstructorID sets the "instructor_id" field.
func (oc *OrderCreate) SetInstructorID(u uuid.UUID) *OrderCreate {
	oc.mutation.SetInstructorID(u)
	return oc
}

// SetPackageName sets the "package_name" field.
func (oc *OrderCreate) SetPackageName(s string) *OrderCreate {
	oc.mutation.SetPackageName(s)
	return oc
}

// SetPackageTotalPricePence sets the "package_total_price_pence" field.
func (oc *OrderCreate) SetPackageTotalPricePence(i int64) *OrderCreate {
	oc.mutation.SetPackageTotalPricePence(i)
	return oc
}

// SetPackageLessonPricePence sets the "package_lesson_price_pence" field.
func (oc *OrderCreate) SetPackageLessonPricePence(i int64) *OrderCreate {
	oc.mutation.SetPackageLessonPricePence(i)
	return oc
}

// SetPackageLessonCount sets the "package_lesson_count" field.
func (oc *OrderCreate) SetPackageLessonCount(i int) *OrderCreate {
	oc.mutation.SetPackageLessonCount(i)
	return oc
}

// SetPaymentMode sets the "payment_mode" field.
func (oc *OrderCreate) SetPaymentMode(s string) *OrderCreate {
	oc.mutation.SetPaymentMode(s)
	return oc
}

// SetStatus sets the "status" field.
func (oc *OrderCreate) SetStatus(s string) *OrderCreate {
	oc.mutation.SetStatus(s)
	return oc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (oc *OrderCreate) SetNillableStatus(s *string) *OrderCreate {
	if s != nil {
		oc.SetStatus(*s)
	}
	return oc
}

// SetCustomerRef sets the "customer_ref" field.
func (oc *OrderCreate) SetCustomerRef(s string) *OrderCreate {
	oc.mutation.SetCustomerRef(s)
	return oc
}

// SetNillableCustomerRef sets the "customer_ref" field if the given value is not nil.
func (oc *OrderCreate) SetNillableCustomerRef(s *string) *OrderCreate {
	if s != nil {
		oc.SetCustomerRef(*s)
	}
	return oc
}

// SetCheckoutSessionRef sets the "checkout_session_ref" field.
func (oc *OrderCreate) SetCheckoutSessionRef(s string) *OrderCreate {
	oc.mutation.SetCheckoutSessionRef(s)
	return oc
}

// SetNillableCheckoutSessionRef sets the "checkout_session_ref" field if the given value is not nil.
func (oc *OrderCreate) SetNillableCheckoutSessionRef(s *string) *OrderCreate {
	if s != nil {
		oc.SetCheckoutSessionRef(*s)
	}
	return oc
}

// SetPaymentRef sets the "payment_ref" field.
func (oc *OrderCreate) SetPaymentRef(s string) *OrderCreate {
	oc.mutation.SetPaymentRef(s)
	return oc
}

// SetNillablePaymentRef sets the "payment_ref" field if the given value is not nil.
func (oc *OrderCreate) SetNillablePaymentRef(s *string) *OrderCreate {
	if s != nil {
		oc.SetPaymentRef(*s)
	}
	return oc
}

// SetCreatedAt sets the "created_at" field.
func (oc *OrderCreate) SetCreatedAt(t time.Time) *OrderCreate {
	oc.mutation.SetCreatedAt(t)
	return oc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (oc *OrderCreate) SetNillableCreatedAt(t *time.Time) *OrderCreate {
	if t != nil {
		oc.SetCreatedAt(*t)
	}
	return oc
}

// SetUpdatedAt sets the "updated_at" field.
func (oc *OrderCreate) SetUpdatedAt(t time.Time) *OrderCreate {
	oc.mutation.SetUpdatedAt(t)
	return oc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (oc *OrderCreate) SetNillableUpdatedAt(t *time.Time) *OrderCreate {
	if t != nil {
		oc.SetUpdatedAt(*t)
	}
	return oc
}

// SetID sets the "id" field.
func (oc *OrderCreate) SetID(u uuid.UUID) *OrderCreate {
	oc.mutation.SetID(u)
	return oc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (oc *OrderCreate) SetNillableID(u *uuid.UUID) *OrderCreate {
	if u != nil {
		oc.SetID(*u)
	}
	return oc
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (oc *OrderCreate) AddLessonIDs(ids ...uuid.UUID) *OrderCreate {
	oc.mutation.AddLessonIDs(ids...)
	return oc
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (oc *OrderCreate) AddLessons(l ...*Lesson) *OrderCreate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return oc.AddLessonIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (oc *OrderCreate) Mutation() *OrderMutation {
	return oc.mutation
}

// Save creates the Order in the database.
func (oc *OrderCreate) Save(ctx context.Context) (*Order, error) {
	oc.defaults()
	return withHooks(ctx, oc.sqlSave, oc.mutation, oc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (oc *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := oc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (oc *OrderCreate) Exec(ctx context.Context) error {
	_, err := oc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oc *OrderCreate) ExecX(ctx context.Context) {
	if err := oc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (oc *OrderCreate) defaults() {
	if _, ok := oc.mutation.Status(); !ok {
		v := order.DefaultStatus
		oc.mutation.SetStatus(v)
	}
	if _, ok := oc.mutation.CustomerRef(); !ok {
		v := order.DefaultCustomerRef
		oc.mutation.SetCustomerRef(v)
	}
	if _, ok := oc.mutation.CheckoutSessionRef(); !ok {
		v := order.DefaultCheckoutSessionRef
		oc.mutation.SetCheckoutSessionRef(v)
	}
	if _, ok := oc.mutation.PaymentRef(); !ok {
		v := order.DefaultPaymentRef
		oc.mutation.SetPaymentRef(v)
	}
	if _, ok := oc.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		oc.mutation.SetCreatedAt(v)
	}
	if _, ok := oc.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		oc.mutation.SetUpdatedAt(v)
	}
	if _, ok := oc.mutation.ID(); !ok {
		v := order.DefaultID()
		oc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oc *OrderCreate) check() error {
	if _, ok := oc.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`generated: missing required field "Order.student_id"`)}
	}
	if _, ok := oc.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "Order.instructor_id"`)}
	}
	if _, ok := oc.mutation.PackageName(); !ok {
		return &ValidationError{Name: "package_name", err: errors.New(`generated: missing required field "Order.package_name"`)}
	}
	if _, ok := oc.mutation.PackageTotalPricePence(); !ok {
		return &ValidationError{Name: "package_total_price_pence", err: errors.New(`generated: missing required field "Order.package_total_price_pence"`)}
	}
	if _, ok := oc.mutation.PackageLessonPricePence(); !ok {
		return &ValidationError{Name: "package_lesson_price_pence", err: errors.New(`generated: missing required field "Order.package_lesson_price_pence"`)}
	}
	if _, ok := oc.mutation.PackageLessonCount(); !ok {
		return &ValidationError{Name: "package_lesson_count", err: errors.New(`generated: missing required field "Order.package_lesson_count"`)}
	}
	if _, ok := oc.mutation.PaymentMode(); !ok {
		return &ValidationError{Name: "payment_mode", err: errors.New(`generated: missing required field "Order.payment_mode"`)}
	}
	if v, ok := oc.mutation.PaymentMode(); ok {
		if err := order.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`generated: validator failed for field "Order.payment_mode": %w`, err)}
		}
	}
	if _, ok := oc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Order.status"`)}
	}
	if v, ok := oc.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Order.status": %w`, err)}
		}
	}
	if _, ok := oc.mutation.CustomerRef(); !ok {
		return &ValidationError{Name: "customer_ref", err: errors.New(`generated: missing required field "Order.customer_ref"`)}
	}
	if _, ok := oc.mutation.CheckoutSessionRef(); !ok {
		return &ValidationError{Name: "checkout_session_ref", err: errors.New(`generated: missing required field "Order.checkout_session_ref"`)}
	}
	if _, ok := oc.mutation.PaymentRef(); !ok {
		return &ValidationError{Name: "payment_ref", err: errors.New(`generated: missing required field "Order.payment_ref"`)}
	}
	if _, ok := oc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Order.created_at"`)}
	}
	if _, ok := oc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Order.updated_at"`)}
	}
	return nil
}

func (oc *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
	if err := oc.check(); err != nil {
		return nil, err
	}
	_node, _spec := oc.createSpec()
	if err := sqlgraph.CreateNode(ctx, oc.driver, _spec); err != nil {
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
	oc.mutation.id = &_node.ID
	oc.mutation.done = true
	return _node, nil
}

func (oc *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: oc.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	if id, ok := oc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := oc.mutation.StudentID(); ok {
		_spec.SetField(order.FieldStudentID, field.TypeUUID, value)
		_node.StudentID = value
	}
	if value, ok := oc.mutation.InstructorID(); ok {
		_spec.SetField(order.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := oc.mutation.PackageName(); ok {
		_spec.SetField(order.FieldPackageName, field.TypeString, value)
		_node.PackageName = value
	}
	if value, ok := oc.mutation.PackageTotalPricePence(); ok {
		_spec.SetField(order.FieldPackageTotalPricePence, field.TypeInt64, value)
		_node.PackageTotalPricePence = value
	}
	if value, ok := oc.mutation.PackageLessonPricePence(); ok {
		_spec.SetField(order.FieldPackageLessonPricePence, field.TypeInt64, value)
		_node.PackageLessonPricePence = value
	}
	if value, ok := oc.mutation.PackageLessonCount(); ok {
		_spec.SetField(order.FieldPackageLessonCount, field.TypeInt, value)
		_node.PackageLessonCount = value
	}
	if value, ok := oc.mutation.PaymentMode(); ok {
		_spec.SetField(order.FieldPaymentMode, field.TypeString, value)
		_node.PaymentMode = value
	}
	if value, ok := oc.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := oc.mutation.CustomerRef(); ok {
		_spec.SetField(order.FieldCustomerRef, field.TypeString, value)
		_node.CustomerRef = value
	}
	if value, ok := oc.mutation.CheckoutSessionRef(); ok {
		_spec.SetField(order.FieldCheckoutSessionRef, field.TypeString, value)
		_node.CheckoutSessionRef = value
	}
	if value, ok := oc.mutation.PaymentRef(); ok {
		_spec.SetField(order.FieldPaymentRef, field.TypeString, value)
		_node.PaymentRef = value
	}
	if value, ok := oc.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := oc.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := oc.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.LessonsTable,
			Columns: []string{order.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (ocb *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if ocb.err != nil {
		return nil, ocb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ocb.builders))
	nodes := make([]*Order, len(ocb.builders))
	mutators := make([]Mutator, len(ocb.builders))
	for i := range ocb.builders {
		func(i int, root context.Context) {
			builder := ocb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
					_, err = mutators[i+1].Mutate(root, ocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ocb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ocb *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := ocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ocb *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := ocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ocb *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := ocb.Exec(ctx); err != nil {
		panic(err)
	}
}
