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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (ou *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	ou.mutation.Where(ps...)
	return ou
}

// SetStudentID sets the "student_id" field.
func (ou *OrderUpdate) SetStudentID(u uuid.UUID) *OrderUpdate {
	ou.mutation.SetStudentID(u)
	return ou
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (ou *OrderUpdate) SetNillableStudentID(u *uuid.UUID) *OrderUpdate {
	if u != nil {
		ou.SetStudentID(*u)
	}
	return ou
}

// SetInstructorID sets the "instructor_id" field.
func (ou *OrderUpdate) SetInstructorID(u uuid.UUID) *OrderUpdate {
	ou.mutation.SetInstructorID(u)
	return ou
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (ou *OrderUpdate) SetNillableInstructorID(u *uuid.UUID) *OrderUpdate {
	if u != nil {
		ou.SetInstructorID(*u)
	}
	return ou
}

// SetPackageName sets the "package_name" field.
func (ou *OrderUpdate) SetPackageName(s string) *OrderUpdate {
	ou.mutation.SetPackageName(s)
	return ou
}

// SetNillablePackageName sets the "package_name" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePackageName(s *string) *OrderUpdate {
	if s != nil {
		ou.SetPackageName(*s)
	}
	return ou
}

// SetPackageTotalPricePence sets the "package_total_price_pence" field.
func (ou *OrderUpdate) SetPackageTotalPricePence(i int64) *OrderUpdate {
	ou.mutation.ResetPackageTotalPricePence()
	ou.mutation.SetPackageTotalPricePence(i)
	return ou
}

// SetNillablePackageTotalPricePence sets the "package_total_price_pence" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePackageTotalPricePence(i *int64) *OrderUpdate {
	if i != nil {
		ou.SetPackageTotalPricePence(*i)
	}
	return ou
}

// AddPackageTotalPricePence adds i to the "package_total_price_pence" field.
func (ou *OrderUpdate) AddPackageTotalPricePence(i int64) *OrderUpdate {
	ou.mutation.AddPackageTotalPricePence(i)
	return ou
}

// SetPackageLessonPricePence sets the "package_lesson_price_pence" field.
func (ou *OrderUpdate) SetPackageLessonPricePence(i int64) *OrderUpdate {
	ou.mutation.ResetPackageLessonPricePence()
	ou.mutation.SetPackageLessonPricePence(i)
	return ou
}

// SetNillablePackageLessonPricePence sets the "package_lesson_price_pence" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePackageLessonPricePence(i *int64) *OrderUpdate {
	if i != nil {
		ou.SetPackageLessonPricePence(*i)
	}
	return ou
}

// AddPackageLessonPricePence adds i to the "package_lesson_price_pence" field.
func (ou *OrderUpdate) AddPackageLessonPricePence(i int64) *OrderUpdate {
	ou.mutation.AddPackageLessonPricePence(i)
	return ou
}

// SetPackageLessonCount sets the "package_lesson_count" field.
func (ou *OrderUpdate) SetPackageLessonCount(i int) *OrderUpdate {
	ou.mutation.ResetPackageLessonCount()
	ou.mutation.SetPackageLessonCount(i)
	return ou
}

// SetNillablePackageLessonCount sets the "package_lesson_count" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePackageLessonCount(i *int) *OrderUpdate {
	if i != nil {
		ou.SetPackageLessonCount(*i)
	}
	return ou
}

// AddPackageLessonCount adds i to the "package_lesson_count" field.
func (ou *OrderUpdate) AddPackageLessonCount(i int) *OrderUpdate {
	ou.mutation.AddPackageLessonCount(i)
	return ou
}

// SetPaymentMode sets the "payment_mode" field.
func (ou *OrderUpdate) SetPaymentMode(s string) *OrderUpdate {
	ou.mutation.SetPaymentMode(s)
	return ou
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePaymentMode(s *string) *OrderUpdate {
	if s != nil {
		ou.SetPaymentMode(*s)
	}
	return ou
}

// SetStatus sets the "status" field.
func (ou *OrderUpdate) SetStatus(s string) *OrderUpdate {
	ou.mutation.SetStatus(s)
	return ou
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ou *OrderUpdate) SetNillableStatus(s *string) *OrderUpdate {
	if s != nil {
		ou.SetStatus(*s)
	}
	return ou
}

// SetCustomerRef sets the "customer_ref" field.
func (ou *OrderUpdate) SetCustomerRef(s string) *OrderUpdate {
	ou.mutation.SetCustomerRef(s)
	return ou
}

// SetNillableCustomerRef sets the "customer_ref" field if the given value is not nil.
func (ou *OrderUpdate) SetNillableCustomerRef(s *string) *OrderUpdate {
	if s != nil {
		ou.SetCustomerRef(*s)
	}
	return ou
}

// SetCheckoutSessionRef sets the "checkout_session_ref" field.
func (ou *OrderUpdate) SetCheckoutSessionRef(s string) *OrderUpdate {
	ou.mutation.SetCheckoutSessionRef(s)
	return ou
}

// SetNillableCheckoutSessionRef sets the "checkout_session_ref" field if the given value is not nil.
func (ou *OrderUpdate) SetNillableCheckoutSessionRef(s *string) *OrderUpdate {
	if s != nil {
		ou.SetCheckoutSessionRef(*s)
	}
	return ou
}

// SetPaymentRef sets the "payment_ref" field.
func (ou *OrderUpdate) SetPaymentRef(s string) *OrderUpdate {
	ou.mutation.SetPaymentRef(s)
	return ou
}

// SetNillablePaymentRef sets the "payment_ref" field if the given value is not nil.
func (ou *OrderUpdate) SetNillablePaymentRef(s *string) *OrderUpdate {
	if s != nil {
		ou.SetPaymentRef(*s)
	}
	return ou
}

// SetUpdatedAt sets the "updated_at" field.
func (ou *OrderUpdate) SetUpdatedAt(t time.Time) *OrderUpdate {
	ou.mutation.SetUpdatedAt(t)
	return ou
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (ou *OrderUpdate) AddLessonIDs(ids ...uuid.UUID) *OrderUpdate {
	ou.mutation.AddLessonIDs(ids...)
	return ou
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (ou *OrderUpdate) AddLessons(l ...*Lesson) *OrderUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ou.AddLessonIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (ou *OrderUpdate) Mutation() *OrderMutation {
	return ou.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (ou *OrderUpdate) ClearLessons() *OrderUpdate {
	ou.mutation.ClearLessons()
	return ou
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (ou *OrderUpdate) RemoveLessonIDs(ids ...uuid.UUID) *OrderUpdate {
	ou.mutation.RemoveLessonIDs(ids...)
	return ou
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (ou *OrderUpdate) RemoveLessons(l ...*Lesson) *OrderUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ou.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ou *OrderUpdate) Save(ctx context.Context) (int, error) {
	ou.defaults()
	return withHooks(ctx, ou.sqlSave, ou.mutation, ou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ou *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := ou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ou *OrderUpdate) Exec(ctx context.Context) error {
	_, err := ou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ou *OrderUpdate) ExecX(ctx context.Context) {
	if err := ou.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ou *OrderUpdate) defaults() {
	if _, ok := ou.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		ou.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ou *OrderUpdate) check() error {
	if v, ok := ou.mutation.PaymentMode(); ok {
		if err := order.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`generated: validator failed for field "Order.payment_mode": %w`, err)}
		}
	}
	if v, ok := ou.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Order.status": %w`, err)}
		}
	}
	return nil
}

func (ou *OrderUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ou.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := ou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ou.mutation.StudentID(); ok {
		_spec.SetField(order.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := ou.mutation.InstructorID(); ok {
		_spec.SetField(order.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := ou.mutation.PackageName(); ok {
		_spec.SetField(order.FieldPackageName, field.TypeString, value)
	}
	if value, ok := ou.mutation.PackageTotalPricePence(); ok {
		_spec.SetField(order.FieldPackageTotalPricePence, field.TypeInt64, value)
	}
	if value, ok := ou.mutation.AddedPackageTotalPricePence(); ok {
		_spec.AddField(order.FieldPackageTotalPricePence, field.TypeInt64, value)
	}
	if value, ok := ou.mutation.PackageLessonPricePence(); ok {
		_spec.SetField(order.FieldPackageLessonPricePence, field.TypeInt64, value)
	}
	if value, ok := ou.mutation.AddedPackageLessonPricePence(); ok {
		_spec.AddField(order.FieldPackageLessonPricePence, field.TypeInt64, value)
	}
	if value, ok := ou.mutation.PackageLessonCount(); ok {
		_spec.SetField(order.FieldPackageLessonCount, field.TypeInt, value)
	}
	if value, ok := ou.mutation.AddedPackageLessonCount(); ok {
		_spec.AddField(order.FieldPackageLessonCount, field.TypeInt, value)
	}
	if value, ok := ou.mutation.PaymentMode(); ok {
		_spec.SetField(order.FieldPaymentMode, field.TypeString, value)
	}
	if value, ok := ou.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := ou.mutation.CustomerRef(); ok {
		_spec.SetField(order.FieldCustomerRef, field.TypeString, value)
	}
	if value, ok := ou.mutation.CheckoutSessionRef(); ok {
		_spec.SetField(order.FieldCheckoutSessionRef, field.TypeString, value)
	}
	if value, ok := ou.mutation.PaymentRef(); ok {
		_spec.SetField(order.FieldPaymentRef, field.TypeString, value)
	}
	if value, ok := ou.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if ou.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ou.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !ou.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ou.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ou.mutation.done = true
	return n, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetStudentID sets the "student_id" field.
func (ouo *OrderUpdateOne) SetStudentID(u uuid.UUID) *OrderUpdateOne {
	ouo.mutation.SetStudentID(u)
	return ouo
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillableStudentID(u *uuid.UUID) *OrderUpdateOne {
	if u != nil {
		ouo.SetStudentID(*u)
	}
	return ouo
}

// SetInstructorID sets the "instructor_id" field.
func (ouo *OrderUpdateOne) SetInstructorID(u uuid.UUID) *OrderUpdateOne {
	ouo.mutation.SetInstructorID(u)
	return ouo
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillableInstructorID(u *uuid.UUID) *OrderUpdateOne {
	if u != nil {
		ouo.SetInstructorID(*u)
	}
	return ouo
}

// SetPackageName sets the "package_name" field.
func (ouo *OrderUpdateOne) SetPackageName(s string) *OrderUpdateOne {
	ouo.mutation.SetPackageName(s)
	return ouo
}

// SetNillablePackageName sets the "package_name" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePackageName(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetPackageName(*s)
	}
	return ouo
}

// SetPackageTotalPricePence sets the "package_total_price_pence" field.
func (ouo *OrderUpdateOne) SetPackageTotalPricePence(i int64) *OrderUpdateOne {
	ouo.mutation.ResetPackageTotalPricePence()
	ouo.mutation.SetPackageTotalPricePence(i)
	return ouo
}

// SetNillablePackageTotalPricePence sets the "package_total_price_pence" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePackageTotalPricePence(i *int64) *OrderUpdateOne {
	if i != nil {
		ouo.SetPackageTotalPricePence(*i)
	}
	return ouo
}

// AddPackageTotalPricePence adds i to the "package_total_price_pence" field.
func (ouo *OrderUpdateOne) AddPackageTotalPricePence(i int64) *OrderUpdateOne {
	ouo.mutation.AddPackageTotalPricePence(i)
	return ouo
}

// SetPackageLessonPricePence sets the "package_lesson_price_pence" field.
func (ouo *OrderUpdateOne) SetPackageLessonPricePence(i int64) *OrderUpdateOne {
	ouo.mutation.ResetPackageLessonPricePence()
	ouo.mutation.SetPackageLessonPricePence(i)
	return ouo
}

// SetNillablePackageLessonPricePence sets the "package_lesson_price_pence" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePackageLessonPricePence(i *int64) *OrderUpdateOne {
	if i != nil {
		ouo.SetPackageLessonPricePence(*i)
	}
	return ouo
}

// AddPackageLessonPricePence adds i to the "package_lesson_price_pence" field.
func (ouo *OrderUpdateOne) AddPackageLessonPricePence(i int64) *OrderUpdateOne {
	ouo.mutation.AddPackageLessonPricePence(i)
	return ouo
}

// SetPackageLessonCount sets the "package_lesson_count" field.
func (ouo *OrderUpdateOne) SetPackageLessonCount(i int) *OrderUpdateOne {
	ouo.mutation.ResetPackageLessonCount()
	ouo.mutation.SetPackageLessonCount(i)
	return ouo
}

// SetNillablePackageLessonCount sets the "package_lesson_count" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePackageLessonCount(i *int) *OrderUpdateOne {
	if i != nil {
		ouo.SetPackageLessonCount(*i)
	}
	return ouo
}

// AddPackageLessonCount adds i to the "package_lesson_count" field.
func (ouo *OrderUpdateOne) AddPackageLessonCount(i int) *OrderUpdateOne {
	ouo.mutation.AddPackageLessonCount(i)
	return ouo
}

// SetPaymentMode sets the "payment_mode" field.
func (ouo *OrderUpdateOne) SetPaymentMode(s string) *OrderUpdateOne {
	ouo.mutation.SetPaymentMode(s)
	return ouo
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePaymentMode(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetPaymentMode(*s)
	}
	return ouo
}

// SetStatus sets the "status" field.
func (ouo *OrderUpdateOne) SetStatus(s string) *OrderUpdateOne {
	ouo.mutation.SetStatus(s)
	return ouo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillableStatus(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetStatus(*s)
	}
	return ouo
}

// SetCustomerRef sets the "customer_ref" field.
func (ouo *OrderUpdateOne) SetCustomerRef(s string) *OrderUpdateOne {
	ouo.mutation.SetCustomerRef(s)
	return ouo
}

// SetNillableCustomerRef sets the "customer_ref" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillableCustomerRef(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetCustomerRef(*s)
	}
	return ouo
}

// SetCheckoutSessionRef sets the "checkout_session_ref" field.
func (ouo *OrderUpdateOne) SetCheckoutSessionRef(s string) *OrderUpdateOne {
	ouo.mutation.SetCheckoutSessionRef(s)
	return ouo
}

// SetNillableCheckoutSessionRef sets the "checkout_session_ref" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillableCheckoutSessionRef(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetCheckoutSessionRef(*s)
	}
	return ouo
}

// SetPaymentRef sets the "payment_ref" field.
func (ouo *OrderUpdateOne) SetPaymentRef(s string) *OrderUpdateOne {
	ouo.mutation.SetPaymentRef(s)
	return ouo
}

// SetNillablePaymentRef sets the "payment_ref" field if the given value is not nil.
func (ouo *OrderUpdateOne) SetNillablePaymentRef(s *string) *OrderUpdateOne {
	if s != nil {
		ouo.SetPaymentRef(*s)
	}
	return ouo
}

// SetUpdatedAt sets the "updated_at" field.
func (ouo *OrderUpdateOne) SetUpdatedAt(t time.Time) *OrderUpdateOne {
	ouo.mutation.SetUpdatedAt(t)
	return ouo
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (ouo *OrderUpdateOne) AddLessonIDs(ids ...uuid.UUID) *OrderUpdateOne {
	ouo.mutation.AddLessonIDs(ids...)
	return ouo
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (ouo *OrderUpdateOne) AddLessons(l ...*Lesson) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ouo.AddLessonIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (ouo *OrderUpdateOne) Mutation() *OrderMutation {
	return ouo.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (ouo *OrderUpdateOne) ClearLessons() *OrderUpdateOne {
	ouo.mutation.ClearLessons()
	return ouo
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (ouo *OrderUpdateOne) RemoveLessonIDs(ids ...uuid.UUID) *OrderUpdateOne {
	ouo.mutation.RemoveLessonIDs(ids...)
	return ouo
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (ouo *OrderUpdateOne) RemoveLessons(l ...*Lesson) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ouo.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (ouo *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	ouo.mutation.Where(ps...)
	return ouo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ouo *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	ouo.fields = append([]string{field}, fields...)
	return ouo
}

// Save executes the query and returns the updated Order entity.
func (ouo *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	ouo.defaults()
	return withHooks(ctx, ouo.sqlSave, ouo.mutation, ouo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ouo *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := ouo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ouo *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := ouo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ouo *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := ouo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ouo *OrderUpdateOne) defaults() {
	if _, ok := ouo.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		ouo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ouo *OrderUpdateOne) check() error {
	if v, ok := ouo.mutation.PaymentMode(); ok {
		if err := order.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`generated: validator failed for field "Order.payment_mode": %w`, err)}
		}
	}
	if v, ok := ouo.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Order.status": %w`, err)}
		}
	}
	return nil
}

func (ouo *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := ouo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := ouo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ouo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ouo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ouo.mutation.StudentID(); ok {
		_spec.SetField(order.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := ouo.mutation.InstructorID(); ok {
		_spec.SetField(order.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := ouo.mutation.PackageName(); ok {
		_spec.SetField(order.FieldPackageName, field.TypeString, value)
	}
	if value, ok := ouo.mutation.PackageTotalPricePence(); ok {
		_spec.SetField(order.FieldPackageTotalPricePence, field.TypeInt64, value)
	}
	if value, ok := ouo.mutation.AddedPackageTotalPricePence(); ok {
		_spec.AddField(order.FieldPackageTotalPricePence, field.TypeInt64, value)
	}
	if value, ok := ouo.mutation.PackageLessonPricePence(); ok {
		_spec.SetField(order.FieldPackageLessonPricePence, field.TypeInt64, value)
	}
	if value, ok := ouo.mutation.AddedPackageLessonPricePence(); ok {
		_spec.AddField(order.FieldPackageLessonPricePence, field.TypeInt64, value)
	}
	if value, ok := ouo.mutation.PackageLessonCount(); ok {
		_spec.SetField(order.FieldPackageLessonCount, field.TypeInt, value)
	}
	if value, ok := ouo.mutation.AddedPackageLessonCount(); ok {
		_spec.AddField(order.FieldPackageLessonCount, field.TypeInt, value)
	}
	if value, ok := ouo.mutation.PaymentMode(); ok {
		_spec.SetField(order.FieldPaymentMode, field.TypeString, value)
	}
	if value, ok := ouo.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := ouo.mutation.CustomerRef(); ok {
		_spec.SetField(order.FieldCustomerRef, field.TypeString, value)
	}
	if value, ok := ouo.mutation.CheckoutSessionRef(); ok {
		_spec.SetField(order.FieldCheckoutSessionRef, field.TypeString, value)
	}
	if value, ok := ouo.mutation.PaymentRef(); ok {
		_spec.SetField(order.FieldPaymentRef, field.TypeString, value)
	}
	if value, ok := ouo.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if ouo.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ouo.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !ouo.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ouo.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: ouo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ouo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ouo.mutation.done = true
	return _node, nil
}
