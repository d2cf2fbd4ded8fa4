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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// TimeSlotCreate is the builder for creating a TimeSlot entity.
type TimeSlotCreate struct {
	config
	mutation *TimeSlotMutation
	hooks    []Hook
}

// SetDayID sets the "day_id" field.
func (tsc *TimeSlotCreate) SetDayID(u uuid.UUID) *TimeSlotCreate {
	tsc.mutation.SetDayID(u)
	return tsc
}

// SetInstructorID sets the "instructor_id" field.
func (tsc *TimeSlotCreate) SetInstructorID(u uuid.UUID) *TimeSlotCreate {
	tsc.mutation.SetInstructorID(u)
	return tsc
}

// SetDate sets the "date" field.
func (tsc *TimeSlotCreate) SetDate(t time.Time) *TimeSlotCreate {
	tsc.mutation.SetDate(t)
	return tsc
}

// SetStartTime sets the "start_time" field.
func (tsc *TimeSlotCreate) SetStartTime(s string) *TimeSlotCreate {
	tsc.mutation.SetStartTime(s)
	return tsc
}

// SetEndTime sets the "end_time" field.
func (tsc *TimeSlotCreate) SetEndTime(s string) *TimeSlotCreate {
	tsc.mutation.SetEndTime(s)
	return tsc
}

// SetIsAvailable sets the "is_available" field.
func (tsc *TimeSlotCreate) SetIsAvailable(b bool) *TimeSlotCreate {
	tsc.mutation.SetIsAvailable(b)
	return tsc
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (tsc *TimeSlotCreate) SetNillableIsAvailable(b *bool) *TimeSlotCreate {
	if b != nil {
		tsc.SetIsAvailable(*b)
	}
	return tsc
}

// SetStatus sets the "status" field.
func (tsc *TimeSlotCreate) SetStatus(s string) *TimeSlotCreate {
	tsc.mutation.SetStatus(s)
	return tsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tsc *TimeSlotCreate) SetNillableStatus(s *string) *TimeSlotCreate {
	if s != nil {
		tsc.SetStatus(*s)
	}
	return tsc
}

// SetCreatedAt sets the "created_at" field.
func (tsc *TimeSlotCreate) SetCreatedAt(t time.Time) *TimeSlotCreate {
	tsc.mutation.SetCreatedAt(t)
	return tsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tsc *TimeSlotCreate) SetNillableCreatedAt(t *time.Time) *TimeSlotCreate {
	if t != nil {
		tsc.SetCreatedAt(*t)
	}
	return tsc
}

// SetUpdatedAt sets the "updated_at" field.
func (tsc *TimeSlotCreate) SetUpdatedAt(t time.Time) *TimeSlotCreate {
	tsc.mutation.SetUpdatedAt(t)
	return tsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tsc *TimeSlotCreate) SetNillableUpdatedAt(t *time.Time) *TimeSlotCreate {
	if t != nil {
		tsc.SetUpdatedAt(*t)
	}
	return tsc
}

// SetID sets the "id" field.
func (tsc *TimeSlotCreate) SetID(u uuid.UUID) *TimeSlotCreate {
	tsc.mutation.SetID(u)
	return tsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (tsc *TimeSlotCreate) SetNillableID(u *uuid.UUID) *TimeSlotCreate {
	if u != nil {
		tsc.SetID(*u)
	}
	return tsc
}

// SetDay sets the "day" edge to the CalendarDay entity.
func (tsc *TimeSlotCreate) SetDay(c *CalendarDay) *TimeSlotCreate {
	return tsc.SetDayID(c.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (tsc *TimeSlotCreate) AddLessonIDs(ids ...uuid.UUID) *TimeSlotCreate {
	tsc.mutation.AddLessonIDs(ids...)
	return tsc
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (tsc *TimeSlotCreate) AddLessons(l ...*Lesson) *TimeSlotCreate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tsc.AddLessonIDs(ids...)
}

// Mutation returns the TimeSlotMutation object of the builder.
func (tsc *TimeSlotCreate) Mutation() *TimeSlotMutation {
	return tsc.mutation
}

// Save creates the TimeSlot in the database.
func (tsc *TimeSlotCreate) Save(ctx context.Context) (*TimeSlot, error) {
	tsc.defaults()
	return withHooks(ctx, tsc.sqlSave, tsc.mutation, tsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tsc *TimeSlotCreate) SaveX(ctx context.Context) *TimeSlot {
	v, err := tsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tsc *TimeSlotCreate) Exec(ctx context.Context) error {
	_, err := tsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsc *TimeSlotCreate) ExecX(ctx context.Context) {
	if err := tsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsc *TimeSlotCreate) defaults() {
	if _, ok := tsc.mutation.IsAvailable(); !ok {
		v := timeslot.DefaultIsAvailable
		tsc.mutation.SetIsAvailable(v)
	}
	if _, ok := tsc.mutation.Status(); !ok {
		v := timeslot.DefaultStatus
		tsc.mutation.SetStatus(v)
	}
	if _, ok := tsc.mutation.CreatedAt(); !ok {
		v := timeslot.DefaultCreatedAt()
		tsc.mutation.SetCreatedAt(v)
	}
	if _, ok := tsc.mutation.UpdatedAt(); !ok {
		v := timeslot.DefaultUpdatedAt()
		tsc.mutation.SetUpdatedAt(v)
	}
	if _, ok := tsc.mutation.ID(); !ok {
		v := timeslot.DefaultID()
		tsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsc *TimeSlotCreate) check() error {
	if _, ok := tsc.mutation.DayID(); !ok {
		return &ValidationError{Name: "day_id", err: errors.New(`generated: missing required field "TimeSlot.day_id"`)}
	}
	if _, ok := tsc.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "TimeSlot.instructor_id"`)}
	}
	if _, ok := tsc.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`generated: missing required field "TimeSlot.date"`)}
	}
	if _, ok := tsc.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`generated: missing required field "TimeSlot.start_time"`)}
	}
	if _, ok := tsc.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`generated: missing required field "TimeSlot.end_time"`)}
	}
	if _, ok := tsc.mutation.IsAvailable(); !ok {
		return &ValidationError{Name: "is_available", err: errors.New(`generated: missing required field "TimeSlot.is_available"`)}
	}
	if _, ok := tsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "TimeSlot.status"`)}
	}
	if v, ok := tsc.mutation.Status(); ok {
		if err := timeslot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "TimeSlot.status": %w`, err)}
		}
	}
	if _, ok := tsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "TimeSlot.created_at"`)}
	}
	if _, ok := tsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "TimeSlot.updated_at"`)}
	}
	if len(tsc.mutation.DayIDs()) == 0 {
		return &ValidationError{Name: "day", err: errors.New(`generated: missing required edge "TimeSlot.day"`)}
	}
	return nil
}

func (tsc *TimeSlotCreate) sqlSave(ctx context.Context) (*TimeSlot, error) {
	if err := tsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tsc.driver, _spec); err != nil {
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
	tsc.mutation.id = &_node.ID
	tsc.mutation.done = true
	return _node, nil
}

func (tsc *TimeSlotCreate) createSpec() (*TimeSlot, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeSlot{config: tsc.config}
		_spec = sqlgraph.NewCreateSpec(timeslot.Table, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	)
	if id, ok := tsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := tsc.mutation.InstructorID(); ok {
		_spec.SetField(timeslot.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := tsc.mutation.Date(); ok {
		_spec.SetField(timeslot.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := tsc.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := tsc.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := tsc.mutation.IsAvailable(); ok {
		_spec.SetField(timeslot.FieldIsAvailable, field.TypeBool, value)
		_node.IsAvailable = value
	}
	if value, ok := tsc.mutation.Status(); ok {
		_spec.SetField(timeslot.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := tsc.mutation.CreatedAt(); ok {
		_spec.SetField(timeslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tsc.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := tsc.mutation.DayIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeslot.DayTable,
			Columns: []string{timeslot.DayColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DayID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tsc.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   timeslot.LessonsTable,
			Columns: []string{timeslot.LessonsColumn},
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

// TimeSlotCreateBulk is the builder for creating many TimeSlot entities in bulk.
type TimeSlotCreateBulk struct {
	config
	err      error
	builders []*TimeSlotCreate
}

// Save creates the TimeSlot entities in the database.
func (tscb *TimeSlotCreateBulk) Save(ctx context.Context) ([]*TimeSlot, error) {
	if tscb.err != nil {
		return nil, tscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tscb.builders))
	nodes := make([]*TimeSlot, len(tscb.builders))
	mutators := make([]Mutator, len(tscb.builders))
	for i := range tscb.builders {
		func(i int, root context.Context) {
			builder := tscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeSlotMutation)
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
					_, err = mutators[i+1].Mutate(root, tscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tscb *TimeSlotCreateBulk) SaveX(ctx context.Context) []*TimeSlot {
	v, err := tscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tscb *TimeSlotCreateBulk) Exec(ctx context.Context) error {
	_, err := tscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tscb *TimeSlotCreateBulk) ExecX(ctx context.Context) {
	if err := tscb.Exec(ctx); err != nil {
		panic(err)
	}
}
