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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// TimeSlotUpdate is the builder for updating TimeSlot entities.
type TimeSlotUpdate struct {
	config
	hooks    []Hook
	mutation *TimeSlotMutation
}

// Where appends a list predicates to the TimeSlotUpdate builder.
func (tsu *TimeSlotUpdate) Where(ps ...predicate.TimeSlot) *TimeSlotUpdate {
	tsu.mutation.Where(ps...)
	return tsu
}

// SetDayID sets the "day_id" field.
func (tsu *TimeSlotUpdate) SetDayID(u uuid.UUID) *TimeSlotUpdate {
	tsu.mutation.SetDayID(u)
	return tsu
}

// SetNillableDayID sets the "day_id" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableDayID(u *uuid.UUID) *TimeSlotUpdate {
	if u != nil {
		tsu.SetDayID(*u)
	}
	return tsu
}

// SetInstructorID sets the "instructor_id" field.
func (tsu *TimeSlotUpdate) SetInstructorID(u uuid.UUID) *TimeSlotUpdate {
	tsu.mutation.SetInstructorID(u)
	return tsu
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableInstructorID(u *uuid.UUID) *TimeSlotUpdate {
	if u != nil {
		tsu.SetInstructorID(*u)
	}
	return tsu
}

// SetDate sets the "date" field.
func (tsu *TimeSlotUpdate) SetDate(t time.Time) *TimeSlotUpdate {
	tsu.mutation.SetDate(t)
	return tsu
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableDate(t *time.Time) *TimeSlotUpdate {
	if t != nil {
		tsu.SetDate(*t)
	}
	return tsu
}

// SetStartTime sets the "start_time" field.
func (tsu *TimeSlotUpdate) SetStartTime(s string) *TimeSlotUpdate {
	tsu.mutation.SetStartTime(s)
	return tsu
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableStartTime(s *string) *TimeSlotUpdate {
	if s != nil {
		tsu.SetStartTime(*s)
	}
	return tsu
}

// SetEndTime sets the "end_time" field.
func (tsu *TimeSlotUpdate) SetEndTime(s string) *TimeSlotUpdate {
	tsu.mutation.SetEndTime(s)
	return tsu
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableEndTime(s *string) *TimeSlotUpdate {
	if s != nil {
		tsu.SetEndTime(*s)
	}
	return tsu
}

// SetIsAvailable sets the "is_available" field.
func (tsu *TimeSlotUpdate) SetIsAvailable(b bool) *TimeSlotUpdate {
	tsu.mutation.SetIsAvailable(b)
	return tsu
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableIsAvailable(b *bool) *TimeSlotUpdate {
	if b != nil {
		tsu.SetIsAvailable(*b)
	}
	return tsu
}

// SetStatus sets the "status" field.
func (tsu *TimeSlotUpdate) SetStatus(s string) *TimeSlotUpdate {
	tsu.mutation.SetStatus(s)
	return tsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tsu *TimeSlotUpdate) SetNillableStatus(s *string) *TimeSlotUpdate {
	if s != nil {
		tsu.SetStatus(*s)
	}
	return tsu
}

// SetUpdatedAt sets the "updated_at" field.
func (tsu *TimeSlotUpdate) SetUpdatedAt(t time.Time) *TimeSlotUpdate {
	tsu.mutation.SetUpdatedAt(t)
	return tsu
}

// SetDay sets the "day" edge to the CalendarDay entity.
func (tsu *TimeSlotUpdate) SetDay(c *CalendarDay) *TimeSlotUpdate {
	return tsu.SetDayID(c.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (tsu *TimeSlotUpdate) AddLessonIDs(ids ...uuid.UUID) *TimeSlotUpdate {
	tsu.mutation.AddLessonIDs(ids...)
	return tsu
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (tsu *TimeSlotUpdate) AddLessons(l ...*Lesson) *TimeSlotUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tsu.AddLessonIDs(ids...)
}

// Mutation returns the TimeSlotMutation object of the builder.
func (tsu *TimeSlotUpdate) Mutation() *TimeSlotMutation {
	return tsu.mutation
}

// ClearDay clears the "day" edge to the CalendarDay entity.
func (tsu *TimeSlotUpdate) ClearDay() *TimeSlotUpdate {
	tsu.mutation.ClearDay()
	return tsu
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (tsu *TimeSlotUpdate) ClearLessons() *TimeSlotUpdate {
	tsu.mutation.ClearLessons()
	return tsu
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (tsu *TimeSlotUpdate) RemoveLessonIDs(ids ...uuid.UUID) *TimeSlotUpdate {
	tsu.mutation.RemoveLessonIDs(ids...)
	return tsu
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (tsu *TimeSlotUpdate) RemoveLessons(l ...*Lesson) *TimeSlotUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tsu.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tsu *TimeSlotUpdate) Save(ctx context.Context) (int, error) {
	tsu.defaults()
	return withHooks(ctx, tsu.sqlSave, tsu.mutation, tsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsu *TimeSlotUpdate) SaveX(ctx context.Context) int {
	affected, err := tsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tsu *TimeSlotUpdate) Exec(ctx context.Context) error {
	_, err := tsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsu *TimeSlotUpdate) ExecX(ctx context.Context) {
	if err := tsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsu *TimeSlotUpdate) defaults() {
	if _, ok := tsu.mutation.UpdatedAt(); !ok {
		v := timeslot.UpdateDefaultUpdatedAt()
		tsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsu *TimeSlotUpdate) check() error {
	if v, ok := tsu.mutation.Status(); ok {
		if err := timeslot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "TimeSlot.status": %w`, err)}
		}
	}
	if tsu.mutation.DayCleared() && len(tsu.mutation.DayIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeSlot.day"`)
	}
	return nil
}

func (tsu *TimeSlotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeslot.Table, timeslot.Columns, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	if ps := tsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsu.mutation.InstructorID(); ok {
		_spec.SetField(timeslot.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := tsu.mutation.Date(); ok {
		_spec.SetField(timeslot.FieldDate, field.TypeTime, value)
	}
	if value, ok := tsu.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := tsu.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := tsu.mutation.IsAvailable(); ok {
		_spec.SetField(timeslot.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := tsu.mutation.Status(); ok {
		_spec.SetField(timeslot.FieldStatus, field.TypeString, value)
	}
	if value, ok := tsu.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if tsu.mutation.DayCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsu.mutation.DayIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tsu.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsu.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !tsu.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsu.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tsu.mutation.done = true
	return n, nil
}

// TimeSlotUpdateOne is the builder for updating a single TimeSlot entity.
type TimeSlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeSlotMutation
}

// SetDayID sets the "day_id" field.
func (tsuo *TimeSlotUpdateOne) SetDayID(u uuid.UUID) *TimeSlotUpdateOne {
	tsuo.mutation.SetDayID(u)
	return tsuo
}

// SetNillableDayID sets the "day_id" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableDayID(u *uuid.UUID) *TimeSlotUpdateOne {
	if u != nil {
		tsuo.SetDayID(*u)
	}
	return tsuo
}

// SetInstructorID sets the "instructor_id" field.
func (tsuo *TimeSlotUpdateOne) SetInstructorID(u uuid.UUID) *TimeSlotUpdateOne {
	tsuo.mutation.SetInstructorID(u)
	return tsuo
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableInstructorID(u *uuid.UUID) *TimeSlotUpdateOne {
	if u != nil {
		tsuo.SetInstructorID(*u)
	}
	return tsuo
}

// SetDate sets the "date" field.
func (tsuo *TimeSlotUpdateOne) SetDate(t time.Time) *TimeSlotUpdateOne {
	tsuo.mutation.SetDate(t)
	return tsuo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableDate(t *time.Time) *TimeSlotUpdateOne {
	if t != nil {
		tsuo.SetDate(*t)
	}
	return tsuo
}

// SetStartTime sets the "start_time" field.
func (tsuo *TimeSlotUpdateOne) SetStartTime(s string) *TimeSlotUpdateOne {
	tsuo.mutation.SetStartTime(s)
	return tsuo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableStartTime(s *string) *TimeSlotUpdateOne {
	if s != nil {
		tsuo.SetStartTime(*s)
	}
	return tsuo
}

// SetEndTime sets the "end_time" field.
func (tsuo *TimeSlotUpdateOne) SetEndTime(s string) *TimeSlotUpdateOne {
	tsuo.mutation.SetEndTime(s)
	return tsuo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableEndTime(s *string) *TimeSlotUpdateOne {
	if s != nil {
		tsuo.SetEndTime(*s)
	}
	return tsuo
}

// SetIsAvailable sets the "is_available" field.
func (tsuo *TimeSlotUpdateOne) SetIsAvailable(b bool) *TimeSlotUpdateOne {
	tsuo.mutation.SetIsAvailable(b)
	return tsuo
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableIsAvailable(b *bool) *TimeSlotUpdateOne {
	if b != nil {
		tsuo.SetIsAvailable(*b)
	}
	return tsuo
}

// SetStatus sets the "status" field.
func (tsuo *TimeSlotUpdateOne) SetStatus(s string) *TimeSlotUpdateOne {
	tsuo.mutation.SetStatus(s)
	return tsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tsuo *TimeSlotUpdateOne) SetNillableStatus(s *string) *TimeSlotUpdateOne {
	if s != nil {
		tsuo.SetStatus(*s)
	}
	return tsuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tsuo *TimeSlotUpdateOne) SetUpdatedAt(t time.Time) *TimeSlotUpdateOne {
	tsuo.mutation.SetUpdatedAt(t)
	return tsuo
}

// SetDay sets the "day" edge to the CalendarDay entity.
func (tsuo *TimeSlotUpdateOne) SetDay(c *CalendarDay) *TimeSlotUpdateOne {
	return tsuo.SetDayID(c.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (tsuo *TimeSlotUpdateOne) AddLessonIDs(ids ...uuid.UUID) *TimeSlotUpdateOne {
	tsuo.mutation.AddLessonIDs(ids...)
	return tsuo
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (tsuo *TimeSlotUpdateOne) AddLessons(l ...*Lesson) *TimeSlotUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tsuo.AddLessonIDs(ids...)
}

// Mutation returns the TimeSlotMutation object of the builder.
func (tsuo *TimeSlotUpdateOne) Mutation() *TimeSlotMutation {
	return tsuo.mutation
}

// ClearDay clears the "day" edge to the CalendarDay entity.
func (tsuo *TimeSlotUpdateOne) ClearDay() *TimeSlotUpdateOne {
	tsuo.mutation.ClearDay()
	return tsuo
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (tsuo *TimeSlotUpdateOne) ClearLessons() *TimeSlotUpdateOne {
	tsuo.mutation.ClearLessons()
	return tsuo
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (tsuo *TimeSlotUpdateOne) RemoveLessonIDs(ids ...uuid.UUID) *TimeSlotUpdateOne {
	tsuo.mutation.RemoveLessonIDs(ids...)
	return tsuo
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (tsuo *TimeSlotUpdateOne) RemoveLessons(l ...*Lesson) *TimeSlotUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tsuo.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the TimeSlotUpdate builder.
func (tsuo *TimeSlotUpdateOne) Where(ps ...predicate.TimeSlot) *TimeSlotUpdateOne {
	tsuo.mutation.Where(ps...)
	return tsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tsuo *TimeSlotUpdateOne) Select(field string, fields ...string) *TimeSlotUpdateOne {
	tsuo.fields = append([]string{field}, fields...)
	return tsuo
}

// Save executes the query and returns the updated TimeSlot entity.
func (tsuo *TimeSlotUpdateOne) Save(ctx context.Context) (*TimeSlot, error) {
	tsuo.defaults()
	return withHooks(ctx, tsuo.sqlSave, tsuo.mutation, tsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsuo *TimeSlotUpdateOne) SaveX(ctx context.Context) *TimeSlot {
	node, err := tsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tsuo *TimeSlotUpdateOne) Exec(ctx context.Context) error {
	_, err := tsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsuo *TimeSlotUpdateOne) ExecX(ctx context.Context) {
	if err := tsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsuo *TimeSlotUpdateOne) defaults() {
	if _, ok := tsuo.mutation.UpdatedAt(); !ok {
		v := timeslot.UpdateDefaultUpdatedAt()
		tsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsuo *TimeSlotUpdateOne) check() error {
	if v, ok := tsuo.mutation.Status(); ok {
		if err := timeslot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "TimeSlot.status": %w`, err)}
		}
	}
	if tsuo.mutation.DayCleared() && len(tsuo.mutation.DayIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeSlot.day"`)
	}
	return nil
}

func (tsuo *TimeSlotUpdateOne) sqlSave(ctx context.Context) (_node *TimeSlot, err error) {
	if err := tsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeslot.Table, timeslot.Columns, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	id, ok := tsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TimeSlot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeslot.FieldID)
		for _, f := range fields {
			if !timeslot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != timeslot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsuo.mutation.InstructorID(); ok {
		_spec.SetField(timeslot.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := tsuo.mutation.Date(); ok {
		_spec.SetField(timeslot.FieldDate, field.TypeTime, value)
	}
	if value, ok := tsuo.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := tsuo.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := tsuo.mutation.IsAvailable(); ok {
		_spec.SetField(timeslot.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := tsuo.mutation.Status(); ok {
		_spec.SetField(timeslot.FieldStatus, field.TypeString, value)
	}
	if value, ok := tsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if tsuo.mutation.DayCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsuo.mutation.DayIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tsuo.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsuo.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !tsuo.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tsuo.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TimeSlot{config: tsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tsuo.mutation.done = true
	return _node, nil
}
