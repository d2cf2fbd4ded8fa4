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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// CalendarDayUpdate is the builder for updating CalendarDay entities.
type CalendarDayUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarDayMutation
}

// Where appends a list predicates to the CalendarDayUpdate builder.
func (cdu *CalendarDayUpdate) Where(ps ...predicate.CalendarDay) *CalendarDayUpdate {
	cdu.mutation.Where(ps...)
	return cdu
}

// SetInstructorID sets the "instructor_id" field.
func (cdu *CalendarDayUpdate) SetInstructorID(u uuid.UUID) *CalendarDayUpdate {
	cdu.mutation.SetInstructorID(u)
	return cdu
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (cdu *CalendarDayUpdate) SetNillableInstructorID(u *uuid.UUID) *CalendarDayUpdate {
	if u != nil {
		cdu.SetInstructorID(*u)
	}
	return cdu
}

// SetDate sets the "date" field.
func (cdu *CalendarDayUpdate) SetDate(t time.Time) *CalendarDayUpdate {
	cdu.mutation.SetDate(t)
	return cdu
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (cdu *CalendarDayUpdate) SetNillableDate(t *time.Time) *CalendarDayUpdate {
	if t != nil {
		cdu.SetDate(*t)
	}
	return cdu
}

// AddSlotIDs adds the "slots" edge to the TimeSlot entity by IDs.
func (cdu *CalendarDayUpdate) AddSlotIDs(ids ...uuid.UUID) *CalendarDayUpdate {
	cdu.mutation.AddSlotIDs(ids...)
	return cdu
}

// AddSlots adds the "slots" edges to the TimeSlot entity.
func (cdu *CalendarDayUpdate) AddSlots(t ...*TimeSlot) *CalendarDayUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cdu.AddSlotIDs(ids...)
}

// Mutation returns the CalendarDayMutation object of the builder.
func (cdu *CalendarDayUpdate) Mutation() *CalendarDayMutation {
	return cdu.mutation
}

// ClearSlots clears all "slots" edges to the TimeSlot entity.
func (cdu *CalendarDayUpdate) ClearSlots() *CalendarDayUpdate {
	cdu.mutation.ClearSlots()
	return cdu
}

// RemoveSlotIDs removes the "slots" edge to TimeSlot entities by IDs.
func (cdu *CalendarDayUpdate) RemoveSlotIDs(ids ...uuid.UUID) *CalendarDayUpdate {
	cdu.mutation.RemoveSlotIDs(ids...)
	return cdu
}

// RemoveSlots removes "slots" edges to TimeSlot entities.
func (cdu *CalendarDayUpdate) RemoveSlots(t ...*TimeSlot) *CalendarDayUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cdu.RemoveSlotIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cdu *CalendarDayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cdu.sqlSave, cdu.mutation, cdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cdu *CalendarDayUpdate) SaveX(ctx context.Context) int {
	affected, err := cdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cdu *CalendarDayUpdate) Exec(ctx context.Context) error {
	_, err := cdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cdu *CalendarDayUpdate) ExecX(ctx context.Context) {
	if err := cdu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (cdu *CalendarDayUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarday.Table, calendarday.Columns, sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID))
	if ps := cdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cdu.mutation.InstructorID(); ok {
		_spec.SetField(calendarday.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := cdu.mutation.Date(); ok {
		_spec.SetField(calendarday.FieldDate, field.TypeTime, value)
	}
	if cdu.mutation.SlotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cdu.mutation.RemovedSlotsIDs(); len(nodes) > 0 && !cdu.mutation.SlotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cdu.mutation.SlotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cdu.mutation.done = true
	return n, nil
}

// CalendarDayUpdateOne is the builder for updating a single CalendarDay entity.
type CalendarDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarDayMutation
}

// SetInstructorID sets the "instructor_id" field.
func (cduo *CalendarDayUpdateOne) SetInstructorID(u uuid.UUID) *CalendarDayUpdateOne {
	cduo.mutation.SetInstructorID(u)
	return cduo
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (cduo *CalendarDayUpdateOne) SetNillableInstructorID(u *uuid.UUID) *CalendarDayUpdateOne {
	if u != nil {
		cduo.SetInstructorID(*u)
	}
	return cduo
}

// SetDate sets the "date" field.
func (cduo *CalendarDayUpdateOne) SetDate(t time.Time) *CalendarDayUpdateOne {
	cduo.mutation.SetDate(t)
	return cduo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (cduo *CalendarDayUpdateOne) SetNillableDate(t *time.Time) *CalendarDayUpdateOne {
	if t != nil {
		cduo.SetDate(*t)
	}
	return cduo
}

// AddSlotIDs adds the "slots" edge to the TimeSlot entity by IDs.
func (cduo *CalendarDayUpdateOne) AddSlotIDs(ids ...uuid.UUID) *CalendarDayUpdateOne {
	cduo.mutation.AddSlotIDs(ids...)
	return cduo
}

// AddSlots adds the "slots" edges to the TimeSlot entity.
func (cduo *CalendarDayUpdateOne) AddSlots(t ...*TimeSlot) *CalendarDayUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cduo.AddSlotIDs(ids...)
}

// Mutation returns the CalendarDayMutation object of the builder.
func (cduo *CalendarDayUpdateOne) Mutation() *CalendarDayMutation {
	return cduo.mutation
}

// ClearSlots clears all "slots" edges to the TimeSlot entity.
func (cduo *CalendarDayUpdateOne) ClearSlots() *CalendarDayUpdateOne {
	cduo.mutation.ClearSlots()
	return cduo
}

// RemoveSlotIDs removes the "slots" edge to TimeSlot entities by IDs.
func (cduo *CalendarDayUpdateOne) RemoveSlotIDs(ids ...uuid.UUID) *CalendarDayUpdateOne {
	cduo.mutation.RemoveSlotIDs(ids...)
	return cduo
}

// RemoveSlots removes "slots" edges to TimeSlot entities.
func (cduo *CalendarDayUpdateOne) RemoveSlots(t ...*TimeSlot) *CalendarDayUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cduo.RemoveSlotIDs(ids...)
}

// Where appends a list predicates to the CalendarDayUpdate builder.
func (cduo *CalendarDayUpdateOne) Where(ps ...predicate.CalendarDay) *CalendarDayUpdateOne {
	cduo.mutation.Where(ps...)
	return cduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cduo *CalendarDayUpdateOne) Select(field string, fields ...string) *CalendarDayUpdateOne {
	cduo.fields = append([]string{field}, fields...)
	return cduo
}

// Save executes the query and returns the updated CalendarDay entity.
func (cduo *CalendarDayUpdateOne) Save(ctx context.Context) (*CalendarDay, error) {
	return withHooks(ctx, cduo.sqlSave, cduo.mutation, cduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cduo *CalendarDayUpdateOne) SaveX(ctx context.Context) *CalendarDay {
	node, err := cduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cduo *CalendarDayUpdateOne) Exec(ctx context.Context) error {
	_, err := cduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cduo *CalendarDayUpdateOne) ExecX(ctx context.Context) {
	if err := cduo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (cduo *CalendarDayUpdateOne) sqlSave(ctx context.Context) (_node *CalendarDay, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarday.Table, calendarday.Columns, sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID))
	id, ok := cduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "CalendarDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarday.FieldID)
		for _, f := range fields {
			if !calendarday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != calendarday.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cduo.mutation.InstructorID(); ok {
		_spec.SetField(calendarday.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := cduo.mutation.Date(); ok {
		_spec.SetField(calendarday.FieldDate, field.TypeTime, value)
	}
	if cduo.mutation.SlotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cduo.mutation.RemovedSlotsIDs(); len(nodes) > 0 && !cduo.mutation.SlotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cduo.mutation.SlotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarday.SlotsTable,
			Columns: []string{calendarday.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CalendarDay{config: cduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cduo.mutation.done = true
	return _node, nil
}
