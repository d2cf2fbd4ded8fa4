// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
)

// CalendarDayDelete is the builder for deleting a CalendarDay entity.
type CalendarDayDelete struct {
	config
	hooks    []Hook
	mutation *CalendarDayMutation
}

// Where appends a list predicates to the CalendarDayDelete builder.
func (cdd *CalendarDayDelete) Where(ps ...predicate.CalendarDay) *CalendarDayDelete {
	cdd.mutation.Where(ps...)
	return cdd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cdd *CalendarDayDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cdd.sqlExec, cdd.mutation, cdd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cdd *CalendarDayDelete) ExecX(ctx context.Context) int {
	n, err := cdd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cdd *CalendarDayDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calendarday.Table, sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID))
	if ps := cdd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cdd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cdd.mutation.done = true
	return affected, err
}

// CalendarDayDeleteOne is the builder for deleting a single CalendarDay entity.
type CalendarDayDeleteOne struct {
	cdd *CalendarDayDelete
}

// Where appends a list predicates to the CalendarDayDelete builder.
func (cddo *CalendarDayDeleteOne) Where(ps ...predicate.CalendarDay) *CalendarDayDeleteOne {
	cddo.cdd.mutation.Where(ps...)
	return cddo
}

// Exec executes the deletion query.
func (cddo *CalendarDayDeleteOne) Exec(ctx context.Context) error {
	n, err := cddo.cdd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calendarday.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cddo *CalendarDayDeleteOne) ExecX(ctx context.Context) {
	if err := cddo.Exec(ctx); err != nil {
		panic(err)
	}
}
