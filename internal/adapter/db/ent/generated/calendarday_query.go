// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// CalendarDayQuery is the builder for querying CalendarDay entities.
type CalendarDayQuery struct {
	config
	ctx        *QueryContext
	order      []calendarday.OrderOption
	inters     []Interceptor
	predicates []predicate.CalendarDay
	withSlots  *TimeSlotQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CalendarDayQuery builder.
func (cdq *CalendarDayQuery) Where(ps ...predicate.CalendarDay) *CalendarDayQuery {
	cdq.predicates = append(cdq.predicates, ps...)
	return cdq
}

// Limit the number of records to be returned by this query.
func (cdq *CalendarDayQuery) Limit(limit int) *CalendarDayQuery {
	cdq.ctx.Limit = &limit
	return cdq
}

// Offset to start from.
func (cdq *CalendarDayQuery) Offset(offset int) *CalendarDayQuery {
	cdq.ctx.Offset = &offset
	return cdq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cdq *CalendarDayQuery) Unique(unique bool) *CalendarDayQuery {
	cdq.ctx.Unique = &unique
	return cdq
}

// Order specifies how the records should be ordered.
func (cdq *CalendarDayQuery) Order(o ...calendarday.OrderOption) *CalendarDayQuery {
	cdq.order = append(cdq.order, o...)
	return cdq
}

// QuerySlots chains the current query on the "slots" edge.
func (cdq *CalendarDayQuery) QuerySlots() *TimeSlotQuery {
	query := (&TimeSlotClient{config: cdq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cdq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cdq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarday.Table, calendarday.FieldID, selector),
			sqlgraph.To(timeslot.Table, timeslot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, calendarday.SlotsTable, calendarday.SlotsColumn),
		)
		fromU = sqlgraph.SetNeighbors(cdq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CalendarDay entity from the query.
// Returns a *NotFoundError when no CalendarDay was found.
func (cdq *CalendarDayQuery) First(ctx context.Context) (*CalendarDay, error) {
	nodes, err := cdq.Limit(1).All(setContextOp(ctx, cdq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{calendarday.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cdq *CalendarDayQuery) FirstX(ctx context.Context) *CalendarDay {
	node, err := cdq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CalendarDay ID from the query.
// Returns a *NotFoundError when no CalendarDay ID was found.
func (cdq *CalendarDayQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cdq.Limit(1).IDs(setContextOp(ctx, cdq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{calendarday.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cdq *CalendarDayQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := cdq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CalendarDay entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CalendarDay entity is found.
// Returns a *NotFoundError when no CalendarDay entities are found.
func (cdq *CalendarDayQuery) Only(ctx context.Context) (*CalendarDay, error) {
	nodes, err := cdq.Limit(2).All(setContextOp(ctx, cdq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{calendarday.Label}
	default:
		return nil, &NotSingularError{calendarday.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cdq *CalendarDayQuery) OnlyX(ctx context.Context) *CalendarDay {
	node, err := cdq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CalendarDay ID in the query.
// Returns a *NotSingularError when more than one CalendarDay ID is found.
// Returns a *NotFoundError when no entities are found.
func (cdq *CalendarDayQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cdq.Limit(2).IDs(setContextOp(ctx, cdq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{calendarday.Label}
	default:
		err = &NotSingularError{calendarday.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cdq *CalendarDayQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := cdq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CalendarDays.
func (cdq *CalendarDayQuery) All(ctx context.Context) ([]*CalendarDay, error) {
	ctx = setContextOp(ctx, cdq.ctx, ent.OpQueryAll)
	if err := cdq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CalendarDay, *CalendarDayQuery]()
	return withInterceptors[[]*CalendarDay](ctx, cdq, qr, cdq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cdq *CalendarDayQuery) AllX(ctx context.Context) []*CalendarDay {
	nodes, err := cdq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CalendarDay IDs.
func (cdq *CalendarDayQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if cdq.ctx.Unique == nil && cdq.path != nil {
		cdq.Unique(true)
	}
	ctx = setContextOp(ctx, cdq.ctx, ent.OpQueryIDs)
	if err = cdq.Select(calendarday.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cdq *CalendarDayQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := cdq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cdq *CalendarDayQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cdq.ctx, ent.OpQueryCount)
	if err := cdq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cdq, querierCount[*CalendarDayQuery](), cdq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cdq *CalendarDayQuery) CountX(ctx context.Context) int {
	count, err := cdq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cdq *CalendarDayQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cdq.ctx, ent.OpQueryExist)
	switch _, err := cdq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cdq *CalendarDayQuery) ExistX(ctx context.Context) bool {
	exist, err := cdq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CalendarDayQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cdq *CalendarDayQuery) Clone() *CalendarDayQuery {
	if cdq == nil {
		return nil
	}
	return &CalendarDayQuery{
		config:     cdq.config,
		ctx:        cdq.ctx.Clone(),
		order:      append([]calendarday.OrderOption{}, cdq.order...),
		inters:     append([]Interceptor{}, cdq.inters...),
		predicates: append([]predicate.CalendarDay{}, cdq.predicates...),
		withSlots:  cdq.withSlots.Clone(),
		// clone intermediate query.
		sql:  cdq.sql.Clone(),
		path: cdq.path,
	}
}

// WithSlots tells the query-builder to eager-load the nodes that are connected to
// the "slots" edge. The optional arguments are used to configure the query builder of the edge.
func (cdq *CalendarDayQuery) WithSlots(opts ...func(*TimeSlotQuery)) *CalendarDayQuery {
	query := (&TimeSlotClient{config: cdq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cdq.withSlots = query
	return cdq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		InstructorID uuid.UUID `json:"instructor_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CalendarDay.Query().
//		GroupBy(calendarday.FieldInstructorID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (cdq *CalendarDayQuery) GroupBy(field string, fields ...string) *CalendarDayGroupBy {
	cdq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CalendarDayGroupBy{build: cdq}
	grbuild.flds = &cdq.ctx.Fields
	grbuild.label = calendarday.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		InstructorID uuid.UUID `json:"instructor_id,omitempty"`
//	}
//
//	client.CalendarDay.Query().
//		Select(calendarday.FieldInstructorID).
//		Scan(ctx, &v)
func (cdq *CalendarDayQuery) Select(fields ...string) *CalendarDaySelect {
	cdq.ctx.Fields = append(cdq.ctx.Fields, fields...)
	sbuild := &CalendarDaySelect{CalendarDayQuery: cdq}
	sbuild.label = calendarday.Label
	sbuild.flds, sbuild.scan = &cdq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CalendarDaySelect configured with the given aggregations.
func (cdq *CalendarDayQuery) Aggregate(fns ...AggregateFunc) *CalendarDaySelect {
	return cdq.Select().Aggregate(fns...)
}

func (cdq *CalendarDayQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cdq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cdq); err != nil {
				return err
			}
		}
	}
	for _, f := range cdq.ctx.Fields {
		if !calendarday.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if cdq.path != nil {
		prev, err := cdq.path(ctx)
		if err != nil {
			return err
		}
		cdq.sql = prev
	}
	return nil
}

func (cdq *CalendarDayQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CalendarDay, error) {
	var (
		nodes       = []*CalendarDay{}
		_spec       = cdq.querySpec()
		loadedTypes = [1]bool{
			cdq.withSlots != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CalendarDay).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CalendarDay{config: cdq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cdq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := cdq.withSlots; query != nil {
		if err := cdq.loadSlots(ctx, query, nodes,
			func(n *CalendarDay) { n.Edges.Slots = []*TimeSlot{} },
			func(n *CalendarDay, e *TimeSlot) { n.Edges.Slots = append(n.Edges.Slots, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (cdq *CalendarDayQuery) loadSlots(ctx context.Context, query *TimeSlotQuery, nodes []*CalendarDay, init func(*CalendarDay), assign func(*CalendarDay, *TimeSlot)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CalendarDay)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(timeslot.FieldDayID)
	}
	query.Where(predicate.TimeSlot(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(calendarday.SlotsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DayID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "day_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (cdq *CalendarDayQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cdq.querySpec()
	_spec.Node.Columns = cdq.ctx.Fields
	if len(cdq.ctx.Fields) > 0 {
		_spec.Unique = cdq.ctx.Unique != nil && *cdq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cdq.driver, _spec)
}

func (cdq *CalendarDayQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(calendarday.Table, calendarday.Columns, sqlgraph.NewFieldSpec(calendarday.FieldID, field.TypeUUID))
	_spec.From = cdq.sql
	if unique := cdq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cdq.path != nil {
		_spec.Unique = true
	}
	if fields := cdq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarday.FieldID)
		for i := range fields {
			if fields[i] != calendarday.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cdq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cdq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cdq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cdq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cdq *CalendarDayQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cdq.driver.Dialect())
	t1 := builder.Table(calendarday.Table)
	columns := cdq.ctx.Fields
	if len(columns) == 0 {
		columns = calendarday.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cdq.sql != nil {
		selector = cdq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cdq.ctx.Unique != nil && *cdq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cdq.predicates {
		p(selector)
	}
	for _, p := range cdq.order {
		p(selector)
	}
	if offset := cdq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cdq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CalendarDayGroupBy is the group-by builder for CalendarDay entities.
type CalendarDayGroupBy struct {
	selector
	build *CalendarDayQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cdgb *CalendarDayGroupBy) Aggregate(fns ...AggregateFunc) *CalendarDayGroupBy {
	cdgb.fns = append(cdgb.fns, fns...)
	return cdgb
}

// Scan applies the selector query and scans the result into the given value.
func (cdgb *CalendarDayGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cdgb.build.ctx, ent.OpQueryGroupBy)
	if err := cdgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CalendarDayQuery, *CalendarDayGroupBy](ctx, cdgb.build, cdgb, cdgb.build.inters, v)
}

func (cdgb *CalendarDayGroupBy) sqlScan(ctx context.Context, root *CalendarDayQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cdgb.fns))
	for _, fn := range cdgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cdgb.flds)+len(cdgb.fns))
		for _, f := range *cdgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cdgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cdgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CalendarDaySelect is the builder for selecting fields of CalendarDay entities.
type CalendarDaySelect struct {
	*CalendarDayQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cds *CalendarDaySelect) Aggregate(fns ...AggregateFunc) *CalendarDaySelect {
	cds.fns = append(cds.fns, fns...)
	return cds
}

// Scan applies the selector query and scans the result into the given value.
func (cds *CalendarDaySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cds.ctx, ent.OpQuerySelect)
	if err := cds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CalendarDayQuery, *CalendarDaySelect](ctx, cds.CalendarDayQuery, cds, cds.inters, v)
}

func (cds *CalendarDaySelect) sqlScan(ctx context.Context, root *CalendarDayQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cds.fns))
	for _, fn := range cds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
