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
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/google/uuid"
)

// TimeSlotQuery is the builder for querying TimeSlot entities.
type TimeSlotQuery struct {
	config
	ctx         *QueryContext
	order       []timeslot.OrderOption
	inters      []Interceptor
	predicates  []predicate.TimeSlot
	withDay     *CalendarDayQuery
	withLessons *LessonQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TimeSlotQuery builder.
func (tsq *TimeSlotQuery) Where(ps ...predicate.TimeSlot) *TimeSlotQuery {
	tsq.predicates = append(tsq.predicates, ps...)
	return tsq
}

// Limit the number of records to be returned by this query.
func (tsq *TimeSlotQuery) Limit(limit int) *TimeSlotQuery {
	tsq.ctx.Limit = &limit
	return tsq
}

// Offset to start from.
func (tsq *TimeSlotQuery) Offset(offset int) *TimeSlotQuery {
	tsq.ctx.Offset = &offset
	return tsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tsq *TimeSlotQuery) Unique(unique bool) *TimeSlotQuery {
	tsq.ctx.Unique = &unique
	return tsq
}

// Order specifies how the records should be ordered.
func (tsq *TimeSlotQuery) Order(o ...timeslot.OrderOption) *TimeSlotQuery {
	tsq.order = append(tsq.order, o...)
	return tsq
}

// QueryDay chains the current query on the "day" edge.
func (tsq *TimeSlotQuery) QueryDay() *CalendarDayQuery {
	query := (&CalendarDayClient{config: tsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timeslot.Table, timeslot.FieldID, selector),
			sqlgraph.To(calendarday.Table, calendarday.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timeslot.DayTable, timeslot.DayColumn),
		)
		fromU = sqlgraph.SetNeighbors(tsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLessons chains the current query on the "lessons" edge.
func (tsq *TimeSlotQuery) QueryLessons() *LessonQuery {
	query := (&LessonClient{config: tsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timeslot.Table, timeslot.FieldID, selector),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, timeslot.LessonsTable, timeslot.LessonsColumn),
		)
		fromU = sqlgraph.SetNeighbors(tsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TimeSlot entity from the query.
// Returns a *NotFoundError when no TimeSlot was found.
func (tsq *TimeSlotQuery) First(ctx context.Context) (*TimeSlot, error) {
	nodes, err := tsq.Limit(1).All(setContextOp(ctx, tsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{timeslot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tsq *TimeSlotQuery) FirstX(ctx context.Context) *TimeSlot {
	node, err := tsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TimeSlot ID from the query.
// Returns a *NotFoundError when no TimeSlot ID was found.
func (tsq *TimeSlotQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = tsq.Limit(1).IDs(setContextOp(ctx, tsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{timeslot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tsq *TimeSlotQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := tsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TimeSlot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TimeSlot entity is found.
// Returns a *NotFoundError when no TimeSlot entities are found.
func (tsq *TimeSlotQuery) Only(ctx context.Context) (*TimeSlot, error) {
	nodes, err := tsq.Limit(2).All(setContextOp(ctx, tsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{timeslot.Label}
	default:
		return nil, &NotSingularError{timeslot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tsq *TimeSlotQuery) OnlyX(ctx context.Context) *TimeSlot {
	node, err := tsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TimeSlot ID in the query.
// Returns a *NotSingularError when more than one TimeSlot ID is found.
// Returns a *NotFoundError when no entities are found.
func (tsq *TimeSlotQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = tsq.Limit(2).IDs(setContextOp(ctx, tsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{timeslot.Label}
	default:
		err = &NotSingularError{timeslot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tsq *TimeSlotQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := tsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TimeSlots.
func (tsq *TimeSlotQuery) All(ctx context.Context) ([]*TimeSlot, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryAll)
	if err := tsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TimeSlot, *TimeSlotQuery]()
	return withInterceptors[[]*TimeSlot](ctx, tsq, qr, tsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tsq *TimeSlotQuery) AllX(ctx context.Context) []*TimeSlot {
	nodes, err := tsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TimeSlot IDs.
func (tsq *TimeSlotQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if tsq.ctx.Unique == nil && tsq.path != nil {
		tsq.Unique(true)
	}
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryIDs)
	if err = tsq.Select(timeslot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tsq *TimeSlotQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := tsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tsq *TimeSlotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryCount)
	if err := tsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tsq, querierCount[*TimeSlotQuery](), tsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tsq *TimeSlotQuery) CountX(ctx context.Context) int {
	count, err := tsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tsq *TimeSlotQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryExist)
	switch _, err := tsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tsq *TimeSlotQuery) ExistX(ctx context.Context) bool {
	exist, err := tsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TimeSlotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tsq *TimeSlotQuery) Clone() *TimeSlotQuery {
	if tsq == nil {
		return nil
	}
	return &TimeSlotQuery{
		config:      tsq.config,
		ctx:         tsq.ctx.Clone(),
		order:       append([]timeslot.OrderOption{}, tsq.order...),
		inters:      append([]Interceptor{}, tsq.inters...),
		predicates:  append([]predicate.TimeSlot{}, tsq.predicates...),
		withDay:     tsq.withDay.Clone(),
		withLessons: tsq.withLessons.Clone(),
		// clone intermediate query.
		sql:  tsq.sql.Clone(),
		path: tsq.path,
	}
}

// WithDay tells the query-builder to eager-load the nodes that are connected to
// the "day" edge. The optional arguments are used to configure the query builder of the edge.
func (tsq *TimeSlotQuery) WithDay(opts ...func(*CalendarDayQuery)) *TimeSlotQuery {
	query := (&CalendarDayClient{config: tsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tsq.withDay = query
	return tsq
}

// WithLessons tells the query-builder to eager-load the nodes that are connected to
// the "lessons" edge. The optional arguments are used to configure the query builder of the edge.
func (tsq *TimeSlotQuery) WithLessons(opts ...func(*LessonQuery)) *TimeSlotQuery {
	query := (&LessonClient{config: tsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tsq.withLessons = query
	return tsq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DayID uuid.UUID `json:"day_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TimeSlot.Query().
//		GroupBy(timeslot.FieldDayID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (tsq *TimeSlotQuery) GroupBy(field string, fields ...string) *TimeSlotGroupBy {
	tsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TimeSlotGroupBy{build: tsq}
	grbuild.flds = &tsq.ctx.Fields
	grbuild.label = timeslot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DayID uuid.UUID `json:"day_id,omitempty"`
//	}
//
//	client.TimeSlot.Query().
//		Select(timeslot.FieldDayID).
//		Scan(ctx, &v)
func (tsq *TimeSlotQuery) Select(fields ...string) *TimeSlotSelect {
	tsq.ctx.Fields = append(tsq.ctx.Fields, fields...)
	sbuild := &TimeSlotSelect{TimeSlotQuery: tsq}
	sbuild.label = timeslot.Label
	sbuild.flds, sbuild.scan = &tsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TimeSlotSelect configured with the given aggregations.
func (tsq *TimeSlotQuery) Aggregate(fns ...AggregateFunc) *TimeSlotSelect {
	return tsq.Select().Aggregate(fns...)
}

func (tsq *TimeSlotQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tsq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tsq); err != nil {
				return err
			}
		}
	}
	for _, f := range tsq.ctx.Fields {
		if !timeslot.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if tsq.path != nil {
		prev, err := tsq.path(ctx)
		if err != nil {
			return err
		}
		tsq.sql = prev
	}
	return nil
}

func (tsq *TimeSlotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TimeSlot, error) {
	var (
		nodes       = []*TimeSlot{}
		_spec       = tsq.querySpec()
		loadedTypes = [2]bool{
			tsq.withDay != nil,
			tsq.withLessons != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TimeSlot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TimeSlot{config: tsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := tsq.withDay; query != nil {
		if err := tsq.loadDay(ctx, query, nodes, nil,
			func(n *TimeSlot, e *CalendarDay) { n.Edges.Day = e }); err != nil {
			return nil, err
		}
	}
	if query := tsq.withLessons; query != nil {
		if err := tsq.loadLessons(ctx, query, nodes,
			func(n *TimeSlot) { n.Edges.Lessons = []*Lesson{} },
			func(n *TimeSlot, e *Lesson) { n.Edges.Lessons = append(n.Edges.Lessons, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (tsq *TimeSlotQuery) loadDay(ctx context.Context, query *CalendarDayQuery, nodes []*TimeSlot, init func(*TimeSlot), assign func(*TimeSlot, *CalendarDay)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TimeSlot)
	for i := range nodes {
		fk := nodes[i].DayID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(calendarday.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "day_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (tsq *TimeSlotQuery) loadLessons(ctx context.Context, query *LessonQuery, nodes []*TimeSlot, init func(*TimeSlot), assign func(*TimeSlot, *Lesson)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*TimeSlot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lesson.FieldSlotID)
	}
	query.Where(predicate.Lesson(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(timeslot.LessonsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SlotID
		if fk == nil {
			return fmt.Errorf(`foreign-key "slot_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "slot_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (tsq *TimeSlotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tsq.querySpec()
	_spec.Node.Columns = tsq.ctx.Fields
	if len(tsq.ctx.Fields) > 0 {
		_spec.Unique = tsq.ctx.Unique != nil && *tsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tsq.driver, _spec)
}

func (tsq *TimeSlotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(timeslot.Table, timeslot.Columns, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	_spec.From = tsq.sql
	if unique := tsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tsq.path != nil {
		_spec.Unique = true
	}
	if fields := tsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeslot.FieldID)
		for i := range fields {
			if fields[i] != timeslot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if tsq.withDay != nil {
			_spec.Node.AddColumnOnce(timeslot.FieldDayID)
		}
	}
	if ps := tsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tsq *TimeSlotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tsq.driver.Dialect())
	t1 := builder.Table(timeslot.Table)
	columns := tsq.ctx.Fields
	if len(columns) == 0 {
		columns = timeslot.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tsq.sql != nil {
		selector = tsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tsq.ctx.Unique != nil && *tsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tsq.predicates {
		p(selector)
	}
	for _, p := range tsq.order {
		p(selector)
	}
	if offset := tsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TimeSlotGroupBy is the group-by builder for TimeSlot entities.
type TimeSlotGroupBy struct {
	selector
	build *TimeSlotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tsgb *TimeSlotGroupBy) Aggregate(fns ...AggregateFunc) *TimeSlotGroupBy {
	tsgb.fns = append(tsgb.fns, fns...)
	return tsgb
}

// Scan applies the selector query and scans the result into the given value.
func (tsgb *TimeSlotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tsgb.build.ctx, ent.OpQueryGroupBy)
	if err := tsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimeSlotQuery, *TimeSlotGroupBy](ctx, tsgb.build, tsgb, tsgb.build.inters, v)
}

func (tsgb *TimeSlotGroupBy) sqlScan(ctx context.Context, root *TimeSlotQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tsgb.fns))
	for _, fn := range tsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tsgb.flds)+len(tsgb.fns))
		for _, f := range *tsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TimeSlotSelect is the builder for selecting fields of TimeSlot entities.
type TimeSlotSelect struct {
	*TimeSlotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tss *TimeSlotSelect) Aggregate(fns ...AggregateFunc) *TimeSlotSelect {
	tss.fns = append(tss.fns, fns...)
	return tss
}

// Scan applies the selector query and scans the result into the given value.
func (tss *TimeSlotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tss.ctx, ent.OpQuerySelect)
	if err := tss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimeSlotQuery, *TimeSlotSelect](ctx, tss.TimeSlotQuery, tss, tss.inters, v)
}

func (tss *TimeSlotSelect) sqlScan(ctx context.Context, root *TimeSlotQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tss.fns))
	for _, fn := range tss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
