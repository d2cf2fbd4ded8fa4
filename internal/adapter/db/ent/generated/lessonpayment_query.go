// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// LessonPaymentQuery is the builder for querying LessonPayment entities.
type LessonPaymentQuery struct {
	config
	ctx        *QueryContext
	order      []lessonpayment.OrderOption
	inters     []Interceptor
	predicates []predicate.LessonPayment
	withLesson *LessonQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LessonPaymentQuery builder.
func (lpq *LessonPaymentQuery) Where(ps ...predicate.LessonPayment) *LessonPaymentQuery {
	lpq.predicates = append(lpq.predicates, ps...)
	return lpq
}

// Limit the number of records to be returned by this query.
func (lpq *LessonPaymentQuery) Limit(limit int) *LessonPaymentQuery {
	lpq.ctx.Limit = &limit
	return lpq
}

// Offset to start from.
func (lpq *LessonPaymentQuery) Offset(offset int) *LessonPaymentQuery {
	lpq.ctx.Offset = &offset
	return lpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (lpq *LessonPaymentQuery) Unique(unique bool) *LessonPaymentQuery {
	lpq.ctx.Unique = &unique
	return lpq
}

// Order specifies how the records should be ordered.
func (lpq *LessonPaymentQuery) Order(o ...lessonpayment.OrderOption) *LessonPaymentQuery {
	lpq.order = append(lpq.order, o...)
	return lpq
}

// QueryLesson chains the current query on the "lesson" edge.
func (lpq *LessonPaymentQuery) QueryLesson() *LessonQuery {
	query := (&LessonClient{config: lpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := lpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := lpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lessonpayment.Table, lessonpayment.FieldID, selector),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, lessonpayment.LessonTable, lessonpayment.LessonColumn),
		)
		fromU = sqlgraph.SetNeighbors(lpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LessonPayment entity from the query.
// Returns a *NotFoundError when no LessonPayment was found.
func (lpq *LessonPaymentQuery) First(ctx context.Context) (*LessonPayment, error) {
	nodes, err := lpq.Limit(1).All(setContextOp(ctx, lpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lessonpayment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (lpq *LessonPaymentQuery) FirstX(ctx context.Context) *LessonPayment {
	node, err := lpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LessonPayment ID from the query.
// Returns a *NotFoundError when no LessonPayment ID was found.
func (lpq *LessonPaymentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = lpq.Limit(1).IDs(setContextOp(ctx, lpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lessonpayment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (lpq *LessonPaymentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := lpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LessonPayment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LessonPayment entity is found.
// Returns a *NotFoundError when no LessonPayment entities are found.
func (lpq *LessonPaymentQuery) Only(ctx context.Context) (*LessonPayment, error) {
	nodes, err := lpq.Limit(2).All(setContextOp(ctx, lpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lessonpayment.Label}
	default:
		return nil, &NotSingularError{lessonpayment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (lpq *LessonPaymentQuery) OnlyX(ctx context.Context) *LessonPayment {
	node, err := lpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LessonPayment ID in the query.
// Returns a *NotSingularError when more than one LessonPayment ID is found.
// Returns a *NotFoundError when no entities are found.
func (lpq *LessonPaymentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = lpq.Limit(2).IDs(setContextOp(ctx, lpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lessonpayment.Label}
	default:
		err = &NotSingularError{lessonpayment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (lpq *LessonPaymentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := lpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LessonPayments.
func (lpq *LessonPaymentQuery) All(ctx context.Context) ([]*LessonPayment, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryAll)
	if err := lpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LessonPayment, *LessonPaymentQuery]()
	return withInterceptors[[]*LessonPayment](ctx, lpq, qr, lpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (lpq *LessonPaymentQuery) AllX(ctx context.Context) []*LessonPayment {
	nodes, err := lpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LessonPayment IDs.
func (lpq *LessonPaymentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if lpq.ctx.Unique == nil && lpq.path != nil {
		lpq.Unique(true)
	}
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryIDs)
	if err = lpq.Select(lessonpayment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (lpq *LessonPaymentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := lpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (lpq *LessonPaymentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryCount)
	if err := lpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, lpq, querierCount[*LessonPaymentQuery](), lpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (lpq *LessonPaymentQuery) CountX(ctx context.Context) int {
	count, err := lpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (lpq *LessonPaymentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryExist)
	switch _, err := lpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (lpq *LessonPaymentQuery) ExistX(ctx context.Context) bool {
	exist, err := lpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LessonPaymentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (lpq *LessonPaymentQuery) Clone() *LessonPaymentQuery {
	if lpq == nil {
		return nil
	}
	return &LessonPaymentQuery{
		config:     lpq.config,
		ctx:        lpq.ctx.Clone(),
		order:      append([]lessonpayment.OrderOption{}, lpq.order...),
		inters:     append([]Interceptor{}, lpq.inters...),
		predicates: append([]predicate.LessonPayment{}, lpq.predicates...),
		withLesson: lpq.withLesson.Clone(),
		// clone intermediate query.
		sql:  lpq.sql.Clone(),
		path: lpq.path,
	}
}

// WithLesson tells the query-builder to eager-load the nodes that are connected to
// the "lesson" edge. The optional arguments are used to configure the query builder of the edge.
func (lpq *LessonPaymentQuery) WithLesson(opts ...func(*LessonQuery)) *LessonPaymentQuery {
	query := (&LessonClient{config: lpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	lpq.withLesson = query
	return lpq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LessonID uuid.UUID `json:"lesson_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LessonPayment.Query().
//		GroupBy(lessonpayment.FieldLessonID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (lpq *LessonPaymentQuery) GroupBy(field string, fields ...string) *LessonPaymentGroupBy {
	lpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LessonPaymentGroupBy{build: lpq}
	grbuild.flds = &lpq.ctx.Fields
	grbuild.label = lessonpayment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LessonID uuid.UUID `json:"lesson_id,omitempty"`
//	}
//
//	client.LessonPayment.Query().
//		Select(lessonpayment.FieldLessonID).
//		Scan(ctx, &v)
func (lpq *LessonPaymentQuery) Select(fields ...string) *LessonPaymentSelect {
	lpq.ctx.Fields = append(lpq.ctx.Fields, fields...)
	sbuild := &LessonPaymentSelect{LessonPaymentQuery: lpq}
	sbuild.label = lessonpayment.Label
	sbuild.flds, sbuild.scan = &lpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LessonPaymentSelect configured with the given aggregations.
func (lpq *LessonPaymentQuery) Aggregate(fns ...AggregateFunc) *LessonPaymentSelect {
	return lpq.Select().Aggregate(fns...)
}

func (lpq *LessonPaymentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range lpq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, lpq); err != nil {
				return err
			}
		}
	}
	for _, f := range lpq.ctx.Fields {
		if !lessonpayment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if lpq.path != nil {
		prev, err := lpq.path(ctx)
		if err != nil {
			return err
		}
		lpq.sql = prev
	}
	return nil
}

func (lpq *LessonPaymentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LessonPayment, error) {
	var (
		nodes       = []*LessonPayment{}
		_spec       = lpq.querySpec()
		loadedTypes = [1]bool{
			lpq.withLesson != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LessonPayment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LessonPayment{config: lpq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, lpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := lpq.withLesson; query != nil {
		if err := lpq.loadLesson(ctx, query, nodes, nil,
			func(n *LessonPayment, e *Lesson) { n.Edges.Lesson = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (lpq *LessonPaymentQuery) loadLesson(ctx context.Context, query *LessonQuery, nodes []*LessonPayment, init func(*LessonPayment), assign func(*LessonPayment, *Lesson)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LessonPayment)
	for i := range nodes {
		fk := nodes[i].LessonID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lesson.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lesson_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (lpq *LessonPaymentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := lpq.querySpec()
	_spec.Node.Columns = lpq.ctx.Fields
	if len(lpq.ctx.Fields) > 0 {
		_spec.Unique = lpq.ctx.Unique != nil && *lpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, lpq.driver, _spec)
}

func (lpq *LessonPaymentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lessonpayment.Table, lessonpayment.Columns, sqlgraph.NewFieldSpec(lessonpayment.FieldID, field.TypeUUID))
	_spec.From = lpq.sql
	if unique := lpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if lpq.path != nil {
		_spec.Unique = true
	}
	if fields := lpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonpayment.FieldID)
		for i := range fields {
			if fields[i] != lessonpayment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if lpq.withLesson != nil {
			_spec.Node.AddColumnOnce(lessonpayment.FieldLessonID)
		}
	}
	if ps := lpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := lpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := lpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := lpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (lpq *LessonPaymentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(lpq.driver.Dialect())
	t1 := builder.Table(lessonpayment.Table)
	columns := lpq.ctx.Fields
	if len(columns) == 0 {
		columns = lessonpayment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if lpq.sql != nil {
		selector = lpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if lpq.ctx.Unique != nil && *lpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range lpq.predicates {
		p(selector)
	}
	for _, p := range lpq.order {
		p(selector)
	}
	if offset := lpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := lpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LessonPaymentGroupBy is the group-by builder for LessonPayment entities.
type LessonPaymentGroupBy struct {
	selector
	build *LessonPaymentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lpgb *LessonPaymentGroupBy) Aggregate(fns ...AggregateFunc) *LessonPaymentGroupBy {
	lpgb.fns = append(lpgb.fns, fns...)
	return lpgb
}

// Scan applies the selector query and scans the result into the given value.
func (lpgb *LessonPaymentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lpgb.build.ctx, ent.OpQueryGroupBy)
	if err := lpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonPaymentQuery, *LessonPaymentGroupBy](ctx, lpgb.build, lpgb, lpgb.build.inters, v)
}

func (lpgb *LessonPaymentGroupBy) sqlScan(ctx context.Context, root *LessonPaymentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lpgb.fns))
	for _, fn := range lpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lpgb.flds)+len(lpgb.fns))
		for _, f := range *lpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LessonPaymentSelect is the builder for selecting fields of LessonPayment entities.
type LessonPaymentSelect struct {
	*LessonPaymentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lps *LessonPaymentSelect) Aggregate(fns ...AggregateFunc) *LessonPaymentSelect {
	lps.fns = append(lps.fns, fns...)
	return lps
}

// Scan applies the selector query and scans the result into the given value.
func (lps *LessonPaymentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lps.ctx, ent.OpQuerySelect)
	if err := lps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonPaymentQuery, *LessonPaymentSelect](ctx, lps.LessonPaymentQuery, lps, lps.inters, v)
}

func (lps *LessonPaymentSelect) sqlScan(ctx context.Context, root *LessonPaymentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lps.fns))
	for _, fn := range lps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
