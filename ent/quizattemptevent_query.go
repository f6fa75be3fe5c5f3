// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/predicate"
	"github.com/priyam/studytrail/ent/quizattemptevent"
)

// QuizAttemptEventQuery is the builder for querying QuizAttemptEvent entities.
type QuizAttemptEventQuery struct {
	config
	ctx        *QueryContext
	order      []quizattemptevent.OrderOption
	inters     []Interceptor
	predicates []predicate.QuizAttemptEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuizAttemptEventQuery builder.
func (qaeq *QuizAttemptEventQuery) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventQuery {
	qaeq.predicates = append(qaeq.predicates, ps...)
	return qaeq
}

// Limit the number of records to be returned by this query.
func (qaeq *QuizAttemptEventQuery) Limit(limit int) *QuizAttemptEventQuery {
	qaeq.ctx.Limit = &limit
	return qaeq
}

// Offset to start from.
func (qaeq *QuizAttemptEventQuery) Offset(offset int) *QuizAttemptEventQuery {
	qaeq.ctx.Offset = &offset
	return qaeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qaeq *QuizAttemptEventQuery) Unique(unique bool) *QuizAttemptEventQuery {
	qaeq.ctx.Unique = &unique
	return qaeq
}

// Order specifies how the records should be ordered.
func (qaeq *QuizAttemptEventQuery) Order(o ...quizattemptevent.OrderOption) *QuizAttemptEventQuery {
	qaeq.order = append(qaeq.order, o...)
	return qaeq
}

// First returns the first QuizAttemptEvent entity from the query.
// Returns a *NotFoundError when no QuizAttemptEvent was found.
func (qaeq *QuizAttemptEventQuery) First(ctx context.Context) (*QuizAttemptEvent, error) {
	nodes, err := qaeq.Limit(1).All(setContextOp(ctx, qaeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quizattemptevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) FirstX(ctx context.Context) *QuizAttemptEvent {
	node, err := qaeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuizAttemptEvent ID from the query.
// Returns a *NotFoundError when no QuizAttemptEvent ID was found.
func (qaeq *QuizAttemptEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qaeq.Limit(1).IDs(setContextOp(ctx, qaeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quizattemptevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) FirstIDX(ctx context.Context) int {
	id, err := qaeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuizAttemptEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuizAttemptEvent entity is found.
// Returns a *NotFoundError when no QuizAttemptEvent entities are found.
func (qaeq *QuizAttemptEventQuery) Only(ctx context.Context) (*QuizAttemptEvent, error) {
	nodes, err := qaeq.Limit(2).All(setContextOp(ctx, qaeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quizattemptevent.Label}
	default:
		return nil, &NotSingularError{quizattemptevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) OnlyX(ctx context.Context) *QuizAttemptEvent {
	node, err := qaeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuizAttemptEvent ID in the query.
// Returns a *NotSingularError when more than one QuizAttemptEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (qaeq *QuizAttemptEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qaeq.Limit(2).IDs(setContextOp(ctx, qaeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quizattemptevent.Label}
	default:
		err = &NotSingularError{quizattemptevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := qaeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuizAttemptEvents.
func (qaeq *QuizAttemptEventQuery) All(ctx context.Context) ([]*QuizAttemptEvent, error) {
	ctx = setContextOp(ctx, qaeq.ctx, ent.OpQueryAll)
	if err := qaeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuizAttemptEvent, *QuizAttemptEventQuery]()
	return withInterceptors[[]*QuizAttemptEvent](ctx, qaeq, qr, qaeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) AllX(ctx context.Context) []*QuizAttemptEvent {
	nodes, err := qaeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuizAttemptEvent IDs.
func (qaeq *QuizAttemptEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if qaeq.ctx.Unique == nil && qaeq.path != nil {
		qaeq.Unique(true)
	}
	ctx = setContextOp(ctx, qaeq.ctx, ent.OpQueryIDs)
	if err = qaeq.Select(quizattemptevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) IDsX(ctx context.Context) []int {
	ids, err := qaeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qaeq *QuizAttemptEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qaeq.ctx, ent.OpQueryCount)
	if err := qaeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qaeq, querierCount[*QuizAttemptEventQuery](), qaeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) CountX(ctx context.Context) int {
	count, err := qaeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qaeq *QuizAttemptEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qaeq.ctx, ent.OpQueryExist)
	switch _, err := qaeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qaeq *QuizAttemptEventQuery) ExistX(ctx context.Context) bool {
	exist, err := qaeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuizAttemptEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qaeq *QuizAttemptEventQuery) Clone() *QuizAttemptEventQuery {
	if qaeq == nil {
		return nil
	}
	return &QuizAttemptEventQuery{
		config:     qaeq.config,
		ctx:        qaeq.ctx.Clone(),
		order:      append([]quizattemptevent.OrderOption{}, qaeq.order...),
		inters:     append([]Interceptor{}, qaeq.inters...),
		predicates: append([]predicate.QuizAttemptEvent{}, qaeq.predicates...),
		// clone intermediate query.
		sql:  qaeq.sql.Clone(),
		path: qaeq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuizAttemptEvent.Query().
//		GroupBy(quizattemptevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qaeq *QuizAttemptEventQuery) GroupBy(field string, fields ...string) *QuizAttemptEventGroupBy {
	qaeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuizAttemptEventGroupBy{build: qaeq}
	grbuild.flds = &qaeq.ctx.Fields
	grbuild.label = quizattemptevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.QuizAttemptEvent.Query().
//		Select(quizattemptevent.FieldSequence).
//		Scan(ctx, &v)
func (qaeq *QuizAttemptEventQuery) Select(fields ...string) *QuizAttemptEventSelect {
	qaeq.ctx.Fields = append(qaeq.ctx.Fields, fields...)
	sbuild := &QuizAttemptEventSelect{QuizAttemptEventQuery: qaeq}
	sbuild.label = quizattemptevent.Label
	sbuild.flds, sbuild.scan = &qaeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuizAttemptEventSelect configured with the given aggregations.
func (qaeq *QuizAttemptEventQuery) Aggregate(fns ...AggregateFunc) *QuizAttemptEventSelect {
	return qaeq.Select().Aggregate(fns...)
}

func (qaeq *QuizAttemptEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qaeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qaeq); err != nil {
				return err
			}
		}
	}
	for _, f := range qaeq.ctx.Fields {
		if !quizattemptevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qaeq.path != nil {
		prev, err := qaeq.path(ctx)
		if err != nil {
			return err
		}
		qaeq.sql = prev
	}
	return nil
}

func (qaeq *QuizAttemptEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuizAttemptEvent, error) {
	var (
		nodes = []*QuizAttemptEvent{}
		_spec = qaeq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuizAttemptEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuizAttemptEvent{config: qaeq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qaeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qaeq *QuizAttemptEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qaeq.querySpec()
	_spec.Node.Columns = qaeq.ctx.Fields
	if len(qaeq.ctx.Fields) > 0 {
		_spec.Unique = qaeq.ctx.Unique != nil && *qaeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qaeq.driver, _spec)
}

func (qaeq *QuizAttemptEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	_spec.From = qaeq.sql
	if unique := qaeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qaeq.path != nil {
		_spec.Unique = true
	}
	if fields := qaeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattemptevent.FieldID)
		for i := range fields {
			if fields[i] != quizattemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qaeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qaeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qaeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qaeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qaeq *QuizAttemptEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qaeq.driver.Dialect())
	t1 := builder.Table(quizattemptevent.Table)
	columns := qaeq.ctx.Fields
	if len(columns) == 0 {
		columns = quizattemptevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qaeq.sql != nil {
		selector = qaeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qaeq.ctx.Unique != nil && *qaeq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qaeq.predicates {
		p(selector)
	}
	for _, p := range qaeq.order {
		p(selector)
	}
	if offset := qaeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qaeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuizAttemptEventGroupBy is the group-by builder for QuizAttemptEvent entities.
type QuizAttemptEventGroupBy struct {
	selector
	build *QuizAttemptEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qaegb *QuizAttemptEventGroupBy) Aggregate(fns ...AggregateFunc) *QuizAttemptEventGroupBy {
	qaegb.fns = append(qaegb.fns, fns...)
	return qaegb
}

// Scan applies the selector query and scans the result into the given value.
func (qaegb *QuizAttemptEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qaegb.build.ctx, ent.OpQueryGroupBy)
	if err := qaegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizAttemptEventQuery, *QuizAttemptEventGroupBy](ctx, qaegb.build, qaegb, qaegb.build.inters, v)
}

func (qaegb *QuizAttemptEventGroupBy) sqlScan(ctx context.Context, root *QuizAttemptEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qaegb.fns))
	for _, fn := range qaegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qaegb.flds)+len(qaegb.fns))
		for _, f := range *qaegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qaegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qaegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuizAttemptEventSelect is the builder for selecting fields of QuizAttemptEvent entities.
type QuizAttemptEventSelect struct {
	*QuizAttemptEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qaes *QuizAttemptEventSelect) Aggregate(fns ...AggregateFunc) *QuizAttemptEventSelect {
	qaes.fns = append(qaes.fns, fns...)
	return qaes
}

// Scan applies the selector query and scans the result into the given value.
func (qaes *QuizAttemptEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qaes.ctx, ent.OpQuerySelect)
	if err := qaes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizAttemptEventQuery, *QuizAttemptEventSelect](ctx, qaes.QuizAttemptEventQuery, qaes, qaes.inters, v)
}

func (qaes *QuizAttemptEventSelect) sqlScan(ctx context.Context, root *QuizAttemptEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qaes.fns))
	for _, fn := range qaes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qaes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qaes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
