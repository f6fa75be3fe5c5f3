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
	"github.com/priyam/studytrail/ent/syncitem"
)

// SyncItemQuery is the builder for querying SyncItem entities.
type SyncItemQuery struct {
	config
	ctx        *QueryContext
	order      []syncitem.OrderOption
	inters     []Interceptor
	predicates []predicate.SyncItem
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SyncItemQuery builder.
func (siq *SyncItemQuery) Where(ps ...predicate.SyncItem) *SyncItemQuery {
	siq.predicates = append(siq.predicates, ps...)
	return siq
}

// Limit the number of records to be returned by this query.
func (siq *SyncItemQuery) Limit(limit int) *SyncItemQuery {
	siq.ctx.Limit = &limit
	return siq
}

// Offset to start from.
func (siq *SyncItemQuery) Offset(offset int) *SyncItemQuery {
	siq.ctx.Offset = &offset
	return siq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (siq *SyncItemQuery) Unique(unique bool) *SyncItemQuery {
	siq.ctx.Unique = &unique
	return siq
}

// Order specifies how the records should be ordered.
func (siq *SyncItemQuery) Order(o ...syncitem.OrderOption) *SyncItemQuery {
	siq.order = append(siq.order, o...)
	return siq
}

// First returns the first SyncItem entity from the query.
// Returns a *NotFoundError when no SyncItem was found.
func (siq *SyncItemQuery) First(ctx context.Context) (*SyncItem, error) {
	nodes, err := siq.Limit(1).All(setContextOp(ctx, siq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{syncitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (siq *SyncItemQuery) FirstX(ctx context.Context) *SyncItem {
	node, err := siq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SyncItem ID from the query.
// Returns a *NotFoundError when no SyncItem ID was found.
func (siq *SyncItemQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = siq.Limit(1).IDs(setContextOp(ctx, siq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{syncitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (siq *SyncItemQuery) FirstIDX(ctx context.Context) int {
	id, err := siq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SyncItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SyncItem entity is found.
// Returns a *NotFoundError when no SyncItem entities are found.
func (siq *SyncItemQuery) Only(ctx context.Context) (*SyncItem, error) {
	nodes, err := siq.Limit(2).All(setContextOp(ctx, siq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{syncitem.Label}
	default:
		return nil, &NotSingularError{syncitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (siq *SyncItemQuery) OnlyX(ctx context.Context) *SyncItem {
	node, err := siq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SyncItem ID in the query.
// Returns a *NotSingularError when more than one SyncItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (siq *SyncItemQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = siq.Limit(2).IDs(setContextOp(ctx, siq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{syncitem.Label}
	default:
		err = &NotSingularError{syncitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (siq *SyncItemQuery) OnlyIDX(ctx context.Context) int {
	id, err := siq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SyncItems.
func (siq *SyncItemQuery) All(ctx context.Context) ([]*SyncItem, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryAll)
	if err := siq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SyncItem, *SyncItemQuery]()
	return withInterceptors[[]*SyncItem](ctx, siq, qr, siq.inters)
}

// AllX is like All, but panics if an error occurs.
func (siq *SyncItemQuery) AllX(ctx context.Context) []*SyncItem {
	nodes, err := siq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SyncItem IDs.
func (siq *SyncItemQuery) IDs(ctx context.Context) (ids []int, err error) {
	if siq.ctx.Unique == nil && siq.path != nil {
		siq.Unique(true)
	}
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryIDs)
	if err = siq.Select(syncitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (siq *SyncItemQuery) IDsX(ctx context.Context) []int {
	ids, err := siq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (siq *SyncItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryCount)
	if err := siq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, siq, querierCount[*SyncItemQuery](), siq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (siq *SyncItemQuery) CountX(ctx context.Context) int {
	count, err := siq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (siq *SyncItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryExist)
	switch _, err := siq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (siq *SyncItemQuery) ExistX(ctx context.Context) bool {
	exist, err := siq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SyncItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (siq *SyncItemQuery) Clone() *SyncItemQuery {
	if siq == nil {
		return nil
	}
	return &SyncItemQuery{
		config:     siq.config,
		ctx:        siq.ctx.Clone(),
		order:      append([]syncitem.OrderOption{}, siq.order...),
		inters:     append([]Interceptor{}, siq.inters...),
		predicates: append([]predicate.SyncItem{}, siq.predicates...),
		// clone intermediate query.
		sql:  siq.sql.Clone(),
		path: siq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Seq int64 `json:"seq,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SyncItem.Query().
//		GroupBy(syncitem.FieldSeq).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (siq *SyncItemQuery) GroupBy(field string, fields ...string) *SyncItemGroupBy {
	siq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SyncItemGroupBy{build: siq}
	grbuild.flds = &siq.ctx.Fields
	grbuild.label = syncitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Seq int64 `json:"seq,omitempty"`
//	}
//
//	client.SyncItem.Query().
//		Select(syncitem.FieldSeq).
//		Scan(ctx, &v)
func (siq *SyncItemQuery) Select(fields ...string) *SyncItemSelect {
	siq.ctx.Fields = append(siq.ctx.Fields, fields...)
	sbuild := &SyncItemSelect{SyncItemQuery: siq}
	sbuild.label = syncitem.Label
	sbuild.flds, sbuild.scan = &siq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SyncItemSelect configured with the given aggregations.
func (siq *SyncItemQuery) Aggregate(fns ...AggregateFunc) *SyncItemSelect {
	return siq.Select().Aggregate(fns...)
}

func (siq *SyncItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range siq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, siq); err != nil {
				return err
			}
		}
	}
	for _, f := range siq.ctx.Fields {
		if !syncitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if siq.path != nil {
		prev, err := siq.path(ctx)
		if err != nil {
			return err
		}
		siq.sql = prev
	}
	return nil
}

func (siq *SyncItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SyncItem, error) {
	var (
		nodes = []*SyncItem{}
		_spec = siq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SyncItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SyncItem{config: siq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, siq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (siq *SyncItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := siq.querySpec()
	_spec.Node.Columns = siq.ctx.Fields
	if len(siq.ctx.Fields) > 0 {
		_spec.Unique = siq.ctx.Unique != nil && *siq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, siq.driver, _spec)
}

func (siq *SyncItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(syncitem.Table, syncitem.Columns, sqlgraph.NewFieldSpec(syncitem.FieldID, field.TypeInt))
	_spec.From = siq.sql
	if unique := siq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if siq.path != nil {
		_spec.Unique = true
	}
	if fields := siq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncitem.FieldID)
		for i := range fields {
			if fields[i] != syncitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := siq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := siq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := siq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := siq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (siq *SyncItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(siq.driver.Dialect())
	t1 := builder.Table(syncitem.Table)
	columns := siq.ctx.Fields
	if len(columns) == 0 {
		columns = syncitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if siq.sql != nil {
		selector = siq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if siq.ctx.Unique != nil && *siq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range siq.predicates {
		p(selector)
	}
	for _, p := range siq.order {
		p(selector)
	}
	if offset := siq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := siq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SyncItemGroupBy is the group-by builder for SyncItem entities.
type SyncItemGroupBy struct {
	selector
	build *SyncItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sigb *SyncItemGroupBy) Aggregate(fns ...AggregateFunc) *SyncItemGroupBy {
	sigb.fns = append(sigb.fns, fns...)
	return sigb
}

// Scan applies the selector query and scans the result into the given value.
func (sigb *SyncItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sigb.build.ctx, ent.OpQueryGroupBy)
	if err := sigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SyncItemQuery, *SyncItemGroupBy](ctx, sigb.build, sigb, sigb.build.inters, v)
}

func (sigb *SyncItemGroupBy) sqlScan(ctx context.Context, root *SyncItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sigb.fns))
	for _, fn := range sigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sigb.flds)+len(sigb.fns))
		for _, f := range *sigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SyncItemSelect is the builder for selecting fields of SyncItem entities.
type SyncItemSelect struct {
	*SyncItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sis *SyncItemSelect) Aggregate(fns ...AggregateFunc) *SyncItemSelect {
	sis.fns = append(sis.fns, fns...)
	return sis
}

// Scan applies the selector query and scans the result into the given value.
func (sis *SyncItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sis.ctx, ent.OpQuerySelect)
	if err := sis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SyncItemQuery, *SyncItemSelect](ctx, sis.SyncItemQuery, sis, sis.inters, v)
}

func (sis *SyncItemSelect) sqlScan(ctx context.Context, root *SyncItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sis.fns))
	for _, fn := range sis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
