// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// WeightOverrideQuery is the builder for querying WeightOverride entities.
type WeightOverrideQuery struct {
	config
	ctx        *QueryContext
	order      []weightoverride.OrderOption
	inters     []Interceptor
	predicates []predicate.WeightOverride
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WeightOverrideQuery builder.
func (woq *WeightOverrideQuery) Where(ps ...predicate.WeightOverride) *WeightOverrideQuery {
	woq.predicates = append(woq.predicates, ps...)
	return woq
}

// Limit the number of records to be returned by this query.
func (woq *WeightOverrideQuery) Limit(limit int) *WeightOverrideQuery {
	woq.ctx.Limit = &limit
	return woq
}

// Offset to start from.
func (woq *WeightOverrideQuery) Offset(offset int) *WeightOverrideQuery {
	woq.ctx.Offset = &offset
	return woq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (woq *WeightOverrideQuery) Unique(unique bool) *WeightOverrideQuery {
	woq.ctx.Unique = &unique
	return woq
}

// Order specifies how the records should be ordered.
func (woq *WeightOverrideQuery) Order(o ...weightoverride.OrderOption) *WeightOverrideQuery {
	woq.order = append(woq.order, o...)
	return woq
}

// First returns the first WeightOverride entity from the query.
// Returns a *NotFoundError when no WeightOverride was found.
func (woq *WeightOverrideQuery) First(ctx context.Context) (*WeightOverride, error) {
	nodes, err := woq.Limit(1).All(setContextOp(ctx, woq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{weightoverride.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (woq *WeightOverrideQuery) FirstX(ctx context.Context) *WeightOverride {
	node, err := woq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WeightOverride ID from the query.
// Returns a *NotFoundError when no WeightOverride ID was found.
func (woq *WeightOverrideQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = woq.Limit(1).IDs(setContextOp(ctx, woq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{weightoverride.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (woq *WeightOverrideQuery) FirstIDX(ctx context.Context) int {
	id, err := woq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WeightOverride entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WeightOverride entity is found.
// Returns a *NotFoundError when no WeightOverride entities are found.
func (woq *WeightOverrideQuery) Only(ctx context.Context) (*WeightOverride, error) {
	nodes, err := woq.Limit(2).All(setContextOp(ctx, woq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{weightoverride.Label}
	default:
		return nil, &NotSingularError{weightoverride.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (woq *WeightOverrideQuery) OnlyX(ctx context.Context) *WeightOverride {
	node, err := woq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WeightOverride ID in the query.
// Returns a *NotSingularError when more than one WeightOverride ID is found.
// Returns a *NotFoundError when no entities are found.
func (woq *WeightOverrideQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = woq.Limit(2).IDs(setContextOp(ctx, woq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{weightoverride.Label}
	default:
		err = &NotSingularError{weightoverride.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (woq *WeightOverrideQuery) OnlyIDX(ctx context.Context) int {
	id, err := woq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WeightOverrides.
func (woq *WeightOverrideQuery) All(ctx context.Context) ([]*WeightOverride, error) {
	ctx = setContextOp(ctx, woq.ctx, "All")
	if err := woq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WeightOverride, *WeightOverrideQuery]()
	return withInterceptors[[]*WeightOverride](ctx, woq, qr, woq.inters)
}

// AllX is like All, but panics if an error occurs.
func (woq *WeightOverrideQuery) AllX(ctx context.Context) []*WeightOverride {
	nodes, err := woq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WeightOverride IDs.
func (woq *WeightOverrideQuery) IDs(ctx context.Context) (ids []int, err error) {
	if woq.ctx.Unique == nil && woq.path != nil {
		woq.Unique(true)
	}
	ctx = setContextOp(ctx, woq.ctx, "IDs")
	if err = woq.Select(weightoverride.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (woq *WeightOverrideQuery) IDsX(ctx context.Context) []int {
	ids, err := woq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (woq *WeightOverrideQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, woq.ctx, "Count")
	if err := woq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, woq, querierCount[*WeightOverrideQuery](), woq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (woq *WeightOverrideQuery) CountX(ctx context.Context) int {
	count, err := woq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (woq *WeightOverrideQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, woq.ctx, "Exist")
	switch _, err := woq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (woq *WeightOverrideQuery) ExistX(ctx context.Context) bool {
	exist, err := woq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WeightOverrideQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (woq *WeightOverrideQuery) Clone() *WeightOverrideQuery {
	if woq == nil {
		return nil
	}
	return &WeightOverrideQuery{
		config:     woq.config,
		ctx:        woq.ctx.Clone(),
		order:      append([]weightoverride.OrderOption{}, woq.order...),
		inters:     append([]Interceptor{}, woq.inters...),
		predicates: append([]predicate.WeightOverride{}, woq.predicates...),
		// clone intermediate query.
		sql:  woq.sql.Clone(),
		path: woq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ConceptID string `json:"concept_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WeightOverride.Query().
//		GroupBy(weightoverride.FieldConceptID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (woq *WeightOverrideQuery) GroupBy(field string, fields ...string) *WeightOverrideGroupBy {
	woq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WeightOverrideGroupBy{build: woq}
	grbuild.flds = &woq.ctx.Fields
	grbuild.label = weightoverride.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ConceptID string `json:"concept_id,omitempty"`
//	}
//
//	client.WeightOverride.Query().
//		Select(weightoverride.FieldConceptID).
//		Scan(ctx, &v)
func (woq *WeightOverrideQuery) Select(fields ...string) *WeightOverrideSelect {
	woq.ctx.Fields = append(woq.ctx.Fields, fields...)
	sbuild := &WeightOverrideSelect{WeightOverrideQuery: woq}
	sbuild.label = weightoverride.Label
	sbuild.flds, sbuild.scan = &woq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WeightOverrideSelect configured with the given aggregations.
func (woq *WeightOverrideQuery) Aggregate(fns ...AggregateFunc) *WeightOverrideSelect {
	return woq.Select().Aggregate(fns...)
}

func (woq *WeightOverrideQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range woq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, woq); err != nil {
				return err
			}
		}
	}
	for _, f := range woq.ctx.Fields {
		if !weightoverride.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if woq.path != nil {
		prev, err := woq.path(ctx)
		if err != nil {
			return err
		}
		woq.sql = prev
	}
	return nil
}

func (woq *WeightOverrideQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WeightOverride, error) {
	var (
		nodes = []*WeightOverride{}
		_spec = woq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WeightOverride).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WeightOverride{config: woq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, woq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (woq *WeightOverrideQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := woq.querySpec()
	_spec.Node.Columns = woq.ctx.Fields
	if len(woq.ctx.Fields) > 0 {
		_spec.Unique = woq.ctx.Unique != nil && *woq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, woq.driver, _spec)
}

func (woq *WeightOverrideQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(weightoverride.Table, weightoverride.Columns, sqlgraph.NewFieldSpec(weightoverride.FieldID, field.TypeInt))
	_spec.From = woq.sql
	if unique := woq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if woq.path != nil {
		_spec.Unique = true
	}
	if fields := woq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weightoverride.FieldID)
		for i := range fields {
			if fields[i] != weightoverride.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := woq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := woq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := woq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := woq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (woq *WeightOverrideQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(woq.driver.Dialect())
	t1 := builder.Table(weightoverride.Table)
	columns := woq.ctx.Fields
	if len(columns) == 0 {
		columns = weightoverride.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if woq.sql != nil {
		selector = woq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if woq.ctx.Unique != nil && *woq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range woq.predicates {
		p(selector)
	}
	for _, p := range woq.order {
		p(selector)
	}
	if offset := woq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := woq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WeightOverrideGroupBy is the group-by builder for WeightOverride entities.
type WeightOverrideGroupBy struct {
	selector
	build *WeightOverrideQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wogb *WeightOverrideGroupBy) Aggregate(fns ...AggregateFunc) *WeightOverrideGroupBy {
	wogb.fns = append(wogb.fns, fns...)
	return wogb
}

// Scan applies the selector query and scans the result into the given value.
func (wogb *WeightOverrideGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wogb.build.ctx, "GroupBy")
	if err := wogb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WeightOverrideQuery, *WeightOverrideGroupBy](ctx, wogb.build, wogb, wogb.build.inters, v)
}

func (wogb *WeightOverrideGroupBy) sqlScan(ctx context.Context, root *WeightOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wogb.fns))
	for _, fn := range wogb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wogb.flds)+len(wogb.fns))
		for _, f := range *wogb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wogb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wogb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WeightOverrideSelect is the builder for selecting fields of WeightOverride entities.
type WeightOverrideSelect struct {
	*WeightOverrideQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wos *WeightOverrideSelect) Aggregate(fns ...AggregateFunc) *WeightOverrideSelect {
	wos.fns = append(wos.fns, fns...)
	return wos
}

// Scan applies the selector query and scans the result into the given value.
func (wos *WeightOverrideSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wos.ctx, "Select")
	if err := wos.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WeightOverrideQuery, *WeightOverrideSelect](ctx, wos.WeightOverrideQuery, wos, wos.inters, v)
}

func (wos *WeightOverrideSelect) sqlScan(ctx context.Context, root *WeightOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wos.fns))
	for _, fn := range wos.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wos.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wos.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
