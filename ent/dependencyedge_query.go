// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/predicate"
)

// DependencyEdgeQuery is the builder for querying DependencyEdge entities.
type DependencyEdgeQuery struct {
	config
	ctx        *QueryContext
	order      []dependencyedge.OrderOption
	inters     []Interceptor
	predicates []predicate.DependencyEdge
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DependencyEdgeQuery builder.
func (deq *DependencyEdgeQuery) Where(ps ...predicate.DependencyEdge) *DependencyEdgeQuery {
	deq.predicates = append(deq.predicates, ps...)
	return deq
}

// Limit the number of records to be returned by this query.
func (deq *DependencyEdgeQuery) Limit(limit int) *DependencyEdgeQuery {
	deq.ctx.Limit = &limit
	return deq
}

// Offset to start from.
func (deq *DependencyEdgeQuery) Offset(offset int) *DependencyEdgeQuery {
	deq.ctx.Offset = &offset
	return deq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (deq *DependencyEdgeQuery) Unique(unique bool) *DependencyEdgeQuery {
	deq.ctx.Unique = &unique
	return deq
}

// Order specifies how the records should be ordered.
func (deq *DependencyEdgeQuery) Order(o ...dependencyedge.OrderOption) *DependencyEdgeQuery {
	deq.order = append(deq.order, o...)
	return deq
}

// First returns the first DependencyEdge entity from the query.
// Returns a *NotFoundError when no DependencyEdge was found.
func (deq *DependencyEdgeQuery) First(ctx context.Context) (*DependencyEdge, error) {
	nodes, err := deq.Limit(1).All(setContextOp(ctx, deq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dependencyedge.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (deq *DependencyEdgeQuery) FirstX(ctx context.Context) *DependencyEdge {
	node, err := deq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DependencyEdge ID from the query.
// Returns a *NotFoundError when no DependencyEdge ID was found.
func (deq *DependencyEdgeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = deq.Limit(1).IDs(setContextOp(ctx, deq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dependencyedge.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (deq *DependencyEdgeQuery) FirstIDX(ctx context.Context) int {
	id, err := deq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DependencyEdge entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DependencyEdge entity is found.
// Returns a *NotFoundError when no DependencyEdge entities are found.
func (deq *DependencyEdgeQuery) Only(ctx context.Context) (*DependencyEdge, error) {
	nodes, err := deq.Limit(2).All(setContextOp(ctx, deq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dependencyedge.Label}
	default:
		return nil, &NotSingularError{dependencyedge.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (deq *DependencyEdgeQuery) OnlyX(ctx context.Context) *DependencyEdge {
	node, err := deq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DependencyEdge ID in the query.
// Returns a *NotSingularError when more than one DependencyEdge ID is found.
// Returns a *NotFoundError when no entities are found.
func (deq *DependencyEdgeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = deq.Limit(2).IDs(setContextOp(ctx, deq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dependencyedge.Label}
	default:
		err = &NotSingularError{dependencyedge.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (deq *DependencyEdgeQuery) OnlyIDX(ctx context.Context) int {
	id, err := deq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DependencyEdges.
func (deq *DependencyEdgeQuery) All(ctx context.Context) ([]*DependencyEdge, error) {
	ctx = setContextOp(ctx, deq.ctx, "All")
	if err := deq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DependencyEdge, *DependencyEdgeQuery]()
	return withInterceptors[[]*DependencyEdge](ctx, deq, qr, deq.inters)
}

// AllX is like All, but panics if an error occurs.
func (deq *DependencyEdgeQuery) AllX(ctx context.Context) []*DependencyEdge {
	nodes, err := deq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DependencyEdge IDs.
func (deq *DependencyEdgeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if deq.ctx.Unique == nil && deq.path != nil {
		deq.Unique(true)
	}
	ctx = setContextOp(ctx, deq.ctx, "IDs")
	if err = deq.Select(dependencyedge.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (deq *DependencyEdgeQuery) IDsX(ctx context.Context) []int {
	ids, err := deq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (deq *DependencyEdgeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, deq.ctx, "Count")
	if err := deq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, deq, querierCount[*DependencyEdgeQuery](), deq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (deq *DependencyEdgeQuery) CountX(ctx context.Context) int {
	count, err := deq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (deq *DependencyEdgeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, deq.ctx, "Exist")
	switch _, err := deq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (deq *DependencyEdgeQuery) ExistX(ctx context.Context) bool {
	exist, err := deq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DependencyEdgeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (deq *DependencyEdgeQuery) Clone() *DependencyEdgeQuery {
	if deq == nil {
		return nil
	}
	return &DependencyEdgeQuery{
		config:     deq.config,
		ctx:        deq.ctx.Clone(),
		order:      append([]dependencyedge.OrderOption{}, deq.order...),
		inters:     append([]Interceptor{}, deq.inters...),
		predicates: append([]predicate.DependencyEdge{}, deq.predicates...),
		// clone intermediate query.
		sql:  deq.sql.Clone(),
		path: deq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PrerequisiteID string `json:"prerequisite_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DependencyEdge.Query().
//		GroupBy(dependencyedge.FieldPrerequisiteID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (deq *DependencyEdgeQuery) GroupBy(field string, fields ...string) *DependencyEdgeGroupBy {
	deq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DependencyEdgeGroupBy{build: deq}
	grbuild.flds = &deq.ctx.Fields
	grbuild.label = dependencyedge.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PrerequisiteID string `json:"prerequisite_id,omitempty"`
//	}
//
//	client.DependencyEdge.Query().
//		Select(dependencyedge.FieldPrerequisiteID).
//		Scan(ctx, &v)
func (deq *DependencyEdgeQuery) Select(fields ...string) *DependencyEdgeSelect {
	deq.ctx.Fields = append(deq.ctx.Fields, fields...)
	sbuild := &DependencyEdgeSelect{DependencyEdgeQuery: deq}
	sbuild.label = dependencyedge.Label
	sbuild.flds, sbuild.scan = &deq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DependencyEdgeSelect configured with the given aggregations.
func (deq *DependencyEdgeQuery) Aggregate(fns ...AggregateFunc) *DependencyEdgeSelect {
	return deq.Select().Aggregate(fns...)
}

func (deq *DependencyEdgeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range deq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, deq); err != nil {
				return err
			}
		}
	}
	for _, f := range deq.ctx.Fields {
		if !dependencyedge.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if deq.path != nil {
		prev, err := deq.path(ctx)
		if err != nil {
			return err
		}
		deq.sql = prev
	}
	return nil
}

func (deq *DependencyEdgeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DependencyEdge, error) {
	var (
		nodes = []*DependencyEdge{}
		_spec = deq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DependencyEdge).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DependencyEdge{config: deq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, deq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (deq *DependencyEdgeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := deq.querySpec()
	_spec.Node.Columns = deq.ctx.Fields
	if len(deq.ctx.Fields) > 0 {
		_spec.Unique = deq.ctx.Unique != nil && *deq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, deq.driver, _spec)
}

func (deq *DependencyEdgeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dependencyedge.Table, dependencyedge.Columns, sqlgraph.NewFieldSpec(dependencyedge.FieldID, field.TypeInt))
	_spec.From = deq.sql
	if unique := deq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if deq.path != nil {
		_spec.Unique = true
	}
	if fields := deq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dependencyedge.FieldID)
		for i := range fields {
			if fields[i] != dependencyedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := deq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := deq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := deq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := deq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (deq *DependencyEdgeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(deq.driver.Dialect())
	t1 := builder.Table(dependencyedge.Table)
	columns := deq.ctx.Fields
	if len(columns) == 0 {
		columns = dependencyedge.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if deq.sql != nil {
		selector = deq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if deq.ctx.Unique != nil && *deq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range deq.predicates {
		p(selector)
	}
	for _, p := range deq.order {
		p(selector)
	}
	if offset := deq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := deq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DependencyEdgeGroupBy is the group-by builder for DependencyEdge entities.
type DependencyEdgeGroupBy struct {
	selector
	build *DependencyEdgeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (degb *DependencyEdgeGroupBy) Aggregate(fns ...AggregateFunc) *DependencyEdgeGroupBy {
	degb.fns = append(degb.fns, fns...)
	return degb
}

// Scan applies the selector query and scans the result into the given value.
func (degb *DependencyEdgeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, degb.build.ctx, "GroupBy")
	if err := degb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DependencyEdgeQuery, *DependencyEdgeGroupBy](ctx, degb.build, degb, degb.build.inters, v)
}

func (degb *DependencyEdgeGroupBy) sqlScan(ctx context.Context, root *DependencyEdgeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(degb.fns))
	for _, fn := range degb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*degb.flds)+len(degb.fns))
		for _, f := range *degb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*degb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := degb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DependencyEdgeSelect is the builder for selecting fields of DependencyEdge entities.
type DependencyEdgeSelect struct {
	*DependencyEdgeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (des *DependencyEdgeSelect) Aggregate(fns ...AggregateFunc) *DependencyEdgeSelect {
	des.fns = append(des.fns, fns...)
	return des
}

// Scan applies the selector query and scans the result into the given value.
func (des *DependencyEdgeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, des.ctx, "Select")
	if err := des.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DependencyEdgeQuery, *DependencyEdgeSelect](ctx, des.DependencyEdgeQuery, des, des.inters, v)
}

func (des *DependencyEdgeSelect) sqlScan(ctx context.Context, root *DependencyEdgeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(des.fns))
	for _, fn := range des.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*des.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := des.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
