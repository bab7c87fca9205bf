// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/predicate"
)

// DependencyEdgeDelete is the builder for deleting a DependencyEdge entity.
type DependencyEdgeDelete struct {
	config
	hooks    []Hook
	mutation *DependencyEdgeMutation
}

// Where appends a list predicates to the DependencyEdgeDelete builder.
func (ded *DependencyEdgeDelete) Where(ps ...predicate.DependencyEdge) *DependencyEdgeDelete {
	ded.mutation.Where(ps...)
	return ded
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ded *DependencyEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ded.sqlExec, ded.mutation, ded.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ded *DependencyEdgeDelete) ExecX(ctx context.Context) int {
	n, err := ded.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ded *DependencyEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dependencyedge.Table, sqlgraph.NewFieldSpec(dependencyedge.FieldID, field.TypeInt))
	if ps := ded.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ded.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ded.mutation.done = true
	return affected, err
}

// DependencyEdgeDeleteOne is the builder for deleting a single DependencyEdge entity.
type DependencyEdgeDeleteOne struct {
	ded *DependencyEdgeDelete
}

// Where appends a list predicates to the DependencyEdgeDelete builder.
func (dedo *DependencyEdgeDeleteOne) Where(ps ...predicate.DependencyEdge) *DependencyEdgeDeleteOne {
	dedo.ded.mutation.Where(ps...)
	return dedo
}

// Exec executes the deletion query.
func (dedo *DependencyEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := dedo.ded.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dependencyedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dedo *DependencyEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := dedo.Exec(ctx); err != nil {
		panic(err)
	}
}
