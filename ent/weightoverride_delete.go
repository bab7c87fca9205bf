// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// WeightOverrideDelete is the builder for deleting a WeightOverride entity.
type WeightOverrideDelete struct {
	config
	hooks    []Hook
	mutation *WeightOverrideMutation
}

// Where appends a list predicates to the WeightOverrideDelete builder.
func (wod *WeightOverrideDelete) Where(ps ...predicate.WeightOverride) *WeightOverrideDelete {
	wod.mutation.Where(ps...)
	return wod
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wod *WeightOverrideDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wod.sqlExec, wod.mutation, wod.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wod *WeightOverrideDelete) ExecX(ctx context.Context) int {
	n, err := wod.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wod *WeightOverrideDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(weightoverride.Table, sqlgraph.NewFieldSpec(weightoverride.FieldID, field.TypeInt))
	if ps := wod.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wod.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wod.mutation.done = true
	return affected, err
}

// WeightOverrideDeleteOne is the builder for deleting a single WeightOverride entity.
type WeightOverrideDeleteOne struct {
	wod *WeightOverrideDelete
}

// Where appends a list predicates to the WeightOverrideDelete builder.
func (wodo *WeightOverrideDeleteOne) Where(ps ...predicate.WeightOverride) *WeightOverrideDeleteOne {
	wodo.wod.mutation.Where(ps...)
	return wodo
}

// Exec executes the deletion query.
func (wodo *WeightOverrideDeleteOne) Exec(ctx context.Context) error {
	n, err := wodo.wod.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{weightoverride.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wodo *WeightOverrideDeleteOne) ExecX(ctx context.Context) {
	if err := wodo.Exec(ctx); err != nil {
		panic(err)
	}
}
