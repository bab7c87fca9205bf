// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/understandingrecord"
)

// UnderstandingRecordDelete is the builder for deleting a UnderstandingRecord entity.
type UnderstandingRecordDelete struct {
	config
	hooks    []Hook
	mutation *UnderstandingRecordMutation
}

// Where appends a list predicates to the UnderstandingRecordDelete builder.
func (urd *UnderstandingRecordDelete) Where(ps ...predicate.UnderstandingRecord) *UnderstandingRecordDelete {
	urd.mutation.Where(ps...)
	return urd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (urd *UnderstandingRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, urd.sqlExec, urd.mutation, urd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (urd *UnderstandingRecordDelete) ExecX(ctx context.Context) int {
	n, err := urd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (urd *UnderstandingRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(understandingrecord.Table, sqlgraph.NewFieldSpec(understandingrecord.FieldID, field.TypeInt))
	if ps := urd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, urd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	urd.mutation.done = true
	return affected, err
}

// UnderstandingRecordDeleteOne is the builder for deleting a single UnderstandingRecord entity.
type UnderstandingRecordDeleteOne struct {
	urd *UnderstandingRecordDelete
}

// Where appends a list predicates to the UnderstandingRecordDelete builder.
func (urdo *UnderstandingRecordDeleteOne) Where(ps ...predicate.UnderstandingRecord) *UnderstandingRecordDeleteOne {
	urdo.urd.mutation.Where(ps...)
	return urdo
}

// Exec executes the deletion query.
func (urdo *UnderstandingRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := urdo.urd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{understandingrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (urdo *UnderstandingRecordDeleteOne) ExecX(ctx context.Context) {
	if err := urdo.Exec(ctx); err != nil {
		panic(err)
	}
}
