// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// WeightOverrideUpdate is the builder for updating WeightOverride entities.
type WeightOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *WeightOverrideMutation
}

// Where appends a list predicates to the WeightOverrideUpdate builder.
func (wou *WeightOverrideUpdate) Where(ps ...predicate.WeightOverride) *WeightOverrideUpdate {
	wou.mutation.Where(ps...)
	return wou
}

// SetConceptID sets the "concept_id" field.
func (wou *WeightOverrideUpdate) SetConceptID(s string) *WeightOverrideUpdate {
	wou.mutation.SetConceptID(s)
	return wou
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (wou *WeightOverrideUpdate) SetNillableConceptID(s *string) *WeightOverrideUpdate {
	if s != nil {
		wou.SetConceptID(*s)
	}
	return wou
}

// SetWeight sets the "weight" field.
func (wou *WeightOverrideUpdate) SetWeight(f float64) *WeightOverrideUpdate {
	wou.mutation.ResetWeight()
	wou.mutation.SetWeight(f)
	return wou
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (wou *WeightOverrideUpdate) SetNillableWeight(f *float64) *WeightOverrideUpdate {
	if f != nil {
		wou.SetWeight(*f)
	}
	return wou
}

// AddWeight adds f to the "weight" field.
func (wou *WeightOverrideUpdate) AddWeight(f float64) *WeightOverrideUpdate {
	wou.mutation.AddWeight(f)
	return wou
}

// Mutation returns the WeightOverrideMutation object of the builder.
func (wou *WeightOverrideUpdate) Mutation() *WeightOverrideMutation {
	return wou.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wou *WeightOverrideUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wou.sqlSave, wou.mutation, wou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wou *WeightOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := wou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wou *WeightOverrideUpdate) Exec(ctx context.Context) error {
	_, err := wou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wou *WeightOverrideUpdate) ExecX(ctx context.Context) {
	if err := wou.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wou *WeightOverrideUpdate) check() error {
	if v, ok := wou.mutation.ConceptID(); ok {
		if err := weightoverride.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.concept_id": %w`, err)}
		}
	}
	if v, ok := wou.mutation.Weight(); ok {
		if err := weightoverride.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.weight": %w`, err)}
		}
	}
	return nil
}

func (wou *WeightOverrideUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wou.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(weightoverride.Table, weightoverride.Columns, sqlgraph.NewFieldSpec(weightoverride.FieldID, field.TypeInt))
	if ps := wou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wou.mutation.ConceptID(); ok {
		_spec.SetField(weightoverride.FieldConceptID, field.TypeString, value)
	}
	if value, ok := wou.mutation.Weight(); ok {
		_spec.SetField(weightoverride.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := wou.mutation.AddedWeight(); ok {
		_spec.AddField(weightoverride.FieldWeight, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weightoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wou.mutation.done = true
	return n, nil
}

// WeightOverrideUpdateOne is the builder for updating a single WeightOverride entity.
type WeightOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeightOverrideMutation
}

// SetConceptID sets the "concept_id" field.
func (wouo *WeightOverrideUpdateOne) SetConceptID(s string) *WeightOverrideUpdateOne {
	wouo.mutation.SetConceptID(s)
	return wouo
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (wouo *WeightOverrideUpdateOne) SetNillableConceptID(s *string) *WeightOverrideUpdateOne {
	if s != nil {
		wouo.SetConceptID(*s)
	}
	return wouo
}

// SetWeight sets the "weight" field.
func (wouo *WeightOverrideUpdateOne) SetWeight(f float64) *WeightOverrideUpdateOne {
	wouo.mutation.ResetWeight()
	wouo.mutation.SetWeight(f)
	return wouo
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (wouo *WeightOverrideUpdateOne) SetNillableWeight(f *float64) *WeightOverrideUpdateOne {
	if f != nil {
		wouo.SetWeight(*f)
	}
	return wouo
}

// AddWeight adds f to the "weight" field.
func (wouo *WeightOverrideUpdateOne) AddWeight(f float64) *WeightOverrideUpdateOne {
	wouo.mutation.AddWeight(f)
	return wouo
}

// Mutation returns the WeightOverrideMutation object of the builder.
func (wouo *WeightOverrideUpdateOne) Mutation() *WeightOverrideMutation {
	return wouo.mutation
}

// Where appends a list predicates to the WeightOverrideUpdate builder.
func (wouo *WeightOverrideUpdateOne) Where(ps ...predicate.WeightOverride) *WeightOverrideUpdateOne {
	wouo.mutation.Where(ps...)
	return wouo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wouo *WeightOverrideUpdateOne) Select(field string, fields ...string) *WeightOverrideUpdateOne {
	wouo.fields = append([]string{field}, fields...)
	return wouo
}

// Save executes the query and returns the updated WeightOverride entity.
func (wouo *WeightOverrideUpdateOne) Save(ctx context.Context) (*WeightOverride, error) {
	return withHooks(ctx, wouo.sqlSave, wouo.mutation, wouo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wouo *WeightOverrideUpdateOne) SaveX(ctx context.Context) *WeightOverride {
	node, err := wouo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wouo *WeightOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := wouo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wouo *WeightOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := wouo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wouo *WeightOverrideUpdateOne) check() error {
	if v, ok := wouo.mutation.ConceptID(); ok {
		if err := weightoverride.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.concept_id": %w`, err)}
		}
	}
	if v, ok := wouo.mutation.Weight(); ok {
		if err := weightoverride.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.weight": %w`, err)}
		}
	}
	return nil
}

func (wouo *WeightOverrideUpdateOne) sqlSave(ctx context.Context) (_node *WeightOverride, err error) {
	if err := wouo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weightoverride.Table, weightoverride.Columns, sqlgraph.NewFieldSpec(weightoverride.FieldID, field.TypeInt))
	id, ok := wouo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeightOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wouo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weightoverride.FieldID)
		for _, f := range fields {
			if !weightoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weightoverride.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wouo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wouo.mutation.ConceptID(); ok {
		_spec.SetField(weightoverride.FieldConceptID, field.TypeString, value)
	}
	if value, ok := wouo.mutation.Weight(); ok {
		_spec.SetField(weightoverride.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := wouo.mutation.AddedWeight(); ok {
		_spec.AddField(weightoverride.FieldWeight, field.TypeFloat64, value)
	}
	_node = &WeightOverride{config: wouo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wouo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weightoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wouo.mutation.done = true
	return _node, nil
}
