// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/predicate"
)

// DependencyEdgeUpdate is the builder for updating DependencyEdge entities.
type DependencyEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *DependencyEdgeMutation
}

// Where appends a list predicates to the DependencyEdgeUpdate builder.
func (deu *DependencyEdgeUpdate) Where(ps ...predicate.DependencyEdge) *DependencyEdgeUpdate {
	deu.mutation.Where(ps...)
	return deu
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (deu *DependencyEdgeUpdate) SetPrerequisiteID(s string) *DependencyEdgeUpdate {
	deu.mutation.SetPrerequisiteID(s)
	return deu
}

// SetNillablePrerequisiteID sets the "prerequisite_id" field if the given value is not nil.
func (deu *DependencyEdgeUpdate) SetNillablePrerequisiteID(s *string) *DependencyEdgeUpdate {
	if s != nil {
		deu.SetPrerequisiteID(*s)
	}
	return deu
}

// SetDependentID sets the "dependent_id" field.
func (deu *DependencyEdgeUpdate) SetDependentID(s string) *DependencyEdgeUpdate {
	deu.mutation.SetDependentID(s)
	return deu
}

// SetNillableDependentID sets the "dependent_id" field if the given value is not nil.
func (deu *DependencyEdgeUpdate) SetNillableDependentID(s *string) *DependencyEdgeUpdate {
	if s != nil {
		deu.SetDependentID(*s)
	}
	return deu
}

// SetStrength sets the "strength" field.
func (deu *DependencyEdgeUpdate) SetStrength(f float64) *DependencyEdgeUpdate {
	deu.mutation.ResetStrength()
	deu.mutation.SetStrength(f)
	return deu
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (deu *DependencyEdgeUpdate) SetNillableStrength(f *float64) *DependencyEdgeUpdate {
	if f != nil {
		deu.SetStrength(*f)
	}
	return deu
}

// AddStrength adds f to the "strength" field.
func (deu *DependencyEdgeUpdate) AddStrength(f float64) *DependencyEdgeUpdate {
	deu.mutation.AddStrength(f)
	return deu
}

// Mutation returns the DependencyEdgeMutation object of the builder.
func (deu *DependencyEdgeUpdate) Mutation() *DependencyEdgeMutation {
	return deu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (deu *DependencyEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, deu.sqlSave, deu.mutation, deu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (deu *DependencyEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := deu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (deu *DependencyEdgeUpdate) Exec(ctx context.Context) error {
	_, err := deu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (deu *DependencyEdgeUpdate) ExecX(ctx context.Context) {
	if err := deu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (deu *DependencyEdgeUpdate) check() error {
	if v, ok := deu.mutation.PrerequisiteID(); ok {
		if err := dependencyedge.PrerequisiteIDValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.prerequisite_id": %w`, err)}
		}
	}
	if v, ok := deu.mutation.DependentID(); ok {
		if err := dependencyedge.DependentIDValidator(v); err != nil {
			return &ValidationError{Name: "dependent_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.dependent_id": %w`, err)}
		}
	}
	if v, ok := deu.mutation.Strength(); ok {
		if err := dependencyedge.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.strength": %w`, err)}
		}
	}
	return nil
}

func (deu *DependencyEdgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := deu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(dependencyedge.Table, dependencyedge.Columns, sqlgraph.NewFieldSpec(dependencyedge.FieldID, field.TypeInt))
	if ps := deu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := deu.mutation.PrerequisiteID(); ok {
		_spec.SetField(dependencyedge.FieldPrerequisiteID, field.TypeString, value)
	}
	if value, ok := deu.mutation.DependentID(); ok {
		_spec.SetField(dependencyedge.FieldDependentID, field.TypeString, value)
	}
	if value, ok := deu.mutation.Strength(); ok {
		_spec.SetField(dependencyedge.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := deu.mutation.AddedStrength(); ok {
		_spec.AddField(dependencyedge.FieldStrength, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, deu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dependencyedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	deu.mutation.done = true
	return n, nil
}

// DependencyEdgeUpdateOne is the builder for updating a single DependencyEdge entity.
type DependencyEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DependencyEdgeMutation
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (deuo *DependencyEdgeUpdateOne) SetPrerequisiteID(s string) *DependencyEdgeUpdateOne {
	deuo.mutation.SetPrerequisiteID(s)
	return deuo
}

// SetNillablePrerequisiteID sets the "prerequisite_id" field if the given value is not nil.
func (deuo *DependencyEdgeUpdateOne) SetNillablePrerequisiteID(s *string) *DependencyEdgeUpdateOne {
	if s != nil {
		deuo.SetPrerequisiteID(*s)
	}
	return deuo
}

// SetDependentID sets the "dependent_id" field.
func (deuo *DependencyEdgeUpdateOne) SetDependentID(s string) *DependencyEdgeUpdateOne {
	deuo.mutation.SetDependentID(s)
	return deuo
}

// SetNillableDependentID sets the "dependent_id" field if the given value is not nil.
func (deuo *DependencyEdgeUpdateOne) SetNillableDependentID(s *string) *DependencyEdgeUpdateOne {
	if s != nil {
		deuo.SetDependentID(*s)
	}
	return deuo
}

// SetStrength sets the "strength" field.
func (deuo *DependencyEdgeUpdateOne) SetStrength(f float64) *DependencyEdgeUpdateOne {
	deuo.mutation.ResetStrength()
	deuo.mutation.SetStrength(f)
	return deuo
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (deuo *DependencyEdgeUpdateOne) SetNillableStrength(f *float64) *DependencyEdgeUpdateOne {
	if f != nil {
		deuo.SetStrength(*f)
	}
	return deuo
}

// AddStrength adds f to the "strength" field.
func (deuo *DependencyEdgeUpdateOne) AddStrength(f float64) *DependencyEdgeUpdateOne {
	deuo.mutation.AddStrength(f)
	return deuo
}

// Mutation returns the DependencyEdgeMutation object of the builder.
func (deuo *DependencyEdgeUpdateOne) Mutation() *DependencyEdgeMutation {
	return deuo.mutation
}

// Where appends a list predicates to the DependencyEdgeUpdate builder.
func (deuo *DependencyEdgeUpdateOne) Where(ps ...predicate.DependencyEdge) *DependencyEdgeUpdateOne {
	deuo.mutation.Where(ps...)
	return deuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (deuo *DependencyEdgeUpdateOne) Select(field string, fields ...string) *DependencyEdgeUpdateOne {
	deuo.fields = append([]string{field}, fields...)
	return deuo
}

// Save executes the query and returns the updated DependencyEdge entity.
func (deuo *DependencyEdgeUpdateOne) Save(ctx context.Context) (*DependencyEdge, error) {
	return withHooks(ctx, deuo.sqlSave, deuo.mutation, deuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (deuo *DependencyEdgeUpdateOne) SaveX(ctx context.Context) *DependencyEdge {
	node, err := deuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (deuo *DependencyEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := deuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (deuo *DependencyEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := deuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (deuo *DependencyEdgeUpdateOne) check() error {
	if v, ok := deuo.mutation.PrerequisiteID(); ok {
		if err := dependencyedge.PrerequisiteIDValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.prerequisite_id": %w`, err)}
		}
	}
	if v, ok := deuo.mutation.DependentID(); ok {
		if err := dependencyedge.DependentIDValidator(v); err != nil {
			return &ValidationError{Name: "dependent_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.dependent_id": %w`, err)}
		}
	}
	if v, ok := deuo.mutation.Strength(); ok {
		if err := dependencyedge.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.strength": %w`, err)}
		}
	}
	return nil
}

func (deuo *DependencyEdgeUpdateOne) sqlSave(ctx context.Context) (_node *DependencyEdge, err error) {
	if err := deuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dependencyedge.Table, dependencyedge.Columns, sqlgraph.NewFieldSpec(dependencyedge.FieldID, field.TypeInt))
	id, ok := deuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DependencyEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := deuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dependencyedge.FieldID)
		for _, f := range fields {
			if !dependencyedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dependencyedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := deuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := deuo.mutation.PrerequisiteID(); ok {
		_spec.SetField(dependencyedge.FieldPrerequisiteID, field.TypeString, value)
	}
	if value, ok := deuo.mutation.DependentID(); ok {
		_spec.SetField(dependencyedge.FieldDependentID, field.TypeString, value)
	}
	if value, ok := deuo.mutation.Strength(); ok {
		_spec.SetField(dependencyedge.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := deuo.mutation.AddedStrength(); ok {
		_spec.AddField(dependencyedge.FieldStrength, field.TypeFloat64, value)
	}
	_node = &DependencyEdge{config: deuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, deuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dependencyedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	deuo.mutation.done = true
	return _node, nil
}
