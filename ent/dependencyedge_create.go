// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/dependencyedge"
)

// DependencyEdgeCreate is the builder for creating a DependencyEdge entity.
type DependencyEdgeCreate struct {
	config
	mutation *DependencyEdgeMutation
	hooks    []Hook
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (dec *DependencyEdgeCreate) SetPrerequisiteID(s string) *DependencyEdgeCreate {
	dec.mutation.SetPrerequisiteID(s)
	return dec
}

// SetDependentID sets the "dependent_id" field.
func (dec *DependencyEdgeCreate) SetDependentID(s string) *DependencyEdgeCreate {
	dec.mutation.SetDependentID(s)
	return dec
}

// SetStrength sets the "strength" field.
func (dec *DependencyEdgeCreate) SetStrength(f float64) *DependencyEdgeCreate {
	dec.mutation.SetStrength(f)
	return dec
}

// Mutation returns the DependencyEdgeMutation object of the builder.
func (dec *DependencyEdgeCreate) Mutation() *DependencyEdgeMutation {
	return dec.mutation
}

// Save creates the DependencyEdge in the database.
func (dec *DependencyEdgeCreate) Save(ctx context.Context) (*DependencyEdge, error) {
	return withHooks(ctx, dec.sqlSave, dec.mutation, dec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dec *DependencyEdgeCreate) SaveX(ctx context.Context) *DependencyEdge {
	v, err := dec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dec *DependencyEdgeCreate) Exec(ctx context.Context) error {
	_, err := dec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dec *DependencyEdgeCreate) ExecX(ctx context.Context) {
	if err := dec.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dec *DependencyEdgeCreate) check() error {
	if _, ok := dec.mutation.PrerequisiteID(); !ok {
		return &ValidationError{Name: "prerequisite_id", err: errors.New(`ent: missing required field "DependencyEdge.prerequisite_id"`)}
	}
	if v, ok := dec.mutation.PrerequisiteID(); ok {
		if err := dependencyedge.PrerequisiteIDValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.prerequisite_id": %w`, err)}
		}
	}
	if _, ok := dec.mutation.DependentID(); !ok {
		return &ValidationError{Name: "dependent_id", err: errors.New(`ent: missing required field "DependencyEdge.dependent_id"`)}
	}
	if v, ok := dec.mutation.DependentID(); ok {
		if err := dependencyedge.DependentIDValidator(v); err != nil {
			return &ValidationError{Name: "dependent_id", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.dependent_id": %w`, err)}
		}
	}
	if _, ok := dec.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "DependencyEdge.strength"`)}
	}
	if v, ok := dec.mutation.Strength(); ok {
		if err := dependencyedge.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DependencyEdge.strength": %w`, err)}
		}
	}
	return nil
}

func (dec *DependencyEdgeCreate) sqlSave(ctx context.Context) (*DependencyEdge, error) {
	if err := dec.check(); err != nil {
		return nil, err
	}
	_node, _spec := dec.createSpec()
	if err := sqlgraph.CreateNode(ctx, dec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	dec.mutation.id = &_node.ID
	dec.mutation.done = true
	return _node, nil
}

func (dec *DependencyEdgeCreate) createSpec() (*DependencyEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &DependencyEdge{config: dec.config}
		_spec = sqlgraph.NewCreateSpec(dependencyedge.Table, sqlgraph.NewFieldSpec(dependencyedge.FieldID, field.TypeInt))
	)
	if value, ok := dec.mutation.PrerequisiteID(); ok {
		_spec.SetField(dependencyedge.FieldPrerequisiteID, field.TypeString, value)
		_node.PrerequisiteID = value
	}
	if value, ok := dec.mutation.DependentID(); ok {
		_spec.SetField(dependencyedge.FieldDependentID, field.TypeString, value)
		_node.DependentID = value
	}
	if value, ok := dec.mutation.Strength(); ok {
		_spec.SetField(dependencyedge.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	return _node, _spec
}

// DependencyEdgeCreateBulk is the builder for creating many DependencyEdge entities in bulk.
type DependencyEdgeCreateBulk struct {
	config
	err      error
	builders []*DependencyEdgeCreate
}

// Save creates the DependencyEdge entities in the database.
func (decb *DependencyEdgeCreateBulk) Save(ctx context.Context) ([]*DependencyEdge, error) {
	if decb.err != nil {
		return nil, decb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(decb.builders))
	nodes := make([]*DependencyEdge, len(decb.builders))
	mutators := make([]Mutator, len(decb.builders))
	for i := range decb.builders {
		func(i int, root context.Context) {
			builder := decb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DependencyEdgeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, decb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, decb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, decb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (decb *DependencyEdgeCreateBulk) SaveX(ctx context.Context) []*DependencyEdge {
	v, err := decb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (decb *DependencyEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := decb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (decb *DependencyEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := decb.Exec(ctx); err != nil {
		panic(err)
	}
}
