// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// WeightOverrideCreate is the builder for creating a WeightOverride entity.
type WeightOverrideCreate struct {
	config
	mutation *WeightOverrideMutation
	hooks    []Hook
}

// SetConceptID sets the "concept_id" field.
func (woc *WeightOverrideCreate) SetConceptID(s string) *WeightOverrideCreate {
	woc.mutation.SetConceptID(s)
	return woc
}

// SetWeight sets the "weight" field.
func (woc *WeightOverrideCreate) SetWeight(f float64) *WeightOverrideCreate {
	woc.mutation.SetWeight(f)
	return woc
}

// Mutation returns the WeightOverrideMutation object of the builder.
func (woc *WeightOverrideCreate) Mutation() *WeightOverrideMutation {
	return woc.mutation
}

// Save creates the WeightOverride in the database.
func (woc *WeightOverrideCreate) Save(ctx context.Context) (*WeightOverride, error) {
	return withHooks(ctx, woc.sqlSave, woc.mutation, woc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (woc *WeightOverrideCreate) SaveX(ctx context.Context) *WeightOverride {
	v, err := woc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (woc *WeightOverrideCreate) Exec(ctx context.Context) error {
	_, err := woc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (woc *WeightOverrideCreate) ExecX(ctx context.Context) {
	if err := woc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (woc *WeightOverrideCreate) check() error {
	if _, ok := woc.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "WeightOverride.concept_id"`)}
	}
	if v, ok := woc.mutation.ConceptID(); ok {
		if err := weightoverride.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.concept_id": %w`, err)}
		}
	}
	if _, ok := woc.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "WeightOverride.weight"`)}
	}
	if v, ok := woc.mutation.Weight(); ok {
		if err := weightoverride.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "WeightOverride.weight": %w`, err)}
		}
	}
	return nil
}

func (woc *WeightOverrideCreate) sqlSave(ctx context.Context) (*WeightOverride, error) {
	if err := woc.check(); err != nil {
		return nil, err
	}
	_node, _spec := woc.createSpec()
	if err := sqlgraph.CreateNode(ctx, woc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	woc.mutation.id = &_node.ID
	woc.mutation.done = true
	return _node, nil
}

func (woc *WeightOverrideCreate) createSpec() (*WeightOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &WeightOverride{config: woc.config}
		_spec = sqlgraph.NewCreateSpec(weightoverride.Table, sqlgraph.NewFieldSpec(weightoverride.FieldID, field.TypeInt))
	)
	if value, ok := woc.mutation.ConceptID(); ok {
		_spec.SetField(weightoverride.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := woc.mutation.Weight(); ok {
		_spec.SetField(weightoverride.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	return _node, _spec
}

// WeightOverrideCreateBulk is the builder for creating many WeightOverride entities in bulk.
type WeightOverrideCreateBulk struct {
	config
	err      error
	builders []*WeightOverrideCreate
}

// Save creates the WeightOverride entities in the database.
func (wocb *WeightOverrideCreateBulk) Save(ctx context.Context) ([]*WeightOverride, error) {
	if wocb.err != nil {
		return nil, wocb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wocb.builders))
	nodes := make([]*WeightOverride, len(wocb.builders))
	mutators := make([]Mutator, len(wocb.builders))
	for i := range wocb.builders {
		func(i int, root context.Context) {
			builder := wocb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeightOverrideMutation)
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
					_, err = mutators[i+1].Mutate(root, wocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wocb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wocb *WeightOverrideCreateBulk) SaveX(ctx context.Context) []*WeightOverride {
	v, err := wocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wocb *WeightOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := wocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wocb *WeightOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := wocb.Exec(ctx); err != nil {
		panic(err)
	}
}
