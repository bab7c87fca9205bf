// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/concept"
	"github.com/kunalarora/studypath/ent/predicate"
)

// ConceptUpdate is the builder for updating Concept entities.
type ConceptUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (cu *ConceptUpdate) Where(ps ...predicate.Concept) *ConceptUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetConceptID sets the "concept_id" field.
func (cu *ConceptUpdate) SetConceptID(s string) *ConceptUpdate {
	cu.mutation.SetConceptID(s)
	return cu
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (cu *ConceptUpdate) SetNillableConceptID(s *string) *ConceptUpdate {
	if s != nil {
		cu.SetConceptID(*s)
	}
	return cu
}

// SetName sets the "name" field.
func (cu *ConceptUpdate) SetName(s string) *ConceptUpdate {
	cu.mutation.SetName(s)
	return cu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cu *ConceptUpdate) SetNillableName(s *string) *ConceptUpdate {
	if s != nil {
		cu.SetName(*s)
	}
	return cu
}

// SetDescription sets the "description" field.
func (cu *ConceptUpdate) SetDescription(s string) *ConceptUpdate {
	cu.mutation.SetDescription(s)
	return cu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cu *ConceptUpdate) SetNillableDescription(s *string) *ConceptUpdate {
	if s != nil {
		cu.SetDescription(*s)
	}
	return cu
}

// ClearDescription clears the value of the "description" field.
func (cu *ConceptUpdate) ClearDescription() *ConceptUpdate {
	cu.mutation.ClearDescription()
	return cu
}

// SetComplexity sets the "complexity" field.
func (cu *ConceptUpdate) SetComplexity(i int) *ConceptUpdate {
	cu.mutation.ResetComplexity()
	cu.mutation.SetComplexity(i)
	return cu
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (cu *ConceptUpdate) SetNillableComplexity(i *int) *ConceptUpdate {
	if i != nil {
		cu.SetComplexity(*i)
	}
	return cu
}

// AddComplexity adds i to the "complexity" field.
func (cu *ConceptUpdate) AddComplexity(i int) *ConceptUpdate {
	cu.mutation.AddComplexity(i)
	return cu
}

// Mutation returns the ConceptMutation object of the builder.
func (cu *ConceptUpdate) Mutation() *ConceptMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ConceptUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ConceptUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *ConceptUpdate) check() error {
	if v, ok := cu.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Complexity(); ok {
		if err := concept.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "Concept.complexity": %w`, err)}
		}
	}
	return nil
}

func (cu *ConceptUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := cu.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := cu.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
	}
	if cu.mutation.DescriptionCleared() {
		_spec.ClearField(concept.FieldDescription, field.TypeString)
	}
	if value, ok := cu.mutation.Complexity(); ok {
		_spec.SetField(concept.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedComplexity(); ok {
		_spec.AddField(concept.FieldComplexity, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ConceptUpdateOne is the builder for updating a single Concept entity.
type ConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMutation
}

// SetConceptID sets the "concept_id" field.
func (cuo *ConceptUpdateOne) SetConceptID(s string) *ConceptUpdateOne {
	cuo.mutation.SetConceptID(s)
	return cuo
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (cuo *ConceptUpdateOne) SetNillableConceptID(s *string) *ConceptUpdateOne {
	if s != nil {
		cuo.SetConceptID(*s)
	}
	return cuo
}

// SetName sets the "name" field.
func (cuo *ConceptUpdateOne) SetName(s string) *ConceptUpdateOne {
	cuo.mutation.SetName(s)
	return cuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cuo *ConceptUpdateOne) SetNillableName(s *string) *ConceptUpdateOne {
	if s != nil {
		cuo.SetName(*s)
	}
	return cuo
}

// SetDescription sets the "description" field.
func (cuo *ConceptUpdateOne) SetDescription(s string) *ConceptUpdateOne {
	cuo.mutation.SetDescription(s)
	return cuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cuo *ConceptUpdateOne) SetNillableDescription(s *string) *ConceptUpdateOne {
	if s != nil {
		cuo.SetDescription(*s)
	}
	return cuo
}

// ClearDescription clears the value of the "description" field.
func (cuo *ConceptUpdateOne) ClearDescription() *ConceptUpdateOne {
	cuo.mutation.ClearDescription()
	return cuo
}

// SetComplexity sets the "complexity" field.
func (cuo *ConceptUpdateOne) SetComplexity(i int) *ConceptUpdateOne {
	cuo.mutation.ResetComplexity()
	cuo.mutation.SetComplexity(i)
	return cuo
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (cuo *ConceptUpdateOne) SetNillableComplexity(i *int) *ConceptUpdateOne {
	if i != nil {
		cuo.SetComplexity(*i)
	}
	return cuo
}

// AddComplexity adds i to the "complexity" field.
func (cuo *ConceptUpdateOne) AddComplexity(i int) *ConceptUpdateOne {
	cuo.mutation.AddComplexity(i)
	return cuo
}

// Mutation returns the ConceptMutation object of the builder.
func (cuo *ConceptUpdateOne) Mutation() *ConceptMutation {
	return cuo.mutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (cuo *ConceptUpdateOne) Where(ps ...predicate.Concept) *ConceptUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ConceptUpdateOne) Select(field string, fields ...string) *ConceptUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Concept entity.
func (cuo *ConceptUpdateOne) Save(ctx context.Context) (*Concept, error) {
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ConceptUpdateOne) SaveX(ctx context.Context) *Concept {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ConceptUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ConceptUpdateOne) check() error {
	if v, ok := cuo.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Complexity(); ok {
		if err := concept.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "Concept.complexity": %w`, err)}
		}
	}
	return nil
}

func (cuo *ConceptUpdateOne) sqlSave(ctx context.Context) (_node *Concept, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Concept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concept.FieldID)
		for _, f := range fields {
			if !concept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concept.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
	}
	if cuo.mutation.DescriptionCleared() {
		_spec.ClearField(concept.FieldDescription, field.TypeString)
	}
	if value, ok := cuo.mutation.Complexity(); ok {
		_spec.SetField(concept.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedComplexity(); ok {
		_spec.AddField(concept.FieldComplexity, field.TypeInt, value)
	}
	_node = &Concept{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
