// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/understandingrecord"
)

// UnderstandingRecordCreate is the builder for creating a UnderstandingRecord entity.
type UnderstandingRecordCreate struct {
	config
	mutation *UnderstandingRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (urc *UnderstandingRecordCreate) SetSequence(i int64) *UnderstandingRecordCreate {
	urc.mutation.SetSequence(i)
	return urc
}

// SetTimestamp sets the "timestamp" field.
func (urc *UnderstandingRecordCreate) SetTimestamp(t time.Time) *UnderstandingRecordCreate {
	urc.mutation.SetTimestamp(t)
	return urc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (urc *UnderstandingRecordCreate) SetNillableTimestamp(t *time.Time) *UnderstandingRecordCreate {
	if t != nil {
		urc.SetTimestamp(*t)
	}
	return urc
}

// SetRecordID sets the "record_id" field.
func (urc *UnderstandingRecordCreate) SetRecordID(s string) *UnderstandingRecordCreate {
	urc.mutation.SetRecordID(s)
	return urc
}

// SetUserID sets the "user_id" field.
func (urc *UnderstandingRecordCreate) SetUserID(s string) *UnderstandingRecordCreate {
	urc.mutation.SetUserID(s)
	return urc
}

// SetConceptID sets the "concept_id" field.
func (urc *UnderstandingRecordCreate) SetConceptID(s string) *UnderstandingRecordCreate {
	urc.mutation.SetConceptID(s)
	return urc
}

// SetCompleteness sets the "completeness" field.
func (urc *UnderstandingRecordCreate) SetCompleteness(f float64) *UnderstandingRecordCreate {
	urc.mutation.SetCompleteness(f)
	return urc
}

// SetCoherence sets the "coherence" field.
func (urc *UnderstandingRecordCreate) SetCoherence(f float64) *UnderstandingRecordCreate {
	urc.mutation.SetCoherence(f)
	return urc
}

// SetQuestionAccuracy sets the "question_accuracy" field.
func (urc *UnderstandingRecordCreate) SetQuestionAccuracy(f float64) *UnderstandingRecordCreate {
	urc.mutation.SetQuestionAccuracy(f)
	return urc
}

// SetScore sets the "score" field.
func (urc *UnderstandingRecordCreate) SetScore(f float64) *UnderstandingRecordCreate {
	urc.mutation.SetScore(f)
	return urc
}

// SetMisconceptions sets the "misconceptions" field.
func (urc *UnderstandingRecordCreate) SetMisconceptions(sr []schema.MisconceptionRecord) *UnderstandingRecordCreate {
	urc.mutation.SetMisconceptions(sr)
	return urc
}

// SetPrerequisiteGaps sets the "prerequisite_gaps" field.
func (urc *UnderstandingRecordCreate) SetPrerequisiteGaps(s []string) *UnderstandingRecordCreate {
	urc.mutation.SetPrerequisiteGaps(s)
	return urc
}

// Mutation returns the UnderstandingRecordMutation object of the builder.
func (urc *UnderstandingRecordCreate) Mutation() *UnderstandingRecordMutation {
	return urc.mutation
}

// Save creates the UnderstandingRecord in the database.
func (urc *UnderstandingRecordCreate) Save(ctx context.Context) (*UnderstandingRecord, error) {
	urc.defaults()
	return withHooks(ctx, urc.sqlSave, urc.mutation, urc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (urc *UnderstandingRecordCreate) SaveX(ctx context.Context) *UnderstandingRecord {
	v, err := urc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (urc *UnderstandingRecordCreate) Exec(ctx context.Context) error {
	_, err := urc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (urc *UnderstandingRecordCreate) ExecX(ctx context.Context) {
	if err := urc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (urc *UnderstandingRecordCreate) defaults() {
	if _, ok := urc.mutation.Timestamp(); !ok {
		v := understandingrecord.DefaultTimestamp()
		urc.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (urc *UnderstandingRecordCreate) check() error {
	if _, ok := urc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "UnderstandingRecord.sequence"`)}
	}
	if _, ok := urc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UnderstandingRecord.timestamp"`)}
	}
	if _, ok := urc.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "UnderstandingRecord.record_id"`)}
	}
	if v, ok := urc.mutation.RecordID(); ok {
		if err := understandingrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.record_id": %w`, err)}
		}
	}
	if _, ok := urc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UnderstandingRecord.user_id"`)}
	}
	if v, ok := urc.mutation.UserID(); ok {
		if err := understandingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.user_id": %w`, err)}
		}
	}
	if _, ok := urc.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "UnderstandingRecord.concept_id"`)}
	}
	if v, ok := urc.mutation.ConceptID(); ok {
		if err := understandingrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := urc.mutation.Completeness(); !ok {
		return &ValidationError{Name: "completeness", err: errors.New(`ent: missing required field "UnderstandingRecord.completeness"`)}
	}
	if _, ok := urc.mutation.Coherence(); !ok {
		return &ValidationError{Name: "coherence", err: errors.New(`ent: missing required field "UnderstandingRecord.coherence"`)}
	}
	if _, ok := urc.mutation.QuestionAccuracy(); !ok {
		return &ValidationError{Name: "question_accuracy", err: errors.New(`ent: missing required field "UnderstandingRecord.question_accuracy"`)}
	}
	if _, ok := urc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "UnderstandingRecord.score"`)}
	}
	return nil
}

func (urc *UnderstandingRecordCreate) sqlSave(ctx context.Context) (*UnderstandingRecord, error) {
	if err := urc.check(); err != nil {
		return nil, err
	}
	_node, _spec := urc.createSpec()
	if err := sqlgraph.CreateNode(ctx, urc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	urc.mutation.id = &_node.ID
	urc.mutation.done = true
	return _node, nil
}

func (urc *UnderstandingRecordCreate) createSpec() (*UnderstandingRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UnderstandingRecord{config: urc.config}
		_spec = sqlgraph.NewCreateSpec(understandingrecord.Table, sqlgraph.NewFieldSpec(understandingrecord.FieldID, field.TypeInt))
	)
	if value, ok := urc.mutation.Sequence(); ok {
		_spec.SetField(understandingrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := urc.mutation.Timestamp(); ok {
		_spec.SetField(understandingrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := urc.mutation.RecordID(); ok {
		_spec.SetField(understandingrecord.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := urc.mutation.UserID(); ok {
		_spec.SetField(understandingrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := urc.mutation.ConceptID(); ok {
		_spec.SetField(understandingrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := urc.mutation.Completeness(); ok {
		_spec.SetField(understandingrecord.FieldCompleteness, field.TypeFloat64, value)
		_node.Completeness = value
	}
	if value, ok := urc.mutation.Coherence(); ok {
		_spec.SetField(understandingrecord.FieldCoherence, field.TypeFloat64, value)
		_node.Coherence = value
	}
	if value, ok := urc.mutation.QuestionAccuracy(); ok {
		_spec.SetField(understandingrecord.FieldQuestionAccuracy, field.TypeFloat64, value)
		_node.QuestionAccuracy = value
	}
	if value, ok := urc.mutation.Score(); ok {
		_spec.SetField(understandingrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := urc.mutation.Misconceptions(); ok {
		_spec.SetField(understandingrecord.FieldMisconceptions, field.TypeJSON, value)
		_node.Misconceptions = value
	}
	if value, ok := urc.mutation.PrerequisiteGaps(); ok {
		_spec.SetField(understandingrecord.FieldPrerequisiteGaps, field.TypeJSON, value)
		_node.PrerequisiteGaps = value
	}
	return _node, _spec
}

// UnderstandingRecordCreateBulk is the builder for creating many UnderstandingRecord entities in bulk.
type UnderstandingRecordCreateBulk struct {
	config
	err      error
	builders []*UnderstandingRecordCreate
}

// Save creates the UnderstandingRecord entities in the database.
func (urcb *UnderstandingRecordCreateBulk) Save(ctx context.Context) ([]*UnderstandingRecord, error) {
	if urcb.err != nil {
		return nil, urcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(urcb.builders))
	nodes := make([]*UnderstandingRecord, len(urcb.builders))
	mutators := make([]Mutator, len(urcb.builders))
	for i := range urcb.builders {
		func(i int, root context.Context) {
			builder := urcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnderstandingRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, urcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, urcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, urcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (urcb *UnderstandingRecordCreateBulk) SaveX(ctx context.Context) []*UnderstandingRecord {
	v, err := urcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (urcb *UnderstandingRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := urcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (urcb *UnderstandingRecordCreateBulk) ExecX(ctx context.Context) {
	if err := urcb.Exec(ctx); err != nil {
		panic(err)
	}
}
