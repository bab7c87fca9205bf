// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/understandingrecord"
)

// UnderstandingRecordUpdate is the builder for updating UnderstandingRecord entities.
type UnderstandingRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UnderstandingRecordMutation
}

// Where appends a list predicates to the UnderstandingRecordUpdate builder.
func (uru *UnderstandingRecordUpdate) Where(ps ...predicate.UnderstandingRecord) *UnderstandingRecordUpdate {
	uru.mutation.Where(ps...)
	return uru
}

// SetUserID sets the "user_id" field.
func (uru *UnderstandingRecordUpdate) SetUserID(s string) *UnderstandingRecordUpdate {
	uru.mutation.SetUserID(s)
	return uru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableUserID(s *string) *UnderstandingRecordUpdate {
	if s != nil {
		uru.SetUserID(*s)
	}
	return uru
}

// SetConceptID sets the "concept_id" field.
func (uru *UnderstandingRecordUpdate) SetConceptID(s string) *UnderstandingRecordUpdate {
	uru.mutation.SetConceptID(s)
	return uru
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableConceptID(s *string) *UnderstandingRecordUpdate {
	if s != nil {
		uru.SetConceptID(*s)
	}
	return uru
}

// SetCompleteness sets the "completeness" field.
func (uru *UnderstandingRecordUpdate) SetCompleteness(f float64) *UnderstandingRecordUpdate {
	uru.mutation.ResetCompleteness()
	uru.mutation.SetCompleteness(f)
	return uru
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableCompleteness(f *float64) *UnderstandingRecordUpdate {
	if f != nil {
		uru.SetCompleteness(*f)
	}
	return uru
}

// AddCompleteness adds f to the "completeness" field.
func (uru *UnderstandingRecordUpdate) AddCompleteness(f float64) *UnderstandingRecordUpdate {
	uru.mutation.AddCompleteness(f)
	return uru
}

// SetCoherence sets the "coherence" field.
func (uru *UnderstandingRecordUpdate) SetCoherence(f float64) *UnderstandingRecordUpdate {
	uru.mutation.ResetCoherence()
	uru.mutation.SetCoherence(f)
	return uru
}

// SetNillableCoherence sets the "coherence" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableCoherence(f *float64) *UnderstandingRecordUpdate {
	if f != nil {
		uru.SetCoherence(*f)
	}
	return uru
}

// AddCoherence adds f to the "coherence" field.
func (uru *UnderstandingRecordUpdate) AddCoherence(f float64) *UnderstandingRecordUpdate {
	uru.mutation.AddCoherence(f)
	return uru
}

// SetQuestionAccuracy sets the "question_accuracy" field.
func (uru *UnderstandingRecordUpdate) SetQuestionAccuracy(f float64) *UnderstandingRecordUpdate {
	uru.mutation.ResetQuestionAccuracy()
	uru.mutation.SetQuestionAccuracy(f)
	return uru
}

// SetNillableQuestionAccuracy sets the "question_accuracy" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableQuestionAccuracy(f *float64) *UnderstandingRecordUpdate {
	if f != nil {
		uru.SetQuestionAccuracy(*f)
	}
	return uru
}

// AddQuestionAccuracy adds f to the "question_accuracy" field.
func (uru *UnderstandingRecordUpdate) AddQuestionAccuracy(f float64) *UnderstandingRecordUpdate {
	uru.mutation.AddQuestionAccuracy(f)
	return uru
}

// SetScore sets the "score" field.
func (uru *UnderstandingRecordUpdate) SetScore(f float64) *UnderstandingRecordUpdate {
	uru.mutation.ResetScore()
	uru.mutation.SetScore(f)
	return uru
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (uru *UnderstandingRecordUpdate) SetNillableScore(f *float64) *UnderstandingRecordUpdate {
	if f != nil {
		uru.SetScore(*f)
	}
	return uru
}

// AddScore adds f to the "score" field.
func (uru *UnderstandingRecordUpdate) AddScore(f float64) *UnderstandingRecordUpdate {
	uru.mutation.AddScore(f)
	return uru
}

// SetMisconceptions sets the "misconceptions" field.
func (uru *UnderstandingRecordUpdate) SetMisconceptions(sr []schema.MisconceptionRecord) *UnderstandingRecordUpdate {
	uru.mutation.SetMisconceptions(sr)
	return uru
}

// AppendMisconceptions appends sr to the "misconceptions" field.
func (uru *UnderstandingRecordUpdate) AppendMisconceptions(sr []schema.MisconceptionRecord) *UnderstandingRecordUpdate {
	uru.mutation.AppendMisconceptions(sr)
	return uru
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (uru *UnderstandingRecordUpdate) ClearMisconceptions() *UnderstandingRecordUpdate {
	uru.mutation.ClearMisconceptions()
	return uru
}

// SetPrerequisiteGaps sets the "prerequisite_gaps" field.
func (uru *UnderstandingRecordUpdate) SetPrerequisiteGaps(s []string) *UnderstandingRecordUpdate {
	uru.mutation.SetPrerequisiteGaps(s)
	return uru
}

// AppendPrerequisiteGaps appends s to the "prerequisite_gaps" field.
func (uru *UnderstandingRecordUpdate) AppendPrerequisiteGaps(s []string) *UnderstandingRecordUpdate {
	uru.mutation.AppendPrerequisiteGaps(s)
	return uru
}

// ClearPrerequisiteGaps clears the value of the "prerequisite_gaps" field.
func (uru *UnderstandingRecordUpdate) ClearPrerequisiteGaps() *UnderstandingRecordUpdate {
	uru.mutation.ClearPrerequisiteGaps()
	return uru
}

// Mutation returns the UnderstandingRecordMutation object of the builder.
func (uru *UnderstandingRecordUpdate) Mutation() *UnderstandingRecordMutation {
	return uru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uru *UnderstandingRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uru.sqlSave, uru.mutation, uru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uru *UnderstandingRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := uru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uru *UnderstandingRecordUpdate) Exec(ctx context.Context) error {
	_, err := uru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uru *UnderstandingRecordUpdate) ExecX(ctx context.Context) {
	if err := uru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uru *UnderstandingRecordUpdate) check() error {
	if v, ok := uru.mutation.UserID(); ok {
		if err := understandingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.user_id": %w`, err)}
		}
	}
	if v, ok := uru.mutation.ConceptID(); ok {
		if err := understandingrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (uru *UnderstandingRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(understandingrecord.Table, understandingrecord.Columns, sqlgraph.NewFieldSpec(understandingrecord.FieldID, field.TypeInt))
	if ps := uru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uru.mutation.UserID(); ok {
		_spec.SetField(understandingrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := uru.mutation.ConceptID(); ok {
		_spec.SetField(understandingrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := uru.mutation.Completeness(); ok {
		_spec.SetField(understandingrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedCompleteness(); ok {
		_spec.AddField(understandingrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.Coherence(); ok {
		_spec.SetField(understandingrecord.FieldCoherence, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedCoherence(); ok {
		_spec.AddField(understandingrecord.FieldCoherence, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.QuestionAccuracy(); ok {
		_spec.SetField(understandingrecord.FieldQuestionAccuracy, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedQuestionAccuracy(); ok {
		_spec.AddField(understandingrecord.FieldQuestionAccuracy, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.Score(); ok {
		_spec.SetField(understandingrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedScore(); ok {
		_spec.AddField(understandingrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.Misconceptions(); ok {
		_spec.SetField(understandingrecord.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := uru.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, understandingrecord.FieldMisconceptions, value)
		})
	}
	if uru.mutation.MisconceptionsCleared() {
		_spec.ClearField(understandingrecord.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := uru.mutation.PrerequisiteGaps(); ok {
		_spec.SetField(understandingrecord.FieldPrerequisiteGaps, field.TypeJSON, value)
	}
	if value, ok := uru.mutation.AppendedPrerequisiteGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, understandingrecord.FieldPrerequisiteGaps, value)
		})
	}
	if uru.mutation.PrerequisiteGapsCleared() {
		_spec.ClearField(understandingrecord.FieldPrerequisiteGaps, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{understandingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uru.mutation.done = true
	return n, nil
}

// UnderstandingRecordUpdateOne is the builder for updating a single UnderstandingRecord entity.
type UnderstandingRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnderstandingRecordMutation
}

// SetUserID sets the "user_id" field.
func (uruo *UnderstandingRecordUpdateOne) SetUserID(s string) *UnderstandingRecordUpdateOne {
	uruo.mutation.SetUserID(s)
	return uruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableUserID(s *string) *UnderstandingRecordUpdateOne {
	if s != nil {
		uruo.SetUserID(*s)
	}
	return uruo
}

// SetConceptID sets the "concept_id" field.
func (uruo *UnderstandingRecordUpdateOne) SetConceptID(s string) *UnderstandingRecordUpdateOne {
	uruo.mutation.SetConceptID(s)
	return uruo
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableConceptID(s *string) *UnderstandingRecordUpdateOne {
	if s != nil {
		uruo.SetConceptID(*s)
	}
	return uruo
}

// SetCompleteness sets the "completeness" field.
func (uruo *UnderstandingRecordUpdateOne) SetCompleteness(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.ResetCompleteness()
	uruo.mutation.SetCompleteness(f)
	return uruo
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableCompleteness(f *float64) *UnderstandingRecordUpdateOne {
	if f != nil {
		uruo.SetCompleteness(*f)
	}
	return uruo
}

// AddCompleteness adds f to the "completeness" field.
func (uruo *UnderstandingRecordUpdateOne) AddCompleteness(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.AddCompleteness(f)
	return uruo
}

// SetCoherence sets the "coherence" field.
func (uruo *UnderstandingRecordUpdateOne) SetCoherence(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.ResetCoherence()
	uruo.mutation.SetCoherence(f)
	return uruo
}

// SetNillableCoherence sets the "coherence" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableCoherence(f *float64) *UnderstandingRecordUpdateOne {
	if f != nil {
		uruo.SetCoherence(*f)
	}
	return uruo
}

// AddCoherence adds f to the "coherence" field.
func (uruo *UnderstandingRecordUpdateOne) AddCoherence(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.AddCoherence(f)
	return uruo
}

// SetQuestionAccuracy sets the "question_accuracy" field.
func (uruo *UnderstandingRecordUpdateOne) SetQuestionAccuracy(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.ResetQuestionAccuracy()
	uruo.mutation.SetQuestionAccuracy(f)
	return uruo
}

// SetNillableQuestionAccuracy sets the "question_accuracy" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableQuestionAccuracy(f *float64) *UnderstandingRecordUpdateOne {
	if f != nil {
		uruo.SetQuestionAccuracy(*f)
	}
	return uruo
}

// AddQuestionAccuracy adds f to the "question_accuracy" field.
func (uruo *UnderstandingRecordUpdateOne) AddQuestionAccuracy(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.AddQuestionAccuracy(f)
	return uruo
}

// SetScore sets the "score" field.
func (uruo *UnderstandingRecordUpdateOne) SetScore(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.ResetScore()
	uruo.mutation.SetScore(f)
	return uruo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (uruo *UnderstandingRecordUpdateOne) SetNillableScore(f *float64) *UnderstandingRecordUpdateOne {
	if f != nil {
		uruo.SetScore(*f)
	}
	return uruo
}

// AddScore adds f to the "score" field.
func (uruo *UnderstandingRecordUpdateOne) AddScore(f float64) *UnderstandingRecordUpdateOne {
	uruo.mutation.AddScore(f)
	return uruo
}

// SetMisconceptions sets the "misconceptions" field.
func (uruo *UnderstandingRecordUpdateOne) SetMisconceptions(sr []schema.MisconceptionRecord) *UnderstandingRecordUpdateOne {
	uruo.mutation.SetMisconceptions(sr)
	return uruo
}

// AppendMisconceptions appends sr to the "misconceptions" field.
func (uruo *UnderstandingRecordUpdateOne) AppendMisconceptions(sr []schema.MisconceptionRecord) *UnderstandingRecordUpdateOne {
	uruo.mutation.AppendMisconceptions(sr)
	return uruo
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (uruo *UnderstandingRecordUpdateOne) ClearMisconceptions() *UnderstandingRecordUpdateOne {
	uruo.mutation.ClearMisconceptions()
	return uruo
}

// SetPrerequisiteGaps sets the "prerequisite_gaps" field.
func (uruo *UnderstandingRecordUpdateOne) SetPrerequisiteGaps(s []string) *UnderstandingRecordUpdateOne {
	uruo.mutation.SetPrerequisiteGaps(s)
	return uruo
}

// AppendPrerequisiteGaps appends s to the "prerequisite_gaps" field.
func (uruo *UnderstandingRecordUpdateOne) AppendPrerequisiteGaps(s []string) *UnderstandingRecordUpdateOne {
	uruo.mutation.AppendPrerequisiteGaps(s)
	return uruo
}

// ClearPrerequisiteGaps clears the value of the "prerequisite_gaps" field.
func (uruo *UnderstandingRecordUpdateOne) ClearPrerequisiteGaps() *UnderstandingRecordUpdateOne {
	uruo.mutation.ClearPrerequisiteGaps()
	return uruo
}

// Mutation returns the UnderstandingRecordMutation object of the builder.
func (uruo *UnderstandingRecordUpdateOne) Mutation() *UnderstandingRecordMutation {
	return uruo.mutation
}

// Where appends a list predicates to the UnderstandingRecordUpdate builder.
func (uruo *UnderstandingRecordUpdateOne) Where(ps ...predicate.UnderstandingRecord) *UnderstandingRecordUpdateOne {
	uruo.mutation.Where(ps...)
	return uruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uruo *UnderstandingRecordUpdateOne) Select(field string, fields ...string) *UnderstandingRecordUpdateOne {
	uruo.fields = append([]string{field}, fields...)
	return uruo
}

// Save executes the query and returns the updated UnderstandingRecord entity.
func (uruo *UnderstandingRecordUpdateOne) Save(ctx context.Context) (*UnderstandingRecord, error) {
	return withHooks(ctx, uruo.sqlSave, uruo.mutation, uruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uruo *UnderstandingRecordUpdateOne) SaveX(ctx context.Context) *UnderstandingRecord {
	node, err := uruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uruo *UnderstandingRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := uruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uruo *UnderstandingRecordUpdateOne) ExecX(ctx context.Context) {
	if err := uruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uruo *UnderstandingRecordUpdateOne) check() error {
	if v, ok := uruo.mutation.UserID(); ok {
		if err := understandingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.user_id": %w`, err)}
		}
	}
	if v, ok := uruo.mutation.ConceptID(); ok {
		if err := understandingrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "UnderstandingRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (uruo *UnderstandingRecordUpdateOne) sqlSave(ctx context.Context) (_node *UnderstandingRecord, err error) {
	if err := uruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(understandingrecord.Table, understandingrecord.Columns, sqlgraph.NewFieldSpec(understandingrecord.FieldID, field.TypeInt))
	id, ok := uruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnderstandingRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, understandingrecord.FieldID)
		for _, f := range fields {
			if !understandingrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != understandingrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uruo.mutation.UserID(); ok {
		_spec.SetField(understandingrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := uruo.mutation.ConceptID(); ok {
		_spec.SetField(understandingrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := uruo.mutation.Completeness(); ok {
		_spec.SetField(understandingrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedCompleteness(); ok {
		_spec.AddField(understandingrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.Coherence(); ok {
		_spec.SetField(understandingrecord.FieldCoherence, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedCoherence(); ok {
		_spec.AddField(understandingrecord.FieldCoherence, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.QuestionAccuracy(); ok {
		_spec.SetField(understandingrecord.FieldQuestionAccuracy, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedQuestionAccuracy(); ok {
		_spec.AddField(understandingrecord.FieldQuestionAccuracy, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.Score(); ok {
		_spec.SetField(understandingrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedScore(); ok {
		_spec.AddField(understandingrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.Misconceptions(); ok {
		_spec.SetField(understandingrecord.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := uruo.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, understandingrecord.FieldMisconceptions, value)
		})
	}
	if uruo.mutation.MisconceptionsCleared() {
		_spec.ClearField(understandingrecord.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := uruo.mutation.PrerequisiteGaps(); ok {
		_spec.SetField(understandingrecord.FieldPrerequisiteGaps, field.TypeJSON, value)
	}
	if value, ok := uruo.mutation.AppendedPrerequisiteGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, understandingrecord.FieldPrerequisiteGaps, value)
		})
	}
	if uruo.mutation.PrerequisiteGapsCleared() {
		_spec.ClearField(understandingrecord.FieldPrerequisiteGaps, field.TypeJSON)
	}
	_node = &UnderstandingRecord{config: uruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{understandingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uruo.mutation.done = true
	return _node, nil
}
