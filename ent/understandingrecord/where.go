// Code generated by ent, DO NOT EDIT.

package understandingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldTimestamp, v))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldRecordID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldConceptID, v))
}

// Completeness applies equality check predicate on the "completeness" field. It's identical to CompletenessEQ.
func Completeness(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldCompleteness, v))
}

// Coherence applies equality check predicate on the "coherence" field. It's identical to CoherenceEQ.
func Coherence(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldCoherence, v))
}

// QuestionAccuracy applies equality check predicate on the "question_accuracy" field. It's identical to QuestionAccuracyEQ.
func QuestionAccuracy(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldQuestionAccuracy, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldTimestamp, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContainsFold(FieldRecordID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldContainsFold(FieldConceptID, v))
}

// CompletenessEQ applies the EQ predicate on the "completeness" field.
func CompletenessEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldCompleteness, v))
}

// CompletenessNEQ applies the NEQ predicate on the "completeness" field.
func CompletenessNEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldCompleteness, v))
}

// CompletenessIn applies the In predicate on the "completeness" field.
func CompletenessIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldCompleteness, vs...))
}

// CompletenessNotIn applies the NotIn predicate on the "completeness" field.
func CompletenessNotIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldCompleteness, vs...))
}

// CompletenessGT applies the GT predicate on the "completeness" field.
func CompletenessGT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldCompleteness, v))
}

// CompletenessGTE applies the GTE predicate on the "completeness" field.
func CompletenessGTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldCompleteness, v))
}

// CompletenessLT applies the LT predicate on the "completeness" field.
func CompletenessLT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldCompleteness, v))
}

// CompletenessLTE applies the LTE predicate on the "completeness" field.
func CompletenessLTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldCompleteness, v))
}

// CoherenceEQ applies the EQ predicate on the "coherence" field.
func CoherenceEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldCoherence, v))
}

// CoherenceNEQ applies the NEQ predicate on the "coherence" field.
func CoherenceNEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldCoherence, v))
}

// CoherenceIn applies the In predicate on the "coherence" field.
func CoherenceIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldCoherence, vs...))
}

// CoherenceNotIn applies the NotIn predicate on the "coherence" field.
func CoherenceNotIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldCoherence, vs...))
}

// CoherenceGT applies the GT predicate on the "coherence" field.
func CoherenceGT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldCoherence, v))
}

// CoherenceGTE applies the GTE predicate on the "coherence" field.
func CoherenceGTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldCoherence, v))
}

// CoherenceLT applies the LT predicate on the "coherence" field.
func CoherenceLT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldCoherence, v))
}

// CoherenceLTE applies the LTE predicate on the "coherence" field.
func CoherenceLTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldCoherence, v))
}

// QuestionAccuracyEQ applies the EQ predicate on the "question_accuracy" field.
func QuestionAccuracyEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldQuestionAccuracy, v))
}

// QuestionAccuracyNEQ applies the NEQ predicate on the "question_accuracy" field.
func QuestionAccuracyNEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldQuestionAccuracy, v))
}

// QuestionAccuracyIn applies the In predicate on the "question_accuracy" field.
func QuestionAccuracyIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldQuestionAccuracy, vs...))
}

// QuestionAccuracyNotIn applies the NotIn predicate on the "question_accuracy" field.
func QuestionAccuracyNotIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldQuestionAccuracy, vs...))
}

// QuestionAccuracyGT applies the GT predicate on the "question_accuracy" field.
func QuestionAccuracyGT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldQuestionAccuracy, v))
}

// QuestionAccuracyGTE applies the GTE predicate on the "question_accuracy" field.
func QuestionAccuracyGTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldQuestionAccuracy, v))
}

// QuestionAccuracyLT applies the LT predicate on the "question_accuracy" field.
func QuestionAccuracyLT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldQuestionAccuracy, v))
}

// QuestionAccuracyLTE applies the LTE predicate on the "question_accuracy" field.
func QuestionAccuracyLTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldQuestionAccuracy, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldLTE(FieldScore, v))
}

// MisconceptionsIsNil applies the IsNil predicate on the "misconceptions" field.
func MisconceptionsIsNil() predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIsNull(FieldMisconceptions))
}

// MisconceptionsNotNil applies the NotNil predicate on the "misconceptions" field.
func MisconceptionsNotNil() predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotNull(FieldMisconceptions))
}

// PrerequisiteGapsIsNil applies the IsNil predicate on the "prerequisite_gaps" field.
func PrerequisiteGapsIsNil() predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldIsNull(FieldPrerequisiteGaps))
}

// PrerequisiteGapsNotNil applies the NotNil predicate on the "prerequisite_gaps" field.
func PrerequisiteGapsNotNil() predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.FieldNotNull(FieldPrerequisiteGaps))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnderstandingRecord) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnderstandingRecord) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnderstandingRecord) predicate.UnderstandingRecord {
	return predicate.UnderstandingRecord(sql.NotPredicates(p))
}
