// Code generated by ent, DO NOT EDIT.

package understandingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the understandingrecord type in the database.
	Label = "understanding_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRecordID holds the string denoting the record_id field in the database.
	FieldRecordID = "record_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldCompleteness holds the string denoting the completeness field in the database.
	FieldCompleteness = "completeness"
	// FieldCoherence holds the string denoting the coherence field in the database.
	FieldCoherence = "coherence"
	// FieldQuestionAccuracy holds the string denoting the question_accuracy field in the database.
	FieldQuestionAccuracy = "question_accuracy"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMisconceptions holds the string denoting the misconceptions field in the database.
	FieldMisconceptions = "misconceptions"
	// FieldPrerequisiteGaps holds the string denoting the prerequisite_gaps field in the database.
	FieldPrerequisiteGaps = "prerequisite_gaps"
	// Table holds the table name of the understandingrecord in the database.
	Table = "understanding_records"
)

// Columns holds all SQL columns for understandingrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRecordID,
	FieldUserID,
	FieldConceptID,
	FieldCompleteness,
	FieldCoherence,
	FieldQuestionAccuracy,
	FieldScore,
	FieldMisconceptions,
	FieldPrerequisiteGaps,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	RecordIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
)

// OrderOption defines the ordering options for the UnderstandingRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRecordID orders the results by the record_id field.
func ByRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByCompleteness orders the results by the completeness field.
func ByCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteness, opts...).ToFunc()
}

// ByCoherence orders the results by the coherence field.
func ByCoherence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoherence, opts...).ToFunc()
}

// ByQuestionAccuracy orders the results by the question_accuracy field.
func ByQuestionAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionAccuracy, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}
