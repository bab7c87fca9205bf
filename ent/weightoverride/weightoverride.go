// Code generated by ent, DO NOT EDIT.

package weightoverride

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weightoverride type in the database.
	Label = "weight_override"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// Table holds the table name of the weightoverride in the database.
	Table = "weight_overrides"
)

// Columns holds all SQL columns for weightoverride fields.
var Columns = []string{
	FieldID,
	FieldConceptID,
	FieldWeight,
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
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	WeightValidator func(float64) error
)

// OrderOption defines the ordering options for the WeightOverride queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}
