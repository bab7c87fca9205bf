// Code generated by ent, DO NOT EDIT.

package dependencyedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dependencyedge type in the database.
	Label = "dependency_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPrerequisiteID holds the string denoting the prerequisite_id field in the database.
	FieldPrerequisiteID = "prerequisite_id"
	// FieldDependentID holds the string denoting the dependent_id field in the database.
	FieldDependentID = "dependent_id"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// Table holds the table name of the dependencyedge in the database.
	Table = "dependency_edges"
)

// Columns holds all SQL columns for dependencyedge fields.
var Columns = []string{
	FieldID,
	FieldPrerequisiteID,
	FieldDependentID,
	FieldStrength,
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
	// PrerequisiteIDValidator is a validator for the "prerequisite_id" field. It is called by the builders before save.
	PrerequisiteIDValidator func(string) error
	// DependentIDValidator is a validator for the "dependent_id" field. It is called by the builders before save.
	DependentIDValidator func(string) error
	// StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	StrengthValidator func(float64) error
)

// OrderOption defines the ordering options for the DependencyEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrerequisiteID orders the results by the prerequisite_id field.
func ByPrerequisiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrerequisiteID, opts...).ToFunc()
}

// ByDependentID orders the results by the dependent_id field.
func ByDependentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependentID, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}
