// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/dependencyedge"
)

// DependencyEdge is the model entity for the DependencyEdge schema.
type DependencyEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PrerequisiteID holds the value of the "prerequisite_id" field.
	PrerequisiteID string `json:"prerequisite_id,omitempty"`
	// DependentID holds the value of the "dependent_id" field.
	DependentID string `json:"dependent_id,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength     float64 `json:"strength,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DependencyEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dependencyedge.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case dependencyedge.FieldID:
			values[i] = new(sql.NullInt64)
		case dependencyedge.FieldPrerequisiteID, dependencyedge.FieldDependentID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DependencyEdge fields.
func (de *DependencyEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dependencyedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			de.ID = int(value.Int64)
		case dependencyedge.FieldPrerequisiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_id", values[i])
			} else if value.Valid {
				de.PrerequisiteID = value.String
			}
		case dependencyedge.FieldDependentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dependent_id", values[i])
			} else if value.Valid {
				de.DependentID = value.String
			}
		case dependencyedge.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				de.Strength = value.Float64
			}
		default:
			de.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DependencyEdge.
// This includes values selected through modifiers, order, etc.
func (de *DependencyEdge) Value(name string) (ent.Value, error) {
	return de.selectValues.Get(name)
}

// Update returns a builder for updating this DependencyEdge.
// Note that you need to call DependencyEdge.Unwrap() before calling this method if this DependencyEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (de *DependencyEdge) Update() *DependencyEdgeUpdateOne {
	return NewDependencyEdgeClient(de.config).UpdateOne(de)
}

// Unwrap unwraps the DependencyEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (de *DependencyEdge) Unwrap() *DependencyEdge {
	_tx, ok := de.config.driver.(*txDriver)
	if !ok {
		panic("ent: DependencyEdge is not a transactional entity")
	}
	de.config.driver = _tx.drv
	return de
}

// String implements the fmt.Stringer.
func (de *DependencyEdge) String() string {
	var builder strings.Builder
	builder.WriteString("DependencyEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", de.ID))
	builder.WriteString("prerequisite_id=")
	builder.WriteString(de.PrerequisiteID)
	builder.WriteString(", ")
	builder.WriteString("dependent_id=")
	builder.WriteString(de.DependentID)
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", de.Strength))
	builder.WriteByte(')')
	return builder.String()
}

// DependencyEdges is a parsable slice of DependencyEdge.
type DependencyEdges []*DependencyEdge
