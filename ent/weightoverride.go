// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// WeightOverride is the model entity for the WeightOverride schema.
type WeightOverride struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight       float64 `json:"weight,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeightOverride) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weightoverride.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case weightoverride.FieldID:
			values[i] = new(sql.NullInt64)
		case weightoverride.FieldConceptID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeightOverride fields.
func (wo *WeightOverride) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weightoverride.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wo.ID = int(value.Int64)
		case weightoverride.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				wo.ConceptID = value.String
			}
		case weightoverride.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				wo.Weight = value.Float64
			}
		default:
			wo.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeightOverride.
// This includes values selected through modifiers, order, etc.
func (wo *WeightOverride) Value(name string) (ent.Value, error) {
	return wo.selectValues.Get(name)
}

// Update returns a builder for updating this WeightOverride.
// Note that you need to call WeightOverride.Unwrap() before calling this method if this WeightOverride
// was returned from a transaction, and the transaction was committed or rolled back.
func (wo *WeightOverride) Update() *WeightOverrideUpdateOne {
	return NewWeightOverrideClient(wo.config).UpdateOne(wo)
}

// Unwrap unwraps the WeightOverride entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wo *WeightOverride) Unwrap() *WeightOverride {
	_tx, ok := wo.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeightOverride is not a transactional entity")
	}
	wo.config.driver = _tx.drv
	return wo
}

// String implements the fmt.Stringer.
func (wo *WeightOverride) String() string {
	var builder strings.Builder
	builder.WriteString("WeightOverride(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wo.ID))
	builder.WriteString("concept_id=")
	builder.WriteString(wo.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", wo.Weight))
	builder.WriteByte(')')
	return builder.String()
}

// WeightOverrides is a parsable slice of WeightOverride.
type WeightOverrides []*WeightOverride
