// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/understandingrecord"
)

// UnderstandingRecord is the model entity for the UnderstandingRecord schema.
type UnderstandingRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at creation
	RecordID string `json:"record_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Completeness holds the value of the "completeness" field.
	Completeness float64 `json:"completeness,omitempty"`
	// Coherence holds the value of the "coherence" field.
	Coherence float64 `json:"coherence,omitempty"`
	// QuestionAccuracy holds the value of the "question_accuracy" field.
	QuestionAccuracy float64 `json:"question_accuracy,omitempty"`
	// Combined understanding score in [0,1]
	Score float64 `json:"score,omitempty"`
	// Misconceptions holds the value of the "misconceptions" field.
	Misconceptions []schema.MisconceptionRecord `json:"misconceptions,omitempty"`
	// Direct prerequisites below the gap threshold at record time
	PrerequisiteGaps []string `json:"prerequisite_gaps,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnderstandingRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case understandingrecord.FieldMisconceptions, understandingrecord.FieldPrerequisiteGaps:
			values[i] = new([]byte)
		case understandingrecord.FieldCompleteness, understandingrecord.FieldCoherence, understandingrecord.FieldQuestionAccuracy, understandingrecord.FieldScore:
			values[i] = new(sql.NullFloat64)
		case understandingrecord.FieldID, understandingrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case understandingrecord.FieldRecordID, understandingrecord.FieldUserID, understandingrecord.FieldConceptID:
			values[i] = new(sql.NullString)
		case understandingrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnderstandingRecord fields.
func (ur *UnderstandingRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case understandingrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ur.ID = int(value.Int64)
		case understandingrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ur.Sequence = value.Int64
			}
		case understandingrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ur.Timestamp = value.Time
			}
		case understandingrecord.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				ur.RecordID = value.String
			}
		case understandingrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ur.UserID = value.String
			}
		case understandingrecord.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				ur.ConceptID = value.String
			}
		case understandingrecord.FieldCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness", values[i])
			} else if value.Valid {
				ur.Completeness = value.Float64
			}
		case understandingrecord.FieldCoherence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coherence", values[i])
			} else if value.Valid {
				ur.Coherence = value.Float64
			}
		case understandingrecord.FieldQuestionAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_accuracy", values[i])
			} else if value.Valid {
				ur.QuestionAccuracy = value.Float64
			}
		case understandingrecord.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				ur.Score = value.Float64
			}
		case understandingrecord.FieldMisconceptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field misconceptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ur.Misconceptions); err != nil {
					return fmt.Errorf("unmarshal field misconceptions: %w", err)
				}
			}
		case understandingrecord.FieldPrerequisiteGaps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_gaps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ur.PrerequisiteGaps); err != nil {
					return fmt.Errorf("unmarshal field prerequisite_gaps: %w", err)
				}
			}
		default:
			ur.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnderstandingRecord.
// This includes values selected through modifiers, order, etc.
func (ur *UnderstandingRecord) Value(name string) (ent.Value, error) {
	return ur.selectValues.Get(name)
}

// Update returns a builder for updating this UnderstandingRecord.
// Note that you need to call UnderstandingRecord.Unwrap() before calling this method if this UnderstandingRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (ur *UnderstandingRecord) Update() *UnderstandingRecordUpdateOne {
	return NewUnderstandingRecordClient(ur.config).UpdateOne(ur)
}

// Unwrap unwraps the UnderstandingRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ur *UnderstandingRecord) Unwrap() *UnderstandingRecord {
	_tx, ok := ur.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnderstandingRecord is not a transactional entity")
	}
	ur.config.driver = _tx.drv
	return ur
}

// String implements the fmt.Stringer.
func (ur *UnderstandingRecord) String() string {
	var builder strings.Builder
	builder.WriteString("UnderstandingRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ur.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ur.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ur.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("record_id=")
	builder.WriteString(ur.RecordID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(ur.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(ur.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("completeness=")
	builder.WriteString(fmt.Sprintf("%v", ur.Completeness))
	builder.WriteString(", ")
	builder.WriteString("coherence=")
	builder.WriteString(fmt.Sprintf("%v", ur.Coherence))
	builder.WriteString(", ")
	builder.WriteString("question_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", ur.QuestionAccuracy))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", ur.Score))
	builder.WriteString(", ")
	builder.WriteString("misconceptions=")
	builder.WriteString(fmt.Sprintf("%v", ur.Misconceptions))
	builder.WriteString(", ")
	builder.WriteString("prerequisite_gaps=")
	builder.WriteString(fmt.Sprintf("%v", ur.PrerequisiteGaps))
	builder.WriteByte(')')
	return builder.String()
}

// UnderstandingRecords is a parsable slice of UnderstandingRecord.
type UnderstandingRecords []*UnderstandingRecord
