// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "concept_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "complexity", Type: field.TypeInt},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1]},
			},
		},
	}
	// DependencyEdgesColumns holds the columns for the "dependency_edges" table.
	DependencyEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "prerequisite_id", Type: field.TypeString},
		{Name: "dependent_id", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64},
	}
	// DependencyEdgesTable holds the schema information for the "dependency_edges" table.
	DependencyEdgesTable = &schema.Table{
		Name:       "dependency_edges",
		Columns:    DependencyEdgesColumns,
		PrimaryKey: []*schema.Column{DependencyEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dependencyedge_prerequisite_id_dependent_id",
				Unique:  true,
				Columns: []*schema.Column{DependencyEdgesColumns[1], DependencyEdgesColumns[2]},
			},
			{
				Name:    "dependencyedge_dependent_id",
				Unique:  false,
				Columns: []*schema.Column{DependencyEdgesColumns[2]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// UnderstandingRecordsColumns holds the columns for the "understanding_records" table.
	UnderstandingRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "completeness", Type: field.TypeFloat64},
		{Name: "coherence", Type: field.TypeFloat64},
		{Name: "question_accuracy", Type: field.TypeFloat64},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "misconceptions", Type: field.TypeJSON, Nullable: true},
		{Name: "prerequisite_gaps", Type: field.TypeJSON, Nullable: true},
	}
	// UnderstandingRecordsTable holds the schema information for the "understanding_records" table.
	UnderstandingRecordsTable = &schema.Table{
		Name:       "understanding_records",
		Columns:    UnderstandingRecordsColumns,
		PrimaryKey: []*schema.Column{UnderstandingRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "understandingrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{UnderstandingRecordsColumns[1]},
			},
			{
				Name:    "understandingrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UnderstandingRecordsColumns[2]},
			},
			{
				Name:    "understandingrecord_user_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{UnderstandingRecordsColumns[4], UnderstandingRecordsColumns[5]},
			},
		},
	}
	// WeightOverridesColumns holds the columns for the "weight_overrides" table.
	WeightOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "concept_id", Type: field.TypeString, Unique: true},
		{Name: "weight", Type: field.TypeFloat64},
	}
	// WeightOverridesTable holds the schema information for the "weight_overrides" table.
	WeightOverridesTable = &schema.Table{
		Name:       "weight_overrides",
		Columns:    WeightOverridesColumns,
		PrimaryKey: []*schema.Column{WeightOverridesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptsTable,
		DependencyEdgesTable,
		SnapshotsTable,
		UnderstandingRecordsTable,
		WeightOverridesTable,
	}
)

func init() {
}
