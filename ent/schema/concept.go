package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a persisted learning-concept node. The prerequisite
// structure lives in DependencyEdge rows; derived values (centrality,
// priority) are recomputed in memory and never stored.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").
			Unique().
			NotEmpty().
			Comment("Stable external identifier"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Int("complexity").
			Min(1).
			Max(5).
			Comment("Difficulty on a 1-5 scale"),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
