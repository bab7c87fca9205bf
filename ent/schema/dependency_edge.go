package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DependencyEdge is a persisted prerequisite relationship between two
// concepts, unique per ordered pair. Strength is the only mutable field.
type DependencyEdge struct {
	ent.Schema
}

func (DependencyEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("prerequisite_id").
			NotEmpty(),
		field.String("dependent_id").
			NotEmpty(),
		field.Float("strength").
			Min(0).
			Max(1),
	}
}

func (DependencyEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prerequisite_id", "dependent_id").
			Unique(),
		index.Fields("dependent_id"),
	}
}
