package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WeightOverride pins a concept's exam weight to a manually supplied
// value. An override survives recalibration until explicitly cleared,
// so it is stored independently of computed weights.
type WeightOverride struct {
	ent.Schema
}

func (WeightOverride) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").
			Unique().
			NotEmpty(),
		field.Float("weight").
			Min(0).
			Max(1),
	}
}
