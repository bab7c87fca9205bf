package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnderstandingRecord is one assessment session's persisted result for a
// (user, concept) pair. Records are append-only: there is no update path,
// and the current score is always the latest record by timestamp.
type UnderstandingRecord struct {
	ent.Schema
}

func (UnderstandingRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// MisconceptionRecord is the serialized form of one misconception.
type MisconceptionRecord struct {
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	RelatedConcept string `json:"related_concept,omitempty"`
}

func (UnderstandingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("user_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("completeness"),
		field.Float("coherence"),
		field.Float("question_accuracy"),
		field.Float("score").
			Comment("Combined understanding score in [0,1]"),
		field.JSON("misconceptions", []MisconceptionRecord{}).
			Optional(),
		field.Strings("prerequisite_gaps").
			Optional().
			Comment("Direct prerequisites below the gap threshold at record time"),
	}
}

func (UnderstandingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id"),
	}
}
