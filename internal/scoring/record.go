package scoring

import "time"

// Misconception is a structured misunderstanding reported by the external
// assessment collaborator, carried on the record verbatim.
type Misconception struct {
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	RelatedConcept string `json:"related_concept,omitempty"`
}

// UnderstandingRecord captures one assessment session's result for a
// (user, concept) pair. Records are append-only: superseding results
// create new records, and history is never rewritten.
type UnderstandingRecord struct {
	RecordID         string
	UserID           string
	ConceptID        string
	Completeness     float64
	Coherence        float64
	QuestionAccuracy float64
	Score            float64
	Misconceptions   []Misconception
	PrerequisiteGaps []string
	Timestamp        time.Time
	Sequence         int64
}
