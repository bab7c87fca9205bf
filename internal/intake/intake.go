// Package intake decodes and validates the payloads produced by the
// external text-analysis and assessment collaborators. The core only
// ever consumes the typed values returned here; transport, extraction
// and model invocation all live outside this module.
package intake

import (
	"encoding/json"
	"fmt"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/examweight"
	"github.com/kunalarora/studypath/internal/scoring"
)

// GraphPayload carries concept and edge candidates resolved from source
// material by the text-analysis collaborator.
type GraphPayload struct {
	Concepts []ConceptCandidate `json:"concepts"`
	Edges    []EdgeCandidate    `json:"edges"`
}

// ConceptCandidate is one proposed concept node.
type ConceptCandidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Complexity  int    `json:"complexity"`
}

// EdgeCandidate is one proposed prerequisite edge.
type EdgeCandidate struct {
	PrerequisiteID string  `json:"prerequisite_id"`
	DependentID    string  `json:"dependent_id"`
	Strength       float64 `json:"strength"`
}

// ExamPapersPayload carries exam-question-to-concept mappings per paper.
type ExamPapersPayload struct {
	Papers []PaperRecord `json:"papers"`
}

// PaperRecord is one exam paper's resolved question contributions.
type PaperRecord struct {
	Year      int              `json:"year"`
	Questions []QuestionRecord `json:"questions"`
}

// QuestionRecord maps one question's marks to a concept.
type QuestionRecord struct {
	ConceptID string  `json:"concept_id"`
	Marks     float64 `json:"marks"`
}

// AssessmentPayload carries one session's understanding signals from the
// assessment collaborator.
type AssessmentPayload struct {
	Completeness     float64                 `json:"completeness"`
	Coherence        float64                 `json:"coherence"`
	QuestionAccuracy float64                 `json:"question_accuracy"`
	Misconceptions   []scoring.Misconception `json:"misconceptions"`
}

// DecodeGraphPayload validates and decodes a graph payload, returning
// the concepts and edges ready for conceptgraph.Store.Import.
func DecodeGraphPayload(raw []byte) ([]conceptgraph.Concept, []conceptgraph.Edge, error) {
	if _, err := validatePayload("graph", graphSchema, raw); err != nil {
		return nil, nil, err
	}
	var payload GraphPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, &ErrInvalidPayload{Kind: "graph", Err: err}
	}

	concepts := make([]conceptgraph.Concept, 0, len(payload.Concepts))
	for _, c := range payload.Concepts {
		name := c.Name
		if name == "" {
			name = c.ID
		}
		concepts = append(concepts, conceptgraph.Concept{
			ID:          c.ID,
			Name:        name,
			Description: c.Description,
			Complexity:  c.Complexity,
		})
	}
	edges := make([]conceptgraph.Edge, 0, len(payload.Edges))
	for _, e := range payload.Edges {
		edges = append(edges, conceptgraph.Edge{
			Prerequisite: e.PrerequisiteID,
			Dependent:    e.DependentID,
			Strength:     e.Strength,
		})
	}
	return concepts, edges, nil
}

// DecodeExamPapers validates and decodes an exam-papers payload into
// calibrator input.
func DecodeExamPapers(raw []byte) ([]examweight.Paper, error) {
	if _, err := validatePayload("exam-papers", examPapersSchema, raw); err != nil {
		return nil, err
	}
	var payload ExamPapersPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidPayload{Kind: "exam-papers", Err: err}
	}

	papers := make([]examweight.Paper, 0, len(payload.Papers))
	for _, p := range payload.Papers {
		paper := examweight.Paper{Year: p.Year}
		for _, q := range p.Questions {
			paper.Contributions = append(paper.Contributions, examweight.Contribution{
				ConceptID: q.ConceptID,
				Marks:     q.Marks,
			})
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

// DecodeAssessment validates and decodes a session assessment payload.
func DecodeAssessment(raw []byte) (*AssessmentPayload, error) {
	if _, err := validatePayload("assessment", assessmentSchema, raw); err != nil {
		return nil, err
	}
	var payload AssessmentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidPayload{Kind: "assessment", Err: err}
	}
	return &payload, nil
}

// DecodeMisconceptions decodes a bare misconception list, used when the
// CLI supplies misconceptions from a separate file.
func DecodeMisconceptions(raw []byte) ([]scoring.Misconception, error) {
	var out []scoring.Misconception
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidPayload{Kind: "misconceptions", Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return out, nil
}
