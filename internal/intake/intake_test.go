package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGraphPayload_Valid(t *testing.T) {
	raw := []byte(`{
		"concepts": [
			{"id": "limits", "name": "Limits", "description": "Foundations", "complexity": 2},
			{"id": "derivatives", "complexity": 3}
		],
		"edges": [
			{"prerequisite_id": "limits", "dependent_id": "derivatives", "strength": 0.9}
		]
	}`)

	concepts, edges, err := DecodeGraphPayload(raw)
	require.NoError(t, err)
	require.Len(t, concepts, 2)
	require.Len(t, edges, 1)

	assert.Equal(t, "limits", concepts[0].ID)
	assert.Equal(t, "Limits", concepts[0].Name)
	// Name defaults to the ID when the collaborator omits it.
	assert.Equal(t, "derivatives", concepts[1].Name)
	assert.Equal(t, 0.9, edges[0].Strength)
}

func TestDecodeGraphPayload_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"concepts": [`},
		{"missing concepts", `{"edges": []}`},
		{"complexity out of range", `{"concepts": [{"id": "a", "complexity": 9}]}`},
		{"empty concept id", `{"concepts": [{"id": "", "complexity": 2}]}`},
		{"strength above one", `{"concepts": [{"id": "a", "complexity": 2}], "edges": [{"prerequisite_id": "a", "dependent_id": "b", "strength": 1.5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeGraphPayload([]byte(tt.raw))
			require.Error(t, err)
			var perr *ErrInvalidPayload
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestDecodeExamPapers(t *testing.T) {
	raw := []byte(`{
		"papers": [
			{"year": 2025, "questions": [
				{"concept_id": "limits", "marks": 12},
				{"concept_id": "derivatives", "marks": 8}
			]},
			{"year": 2024, "questions": []}
		]
	}`)

	papers, err := DecodeExamPapers(raw)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, 2025, papers[0].Year)
	require.Len(t, papers[0].Contributions, 2)
	assert.Equal(t, 12.0, papers[0].Contributions[0].Marks)
}

func TestDecodeExamPapers_NegativeMarksRejected(t *testing.T) {
	raw := []byte(`{"papers": [{"year": 2025, "questions": [{"concept_id": "a", "marks": -3}]}]}`)
	_, err := DecodeExamPapers(raw)
	require.Error(t, err)
}

func TestDecodeAssessment(t *testing.T) {
	raw := []byte(`{
		"completeness": 0.8,
		"coherence": 0.6,
		"question_accuracy": 0.7,
		"misconceptions": [
			{"description": "confuses limit with value", "severity": "high", "related_concept": "limits"}
		]
	}`)

	got, err := DecodeAssessment(raw)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.Completeness)
	require.Len(t, got.Misconceptions, 1)
	assert.Equal(t, "high", got.Misconceptions[0].Severity)
}

func TestDecodeAssessment_OutOfRangeRejected(t *testing.T) {
	raw := []byte(`{"completeness": 1.2, "coherence": 0.5, "question_accuracy": 0.5}`)
	_, err := DecodeAssessment(raw)
	require.Error(t, err)
}

func TestDecodeAssessment_BadSeverityRejected(t *testing.T) {
	raw := []byte(`{
		"completeness": 0.5, "coherence": 0.5, "question_accuracy": 0.5,
		"misconceptions": [{"description": "x", "severity": "catastrophic"}]
	}`)
	_, err := DecodeAssessment(raw)
	require.Error(t, err)
}
