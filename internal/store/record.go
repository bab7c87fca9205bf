package store

import (
	"context"
	"fmt"

	"github.com/kunalarora/studypath/ent"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/understandingrecord"
	"github.com/kunalarora/studypath/internal/scoring"
)

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Append(ctx context.Context, rec scoring.UnderstandingRecord) error {
	builder := r.client.UnderstandingRecord.Create().
		SetSequence(rec.Sequence).
		SetTimestamp(rec.Timestamp).
		SetRecordID(rec.RecordID).
		SetUserID(rec.UserID).
		SetConceptID(rec.ConceptID).
		SetCompleteness(rec.Completeness).
		SetCoherence(rec.Coherence).
		SetQuestionAccuracy(rec.QuestionAccuracy).
		SetScore(rec.Score)

	if len(rec.Misconceptions) > 0 {
		builder = builder.SetMisconceptions(misconceptionsToRows(rec.Misconceptions))
	}
	if len(rec.PrerequisiteGaps) > 0 {
		builder = builder.SetPrerequisiteGaps(rec.PrerequisiteGaps)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("append understanding record: %w", err)
	}
	return nil
}

func (r *recordRepo) LoadAll(ctx context.Context) ([]scoring.UnderstandingRecord, error) {
	rows, err := r.client.UnderstandingRecord.Query().
		Order(ent.Asc(understandingrecord.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query understanding records: %w", err)
	}

	out := make([]scoring.UnderstandingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.UnderstandingRecord{
			RecordID:         row.RecordID,
			UserID:           row.UserID,
			ConceptID:        row.ConceptID,
			Completeness:     row.Completeness,
			Coherence:        row.Coherence,
			QuestionAccuracy: row.QuestionAccuracy,
			Score:            row.Score,
			Misconceptions:   misconceptionsFromRows(row.Misconceptions),
			PrerequisiteGaps: row.PrerequisiteGaps,
			Timestamp:        row.Timestamp,
			Sequence:         row.Sequence,
		})
	}
	return out, nil
}

func misconceptionsToRows(in []scoring.Misconception) []schema.MisconceptionRecord {
	out := make([]schema.MisconceptionRecord, 0, len(in))
	for _, m := range in {
		out = append(out, schema.MisconceptionRecord{
			Description:    m.Description,
			Severity:       m.Severity,
			RelatedConcept: m.RelatedConcept,
		})
	}
	return out
}

func misconceptionsFromRows(in []schema.MisconceptionRecord) []scoring.Misconception {
	if len(in) == 0 {
		return nil
	}
	out := make([]scoring.Misconception, 0, len(in))
	for _, m := range in {
		out = append(out, scoring.Misconception{
			Description:    m.Description,
			Severity:       m.Severity,
			RelatedConcept: m.RelatedConcept,
		})
	}
	return out
}
