// Package scoring turns raw assessment signals into per-concept
// understanding scores and maintains the append-only score history.
package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kunalarora/studypath/internal/conceptgraph"
)

type userConceptKey struct {
	user    string
	concept string
}

// Aggregator owns the understanding-record history and computes new
// records from session signals. It reads the graph to capture direct
// prerequisite gaps at record time.
//
// Aggregator is not safe for concurrent use; callers serialize access.
type Aggregator struct {
	graph   *conceptgraph.Store
	history map[userConceptKey][]UnderstandingRecord
	nextSeq int64
}

// NewAggregator creates an empty aggregator over the given graph.
func NewAggregator(graph *conceptgraph.Store) *Aggregator {
	return &Aggregator{
		graph:   graph,
		history: make(map[userConceptKey][]UnderstandingRecord),
		nextSeq: 1,
	}
}

// RecordSession computes a new understanding record from one session's
// signals and appends it to the history. questionAccuracy is the caller's
// average across all adversarial-question evaluations in the session.
// Inputs outside [0,1] are rejected; nothing is appended on error.
func (a *Aggregator) RecordSession(userID, conceptID string, completeness, coherence, questionAccuracy float64, misconceptions []Misconception, now time.Time) (UnderstandingRecord, error) {
	if !a.graph.Has(conceptID) {
		return UnderstandingRecord{}, fmt.Errorf("%w: %q", conceptgraph.ErrUnknownConcept, conceptID)
	}
	for _, v := range []float64{completeness, coherence, questionAccuracy} {
		if v < 0 || v > 1 {
			return UnderstandingRecord{}, fmt.Errorf("%w: session signal %v", conceptgraph.ErrInvalidScoreRange, v)
		}
	}

	score := clamp01(completeness)*CompletenessWeight +
		clamp01(questionAccuracy)*AccuracyWeight +
		clamp01(coherence)*CoherenceWeight

	// Capture gaps against current prerequisite scores. A prerequisite
	// that has never been assessed counts as a gap: an unknown foundation
	// is treated as an absent one.
	var gaps []string
	for _, prereq := range a.graph.Prerequisites(conceptID) {
		current, assessed := a.CurrentScore(userID, prereq)
		if !assessed || current < GapThreshold {
			gaps = append(gaps, prereq)
		}
	}

	rec := UnderstandingRecord{
		RecordID:         uuid.New().String(),
		UserID:           userID,
		ConceptID:        conceptID,
		Completeness:     completeness,
		Coherence:        coherence,
		QuestionAccuracy: questionAccuracy,
		Score:            score,
		Misconceptions:   misconceptions,
		PrerequisiteGaps: gaps,
		Timestamp:        now,
		Sequence:         a.nextSeq,
	}
	a.nextSeq++

	key := userConceptKey{user: userID, concept: conceptID}
	a.history[key] = append(a.history[key], rec)
	return rec, nil
}

// CurrentScore resolves the latest record's score for a (user, concept)
// pair: most recent by timestamp, ties broken by higher sequence. The
// second return is false when the concept has never been assessed.
func (a *Aggregator) CurrentScore(userID, conceptID string) (float64, bool) {
	rec, ok := a.Latest(userID, conceptID)
	if !ok {
		return 0, false
	}
	return rec.Score, true
}

// Latest returns the most recent record for a (user, concept) pair.
func (a *Aggregator) Latest(userID, conceptID string) (UnderstandingRecord, bool) {
	recs := a.history[userConceptKey{user: userID, concept: conceptID}]
	if len(recs) == 0 {
		return UnderstandingRecord{}, false
	}
	latest := recs[0]
	for _, r := range recs[1:] {
		if r.Timestamp.After(latest.Timestamp) ||
			(r.Timestamp.Equal(latest.Timestamp) && r.Sequence > latest.Sequence) {
			latest = r
		}
	}
	return latest, true
}

// History returns the full record history for a (user, concept) pair in
// append order.
func (a *Aggregator) History(userID, conceptID string) []UnderstandingRecord {
	recs := a.history[userConceptKey{user: userID, concept: conceptID}]
	out := make([]UnderstandingRecord, len(recs))
	copy(out, recs)
	return out
}

// CurrentScores returns the latest score per concept for a user, only
// for concepts that have been assessed.
func (a *Aggregator) CurrentScores(userID string) map[string]float64 {
	out := make(map[string]float64)
	for key := range a.history {
		if key.user != userID {
			continue
		}
		if score, ok := a.CurrentScore(userID, key.concept); ok {
			out[key.concept] = score
		}
	}
	return out
}

// AllRecords returns every record across all users and concepts, sorted
// by sequence. Used for persistence.
func (a *Aggregator) AllRecords() []UnderstandingRecord {
	var out []UnderstandingRecord
	for _, recs := range a.history {
		out = append(out, recs...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

// Restore replaces the history wholesale from persisted records and
// resumes the sequence counter past the highest seen. Used on load.
func (a *Aggregator) Restore(records []UnderstandingRecord) {
	a.history = make(map[userConceptKey][]UnderstandingRecord)
	var maxSeq int64
	sorted := make([]UnderstandingRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sequence < sorted[j].Sequence })
	for _, rec := range sorted {
		key := userConceptKey{user: rec.UserID, concept: rec.ConceptID}
		a.history[key] = append(a.history[key], rec)
		if rec.Sequence > maxSeq {
			maxSeq = rec.Sequence
		}
	}
	a.nextSeq = maxSeq + 1
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
