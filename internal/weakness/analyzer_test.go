package weakness

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/scoring"
)

// fixture builds the chain A -> B -> C and records a score for each
// concept where the map holds one.
func fixture(t *testing.T, scores map[string]float64) *Analyzer {
	t.Helper()
	g := conceptgraph.NewStore()
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddConcept(conceptgraph.Concept{ID: id, Complexity: 3}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := g.AddEdge("A", "B", 0.9); err != nil {
		t.Fatalf("edge: %v", err)
	}
	if err := g.AddEdge("B", "C", 0.5); err != nil {
		t.Fatalf("edge: %v", err)
	}

	agg := scoring.NewAggregator(g)
	now := time.Now()
	for _, id := range []string{"A", "B", "C"} {
		s, ok := scores[id]
		if !ok {
			continue
		}
		// completeness = coherence = accuracy = s gives Score == s.
		if _, err := agg.RecordSession("u1", id, s, s, s, nil, now); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
		now = now.Add(time.Minute)
	}
	return NewAnalyzer(g, agg)
}

func TestDetectRootGaps_SolidConceptSkipsSearch(t *testing.T) {
	a := fixture(t, map[string]float64{"A": 0.1, "B": 0.1, "C": 0.9})
	gaps, err := a.DetectRootGaps("u1", "C")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(gaps) != 0 {
		t.Errorf("got %d gaps for a solid concept, want 0", len(gaps))
	}
}

func TestDetectRootGaps_TraversesThroughStrongPrerequisite(t *testing.T) {
	// B is strong (0.9), so it is not itself a gap, but traversal must
	// continue through it to find weak A.
	a := fixture(t, map[string]float64{"A": 0.3, "B": 0.9, "C": 0.4})
	gaps, err := a.DetectRootGaps("u1", "C")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1: %+v", len(gaps), gaps)
	}
	gap := gaps[0]
	if gap.ConceptID != "A" {
		t.Errorf("gap = %q, want A", gap.ConceptID)
	}
	if math.Abs(gap.UnderstandingScore-0.3) > 1e-9 {
		t.Errorf("gap score = %v, want 0.3", gap.UnderstandingScore)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(gap.AffectedConcepts, want) {
		t.Errorf("affected = %v, want %v", gap.AffectedConcepts, want)
	}
	if gap.Centrality != 2 {
		t.Errorf("centrality = %d, want 2", gap.Centrality)
	}
	// Priority: (1-0.3)*0.5 + (2/2)*0.5 = 0.85.
	if math.Abs(gap.Priority-0.85) > 1e-9 {
		t.Errorf("priority = %v, want 0.85", gap.Priority)
	}
}

func TestDetectRootGaps_UnassessedPrerequisiteCountsAsGap(t *testing.T) {
	a := fixture(t, map[string]float64{"C": 0.2})
	gaps, err := a.DetectRootGaps("u1", "C")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	var ids []string
	for _, g := range gaps {
		ids = append(ids, g.ConceptID)
	}
	// Both A and B unassessed (score 0). A's centrality is 2, B's is 1,
	// so A ranks first.
	if want := []string{"A", "B"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("gap order = %v, want %v", ids, want)
	}
}

func TestDetectRootGaps_RankingAndTiebreak(t *testing.T) {
	// Diamond: R1 -> M, R2 -> M, M -> T. R1 and R2 are symmetric, so
	// equal scores give equal priorities and the tie breaks by ID.
	g := conceptgraph.NewStore()
	for _, id := range []string{"r1", "r2", "mid", "top"} {
		if err := g.AddConcept(conceptgraph.Concept{ID: id, Complexity: 2}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{{"r1", "mid"}, {"r2", "mid"}, {"mid", "top"}} {
		if err := g.AddEdge(e[0], e[1], 0.5); err != nil {
			t.Fatal(err)
		}
	}
	agg := scoring.NewAggregator(g)
	now := time.Now()
	for id, s := range map[string]float64{"r1": 0.2, "r2": 0.2, "mid": 0.3, "top": 0.1} {
		if _, err := agg.RecordSession("u1", id, s, s, s, nil, now); err != nil {
			t.Fatal(err)
		}
	}
	a := NewAnalyzer(g, agg)

	gaps, err := a.DetectRootGaps("u1", "top")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	var ids []string
	for _, gap := range gaps {
		ids = append(ids, gap.ConceptID)
	}
	// mid: (1-0.3)*0.5 + (1/2)*0.5 = 0.6; r1/r2: (1-0.2)*0.5 + (2/2)*0.5 = 0.9.
	if want := []string{"r1", "r2", "mid"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("gap order = %v, want %v", ids, want)
	}
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Priority > gaps[i-1].Priority {
			t.Errorf("gaps not sorted by descending priority: %v", gaps)
		}
	}
}

func TestDetectRootGaps_UnknownConcept(t *testing.T) {
	a := fixture(t, nil)
	_, err := a.DetectRootGaps("u1", "ghost")
	if !errors.Is(err, conceptgraph.ErrUnknownConcept) {
		t.Errorf("got %v, want ErrUnknownConcept", err)
	}
}
