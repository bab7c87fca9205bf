package scoring

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kunalarora/studypath/internal/conceptgraph"
)

func testGraph(t *testing.T) *conceptgraph.Store {
	t.Helper()
	g := conceptgraph.NewStore()
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddConcept(conceptgraph.Concept{ID: id, Complexity: 3}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := g.AddEdge("A", "B", 0.9); err != nil {
		t.Fatalf("edge A->B: %v", err)
	}
	if err := g.AddEdge("B", "C", 0.5); err != nil {
		t.Fatalf("edge B->C: %v", err)
	}
	return g
}

func TestRecordSession_ScoreFormula(t *testing.T) {
	a := NewAggregator(testGraph(t))
	tests := []struct {
		completeness, coherence, accuracy float64
		want                              float64
	}{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5},
		{0.8, 0.4, 0.6, 0.8*0.4 + 0.6*0.4 + 0.4*0.2},
		{1, 0, 0, 0.4},
		{0, 1, 0, 0.2},
		{0, 0, 1, 0.4},
	}
	for _, tt := range tests {
		rec, err := a.RecordSession("u1", "A", tt.completeness, tt.coherence, tt.accuracy, nil, time.Now())
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		if math.Abs(rec.Score-tt.want) > 1e-9 {
			t.Errorf("score(%v,%v,%v) = %v, want %v", tt.completeness, tt.coherence, tt.accuracy, rec.Score, tt.want)
		}
		if rec.Score < 0 || rec.Score > 1 {
			t.Errorf("score %v outside [0,1]", rec.Score)
		}
	}
}

func TestRecordSession_RejectsOutOfRange(t *testing.T) {
	a := NewAggregator(testGraph(t))
	cases := [][3]float64{
		{-0.1, 0.5, 0.5},
		{0.5, 1.2, 0.5},
		{0.5, 0.5, 7},
	}
	for _, c := range cases {
		_, err := a.RecordSession("u1", "A", c[0], c[1], c[2], nil, time.Now())
		if !errors.Is(err, conceptgraph.ErrInvalidScoreRange) {
			t.Errorf("inputs %v: got %v, want ErrInvalidScoreRange", c, err)
		}
	}
	if len(a.History("u1", "A")) != 0 {
		t.Error("rejected session left a record behind")
	}
}

func TestRecordSession_UnknownConcept(t *testing.T) {
	a := NewAggregator(testGraph(t))
	_, err := a.RecordSession("u1", "nope", 0.5, 0.5, 0.5, nil, time.Now())
	if !errors.Is(err, conceptgraph.ErrUnknownConcept) {
		t.Errorf("got %v, want ErrUnknownConcept", err)
	}
}

func TestRecordSession_CapturesPrerequisiteGaps(t *testing.T) {
	a := NewAggregator(testGraph(t))
	now := time.Now()

	// A scores weak, so a later B session should flag A as a gap.
	if _, err := a.RecordSession("u1", "A", 0.3, 0.3, 0.3, nil, now); err != nil {
		t.Fatalf("record A: %v", err)
	}
	rec, err := a.RecordSession("u1", "B", 0.9, 0.9, 0.9, nil, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("record B: %v", err)
	}
	if len(rec.PrerequisiteGaps) != 1 || rec.PrerequisiteGaps[0] != "A" {
		t.Errorf("gaps = %v, want [A]", rec.PrerequisiteGaps)
	}

	// Strengthen A; a fresh B record must not carry the gap, and the old
	// B record must be left untouched.
	if _, err := a.RecordSession("u1", "A", 0.9, 0.9, 0.9, nil, now.Add(2*time.Minute)); err != nil {
		t.Fatalf("record A again: %v", err)
	}
	rec2, err := a.RecordSession("u1", "B", 0.9, 0.9, 0.9, nil, now.Add(3*time.Minute))
	if err != nil {
		t.Fatalf("record B again: %v", err)
	}
	if len(rec2.PrerequisiteGaps) != 0 {
		t.Errorf("gaps after strengthening = %v, want none", rec2.PrerequisiteGaps)
	}
	hist := a.History("u1", "B")
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	if len(hist[0].PrerequisiteGaps) != 1 {
		t.Error("earlier record's gap list was mutated retroactively")
	}
}

func TestRecordSession_UnassessedPrerequisiteIsGap(t *testing.T) {
	a := NewAggregator(testGraph(t))
	rec, err := a.RecordSession("u1", "B", 0.9, 0.9, 0.9, nil, time.Now())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(rec.PrerequisiteGaps) != 1 || rec.PrerequisiteGaps[0] != "A" {
		t.Errorf("gaps = %v, want [A] for never-assessed prerequisite", rec.PrerequisiteGaps)
	}
}

func TestCurrentScore_LatestByTimestamp(t *testing.T) {
	a := NewAggregator(testGraph(t))
	now := time.Now()
	if _, err := a.RecordSession("u1", "A", 0.2, 0.2, 0.2, nil, now); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RecordSession("u1", "A", 0.9, 0.9, 0.9, nil, now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	score, ok := a.CurrentScore("u1", "A")
	if !ok {
		t.Fatal("expected a current score")
	}
	if math.Abs(score-0.9) > 1e-9 {
		t.Errorf("current score = %v, want 0.9", score)
	}
	if got := len(a.History("u1", "A")); got != 2 {
		t.Errorf("history length = %d, want 2 (append-only)", got)
	}
}

func TestCurrentScore_EqualTimestampsHigherSequenceWins(t *testing.T) {
	a := NewAggregator(testGraph(t))
	now := time.Now()
	if _, err := a.RecordSession("u1", "A", 0.2, 0.2, 0.2, nil, now); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RecordSession("u1", "A", 0.8, 0.8, 0.8, nil, now); err != nil {
		t.Fatal(err)
	}
	score, _ := a.CurrentScore("u1", "A")
	if math.Abs(score-0.8) > 1e-9 {
		t.Errorf("current score = %v, want 0.8 (later sequence)", score)
	}
}

func TestCurrentScores_PerUserIsolation(t *testing.T) {
	a := NewAggregator(testGraph(t))
	now := time.Now()
	if _, err := a.RecordSession("u1", "A", 0.9, 0.9, 0.9, nil, now); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RecordSession("u2", "A", 0.1, 0.1, 0.1, nil, now); err != nil {
		t.Fatal(err)
	}

	u1 := a.CurrentScores("u1")
	if len(u1) != 1 || math.Abs(u1["A"]-0.9) > 1e-9 {
		t.Errorf("u1 scores = %v, want map[A:0.9]", u1)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	a := NewAggregator(testGraph(t))
	now := time.Now()
	if _, err := a.RecordSession("u1", "A", 0.3, 0.4, 0.5, []Misconception{{Description: "sign error", Severity: "high"}}, now); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RecordSession("u1", "B", 0.9, 0.9, 0.9, nil, now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}

	records := a.AllRecords()

	b := NewAggregator(testGraph(t))
	b.Restore(records)

	if len(b.AllRecords()) != 2 {
		t.Fatalf("restored %d records, want 2", len(b.AllRecords()))
	}
	origScore, _ := a.CurrentScore("u1", "A")
	restScore, _ := b.CurrentScore("u1", "A")
	if origScore != restScore {
		t.Errorf("restored score %v, want %v", restScore, origScore)
	}

	// Sequence counter resumes: a new record gets a fresh sequence.
	rec, err := b.RecordSession("u1", "C", 0.5, 0.5, 0.5, nil, now.Add(2*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Sequence != 3 {
		t.Errorf("resumed sequence = %d, want 3", rec.Sequence)
	}
}
