package examweight

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRecalculate_NoPapersUniform(t *testing.T) {
	c := New()
	weights := c.Recalculate([]string{"A", "B", "C", "D"}, nil, 2026)
	for id, w := range weights {
		if !almostEqual(w, 0.25) {
			t.Errorf("weight(%s) = %v, want 0.25", id, w)
		}
	}
}

func TestRecalculate_TopConceptNormalizedToOne(t *testing.T) {
	c := New()
	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{
			{ConceptID: "A", Marks: 10},
			{ConceptID: "B", Marks: 5},
		}},
	}
	weights := c.Recalculate([]string{"A", "B"}, papers, 2026)
	if !almostEqual(weights["A"], 1.0) {
		t.Errorf("weight(A) = %v, want 1.0", weights["A"])
	}
	if !almostEqual(weights["B"], 0.5) {
		t.Errorf("weight(B) = %v, want 0.5", weights["B"])
	}
}

func TestRecalculate_RecencyDecay(t *testing.T) {
	c := New()
	// Same marks, different years: the older paper's concept must end up
	// strictly below the recent paper's concept.
	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{{ConceptID: "recent", Marks: 10}}},
		{Year: 2020, Contributions: []Contribution{{ConceptID: "old", Marks: 10}}},
	}
	weights := c.Recalculate([]string{"recent", "old"}, papers, 2026)
	if !almostEqual(weights["recent"], 1.0) {
		t.Errorf("weight(recent) = %v, want 1.0", weights["recent"])
	}
	want := math.Pow(DefaultDecay, 6)
	if !almostEqual(weights["old"], want) {
		t.Errorf("weight(old) = %v, want %v", weights["old"], want)
	}
}

func TestRecalculate_AccumulatesAcrossPapers(t *testing.T) {
	c := New()
	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{{ConceptID: "A", Marks: 4}}},
		{Year: 2026, Contributions: []Contribution{{ConceptID: "A", Marks: 6}, {ConceptID: "B", Marks: 10}}},
	}
	weights := c.Recalculate([]string{"A", "B"}, papers, 2026)
	// A and B both total 10 marks with no decay.
	if !almostEqual(weights["A"], 1.0) || !almostEqual(weights["B"], 1.0) {
		t.Errorf("weights = %v, want A and B both 1.0", weights)
	}
}

func TestRecalculate_UnknownConceptIgnored(t *testing.T) {
	c := New()
	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{
			{ConceptID: "A", Marks: 5},
			{ConceptID: "ghost", Marks: 100},
		}},
	}
	weights := c.Recalculate([]string{"A"}, papers, 2026)
	if _, ok := weights["ghost"]; ok {
		t.Error("unknown concept leaked into weight map")
	}
	if !almostEqual(weights["A"], 1.0) {
		t.Errorf("weight(A) = %v, want 1.0", weights["A"])
	}
}

func TestOverride_StickyAcrossRecalculation(t *testing.T) {
	c := New()
	if err := c.SetOverride("A", 0.33); err != nil {
		t.Fatalf("set override: %v", err)
	}

	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{
			{ConceptID: "A", Marks: 10},
			{ConceptID: "B", Marks: 10},
		}},
	}
	weights := c.Recalculate([]string{"A", "B"}, papers, 2026)
	if !almostEqual(weights["A"], 0.33) {
		t.Errorf("overridden weight(A) = %v, want 0.33", weights["A"])
	}

	// After clearing, recalculation computes A again.
	c.ClearOverride("A")
	weights = c.Recalculate([]string{"A", "B"}, papers, 2026)
	if !almostEqual(weights["A"], 1.0) {
		t.Errorf("weight(A) after clear = %v, want 1.0", weights["A"])
	}
}

func TestSetOverride_RangeChecked(t *testing.T) {
	c := New()
	if err := c.SetOverride("A", 1.5); err == nil {
		t.Error("expected error for out-of-range override")
	}
	if err := c.SetOverride("A", -0.1); err == nil {
		t.Error("expected error for negative override")
	}
}

func TestRankedIDs_Deterministic(t *testing.T) {
	c := New()
	papers := []Paper{
		{Year: 2026, Contributions: []Contribution{
			{ConceptID: "B", Marks: 10},
			{ConceptID: "A", Marks: 10},
			{ConceptID: "C", Marks: 5},
		}},
	}
	c.Recalculate([]string{"A", "B", "C"}, papers, 2026)
	got := c.RankedIDs()
	want := []string{"A", "B", "C"} // A before B on the tie
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranked = %v, want %v", got, want)
		}
	}
}
