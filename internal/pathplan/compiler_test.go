package pathplan

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/examweight"
	"github.com/kunalarora/studypath/internal/scoring"
)

type fixture struct {
	graph   *conceptgraph.Store
	scores  *scoring.Aggregator
	weights *examweight.Calibrator
	comp    *Compiler
}

// newFixture builds a small DAG:
//
//	a ──> b ──> d
//	c ──────────^
//
// with a and c as roots and d depending on b and c.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	g := conceptgraph.NewStore()
	complexities := map[string]int{"a": 2, "b": 3, "c": 1, "d": 4}
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := g.AddConcept(conceptgraph.Concept{ID: id, Name: "concept " + id, Complexity: complexities[id]}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "d"}, {"c", "d"}} {
		if err := g.AddEdge(e[0], e[1], 0.8); err != nil {
			t.Fatalf("edge %v: %v", e, err)
		}
	}

	scores := scoring.NewAggregator(g)
	weights := examweight.New()
	weights.Recalculate([]string{"a", "b", "c", "d"}, nil, 2026)

	return &fixture{
		graph:   g,
		scores:  scores,
		weights: weights,
		comp:    NewCompiler(g, scores, weights),
	}
}

func (f *fixture) record(t *testing.T, user, concept string, score float64) {
	t.Helper()
	if _, err := f.scores.RecordSession(user, concept, score, score, score, nil, time.Now()); err != nil {
		t.Fatalf("record %s: %v", concept, err)
	}
}

func TestModeWeightTriples(t *testing.T) {
	tests := []struct {
		mode             Mode
		exam, cent, weak float64
	}{
		{ModeSurvival, 0.7, 0.2, 0.1},
		{ModeRank, 0.3, 0.5, 0.2},
		{ModeInterview, 0.2, 0.3, 0.5},
	}
	for _, tt := range tests {
		w := modeWeights[tt.mode]
		if w.Exam != tt.exam || w.Centrality != tt.cent || w.Weakness != tt.weak {
			t.Errorf("%s weights = (%v,%v,%v), want (%v,%v,%v)",
				tt.mode, w.Exam, w.Centrality, w.Weakness, tt.exam, tt.cent, tt.weak)
		}
	}
	if modeWeights[ModeInterview].RootBonus == 0 {
		t.Error("interview mode must carry a root bonus")
	}
	if modeWeights[ModeSurvival].RootBonus != 0 || modeWeights[ModeRank].RootBonus != 0 {
		t.Error("root bonus applies to interview mode only")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != DefaultMode {
		t.Errorf("ParseMode(\"\") = %v, %v; want default mode", m, err)
	}
	if _, err := ParseMode("yolo"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestPriorityScores_Formula(t *testing.T) {
	f := newFixture(t)
	f.record(t, "u1", "a", 0.5)

	got, err := f.comp.PriorityScores("u1", ModeRank)
	if err != nil {
		t.Fatalf("priority scores: %v", err)
	}

	// a: examWeight 0.25 (uniform over 4), centrality 2 of max 2,
	// understanding 0.5.
	want := 0.25*0.3 + 1.0*0.5 + 0.5*0.2
	if math.Abs(got["a"]-want) > 1e-9 {
		t.Errorf("priority(a) = %v, want %v", got["a"], want)
	}

	// d: centrality 0, never assessed (fully weak).
	want = 0.25*0.3 + 0*0.5 + 1.0*0.2
	if math.Abs(got["d"]-want) > 1e-9 {
		t.Errorf("priority(d) = %v, want %v", got["d"], want)
	}
}

func TestPriorityScores_InterviewRootBonus(t *testing.T) {
	f := newFixture(t)
	got, err := f.comp.PriorityScores("u1", ModeInterview)
	if err != nil {
		t.Fatalf("priority scores: %v", err)
	}

	// a (root) and b (non-root) differ in centrality by 2 vs 1; strip
	// that out and the remaining difference must be the root bonus.
	base := func(centrality float64) float64 {
		return 0.25*0.2 + centrality/2*0.3 + 1.0*0.5
	}
	if math.Abs(got["a"]-(base(2)+0.1)) > 1e-9 {
		t.Errorf("priority(a) = %v, want %v", got["a"], base(2)+0.1)
	}
	if math.Abs(got["b"]-base(1)) > 1e-9 {
		t.Errorf("priority(b) = %v, want %v", got["b"], base(1))
	}
}

func TestGeneratePath_TopologicallyValid(t *testing.T) {
	f := newFixture(t)
	path, err := f.comp.GeneratePath("u1", ModeRank, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	pos := make(map[string]int)
	for i, step := range path.Steps {
		pos[step.ConceptID] = i
	}
	if len(pos) != 4 {
		t.Fatalf("path has %d distinct concepts, want 4", len(pos))
	}
	for _, e := range f.graph.Edges() {
		if pos[e.Prerequisite] > pos[e.Dependent] {
			t.Errorf("concept %s precedes its prerequisite %s", e.Dependent, e.Prerequisite)
		}
	}
}

func TestGeneratePath_ExcludesMastered(t *testing.T) {
	f := newFixture(t)
	f.record(t, "u1", "a", 0.9) // mastered
	f.record(t, "u1", "b", 0.5)

	path, err := f.comp.GeneratePath("u1", ModeRank, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, step := range path.Steps {
		if step.ConceptID == "a" {
			t.Error("mastered concept appeared in path")
		}
	}
	if len(path.Steps) != 3 {
		t.Errorf("path length = %d, want 3", len(path.Steps))
	}
	// b's prerequisite a is mastered, so b must be schedulable first
	// among its chain.
	pos := make(map[string]int)
	for i, step := range path.Steps {
		pos[step.ConceptID] = i
	}
	if pos["d"] < pos["b"] || pos["d"] < pos["c"] {
		t.Error("d scheduled before its unmastered prerequisites")
	}
}

func TestGeneratePath_PriorityOrderWithinFrontier(t *testing.T) {
	f := newFixture(t)
	// Give c an exam-weight override so it outranks a in survival mode;
	// both sit in the initial zero-in-degree frontier.
	if err := f.weights.SetOverride("c", 1.0); err != nil {
		t.Fatal(err)
	}
	if err := f.weights.SetOverride("a", 0.1); err != nil {
		t.Fatal(err)
	}

	path, err := f.comp.GeneratePath("u1", ModeSurvival, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if path.Steps[0].ConceptID != "c" {
		t.Errorf("first step = %s, want c (higher priority root)", path.Steps[0].ConceptID)
	}
}

func TestEstimateHours(t *testing.T) {
	tests := []struct {
		complexity int
		score      float64
		want       float64
	}{
		{4, 0.25, 14}, // 4*2*(1+0.75)
		{1, 1.0, 2},   // fully understood: base cost only
		{5, 0.0, 20},  // untouched hardest concept
	}
	for _, tt := range tests {
		got := EstimateHours(tt.complexity, tt.score)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EstimateHours(%d, %v) = %v, want %v", tt.complexity, tt.score, got, tt.want)
		}
	}
}

func TestGeneratePath_TotalHours(t *testing.T) {
	f := newFixture(t)
	path, err := f.comp.GeneratePath("u1", ModeRank, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var sum float64
	for _, s := range path.Steps {
		sum += s.EstimatedHours
	}
	if math.Abs(path.TotalEstimatedHours-sum) > 1e-9 {
		t.Errorf("total hours %v != step sum %v", path.TotalEstimatedHours, sum)
	}
}

func TestBuildRoadmap_GreedyFill(t *testing.T) {
	steps := []ConceptStep{
		{ConceptID: "a", EstimatedHours: 4},
		{ConceptID: "b", EstimatedHours: 5},
		{ConceptID: "c", EstimatedHours: 3},
	}
	weeks := buildRoadmap(steps, 10)
	if len(weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weeks))
	}
	if len(weeks[0].Steps) != 2 || weeks[0].Hours != 9 {
		t.Errorf("week 1 = %d steps / %v hours, want 2 / 9", len(weeks[0].Steps), weeks[0].Hours)
	}
	if len(weeks[1].Steps) != 1 || weeks[1].Steps[0].ConceptID != "c" {
		t.Errorf("week 2 = %+v, want just c", weeks[1])
	}
}

func TestBuildRoadmap_OversizedConceptGetsOwnWeek(t *testing.T) {
	steps := []ConceptStep{
		{ConceptID: "small", EstimatedHours: 2},
		{ConceptID: "huge", EstimatedHours: 25},
		{ConceptID: "after", EstimatedHours: 2},
	}
	weeks := buildRoadmap(steps, 10)
	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}
	if len(weeks[1].Steps) != 1 || weeks[1].Steps[0].ConceptID != "huge" {
		t.Errorf("oversized concept not isolated: %+v", weeks[1])
	}
	if weeks[1].Hours != 25 {
		t.Errorf("oversized week hours = %v, want 25", weeks[1].Hours)
	}
}

func TestOrderingDrift(t *testing.T) {
	tests := []struct {
		name     string
		old, cur []string
		want     int
		wantSame bool
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0, true},
		{"swap adjacent", []string{"a", "b", "c"}, []string{"b", "a", "c"}, 1, true},
		{"big move", []string{"a", "b", "c", "d"}, []string{"b", "c", "d", "a"}, 3, true},
		{"new concept", []string{"a", "b"}, []string{"a", "b", "c"}, 0, false},
		{"removed concept", []string{"a", "b", "c"}, []string{"a", "b"}, 0, false},
		{"swapped-out concept", []string{"a", "b"}, []string{"a", "c"}, 0, false},
		{"single dropped", []string{"a"}, nil, 0, false},
		{"both empty", nil, nil, 0, true},
	}
	for _, tt := range tests {
		got, same := OrderingDrift(tt.old, tt.cur)
		if got != tt.want || same != tt.wantSame {
			t.Errorf("%s: drift = (%d, %v), want (%d, %v)", tt.name, got, same, tt.want, tt.wantSame)
		}
	}
}

func TestReorderTo_RebuildsRoadmap(t *testing.T) {
	f := newFixture(t)
	path, err := f.comp.GeneratePath("u1", ModeRank, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := make([]string, len(path.Steps))
	for i, s := range path.Steps {
		got[i] = s.ConceptID
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("generated order = %v, want %v", got, want)
	}

	// Swapping b and c stays topologically valid: b only needs a.
	baseline := []string{"a", "c", "b", "d"}
	path.ReorderTo(baseline)
	for i, s := range path.Steps {
		if s.ConceptID != baseline[i] {
			t.Fatalf("step %d = %q, want %q", i, s.ConceptID, baseline[i])
		}
	}
	var flat []string
	for _, w := range path.WeeklyRoadmap {
		for _, s := range w.Steps {
			flat = append(flat, s.ConceptID)
		}
	}
	if !reflect.DeepEqual(flat, baseline) {
		t.Errorf("roadmap order = %v, want %v", flat, baseline)
	}
}
