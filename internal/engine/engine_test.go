package engine

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/pathplan"
)

// seedChain loads the A -> B -> C chain into an in-memory engine.
func seedChain(t *testing.T) *Engine {
	t.Helper()
	e := New()
	ctx := context.Background()
	complexities := map[string]int{"A": 2, "B": 3, "C": 4}
	for _, id := range []string{"A", "B", "C"} {
		if err := e.AddConcept(ctx, conceptgraph.Concept{ID: id, Name: id, Complexity: complexities[id]}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := e.AddEdge(ctx, "A", "B", 0.9); err != nil {
		t.Fatalf("edge A->B: %v", err)
	}
	if err := e.AddEdge(ctx, "B", "C", 0.5); err != nil {
		t.Fatalf("edge B->C: %v", err)
	}
	return e
}

func record(t *testing.T, e *Engine, user, concept string, score float64) {
	t.Helper()
	if _, err := e.RecordSession(context.Background(), user, concept, score, score, score, nil); err != nil {
		t.Fatalf("record %s: %v", concept, err)
	}
}

func TestEndToEnd_RootGapDetection(t *testing.T) {
	e := seedChain(t)
	record(t, e, "u1", "A", 0.3)
	record(t, e, "u1", "B", 0.9)
	record(t, e, "u1", "C", 0.4)

	gaps, err := e.RootGaps("u1", "C")
	if err != nil {
		t.Fatalf("root gaps: %v", err)
	}
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1: %+v", len(gaps), gaps)
	}
	if gaps[0].ConceptID != "A" {
		t.Errorf("root gap = %q, want A", gaps[0].ConceptID)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(gaps[0].AffectedConcepts, want) {
		t.Errorf("affected = %v, want %v", gaps[0].AffectedConcepts, want)
	}
}

func TestEndToEnd_CycleRejected(t *testing.T) {
	e := seedChain(t)
	err := e.AddEdge(context.Background(), "B", "A", 0.5)
	if !errors.Is(err, conceptgraph.ErrCycleDetected) {
		t.Errorf("got %v, want ErrCycleDetected", err)
	}
}

func TestEndToEnd_PathGeneration(t *testing.T) {
	e := seedChain(t)
	record(t, e, "u1", "A", 0.25)

	path, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("build path: %v", err)
	}
	if len(path.Steps) != 3 {
		t.Fatalf("path length = %d, want 3", len(path.Steps))
	}
	// Topological order is forced: A before B before C.
	if path.Steps[0].ConceptID != "A" || path.Steps[2].ConceptID != "C" {
		t.Errorf("order = %v", stepOrder(path))
	}
	// A: complexity 2, score 0.25 -> 2*2*(1+0.75) = 7 hours.
	if math.Abs(path.Steps[0].EstimatedHours-7) > 1e-9 {
		t.Errorf("estimated hours = %v, want 7", path.Steps[0].EstimatedHours)
	}
}

func TestBuildPath_CachedWithinDrift(t *testing.T) {
	e := seedChain(t)
	first, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}

	// A score change that cannot reorder a 3-concept chain: same path
	// object comes back.
	record(t, e, "u1", "A", 0.3)
	second, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if first != second {
		t.Error("expected cached path for sub-threshold drift")
	}
}

func TestBuildPath_RegeneratedWhenConceptSetChanges(t *testing.T) {
	e := seedChain(t)
	first, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}

	// Mastering A removes it from the eligible set, which always
	// forces regeneration.
	record(t, e, "u1", "A", 0.95)
	second, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if first == second {
		t.Error("expected regenerated path after concept set change")
	}
	if len(second.Steps) != 2 {
		t.Errorf("regenerated path length = %d, want 2", len(second.Steps))
	}
}

func TestBuildPath_MasteryExcludedOnTinyGraph(t *testing.T) {
	// Two concepts only: the short ordering must not mask a concept-set
	// change behind the drift threshold.
	e := New()
	ctx := context.Background()
	for _, id := range []string{"A", "B"} {
		if err := e.AddConcept(ctx, conceptgraph.Concept{ID: id, Name: id, Complexity: 2}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := e.AddEdge(ctx, "A", "B", 0.8); err != nil {
		t.Fatalf("edge: %v", err)
	}

	first, err := e.BuildPath(ctx, "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	if len(first.Steps) != 2 {
		t.Fatalf("first path length = %d, want 2", len(first.Steps))
	}

	record(t, e, "u1", "A", 0.95)
	second, err := e.BuildPath(ctx, "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if len(second.Steps) != 1 || second.Steps[0].ConceptID != "B" {
		t.Fatalf("path after mastering A = %v, want [B]", stepOrder(second))
	}
}

func TestBuildPath_PerModeCaches(t *testing.T) {
	e := seedChain(t)
	rank, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatal(err)
	}
	survival, err := e.BuildPath(context.Background(), "u1", pathplan.ModeSurvival, 10)
	if err != nil {
		t.Fatal(err)
	}
	if rank == survival {
		t.Error("modes must not share a cache entry")
	}
	if rank.Mode != pathplan.ModeRank || survival.Mode != pathplan.ModeSurvival {
		t.Error("path mode labels wrong")
	}
}

func TestRecalculateWeights_AppliesToPriorities(t *testing.T) {
	e := seedChain(t)
	weights, err := e.RecalculateWeights(context.Background(), nil, 2026)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if math.Abs(weights["A"]-1.0/3.0) > 1e-9 {
		t.Errorf("uniform weight = %v, want 1/3", weights["A"])
	}

	if err := e.SetWeightOverride(context.Background(), "B", 0.77); err != nil {
		t.Fatalf("override: %v", err)
	}
	weights, err = e.RecalculateWeights(context.Background(), nil, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if weights["B"] != 0.77 {
		t.Errorf("override not sticky across recalculation: %v", weights["B"])
	}
}

func TestSetWeightOverride_UnknownConcept(t *testing.T) {
	e := seedChain(t)
	err := e.SetWeightOverride(context.Background(), "ghost", 0.5)
	if !errors.Is(err, conceptgraph.ErrUnknownConcept) {
		t.Errorf("got %v, want ErrUnknownConcept", err)
	}
}

func TestRemoveConcept_CascadesAndPathsAdjust(t *testing.T) {
	e := seedChain(t)
	if err := e.RemoveConcept(context.Background(), "B"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	path, err := e.BuildPath(context.Background(), "u1", pathplan.ModeRank, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, s := range path.Steps {
		if s.ConceptID == "B" {
			t.Error("removed concept still in path")
		}
	}
	if len(path.Steps) != 2 {
		t.Errorf("path length = %d, want 2", len(path.Steps))
	}
}
