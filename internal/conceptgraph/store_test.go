package conceptgraph

import (
	"errors"
	"reflect"
	"testing"
)

// chain builds a store with A -> B -> C (A is a prerequisite of B, etc).
func chain(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	for _, id := range []string{"A", "B", "C"} {
		if err := s.AddConcept(Concept{ID: id, Name: id, Complexity: 3}); err != nil {
			t.Fatalf("add concept %s: %v", id, err)
		}
	}
	if err := s.AddEdge("A", "B", 0.9); err != nil {
		t.Fatalf("add edge A->B: %v", err)
	}
	if err := s.AddEdge("B", "C", 0.5); err != nil {
		t.Fatalf("add edge B->C: %v", err)
	}
	return s
}

func TestAddConcept_Duplicate(t *testing.T) {
	s := NewStore()
	if err := s.AddConcept(Concept{ID: "A", Complexity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := s.AddConcept(Concept{ID: "A", Complexity: 2})
	if !errors.Is(err, ErrDuplicateConcept) {
		t.Errorf("got %v, want ErrDuplicateConcept", err)
	}
}

func TestAddConcept_ComplexityRange(t *testing.T) {
	s := NewStore()
	for _, c := range []int{0, 6, -1} {
		err := s.AddConcept(Concept{ID: "A", Complexity: c})
		if !errors.Is(err, ErrInvalidScoreRange) {
			t.Errorf("complexity %d: got %v, want ErrInvalidScoreRange", c, err)
		}
	}
}

func TestAddEdge_SelfLoop(t *testing.T) {
	s := chain(t)
	err := s.AddEdge("A", "A", 0.5)
	if !errors.Is(err, ErrSelfLoop) {
		t.Errorf("got %v, want ErrSelfLoop", err)
	}
}

func TestAddEdge_UnknownConcept(t *testing.T) {
	s := chain(t)
	if err := s.AddEdge("A", "Z", 0.5); !errors.Is(err, ErrUnknownConcept) {
		t.Errorf("unknown dependent: got %v, want ErrUnknownConcept", err)
	}
	if err := s.AddEdge("Z", "A", 0.5); !errors.Is(err, ErrUnknownConcept) {
		t.Errorf("unknown prerequisite: got %v, want ErrUnknownConcept", err)
	}
}

func TestAddEdge_CycleRejectedAtomically(t *testing.T) {
	s := chain(t)
	beforeNodes := s.Concepts()
	beforeEdges := s.Edges()

	// C -> A would close the cycle A -> B -> C -> A.
	err := s.AddEdge("C", "A", 0.7)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("got %v, want ErrCycleDetected", err)
	}

	// Direct back-edge on an existing pair's reverse direction.
	if err := s.AddEdge("B", "A", 0.7); !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("reverse edge: got %v, want ErrCycleDetected", err)
	}

	if !reflect.DeepEqual(beforeNodes, s.Concepts()) {
		t.Error("node set changed after rejected edge")
	}
	if !reflect.DeepEqual(beforeEdges, s.Edges()) {
		t.Error("edge set changed after rejected edge")
	}
}

func TestAddEdge_StrengthRange(t *testing.T) {
	s := chain(t)
	for _, v := range []float64{-0.1, 1.1} {
		if err := s.AddEdge("A", "C", v); !errors.Is(err, ErrInvalidScoreRange) {
			t.Errorf("strength %v: got %v, want ErrInvalidScoreRange", v, err)
		}
	}
}

func TestSetStrength(t *testing.T) {
	s := chain(t)
	if err := s.SetStrength("A", "B", 0.2); err != nil {
		t.Fatalf("set strength: %v", err)
	}
	edges := s.Edges()
	if edges[0].Strength != 0.2 {
		t.Errorf("got strength %v, want 0.2", edges[0].Strength)
	}
	if err := s.SetStrength("A", "C", 0.2); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("got %v, want ErrUnknownEdge", err)
	}
}

func TestRemoveConcept_CascadesEdges(t *testing.T) {
	s := chain(t)
	if err := s.RemoveConcept("B"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.Edges()) != 0 {
		t.Errorf("got %d edges after cascade, want 0", len(s.Edges()))
	}
	if s.Has("B") {
		t.Error("concept B still present")
	}
	if got := s.Dependents("A"); len(got) != 0 {
		t.Errorf("A still has dependents %v", got)
	}
}

func TestRemoveEdge(t *testing.T) {
	s := chain(t)
	if err := s.RemoveEdge("A", "B"); err != nil {
		t.Fatalf("remove edge: %v", err)
	}
	if err := s.RemoveEdge("A", "B"); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("second remove: got %v, want ErrUnknownEdge", err)
	}
	// Removing the edge makes B a root again; re-adding the reverse
	// direction is now legal.
	if err := s.AddEdge("B", "A", 0.3); err != nil {
		t.Errorf("B->A after removing A->B: %v", err)
	}
}

func TestCentrality_DownstreamCounts(t *testing.T) {
	s := chain(t)
	tests := []struct {
		id   string
		want int
	}{
		{"A", 2}, // B and C
		{"B", 1}, // C
		{"C", 0},
	}
	for _, tt := range tests {
		got, err := s.Centrality(tt.id)
		if err != nil {
			t.Fatalf("centrality %s: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("centrality(%s) = %d, want %d", tt.id, got, tt.want)
		}
	}
	if got := s.MaxCentrality(); got != 2 {
		t.Errorf("max centrality = %d, want 2", got)
	}
}

func TestCentrality_InvalidatedByEdgeMutation(t *testing.T) {
	s := chain(t)
	if got, _ := s.Centrality("A"); got != 2 {
		t.Fatalf("initial centrality = %d, want 2", got)
	}
	if err := s.RemoveEdge("B", "C"); err != nil {
		t.Fatalf("remove edge: %v", err)
	}
	if got, _ := s.Centrality("A"); got != 1 {
		t.Errorf("centrality after edge removal = %d, want 1", got)
	}
}

func TestDownstream(t *testing.T) {
	s := chain(t)
	got, err := s.Downstream("A")
	if err != nil {
		t.Fatalf("downstream: %v", err)
	}
	want := []string{"B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("downstream(A) = %v, want %v", got, want)
	}
}

func TestTopologicalLevels(t *testing.T) {
	s := chain(t)
	// Add a second root D with an edge into C, giving C two prerequisites.
	if err := s.AddConcept(Concept{ID: "D", Complexity: 2}); err != nil {
		t.Fatalf("add D: %v", err)
	}
	if err := s.AddEdge("D", "C", 0.4); err != nil {
		t.Fatalf("add D->C: %v", err)
	}

	levels := s.TopologicalLevels()
	want := [][]string{{"A", "D"}, {"B"}, {"C"}}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
}

func TestImport_RoundTripValues(t *testing.T) {
	s := chain(t)
	concepts := s.Concepts()
	edges := s.Edges()

	reloaded := NewStore()
	if err := reloaded.Import(concepts, edges); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(concepts, reloaded.Concepts()) {
		t.Error("concept set differs after reload")
	}
	if !reflect.DeepEqual(edges, reloaded.Edges()) {
		t.Error("edge set differs after reload")
	}
}

func TestImport_RejectsBadGraphAndRestores(t *testing.T) {
	s := chain(t)
	err := s.Import(
		[]Concept{{ID: "X", Complexity: 1}, {ID: "Y", Complexity: 1}},
		[]Edge{{Prerequisite: "X", Dependent: "Y", Strength: 0.5}, {Prerequisite: "Y", Dependent: "X", Strength: 0.5}},
	)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("got %v, want ErrCycleDetected", err)
	}
	// Prior contents restored.
	if s.Len() != 3 || !s.Has("A") {
		t.Error("store not restored after failed import")
	}
}

func TestImport_ReadersNeverSeePartialGraph(t *testing.T) {
	s := chain(t)
	next := []Concept{
		{ID: "P", Complexity: 1}, {ID: "Q", Complexity: 2},
		{ID: "R", Complexity: 3}, {ID: "S", Complexity: 4}, {ID: "T", Complexity: 5},
	}
	nextEdges := []Edge{
		{Prerequisite: "P", Dependent: "Q", Strength: 0.5},
		{Prerequisite: "Q", Dependent: "R", Strength: 0.5},
		{Prerequisite: "R", Dependent: "S", Strength: 0.5},
		{Prerequisite: "S", Dependent: "T", Strength: 0.5},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			// Every read must land on a complete snapshot: the old
			// 3-chain or the imported 5-chain, nothing in between.
			if n := s.Len(); n != 3 && n != 5 {
				t.Errorf("reader saw %d concepts", n)
				return
			}
			if err := s.ValidateIntegrity(); err != nil {
				t.Errorf("reader saw invalid graph: %v", err)
				return
			}
		}
	}()

	prev := s.Concepts()
	prevEdges := s.Edges()
	for i := 0; i < 100; i++ {
		if err := s.Import(next, nextEdges); err != nil {
			t.Fatalf("import: %v", err)
		}
		if err := s.Import(prev, prevEdges); err != nil {
			t.Fatalf("import back: %v", err)
		}
	}
	<-done
}
