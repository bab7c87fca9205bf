package conceptgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateIntegrity_ValidChain(t *testing.T) {
	s := chain(t)
	if err := s.ValidateIntegrity(); err != nil {
		t.Errorf("valid graph reported invalid: %v", err)
	}
}

func TestValidateIntegrity_EmptyGraph(t *testing.T) {
	s := NewStore()
	if err := s.ValidateIntegrity(); err != nil {
		t.Errorf("empty graph reported invalid: %v", err)
	}
}

func TestValidateIntegrity_IsolatedNodeIsReachableRoot(t *testing.T) {
	// An isolated node has no prerequisites, so it is itself a root and
	// trivially reachable.
	s := chain(t)
	if err := s.AddConcept(Concept{ID: "island", Complexity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.ValidateIntegrity(); err != nil {
		t.Errorf("isolated root reported invalid: %v", err)
	}
}

func TestValidateIntegrity_CutOffSubgraph(t *testing.T) {
	// Build a two-node cycle by hand to simulate corruption that the
	// constructive checks would normally prevent: X and Y depend on each
	// other, so neither is a root and neither is reachable.
	s := chain(t)
	s.mu.Lock()
	for _, id := range []string{"X", "Y"} {
		s.nodes[id] = &Concept{ID: id, Complexity: 1}
		s.prereqs[id] = make(map[string]struct{})
		s.dependents[id] = make(map[string]struct{})
	}
	s.prereqs["X"]["Y"] = struct{}{}
	s.dependents["Y"]["X"] = struct{}{}
	s.prereqs["Y"]["X"] = struct{}{}
	s.dependents["X"]["Y"] = struct{}{}
	s.strengths[edgeKey{"X", "Y"}] = 0.5
	s.strengths[edgeKey{"Y", "X"}] = 0.5
	s.mu.Unlock()

	err := s.ValidateIntegrity()
	if !errors.Is(err, ErrGraphIntegrity) {
		t.Fatalf("got %v, want ErrGraphIntegrity", err)
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error does not mention the cycle: %v", err)
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error does not mention unreachable concepts: %v", err)
	}
}
