package conceptgraph

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateIntegrity performs the structural checks that must hold for
// downstream analysis to be meaningful:
//
//   - Acyclicity. Guaranteed constructively by AddEdge, but re-checked
//     defensively after bulk imports using Kahn's algorithm.
//   - Full reachability. Every concept must be reachable, following
//     prerequisite edges forward, from at least one root (a concept with
//     zero prerequisites). Isolated or cut-off subgraphs are reported.
//
// All problems found are collected into a single error wrapping
// ErrGraphIntegrity, or nil if the graph is sound.
func (s *Store) ValidateIntegrity() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validateIntegrityLocked()
}

func (s *Store) validateIntegrityLocked() error {
	if len(s.nodes) == 0 {
		return nil
	}

	var errs []string

	// Cycle check: peel zero-in-degree nodes; anything left over sits on
	// a cycle.
	inDegree := make(map[string]int, len(s.nodes))
	var queue []string
	for id := range s.nodes {
		inDegree[id] = len(s.prereqs[id])
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for d := range s.dependents[id] {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}
	if visited < len(s.nodes) {
		var cycleNodes []string
		for id, deg := range inDegree {
			if deg > 0 {
				cycleNodes = append(cycleNodes, id)
			}
		}
		sort.Strings(cycleNodes)
		errs = append(errs, fmt.Sprintf("cycle involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	// Reachability check: flood forward from every root.
	reachable := make(map[string]bool, len(s.nodes))
	var roots []string
	for id := range s.nodes {
		if len(s.prereqs[id]) == 0 {
			roots = append(roots, id)
			reachable[id] = true
		}
	}
	if len(roots) == 0 {
		errs = append(errs, "no root concepts (every concept has prerequisites)")
	}

	frontier := roots
	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			for d := range s.dependents[id] {
				if !reachable[d] {
					reachable[d] = true
					next = append(next, d)
				}
			}
		}
		frontier = next
	}

	var unreachable []string
	for id := range s.nodes {
		if !reachable[id] {
			unreachable = append(unreachable, id)
		}
	}
	if len(unreachable) > 0 {
		sort.Strings(unreachable)
		errs = append(errs, fmt.Sprintf("concepts unreachable from any root: %s", strings.Join(unreachable, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrGraphIntegrity, strings.Join(errs, "\n  "))
	}
	return nil
}
