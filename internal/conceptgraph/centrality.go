package conceptgraph

import "sort"

// Centrality returns the number of distinct concepts that transitively
// depend on id: the size of the downstream set reached by breadth-first
// traversal of dependent edges. Values are computed lazily for the whole
// graph and cached until the next node or edge mutation.
func (s *Store) Centrality(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return 0, ErrUnknownConcept
	}
	s.ensureCentralityLocked()
	return s.centrality[id], nil
}

// Centralities returns a copy of the full centrality map.
func (s *Store) Centralities() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCentralityLocked()
	out := make(map[string]int, len(s.centrality))
	for id, c := range s.centrality {
		out[id] = c
	}
	return out
}

// MaxCentrality returns the largest centrality in the graph, used to
// normalize centrality into [0,1] for priority formulas.
func (s *Store) MaxCentrality() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCentralityLocked()
	max := 0
	for _, c := range s.centrality {
		if c > max {
			max = c
		}
	}
	return max
}

func (s *Store) ensureCentralityLocked() {
	if s.centralityValid {
		return
	}
	s.centrality = make(map[string]int, len(s.nodes))
	for id := range s.nodes {
		s.centrality[id] = len(s.downstreamLocked(id))
	}
	s.centralityValid = true
}

// Downstream returns every concept transitively reachable from id via
// dependent edges, sorted. This is the "affected concepts" set: everything
// impacted if id were strengthened.
func (s *Store) Downstream(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.nodes[id]; !ok {
		return nil, ErrUnknownConcept
	}
	set := s.downstreamLocked(id)
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

// downstreamLocked runs a BFS over dependent edges from id, excluding id
// itself. Callers hold at least the read lock.
func (s *Store) downstreamLocked(id string) map[string]struct{} {
	visited := make(map[string]struct{})
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for d := range s.dependents[cur] {
			if _, seen := visited[d]; !seen {
				visited[d] = struct{}{}
				queue = append(queue, d)
			}
		}
	}
	return visited
}
