package conceptgraph

import "sort"

// TopologicalLevels partitions the graph into prerequisite levels:
// level 0 holds concepts with no prerequisites, level k holds concepts
// whose prerequisites all sit in levels below k. Implemented as Kahn's
// algorithm peeling off zero-in-degree frontiers; IDs within a level are
// sorted for deterministic output.
func (s *Store) TopologicalLevels() [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inDegree := make(map[string]int, len(s.nodes))
	for id := range s.nodes {
		inDegree[id] = len(s.prereqs[id])
	}

	var frontier []string
	for id, deg := range inDegree {
		if deg == 0 {
			frontier = append(frontier, id)
		}
	}
	sort.Strings(frontier)

	var levels [][]string
	for len(frontier) > 0 {
		levels = append(levels, frontier)
		var next []string
		for _, id := range frontier {
			for d := range s.dependents[id] {
				inDegree[d]--
				if inDegree[d] == 0 {
					next = append(next, d)
				}
			}
		}
		sort.Strings(next)
		frontier = next
	}
	return levels
}
