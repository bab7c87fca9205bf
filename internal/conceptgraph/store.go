package conceptgraph

import (
	"fmt"
	"sort"
	"sync"
)

// Store owns the canonical prerequisite graph. Nodes and edges live in
// id-indexed maps; the prerequisite and dependent relations are kept as
// two independent adjacency indexes that are updated together on every
// mutation. Derived values (centrality) are cached in a separate map and
// invalidated whenever the edge set changes.
//
// Mutations take the write lock and complete fully, including invariant
// checks, before the next begins. Readers take the read lock, so they
// never observe a half-applied mutation or a transient cycle.
type Store struct {
	mu sync.RWMutex

	nodes     map[string]*Concept
	strengths map[edgeKey]float64

	// prereqs[x] = direct prerequisites of x.
	// dependents[x] = concepts that list x as a prerequisite.
	prereqs    map[string]map[string]struct{}
	dependents map[string]map[string]struct{}

	centrality      map[string]int
	centralityValid bool
}

// NewStore returns an empty graph store.
func NewStore() *Store {
	return &Store{
		nodes:      make(map[string]*Concept),
		strengths:  make(map[edgeKey]float64),
		prereqs:    make(map[string]map[string]struct{}),
		dependents: make(map[string]map[string]struct{}),
	}
}

// AddConcept inserts a new concept node.
func (s *Store) AddConcept(c Concept) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addConceptLocked(c)
}

func (s *Store) addConceptLocked(c Concept) error {
	if c.Complexity < MinComplexity || c.Complexity > MaxComplexity {
		return fmt.Errorf("%w: complexity %d for concept %q", ErrInvalidScoreRange, c.Complexity, c.ID)
	}
	if _, exists := s.nodes[c.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateConcept, c.ID)
	}
	s.nodes[c.ID] = &c
	s.prereqs[c.ID] = make(map[string]struct{})
	s.dependents[c.ID] = make(map[string]struct{})
	s.centralityValid = false
	return nil
}

// AddEdge inserts a prerequisite edge. The edge is rejected, with the
// graph unchanged, if it would introduce a self-loop, reference a missing
// concept, duplicate an existing pair, or close a cycle.
func (s *Store) AddEdge(prerequisite, dependent string, strength float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addEdgeLocked(prerequisite, dependent, strength)
}

func (s *Store) addEdgeLocked(prerequisite, dependent string, strength float64) error {
	if strength < 0 || strength > 1 {
		return fmt.Errorf("%w: edge strength %v", ErrInvalidScoreRange, strength)
	}
	if prerequisite == dependent {
		return fmt.Errorf("%w: %q", ErrSelfLoop, prerequisite)
	}
	if _, ok := s.nodes[prerequisite]; !ok {
		return fmt.Errorf("%w: prerequisite %q", ErrUnknownConcept, prerequisite)
	}
	if _, ok := s.nodes[dependent]; !ok {
		return fmt.Errorf("%w: dependent %q", ErrUnknownConcept, dependent)
	}
	key := edgeKey{prerequisite: prerequisite, dependent: dependent}
	if _, ok := s.strengths[key]; ok {
		return fmt.Errorf("%w: %q -> %q", ErrDuplicateEdge, prerequisite, dependent)
	}

	// The new edge closes a cycle iff the prerequisite is already
	// reachable from the dependent by following prerequisite edges.
	if s.reachesViaPrereqs(dependent, prerequisite) {
		return fmt.Errorf("%w: %q -> %q", ErrCycleDetected, prerequisite, dependent)
	}

	s.strengths[key] = strength
	s.prereqs[dependent][prerequisite] = struct{}{}
	s.dependents[prerequisite][dependent] = struct{}{}
	s.centralityValid = false
	return nil
}

// SetStrength updates the strength of an existing edge. Strength is the
// only mutable edge attribute.
func (s *Store) SetStrength(prerequisite, dependent string, strength float64) error {
	if strength < 0 || strength > 1 {
		return fmt.Errorf("%w: edge strength %v", ErrInvalidScoreRange, strength)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{prerequisite: prerequisite, dependent: dependent}
	if _, ok := s.strengths[key]; !ok {
		return fmt.Errorf("%w: %q -> %q", ErrUnknownEdge, prerequisite, dependent)
	}
	s.strengths[key] = strength
	return nil
}

// RemoveEdge deletes the edge for the ordered pair.
func (s *Store) RemoveEdge(prerequisite, dependent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{prerequisite: prerequisite, dependent: dependent}
	if _, ok := s.strengths[key]; !ok {
		return fmt.Errorf("%w: %q -> %q", ErrUnknownEdge, prerequisite, dependent)
	}
	delete(s.strengths, key)
	delete(s.prereqs[dependent], prerequisite)
	delete(s.dependents[prerequisite], dependent)
	s.centralityValid = false
	return nil
}

// RemoveConcept deletes a concept and cascades to every edge that
// references it.
func (s *Store) RemoveConcept(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownConcept, id)
	}
	for p := range s.prereqs[id] {
		delete(s.dependents[p], id)
		delete(s.strengths, edgeKey{prerequisite: p, dependent: id})
	}
	for d := range s.dependents[id] {
		delete(s.prereqs[d], id)
		delete(s.strengths, edgeKey{prerequisite: id, dependent: d})
	}
	delete(s.prereqs, id)
	delete(s.dependents, id)
	delete(s.nodes, id)
	s.centralityValid = false
	return nil
}

// Concept returns the node for an ID.
func (s *Store) Concept(id string) (Concept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.nodes[id]
	if !ok {
		return Concept{}, fmt.Errorf("%w: %q", ErrUnknownConcept, id)
	}
	return *c, nil
}

// Has reports whether a concept ID exists.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// Concepts returns all nodes sorted by ID.
func (s *Store) Concepts() []Concept {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conceptsLocked()
}

func (s *Store) conceptsLocked() []Concept {
	out := make([]Concept, 0, len(s.nodes))
	for _, c := range s.nodes {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns all edges sorted by (prerequisite, dependent).
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgesLocked()
}

func (s *Store) edgesLocked() []Edge {
	out := make([]Edge, 0, len(s.strengths))
	for k, strength := range s.strengths {
		out = append(out, Edge{Prerequisite: k.prerequisite, Dependent: k.dependent, Strength: strength})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prerequisite != out[j].Prerequisite {
			return out[i].Prerequisite < out[j].Prerequisite
		}
		return out[i].Dependent < out[j].Dependent
	})
	return out
}

// Prerequisites returns the direct prerequisite IDs of a concept, sorted.
func (s *Store) Prerequisites(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.prereqs[id])
}

// Dependents returns the IDs that directly depend on a concept, sorted.
func (s *Store) Dependents(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.dependents[id])
}

// Len returns the number of concepts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// reachesViaPrereqs reports whether target is reachable from start by
// following prerequisite edges (depth-first). Callers hold the lock.
func (s *Store) reachesViaPrereqs(start, target string) bool {
	visited := make(map[string]bool, len(s.nodes))
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		for p := range s.prereqs[id] {
			if !visited[p] {
				stack = append(stack, p)
			}
		}
	}
	return false
}

// Import bulk-loads concepts and edges into an empty store, then runs a
// defensive integrity validation over the result. On any failure the
// store is restored to its previous contents. The write lock is held
// for the whole replacement, so readers see either the old graph or the
// fully imported one, never an intermediate state.
func (s *Store) Import(concepts []Concept, edges []Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevNodes, prevStrengths := s.nodes, s.strengths
	prevPrereqs, prevDependents := s.prereqs, s.dependents
	restore := func() {
		s.nodes, s.strengths = prevNodes, prevStrengths
		s.prereqs, s.dependents = prevPrereqs, prevDependents
		s.centralityValid = false
	}

	s.nodes = make(map[string]*Concept, len(concepts))
	s.strengths = make(map[edgeKey]float64, len(edges))
	s.prereqs = make(map[string]map[string]struct{}, len(concepts))
	s.dependents = make(map[string]map[string]struct{}, len(concepts))
	s.centralityValid = false

	for _, c := range concepts {
		if err := s.addConceptLocked(c); err != nil {
			restore()
			return err
		}
	}
	for _, e := range edges {
		if err := s.addEdgeLocked(e.Prerequisite, e.Dependent, e.Strength); err != nil {
			restore()
			return err
		}
	}
	if err := s.validateIntegrityLocked(); err != nil {
		restore()
		return err
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
