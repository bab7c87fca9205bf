// Package pathplan compiles prioritized, prerequisite-respecting study
// paths from the graph, exam weights and current understanding scores.
package pathplan

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/examweight"
	"github.com/kunalarora/studypath/internal/scoring"
)

// MasteryThreshold is the current-score cutoff at or above which a
// concept is considered mastered and excluded from path generation. It
// still counts toward satisfying dependents' prerequisites and toward
// centrality.
const MasteryThreshold = 0.8

// HoursPerComplexityPoint scales the time estimate: a concept takes
// complexity*2 hours at full understanding, doubling as understanding
// approaches zero.
const HoursPerComplexityPoint = 2.0

// ConceptStep is one entry of a learning path.
type ConceptStep struct {
	ConceptID          string
	Name               string
	Priority           float64
	UnderstandingScore float64
	EstimatedHours     float64
}

// Week is one week of the roadmap.
type Week struct {
	Number int
	Steps  []ConceptStep
	Hours  float64
}

// LearningPath is the compiled study plan: a topologically valid,
// priority-ordered concept sequence with time estimates and a weekly
// roadmap.
type LearningPath struct {
	Mode                Mode
	UserID              string
	HoursPerWeek        float64
	Steps               []ConceptStep
	TotalEstimatedHours float64
	WeeklyRoadmap       []Week
}

// ReorderTo rearranges the steps to match a previously served ordering
// and rebuilds the weekly roadmap. The ordering must cover exactly the
// path's concept IDs; callers guarantee it is topologically valid for
// the current graph.
func (p *LearningPath) ReorderTo(order []string) {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	sort.SliceStable(p.Steps, func(i, j int) bool {
		return pos[p.Steps[i].ConceptID] < pos[p.Steps[j].ConceptID]
	})
	p.WeeklyRoadmap = buildRoadmap(p.Steps, p.HoursPerWeek)
}

// Compiler computes priority scores and generates learning paths.
//
// Compiler is not safe for concurrent use; callers serialize access.
type Compiler struct {
	graph   *conceptgraph.Store
	scores  *scoring.Aggregator
	weights *examweight.Calibrator
}

// NewCompiler creates a compiler over the shared graph, score history
// and exam weights.
func NewCompiler(graph *conceptgraph.Store, scores *scoring.Aggregator, weights *examweight.Calibrator) *Compiler {
	return &Compiler{graph: graph, scores: scores, weights: weights}
}

// PriorityScores computes the mode-weighted priority for every concept.
// A never-assessed concept scores as fully weak.
func (c *Compiler) PriorityScores(userID string, mode Mode) (map[string]float64, error) {
	w, ok := modeWeights[mode]
	if !ok {
		return nil, fmt.Errorf("unknown learning mode %q", mode)
	}

	maxCentrality := c.graph.MaxCentrality()
	centralities := c.graph.Centralities()

	out := make(map[string]float64, len(centralities))
	for id, centrality := range centralities {
		normalized := 0.0
		if maxCentrality > 0 {
			normalized = float64(centrality) / float64(maxCentrality)
		}
		score, _ := c.scores.CurrentScore(userID, id)

		priority := c.weights.Weight(id)*w.Exam +
			normalized*w.Centrality +
			(1-score)*w.Weakness
		if w.RootBonus > 0 && len(c.graph.Prerequisites(id)) == 0 {
			priority += w.RootBonus
		}
		out[id] = priority
	}
	return out, nil
}

// GeneratePath compiles the study path for a user. It refuses outright
// when graph integrity validation fails; no partial path is ever
// returned. Mastered concepts are skipped but still satisfy their
// dependents' prerequisites.
func (c *Compiler) GeneratePath(userID string, mode Mode, availableHoursPerWeek float64) (*LearningPath, error) {
	if err := c.graph.ValidateIntegrity(); err != nil {
		return nil, fmt.Errorf("refusing path generation: %w", err)
	}

	priorities, err := c.PriorityScores(userID, mode)
	if err != nil {
		return nil, err
	}

	order, err := c.priorityOrder(userID, priorities)
	if err != nil {
		return nil, err
	}

	path := &LearningPath{Mode: mode, UserID: userID, HoursPerWeek: availableHoursPerWeek}
	for _, id := range order {
		node, err := c.graph.Concept(id)
		if err != nil {
			return nil, err
		}
		score, _ := c.scores.CurrentScore(userID, id)
		step := ConceptStep{
			ConceptID:          id,
			Name:               node.Name,
			Priority:           priorities[id],
			UnderstandingScore: score,
			EstimatedHours:     EstimateHours(node.Complexity, score),
		}
		path.Steps = append(path.Steps, step)
		path.TotalEstimatedHours += step.EstimatedHours
	}
	path.WeeklyRoadmap = buildRoadmap(path.Steps, availableHoursPerWeek)
	return path, nil
}

// priorityOrder runs the priority-ordered variant of Kahn's algorithm
// over the eligible (unmastered) subgraph: seed a max-priority queue with
// zero-in-degree concepts, repeatedly pop the highest priority, and
// unlock its dependents. In-degrees only count eligible prerequisites;
// mastered ones are already satisfied.
func (c *Compiler) priorityOrder(userID string, priorities map[string]float64) ([]string, error) {
	eligible := make(map[string]bool)
	for _, node := range c.graph.Concepts() {
		score, _ := c.scores.CurrentScore(userID, node.ID)
		if score < MasteryThreshold {
			eligible[node.ID] = true
		}
	}

	inDegree := make(map[string]int, len(eligible))
	for id := range eligible {
		for _, p := range c.graph.Prerequisites(id) {
			if eligible[p] {
				inDegree[id]++
			}
		}
	}

	pq := &priorityHeap{priorities: priorities}
	heap.Init(pq)
	for id := range eligible {
		if inDegree[id] == 0 {
			heap.Push(pq, id)
		}
	}

	order := make([]string, 0, len(eligible))
	for pq.Len() > 0 {
		id := heap.Pop(pq).(string)
		order = append(order, id)
		for _, d := range c.graph.Dependents(id) {
			if !eligible[d] {
				continue
			}
			inDegree[d]--
			if inDegree[d] == 0 {
				heap.Push(pq, d)
			}
		}
	}

	// The constructive acyclicity guarantee makes a short sequence an
	// internal invariant violation, not a normal error path.
	if len(order) < len(eligible) {
		return nil, fmt.Errorf("%w: internal: priority ordering covered %d of %d eligible concepts",
			conceptgraph.ErrGraphIntegrity, len(order), len(eligible))
	}
	return order, nil
}

// EstimateHours estimates study time for one concept: a base of
// complexity*2 hours, scaled up by how much understanding is missing.
func EstimateHours(complexity int, understandingScore float64) float64 {
	return float64(complexity) * HoursPerComplexityPoint * (1 + (1 - understandingScore))
}

// buildRoadmap greedily packs steps into weeks of at most
// availableHoursPerWeek. A step that exceeds the remaining capacity
// starts a new week; an oversized step becomes the sole, over-budget
// entry of its own week rather than being split.
func buildRoadmap(steps []ConceptStep, availableHoursPerWeek float64) []Week {
	if len(steps) == 0 || availableHoursPerWeek <= 0 {
		return nil
	}

	var weeks []Week
	current := Week{Number: 1}
	for _, step := range steps {
		if len(current.Steps) > 0 && current.Hours+step.EstimatedHours > availableHoursPerWeek {
			weeks = append(weeks, current)
			current = Week{Number: current.Number + 1}
		}
		current.Steps = append(current.Steps, step)
		current.Hours += step.EstimatedHours
	}
	weeks = append(weeks, current)
	return weeks
}

// OrderingDrift returns the maximum number of positions any concept
// moved between two orderings, and whether both orderings cover the
// same concept set. A set change makes the drift value meaningless, so
// callers must treat sameSet == false as unconditional drift regardless
// of any threshold.
func OrderingDrift(old, cur []string) (drift int, sameSet bool) {
	if len(old) != len(cur) {
		return 0, false
	}
	oldPos := make(map[string]int, len(old))
	for i, id := range old {
		oldPos[id] = i
	}

	max := 0
	for i, id := range cur {
		j, ok := oldPos[id]
		if !ok {
			return 0, false
		}
		d := i - j
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max, true
}

// priorityHeap is a max-heap of concept IDs keyed by priority, with
// ascending-ID tiebreak for deterministic pops.
type priorityHeap struct {
	ids        []string
	priorities map[string]float64
}

func (h *priorityHeap) Len() int { return len(h.ids) }

func (h *priorityHeap) Less(i, j int) bool {
	pi, pj := h.priorities[h.ids[i]], h.priorities[h.ids[j]]
	if pi != pj {
		return pi > pj
	}
	return h.ids[i] < h.ids[j]
}

func (h *priorityHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *priorityHeap) Push(x any) { h.ids = append(h.ids, x.(string)) }

func (h *priorityHeap) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	return id
}
