// Package weakness walks the prerequisite graph against current
// understanding scores to find the root concepts responsible for
// downstream weakness.
package weakness

import (
	"fmt"
	"sort"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/scoring"
)

// WeakThreshold is the current-score cutoff at or above which a concept
// is considered solid enough that no root-gap search is needed.
const WeakThreshold = 0.6

// GapThreshold mirrors scoring.GapThreshold: a visited prerequisite below
// this score is a root-gap candidate.
const GapThreshold = scoring.GapThreshold

// RootGap is a low-scoring prerequisite identified as the underlying
// cause of weakness in a downstream concept. Derived on demand, never
// persisted.
type RootGap struct {
	ConceptID          string
	UnderstandingScore float64
	AffectedConcepts   []string
	Centrality         int
	Priority           float64
}

// Analyzer detects and ranks root gaps for a user.
type Analyzer struct {
	graph  *conceptgraph.Store
	scores *scoring.Aggregator
}

// NewAnalyzer creates an analyzer over the given graph and score history.
func NewAnalyzer(graph *conceptgraph.Store, scores *scoring.Aggregator) *Analyzer {
	return &Analyzer{graph: graph, scores: scores}
}

// DetectRootGaps finds the weak prerequisites underlying conceptID for a
// user. If the concept's own current score is already at or above
// WeakThreshold the search is skipped entirely. Otherwise the
// prerequisite relation is traversed breadth-first from the concept; any
// visited prerequisite scoring below GapThreshold (a never-assessed
// prerequisite counts as zero) becomes a root gap. Output is sorted by
// descending priority, ties broken by ascending concept ID.
func (a *Analyzer) DetectRootGaps(userID, conceptID string) ([]RootGap, error) {
	if !a.graph.Has(conceptID) {
		return nil, fmt.Errorf("%w: %q", conceptgraph.ErrUnknownConcept, conceptID)
	}

	if score, ok := a.scores.CurrentScore(userID, conceptID); ok && score >= WeakThreshold {
		return nil, nil
	}

	maxCentrality := a.graph.MaxCentrality()

	var gaps []RootGap
	visited := map[string]bool{conceptID: true}
	queue := []string{conceptID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, prereq := range a.graph.Prerequisites(cur) {
			if visited[prereq] {
				continue
			}
			visited[prereq] = true
			queue = append(queue, prereq)

			score, _ := a.scores.CurrentScore(userID, prereq)
			if score >= GapThreshold {
				continue
			}
			gap, err := a.buildGap(prereq, score, maxCentrality)
			if err != nil {
				return nil, err
			}
			gaps = append(gaps, gap)
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority > gaps[j].Priority
		}
		return gaps[i].ConceptID < gaps[j].ConceptID
	})
	return gaps, nil
}

func (a *Analyzer) buildGap(conceptID string, score float64, maxCentrality int) (RootGap, error) {
	affected, err := a.graph.Downstream(conceptID)
	if err != nil {
		return RootGap{}, fmt.Errorf("affected concepts of %q: %w", conceptID, err)
	}
	centrality, err := a.graph.Centrality(conceptID)
	if err != nil {
		return RootGap{}, fmt.Errorf("centrality of %q: %w", conceptID, err)
	}

	normalized := 0.0
	if maxCentrality > 0 {
		normalized = float64(centrality) / float64(maxCentrality)
	}

	return RootGap{
		ConceptID:          conceptID,
		UnderstandingScore: score,
		AffectedConcepts:   affected,
		Centrality:         centrality,
		Priority:           (1-score)*0.5 + normalized*0.5,
	}, nil
}
