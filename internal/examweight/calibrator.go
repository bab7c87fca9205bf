// Package examweight derives per-concept exam importance from historical
// exam papers. Weights are normalized into [0,1] with the most-examined
// concept pinned at 1.0, and recent papers count for more than old ones.
package examweight

import (
	"fmt"
	"math"
	"sort"

	"github.com/kunalarora/studypath/internal/conceptgraph"
)

// DefaultDecay is the per-year recency decay applied to paper
// contributions: a paper from n years ago contributes decay^n of its
// marks to the weighted total.
const DefaultDecay = 0.9

// Contribution is the marks a single concept earned on a paper, as
// resolved by the external question-mapping collaborator.
type Contribution struct {
	ConceptID string
	Marks     float64
}

// Paper is one exam paper's worth of concept contributions.
type Paper struct {
	Year          int
	Contributions []Contribution
}

// Calibrator computes and holds per-concept exam weights. Manual
// overrides are sticky: once set, a concept's weight survives any number
// of recalculations until the override is explicitly cleared.
//
// Calibrator is not safe for concurrent use; callers serialize access.
type Calibrator struct {
	decay     float64
	weights   map[string]float64
	overrides map[string]float64
}

// New returns a Calibrator with the default decay constant.
func New() *Calibrator {
	return &Calibrator{
		decay:     DefaultDecay,
		weights:   make(map[string]float64),
		overrides: make(map[string]float64),
	}
}

// Recalculate computes weights for the given concept set from the
// supplied papers. With no papers every concept gets the uniform weight
// 1/n. Concepts a paper mentions that are not in conceptIDs are ignored.
// Overridden concepts keep their override value.
func (c *Calibrator) Recalculate(conceptIDs []string, papers []Paper, currentYear int) map[string]float64 {
	known := make(map[string]bool, len(conceptIDs))
	for _, id := range conceptIDs {
		known[id] = true
	}

	totals := make(map[string]float64)
	for _, p := range papers {
		age := currentYear - p.Year
		if age < 0 {
			age = 0
		}
		factor := math.Pow(c.decay, float64(age))
		for _, contrib := range p.Contributions {
			if known[contrib.ConceptID] {
				totals[contrib.ConceptID] += contrib.Marks * factor
			}
		}
	}

	weights := make(map[string]float64, len(conceptIDs))
	if len(papers) == 0 || len(totals) == 0 {
		uniform := 0.0
		if len(conceptIDs) > 0 {
			uniform = 1.0 / float64(len(conceptIDs))
		}
		for _, id := range conceptIDs {
			weights[id] = uniform
		}
	} else {
		max := 0.0
		for _, total := range totals {
			if total > max {
				max = total
			}
		}
		for _, id := range conceptIDs {
			if max > 0 {
				weights[id] = totals[id] / max
			}
		}
	}

	for id, w := range c.overrides {
		if known[id] {
			weights[id] = w
		}
	}

	c.weights = weights
	return c.Weights()
}

// SetOverride pins a concept's weight to a manual value. The override
// replaces any computed weight immediately and survives recalculation.
func (c *Calibrator) SetOverride(conceptID string, weight float64) error {
	if weight < 0 || weight > 1 {
		return fmt.Errorf("%w: override weight %v for %q", conceptgraph.ErrInvalidScoreRange, weight, conceptID)
	}
	c.overrides[conceptID] = weight
	c.weights[conceptID] = weight
	return nil
}

// ClearOverride removes a manual override. The concept reverts to its
// computed weight on the next recalculation; until then the last pinned
// value remains visible.
func (c *Calibrator) ClearOverride(conceptID string) {
	delete(c.overrides, conceptID)
}

// Overrides returns a copy of the active manual overrides.
func (c *Calibrator) Overrides() map[string]float64 {
	out := make(map[string]float64, len(c.overrides))
	for id, w := range c.overrides {
		out[id] = w
	}
	return out
}

// Weight returns the current weight for a concept, zero if never
// calibrated.
func (c *Calibrator) Weight(conceptID string) float64 {
	return c.weights[conceptID]
}

// Weights returns a copy of the current weight map.
func (c *Calibrator) Weights() map[string]float64 {
	out := make(map[string]float64, len(c.weights))
	for id, w := range c.weights {
		out[id] = w
	}
	return out
}

// Restore replaces calibrator state wholesale, used when loading
// persisted weights and overrides.
func (c *Calibrator) Restore(weights, overrides map[string]float64) {
	c.weights = make(map[string]float64, len(weights))
	for id, w := range weights {
		c.weights[id] = w
	}
	c.overrides = make(map[string]float64, len(overrides))
	for id, w := range overrides {
		c.overrides[id] = w
	}
}

// RankedIDs returns concept IDs sorted by descending weight, ties broken
// by ascending ID. Used for display.
func (c *Calibrator) RankedIDs() []string {
	ids := make([]string, 0, len(c.weights))
	for id := range c.weights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		wi, wj := c.weights[ids[i]], c.weights[ids[j]]
		if wi != wj {
			return wi > wj
		}
		return ids[i] < ids[j]
	})
	return ids
}
