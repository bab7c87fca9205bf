// Package engine wires the graph store, exam-weight calibrator, scoring
// aggregator, weakness analyzer and path compiler behind one facade. It
// writes through to persistence when a store is attached and keeps
// per-user path caches with drift-aware regeneration.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/examweight"
	"github.com/kunalarora/studypath/internal/pathplan"
	"github.com/kunalarora/studypath/internal/scoring"
	"github.com/kunalarora/studypath/internal/store"
	"github.com/kunalarora/studypath/internal/weakness"
)

// DriftThreshold is the maximum number of positions a concept may move
// in the priority ordering before a cached path is regenerated. Smaller
// reorderings keep the cached path to avoid noisy churn.
const DriftThreshold = 2

// snapshotKeep bounds the snapshot table: every save prunes all but
// this many of the most recent snapshots.
const snapshotKeep = 20

type pathKey struct {
	user  string
	mode  pathplan.Mode
	hours float64
}

// Engine is the single entry point callers use. The graph store guards
// itself with a read-write lock; the remaining components and the path
// cache are not safe for concurrent mutation, so callers serialize
// writes.
type Engine struct {
	graph    *conceptgraph.Store
	weights  *examweight.Calibrator
	scores   *scoring.Aggregator
	analyzer *weakness.Analyzer
	compiler *pathplan.Compiler

	st *store.Store // nil for in-memory operation

	// paths caches served path objects; orders keeps the last served
	// ordering per key as the drift baseline, and unlike paths it
	// survives restarts via snapshots.
	paths  map[pathKey]*pathplan.LearningPath
	orders map[pathKey][]string
}

// New creates an in-memory engine with no persistence.
func New() *Engine {
	graph := conceptgraph.NewStore()
	weights := examweight.New()
	scores := scoring.NewAggregator(graph)
	return &Engine{
		graph:    graph,
		weights:  weights,
		scores:   scores,
		analyzer: weakness.NewAnalyzer(graph, scores),
		compiler: pathplan.NewCompiler(graph, scores, weights),
		paths:    make(map[pathKey]*pathplan.LearningPath),
		orders:   make(map[pathKey][]string),
	}
}

// Open creates an engine backed by the given store and loads all
// persisted state: graph, record history, weight overrides and the
// latest weight snapshot.
func Open(ctx context.Context, st *store.Store) (*Engine, error) {
	e := New()
	e.st = st

	concepts, edges, err := st.GraphRepo().LoadGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	if len(concepts) > 0 {
		if err := e.graph.Import(concepts, edges); err != nil {
			return nil, fmt.Errorf("rebuild graph: %w", err)
		}
	}

	records, err := st.RecordRepo().LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	e.scores.Restore(records)

	overrides, err := st.OverrideRepo().LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	var weights map[string]float64
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		weights = snap.Data.Weights
		for raw, order := range snap.Data.PathOrders {
			if key, ok := decodePathKey(raw); ok {
				e.orders[key] = order
			}
		}
	}
	e.weights.Restore(weights, overrides)

	return e, nil
}

// Graph exposes read-only access to the concept graph for display.
func (e *Engine) Graph() *conceptgraph.Store { return e.graph }

// Scores exposes read-only access to the score history for display.
func (e *Engine) Scores() *scoring.Aggregator { return e.scores }

// Weights exposes read-only access to the calibrator for display.
func (e *Engine) Weights() *examweight.Calibrator { return e.weights }

// ImportGraph bulk-loads a validated graph payload, replacing the
// current graph, and persists it.
func (e *Engine) ImportGraph(ctx context.Context, concepts []conceptgraph.Concept, edges []conceptgraph.Edge) error {
	if err := e.graph.Import(concepts, edges); err != nil {
		return err
	}
	return e.persistGraph(ctx)
}

// AddConcept inserts a concept and persists the graph.
func (e *Engine) AddConcept(ctx context.Context, c conceptgraph.Concept) error {
	if err := e.graph.AddConcept(c); err != nil {
		return err
	}
	return e.persistGraph(ctx)
}

// AddEdge inserts a prerequisite edge and persists the graph.
func (e *Engine) AddEdge(ctx context.Context, prerequisite, dependent string, strength float64) error {
	if err := e.graph.AddEdge(prerequisite, dependent, strength); err != nil {
		return err
	}
	return e.persistGraph(ctx)
}

// RemoveEdge removes an edge and persists the graph.
func (e *Engine) RemoveEdge(ctx context.Context, prerequisite, dependent string) error {
	if err := e.graph.RemoveEdge(prerequisite, dependent); err != nil {
		return err
	}
	return e.persistGraph(ctx)
}

// RemoveConcept removes a concept, cascading to its edges, and persists
// the graph.
func (e *Engine) RemoveConcept(ctx context.Context, id string) error {
	if err := e.graph.RemoveConcept(id); err != nil {
		return err
	}
	return e.persistGraph(ctx)
}

// persistGraph writes the whole graph through to the store. Every graph
// mutation funnels here, so it also drops the path caches: a changed
// graph always forces path regeneration.
func (e *Engine) persistGraph(ctx context.Context) error {
	e.paths = make(map[pathKey]*pathplan.LearningPath)
	e.orders = make(map[pathKey][]string)

	if e.st == nil {
		return nil
	}
	if err := e.st.GraphRepo().SaveGraph(ctx, e.graph.Concepts(), e.graph.Edges()); err != nil {
		return fmt.Errorf("persist graph: %w", err)
	}
	// Overwrite the persisted baselines too; a later run must not
	// restore orderings computed against the old graph.
	return e.persistSnapshot(ctx)
}

// RecalculateWeights recalibrates exam weights from papers for every
// concept currently in the graph and snapshots the result. Concepts with
// an active manual override keep their pinned weight.
func (e *Engine) RecalculateWeights(ctx context.Context, papers []examweight.Paper, currentYear int) (map[string]float64, error) {
	ids := make([]string, 0, e.graph.Len())
	for _, c := range e.graph.Concepts() {
		ids = append(ids, c.ID)
	}
	weights := e.weights.Recalculate(ids, papers, currentYear)
	if err := e.persistSnapshot(ctx); err != nil {
		return nil, err
	}
	return weights, nil
}

// SetWeightOverride pins a concept's exam weight and persists the
// override.
func (e *Engine) SetWeightOverride(ctx context.Context, conceptID string, weight float64) error {
	if !e.graph.Has(conceptID) {
		return fmt.Errorf("%w: %q", conceptgraph.ErrUnknownConcept, conceptID)
	}
	if err := e.weights.SetOverride(conceptID, weight); err != nil {
		return err
	}
	if e.st != nil {
		if err := e.st.OverrideRepo().Set(ctx, conceptID, weight); err != nil {
			return fmt.Errorf("persist override: %w", err)
		}
	}
	return nil
}

// ClearWeightOverride removes a manual override and persists the
// removal.
func (e *Engine) ClearWeightOverride(ctx context.Context, conceptID string) error {
	e.weights.ClearOverride(conceptID)
	if e.st != nil {
		if err := e.st.OverrideRepo().Clear(ctx, conceptID); err != nil {
			return fmt.Errorf("persist override removal: %w", err)
		}
	}
	return nil
}

// RecordSession computes and appends a new understanding record from one
// assessment session, persisting it when a store is attached.
func (e *Engine) RecordSession(ctx context.Context, userID, conceptID string, completeness, coherence, questionAccuracy float64, misconceptions []scoring.Misconception) (scoring.UnderstandingRecord, error) {
	rec, err := e.scores.RecordSession(userID, conceptID, completeness, coherence, questionAccuracy, misconceptions, time.Now().UTC())
	if err != nil {
		return scoring.UnderstandingRecord{}, err
	}
	if e.st != nil {
		if err := e.st.RecordRepo().Append(ctx, rec); err != nil {
			return scoring.UnderstandingRecord{}, fmt.Errorf("persist record: %w", err)
		}
	}
	return rec, nil
}

// RootGaps returns the ranked root gaps underlying a concept for a user.
func (e *Engine) RootGaps(userID, conceptID string) ([]weakness.RootGap, error) {
	return e.analyzer.DetectRootGaps(userID, conceptID)
}

// Validate re-runs the graph's structural integrity checks.
func (e *Engine) Validate() error {
	return e.graph.ValidateIntegrity()
}

// BuildPath compiles a learning path for a user, mode and weekly hour
// budget. A freshly computed ordering that moves no concept more than
// DriftThreshold positions relative to the last served ordering keeps
// that ordering; larger drift, or any change to the concept set,
// replaces it and persists the new baseline. Baselines survive restarts
// through snapshots, so small score fluctuations between runs do not
// reshuffle the plan.
func (e *Engine) BuildPath(ctx context.Context, userID string, mode pathplan.Mode, availableHoursPerWeek float64) (*pathplan.LearningPath, error) {
	fresh, err := e.compiler.GeneratePath(userID, mode, availableHoursPerWeek)
	if err != nil {
		return nil, err
	}

	key := pathKey{user: userID, mode: mode, hours: availableHoursPerWeek}
	if baseline, ok := e.orders[key]; ok {
		drift, sameSet := pathplan.OrderingDrift(baseline, stepOrder(fresh))
		if sameSet && drift <= DriftThreshold {
			if cached, ok := e.paths[key]; ok {
				return cached, nil
			}
			// Restored baseline from a previous run: keep its ordering
			// but serve current estimates.
			fresh.ReorderTo(baseline)
			e.paths[key] = fresh
			return fresh, nil
		}
	}

	e.paths[key] = fresh
	e.orders[key] = stepOrder(fresh)
	if err := e.persistSnapshot(ctx); err != nil {
		return nil, err
	}
	return fresh, nil
}

// persistSnapshot stores the current derived state: calibrated weights
// plus every drift baseline.
func (e *Engine) persistSnapshot(ctx context.Context) error {
	if e.st == nil {
		return nil
	}
	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:    1,
			Weights:    e.weights.Weights(),
			PathOrders: e.encodeOrders(),
		},
	}
	if err := e.st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	if err := e.st.SnapshotRepo().Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (e *Engine) encodeOrders() map[string][]string {
	if len(e.orders) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e.orders))
	for key, order := range e.orders {
		out[encodePathKey(key)] = order
	}
	return out
}

func encodePathKey(k pathKey) string {
	return k.user + "|" + string(k.mode) + "|" + strconv.FormatFloat(k.hours, 'g', -1, 64)
}

func decodePathKey(s string) (pathKey, bool) {
	i := strings.LastIndexByte(s, '|')
	if i < 0 {
		return pathKey{}, false
	}
	hours, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return pathKey{}, false
	}
	rest := s[:i]
	j := strings.LastIndexByte(rest, '|')
	if j < 0 {
		return pathKey{}, false
	}
	return pathKey{user: rest[:j], mode: pathplan.Mode(rest[j+1:]), hours: hours}, true
}

func stepOrder(p *pathplan.LearningPath) []string {
	out := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.ConceptID
	}
	return out
}
