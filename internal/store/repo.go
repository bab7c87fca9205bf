package store

import (
	"context"
	"time"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/scoring"
)

// GraphRepo persists the concept graph. Nodes, edges and strengths must
// survive a store/reload cycle bit-for-bit in value.
type GraphRepo interface {
	// SaveGraph atomically replaces the persisted graph.
	SaveGraph(ctx context.Context, concepts []conceptgraph.Concept, edges []conceptgraph.Edge) error

	// LoadGraph returns the persisted concepts and edges, both sorted
	// deterministically.
	LoadGraph(ctx context.Context) ([]conceptgraph.Concept, []conceptgraph.Edge, error)
}

// RecordRepo persists the append-only understanding-record history.
type RecordRepo interface {
	// Append stores one new record. Records are never updated or
	// deleted.
	Append(ctx context.Context, rec scoring.UnderstandingRecord) error

	// LoadAll returns the full history ordered by sequence.
	LoadAll(ctx context.Context) ([]scoring.UnderstandingRecord, error)
}

// OverrideRepo persists sticky manual exam-weight overrides.
type OverrideRepo interface {
	Set(ctx context.Context, conceptID string, weight float64) error
	Clear(ctx context.Context, conceptID string) error
	LoadAll(ctx context.Context) (map[string]float64, error)
}

// SnapshotData captures derived planner state at a point in time:
// calibrated exam weights and the last-served path orderings keyed by
// "user|mode|hours", used as the drift baseline on the next run.
type SnapshotData struct {
	Version    int                 `json:"version"`
	Weights    map[string]float64  `json:"weights,omitempty"`
	PathOrders map[string][]string `json:"path_orders,omitempty"`
}

// Snapshot is a point-in-time capture of derived planner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages planner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
