package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kunalarora/studypath/internal/conceptgraph"
	"github.com/kunalarora/studypath/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGraphRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	concepts := []conceptgraph.Concept{
		{ID: "A", Name: "Alpha", Description: "first", Complexity: 2},
		{ID: "B", Name: "Beta", Complexity: 3},
		{ID: "C", Name: "Gamma", Complexity: 5},
	}
	edges := []conceptgraph.Edge{
		{Prerequisite: "A", Dependent: "B", Strength: 0.9},
		{Prerequisite: "B", Dependent: "C", Strength: 0.5},
	}

	if err := repo.SaveGraph(ctx, concepts, edges); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotConcepts, gotEdges, err := repo.LoadGraph(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(gotConcepts) != 3 || len(gotEdges) != 2 {
		t.Fatalf("got %d concepts / %d edges, want 3 / 2", len(gotConcepts), len(gotEdges))
	}
	for i, c := range concepts {
		if gotConcepts[i] != c {
			t.Errorf("concept %d = %+v, want %+v", i, gotConcepts[i], c)
		}
	}
	for i, e := range edges {
		if gotEdges[i] != e {
			t.Errorf("edge %d = %+v, want %+v", i, gotEdges[i], e)
		}
	}
}

func TestGraphSave_Replaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	first := []conceptgraph.Concept{{ID: "old", Name: "old", Complexity: 1}}
	if err := repo.SaveGraph(ctx, first, nil); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := []conceptgraph.Concept{{ID: "new", Name: "new", Complexity: 1}}
	if err := repo.SaveGraph(ctx, second, nil); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, _, err := repo.LoadGraph(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("got %+v, want only the replacement concept", got)
	}
}

func TestRecordAppendAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := scoring.UnderstandingRecord{
		RecordID:         uuid.New().String(),
		UserID:           "u1",
		ConceptID:        "limits",
		Completeness:     0.8,
		Coherence:        0.6,
		QuestionAccuracy: 0.7,
		Score:            0.72,
		Misconceptions: []scoring.Misconception{
			{Description: "confuses limit with value", Severity: "high", RelatedConcept: "limits"},
		},
		PrerequisiteGaps: []string{"functions"},
		Timestamp:        now,
		Sequence:         1,
	}

	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	g := got[0]
	if g.RecordID != rec.RecordID || g.Score != rec.Score || g.Sequence != 1 {
		t.Errorf("record mismatch: got %+v", g)
	}
	if len(g.Misconceptions) != 1 || g.Misconceptions[0].Severity != "high" {
		t.Errorf("misconceptions = %+v", g.Misconceptions)
	}
	if len(g.PrerequisiteGaps) != 1 || g.PrerequisiteGaps[0] != "functions" {
		t.Errorf("gaps = %+v", g.PrerequisiteGaps)
	}
	if !g.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", g.Timestamp, now)
	}
}

func TestRecordLoad_OrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for _, seq := range []int64{3, 1, 2} {
		rec := scoring.UnderstandingRecord{
			RecordID:  uuid.New().String(),
			UserID:    "u1",
			ConceptID: "a",
			Score:     0.5,
			Timestamp: now,
			Sequence:  seq,
		}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append seq %d: %v", seq, err)
		}
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i, rec := range got {
		if rec.Sequence != int64(i+1) {
			t.Errorf("position %d has sequence %d", i, rec.Sequence)
		}
	}
}

func TestOverrideSetClearLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.OverrideRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "limits", 0.9); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Setting again updates rather than duplicating.
	if err := repo.Set(ctx, "limits", 0.4); err != nil {
		t.Fatalf("set again: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got["limits"] != 0.4 {
		t.Errorf("overrides = %v, want map[limits:0.4]", got)
	}

	if err := repo.Clear(ctx, "limits"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("overrides after clear = %v, want empty", got)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Weights: map[string]float64{"limits": 1.0}},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != 42 || snap.Data.Weights["limits"] != 1.0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Most recent snapshot survives the prune.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
