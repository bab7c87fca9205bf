package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent"

	// CGO-free SQLite driver.
	_ "modernc.org/sqlite"
)

// Store wraps the ent client and hands out the per-entity repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open connects to the SQLite database at dsn, applies the pragmas and
// migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client exposes the raw ent client, mainly for tests.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB exposes the raw database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.client.Close()
}

// GraphRepo persists the concept graph.
func (s *Store) GraphRepo() GraphRepo {
	return &graphRepo{client: s.client}
}

// RecordRepo persists the understanding-record history.
func (s *Store) RecordRepo() RecordRepo {
	return &recordRepo{client: s.client}
}

// OverrideRepo persists manual weight overrides.
func (s *Store) OverrideRepo() OverrideRepo {
	return &overrideRepo{client: s.client}
}

// SnapshotRepo persists derived-state snapshots.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// applyPragmas tunes SQLite for a local, single-writer planner: WAL for
// cheap reads during writes, NORMAL sync since the data is rebuildable
// from payload files.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file: the STUDYPATH_DB
// environment variable wins, otherwise the XDG data dir
// (~/.local/share/studypath/studypath.db when XDG_DATA_HOME is unset).
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STUDYPATH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "studypath", "studypath.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory when missing.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
