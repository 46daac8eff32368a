// Package kv is a durable keyed JSON blob store over a local SQLite file.
// It knows nothing about carts or orders; callers address typed values by
// string key. Reads fall back to a caller-supplied default on any failure and
// writes are logged and swallowed on failure, so the in-memory state of the
// caller stays authoritative for the session.
package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"storefront/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Entry is one keyed value for a batched SaveAll write.
type Entry struct {
	Key   string
	Value any
}

// Open opens (or creates) the blob store at the given file path
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	// modernc sqlite serializes writers; a single connection avoids
	// SQLITE_BUSY under the concurrent HTTP consumer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, logger: util.GetLogger()}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Load deserializes the value stored under key. A missing key, a read error
// or a value that no longer unmarshals all yield defaultValue; corruption is
// self-healing on the next Save rather than fatal.
func Load[T any](ctx context.Context, s *Store, key string, defaultValue T) T {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM kv WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return defaultValue
	}
	if err != nil {
		s.logger.Warn("Failed to read persisted value, using default",
			zap.String("key", key), zap.Error(err))
		util.PersistenceFailuresTotal.WithLabelValues("load").Inc()
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("Persisted value is corrupt, using default",
			zap.String("key", key), zap.Error(err))
		return defaultValue
	}
	return value
}

// Save serializes value and durably writes it under key, replacing any prior
// value. Failures are logged and swallowed, never returned.
func Save[T any](ctx context.Context, s *Store, key string, value T) {
	s.SaveAll(ctx, Entry{Key: key, Value: value})
}

// SaveAll writes every entry in a single transaction, so a set of related
// blobs is either fully persisted or not at all.
func (s *Store) SaveAll(ctx context.Context, entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	if err := s.saveAll(ctx, entries); err != nil {
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}
		s.logger.Error("Failed to persist state, in-memory state remains authoritative",
			zap.Strings("keys", keys), zap.Error(err))
		util.PersistenceFailuresTotal.WithLabelValues("save").Inc()
	}
}

func (s *Store) saveAll(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, e := range entries {
		raw, err := json.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("failed to marshal %q: %w", e.Key, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			e.Key, raw, now)
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", e.Key, err)
		}
	}

	return tx.Commit()
}
