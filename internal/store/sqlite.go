// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Saving sessions as snapshots and rebuilding them with game.Restore.
//
// Only the guesses are stored; feedback is recomputed on every load.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite database and migrates it.
func OpenSQLite(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB opens a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order.
// A _migrations table records applied files; each runs in its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	ms, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range ms {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// Save upserts the session snapshot.
func (s *sqliteStore) Save(ctx context.Context, id string, sess *game.Session) error {
	snap := sess.Snapshot()
	layout, err := json.Marshal(snap.Layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	guesses, err := json.Marshal(snap.Guesses)
	if err != nil {
		return fmt.Errorf("encode guesses: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO games
            (id, target, word_length, max_attempts, layout, guesses, input, state, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            guesses=excluded.guesses,
            input=excluded.input,
            state=excluded.state,
            updated_at=excluded.updated_at`,
		id, snap.Target, snap.Length, snap.MaxAttempts, string(layout), string(guesses),
		snap.Input, string(sess.State()), now, now,
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", id, err)
	}
	return nil
}

// Get loads and replays a stored session.
func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Session, error) {
	var (
		snap            game.Snapshot
		layout, guesses string
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT target, word_length, max_attempts, layout, guesses, input
        FROM games WHERE id=?`, id,
	).Scan(&snap.Target, &snap.Length, &snap.MaxAttempts, &layout, &guesses, &snap.Input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(layout), &snap.Layout); err != nil {
		return nil, fmt.Errorf("decode layout of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(guesses), &snap.Guesses); err != nil {
		return nil, fmt.Errorf("decode guesses of %s: %w", id, err)
	}
	sess, err := game.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", id, err)
	}
	return sess, nil
}

func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id=?`, id)
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }
