package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite keeps records in the snapshots table of a sqlite database.
// Synchronized databases may hold one row per device.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens, or creates, the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, NewError("open", fmt.Sprintf("could not open sqlite database %q", path), err)
	}

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, NewError("open", fmt.Sprintf("could not configure sqlite database %q", path), err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, NewError("open", fmt.Sprintf("could not migrate sqlite database %q", path), err)
	}
	return &SQLite{db: db, path: path}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Records returns every row, oldest first.
func (s *SQLite) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, data FROM snapshots ORDER BY updated_at ASC, id ASC`)
	if err != nil {
		return nil, NewError("read", "failed to list snapshots", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r    Record
			data string
		)
		if err := rows.Scan(&r.Key, &data); err != nil {
			return nil, NewError("read", "failed to scan snapshot", err)
		}
		r.Data = []byte(data)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, NewError("read", "failed to list snapshots", err)
	}
	return out, nil
}

func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data))
	if err != nil {
		return NewError("write", fmt.Sprintf("failed to save snapshot %q", key), err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NewError("delete", "failed to start transaction", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, key); err != nil {
			return NewError("delete", fmt.Sprintf("failed to delete snapshot %q", key), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return NewError("delete", "failed to commit", err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) String() string { return "sqlite:" + s.path }
