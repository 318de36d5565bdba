// Package history persists past analysis runs in a per-project SQLite
// database under .oramigrate/.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp   TEXT NOT NULL,
	path        TEXT NOT NULL,
	kind        TEXT NOT NULL,
	object_type TEXT NOT NULL DEFAULT '',
	target      TEXT NOT NULL,
	score       REAL NOT NULL,
	level       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path, timestamp);
`

// SQLiteHistory implements domain.RunHistory on a project-local database.
type SQLiteHistory struct {
	conn *sql.DB
}

// Open opens or creates .oramigrate/history.db under rootPath.
func Open(rootPath string) (*SQLiteHistory, error) {
	dir := filepath.Join(rootPath, ".oramigrate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	conn, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &SQLiteHistory{conn: conn}, nil
}

func (h *SQLiteHistory) Save(rootPath string, entries []domain.RunEntry) error {
	tx, err := h.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO runs
		(timestamp, path, kind, object_type, target, score, level)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Timestamp, e.Path, e.Kind, e.ObjectType, e.Target, e.Score, e.Level); err != nil {
			return fmt.Errorf("saving run for %s: %w", e.Path, err)
		}
	}
	return tx.Commit()
}

func (h *SQLiteHistory) Load(rootPath string) ([]domain.RunEntry, error) {
	rows, err := h.conn.Query(`SELECT timestamp, path, kind, object_type, target, score, level
		FROM runs ORDER BY timestamp, path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var e domain.RunEntry
		if err := rows.Scan(&e.Timestamp, &e.Path, &e.Kind, &e.ObjectType, &e.Target, &e.Score, &e.Level); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (h *SQLiteHistory) Close() error {
	return h.conn.Close()
}
