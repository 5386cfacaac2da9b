package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists refresh snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can inspect history while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS view_snapshots (
			id                TEXT PRIMARY KEY,
			timestamp         INTEGER NOT NULL,
			period            TEXT,
			source            TEXT,
			current_value     REAL,
			change            REAL,
			percent_change    REAL,
			percent_defined   INTEGER,
			volatility        REAL,
			volatility_defined INTEGER,
			projected_value   REAL,
			projected_change  REAL,
			projected_defined INTEGER,
			summary           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON view_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS series_points (
			snapshot_id TEXT NOT NULL,
			ts          INTEGER NOT NULL,
			value       REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_snapshot ON series_points(snapshot_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot stores the snapshot metrics and the series it was built from.
func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	takenAt := snap.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	m := snap.Metrics

	_, err := r.db.Exec(`INSERT INTO view_snapshots
		(id, timestamp, period, source,
		 current_value, change, percent_change, percent_defined,
		 volatility, volatility_defined,
		 projected_value, projected_change, projected_defined, summary)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id, takenAt.Unix(), snap.Period, snap.Source,
		m.Current.Value, m.Change.Value, m.PercentChange.Value, boolInt(m.PercentChange.Defined),
		m.Volatility.Value, boolInt(m.Volatility.Defined),
		m.ProjectedValue.Value, m.ProjectedChange.Value, boolInt(m.ProjectedChange.Defined),
		snap.Summary,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin points tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO series_points (snapshot_id, ts, value) VALUES (?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare points insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range snap.Series {
		if _, err := stmt.Exec(id, p.Time.Unix(), p.Value); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert point: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
