// Package storage provides SQLite-based persistence for finished
// simulation runs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/panemdev/arena/internal/sim"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is a single finished simulation.
type RunRecord struct {
	ID             int64
	Seed           int64
	Days           int
	RosterSize     int
	Winner         string // empty when nobody survived
	WinnerDistrict int
	Deaths         int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			days INTEGER NOT NULL,
			roster_size INTEGER NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			winner_district INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS deaths (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			tribute TEXT NOT NULL,
			district INTEGER NOT NULL,
			day INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_deaths_run ON deaths(run_id, day);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and its death timeline in one
// transaction. Returns the ID of the inserted run.
func (s *Store) SaveRun(rec RunRecord, timeline []sim.Death) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.Exec(
		`INSERT INTO runs (seed, days, roster_size, winner, winner_district)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Seed, rec.Days, rec.RosterSize, rec.Winner, rec.WinnerDistrict,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, d := range timeline {
		if _, err := tx.Exec(
			"INSERT INTO deaths (run_id, tribute, district, day) VALUES (?, ?, ?, ?)",
			runID, d.Name, d.District, d.Day,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save death: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return runID, nil
}

// RecentRuns retrieves the latest N runs, newest first, with their
// death counts.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.days, r.roster_size, r.winner, r.winner_district, r.created_at,
		        (SELECT COUNT(*) FROM deaths d WHERE d.run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT r.id, r.seed, r.days, r.roster_size, r.winner, r.winner_district, r.created_at,
		        (SELECT COUNT(*) FROM deaths d WHERE d.run_id = r.id)
		 FROM runs r
		 WHERE r.id = ?`,
		id,
	)
	rec, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("storage: run %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// scanRun reads one run row, tolerating both time.Time and string
// created_at values from the driver.
func scanRun(scan func(dest ...any) error) (RunRecord, error) {
	var rec RunRecord
	var createdAt any
	if err := scan(&rec.ID, &rec.Seed, &rec.Days, &rec.RosterSize,
		&rec.Winner, &rec.WinnerDistrict, &createdAt, &rec.Deaths); err != nil {
		if err == sql.ErrNoRows {
			return rec, err
		}
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}

// DeathsForRun retrieves the full death timeline of a run, ordered by
// day.
func (s *Store) DeathsForRun(runID int64) ([]sim.Death, error) {
	rows, err := s.db.Query(
		"SELECT tribute, district, day FROM deaths WHERE run_id = ? ORDER BY day, id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deaths: %w", err)
	}
	defer rows.Close()

	var timeline []sim.Death
	for rows.Next() {
		var d sim.Death
		if err := rows.Scan(&d.Name, &d.District, &d.Day); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		timeline = append(timeline, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return timeline, nil
}
