// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
// A *Store is safe for concurrent use; SSH sessions share one.
type Store struct {
	db *sql.DB
}

// Result is one solved puzzle.
type Result struct {
	ID        int64
	Player    string
	Poles     int
	Disks     int
	Moves     int
	Optimal   int
	Duration  time.Duration
	CreatedAt time.Time
}

// Setting identifies a pole/disk configuration.
type Setting struct {
	Poles int
	Disks int
}

// SettingStats aggregates the results of one configuration.
type SettingStats struct {
	Setting
	Solved       int
	BestMoves    int
	BestDuration time.Duration
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
	// SQLite has a single writer; SSH sessions queue on one connection.
	db.SetMaxOpenConns(1)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			poles INTEGER NOT NULL,
			disks INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_setting ON results(poles, disks, moves);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
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

// SaveResult records a solved puzzle and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (player, poles, disks, moves, optimal, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Player, r.Poles, r.Disks, r.Moves, r.Optimal, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestResults returns the top results for a setting, fewest moves first,
// faster solves breaking ties.
func (s *Store) BestResults(set Setting, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, player, poles, disks, moves, optimal, duration_ms, created_at
		 FROM results
		 WHERE poles = ? AND disks = ?
		 ORDER BY moves ASC, duration_ms ASC
		 LIMIT ?`,
		set.Poles, set.Disks, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the most recently solved puzzles.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, player, poles, disks, moves, optimal, duration_ms, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// BestMoves returns the fewest moves recorded for a setting, or 0 if the
// setting has never been solved.
func (s *Store) BestMoves(set Setting) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE poles = ? AND disks = ?",
		set.Poles, set.Disks,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Settings lists every configuration with at least one result, with its
// aggregated statistics, ordered by poles then disks.
func (s *Store) Settings() ([]SettingStats, error) {
	rows, err := s.db.Query(
		`SELECT poles, disks, COUNT(*), MIN(moves), MIN(duration_ms), MAX(created_at)
		 FROM results
		 GROUP BY poles, disks
		 ORDER BY poles, disks`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	var out []SettingStats
	for rows.Next() {
		var st SettingStats
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&st.Poles, &st.Disks, &st.Solved, &st.BestMoves, &bestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestDuration = time.Duration(bestMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearResults deletes all results for a setting.
func (s *Store) ClearResults(set Setting) error {
	_, err := s.db.Exec("DELETE FROM results WHERE poles = ? AND disks = ?", set.Poles, set.Disks)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// ResultByID fetches a single result. It returns ErrNotFound when no row
// has the given ID.
func (s *Store) ResultByID(id int64) (Result, error) {
	rows, err := s.db.Query(
		`SELECT id, player, poles, disks, moves, optimal, duration_ms, created_at
		 FROM results WHERE id = ?`,
		id,
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot query result: %w", err)
	}
	results, err := scanResults(rows)
	if err != nil {
		return Result{}, err
	}
	if len(results) == 0 {
		return Result{}, ErrNotFound
	}
	return results[0], nil
}

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("storage: not found")

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Poles, &r.Disks, &r.Moves, &r.Optimal, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
