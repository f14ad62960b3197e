// Package store provides a SQLite-backed archive of propagation runs. Each
// archived run keeps the key metrics in queryable columns and the full
// artifact as JSON.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store handles SQLite database operations for the run archive.
type Store struct {
	db *sql.DB
}

// RunInfo is the queryable summary of one archived run.
type RunInfo struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	Scheme        string    `json:"scheme"`
	Geometry      string    `json:"geometry"`
	Status        string    `json:"status"`
	ComputeTime   float64   `json:"compute_time"`
	MaxIntensity  float64   `json:"max_intensity"`
	MaxIntensityZ float64   `json:"max_intensity_z"`
	PeakFluence   float64   `json:"peak_fluence"`
}

// New opens (or creates) the archive at the given database path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		scheme TEXT NOT NULL,
		geometry TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		compute_time REAL DEFAULT 0,
		max_intensity REAL DEFAULT 0,
		max_intensity_z REAL DEFAULT 0,
		peak_fluence REAL DEFAULT 0,
		artifact TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_scheme ON runs(scheme);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// artifactSummary is the minimal shape the archive needs from a results
// document. Extracting it through JSON keeps the store decoupled from the
// artifact schema.
type artifactSummary struct {
	Metadata struct {
		Scheme      string  `json:"scheme"`
		Status      string  `json:"status"`
		ComputeTime float64 `json:"computeTime"`
	} `json:"metadata"`
	Analysis *struct {
		MaxIntensity  float64 `json:"maxIntensity"`
		MaxIntensityZ float64 `json:"maxIntensityZ"`
		PeakFluence   float64 `json:"peakFluence"`
	} `json:"analysis"`
}

// SaveRun archives one completed run. artifact must marshal to the results
// JSON schema; the summary columns are extracted from it. Returns the new
// run ID.
func (s *Store) SaveRun(name, geometry string, artifact any) (string, error) {
	data, err := json.Marshal(artifact)
	if err != nil {
		return "", fmt.Errorf("marshal artifact: %w", err)
	}

	var sum artifactSummary
	if err := json.Unmarshal(data, &sum); err != nil {
		return "", fmt.Errorf("summarize artifact: %w", err)
	}
	if sum.Metadata.Status != "success" {
		return "", fmt.Errorf("store: refusing to archive a run with status %q", sum.Metadata.Status)
	}

	id := uuid.New().String()
	info := RunInfo{
		ID:          id,
		Name:        name,
		Scheme:      sum.Metadata.Scheme,
		Geometry:    geometry,
		Status:      sum.Metadata.Status,
		ComputeTime: sum.Metadata.ComputeTime,
	}
	if sum.Analysis != nil {
		info.MaxIntensity = sum.Analysis.MaxIntensity
		info.MaxIntensityZ = sum.Analysis.MaxIntensityZ
		info.PeakFluence = sum.Analysis.PeakFluence
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (id, name, created_at, scheme, geometry, status,
			compute_time, max_intensity, max_intensity_z, peak_fluence, artifact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Name, time.Now().UTC(), info.Scheme, info.Geometry,
		info.Status, info.ComputeTime, info.MaxIntensity, info.MaxIntensityZ,
		info.PeakFluence, string(data))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// GetRun unmarshals the archived artifact for id into dst.
func (s *Store) GetRun(id string, dst any) error {
	var data string
	err := s.db.QueryRow(`SELECT artifact FROM runs WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return fmt.Errorf("store: run %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("unmarshal artifact: %w", err)
	}
	return nil
}

// GetRunInfo returns the summary row for id.
func (s *Store) GetRunInfo(id string) (*RunInfo, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, scheme, geometry, status,
			compute_time, max_intensity, max_intensity_z, peak_fluence
		FROM runs WHERE id = ?`, id)
	info, err := scanRunInfo(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store: run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	return info, nil
}

// ListRuns returns run summaries, newest first, up to limit. A limit of 0
// returns all runs.
func (s *Store) ListRuns(limit int) ([]RunInfo, error) {
	q := `
		SELECT id, name, created_at, scheme, geometry, status,
			compute_time, max_intensity, max_intensity_z, peak_fluence
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		info, err := scanRunInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, *info)
	}
	return out, rows.Err()
}

// DeleteRun removes one archived run.
func (s *Store) DeleteRun(id string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("store: run %s not found", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRunInfo(row scanner) (*RunInfo, error) {
	var info RunInfo
	err := row.Scan(&info.ID, &info.Name, &info.CreatedAt, &info.Scheme,
		&info.Geometry, &info.Status, &info.ComputeTime,
		&info.MaxIntensity, &info.MaxIntensityZ, &info.PeakFluence)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
