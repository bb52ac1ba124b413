// Package store persists analysis runs in a SQLite database.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/evoterm/gamescape/internal/dynamics"
	"github.com/evoterm/gamescape/internal/sim"
)

// Store wraps a SQLite connection holding the run history.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		game TEXT NOT NULL,
		a REAL NOT NULL,
		b REAL NOT NULL,
		c REAL NOT NULL,
		d REAL NOT NULL,
		classification TEXT NOT NULL,
		fixed_points_json TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL,
		series INTEGER NOT NULL,
		t REAL NOT NULL,
		x REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id, series);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Run is one persisted analysis.
type Run struct {
	ID              string    `db:"id"`
	Game            string    `db:"game"`
	A               float64   `db:"a"`
	B               float64   `db:"b"`
	C               float64   `db:"c"`
	D               float64   `db:"d"`
	Classification  string    `db:"classification"`
	FixedPointsJSON string    `db:"fixed_points_json"`
	CreatedAt       time.Time `db:"created_at"`
}

// Matrix reconstructs the payoff matrix of a run.
func (r *Run) Matrix() dynamics.PayoffMatrix {
	return dynamics.PayoffMatrix{A: r.A, B: r.B, C: r.C, D: r.D}
}

// FixedPoints decodes the stored fixed-point sequence.
func (r *Run) FixedPoints() ([]dynamics.FixedPoint, error) {
	var fps []dynamics.FixedPoint
	if err := json.Unmarshal([]byte(r.FixedPointsJSON), &fps); err != nil {
		return nil, fmt.Errorf("decode fixed points: %w", err)
	}
	return fps, nil
}

// Sample is one trajectory point of a run; Series indexes the
// initial condition the point belongs to.
type Sample struct {
	RunID  string  `db:"run_id"`
	Series int     `db:"series"`
	T      float64 `db:"t"`
	X      float64 `db:"x"`
}

// Save writes one analysis with its trajectories and returns the run
// ID, formed as <game>_<unix> like the simulator runs it replaces.
func (s *Store) Save(game string, m dynamics.PayoffMatrix, cls dynamics.Classification, fps []dynamics.FixedPoint, trajs []*sim.Trajectory) (string, error) {
	fpJSON, err := json.Marshal(fps)
	if err != nil {
		return "", fmt.Errorf("encode fixed points: %w", err)
	}

	runID := fmt.Sprintf("%s_%d", game, time.Now().Unix())

	tx, err := s.db.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, game, a, b, c, d, classification, fixed_points_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, game, m.A, m.B, m.C, m.D, string(cls), string(fpJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for series, tr := range trajs {
		for i := range tr.Xs {
			_, err = tx.Exec(
				`INSERT INTO samples (run_id, series, t, x) VALUES (?, ?, ?, ?)`,
				runID, series, tr.Times[i], tr.Xs[i],
			)
			if err != nil {
				return "", fmt.Errorf("insert sample: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns all runs, newest first.
func (s *Store) List() ([]Run, error) {
	runs := []Run{}
	err := s.db.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Load returns one run by ID.
func (s *Store) Load(runID string) (*Run, error) {
	var run Run
	if err := s.db.Get(&run, `SELECT * FROM runs WHERE id = ?`, runID); err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	return &run, nil
}

// LoadSamples returns a run's trajectory samples ordered by series
// and time.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	samples := []Sample{}
	err := s.db.Select(&samples,
		`SELECT * FROM samples WHERE run_id = ? ORDER BY series, t`, runID)
	if err != nil {
		return nil, fmt.Errorf("load samples %s: %w", runID, err)
	}
	return samples, nil
}
