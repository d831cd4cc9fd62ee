package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is a finished game with enough detail to replay it headless.
type Run struct {
	ID          string
	Variant     string
	Outcome     string // "win", "crashed" or "void"
	ElapsedMs   float64
	Thrusts     int
	Score       int
	TickMs      float64
	ThrustTicks []int
	Fingerprint string
	CreatedAt   time.Time
}

// SaveRun stores a run and returns its new ID.
func (s *Store) SaveRun(run Run) (string, error) {
	ticks := run.ThrustTicks
	if ticks == nil {
		ticks = []int{}
	}
	encoded, err := json.Marshal(ticks)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode thrust ticks: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO runs
		 (id, variant, outcome, elapsed_ms, thrusts, score, tick_ms, thrust_ticks, fingerprint)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		run.Variant,
		run.Outcome,
		run.ElapsedMs,
		run.Thrusts,
		run.Score,
		run.TickMs,
		string(encoded),
		run.Fingerprint,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

const runColumns = `id, variant, outcome, elapsed_ms, thrusts, score, tick_ms, thrust_ticks, fingerprint, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var ticks string
	var createdAt any
	if err := row.Scan(
		&r.ID,
		&r.Variant,
		&r.Outcome,
		&r.ElapsedMs,
		&r.Thrusts,
		&r.Score,
		&r.TickMs,
		&ticks,
		&r.Fingerprint,
		&createdAt,
	); err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(ticks), &r.ThrustTicks); err != nil {
		return r, fmt.Errorf("storage: corrupt thrust ticks for run %s: %w", r.ID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a run. Accepts any form uuid.Parse understands.
func (s *Store) RunByID(id string) (Run, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}

	run, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE id = ?`,
		parsed.String(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs across all variants.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// OutcomeCounts tallies runs of a variant by outcome.
func (s *Store) OutcomeCounts(variant string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*) FROM runs WHERE variant = ? GROUP BY outcome`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}
