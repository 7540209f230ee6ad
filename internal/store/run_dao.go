package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planck-ai/planck/internal/types"
)

// Run represents a persisted planning run
type Run struct {
	ID            types.ID  `json:"id"`
	Domain        string    `json:"domain"`
	Problem       string    `json:"problem"`
	Heuristic     string    `json:"heuristic"`
	Weight        float64   `json:"weight"`
	TimeoutMS     int64     `json:"timeout_ms"`
	Found         bool      `json:"found"`
	PlanSize      int       `json:"plan_size"`
	PlanCost      float64   `json:"plan_cost"`
	Actions       []string  `json:"actions,omitempty"`
	ParsingMS     int64     `json:"parsing_ms"`
	EncodingMS    int64     `json:"encoding_ms"`
	SearchMS      int64     `json:"search_ms"`
	TotalMS       int64     `json:"total_ms"`
	ProblemMemory int64     `json:"problem_memory"`
	SearchMemory  int64     `json:"search_memory"`
	CreatedAt     time.Time `json:"created_at"`
}

// RunDAO provides database operations for planning runs
type RunDAO interface {
	// Create creates a new run record
	Create(ctx context.Context, run *Run) error

	// GetByID retrieves a run by ID
	GetByID(ctx context.Context, id types.ID) (*Run, error)

	// List lists the most recent runs, newest first; limit <= 0 lists all
	List(ctx context.Context, limit int) ([]*Run, error)

	// Count returns the number of recorded runs
	Count(ctx context.Context) (int, error)

	// Delete deletes a run
	Delete(ctx context.Context, id types.ID) error

	// DeleteAll deletes every recorded run
	DeleteAll(ctx context.Context) error
}

// runDAO implements RunDAO
type runDAO struct {
	db *DB
}

// NewRunDAO creates a new run DAO
func NewRunDAO(db *DB) RunDAO {
	return &runDAO{db: db}
}

// Create creates a new run record
func (d *runDAO) Create(ctx context.Context, run *Run) error {
	if run.ID.IsZero() {
		run.ID = types.NewID()
	}

	// Serialize plan actions to JSON
	var actionsJSON []byte
	var err error
	if run.Actions != nil {
		actionsJSON, err = json.Marshal(run.Actions)
		if err != nil {
			return fmt.Errorf("failed to marshal actions: %w", err)
		}
	}

	query := `
		INSERT INTO runs (
			id, domain, problem, heuristic, weight, timeout_ms, found,
			plan_size, plan_cost, actions, parsing_ms, encoding_ms,
			search_ms, total_ms, problem_memory, search_memory, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	_, err = d.db.conn.ExecContext(
		ctx, query,
		run.ID,
		run.Domain,
		run.Problem,
		run.Heuristic,
		run.Weight,
		run.TimeoutMS,
		run.Found,
		run.PlanSize,
		run.PlanCost,
		string(actionsJSON),
		run.ParsingMS,
		run.EncodingMS,
		run.SearchMS,
		run.TotalMS,
		run.ProblemMemory,
		run.SearchMemory,
	)

	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by ID
func (d *runDAO) GetByID(ctx context.Context, id types.ID) (*Run, error) {
	query := `
		SELECT
			id, domain, problem, heuristic, weight, timeout_ms, found,
			plan_size, plan_cost, actions, parsing_ms, encoding_ms,
			search_ms, total_ms, problem_memory, search_memory, created_at
		FROM runs
		WHERE id = ?
	`

	run, err := scanRun(d.db.conn.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, types.NewError(types.RUN_NOT_FOUND, fmt.Sprintf("run not found: %s", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// List lists the most recent runs, newest first
func (d *runDAO) List(ctx context.Context, limit int) ([]*Run, error) {
	query := `
		SELECT
			id, domain, problem, heuristic, weight, timeout_ms, found,
			plan_size, plan_cost, actions, parsing_ms, encoding_ms,
			search_ms, total_ms, problem_memory, search_memory, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
	`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Count returns the number of recorded runs
func (d *runDAO) Count(ctx context.Context) (int, error) {
	var count int
	err := d.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Delete deletes a run
func (d *runDAO) Delete(ctx context.Context, id types.ID) error {
	result, err := d.db.conn.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewError(types.RUN_NOT_FOUND, fmt.Sprintf("run not found: %s", id))
	}

	return nil
}

// DeleteAll deletes every recorded run
func (d *runDAO) DeleteAll(ctx context.Context) error {
	if _, err := d.db.conn.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("failed to delete runs: %w", err)
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRun scans a single run row
func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var actionsJSON sql.NullString

	err := row.Scan(
		&run.ID,
		&run.Domain,
		&run.Problem,
		&run.Heuristic,
		&run.Weight,
		&run.TimeoutMS,
		&run.Found,
		&run.PlanSize,
		&run.PlanCost,
		&actionsJSON,
		&run.ParsingMS,
		&run.EncodingMS,
		&run.SearchMS,
		&run.TotalMS,
		&run.ProblemMemory,
		&run.SearchMemory,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Unmarshal plan actions
	if actionsJSON.Valid && actionsJSON.String != "" {
		if err := json.Unmarshal([]byte(actionsJSON.String), &run.Actions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal actions: %w", err)
		}
	}

	return &run, nil
}
