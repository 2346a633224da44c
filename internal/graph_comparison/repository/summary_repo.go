package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const schema = `
	CREATE TABLE IF NOT EXISTS comparison_summaries (
		id          UUID PRIMARY KEY,
		run_id      TEXT NOT NULL UNIQUE,
		label       TEXT,
		strategy    TEXT NOT NULL,
		overall_f1  DOUBLE PRECISION NOT NULL,
		launch_f1   DOUBLE PRECISION NOT NULL,
		source_f1   DOUBLE PRECISION NOT NULL,
		simple_ged  INTEGER,
		full_ged    INTEGER,
		metrics     JSONB,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// SummaryRepository keeps the comparison history in PostgreSQL.
type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create comparison_summaries: %w", err)
	}
	return nil
}

// CreateOrUpdate upserts on run_id.
func (r *SummaryRepository) CreateOrUpdate(ctx context.Context, s *Summary) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO comparison_summaries (
			id, run_id, label, strategy, overall_f1, launch_f1, source_f1,
			simple_ged, full_ged, metrics
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (run_id) DO UPDATE SET
			label = EXCLUDED.label,
			strategy = EXCLUDED.strategy,
			overall_f1 = EXCLUDED.overall_f1,
			launch_f1 = EXCLUDED.launch_f1,
			source_f1 = EXCLUDED.source_f1,
			simple_ged = EXCLUDED.simple_ged,
			full_ged = EXCLUDED.full_ged,
			metrics = EXCLUDED.metrics,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	metricsJSON, err := json.Marshal(s.Overall)
	if err != nil {
		metricsJSON = []byte("{}")
	}

	var createdAt, updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query,
		s.ID,
		s.RunID,
		s.Label,
		s.Strategy,
		s.OverallF1,
		s.LaunchF1,
		s.SourceF1,
		nullInt(s.SimpleGED),
		nullInt(s.FullGED),
		metricsJSON,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("failed to create or update summary: %w", err)
	}

	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt
	return nil
}

const selectSummary = `
	SELECT id, run_id, label, strategy, overall_f1, launch_f1, source_f1,
	       simple_ged, full_ged, metrics, created_at, updated_at
	FROM comparison_summaries
`

func (r *SummaryRepository) GetByRunID(ctx context.Context, runID string) (*Summary, error) {
	row := r.db.QueryRowContext(ctx, selectSummary+` WHERE run_id = $1`, runID)
	s, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return s, nil
}

// ListRecent returns the latest summaries, newest first.
func (r *SummaryRepository) ListRecent(ctx context.Context, limit int) ([]*Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, selectSummary+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var out []*Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*Summary, error) {
	var s Summary
	var label sql.NullString
	var simple, full sql.NullInt64
	var metricsJSON []byte

	if err := row.Scan(
		&s.ID,
		&s.RunID,
		&label,
		&s.Strategy,
		&s.OverallF1,
		&s.LaunchF1,
		&s.SourceF1,
		&simple,
		&full,
		&metricsJSON,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.Label = label.String
	s.SimpleGED = intPtr(simple)
	s.FullGED = intPtr(full)
	if len(metricsJSON) > 0 {
		// a corrupt metrics column only loses the detail, not the row
		_ = json.Unmarshal(metricsJSON, &s.Overall)
	}
	return &s, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
