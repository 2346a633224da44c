package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ged"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSummaryRepo(t *testing.T) (*SummaryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewSummaryRepository(db), mock, db
}

var summaryColumns = []string{
	"id", "run_id", "label", "strategy", "overall_f1", "launch_f1", "source_f1",
	"simple_ged", "full_ged", "metrics", "created_at", "updated_at",
}

func TestSummaryFromRun(t *testing.T) {
	run := &Run{
		RunID:    "run-1",
		Strategy: "name",
		Report: &metrics.Report{
			Overall:   metrics.Levelled{Lv3: metrics.Counters{COR: 1, MIS: 1}.Tuple()},
			SimpleGED: &ged.Result{Computed: true, Distance: 4},
			FullGED:   &ged.Result{Reason: ged.SkipReason},
		},
	}
	s := SummaryFromRun(run)
	assert.Equal(t, "run-1", s.RunID)
	assert.InDelta(t, 2.0/3.0, s.OverallF1, 1e-9)
	require.NotNil(t, s.SimpleGED)
	assert.Equal(t, 4, *s.SimpleGED)
	assert.Nil(t, s.FullGED)
}

func TestSummaryRepository_CreateOrUpdate(t *testing.T) {
	repo, mock, db := setupSummaryRepo(t)
	defer db.Close()

	dist := 3
	s := &Summary{RunID: "run-1", Strategy: "name_type_loc", OverallF1: 0.75, SimpleGED: &dist}

	mock.ExpectQuery(`INSERT INTO comparison_summaries`).
		WithArgs(
			sqlmock.AnyArg(), // id (UUID)
			"run-1",
			"",
			"name_type_loc",
			0.75,
			0.0,
			0.0,
			sqlmock.AnyArg(), // simple_ged
			sqlmock.AnyArg(), // full_ged
			sqlmock.AnyArg(), // metrics JSONB
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(time.Now(), time.Now()))

	require.NoError(t, repo.CreateOrUpdate(context.Background(), s))
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_GetByRunID(t *testing.T) {
	repo, mock, db := setupSummaryRepo(t)
	defer db.Close()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM comparison_summaries WHERE run_id`).
			WithArgs("run-1").
			WillReturnRows(sqlmock.NewRows(summaryColumns).AddRow(
				"id-1", "run-1", "demo", "name", 0.5, 1.0, 0.25,
				int64(7), nil, []byte(`{"lv1":{"cor":1}}`), now, now,
			))

		s, err := repo.GetByRunID(context.Background(), "run-1")
		require.NoError(t, err)
		assert.Equal(t, "demo", s.Label)
		require.NotNil(t, s.SimpleGED)
		assert.Equal(t, 7, *s.SimpleGED)
		assert.Nil(t, s.FullGED)
		assert.Equal(t, 1, s.Overall.Lv1.COR)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM comparison_summaries WHERE run_id`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByRunID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_ListRecent(t *testing.T) {
	repo, mock, db := setupSummaryRepo(t)
	defer db.Close()
	now := time.Now()

	mock.ExpectQuery(`FROM comparison_summaries ORDER BY created_at DESC LIMIT`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("id-2", "run-2", nil, "name", 1.0, 1.0, 1.0, nil, nil, nil, now, now).
			AddRow("id-1", "run-1", nil, "name", 0.5, 0.5, 0.5, nil, nil, nil, now, now))

	out, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "run-2", out[0].RunID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_EnsureSchema(t *testing.T) {
	repo, mock, db := setupSummaryRepo(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS comparison_summaries`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
