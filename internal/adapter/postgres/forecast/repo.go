// Package forecast implements persistence for periodic re-forecast
// schedules and their run history using PostgreSQL.
package forecast

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides forecast-schedule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new forecast-schedule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const scheduleColumns = `id, project_id, frequency, next_run, active, created_at`

const createScheduleSQL = `
INSERT INTO forecast_schedules (id, project_id, frequency, next_run, active, created_at)
VALUES ($1, $2, $3, $4, TRUE, $5)
RETURNING ` + scheduleColumns

const listDueSchedulesSQL = `
SELECT ` + scheduleColumns + `
FROM forecast_schedules
WHERE active AND next_run <= $1
ORDER BY next_run`

const setNextRunSQL = `
UPDATE forecast_schedules
SET next_run = $2
WHERE id = $1 AND active`

const insertHistorySQL = `
INSERT INTO forecast_history (id, run_id, project_id, kind, quantity, forecast_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listHistorySQL = `
SELECT run_id, project_id, kind, quantity, forecast_at
FROM forecast_history
WHERE project_id = $1
ORDER BY forecast_at DESC, run_id, kind`

// CreateSchedule inserts an active schedule for a project. A second active
// schedule for the same project fails with domain.ErrAlreadyExists via the
// partial unique index.
func (r *Repo) CreateSchedule(ctx context.Context, s *domain.ForecastSchedule) (*domain.ForecastSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createScheduleSQL, s.ID, s.ProjectID, s.Frequency.String(), s.NextRun, s.CreatedAt)
	created, err := scanSchedule(row)
	if err != nil {
		return nil, postgres.MapError(err, "forecast_schedule", s.ID)
	}
	return created, nil
}

// ListDue returns every active schedule whose next run is at or before now,
// soonest first.
func (r *Repo) ListDue(ctx context.Context, now time.Time) ([]domain.ForecastSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueSchedulesSQL, now)
	if err != nil {
		return nil, postgres.MapError(err, "forecast_schedule", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.ForecastSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, postgres.MapError(err, "forecast_schedule", uuid.Nil)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "forecast_schedule", uuid.Nil)
	}
	return out, nil
}

// SetNextRun advances an active schedule's next run time.
func (r *Repo) SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setNextRunSQL, id, next)
	if err != nil {
		return postgres.MapError(err, "forecast_schedule", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "forecast_schedule", id)
	}
	return nil
}

// CreateRun records one completed re-forecast as per-kind history rows
// sharing the run's ID.
func (r *Repo) CreateRun(ctx context.Context, run *domain.ForecastRun) error {
	if len(run.Quantities) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, kind := range domain.AllMaterialKinds() {
		qty, ok := run.Quantities[kind]
		if !ok {
			continue
		}
		batch.Queue(insertHistorySQL, uuid.New(), run.ID, run.ProjectID, kind.String(), qty, run.ForecastAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "forecast_history", run.ID)
		}
	}
	return nil
}

// ListRuns returns a project's re-forecast history, newest first, with the
// per-kind rows of each run folded back into one entry.
func (r *Repo) ListRuns(ctx context.Context, projectID uuid.UUID) ([]domain.ForecastRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listHistorySQL, projectID)
	if err != nil {
		return nil, postgres.MapError(err, "forecast_history", projectID)
	}
	defer rows.Close()

	var out []domain.ForecastRun
	for rows.Next() {
		var (
			runID      uuid.UUID
			pid        uuid.UUID
			kind       string
			qty        float64
			forecastAt time.Time
		)
		if err := rows.Scan(&runID, &pid, &kind, &qty, &forecastAt); err != nil {
			return nil, postgres.MapError(err, "forecast_history", projectID)
		}

		if len(out) == 0 || out[len(out)-1].ID != runID {
			out = append(out, domain.ForecastRun{
				ID:         runID,
				ProjectID:  pid,
				Quantities: make(map[domain.MaterialKind]float64),
				ForecastAt: forecastAt,
			})
		}
		out[len(out)-1].Quantities[domain.MaterialKind(kind)] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "forecast_history", projectID)
	}
	return out, nil
}

func scanSchedule(row interface{ Scan(dest ...any) error }) (*domain.ForecastSchedule, error) {
	var (
		s         domain.ForecastSchedule
		frequency string
	)
	err := row.Scan(&s.ID, &s.ProjectID, &frequency, &s.NextRun, &s.Active, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Frequency = domain.ForecastFrequency(frequency)
	return &s, nil
}
