// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides project and project-forecast persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, budget, location, tower_type, substation_type, geo_zone, taxes,
	created_by, status, created_at, approved_by, approved_at, approval_notes`

const createProjectSQL = `
INSERT INTO projects (id, budget, location, tower_type, substation_type, geo_zone, taxes,
	created_by, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + projectColumns

const getProjectByIDSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

const setStatusSQL = `
UPDATE projects
SET status = $2
WHERE id = $1 AND status = $3`

const setDecisionSQL = `
UPDATE projects
SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5
WHERE id = $1 AND status = 'pending'`

const deleteProjectSQL = `
DELETE FROM projects
WHERE id = $1`

const insertForecastSQL = `
INSERT INTO project_forecasts (project_id, kind, quantity)
VALUES ($1, $2, $3)`

const listForecastsSQL = `
SELECT project_id, kind, quantity
FROM project_forecasts
WHERE project_id = $1
ORDER BY kind`

const deletePhasesSQL = `
DELETE FROM project_phases
WHERE project_id = $1`

const insertPhaseSQL = `
INSERT INTO project_phases (id, project_id, phase_name, start_date, end_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const listPhasesSQL = `
SELECT id, project_id, phase_name, start_date, end_date, status, created_at
FROM project_phases
WHERE project_id = $1
ORDER BY start_date`

// Create inserts a new project and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createProjectSQL,
		p.ID, p.Budget, p.Location, p.TowerType, p.SubstationType, p.GeoZone, p.Taxes,
		p.CreatedBy, p.Status.String(), p.CreatedAt)

	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, getProjectByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// List returns projects matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.Select(
		"id", "budget", "location", "tower_type", "substation_type", "geo_zone", "taxes",
		"created_by", "status", "created_at", "approved_by", "approved_at", "approval_notes",
	).From("projects").OrderBy("created_at DESC")

	if f.Status != nil {
		query = query.Where(sq.Eq{"status": f.Status.String()})
	}
	if f.Location != nil {
		query = query.Where(sq.Eq{"location": *f.Location})
	}
	if f.CreatedBy != nil {
		query = query.Where(sq.Eq{"created_by": *f.CreatedBy})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, postgres.MapError(err, "project", uuid.Nil)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}
	return out, nil
}

// SetStatus transitions a project from one status to another. Returns
// domain.ErrConflict when the project is not in the expected status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.ProjectStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setStatusSQL, id, to.String(), from.String())
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrConflict, "project", id)
	}
	return nil
}

// SetDecision records an approval or rejection of a pending project.
// Returns domain.ErrConflict when the project is no longer pending.
func (r *Repo) SetDecision(ctx context.Context, id uuid.UUID, to domain.ProjectStatus, decidedBy uuid.UUID, decidedAt time.Time, notes *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setDecisionSQL, id, to.String(), decidedBy, decidedAt, notes)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrConflict, "project", id)
	}
	return nil
}

// Delete removes a project. Ledger entries and alerts cascade at the
// database level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteProjectSQL, id)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "project", id)
	}
	return nil
}

// CreateForecasts inserts the forecast rows for a project in one batch.
func (r *Repo) CreateForecasts(ctx context.Context, forecasts []domain.ProjectForecast) error {
	if len(forecasts) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, f := range forecasts {
		batch.Queue(insertForecastSQL, f.ProjectID, f.Kind.String(), f.Quantity)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range forecasts {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "project_forecast", forecasts[0].ProjectID)
		}
	}
	return nil
}

// ListForecasts returns the stored forecasts for a project.
func (r *Repo) ListForecasts(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectForecast, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForecastsSQL, projectID)
	if err != nil {
		return nil, postgres.MapError(err, "project_forecast", projectID)
	}
	defer rows.Close()

	var out []domain.ProjectForecast
	for rows.Next() {
		var (
			f    domain.ProjectForecast
			kind string
		)
		if err := rows.Scan(&f.ProjectID, &kind, &f.Quantity); err != nil {
			return nil, postgres.MapError(err, "project_forecast", projectID)
		}
		f.Kind = domain.MaterialKind(kind)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_forecast", projectID)
	}
	return out, nil
}

// ReplacePhases swaps a project's timeline for a new set of phases. Run it
// inside a transaction so the delete and the inserts land together.
func (r *Repo) ReplacePhases(ctx context.Context, projectID uuid.UUID, phases []domain.ProjectPhase) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePhasesSQL, projectID); err != nil {
		return postgres.MapError(err, "project_phase", projectID)
	}

	batch := &pgx.Batch{}
	for _, p := range phases {
		batch.Queue(insertPhaseSQL, p.ID, p.ProjectID, p.Name, p.StartDate, p.EndDate, p.Status, p.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range phases {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "project_phase", projectID)
		}
	}
	return nil
}

// ListPhases returns a project's phases ordered by start date.
func (r *Repo) ListPhases(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectPhase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPhasesSQL, projectID)
	if err != nil {
		return nil, postgres.MapError(err, "project_phase", projectID)
	}
	defer rows.Close()

	var out []domain.ProjectPhase
	for rows.Next() {
		var p domain.ProjectPhase
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "project_phase", projectID)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_phase", projectID)
	}
	return out, nil
}

func scanProject(row interface{ Scan(dest ...any) error }) (*domain.Project, error) {
	var (
		p      domain.Project
		status string
	)
	err := row.Scan(&p.ID, &p.Budget, &p.Location, &p.TowerType, &p.SubstationType, &p.GeoZone, &p.Taxes,
		&p.CreatedBy, &status, &p.CreatedAt, &p.ApprovedBy, &p.ApprovedAt, &p.ApprovalNotes)
	if err != nil {
		return nil, err
	}
	p.Status = domain.ProjectStatus(status)
	return &p, nil
}
