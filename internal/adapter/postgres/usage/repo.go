// Package usage implements the consumption-ledger repository using
// PostgreSQL. The ledger is append-only; every read aggregates live rows
// rather than trusting a cached projection.
package usage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides usage-ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const usageColumns = `id, project_id, material_id, quantity, logged_by, notes, logged_at`

const createUsageSQL = `
INSERT INTO usage_entries (id, project_id, material_id, quantity, logged_by, notes, logged_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + usageColumns

const sumByPairSQL = `
SELECT COALESCE(SUM(quantity), 0)
FROM usage_entries
WHERE material_id = $1 AND project_id = $2`

const sumReservedByPairSQL = `
SELECT COALESCE(-SUM(quantity), 0)
FROM usage_entries
WHERE material_id = $1 AND project_id = $2 AND quantity < 0`

const dailyPositiveTotalsSQL = `
SELECT date_trunc('day', logged_at) AS day, SUM(quantity)
FROM usage_entries
WHERE material_id = $1 AND project_id = $2 AND quantity > 0 AND logged_at >= $3
GROUP BY day
ORDER BY day`

const positiveStatsSQL = `
SELECT COALESCE(SUM(quantity), 0), COUNT(*)
FROM usage_entries
WHERE material_id = $1 AND project_id = $2 AND quantity > 0 AND logged_at >= $3`

const hasPositiveSinceSQL = `
SELECT EXISTS(
	SELECT 1
	FROM usage_entries
	WHERE material_id = $1 AND project_id = $2 AND quantity > 0 AND logged_at >= $3
)`

const globalPositiveTotalSinceSQL = `
SELECT COALESCE(SUM(quantity), 0)
FROM usage_entries
WHERE material_id = $1 AND quantity > 0 AND logged_at >= $2`

const listByProjectSQL = `
SELECT ` + usageColumns + `
FROM usage_entries
WHERE project_id = $1
ORDER BY logged_at DESC`

// Create appends a ledger entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.UsageEntry) (*domain.UsageEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUsageSQL,
		e.ID, e.ProjectID, e.MaterialID, e.Quantity, e.LoggedBy, e.Notes, e.LoggedAt)

	var created domain.UsageEntry
	err := row.Scan(&created.ID, &created.ProjectID, &created.MaterialID, &created.Quantity,
		&created.LoggedBy, &created.Notes, &created.LoggedAt)
	if err != nil {
		return nil, postgres.MapError(err, "usage_entry", e.ID)
	}
	return &created, nil
}

// SumByPair returns the net quantity for one (material, project) pair,
// reservations included.
func (r *Repo) SumByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var sum float64
	if err := q.QueryRow(ctx, sumByPairSQL, materialID, projectID).Scan(&sum); err != nil {
		return 0, postgres.MapError(err, "usage_entry", materialID)
	}
	return sum, nil
}

// SumReservedByPair returns the outstanding reserved quantity for one pair
// as a positive number.
func (r *Repo) SumReservedByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var sum float64
	if err := q.QueryRow(ctx, sumReservedByPairSQL, materialID, projectID).Scan(&sum); err != nil {
		return 0, postgres.MapError(err, "usage_entry", materialID)
	}
	return sum, nil
}

// DailyPositiveTotals groups positive consumption by calendar day since the
// cutoff, ascending. Days with no consumption produce no row.
func (r *Repo) DailyPositiveTotals(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) ([]domain.DayUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, dailyPositiveTotalsSQL, materialID, projectID, since)
	if err != nil {
		return nil, postgres.MapError(err, "usage_entry", materialID)
	}
	defer rows.Close()

	var out []domain.DayUsage
	for rows.Next() {
		var d domain.DayUsage
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, postgres.MapError(err, "usage_entry", materialID)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "usage_entry", materialID)
	}
	return out, nil
}

// PositiveStats returns total quantity and entry count of positive
// consumption for one pair since the cutoff.
func (r *Repo) PositiveStats(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) (domain.UsageStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.UsageStats
	if err := q.QueryRow(ctx, positiveStatsSQL, materialID, projectID, since).Scan(&s.TotalQuantity, &s.EntryCount); err != nil {
		return domain.UsageStats{}, postgres.MapError(err, "usage_entry", materialID)
	}
	return s, nil
}

// HasPositiveSince reports whether the pair saw any real consumption since
// the cutoff.
func (r *Repo) HasPositiveSince(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, hasPositiveSinceSQL, materialID, projectID, since).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "usage_entry", materialID)
	}
	return exists, nil
}

// GlobalPositiveTotalSince sums positive consumption for a material across
// all projects since the cutoff. Feeds the warehouse reorder point.
func (r *Repo) GlobalPositiveTotalSince(ctx context.Context, materialID uuid.UUID, since time.Time) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var sum float64
	if err := q.QueryRow(ctx, globalPositiveTotalSinceSQL, materialID, since).Scan(&sum); err != nil {
		return 0, postgres.MapError(err, "usage_entry", materialID)
	}
	return sum, nil
}

// ListByProject returns the full ledger for a project, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.UsageEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByProjectSQL, projectID)
	if err != nil {
		return nil, postgres.MapError(err, "usage_entry", projectID)
	}
	defer rows.Close()

	var out []domain.UsageEntry
	for rows.Next() {
		var e domain.UsageEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.MaterialID, &e.Quantity, &e.LoggedBy, &e.Notes, &e.LoggedAt); err != nil {
			return nil, postgres.MapError(err, "usage_entry", projectID)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "usage_entry", projectID)
	}
	return out, nil
}
