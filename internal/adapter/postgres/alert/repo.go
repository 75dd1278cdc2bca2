// Package alert implements the ReorderAlert repository using PostgreSQL.
package alert

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides reorder-alert persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const alertColumns = `id, material_id, project_id, alert_type, current_stock, threshold,
	suggested_qty, priority, status, triggered_by, created_at, acknowledged_by, acknowledged_at`

// upsertActiveSQL targets the partial unique index on active pairs. A
// re-trigger refreshes the snapshot fields and creation timestamp of the
// pair's existing active row, keeping its original id.
const upsertActiveSQL = `
INSERT INTO reorder_alerts (id, material_id, project_id, alert_type, current_stock, threshold,
	suggested_qty, priority, status, triggered_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active', $9, $10)
ON CONFLICT (material_id, project_id) WHERE status = 'active'
DO UPDATE SET
	alert_type    = EXCLUDED.alert_type,
	current_stock = EXCLUDED.current_stock,
	threshold     = EXCLUDED.threshold,
	suggested_qty = EXCLUDED.suggested_qty,
	priority      = EXCLUDED.priority,
	triggered_by  = EXCLUDED.triggered_by,
	created_at    = EXCLUDED.created_at
RETURNING ` + alertColumns

const getAlertByIDSQL = `
SELECT ` + alertColumns + `
FROM reorder_alerts
WHERE id = $1`

const acknowledgeSQL = `
UPDATE reorder_alerts
SET status = 'acknowledged', acknowledged_by = $2, acknowledged_at = $3
WHERE id = $1 AND status = 'active'`

const resolveSQL = `
UPDATE reorder_alerts
SET status = 'resolved'
WHERE id = $1 AND status <> 'resolved'`

const alertExistsSQL = `
SELECT EXISTS(SELECT 1 FROM reorder_alerts WHERE id = $1)`

// UpsertActive inserts a new active alert or refreshes the snapshot of the
// pair's existing active alert. Returns the resulting row.
func (r *Repo) UpsertActive(ctx context.Context, a *domain.ReorderAlert) (*domain.ReorderAlert, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertActiveSQL,
		a.ID, a.MaterialID, a.ProjectID, a.Type.String(), a.CurrentStock, a.Threshold,
		a.SuggestedQty, a.Priority.String(), a.TriggeredBy.String(), a.CreatedAt)

	stored, err := scanAlert(row)
	if err != nil {
		return nil, postgres.MapError(err, "reorder_alert", a.ID)
	}
	return stored, nil
}

// GetByID returns an alert by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderAlert, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAlert(q.QueryRow(ctx, getAlertByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "reorder_alert", id)
	}
	return a, nil
}

// Acknowledge transitions an active alert to acknowledged. Acknowledging an
// alert that is no longer active is a silent no-op; a missing alert is
// domain.ErrNotFound.
func (r *Repo) Acknowledge(ctx context.Context, id, byUser uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, acknowledgeSQL, id, byUser, at)
	if err != nil {
		return postgres.MapError(err, "reorder_alert", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, alertExistsSQL, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "reorder_alert", id)
	}
	if !exists {
		return postgres.MapError(domain.ErrNotFound, "reorder_alert", id)
	}
	return nil
}

// Resolve transitions an alert to resolved regardless of its current
// non-resolved status. Missing alerts are domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, resolveSQL, id)
	if err != nil {
		return postgres.MapError(err, "reorder_alert", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, alertExistsSQL, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "reorder_alert", id)
	}
	if !exists {
		return postgres.MapError(domain.ErrNotFound, "reorder_alert", id)
	}
	return nil
}

// ListActive returns active alerts matching the filter, most urgent first,
// newest first within a priority.
func (r *Repo) ListActive(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.Select(
		"id", "material_id", "project_id", "alert_type", "current_stock", "threshold",
		"suggested_qty", "priority", "status", "triggered_by", "created_at",
		"acknowledged_by", "acknowledged_at",
	).From("reorder_alerts").
		Where(sq.Eq{"status": domain.AlertStatusActive.String()}).
		OrderBy(
			`CASE priority
				WHEN 'critical' THEN 4
				WHEN 'high' THEN 3
				WHEN 'medium' THEN 2
				ELSE 1
			END DESC`,
			"created_at DESC",
		)

	if f.MaterialID != nil {
		query = query.Where(sq.Eq{"material_id": *f.MaterialID})
	}
	if f.ProjectID != nil {
		query = query.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.Priority != nil {
		query = query.Where(sq.Eq{"priority": f.Priority.String()})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reorder_alert", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "reorder_alert", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.ReorderAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, postgres.MapError(err, "reorder_alert", uuid.Nil)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "reorder_alert", uuid.Nil)
	}
	return out, nil
}

func scanAlert(row interface{ Scan(dest ...any) error }) (*domain.ReorderAlert, error) {
	var (
		a         domain.ReorderAlert
		typ       string
		priority  string
		status    string
		triggered string
	)
	err := row.Scan(&a.ID, &a.MaterialID, &a.ProjectID, &typ, &a.CurrentStock, &a.Threshold,
		&a.SuggestedQty, &priority, &status, &triggered, &a.CreatedAt, &a.AcknowledgedBy, &a.AcknowledgedAt)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AlertType(typ)
	a.Priority = domain.AlertPriority(priority)
	a.Status = domain.AlertStatus(status)
	a.TriggeredBy = domain.AlertTrigger(triggered)
	return &a, nil
}
