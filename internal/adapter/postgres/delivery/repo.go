// Package delivery implements the receipts-ledger repository using
// PostgreSQL.
package delivery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides delivery-ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new delivery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, material_id, project_id, supplier_id, quantity, unit_cost,
	received_by, po_ref, invoice_ref, notes, received_at`

const createDeliverySQL = `
INSERT INTO deliveries (id, material_id, project_id, supplier_id, quantity, unit_cost,
	received_by, po_ref, invoice_ref, notes, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + deliveryColumns

const sumByPairSQL = `
SELECT COALESCE(SUM(quantity), 0)
FROM deliveries
WHERE material_id = $1 AND project_id = $2`

const existsForPairSQL = `
SELECT EXISTS(
	SELECT 1 FROM deliveries WHERE material_id = $1 AND project_id = $2
)`

const existsForMaterialSQL = `
SELECT EXISTS(
	SELECT 1 FROM deliveries WHERE material_id = $1
)`

const listActivePairsSQL = `
SELECT DISTINCT material_id, project_id
FROM deliveries
WHERE project_id IS NOT NULL
ORDER BY material_id, project_id`

// Create appends a delivery and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.DeliveryEntry) (*domain.DeliveryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createDeliverySQL,
		e.ID, e.MaterialID, e.ProjectID, e.SupplierID, e.Quantity, e.UnitCost,
		e.ReceivedBy, e.PORef, e.InvoiceRef, e.Notes, e.ReceivedAt)

	created, err := scanDelivery(row)
	if err != nil {
		return nil, postgres.MapError(err, "delivery", e.ID)
	}
	return created, nil
}

// SumByPair returns the total delivered quantity for one (material, project)
// pair. Warehouse-level deliveries (NULL project) are excluded.
func (r *Repo) SumByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var sum float64
	if err := q.QueryRow(ctx, sumByPairSQL, materialID, projectID).Scan(&sum); err != nil {
		return 0, postgres.MapError(err, "delivery", materialID)
	}
	return sum, nil
}

// ExistsForPair reports whether the pair has at least one delivery on record.
func (r *Repo) ExistsForPair(ctx context.Context, materialID, projectID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsForPairSQL, materialID, projectID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "delivery", materialID)
	}
	return exists, nil
}

// ExistsForMaterial reports whether the material has ever been delivered,
// at any project or warehouse level.
func (r *Repo) ExistsForMaterial(ctx context.Context, materialID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsForMaterialSQL, materialID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "delivery", materialID)
	}
	return exists, nil
}

// ListActivePairs returns every (material, project) pair with at least one
// delivery. The periodic sweep walks this set.
func (r *Repo) ListActivePairs(ctx context.Context) ([]domain.LedgerPair, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listActivePairsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "delivery", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.LedgerPair
	for rows.Next() {
		var p domain.LedgerPair
		if err := rows.Scan(&p.MaterialID, &p.ProjectID); err != nil {
			return nil, postgres.MapError(err, "delivery", uuid.Nil)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "delivery", uuid.Nil)
	}
	return out, nil
}

// List returns deliveries matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.DeliveryFilter) ([]domain.DeliveryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.Select(
		"id", "material_id", "project_id", "supplier_id", "quantity", "unit_cost",
		"received_by", "po_ref", "invoice_ref", "notes", "received_at",
	).From("deliveries").OrderBy("received_at DESC")

	if f.MaterialID != nil {
		query = query.Where(sq.Eq{"material_id": *f.MaterialID})
	}
	if f.ProjectID != nil {
		query = query.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.SupplierID != nil {
		query = query.Where(sq.Eq{"supplier_id": *f.SupplierID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "delivery", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "delivery", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.DeliveryEntry
	for rows.Next() {
		e, err := scanDelivery(rows)
		if err != nil {
			return nil, postgres.MapError(err, "delivery", uuid.Nil)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "delivery", uuid.Nil)
	}
	return out, nil
}

func scanDelivery(row interface{ Scan(dest ...any) error }) (*domain.DeliveryEntry, error) {
	var e domain.DeliveryEntry
	err := row.Scan(&e.ID, &e.MaterialID, &e.ProjectID, &e.SupplierID, &e.Quantity, &e.UnitCost,
		&e.ReceivedBy, &e.PORef, &e.InvoiceRef, &e.Notes, &e.ReceivedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
