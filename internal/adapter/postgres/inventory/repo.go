// Package inventory implements the warehouse-record repository using
// PostgreSQL. Rows here are cached projections of the ledger; the alerting
// math never reads them as a source of truth.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides inventory-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const inventoryColumns = `material_id, current_stock, reserved_stock, reorder_point, max_stock, location, updated_at`

const ensureRecordSQL = `
INSERT INTO inventory_records (material_id, updated_at)
VALUES ($1, $2)
ON CONFLICT (material_id) DO NOTHING`

const getByMaterialSQL = `
SELECT ` + inventoryColumns + `
FROM inventory_records
WHERE material_id = $1`

const listRecordsSQL = `
SELECT ` + inventoryColumns + `
FROM inventory_records
ORDER BY material_id`

const addStockSQL = `
UPDATE inventory_records
SET current_stock = current_stock + $2, updated_at = $3
WHERE material_id = $1`

const deductStockSQL = `
UPDATE inventory_records
SET current_stock = current_stock - $2, updated_at = $3
WHERE material_id = $1`

const addReservedSQL = `
UPDATE inventory_records
SET reserved_stock = reserved_stock + $2, updated_at = $3
WHERE material_id = $1`

const setReorderPointSQL = `
UPDATE inventory_records
SET reorder_point = $2, updated_at = $3
WHERE material_id = $1`

// EnsureRecord creates the projection row for a material if it does not
// exist yet.
func (r *Repo) EnsureRecord(ctx context.Context, materialID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureRecordSQL, materialID, now); err != nil {
		return postgres.MapError(err, "inventory_record", materialID)
	}
	return nil
}

// GetByMaterial returns the projection row for one material.
func (r *Repo) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rec domain.InventoryRecord
	err := q.QueryRow(ctx, getByMaterialSQL, materialID).Scan(
		&rec.MaterialID, &rec.CurrentStock, &rec.ReservedStock, &rec.ReorderPoint,
		&rec.MaxStock, &rec.Location, &rec.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "inventory_record", materialID)
	}
	return &rec, nil
}

// List returns all projection rows.
func (r *Repo) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecordsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "inventory_record", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.InventoryRecord
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.MaterialID, &rec.CurrentStock, &rec.ReservedStock, &rec.ReorderPoint,
			&rec.MaxStock, &rec.Location, &rec.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "inventory_record", uuid.Nil)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "inventory_record", uuid.Nil)
	}
	return out, nil
}

// AddStock increases the cached warehouse stock.
func (r *Repo) AddStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	return r.exec(ctx, addStockSQL, materialID, qty, now)
}

// DeductStock decreases the cached warehouse stock. The counter may go
// negative; the ledger, not this projection, is the source of truth.
func (r *Repo) DeductStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	return r.exec(ctx, deductStockSQL, materialID, qty, now)
}

// AddReserved adjusts the cached reserved quantity. Negative qty releases.
func (r *Repo) AddReserved(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	return r.exec(ctx, addReservedSQL, materialID, qty, now)
}

// SetReorderPoint replaces the warehouse-level reorder point.
func (r *Repo) SetReorderPoint(ctx context.Context, materialID uuid.UUID, point float64, now time.Time) error {
	return r.exec(ctx, setReorderPointSQL, materialID, point, now)
}

func (r *Repo) exec(ctx context.Context, sql string, materialID uuid.UUID, val float64, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, materialID, val, now)
	if err != nil {
		return postgres.MapError(err, "inventory_record", materialID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "inventory_record", materialID)
	}
	return nil
}
