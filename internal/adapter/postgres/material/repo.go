// Package material implements the Material and Supplier repositories using
// PostgreSQL.
package material

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// Repo provides material and supplier persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new material repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const materialColumns = `id, name, kind, category, unit, unit_cost, primary_supplier_id, created_at`

const createMaterialSQL = `
INSERT INTO materials (id, name, kind, category, unit, unit_cost, primary_supplier_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + materialColumns

const getMaterialByIDSQL = `
SELECT ` + materialColumns + `
FROM materials
WHERE id = $1`

const getMaterialByKindSQL = `
SELECT ` + materialColumns + `
FROM materials
WHERE kind = $1
ORDER BY created_at
LIMIT 1`

const listMaterialsSQL = `
SELECT ` + materialColumns + `
FROM materials
ORDER BY name`

const updateUnitCostSQL = `
UPDATE materials
SET unit_cost = $2
WHERE id = $1`

// Create inserts a new material and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createMaterialSQL,
		m.ID, m.Name, m.Kind.String(), m.Category, m.Unit, m.UnitCost, m.PrimarySupplierID, m.CreatedAt)

	created, err := scanMaterial(row)
	if err != nil {
		return nil, postgres.MapError(err, "material", m.ID)
	}
	return created, nil
}

// GetByID returns a material by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMaterial(q.QueryRow(ctx, getMaterialByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "material", id)
	}
	return m, nil
}

// GetByKind returns the oldest material registered for the given kind.
// Project reservations resolve forecast kinds to materials through this.
func (r *Repo) GetByKind(ctx context.Context, kind domain.MaterialKind) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMaterial(q.QueryRow(ctx, getMaterialByKindSQL, kind.String()))
	if err != nil {
		return nil, postgres.MapError(err, "material", uuid.Nil)
	}
	return m, nil
}

// List returns all materials ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMaterialsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "material", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, postgres.MapError(err, "material", uuid.Nil)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "material", uuid.Nil)
	}
	return out, nil
}

// UpdateUnitCost replaces the master unit cost of a material.
func (r *Repo) UpdateUnitCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateUnitCostSQL, id, cost)
	if err != nil {
		return postgres.MapError(err, "material", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "material", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*domain.Material, error) {
	var (
		m    domain.Material
		kind string
	)
	err := row.Scan(&m.ID, &m.Name, &kind, &m.Category, &m.Unit, &m.UnitCost, &m.PrimarySupplierID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Kind = domain.MaterialKind(kind)
	return &m, nil
}
