package material

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	"github.com/powerline/gridstock/internal/domain"
)

// SupplierRepo provides supplier persistence backed by PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = `id, name, contact_email, lead_time_days, created_at`

const createSupplierSQL = `
INSERT INTO suppliers (id, name, contact_email, lead_time_days, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + supplierColumns

const getSupplierByIDSQL = `
SELECT ` + supplierColumns + `
FROM suppliers
WHERE id = $1`

const listSuppliersSQL = `
SELECT ` + supplierColumns + `
FROM suppliers
ORDER BY name`

// Create inserts a new supplier and returns the persisted row.
func (r *SupplierRepo) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSupplierSQL,
		s.ID, s.Name, s.ContactEmail, s.LeadTimeDays, s.CreatedAt)

	created, err := scanSupplier(row)
	if err != nil {
		return nil, postgres.MapError(err, "supplier", s.ID)
	}
	return created, nil
}

// GetByID returns a supplier by primary key.
func (r *SupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSupplier(q.QueryRow(ctx, getSupplierByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "supplier", id)
	}
	return s, nil
}

// List returns all suppliers ordered by name.
func (r *SupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSuppliersSQL)
	if err != nil {
		return nil, postgres.MapError(err, "supplier", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, postgres.MapError(err, "supplier", uuid.Nil)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "supplier", uuid.Nil)
	}
	return out, nil
}

func scanSupplier(row rowScanner) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.LeadTimeDays, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
