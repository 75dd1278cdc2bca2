package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an employee user in the given state.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, state string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		FullName:     "Test User " + suffix,
		Username:     "testuser-" + suffix,
		PasswordHash: "x",
		Role:         role,
		State:        state,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, full_name, password_hash, role, state, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.FullName, user.PasswordHash, string(user.Role), user.State, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedSupplier creates a supplier with the given lead time.
func SeedSupplier(t *testing.T, pool *pgxpool.Pool, leadTimeDays int) domain.Supplier {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Supplier{
		ID:           uuid.New(),
		Name:         "Test Supplier " + suffix,
		LeadTimeDays: leadTimeDays,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO suppliers (id, name, lead_time_days, created_at)
		 VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.LeadTimeDays, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSupplier insert: %v", err)
	}

	return s
}

// SeedMaterial creates a material of the given kind with a unit cost.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, kind domain.MaterialKind, unitCost string) domain.Material {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Material{
		ID:        uuid.New(),
		Name:      string(kind) + "-" + suffix,
		Kind:      kind,
		Unit:      "MT",
		UnitCost:  decimal.RequireFromString(unitCost),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO materials (id, name, kind, unit, unit_cost, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, string(m.Kind), m.Unit, m.UnitCost, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterial insert: %v", err)
	}

	return m
}

// SeedProject creates a project with the given creator and status.
func SeedProject(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, status domain.ProjectStatus) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:             uuid.New(),
		Budget:         decimal.RequireFromString("25000000"),
		Location:       "Nagpur-" + suffix,
		TowerType:      "lattice",
		SubstationType: "AIS",
		GeoZone:        "plains",
		Taxes:          "18",
		CreatedBy:      createdBy,
		Status:         status,
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, budget, location, tower_type, substation_type, geo_zone, taxes, created_by, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Budget, p.Location, p.TowerType, p.SubstationType, p.GeoZone, p.Taxes,
		p.CreatedBy, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return p
}
