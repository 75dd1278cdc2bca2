// Package inventory implements the stock ledger, dynamic reorder
// thresholds, and the reorder-alert lifecycle.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/config"
	"github.com/powerline/gridstock/internal/domain"
)

// usageRepo defines the usage-ledger interface needed by the inventory service.
type usageRepo interface {
	Create(ctx context.Context, e *domain.UsageEntry) (*domain.UsageEntry, error)
	SumByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error)
	SumReservedByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error)
	DailyPositiveTotals(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) ([]domain.DayUsage, error)
	PositiveStats(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) (domain.UsageStats, error)
	HasPositiveSince(ctx context.Context, materialID, projectID uuid.UUID, since time.Time) (bool, error)
	GlobalPositiveTotalSince(ctx context.Context, materialID uuid.UUID, since time.Time) (float64, error)
}

// deliveryRepo defines the receipts-ledger interface needed by the inventory service.
type deliveryRepo interface {
	Create(ctx context.Context, e *domain.DeliveryEntry) (*domain.DeliveryEntry, error)
	SumByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error)
	ExistsForPair(ctx context.Context, materialID, projectID uuid.UUID) (bool, error)
	ExistsForMaterial(ctx context.Context, materialID uuid.UUID) (bool, error)
	ListActivePairs(ctx context.Context) ([]domain.LedgerPair, error)
}

// inventoryRepo defines the warehouse-projection interface needed by the inventory service.
type inventoryRepo interface {
	EnsureRecord(ctx context.Context, materialID uuid.UUID, now time.Time) error
	GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	AddStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	DeductStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	AddReserved(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	SetReorderPoint(ctx context.Context, materialID uuid.UUID, point float64, now time.Time) error
}

// alertRepo defines the alert-store interface needed by the inventory service.
type alertRepo interface {
	UpsertActive(ctx context.Context, a *domain.ReorderAlert) (*domain.ReorderAlert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderAlert, error)
	Acknowledge(ctx context.Context, id, byUser uuid.UUID, at time.Time) error
	ListActive(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error)
}

// materialRepo defines the material-reference interface needed by the inventory service.
type materialRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	List(ctx context.Context) ([]domain.Material, error)
}

// supplierRepo defines the supplier-reference interface needed by the inventory service.
type supplierRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
}

// projectRepo defines the project-reference interface needed by the inventory service.
type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

// txManager defines the transaction manager interface needed by the inventory service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements inventory ledger and alerting operations.
type Service struct {
	log        *slog.Logger
	usage      usageRepo
	deliveries deliveryRepo
	inventory  inventoryRepo
	alerts     alertRepo
	materials  materialRepo
	suppliers  supplierRepo
	projects   projectRepo
	tx         txManager
	cfg        config.InventoryConfig

	// now is swapped out in tests.
	now func() time.Time
}

// NewService creates a new inventory service instance.
func NewService(
	logger *slog.Logger,
	usage usageRepo,
	deliveries deliveryRepo,
	inventory inventoryRepo,
	alerts alertRepo,
	materials materialRepo,
	suppliers supplierRepo,
	projects projectRepo,
	tx txManager,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "inventory"),
		usage:      usage,
		deliveries: deliveries,
		inventory:  inventory,
		alerts:     alerts,
		materials:  materials,
		suppliers:  suppliers,
		projects:   projects,
		tx:         tx,
		cfg:        cfg,
		now:        time.Now,
	}
}
