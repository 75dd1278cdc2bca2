package inventory

import (
	"log/slog"
	"testing"
	"time"

	"github.com/powerline/gridstock/internal/config"
)

//go:generate moq -out usage_repo_mock_test.go -pkg inventory . usageRepo
//go:generate moq -out delivery_repo_mock_test.go -pkg inventory . deliveryRepo
//go:generate moq -out inventory_repo_mock_test.go -pkg inventory . inventoryRepo
//go:generate moq -out alert_repo_mock_test.go -pkg inventory . alertRepo

// testNow is the frozen clock every service test runs against.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// testMocks bundles one mock per service dependency.
type testMocks struct {
	usage      *usageRepoMock
	deliveries *deliveryRepoMock
	inventory  *inventoryRepoMock
	alerts     *alertRepoMock
	materials  *materialRepoMock
	suppliers  *supplierRepoMock
	projects   *projectRepoMock
	tx         *txManagerMock
}

// newTestService creates a Service over fresh mocks, default config, and a
// frozen clock.
func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()

	m := &testMocks{
		usage:      &usageRepoMock{},
		deliveries: &deliveryRepoMock{},
		inventory:  &inventoryRepoMock{},
		alerts:     &alertRepoMock{},
		materials:  &materialRepoMock{},
		suppliers:  &supplierRepoMock{},
		projects:   &projectRepoMock{},
		tx:         &txManagerMock{},
	}

	svc := &Service{
		log:        slog.Default(),
		usage:      m.usage,
		deliveries: m.deliveries,
		inventory:  m.inventory,
		alerts:     m.alerts,
		materials:  m.materials,
		suppliers:  m.suppliers,
		projects:   m.projects,
		tx:         m.tx,
		cfg: config.InventoryConfig{
			LookbackDays:            30,
			SafetyBufferRatio:       0.10,
			ActivityWindowDays:      60,
			SweepInterval:           time.Hour,
			SweepRetryCooldown:      5 * time.Minute,
			DefaultSupplierLeadDays: 7,
		},
		now: func() time.Time { return testNow },
	}
	return svc, m
}
