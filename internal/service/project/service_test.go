package project

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/pkg/ctxutil"
)

//go:generate moq -out project_repo_mock_test.go -pkg project . projectRepo

// testNow is the frozen clock every service test runs against.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// testMocks bundles one mock per service dependency.
type testMocks struct {
	projects  *projectRepoMock
	schedules *scheduleRepoMock
	users     *userRepoMock
	materials *materialRepoMock
	forecasts *forecasterMock
	stock     *stockReserverMock
	tx        *txManagerMock
}

// newTestService creates a Service over fresh mocks and a frozen clock.
func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()

	m := &testMocks{
		projects:  &projectRepoMock{},
		schedules: &scheduleRepoMock{},
		users:     &userRepoMock{},
		materials: &materialRepoMock{},
		forecasts: &forecasterMock{},
		stock:     &stockReserverMock{},
		tx:        &txManagerMock{},
	}

	svc := &Service{
		log:       slog.Default(),
		projects:  m.projects,
		schedules: m.schedules,
		users:     m.users,
		materials: m.materials,
		forecasts: m.forecasts,
		stock:     m.stock,
		tx:        m.tx,
		now:       func() time.Time { return testNow },
	}
	return svc, m
}

// ctxAs builds a request context authenticated as the given user.
func ctxAs(userID uuid.UUID, role string) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithRole(ctx, role)
}
