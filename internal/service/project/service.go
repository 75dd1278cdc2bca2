// Package project implements the project lifecycle: creation with model
// forecasts, role-scoped listing, the state-bound approval workflow, and
// completion/removal.
package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/internal/provider"
)

// projectRepo defines the project-store interface needed by the project service.
type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to domain.ProjectStatus) error
	SetDecision(ctx context.Context, id uuid.UUID, to domain.ProjectStatus, decidedBy uuid.UUID, decidedAt time.Time, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateForecasts(ctx context.Context, forecasts []domain.ProjectForecast) error
	ListForecasts(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectForecast, error)
	ReplacePhases(ctx context.Context, projectID uuid.UUID, phases []domain.ProjectPhase) error
	ListPhases(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectPhase, error)
}

// scheduleRepo defines the re-forecast schedule interface needed by the project service.
type scheduleRepo interface {
	CreateSchedule(ctx context.Context, s *domain.ForecastSchedule) (*domain.ForecastSchedule, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.ForecastSchedule, error)
	SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error
	CreateRun(ctx context.Context, run *domain.ForecastRun) error
	ListRuns(ctx context.Context, projectID uuid.UUID) ([]domain.ForecastRun, error)
}

// userRepo defines the user-lookup interface needed by the project service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// materialRepo defines the material-lookup interface needed by the project service.
type materialRepo interface {
	GetByKind(ctx context.Context, kind domain.MaterialKind) (*domain.Material, error)
}

// forecaster defines the model-service interface needed by the project service.
type forecaster interface {
	PredictAll(ctx context.Context, attrs domain.ProjectAttributes) (*provider.ForecastResult, error)
}

// stockReserver defines the inventory-reservation interface needed by the project service.
type stockReserver interface {
	ReserveForForecast(ctx context.Context, projectID, materialID uuid.UUID, quantity float64, byUser uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the project service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements project lifecycle operations.
type Service struct {
	log       *slog.Logger
	projects  projectRepo
	schedules scheduleRepo
	users     userRepo
	materials materialRepo
	forecasts forecaster
	stock     stockReserver
	tx        txManager

	// now is swapped out in tests.
	now func() time.Time
}

// NewService creates a new project service instance.
func NewService(
	logger *slog.Logger,
	projects projectRepo,
	schedules scheduleRepo,
	users userRepo,
	materials materialRepo,
	forecasts forecaster,
	stock stockReserver,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "project"),
		projects:  projects,
		schedules: schedules,
		users:     users,
		materials: materials,
		forecasts: forecasts,
		stock:     stock,
		tx:        tx,
		now:       time.Now,
	}
}

// Details bundles a project with its stored per-kind forecasts.
type Details struct {
	Project   domain.Project
	Forecasts []domain.ProjectForecast
}
