package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// Create runs the forecast models for the given attributes, persists the
// project together with its per-kind forecasts, and reserves positive
// forecast quantities against warehouse stock. Admin-created projects are
// approved immediately; employee projects start pending.
//
// Reservations are best effort: a missing material row or a stock write
// failure is logged and skipped, it never rolls back the project.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Details, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	p := &domain.Project{
		ID:             uuid.New(),
		Budget:         input.Budget,
		Location:       input.Location,
		TowerType:      input.TowerType,
		SubstationType: input.SubstationType,
		GeoZone:        input.GeoZone,
		Taxes:          input.Taxes,
		CreatedBy:      userID,
		Status:         domain.ProjectStatusPending,
		CreatedAt:      now,
	}
	if ctxutil.IsAdminCtx(ctx) {
		p.Status = domain.ProjectStatusApproved
		p.ApprovedBy = &userID
		p.ApprovedAt = &now
	}

	result, err := s.forecasts.PredictAll(ctx, p.Attributes())
	if err != nil {
		return nil, fmt.Errorf("project.Create forecast: %w", err)
	}
	if len(result.Failed) > 0 {
		s.log.WarnContext(ctx, "partial forecast result",
			slog.Int("failed_kinds", len(result.Failed)),
		)
	}

	forecasts := make([]domain.ProjectForecast, 0, len(domain.AllMaterialKinds()))
	for _, kind := range domain.AllMaterialKinds() {
		forecasts = append(forecasts, domain.ProjectForecast{
			ProjectID: p.ID,
			Kind:      kind,
			Quantity:  result.Quantity(kind),
		})
	}

	var created *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.projects.Create(txCtx, p)
		if txErr != nil {
			return txErr
		}
		return s.projects.CreateForecasts(txCtx, forecasts)
	})
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.reserveForecasts(ctx, created, forecasts)

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("status", created.Status.String()),
		slog.String("location", created.Location),
	)

	return &Details{Project: *created, Forecasts: forecasts}, nil
}

func (s *Service) reserveForecasts(ctx context.Context, p *domain.Project, forecasts []domain.ProjectForecast) {
	for _, f := range forecasts {
		if f.Quantity <= 0 {
			continue
		}

		mat, err := s.materials.GetByKind(ctx, f.Kind)
		if err != nil {
			s.log.WarnContext(ctx, "forecast reservation skipped",
				slog.String("project_id", p.ID.String()),
				slog.String("kind", f.Kind.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if err := s.stock.ReserveForForecast(ctx, p.ID, mat.ID, f.Quantity, p.CreatedBy); err != nil {
			s.log.WarnContext(ctx, "forecast reservation failed",
				slog.String("project_id", p.ID.String()),
				slog.String("kind", f.Kind.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
