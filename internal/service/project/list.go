package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// List returns projects visible to the context user: admins see every
// project, employees only their own. An optional status narrows the result.
func (s *Service) List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f := domain.ProjectFilter{Status: status}
	if !ctxutil.IsAdminCtx(ctx) {
		f.CreatedBy = &userID
	}

	projects, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	return projects, nil
}

// Get returns one project with its stored forecasts. Employees may only
// fetch their own projects.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Details, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}

	if p.CreatedBy != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	forecasts, err := s.projects.ListForecasts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get forecasts: %w", err)
	}

	return &Details{Project: *p, Forecasts: forecasts}, nil
}
