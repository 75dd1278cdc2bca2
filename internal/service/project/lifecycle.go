package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
)

// Finish marks a project as finished regardless of its current status.
// Finishing an already finished project is a no-op.
func (s *Service) Finish(ctx context.Context, id uuid.UUID) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("project.Finish: %w", err)
	}
	if p.Status == domain.ProjectStatusFinished {
		return nil
	}

	if err := s.projects.SetStatus(ctx, id, p.Status, domain.ProjectStatusFinished); err != nil {
		return fmt.Errorf("project.Finish: %w", err)
	}

	s.log.InfoContext(ctx, "project finished", slog.String("project_id", id.String()))
	return nil
}

// Delete removes a project. The store cascades to its forecasts, ledger
// entries, and alerts.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.String("project_id", id.String()))
	return nil
}
