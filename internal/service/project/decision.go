package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// Approve marks a pending project as approved, recording who decided and
// any review notes. Only admins from the same state as the project's
// creator may decide; deciding a non-pending project returns ErrConflict.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, notes *string) error {
	return s.decide(ctx, id, domain.ProjectStatusApproved, notes)
}

// Reject marks a pending project as rejected. Same access rules as Approve.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, notes *string) error {
	return s.decide(ctx, id, domain.ProjectStatusRejected, notes)
}

func (s *Service) decide(ctx context.Context, id uuid.UUID, to domain.ProjectStatus, notes *string) error {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	admin, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("project.decide get admin: %w", err)
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("project.decide get project: %w", err)
	}

	creator, err := s.users.GetByID(ctx, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("project.decide get creator: %w", err)
	}

	// Admins decide only for projects raised in their own state.
	if admin.State != creator.State {
		return domain.ErrForbidden
	}

	if err := s.projects.SetDecision(ctx, id, to, adminID, s.now(), notes); err != nil {
		return fmt.Errorf("project.decide: %w", err)
	}

	s.log.InfoContext(ctx, "project decided",
		slog.String("project_id", id.String()),
		slog.String("status", to.String()),
		slog.String("decided_by", adminID.String()),
	)
	return nil
}
