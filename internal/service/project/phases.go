package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
)

// PhaseInput is one timeline entry in a phase replacement.
type PhaseInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// PhasesInput replaces a project's entire construction timeline.
type PhasesInput struct {
	ProjectID uuid.UUID
	Phases    []PhaseInput
}

// Validate checks the input and returns a ValidationError listing every
// problem found.
func (i PhasesInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.Phases) == 0 {
		errs = append(errs, domain.FieldError{Field: "phases", Message: "at least one phase required"})
	}
	for idx, p := range i.Phases {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("phases[%d].name", idx), Message: "required"})
		}
		if p.EndDate.Before(p.StartDate) {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("phases[%d].end_date", idx), Message: "must not precede start_date"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetPhases replaces a project's timeline with the given phases. The old
// set is dropped and the new one written in a single transaction.
func (s *Service) SetPhases(ctx context.Context, input PhasesInput) ([]domain.ProjectPhase, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("project.SetPhases get project: %w", err)
	}

	now := s.now()
	phases := make([]domain.ProjectPhase, 0, len(input.Phases))
	for _, p := range input.Phases {
		phases = append(phases, domain.ProjectPhase{
			ID:        uuid.New(),
			ProjectID: input.ProjectID,
			Name:      strings.TrimSpace(p.Name),
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Status:    domain.PhaseStatusPending,
			CreatedAt: now,
		})
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.projects.ReplacePhases(txCtx, input.ProjectID, phases)
	})
	if err != nil {
		return nil, fmt.Errorf("project.SetPhases: %w", err)
	}

	s.log.InfoContext(ctx, "project phases replaced",
		slog.String("project_id", input.ProjectID.String()),
		slog.Int("phases", len(phases)),
	)
	return phases, nil
}

// ListPhases returns a project's timeline ordered by start date.
func (s *Service) ListPhases(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectPhase, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project.ListPhases get project: %w", err)
	}

	phases, err := s.projects.ListPhases(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListPhases: %w", err)
	}
	return phases, nil
}
