package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
)

// ScheduleInput carries the parameters of a new re-forecast schedule.
type ScheduleInput struct {
	ProjectID uuid.UUID
	Frequency domain.ForecastFrequency
}

// Validate checks the input and returns a ValidationError listing every
// problem found.
func (i ScheduleInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be weekly, monthly, or quarterly"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSchedule registers a periodic re-forecast for a project. The first
// run lands one full interval out. A project with an active schedule
// already in place fails with domain.ErrAlreadyExists.
func (s *Service) CreateSchedule(ctx context.Context, input ScheduleInput) (*domain.ForecastSchedule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("project.CreateSchedule get project: %w", err)
	}

	now := s.now()
	created, err := s.schedules.CreateSchedule(ctx, &domain.ForecastSchedule{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		Frequency: input.Frequency,
		NextRun:   input.Frequency.NextFrom(now),
		Active:    true,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("project.CreateSchedule: %w", err)
	}

	s.log.InfoContext(ctx, "forecast schedule created",
		slog.String("schedule_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()),
		slog.String("frequency", created.Frequency.String()),
	)
	return created, nil
}

// ForecastHistory returns a project's re-forecast runs, newest first.
func (s *Service) ForecastHistory(ctx context.Context, projectID uuid.UUID) ([]domain.ForecastRun, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project.ForecastHistory get project: %w", err)
	}

	runs, err := s.schedules.ListRuns(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ForecastHistory: %w", err)
	}
	return runs, nil
}

// RunDueForecasts re-forecasts every project whose schedule is due,
// recording each result in the history and advancing the schedule's next
// run. Per-schedule failures are isolated and logged; the failed schedule
// keeps its due date so the next invocation retries it. Returns the number
// of schedules that ran cleanly.
func (s *Service) RunDueForecasts(ctx context.Context) (int, error) {
	due, err := s.schedules.ListDue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("project.RunDueForecasts list due: %w", err)
	}

	var processed int
	for i := range due {
		if err := s.runSchedule(ctx, &due[i]); err != nil {
			s.log.WarnContext(ctx, "periodic forecast failed",
				slog.String("schedule_id", due[i].ID.String()),
				slog.String("project_id", due[i].ProjectID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		processed++
	}

	s.log.InfoContext(ctx, "periodic forecasts finished",
		slog.Int("due", len(due)),
		slog.Int("processed", processed),
	)
	return processed, nil
}

func (s *Service) runSchedule(ctx context.Context, sched *domain.ForecastSchedule) error {
	p, err := s.projects.GetByID(ctx, sched.ProjectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	result, err := s.forecasts.PredictAll(ctx, p.Attributes())
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}
	if len(result.Failed) > 0 {
		s.log.WarnContext(ctx, "partial periodic forecast",
			slog.String("project_id", p.ID.String()),
			slog.Int("failed_kinds", len(result.Failed)),
		)
	}

	now := s.now()
	run := &domain.ForecastRun{
		ID:         uuid.New(),
		ProjectID:  p.ID,
		Quantities: result.Quantities,
		ForecastAt: now,
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.schedules.CreateRun(txCtx, run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		if err := s.schedules.SetNextRun(txCtx, sched.ID, sched.Frequency.NextFrom(now)); err != nil {
			return fmt.Errorf("advance schedule: %w", err)
		}
		return nil
	})
}
