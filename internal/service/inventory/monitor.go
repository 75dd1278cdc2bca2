package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/powerline/gridstock/internal/domain"
)

// monitorSweepDays is the trailing window the warehouse reorder point
// averages over.
const monitorSweepDays = 30

// Run drives the periodic sweep until the context is cancelled. A clean
// sweep schedules the next one a full interval out; a failed sweep retries
// after the shorter cooldown instead of waiting the whole hour.
func (s *Service) Run(ctx context.Context) {
	s.log.InfoContext(ctx, "inventory monitor started",
		slog.Duration("interval", s.cfg.SweepInterval),
	)

	timer := time.NewTimer(s.cfg.SweepInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "inventory monitor stopped")
			return
		case <-timer.C:
		}

		next := s.cfg.SweepInterval
		if err := s.sweepSafely(ctx); err != nil {
			s.log.ErrorContext(ctx, "sweep failed",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", s.cfg.SweepRetryCooldown),
			)
			next = s.cfg.SweepRetryCooldown
		}
		timer.Reset(next)
	}
}

// sweepSafely runs one sweep and turns a panic into an error so the
// monitor goroutine survives and retries after the cooldown.
func (s *Service) sweepSafely(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "sweep panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("inventory.SweepOnce: panic: %v", r)
		}
	}()
	return s.SweepOnce(ctx)
}

// SweepOnce recomputes every material's warehouse reorder point and then
// re-evaluates alerting for every delivered (material, project) pair.
// Per-material failures are isolated and logged so one bad material never
// aborts the rest of the sweep.
func (s *Service) SweepOnce(ctx context.Context) error {
	started := s.now()

	materials, err := s.materials.List(ctx)
	if err != nil {
		return fmt.Errorf("inventory.SweepOnce list materials: %w", err)
	}

	var failures int
	for _, m := range materials {
		if err := s.refreshReorderPoint(ctx, &m); err != nil {
			failures++
			s.log.WarnContext(ctx, "sweep: reorder point failed",
				slog.String("material_id", m.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	pairs, err := s.deliveries.ListActivePairs(ctx)
	if err != nil {
		return fmt.Errorf("inventory.SweepOnce list pairs: %w", err)
	}

	for _, pair := range pairs {
		if err := s.EvaluatePair(ctx, pair.MaterialID, pair.ProjectID, domain.AlertTriggerSweep); err != nil {
			failures++
			s.log.WarnContext(ctx, "sweep: pair evaluation failed",
				slog.String("material_id", pair.MaterialID.String()),
				slog.String("project_id", pair.ProjectID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("materials", len(materials)),
		slog.Int("pairs", len(pairs)),
		slog.Int("failures", failures),
		slog.Duration("took", s.now().Sub(started)),
	)
	return nil
}

// refreshReorderPoint recomputes the warehouse-level reorder point for one
// material: trailing average daily usage across all projects, times the
// primary supplier's lead time plus flat safety stock. Distinct from the
// per-project dynamic threshold; the two coexist.
func (s *Service) refreshReorderPoint(ctx context.Context, m *domain.Material) error {
	since := s.now().AddDate(0, 0, -monitorSweepDays)

	total, err := s.usage.GlobalPositiveTotalSince(ctx, m.ID, since)
	if err != nil {
		return fmt.Errorf("global usage total: %w", err)
	}
	avgDaily := total / monitorSweepDays

	leadDays := s.cfg.DefaultSupplierLeadDays
	if m.PrimarySupplierID != nil {
		supplier, err := s.suppliers.GetByID(ctx, *m.PrimarySupplierID)
		if err != nil {
			return fmt.Errorf("get supplier: %w", err)
		}
		leadDays = supplier.LeadTimeDays
	}

	point := avgDaily * float64(leadDays+leadPadThresholdDays)

	if err := s.inventory.EnsureRecord(ctx, m.ID, s.now()); err != nil {
		return fmt.Errorf("ensure record: %w", err)
	}
	if err := s.inventory.SetReorderPoint(ctx, m.ID, point, s.now()); err != nil {
		return fmt.Errorf("set reorder point: %w", err)
	}
	return nil
}
