package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
)

// The two call sites deliberately fall back to different lead times for
// unrecognized material kinds: threshold math assumes the common 75-day
// procurement window, order sizing assumes the longer 90-day one.
const (
	fallbackLeadDaysThreshold = 75
	fallbackLeadDaysOrder     = 90

	// leadPadThresholdDays pads lead time in the threshold window.
	leadPadThresholdDays = 3
	// leadPadOrderDays pads lead time in the suggested-order window.
	leadPadOrderDays = 4
)

// computeThreshold derives the dynamic reorder threshold for one pair:
// the mean positive consumption over days that saw any consumption, times
// the padded lead time, times the safety buffer. Days without positive
// usage are excluded from the average rather than counted as zero; diluting
// the signal with idle days would underestimate active-phase demand.
// Fail-open: zero on any failure, and callers must skip evaluation when the
// threshold is not positive.
func (s *Service) computeThreshold(ctx context.Context, material *domain.Material, projectID uuid.UUID) float64 {
	since := s.now().AddDate(0, 0, -s.cfg.LookbackDays)

	days, err := s.usage.DailyPositiveTotals(ctx, material.ID, projectID, since)
	if err != nil {
		s.log.WarnContext(ctx, "threshold: daily totals failed",
			slog.String("material_id", material.ID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}
	if len(days) == 0 {
		return 0
	}

	var total float64
	for _, d := range days {
		total += d.Total
	}
	avgDaily := total / float64(len(days))

	leadDays := domain.LeadTimeDays(material.Kind.String(), fallbackLeadDaysThreshold)
	effectiveDays := max(leadDays+leadPadThresholdDays, 0)

	return avgDaily * float64(effectiveDays) * (1 + s.cfg.SafetyBufferRatio)
}

// suggestedOrderQty sizes a replenishment order from the per-logged-event
// average (total positive usage over entry count), not the per-day average
// the threshold uses. The two statistics diverge whenever entries cluster
// within days, and both formulas are load-bearing.
func (s *Service) suggestedOrderQty(ctx context.Context, material *domain.Material, projectID uuid.UUID) float64 {
	since := s.now().AddDate(0, 0, -s.cfg.LookbackDays)

	stats, err := s.usage.PositiveStats(ctx, material.ID, projectID, since)
	if err != nil {
		s.log.WarnContext(ctx, "suggested qty: stats failed",
			slog.String("material_id", material.ID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}

	rate := stats.AveragePerEntry()
	leadDays := domain.LeadTimeDays(material.Kind.String(), fallbackLeadDaysOrder)

	return rate * float64(max(leadDays+leadPadOrderDays, 0))
}
