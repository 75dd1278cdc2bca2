package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
)

// EvaluatePair runs the alerting pipeline for one (material, project) pair.
// The pair is skipped silently unless it has been delivered at least once,
// shows recent consumption or outstanding reservations, and yields a
// positive threshold. When stock sits below threshold, the pair's single
// active alert is inserted or refreshed; recovered stock never auto-resolves
// an existing alert.
func (s *Service) EvaluatePair(ctx context.Context, materialID, projectID uuid.UUID, trigger domain.AlertTrigger) error {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return fmt.Errorf("inventory.EvaluatePair get material: %w", err)
	}

	delivered, err := s.deliveries.ExistsForPair(ctx, materialID, projectID)
	if err != nil {
		return fmt.Errorf("inventory.EvaluatePair check deliveries: %w", err)
	}
	if !delivered {
		return nil
	}

	active, err := s.hasQualifyingActivity(ctx, materialID, projectID)
	if err != nil {
		return fmt.Errorf("inventory.EvaluatePair check activity: %w", err)
	}
	if !active {
		return nil
	}

	threshold := s.computeThreshold(ctx, material, projectID)
	if threshold <= 0 {
		return nil
	}

	stock := s.projectStock(ctx, materialID, projectID)
	if stock >= threshold {
		return nil
	}

	alertType := domain.AlertTypeLowStock
	if stock <= 0 {
		alertType = domain.AlertTypeStockout
	}

	alert := &domain.ReorderAlert{
		ID:           uuid.New(),
		MaterialID:   materialID,
		ProjectID:    projectID,
		Type:         alertType,
		CurrentStock: stock,
		Threshold:    threshold,
		SuggestedQty: s.suggestedOrderQty(ctx, material, projectID),
		Priority:     classifyPriority(alertType, trigger),
		Status:       domain.AlertStatusActive,
		TriggeredBy:  trigger,
		CreatedAt:    s.now(),
	}

	stored, err := s.alerts.UpsertActive(ctx, alert)
	if err != nil {
		return fmt.Errorf("inventory.EvaluatePair upsert alert: %w", err)
	}

	s.log.InfoContext(ctx, "reorder alert raised",
		slog.String("alert_id", stored.ID.String()),
		slog.String("material_id", materialID.String()),
		slog.String("project_id", projectID.String()),
		slog.String("type", alertType.String()),
		slog.String("priority", stored.Priority.String()),
		slog.Float64("current_stock", stock),
		slog.Float64("threshold", threshold),
	)
	return nil
}

// hasQualifyingActivity gates evaluation to pairs with positive usage in
// the recent activity window or outstanding warehouse reservations.
func (s *Service) hasQualifyingActivity(ctx context.Context, materialID, projectID uuid.UUID) (bool, error) {
	since := s.now().AddDate(0, 0, -s.cfg.ActivityWindowDays)

	recent, err := s.usage.HasPositiveSince(ctx, materialID, projectID, since)
	if err != nil {
		return false, err
	}
	if recent {
		return true, nil
	}

	rec, err := s.inventory.GetByMaterial(ctx, materialID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return rec.ReservedStock > 0, nil
}

// classifyPriority maps the stock condition to a priority per trigger
// source. The sweep escalates harder than the inline usage-log path; both
// schemes are kept as-is and told apart by the persisted trigger.
func classifyPriority(alertType domain.AlertType, trigger domain.AlertTrigger) domain.AlertPriority {
	stockout := alertType == domain.AlertTypeStockout

	if trigger == domain.AlertTriggerSweep {
		if stockout {
			return domain.AlertPriorityCritical
		}
		return domain.AlertPriorityHigh
	}

	if stockout {
		return domain.AlertPriorityHigh
	}
	return domain.AlertPriorityMedium
}

// GetAlert returns one alert by ID with its suggested quantity recomputed
// live, matching the listing behavior. Missing alerts return
// domain.ErrNotFound.
func (s *Service) GetAlert(ctx context.Context, alertID uuid.UUID) (*domain.ReorderAlert, error) {
	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("inventory.GetAlert: %w", err)
	}

	material, err := s.materials.GetByID(ctx, alert.MaterialID)
	if err != nil {
		s.log.WarnContext(ctx, "alert get: material lookup failed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)
		return alert, nil
	}
	if qty := s.suggestedOrderQty(ctx, material, alert.ProjectID); qty > 0 {
		alert.SuggestedQty = qty
	}
	return alert, nil
}

// Acknowledge marks an active alert as handled. Missing alerts return
// domain.ErrNotFound; acknowledging twice is a silent no-op.
func (s *Service) Acknowledge(ctx context.Context, alertID, byUser uuid.UUID) error {
	if alertID == uuid.Nil || byUser == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "alert_id", Message: "required"},
		}}
	}

	if err := s.alerts.Acknowledge(ctx, alertID, byUser, s.now()); err != nil {
		return fmt.Errorf("inventory.Acknowledge: %w", err)
	}

	s.log.InfoContext(ctx, "alert acknowledged",
		slog.String("alert_id", alertID.String()),
		slog.String("by", byUser.String()),
	)
	return nil
}

// ListActiveAlerts returns active alerts ordered by priority then recency.
// Suggested quantities are recomputed live from the current ledger rather
// than served from the stored snapshot.
func (s *Service) ListActiveAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error) {
	alerts, err := s.alerts.ListActive(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListActiveAlerts: %w", err)
	}

	materials := make(map[uuid.UUID]*domain.Material, len(alerts))
	for i := range alerts {
		a := &alerts[i]

		material, ok := materials[a.MaterialID]
		if !ok {
			material, err = s.materials.GetByID(ctx, a.MaterialID)
			if err != nil {
				// Keep the stored snapshot when the live recompute is not
				// possible.
				s.log.WarnContext(ctx, "alert list: material lookup failed",
					slog.String("alert_id", a.ID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			materials[a.MaterialID] = material
		}

		if qty := s.suggestedOrderQty(ctx, material, a.ProjectID); qty > 0 {
			a.SuggestedQty = qty
		}
	}

	return alerts, nil
}
