package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
)

// reservationNote tags ledger rows written automatically at project creation.
const reservationNote = "auto-reservation from forecast"

// LogUsage appends a consumption entry, conditionally updates the cached
// warehouse stock, and evaluates the pair for alerting inline. The alert
// evaluation is best-effort: its failure never fails the write.
func (s *Service) LogUsage(ctx context.Context, input LogUsageInput) (*UsageResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	material, err := s.materials.GetByID(ctx, input.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("inventory.LogUsage get material: %w", err)
	}
	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("inventory.LogUsage get project: %w", err)
	}

	var created *domain.UsageEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry := &domain.UsageEntry{
			ID:         uuid.New(),
			ProjectID:  input.ProjectID,
			MaterialID: input.MaterialID,
			Quantity:   input.Quantity,
			LoggedBy:   input.LoggedBy,
			Notes:      input.Notes,
			LoggedAt:   s.now(),
		}

		created, err = s.usage.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create usage entry: %w", err)
		}

		// The warehouse counter only moves once the material has ever been
		// delivered; an undelivered material never goes stock-negative.
		delivered, err := s.deliveries.ExistsForMaterial(txCtx, input.MaterialID)
		if err != nil {
			return fmt.Errorf("check deliveries: %w", err)
		}
		if delivered {
			if err := s.inventory.DeductStock(txCtx, input.MaterialID, input.Quantity, s.now()); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("deduct stock: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.LogUsage: %w", err)
	}

	s.log.InfoContext(ctx, "usage logged",
		slog.String("usage_id", created.ID.String()),
		slog.String("material_id", input.MaterialID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.Float64("quantity", input.Quantity),
	)

	// Inline trigger: evaluate the pair for alerting after the write.
	if err := s.EvaluatePair(ctx, input.MaterialID, input.ProjectID, domain.AlertTriggerUsageLog); err != nil {
		s.log.WarnContext(ctx, "inline alert evaluation failed",
			slog.String("material_id", input.MaterialID.String()),
			slog.String("project_id", input.ProjectID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &UsageResult{
		Entry:     created,
		TotalCost: material.UnitCost.Mul(decimal.NewFromFloat(input.Quantity)),
	}, nil
}

// LogDelivery appends a receipt, creates the warehouse projection row if
// absent, and increments cached stock. UnitCost falls back to the material's
// master cost when unspecified.
func (s *Service) LogDelivery(ctx context.Context, input LogDeliveryInput) (*DeliveryResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	material, err := s.materials.GetByID(ctx, input.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("inventory.LogDelivery get material: %w", err)
	}
	if input.ProjectID != nil {
		if _, err := s.projects.GetByID(ctx, *input.ProjectID); err != nil {
			return nil, fmt.Errorf("inventory.LogDelivery get project: %w", err)
		}
	}

	unitCost := material.UnitCost
	if input.UnitCost != nil {
		unitCost = *input.UnitCost
	}

	var created *domain.DeliveryEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry := &domain.DeliveryEntry{
			ID:         uuid.New(),
			MaterialID: input.MaterialID,
			ProjectID:  input.ProjectID,
			SupplierID: input.SupplierID,
			Quantity:   input.Quantity,
			UnitCost:   unitCost,
			ReceivedBy: input.ReceivedBy,
			PORef:      input.PORef,
			InvoiceRef: input.InvoiceRef,
			Notes:      input.Notes,
			ReceivedAt: s.now(),
		}

		created, err = s.deliveries.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if err := s.inventory.EnsureRecord(txCtx, input.MaterialID, s.now()); err != nil {
			return fmt.Errorf("ensure inventory record: %w", err)
		}
		if err := s.inventory.AddStock(txCtx, input.MaterialID, input.Quantity, s.now()); err != nil {
			return fmt.Errorf("add stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.LogDelivery: %w", err)
	}

	s.log.InfoContext(ctx, "delivery logged",
		slog.String("delivery_id", created.ID.String()),
		slog.String("material_id", input.MaterialID.String()),
		slog.Float64("quantity", input.Quantity),
	)

	return &DeliveryResult{
		Entry:     created,
		TotalCost: created.TotalCost(),
	}, nil
}

// ReserveForForecast earmarks forecast-predicted stock for a project by
// appending a negative usage entry and bumping the warehouse reserved
// counter. Called once per material kind at project creation; non-positive
// quantities are a no-op.
func (s *Service) ReserveForForecast(ctx context.Context, projectID, materialID uuid.UUID, quantity float64, byUser uuid.UUID) error {
	if quantity <= 0 {
		return nil
	}

	note := reservationNote
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry := &domain.UsageEntry{
			ID:         uuid.New(),
			ProjectID:  projectID,
			MaterialID: materialID,
			Quantity:   -quantity,
			LoggedBy:   byUser,
			Notes:      &note,
			LoggedAt:   s.now(),
		}
		if _, err := s.usage.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create reservation entry: %w", err)
		}

		if err := s.inventory.EnsureRecord(txCtx, materialID, s.now()); err != nil {
			return fmt.Errorf("ensure inventory record: %w", err)
		}
		if err := s.inventory.AddReserved(txCtx, materialID, quantity, s.now()); err != nil {
			return fmt.Errorf("add reserved: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("inventory.ReserveForForecast: %w", err)
	}

	s.log.InfoContext(ctx, "forecast reservation recorded",
		slog.String("material_id", materialID.String()),
		slog.String("project_id", projectID.String()),
		slog.Float64("quantity", quantity),
	)
	return nil
}
