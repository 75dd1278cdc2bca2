package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// projectStock computes current available stock for one (material, project)
// pair straight from the ledger: delivered minus used. Reservations are
// negative usage rows, so they add back into the figure until real
// consumption lands. Fail-open: any query failure yields zero so the caller
// is never blocked.
func (s *Service) projectStock(ctx context.Context, materialID, projectID uuid.UUID) float64 {
	delivered, err := s.deliveries.SumByPair(ctx, materialID, projectID)
	if err != nil {
		s.log.WarnContext(ctx, "stock reconcile: delivery sum failed",
			slog.String("material_id", materialID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}

	used, err := s.usage.SumByPair(ctx, materialID, projectID)
	if err != nil {
		s.log.WarnContext(ctx, "stock reconcile: usage sum failed",
			slog.String("material_id", materialID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}

	return delivered - used
}

// ProjectStock exposes the per-pair ledger figure for read endpoints.
func (s *Service) ProjectStock(ctx context.Context, materialID, projectID uuid.UUID) float64 {
	return s.projectStock(ctx, materialID, projectID)
}

// ReservedForPair returns the outstanding forecast reservation for one
// (material, project) pair. Same fail-open contract as projectStock.
func (s *Service) ReservedForPair(ctx context.Context, materialID, projectID uuid.UUID) float64 {
	reserved, err := s.usage.SumReservedByPair(ctx, materialID, projectID)
	if err != nil {
		s.log.WarnContext(ctx, "stock reconcile: reserved sum failed",
			slog.String("material_id", materialID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}
	return reserved
}
