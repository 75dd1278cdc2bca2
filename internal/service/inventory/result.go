package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
)

// UsageResult is returned by LogUsage.
type UsageResult struct {
	Entry     *domain.UsageEntry
	TotalCost decimal.Decimal
}

// DeliveryResult is returned by LogDelivery.
type DeliveryResult struct {
	Entry     *domain.DeliveryEntry
	TotalCost decimal.Decimal
}

