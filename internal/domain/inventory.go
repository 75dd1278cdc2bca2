package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UsageEntry is one row of the append-only consumption ledger.
// Positive quantity is actual consumption. Negative quantity is a
// forecast-driven reservation: stock earmarked at project creation that
// nets out of available stock only once real consumption is logged.
// Entries are never updated or deleted except by project cascade delete.
type UsageEntry struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	MaterialID uuid.UUID
	Quantity   float64
	LoggedBy   uuid.UUID
	Notes      *string
	LoggedAt   time.Time
}

// IsReservation reports whether the entry earmarks stock rather than
// recording consumption.
func (e *UsageEntry) IsReservation() bool { return e.Quantity < 0 }

// DeliveryEntry is one row of the append-only receipts ledger. A nil
// ProjectID means warehouse-level stocking, which is excluded from
// per-project stock math.
type DeliveryEntry struct {
	ID         uuid.UUID
	MaterialID uuid.UUID
	ProjectID  *uuid.UUID
	SupplierID *uuid.UUID
	Quantity   float64
	UnitCost   decimal.Decimal
	ReceivedBy uuid.UUID
	PORef      *string
	InvoiceRef *string
	Notes      *string
	ReceivedAt time.Time
}

// TotalCost is quantity times unit cost.
func (e *DeliveryEntry) TotalCost() decimal.Decimal {
	return e.UnitCost.Mul(decimal.NewFromFloat(e.Quantity))
}

// DeliveryFilter narrows delivery listings. Nil fields match everything.
type DeliveryFilter struct {
	MaterialID *uuid.UUID
	ProjectID  *uuid.UUID
	SupplierID *uuid.UUID
}

// InventoryRecord is the warehouse-level aggregate for one material.
// CurrentStock is a cached projection of the delivery/usage ledger, never
// the source of truth for alerting decisions; per-project figures are
// always recomputed from the ledger.
type InventoryRecord struct {
	MaterialID    uuid.UUID
	CurrentStock  float64
	ReservedStock float64
	ReorderPoint  float64
	MaxStock      *float64
	Location      *string
	UpdatedAt     time.Time
}

// DayUsage is the summed positive consumption for one calendar day.
type DayUsage struct {
	Day   time.Time
	Total float64
}

// UsageStats aggregates positive usage entries for suggested-order sizing.
type UsageStats struct {
	TotalQuantity float64
	EntryCount    int
}

// AveragePerEntry is total quantity over entry count: the per-logged-event
// average, not the per-calendar-day average. Zero when no entries qualify.
func (s UsageStats) AveragePerEntry() float64 {
	if s.EntryCount == 0 {
		return 0
	}
	return s.TotalQuantity / float64(s.EntryCount)
}

// LedgerPair identifies one (material, project) partition of the ledger.
type LedgerPair struct {
	MaterialID uuid.UUID
	ProjectID  uuid.UUID
}
