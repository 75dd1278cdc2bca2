package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is reference data for a procurable material. Immutable after
// creation except for the master unit cost.
type Material struct {
	ID                uuid.UUID
	Name              string
	Kind              MaterialKind
	Category          string
	Unit              string
	UnitCost          decimal.Decimal
	PrimarySupplierID *uuid.UUID
	CreatedAt         time.Time
}

// Supplier is a material source with a procurement lead time.
type Supplier struct {
	ID           uuid.UUID
	Name         string
	ContactEmail *string
	LeadTimeDays int
	CreatedAt    time.Time
}

// defaultLeadDays maps a material kind to its procurement lead time in days.
// Values come from the transmission-material ordering defaults; conductor
// runs longer than the rest.
var defaultLeadDays = map[MaterialKind]int{
	MaterialKindSteel:        75,
	MaterialKindConductor:    90,
	MaterialKindTransformers: 75,
	MaterialKindEarthwire:    75,
	MaterialKindFoundation:   75,
	MaterialKindReactors:     75,
	MaterialKindTower:        75,
}

// LeadTimeDays resolves the default lead time for a material kind key
// (case-insensitive). Returns fallback for unrecognized kinds; callers
// deliberately differ on the fallback they pass, so it is a parameter here.
func LeadTimeDays(kind string, fallback int) int {
	if days, ok := defaultLeadDays[MaterialKind(strings.ToLower(strings.TrimSpace(kind)))]; ok {
		return days
	}
	return fallback
}
