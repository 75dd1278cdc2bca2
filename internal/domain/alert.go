package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReorderAlert is a replenishment notification for one (material, project)
// pair. At most one alert per pair may be active at a time; re-triggering
// overwrites the quantitative snapshot of the existing active row instead
// of inserting a duplicate.
type ReorderAlert struct {
	ID             uuid.UUID
	MaterialID     uuid.UUID
	ProjectID      uuid.UUID
	Type           AlertType
	CurrentStock   float64
	Threshold      float64
	SuggestedQty   float64
	Priority       AlertPriority
	Status         AlertStatus
	TriggeredBy    AlertTrigger
	CreatedAt      time.Time
	AcknowledgedBy *uuid.UUID
	AcknowledgedAt *time.Time
}

// IsActive reports whether the alert still awaits action.
func (a *ReorderAlert) IsActive() bool { return a.Status == AlertStatusActive }

// AlertFilter narrows active-alert listings. Nil fields match everything.
type AlertFilter struct {
	MaterialID *uuid.UUID
	ProjectID  *uuid.UUID
	Priority   *AlertPriority
}
