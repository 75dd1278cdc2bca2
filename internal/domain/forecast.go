package domain

import (
	"time"

	"github.com/google/uuid"
)

// ForecastFrequency controls how often a project is re-forecast.
type ForecastFrequency string

const (
	ForecastFrequencyWeekly    ForecastFrequency = "weekly"
	ForecastFrequencyMonthly   ForecastFrequency = "monthly"
	ForecastFrequencyQuarterly ForecastFrequency = "quarterly"
)

func (f ForecastFrequency) String() string { return string(f) }

func (f ForecastFrequency) IsValid() bool {
	switch f {
	case ForecastFrequencyWeekly, ForecastFrequencyMonthly, ForecastFrequencyQuarterly:
		return true
	}
	return false
}

// NextFrom returns the next run time one full interval after now: 7 days
// for weekly, 30 for monthly, 90 for quarterly.
func (f ForecastFrequency) NextFrom(now time.Time) time.Time {
	switch f {
	case ForecastFrequencyWeekly:
		return now.AddDate(0, 0, 7)
	case ForecastFrequencyQuarterly:
		return now.AddDate(0, 0, 90)
	default:
		return now.AddDate(0, 0, 30)
	}
}

// ForecastSchedule drives periodic re-forecasting of one project. A project
// carries at most one active schedule at a time.
type ForecastSchedule struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Frequency ForecastFrequency
	NextRun   time.Time
	Active    bool
	CreatedAt time.Time
}

// ForecastRun is one completed re-forecast of a project: the per-kind
// predicted quantities captured at a point in time.
type ForecastRun struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Quantities map[MaterialKind]float64
	ForecastAt time.Time
}
