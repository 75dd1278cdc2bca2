package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project is a transmission infrastructure project. Its attributes feed the
// forecast models; for inventory purposes it is primarily a partition key
// for the usage/delivery ledger.
type Project struct {
	ID             uuid.UUID
	Budget         decimal.Decimal
	Location       string
	TowerType      string
	SubstationType string
	GeoZone        string
	Taxes          string
	CreatedBy      uuid.UUID
	Status         ProjectStatus
	CreatedAt      time.Time
	ApprovedBy     *uuid.UUID
	ApprovedAt     *time.Time
	ApprovalNotes  *string
}

// ProjectFilter narrows project listings. Nil fields match everything.
type ProjectFilter struct {
	Status    *ProjectStatus
	Location  *string
	CreatedBy *uuid.UUID
}

// ProjectForecast is a model-predicted material quantity stored at project
// creation. Positive quantities are reserved against warehouse stock.
type ProjectForecast struct {
	ProjectID uuid.UUID
	Kind      MaterialKind
	Quantity  float64
}

// ProjectPhase is a named window on a project's construction timeline.
// Phases are replaced as a whole set; individual updates do not exist.
type ProjectPhase struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    string
	CreatedAt time.Time
}

// PhaseStatusPending is the status every freshly written phase starts in.
const PhaseStatusPending = "pending"

// ProjectAttributes is the feature payload sent to the forecast model
// service. Field names mirror the model service request contract.
type ProjectAttributes struct {
	Budget         string `json:"budget"`
	Location       string `json:"location"`
	TowerType      string `json:"towerType"`
	SubstationType string `json:"substationType"`
	GeoZone        string `json:"geo"`
	Taxes          string `json:"taxes"`
}

// Attributes returns the forecast feature payload for the project.
func (p *Project) Attributes() ProjectAttributes {
	return ProjectAttributes{
		Budget:         p.Budget.String(),
		Location:       p.Location,
		TowerType:      p.TowerType,
		SubstationType: p.SubstationType,
		GeoZone:        p.GeoZone,
		Taxes:          p.Taxes,
	}
}
