package project

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
)

// CreateInput carries the attributes of a new project. Every field feeds
// the forecast models, so all of them are required.
type CreateInput struct {
	Budget         decimal.Decimal
	Location       string
	TowerType      string
	SubstationType string
	GeoZone        string
	Taxes          string
}

func (i *CreateInput) normalize() {
	i.Location = strings.TrimSpace(i.Location)
	i.TowerType = strings.TrimSpace(i.TowerType)
	i.SubstationType = strings.TrimSpace(i.SubstationType)
	i.GeoZone = strings.TrimSpace(i.GeoZone)
	i.Taxes = strings.TrimSpace(i.Taxes)
}

// Validate checks the input and returns a ValidationError listing every
// problem found.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Budget.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "budget", Message: "must be positive"})
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"location", i.Location},
		{"tower_type", i.TowerType},
		{"substation_type", i.SubstationType},
		{"geo", i.GeoZone},
		{"taxes", i.Taxes},
	} {
		if f.value == "" {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
