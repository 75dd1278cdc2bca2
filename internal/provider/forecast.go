// Package provider defines the contracts returned by external data
// providers, decoupled from any concrete adapter.
package provider

import "github.com/powerline/gridstock/internal/domain"

// ForecastResult carries per-kind predicted quantities for a project.
// Kinds whose model failed server-side are listed in Failed and carry a
// zero quantity; a partial result is still usable.
type ForecastResult struct {
	Quantities map[domain.MaterialKind]float64
	Failed     []domain.MaterialKind
}

// Quantity returns the predicted quantity for a kind, zero when absent.
func (r *ForecastResult) Quantity(kind domain.MaterialKind) float64 {
	return r.Quantities[kind]
}
