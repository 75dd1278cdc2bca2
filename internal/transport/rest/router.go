package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Project   *ProjectHandler
	Forecast  *ForecastHandler
	Inventory *InventoryHandler
	Alert     *AlertHandler
	Ordering  *OrderingHandler
	Reference *ReferenceHandler
	Health    *HealthHandler
}

// NewRouter mounts all REST routes on a fresh mux. Authentication handling
// lives in the middleware chain; handlers and services enforce who may do
// what.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("POST /projects", h.Project.Create)
	mux.HandleFunc("GET /projects", h.Project.List)
	mux.HandleFunc("GET /projects/{id}", h.Project.Get)
	mux.HandleFunc("POST /projects/{id}/approve", h.Project.Approve)
	mux.HandleFunc("POST /projects/{id}/reject", h.Project.Reject)
	mux.HandleFunc("PUT /projects/{id}/finish", h.Project.Finish)
	mux.HandleFunc("DELETE /projects/{id}", h.Project.Delete)
	mux.HandleFunc("POST /projects/{id}/phases", h.Project.SetPhases)
	mux.HandleFunc("GET /projects/{id}/phases", h.Project.Phases)

	mux.HandleFunc("POST /forecast/schedule", h.Forecast.CreateSchedule)
	mux.HandleFunc("GET /forecast/history/{projectId}", h.Forecast.History)
	mux.HandleFunc("POST /forecast/run", h.Forecast.RunDue)

	mux.HandleFunc("POST /inventory/usage", h.Inventory.LogUsage)
	mux.HandleFunc("POST /inventory/deliveries", h.Inventory.LogDelivery)
	mux.HandleFunc("GET /inventory/warehouse", h.Inventory.Warehouse)
	mux.HandleFunc("GET /inventory/stock/{materialId}/{projectId}", h.Inventory.PairStock)

	mux.HandleFunc("GET /alerts", h.Alert.List)
	mux.HandleFunc("GET /alerts/{id}", h.Alert.Get)
	mux.HandleFunc("POST /alerts/{id}/acknowledge", h.Alert.Acknowledge)

	mux.HandleFunc("POST /ordering/schedule", h.Ordering.Schedule)

	mux.HandleFunc("GET /materials", h.Reference.ListMaterials)
	mux.HandleFunc("POST /materials", h.Reference.CreateMaterial)
	mux.HandleFunc("PUT /materials/{id}/cost", h.Reference.UpdateMaterialCost)
	mux.HandleFunc("GET /suppliers", h.Reference.ListSuppliers)
	mux.HandleFunc("POST /suppliers", h.Reference.CreateSupplier)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
