package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/internal/transport/middleware"
)

// materialStore defines the material reference-data interface needed by
// ReferenceHandler. Thin CRUD with no business rules, so the handler talks
// to the store directly.
type materialStore interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
	List(ctx context.Context) ([]domain.Material, error)
	UpdateUnitCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error
}

// supplierStore defines the supplier reference-data interface needed by
// ReferenceHandler.
type supplierStore interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
}

// ReferenceHandler serves material and supplier reference-data endpoints.
type ReferenceHandler struct {
	materials materialStore
	suppliers supplierStore
	log       *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(materials materialStore, suppliers supplierStore, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		materials: materials,
		suppliers: suppliers,
		log:       logger.With("handler", "reference"),
	}
}

type createMaterialRequest struct {
	Name              string  `json:"name"`
	Kind              string  `json:"kind"`
	Category          string  `json:"category"`
	Unit              string  `json:"unit"`
	UnitCost          string  `json:"unitCost"`
	PrimarySupplierID *string `json:"primarySupplierId"`
}

type updateCostRequest struct {
	UnitCost string `json:"unitCost"`
}

type createSupplierRequest struct {
	Name         string  `json:"name"`
	ContactEmail *string `json:"contactEmail"`
	LeadTimeDays int     `json:"leadTimeDays"`
}

type materialResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Kind              string    `json:"kind"`
	Category          string    `json:"category"`
	Unit              string    `json:"unit"`
	UnitCost          string    `json:"unitCost"`
	PrimarySupplierID *string   `json:"primarySupplierId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type supplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	LeadTimeDays int       `json:"leadTimeDays"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListMaterials handles GET /materials.
func (h *ReferenceHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.materials.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]materialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, toMaterialResponse(&materials[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"materials": out})
}

// CreateMaterial handles POST /materials. Admin only.
func (h *ReferenceHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := domain.MaterialKind(req.Kind)
	if !kind.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid kind")
		return
	}
	cost, err := decimal.NewFromString(req.UnitCost)
	if err != nil || cost.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid unitCost")
		return
	}
	supplierID, ok := optionalUUID(w, req.PrimarySupplierID, "primarySupplierId")
	if !ok {
		return
	}

	created, err := h.materials.Create(r.Context(), &domain.Material{
		ID:                uuid.New(),
		Name:              req.Name,
		Kind:              kind,
		Category:          req.Category,
		Unit:              req.Unit,
		UnitCost:          cost,
		PrimarySupplierID: supplierID,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(created))
}

// UpdateMaterialCost handles PUT /materials/{id}/cost. Admin only.
func (h *ReferenceHandler) UpdateMaterialCost(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cost, err := decimal.NewFromString(req.UnitCost)
	if err != nil || cost.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid unitCost")
		return
	}

	if err := h.materials.UpdateUnitCost(r.Context(), id, cost); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListSuppliers handles GET /suppliers.
func (h *ReferenceHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]supplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, toSupplierResponse(&suppliers[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"suppliers": out})
}

// CreateSupplier handles POST /suppliers. Admin only.
func (h *ReferenceHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.LeadTimeDays < 0 {
		writeError(w, http.StatusBadRequest, "name required and leadTimeDays must not be negative")
		return
	}

	created, err := h.suppliers.Create(r.Context(), &domain.Supplier{
		ID:           uuid.New(),
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		LeadTimeDays: req.LeadTimeDays,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSupplierResponse(created))
}

func toMaterialResponse(m *domain.Material) materialResponse {
	resp := materialResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Kind:      m.Kind.String(),
		Category:  m.Category,
		Unit:      m.Unit,
		UnitCost:  m.UnitCost.String(),
		CreatedAt: m.CreatedAt,
	}
	if m.PrimarySupplierID != nil {
		s := m.PrimarySupplierID.String()
		resp.PrimarySupplierID = &s
	}
	return resp
}

func toSupplierResponse(s *domain.Supplier) supplierResponse {
	return supplierResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		LeadTimeDays: s.LeadTimeDays,
		CreatedAt:    s.CreatedAt,
	}
}
