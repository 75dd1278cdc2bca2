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
	"github.com/powerline/gridstock/internal/service/inventory"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	LogUsage(ctx context.Context, input inventory.LogUsageInput) (*inventory.UsageResult, error)
	LogDelivery(ctx context.Context, input inventory.LogDeliveryInput) (*inventory.DeliveryResult, error)
	ProjectStock(ctx context.Context, materialID, projectID uuid.UUID) float64
	ReservedForPair(ctx context.Context, materialID, projectID uuid.UUID) float64
}

// warehouseStore lists warehouse-level stock records.
type warehouseStore interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
}

// InventoryHandler serves stock-ledger REST endpoints.
type InventoryHandler struct {
	svc       inventoryService
	warehouse warehouseStore
	log       *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, warehouse warehouseStore, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		svc:       svc,
		warehouse: warehouse,
		log:       logger.With("handler", "inventory"),
	}
}

type logUsageRequest struct {
	ProjectID  string  `json:"projectId"`
	MaterialID string  `json:"materialId"`
	Quantity   float64 `json:"quantity"`
	Notes      *string `json:"notes"`
}

type logDeliveryRequest struct {
	MaterialID string  `json:"materialId"`
	ProjectID  *string `json:"projectId"`
	SupplierID *string `json:"supplierId"`
	Quantity   float64 `json:"quantity"`
	UnitCost   *string `json:"unitCost"`
	PORef      *string `json:"poRef"`
	InvoiceRef *string `json:"invoiceRef"`
	Notes      *string `json:"notes"`
}

type usageEntryResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	MaterialID string    `json:"materialId"`
	Quantity   float64   `json:"quantity"`
	LoggedBy   string    `json:"loggedBy"`
	Notes      *string   `json:"notes,omitempty"`
	LoggedAt   time.Time `json:"loggedAt"`
	TotalCost  string    `json:"totalCost"`
}

type deliveryEntryResponse struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"materialId"`
	ProjectID  *string   `json:"projectId,omitempty"`
	SupplierID *string   `json:"supplierId,omitempty"`
	Quantity   float64   `json:"quantity"`
	UnitCost   string    `json:"unitCost"`
	ReceivedBy string    `json:"receivedBy"`
	PORef      *string   `json:"poRef,omitempty"`
	InvoiceRef *string   `json:"invoiceRef,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
	TotalCost  string    `json:"totalCost"`
}

type warehouseRecordResponse struct {
	MaterialID    string    `json:"materialId"`
	CurrentStock  float64   `json:"currentStock"`
	ReservedStock float64   `json:"reservedStock"`
	ReorderPoint  float64   `json:"reorderPoint"`
	MaxStock      *float64  `json:"maxStock,omitempty"`
	Location      *string   `json:"location,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LogUsage handles POST /inventory/usage.
func (h *InventoryHandler) LogUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req logUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid projectId")
		return
	}
	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid materialId")
		return
	}

	result, err := h.svc.LogUsage(r.Context(), inventory.LogUsageInput{
		ProjectID:  projectID,
		MaterialID: materialID,
		Quantity:   req.Quantity,
		LoggedBy:   userID,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUsageResponse(result))
}

// LogDelivery handles POST /inventory/deliveries.
func (h *InventoryHandler) LogDelivery(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req logDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid materialId")
		return
	}
	projectID, ok := optionalUUID(w, req.ProjectID, "projectId")
	if !ok {
		return
	}
	supplierID, ok := optionalUUID(w, req.SupplierID, "supplierId")
	if !ok {
		return
	}

	var unitCost *decimal.Decimal
	if req.UnitCost != nil {
		c, err := decimal.NewFromString(*req.UnitCost)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid unitCost")
			return
		}
		unitCost = &c
	}

	result, err := h.svc.LogDelivery(r.Context(), inventory.LogDeliveryInput{
		MaterialID: materialID,
		ProjectID:  projectID,
		SupplierID: supplierID,
		Quantity:   req.Quantity,
		UnitCost:   unitCost,
		ReceivedBy: userID,
		PORef:      req.PORef,
		InvoiceRef: req.InvoiceRef,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeliveryResponse(result))
}

// Warehouse handles GET /inventory/warehouse.
func (h *InventoryHandler) Warehouse(w http.ResponseWriter, r *http.Request) {
	records, err := h.warehouse.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]warehouseRecordResponse, 0, len(records))
	for i := range records {
		rec := &records[i]
		out = append(out, warehouseRecordResponse{
			MaterialID:    rec.MaterialID.String(),
			CurrentStock:  rec.CurrentStock,
			ReservedStock: rec.ReservedStock,
			ReorderPoint:  rec.ReorderPoint,
			MaxStock:      rec.MaxStock,
			Location:      rec.Location,
			UpdatedAt:     rec.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": out})
}

// PairStock handles GET /inventory/stock/{materialId}/{projectId}.
func (h *InventoryHandler) PairStock(w http.ResponseWriter, r *http.Request) {
	materialID, ok := pathUUID(w, r, "materialId")
	if !ok {
		return
	}
	projectID, ok := pathUUID(w, r, "projectId")
	if !ok {
		return
	}

	stock := h.svc.ProjectStock(r.Context(), materialID, projectID)
	reserved := h.svc.ReservedForPair(r.Context(), materialID, projectID)
	writeJSON(w, http.StatusOK, map[string]any{
		"materialId": materialID.String(),
		"projectId":  projectID.String(),
		"stock":      stock,
		"reserved":   reserved,
	})
}

func toUsageResponse(result *inventory.UsageResult) usageEntryResponse {
	e := result.Entry
	return usageEntryResponse{
		ID:         e.ID.String(),
		ProjectID:  e.ProjectID.String(),
		MaterialID: e.MaterialID.String(),
		Quantity:   e.Quantity,
		LoggedBy:   e.LoggedBy.String(),
		Notes:      e.Notes,
		LoggedAt:   e.LoggedAt,
		TotalCost:  result.TotalCost.String(),
	}
}

func toDeliveryResponse(result *inventory.DeliveryResult) deliveryEntryResponse {
	e := result.Entry
	resp := deliveryEntryResponse{
		ID:         e.ID.String(),
		MaterialID: e.MaterialID.String(),
		Quantity:   e.Quantity,
		UnitCost:   e.UnitCost.String(),
		ReceivedBy: e.ReceivedBy.String(),
		PORef:      e.PORef,
		InvoiceRef: e.InvoiceRef,
		Notes:      e.Notes,
		ReceivedAt: e.ReceivedAt,
		TotalCost:  result.TotalCost.String(),
	}
	if e.ProjectID != nil {
		s := e.ProjectID.String()
		resp.ProjectID = &s
	}
	if e.SupplierID != nil {
		s := e.SupplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

// optionalUUID parses an optional UUID request field, writing a 400 on a
// malformed value. A nil input stays nil.
func optionalUUID(w http.ResponseWriter, s *string, name string) (*uuid.UUID, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}
