package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// alertService defines the minimal interface needed by AlertHandler.
type alertService interface {
	ListActiveAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error)
	GetAlert(ctx context.Context, alertID uuid.UUID) (*domain.ReorderAlert, error)
	Acknowledge(ctx context.Context, alertID, byUser uuid.UUID) error
}

// AlertHandler serves reorder-alert REST endpoints.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

type alertResponse struct {
	ID             string     `json:"id"`
	MaterialID     string     `json:"materialId"`
	ProjectID      string     `json:"projectId"`
	Type           string     `json:"type"`
	CurrentStock   float64    `json:"currentStock"`
	Threshold      float64    `json:"threshold"`
	SuggestedQty   float64    `json:"suggestedQty"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	TriggeredBy    string     `json:"triggeredBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	AcknowledgedBy *string    `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}

// List handles GET /alerts. Optional query params material_id, project_id,
// and priority narrow the listing.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.AlertFilter

	if v := r.URL.Query().Get("material_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid material_id")
			return
		}
		f.MaterialID = &id
	}
	if v := r.URL.Query().Get("project_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project_id")
			return
		}
		f.ProjectID = &id
	}
	if v := r.URL.Query().Get("priority"); v != "" {
		p := domain.AlertPriority(v)
		if !p.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid priority")
			return
		}
		f.Priority = &p
	}

	alerts, err := h.svc.ListActiveAlerts(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]alertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertResponse(&alerts[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": out})
}

// Get handles GET /alerts/{id}.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	alert, err := h.svc.GetAlert(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponse(alert))
}

// Acknowledge handles POST /alerts/{id}/acknowledge.
func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Acknowledge(r.Context(), id, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "acknowledged"})
}

func toAlertResponse(a *domain.ReorderAlert) alertResponse {
	resp := alertResponse{
		ID:             a.ID.String(),
		MaterialID:     a.MaterialID.String(),
		ProjectID:      a.ProjectID.String(),
		Type:           a.Type.String(),
		CurrentStock:   a.CurrentStock,
		Threshold:      a.Threshold,
		SuggestedQty:   a.SuggestedQty,
		Priority:       a.Priority.String(),
		Status:         a.Status.String(),
		TriggeredBy:    a.TriggeredBy.String(),
		CreatedAt:      a.CreatedAt,
		AcknowledgedAt: a.AcknowledgedAt,
	}
	if a.AcknowledgedBy != nil {
		s := a.AcknowledgedBy.String()
		resp.AcknowledgedBy = &s
	}
	return resp
}
