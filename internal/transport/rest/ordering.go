package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/powerline/gridstock/internal/service/inventory"
)

// OrderingHandler serves the ordering-schedule endpoint. The computation
// is pure date math, so the handler calls it directly.
type OrderingHandler struct {
	log *slog.Logger
}

// NewOrderingHandler creates an OrderingHandler.
func NewOrderingHandler(logger *slog.Logger) *OrderingHandler {
	return &OrderingHandler{log: logger.With("handler", "ordering")}
}

type scheduleRequest struct {
	NeedByDate        *string           `json:"needByDate"`
	Materials         []string          `json:"materials"`
	NeedByDates       map[string]string `json:"needByDates"`
	LeadTimeOverrides map[string]int    `json:"leadTimeOverrides"`
}

type scheduleItemResponse struct {
	Material     string `json:"material"`
	NeedByDate   string `json:"needByDate"`
	LeadTimeDays int    `json:"leadTimeDays"`
	OrderDate    string `json:"orderDate"`
}

const scheduleDateLayout = "2006-01-02"

// Schedule handles POST /ordering/schedule.
func (h *OrderingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := inventory.ScheduleInput{
		Materials:         req.Materials,
		LeadTimeOverrides: req.LeadTimeOverrides,
	}

	if req.NeedByDate != nil {
		d, err := time.Parse(scheduleDateLayout, *req.NeedByDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid needByDate")
			return
		}
		input.NeedByDate = &d
	}
	if len(req.NeedByDates) > 0 {
		input.NeedByDates = make(map[string]time.Time, len(req.NeedByDates))
		for material, raw := range req.NeedByDates {
			d, err := time.Parse(scheduleDateLayout, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid date for "+material)
				return
			}
			input.NeedByDates[material] = d
		}
	}

	items, err := inventory.OrderingSchedule(input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]scheduleItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, scheduleItemResponse{
			Material:     item.Material,
			NeedByDate:   item.NeedByDate.Format(scheduleDateLayout),
			LeadTimeDays: item.LeadTimeDays,
			OrderDate:    item.OrderDate.Format(scheduleDateLayout),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedule": out})
}
