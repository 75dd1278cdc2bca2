package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/internal/service/project"
)

// forecastService defines the minimal interface needed by ForecastHandler.
type forecastService interface {
	CreateSchedule(ctx context.Context, input project.ScheduleInput) (*domain.ForecastSchedule, error)
	ForecastHistory(ctx context.Context, projectID uuid.UUID) ([]domain.ForecastRun, error)
	RunDueForecasts(ctx context.Context) (int, error)
}

// ForecastHandler serves periodic re-forecast REST endpoints.
type ForecastHandler struct {
	svc forecastService
	log *slog.Logger
}

// NewForecastHandler creates a ForecastHandler.
func NewForecastHandler(svc forecastService, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{svc: svc, log: logger.With("handler", "forecast")}
}

type createScheduleRequest struct {
	ProjectID string `json:"projectId"`
	Frequency string `json:"frequency"`
}

type scheduleResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Frequency string    `json:"frequency"`
	NextRun   time.Time `json:"nextRun"`
	CreatedAt time.Time `json:"createdAt"`
}

type forecastRunResponse struct {
	ID         string             `json:"id"`
	ProjectID  string             `json:"projectId"`
	Forecasts  map[string]float64 `json:"forecasts"`
	ForecastAt time.Time          `json:"forecastAt"`
}

// CreateSchedule handles POST /forecast/schedule. Frequency defaults to
// monthly when omitted.
func (h *ForecastHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid projectId")
		return
	}
	frequency := domain.ForecastFrequency(req.Frequency)
	if req.Frequency == "" {
		frequency = domain.ForecastFrequencyMonthly
	}

	created, err := h.svc.CreateSchedule(r.Context(), project.ScheduleInput{
		ProjectID: projectID,
		Frequency: frequency,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, scheduleResponse{
		ID:        created.ID.String(),
		ProjectID: created.ProjectID.String(),
		Frequency: created.Frequency.String(),
		NextRun:   created.NextRun,
		CreatedAt: created.CreatedAt,
	})
}

// History handles GET /forecast/history/{projectId}.
func (h *ForecastHandler) History(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "projectId")
	if !ok {
		return
	}

	runs, err := h.svc.ForecastHistory(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]forecastRunResponse, 0, len(runs))
	for i := range runs {
		run := &runs[i]
		forecasts := make(map[string]float64, len(run.Quantities))
		for kind, qty := range run.Quantities {
			forecasts[kind.String()] = qty
		}
		out = append(out, forecastRunResponse{
			ID:         run.ID.String(),
			ProjectID:  run.ProjectID.String(),
			Forecasts:  forecasts,
			ForecastAt: run.ForecastAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": out})
}

// RunDue handles POST /forecast/run, re-forecasting every due schedule.
func (h *ForecastHandler) RunDue(w http.ResponseWriter, r *http.Request) {
	processed, err := h.svc.RunDueForecasts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"processed": processed})
}
