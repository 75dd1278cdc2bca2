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
	"github.com/powerline/gridstock/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*project.Details, error)
	List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*project.Details, error)
	Approve(ctx context.Context, id uuid.UUID, notes *string) error
	Reject(ctx context.Context, id uuid.UUID, notes *string) error
	Finish(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetPhases(ctx context.Context, input project.PhasesInput) ([]domain.ProjectPhase, error)
	ListPhases(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectPhase, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Budget         string `json:"budget"`
	Location       string `json:"location"`
	TowerType      string `json:"towerType"`
	SubstationType string `json:"substationType"`
	GeoZone        string `json:"geo"`
	Taxes          string `json:"taxes"`
}

type decisionRequest struct {
	Notes *string `json:"notes"`
}

type projectResponse struct {
	ID             string     `json:"id"`
	Budget         string     `json:"budget"`
	Location       string     `json:"location"`
	TowerType      string     `json:"towerType"`
	SubstationType string     `json:"substationType"`
	GeoZone        string     `json:"geo"`
	Taxes          string     `json:"taxes"`
	CreatedBy      string     `json:"createdBy"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ApprovedBy     *string    `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	ApprovalNotes  *string    `json:"approvalNotes,omitempty"`
}

type projectDetailsResponse struct {
	projectResponse
	Forecasts map[string]float64 `json:"forecasts"`
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := decimal.NewFromString(req.Budget)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid budget")
		return
	}

	details, err := h.svc.Create(r.Context(), project.CreateInput{
		Budget:         budget,
		Location:       req.Location,
		TowerType:      req.TowerType,
		SubstationType: req.SubstationType,
		GeoZone:        req.GeoZone,
		Taxes:          req.Taxes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectDetailsResponse(details))
}

// List handles GET /projects. An optional ?status= narrows the result.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ProjectStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ProjectStatus(v)
		if !s.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		status = &s
	}

	projects, err := h.svc.List(r.Context(), status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": out})
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectDetailsResponse(details))
}

// Approve handles POST /projects/{id}/approve.
func (h *ProjectHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Reject handles POST /projects/{id}/reject.
func (h *ProjectHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

func (h *ProjectHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, *string) error) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req decisionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := fn(r.Context(), id, req.Notes); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Finish handles PUT /projects/{id}/finish.
func (h *ProjectHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Finish(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type phaseRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type setPhasesRequest struct {
	Phases []phaseRequest `json:"phases"`
}

type phaseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

const phaseDateLayout = "2006-01-02"

// SetPhases handles POST /projects/{id}/phases, replacing the project's
// whole timeline.
func (h *ProjectHandler) SetPhases(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req setPhasesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := project.PhasesInput{ProjectID: id}
	for _, p := range req.Phases {
		start, err := time.Parse(phaseDateLayout, p.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate, want YYYY-MM-DD")
			return
		}
		end, err := time.Parse(phaseDateLayout, p.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endDate, want YYYY-MM-DD")
			return
		}
		input.Phases = append(input.Phases, project.PhaseInput{
			Name:      p.Name,
			StartDate: start,
			EndDate:   end,
		})
	}

	phases, err := h.svc.SetPhases(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"phases": toPhaseResponses(phases)})
}

// Phases handles GET /projects/{id}/phases.
func (h *ProjectHandler) Phases(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	phases, err := h.svc.ListPhases(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"phases": toPhaseResponses(phases)})
}

func toPhaseResponses(phases []domain.ProjectPhase) []phaseResponse {
	out := make([]phaseResponse, 0, len(phases))
	for i := range phases {
		p := &phases[i]
		out = append(out, phaseResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			StartDate: p.StartDate.Format(phaseDateLayout),
			EndDate:   p.EndDate.Format(phaseDateLayout),
			Status:    p.Status,
		})
	}
	return out
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:             p.ID.String(),
		Budget:         p.Budget.String(),
		Location:       p.Location,
		TowerType:      p.TowerType,
		SubstationType: p.SubstationType,
		GeoZone:        p.GeoZone,
		Taxes:          p.Taxes,
		CreatedBy:      p.CreatedBy.String(),
		Status:         p.Status.String(),
		CreatedAt:      p.CreatedAt,
		ApprovedAt:     p.ApprovedAt,
		ApprovalNotes:  p.ApprovalNotes,
	}
	if p.ApprovedBy != nil {
		s := p.ApprovedBy.String()
		resp.ApprovedBy = &s
	}
	return resp
}

func toProjectDetailsResponse(d *project.Details) projectDetailsResponse {
	forecasts := make(map[string]float64, len(d.Forecasts))
	for _, f := range d.Forecasts {
		forecasts[f.Kind.String()] = f.Quantity
	}
	return projectDetailsResponse{
		projectResponse: toProjectResponse(&d.Project),
		Forecasts:       forecasts,
	}
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
