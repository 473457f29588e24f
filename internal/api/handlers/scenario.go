package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ScenarioHandler struct {
	svc *service.ScenarioService
}

func NewScenarioHandler(svc *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{svc: svc}
}

type createScenarioRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Alpha       float64 `json:"alpha"`
	Beta        float64 `json:"beta"`
	W1A         float64 `json:"w1a"`
	W2A         float64 `json:"w2a"`
}

func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc := &domain.Scenario{
		Name:        req.Name,
		Description: req.Description,
		Params:      domain.NewParams(req.Alpha, req.Beta, req.W1A, req.W2A),
	}

	if err := h.svc.Create(r.Context(), sc); err != nil {
		switch {
		case errors.Is(err, service.ErrScenarioConflict):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrScenarioName), errors.Is(err, domain.ErrInvalidParams):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create scenario")
		}
		return
	}

	writeJSON(w, http.StatusCreated, sc)
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scenarios, err := h.svc.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list scenarios")
		return
	}
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": scenarios})
}

func (h *ScenarioHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}
	sc, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeScenarioLookupError(w, err, "failed to get scenario")
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *ScenarioHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrScenarioName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeScenarioLookupError(w, err, "failed to get scenario")
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *ScenarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeScenarioLookupError(w, err, "failed to delete scenario")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScenarioHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}
	report, err := h.svc.Report(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrScenarioNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeModelError(w, err, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func scenarioID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scenario id")
		return uuid.Nil, false
	}
	return id, true
}

func writeScenarioLookupError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrScenarioNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}
