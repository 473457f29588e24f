package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/service"
)

const (
	maxParetoGrid      = 500
	maxCandidatePrices = 10000
)

type EconomyHandler struct {
	svc *service.EconomyService
}

func NewEconomyHandler(svc *service.EconomyService) *EconomyHandler {
	return &EconomyHandler{svc: svc}
}

// model builds the model for the request's parameter overrides, writing the
// error response itself when that fails.
func (h *EconomyHandler) model(w http.ResponseWriter, r *http.Request) (*service.Model, bool) {
	par, err := paramsFromQuery(r, h.svc.Defaults())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	m, err := h.svc.Model(par)
	if err != nil {
		writeModelError(w, err, "failed to build model")
		return nil, false
	}
	return m, true
}

// prices reads p1 (required) and p2 (defaults to the numeraire price).
func (h *EconomyHandler) prices(w http.ResponseWriter, r *http.Request, m *service.Model) (float64, float64, bool) {
	p1, err := floatQuery(r, "p1", nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	numeraire := service.DefaultNumeraire
	p2, err := floatQuery(r, "p2", &numeraire)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	if err := m.ValidatePrices(p1, p2); err != nil {
		writeModelError(w, err, "invalid prices")
		return 0, 0, false
	}
	return p1, p2, true
}

type utilityResponse struct {
	UtilityA float64 `json:"utility_a"`
	UtilityB float64 `json:"utility_b"`
}

func (h *EconomyHandler) Utility(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	par := m.Params()
	var vals [4]float64
	for i, f := range []struct {
		key string
		def float64
	}{
		{"x1a", par.W1A},
		{"x2a", par.W2A},
		{"x1b", par.W1B},
		{"x2b", par.W2B},
	} {
		def := f.def
		v, err := floatQuery(r, f.key, &def)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if v < 0 {
			writeError(w, http.StatusBadRequest, f.key+" must be non-negative")
			return
		}
		vals[i] = v
	}

	writeJSON(w, http.StatusOK, utilityResponse{
		UtilityA: m.UtilityA(vals[0], vals[1]),
		UtilityB: m.UtilityB(vals[2], vals[3]),
	})
}

type demandResponse struct {
	P1      float64           `json:"p1"`
	P2      float64           `json:"p2"`
	DemandA domain.Allocation `json:"demand_a"`
	DemandB domain.Allocation `json:"demand_b"`
}

func (h *EconomyHandler) Demand(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	p1, p2, ok := h.prices(w, r, m)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, demandResponse{
		P1:      p1,
		P2:      p2,
		DemandA: m.DemandA(p1, p2),
		DemandB: m.DemandB(p1, p2),
	})
}

type clearingResponse struct {
	P1 float64 `json:"p1"`
	P2 float64 `json:"p2"`
	domain.ExcessDemand
}

func (h *EconomyHandler) Clearing(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	p1, p2, ok := h.prices(w, r, m)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, clearingResponse{P1: p1, P2: p2, ExcessDemand: m.CheckMarketClearing(p1, p2)})
}

func (h *EconomyHandler) Errors(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	errs, err := m.ComputeErrors(h.svc.Sweep())
	if err != nil {
		writeModelError(w, err, "failed to compute errors")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": errs})
}

type optimalRequest struct {
	P1Values []float64 `json:"p1_values"`
}

func (h *EconomyHandler) Optimal(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	var req optimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.P1Values) > maxCandidatePrices {
		writeError(w, http.StatusBadRequest, "too many candidate prices")
		return
	}
	for _, p := range req.P1Values {
		if err := m.ValidatePrices(p, service.DefaultNumeraire); err != nil {
			writeModelError(w, err, "invalid prices")
			return
		}
	}

	opt, err := m.FindOptimalP1(req.P1Values)
	if err != nil {
		writeModelError(w, err, "failed to search prices")
		return
	}
	writeJSON(w, http.StatusOK, opt)
}

type sseRequest struct {
	P1         float64   `json:"p1"`
	P1Values   []float64 `json:"p1_values"`
	Eps1Values []float64 `json:"eps1_values"`
	Eps2Values []float64 `json:"eps2_values"`
}

// SumSquaredErrors scores a price against a supplied grid. Without a grid
// in the body, the model's own sweep is used.
func (h *EconomyHandler) SumSquaredErrors(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	var req sseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.P1Values) == 0 {
		errs, err := m.ComputeErrors(h.svc.Sweep())
		if err != nil {
			writeModelError(w, err, "failed to compute errors")
			return
		}
		req.P1Values, req.Eps1Values, req.Eps2Values = service.SplitErrors(errs)
	}

	sse, err := service.SumSquaredErrors(req.P1, req.P1Values, req.Eps1Values, req.Eps2Values)
	if err != nil {
		writeModelError(w, err, "failed to score price")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"p1": req.P1, "sse": sse})
}

func (h *EconomyHandler) Equilibrium(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	eq, err := m.Equilibrium(h.svc.Sweep())
	if err != nil {
		writeModelError(w, err, "failed to compute equilibrium")
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EconomyHandler) Pareto(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	n, err := intQuery(r, "n", h.svc.ParetoGrid())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if n > maxParetoGrid {
		writeError(w, http.StatusBadRequest, "n is too large")
		return
	}
	set, err := m.ParetoImprovingSet(n)
	if err != nil {
		writeModelError(w, err, "failed to compute pareto set")
		return
	}
	curve, err := m.ContractCurve(n)
	if err != nil {
		writeModelError(w, err, "failed to compute contract curve")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"n":              n,
		"allocations":    set,
		"contract_curve": curve,
	})
}

func (h *EconomyHandler) EdgeworthFigure(w http.ResponseWriter, r *http.Request) {
	par, err := paramsFromQuery(r, h.svc.Defaults())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fig, err := h.svc.EdgeworthFigure(par)
	if err != nil {
		writeModelError(w, err, "failed to build figure")
		return
	}
	writeJSON(w, http.StatusOK, fig)
}

type comparisonRequest struct {
	Points []domain.LabeledPoint `json:"points"`
}

func (h *EconomyHandler) ComparisonFigure(w http.ResponseWriter, r *http.Request) {
	var req comparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Points) == 0 {
		writeError(w, http.StatusBadRequest, "points are required")
		return
	}
	writeJSON(w, http.StatusOK, service.ComparisonFigure(req.Points))
}

func (h *EconomyHandler) Report(w http.ResponseWriter, r *http.Request) {
	par, err := paramsFromQuery(r, h.svc.Defaults())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.svc.Report(r.Context(), par)
	if err != nil {
		writeModelError(w, err, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
