package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
)

// paramsFromQuery applies optional alpha, beta, w1a and w2a query overrides
// to defaults. B's endowment is re-derived from A's.
func paramsFromQuery(r *http.Request, defaults domain.Params) (domain.Params, error) {
	q := r.URL.Query()
	alpha, beta, w1a, w2a := defaults.Alpha, defaults.Beta, defaults.W1A, defaults.W2A
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"alpha", &alpha},
		{"beta", &beta},
		{"w1a", &w1a},
		{"w2a", &w2a},
	} {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := parseFinite(raw)
		if err != nil {
			return domain.Params{}, fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidParams, f.key)
		}
		*f.dst = v
	}
	return domain.NewParams(alpha, beta, w1a, w2a), nil
}

// floatQuery parses a required float query parameter, or returns def when
// the parameter is absent and def is non-nil.
func floatQuery(r *http.Request, key string, def *float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		if def != nil {
			return *def, nil
		}
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := parseFinite(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a finite number", key)
	}
	return v, nil
}

// parseFinite is strconv.ParseFloat without Inf and NaN.
func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", raw)
	}
	return v, nil
}

func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
