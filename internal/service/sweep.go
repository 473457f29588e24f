package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultSweepPoints = 75
	DefaultSweepMin    = 0.5
	DefaultSweepMax    = 2.5
)

var (
	ErrInvalidSweep = errors.New("invalid price sweep")
	ErrGridMismatch = errors.New("price grid and error slices must be non-empty and of equal length")
)

// SweepOptions describes Points+1 equally spaced prices in [Min, Max].
type SweepOptions struct {
	Points int
	Min    float64
	Max    float64
}

func DefaultSweep() SweepOptions {
	return SweepOptions{Points: DefaultSweepPoints, Min: DefaultSweepMin, Max: DefaultSweepMax}
}

func (o SweepOptions) Validate() error {
	if o.Points < 1 {
		return fmt.Errorf("%w: points must be at least 1, got %d", ErrInvalidSweep, o.Points)
	}
	if !(o.Min > 0) || !(o.Max > o.Min) || math.IsInf(o.Max, 0) {
		return fmt.Errorf("%w: need 0 < min < max, got [%v, %v]", ErrInvalidSweep, o.Min, o.Max)
	}
	return nil
}

// Grid returns the sweep prices in ascending order. Both endpoints are exact.
func (o SweepOptions) Grid() []float64 {
	grid := floats.Span(make([]float64, o.Points+1), o.Min, o.Max)
	grid[len(grid)-1] = o.Max
	return grid
}

// ComputeErrorsOverPrices sweeps the default grid of 76 prices in [0.5, 2.5].
func (m *Model) ComputeErrorsOverPrices() []domain.PriceError {
	errs, _ := m.ComputeErrors(DefaultSweep())
	return errs
}

func (m *Model) ComputeErrors(opts SweepOptions) ([]domain.PriceError, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	grid := opts.Grid()
	out := make([]domain.PriceError, 0, len(grid))
	for _, p1 := range grid {
		e := m.CheckMarketClearing(p1, DefaultNumeraire)
		out = append(out, domain.PriceError{P1: p1, Eps1: e.Eps1, Eps2: e.Eps2})
	}
	return out, nil
}

// SplitErrors turns a sweep into parallel price and error slices.
func SplitErrors(errs []domain.PriceError) (p1, eps1, eps2 []float64) {
	p1 = make([]float64, len(errs))
	eps1 = make([]float64, len(errs))
	eps2 = make([]float64, len(errs))
	for i, e := range errs {
		p1[i], eps1[i], eps2[i] = e.P1, e.Eps1, e.Eps2
	}
	return p1, eps1, eps2
}

// SumSquaredErrors looks up the grid price nearest to p1 and returns
// eps1^2 + eps2^2 stored there. Equidistant neighbours resolve to the lower index.
func SumSquaredErrors(p1 float64, p1Values, eps1Values, eps2Values []float64) (float64, error) {
	n := len(p1Values)
	if n == 0 || len(eps1Values) != n || len(eps2Values) != n {
		return 0, ErrGridMismatch
	}
	dist := make([]float64, n)
	for i, p := range p1Values {
		dist[i] = math.Abs(p - p1)
	}
	idx := floats.MinIdx(dist)
	e := domain.ExcessDemand{Eps1: eps1Values[idx], Eps2: eps2Values[idx]}
	return e.SquaredError(), nil
}

// ApproxEquilibrium returns the sweep entry with the smallest |eps1|.
func ApproxEquilibrium(errs []domain.PriceError) (domain.PriceError, error) {
	if len(errs) == 0 {
		return domain.PriceError{}, ErrGridMismatch
	}
	abs := make([]float64, len(errs))
	for i, e := range errs {
		abs[i] = math.Abs(e.Eps1)
	}
	return errs[floats.MinIdx(abs)], nil
}
