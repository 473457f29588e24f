package service

import (
	"fmt"
	"math"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
)

// DefaultNumeraire is the price of good 2.
const DefaultNumeraire = 1.0

// Model evaluates the exchange economy for one fixed parameter set. It holds
// its own copy of the params, so a Model is safe to share between goroutines.
type Model struct {
	par domain.Params
}

func NewModel(par domain.Params) *Model {
	return &Model{par: par}
}

// NewValidatedModel is NewModel preceded by a parameter check.
func NewValidatedModel(par domain.Params) (*Model, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	return NewModel(par), nil
}

func (m *Model) Params() domain.Params {
	return m.par
}

// ValidatePrices rejects non-positive or non-finite prices. The evaluation
// methods themselves do not guard and let Inf/NaN through.
func (m *Model) ValidatePrices(p1, p2 float64) error {
	if !(p1 > 0) || math.IsInf(p1, 0) {
		return fmt.Errorf("%w: p1=%v", domain.ErrInvalidPrice, p1)
	}
	if !(p2 > 0) || math.IsInf(p2, 0) {
		return fmt.Errorf("%w: p2=%v", domain.ErrInvalidPrice, p2)
	}
	return nil
}

func (m *Model) UtilityA(x1, x2 float64) float64 {
	return cobbDouglas(x1, x2, m.par.Alpha)
}

// UtilityB scores agent B's bundle with alpha, not beta. B's demand uses
// beta, so the two disagree whenever alpha != beta.
func (m *Model) UtilityB(x1, x2 float64) float64 {
	return cobbDouglas(x1, x2, m.par.Alpha)
}

// cobbDouglas returns x1^a * x2^(1-a). A zero holding of either good is
// worth 0, which also settles 0^0. Negative holdings yield NaN.
func cobbDouglas(x1, x2, a float64) float64 {
	if x1 < 0 || x2 < 0 {
		return math.NaN()
	}
	if x1 == 0 || x2 == 0 {
		return 0
	}
	return math.Pow(x1, a) * math.Pow(x2, 1-a)
}

func (m *Model) DemandA(p1, p2 float64) domain.Allocation {
	budget := p1*m.par.W1A + p2*m.par.W2A
	return domain.Allocation{
		X1: m.par.Alpha * budget / p1,
		X2: (1 - m.par.Alpha) * budget / p2,
	}
}

func (m *Model) DemandB(p1, p2 float64) domain.Allocation {
	budget := p1*m.par.W1B + p2*m.par.W2B
	return domain.Allocation{
		X1: m.par.Beta * budget / p1,
		X2: (1 - m.par.Beta) * budget / p2,
	}
}

// CheckMarketClearing returns aggregate excess demand for both goods at (p1, p2).
func (m *Model) CheckMarketClearing(p1, p2 float64) domain.ExcessDemand {
	a := m.DemandA(p1, p2)
	b := m.DemandB(p1, p2)
	return domain.ExcessDemand{
		Eps1: (a.X1 - m.par.W1A) + (b.X1 - m.par.W1B),
		Eps2: (a.X2 - m.par.W2A) + (b.X2 - m.par.W2B),
	}
}

// EquilibriumPrice solves eps1 = 0 in closed form for the given numeraire price.
func (m *Model) EquilibriumPrice(p2 float64) float64 {
	par := m.par
	num := par.Alpha*par.W2A + par.Beta*par.W2B
	den := (1-par.Alpha)*par.W1A + (1-par.Beta)*par.W1B
	return p2 * num / den
}

// Equilibrium combines the closed-form price with the closest point of the
// price sweep described by opts.
func (m *Model) Equilibrium(opts SweepOptions) (domain.Equilibrium, error) {
	errs, err := m.ComputeErrors(opts)
	if err != nil {
		return domain.Equilibrium{}, err
	}
	return m.equilibriumOver(errs)
}

// equilibriumOver is Equilibrium for an already computed sweep.
func (m *Model) equilibriumOver(errs []domain.PriceError) (domain.Equilibrium, error) {
	grid, err := ApproxEquilibrium(errs)
	if err != nil {
		return domain.Equilibrium{}, err
	}

	p1 := m.EquilibriumPrice(DefaultNumeraire)
	a := m.DemandA(p1, DefaultNumeraire)
	b := m.DemandB(p1, DefaultNumeraire)
	return domain.Equilibrium{
		P1:          p1,
		P2:          DefaultNumeraire,
		GridP1:      grid.P1,
		GridError:   domain.ExcessDemand{Eps1: grid.Eps1, Eps2: grid.Eps2},
		AllocationA: a,
		AllocationB: b,
		UtilityA:    m.UtilityA(a.X1, a.X2),
		UtilityB:    m.UtilityB(b.X1, b.X2),
	}, nil
}
