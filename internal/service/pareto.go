package service

import (
	"fmt"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// DefaultParetoGrid is the number of steps per axis when scanning the box.
const DefaultParetoGrid = 75

// ParetoImprovingSet scans an (n+1)x(n+1) grid of agent A allocations and
// keeps those that leave both agents at least as well off as at the
// endowment, B holding the complement.
func (m *Model) ParetoImprovingSet(n int) ([]domain.Allocation, error) {
	if err := validateGridSize(n); err != nil {
		return nil, err
	}
	par := m.par
	floorA := m.UtilityA(par.W1A, par.W2A)
	floorB := m.UtilityB(par.W1B, par.W2B)

	grid := floats.Span(make([]float64, n+1), 0, 1)
	set := make([]domain.Allocation, 0)
	for _, x1 := range grid {
		for _, x2 := range grid {
			a := domain.Allocation{X1: x1, X2: x2}
			b := a.Complement()
			if m.UtilityA(a.X1, a.X2) >= floorA && m.UtilityB(b.X1, b.X2) >= floorB {
				set = append(set, a)
			}
		}
	}
	return set, nil
}

// ContractCurve returns n+1 Pareto-efficient allocations for agent A. Both
// utilities share alpha, so marginal rates of substitution match exactly on
// the diagonal of the box.
func (m *Model) ContractCurve(n int) ([]domain.Allocation, error) {
	if err := validateGridSize(n); err != nil {
		return nil, err
	}
	grid := floats.Span(make([]float64, n+1), 0, 1)
	out := make([]domain.Allocation, len(grid))
	for i, x := range grid {
		out[i] = domain.Allocation{X1: x, X2: x}
	}
	return out, nil
}

func validateGridSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: grid size must be at least 1, got %d", ErrInvalidSweep, n)
	}
	return nil
}
