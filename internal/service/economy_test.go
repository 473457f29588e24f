package service

import (
	"errors"
	"math"
	"testing"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func defaultModel() *Model {
	return NewModel(domain.DefaultParams())
}

func TestUtility_EndowmentReferenceValues(t *testing.T) {
	m := defaultModel()

	assert.InDelta(t, 0.416017, m.UtilityA(0.8, 0.3), 1e-6)
	assert.InDelta(t, math.Cbrt(0.8)*math.Pow(0.3, 2.0/3.0), m.UtilityA(0.8, 0.3), tol)
	assert.InDelta(t, 0.461044, m.UtilityB(0.2, 0.7), 1e-6)
}

func TestUtilityB_UsesAlpha(t *testing.T) {
	m := NewModel(domain.NewParams(0.25, 0.75, 0.5, 0.5))

	// Same bundle, same exponent: B's utility matches A's even though beta differs.
	assert.InDelta(t, m.UtilityA(0.4, 0.6), m.UtilityB(0.4, 0.6), tol)
	assert.InDelta(t, math.Pow(0.4, 0.25)*math.Pow(0.6, 0.75), m.UtilityB(0.4, 0.6), tol)
}

func TestUtility_ZeroAndNegativeHoldings(t *testing.T) {
	m := defaultModel()

	assert.Equal(t, 0.0, m.UtilityA(0, 0.5))
	assert.Equal(t, 0.0, m.UtilityA(0.5, 0))
	assert.Equal(t, 0.0, m.UtilityA(0, 0))
	assert.True(t, math.IsNaN(m.UtilityA(-0.1, 0.5)))
	assert.True(t, math.IsNaN(m.UtilityB(0.5, -0.1)))
}

func TestDemand_NonNegativeAndBudgetBalanced(t *testing.T) {
	m := defaultModel()
	par := m.Params()

	for _, p1 := range []float64{0.1, 0.5, 0.9444, 1, 1.7, 2.5, 10} {
		for _, p2 := range []float64{0.5, 1, 3} {
			a := m.DemandA(p1, p2)
			b := m.DemandB(p1, p2)

			assert.GreaterOrEqual(t, a.X1, 0.0)
			assert.GreaterOrEqual(t, a.X2, 0.0)
			assert.GreaterOrEqual(t, b.X1, 0.0)
			assert.GreaterOrEqual(t, b.X2, 0.0)

			assert.InDelta(t, p1*par.W1A+p2*par.W2A, p1*a.X1+p2*a.X2, tol, "agent A budget at p1=%v p2=%v", p1, p2)
			assert.InDelta(t, p1*par.W1B+p2*par.W2B, p1*b.X1+p2*b.X2, tol, "agent B budget at p1=%v p2=%v", p1, p2)
		}
	}
}

func TestDemand_CobbDouglasShares(t *testing.T) {
	m := defaultModel()

	a := m.DemandA(1, 1)
	assert.InDelta(t, (1.0/3.0)*1.1, a.X1, tol)
	assert.InDelta(t, (2.0/3.0)*1.1, a.X2, tol)

	b := m.DemandB(1, 1)
	assert.InDelta(t, 0.6, b.X1, tol)
	assert.InDelta(t, 0.3, b.X2, tol)
}

func TestDemand_ZeroPriceIsNotGuarded(t *testing.T) {
	m := defaultModel()

	a := m.DemandA(0, 1)
	assert.True(t, math.IsInf(a.X1, 1))
}

func TestValidatePrices(t *testing.T) {
	m := defaultModel()

	assert.NoError(t, m.ValidatePrices(1, 1))
	for _, tc := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {math.NaN(), 1}, {math.Inf(1), 1}} {
		err := m.ValidatePrices(tc[0], tc[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidPrice))
	}
}

func TestCheckMarketClearing_WalrasLaw(t *testing.T) {
	m := defaultModel()

	for _, p1 := range []float64{0.5, 0.8, 1.3, 2.5} {
		e := m.CheckMarketClearing(p1, 1)
		assert.InDelta(t, 0, p1*e.Eps1+e.Eps2, tol, "p1=%v", p1)
	}
}

func TestEquilibriumPrice_ClearsBothMarkets(t *testing.T) {
	m := defaultModel()

	p1 := m.EquilibriumPrice(1)
	assert.InDelta(t, 17.0/18.0, p1, tol)

	e := m.CheckMarketClearing(p1, 1)
	assert.InDelta(t, 0, e.Eps1, tol)
	assert.InDelta(t, 0, e.Eps2, tol)

	// Homogeneous of degree one in the numeraire price.
	assert.InDelta(t, 2*p1, m.EquilibriumPrice(2), tol)
}

func TestEquilibrium(t *testing.T) {
	m := defaultModel()

	eq, err := m.Equilibrium(DefaultSweep())
	require.NoError(t, err)

	assert.InDelta(t, 17.0/18.0, eq.P1, tol)
	assert.Equal(t, 1.0, eq.P2)
	assert.InDelta(t, 0.5+17*2.0/75.0, eq.GridP1, 1e-12)
	assert.Less(t, math.Abs(eq.GridError.Eps1), 0.01)
	assert.InDelta(t, 1, eq.AllocationA.X1+eq.AllocationB.X1, tol)
	assert.InDelta(t, 1, eq.AllocationA.X2+eq.AllocationB.X2, tol)
	assert.InDelta(t, m.UtilityA(eq.AllocationA.X1, eq.AllocationA.X2), eq.UtilityA, tol)
}

func TestEquilibrium_UsesGivenSweep(t *testing.T) {
	m := defaultModel()
	opts := SweepOptions{Points: 10, Min: 1, Max: 2}

	eq, err := m.Equilibrium(opts)
	require.NoError(t, err)

	// p1* = 17/18 lies below the grid, so the lower endpoint is closest.
	assert.Contains(t, opts.Grid(), eq.GridP1)
	assert.Equal(t, 1.0, eq.GridP1)
	assert.InDelta(t, 17.0/18.0, eq.P1, tol)

	_, err = m.Equilibrium(SweepOptions{Points: 0, Min: 1, Max: 2})
	assert.ErrorIs(t, err, ErrInvalidSweep)
}

func TestNewValidatedModel(t *testing.T) {
	_, err := NewValidatedModel(domain.NewParams(1.5, 0.5, 0.5, 0.5))
	assert.True(t, errors.Is(err, domain.ErrInvalidParams))

	m, err := NewValidatedModel(domain.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultParams(), m.Params())
}
