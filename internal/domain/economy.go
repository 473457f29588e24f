package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParams = errors.New("invalid economy parameters")
	ErrInvalidPrice  = errors.New("prices must be positive")
)

// endowmentTolerance bounds the rounding allowed when checking that each
// good's total endowment is 1.
const endowmentTolerance = 1e-9

// Params fixes preferences and endowments for a two-agent, two-good economy.
// The total endowment of each good is normalized to 1.
type Params struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	W1A   float64 `json:"w1a"`
	W2A   float64 `json:"w2a"`
	W1B   float64 `json:"w1b"`
	W2B   float64 `json:"w2b"`
}

// NewParams builds a parameter set, giving agent B the remainder of each good.
func NewParams(alpha, beta, w1A, w2A float64) Params {
	return Params{
		Alpha: alpha,
		Beta:  beta,
		W1A:   w1A,
		W2A:   w2A,
		W1B:   1 - w1A,
		W2B:   1 - w2A,
	}
}

func DefaultParams() Params {
	return NewParams(1.0/3.0, 2.0/3.0, 0.8, 0.3)
}

func (p Params) Validate() error {
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return fmt.Errorf("%w: alpha must be in (0,1), got %v", ErrInvalidParams, p.Alpha)
	}
	if !(p.Beta > 0 && p.Beta < 1) {
		return fmt.Errorf("%w: beta must be in (0,1), got %v", ErrInvalidParams, p.Beta)
	}
	for name, w := range map[string]float64{"w1a": p.W1A, "w2a": p.W2A, "w1b": p.W1B, "w2b": p.W2B} {
		if !(w >= 0) {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidParams, name, w)
		}
	}
	if math.Abs(p.W1A+p.W1B-1) > endowmentTolerance {
		return fmt.Errorf("%w: endowments of good 1 must sum to 1", ErrInvalidParams)
	}
	if math.Abs(p.W2A+p.W2B-1) > endowmentTolerance {
		return fmt.Errorf("%w: endowments of good 2 must sum to 1", ErrInvalidParams)
	}
	return nil
}

// EndowmentA returns agent A's initial bundle.
func (p Params) EndowmentA() Allocation {
	return Allocation{X1: p.W1A, X2: p.W2A}
}

// EndowmentB returns agent B's initial bundle.
func (p Params) EndowmentB() Allocation {
	return Allocation{X1: p.W1B, X2: p.W2B}
}

// Allocation is one agent's holding of goods 1 and 2.
type Allocation struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
}

// Complement is the other agent's holding when the box has one unit of each good.
func (a Allocation) Complement() Allocation {
	return Allocation{X1: 1 - a.X1, X2: 1 - a.X2}
}

// ExcessDemand is aggregate demand minus aggregate endowment, per good.
type ExcessDemand struct {
	Eps1 float64 `json:"eps1"`
	Eps2 float64 `json:"eps2"`
}

// SquaredError returns eps1^2 + eps2^2.
func (e ExcessDemand) SquaredError() float64 {
	return e.Eps1*e.Eps1 + e.Eps2*e.Eps2
}

type PriceError struct {
	P1   float64 `json:"p1"`
	Eps1 float64 `json:"eps1"`
	Eps2 float64 `json:"eps2"`
}

// OptimalPrice is the outcome of the candidate price search.
type OptimalPrice struct {
	P1          float64    `json:"p1"`
	Utility     float64    `json:"utility"`
	AllocationA Allocation `json:"allocation_a"`
	AllocationB Allocation `json:"allocation_b"`
}

type Equilibrium struct {
	P1          float64      `json:"p1"`
	P2          float64      `json:"p2"`
	GridP1      float64      `json:"grid_p1"`
	GridError   ExcessDemand `json:"grid_error"`
	AllocationA Allocation   `json:"allocation_a"`
	AllocationB Allocation   `json:"allocation_b"`
	UtilityA    float64      `json:"utility_a"`
	UtilityB    float64      `json:"utility_b"`
}

// Report summarizes a full analysis of one parameter set.
type Report struct {
	Params            Params       `json:"params"`
	EndowmentUtilityA float64      `json:"endowment_utility_a"`
	EndowmentUtilityB float64      `json:"endowment_utility_b"`
	Errors            []PriceError `json:"errors"`
	Equilibrium       Equilibrium  `json:"equilibrium"`
	Optimal           OptimalPrice `json:"optimal"`
	ParetoSetSize     int          `json:"pareto_set_size"`
}
