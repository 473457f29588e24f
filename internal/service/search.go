package service

import (
	"errors"
	"math"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
)

var (
	ErrNoCandidates        = errors.New("no candidate prices supplied")
	ErrNoFeasibleCandidate = errors.New("no candidate price leaves agent A a feasible allocation")
)

// FindOptimalP1 searches the candidate prices exhaustively. At each price
// agent B consumes its demand and agent A receives what is left of the unit
// box; the price maximizing A's utility wins, first candidate on ties.
// Candidates that leave A a negative holding score NaN and are skipped.
func (m *Model) FindOptimalP1(candidates []float64) (domain.OptimalPrice, error) {
	if len(candidates) == 0 {
		return domain.OptimalPrice{}, ErrNoCandidates
	}

	best := domain.OptimalPrice{Utility: math.Inf(-1)}
	found := false
	for _, p1 := range candidates {
		b := m.DemandB(p1, DefaultNumeraire)
		a := b.Complement()
		u := m.UtilityA(a.X1, a.X2)
		if math.IsNaN(u) {
			continue
		}
		if !found || u > best.Utility {
			best = domain.OptimalPrice{P1: p1, Utility: u, AllocationA: a, AllocationB: b}
			found = true
		}
	}
	if !found {
		return domain.OptimalPrice{}, ErrNoFeasibleCandidate
	}
	return best, nil
}
