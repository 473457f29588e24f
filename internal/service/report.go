package service

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"go.uber.org/zap"
)

// EconomyService runs full analyses of a parameter set.
type EconomyService struct {
	defaults   domain.Params
	sweep      SweepOptions
	paretoGrid int
	logger     *zap.Logger
}

func NewEconomyService(defaults domain.Params, logger *zap.Logger) *EconomyService {
	return &EconomyService{
		defaults:   defaults,
		sweep:      DefaultSweep(),
		paretoGrid: DefaultParetoGrid,
		logger:     logger,
	}
}

func (s *EconomyService) SetSweep(opts SweepOptions) {
	s.sweep = opts
}

func (s *EconomyService) SetParetoGrid(n int) {
	s.paretoGrid = n
}

func (s *EconomyService) Defaults() domain.Params {
	return s.defaults
}

func (s *EconomyService) Sweep() SweepOptions {
	return s.sweep
}

func (s *EconomyService) ParetoGrid() int {
	return s.paretoGrid
}

// Model returns a model for par after validating it.
func (s *EconomyService) Model(par domain.Params) (*Model, error) {
	return NewValidatedModel(par)
}

// Report analyses par: endowment utilities, the configured price sweep, the
// equilibrium, the best sweep price for agent A, and the size of the
// Pareto-improving set.
func (s *EconomyService) Report(ctx context.Context, par domain.Params) (*domain.Report, error) {
	m, err := s.Model(par)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	errs, err := m.ComputeErrors(s.sweep)
	if err != nil {
		return nil, err
	}
	eq, err := m.equilibriumOver(errs)
	if err != nil {
		return nil, fmt.Errorf("equilibrium: %w", err)
	}

	grid, _, _ := SplitErrors(errs)
	opt, err := m.FindOptimalP1(grid)
	if err != nil {
		return nil, fmt.Errorf("optimal price: %w", err)
	}

	set, err := m.ParetoImprovingSet(s.paretoGrid)
	if err != nil {
		return nil, err
	}

	endowA, endowB := par.EndowmentA(), par.EndowmentB()
	report := &domain.Report{
		Params:            par,
		EndowmentUtilityA: m.UtilityA(endowA.X1, endowA.X2),
		EndowmentUtilityB: m.UtilityB(endowB.X1, endowB.X2),
		Errors:            errs,
		Equilibrium:       eq,
		Optimal:           opt,
		ParetoSetSize:     len(set),
	}

	s.logger.Debug("economy report computed",
		zap.Float64("alpha", par.Alpha),
		zap.Float64("beta", par.Beta),
		zap.Float64("equilibrium_p1", eq.P1),
		zap.Float64("optimal_p1", opt.P1),
		zap.Int("pareto_set_size", len(set)),
	)

	return report, nil
}

// EdgeworthFigure builds the Pareto-improvement figure for par, marking the
// allocation reached at the best price of the configured sweep.
func (s *EconomyService) EdgeworthFigure(par domain.Params) (domain.Figure, error) {
	m, err := s.Model(par)
	if err != nil {
		return domain.Figure{}, err
	}
	set, err := m.ParetoImprovingSet(s.paretoGrid)
	if err != nil {
		return domain.Figure{}, err
	}
	if err := s.sweep.Validate(); err != nil {
		return domain.Figure{}, err
	}
	opt, err := m.FindOptimalP1(s.sweep.Grid())
	if err != nil {
		return domain.Figure{}, err
	}
	return m.EdgeworthFigure(set, opt.AllocationA), nil
}
