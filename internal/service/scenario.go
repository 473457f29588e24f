package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultScenarioListLimit = 50
	maxScenarioListLimit     = 500
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrScenarioConflict = errors.New("scenario with this name already exists")
	ErrScenarioName     = errors.New("scenario name is required")
)

type ScenarioService struct {
	store   domain.ScenarioStore
	economy *EconomyService
	logger  *zap.Logger
}

func NewScenarioService(s domain.ScenarioStore, economy *EconomyService, logger *zap.Logger) *ScenarioService {
	return &ScenarioService{store: s, economy: economy, logger: logger}
}

func (s *ScenarioService) Create(ctx context.Context, sc *domain.Scenario) error {
	sc.Name = strings.TrimSpace(sc.Name)
	if sc.Name == "" {
		return ErrScenarioName
	}
	if err := sc.Params.Validate(); err != nil {
		return err
	}

	if err := s.store.Create(ctx, sc); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrScenarioConflict
		}
		return err
	}

	s.logger.Info("scenario created", zap.String("scenario_id", sc.ID.String()), zap.String("name", sc.Name))
	return nil
}

func (s *ScenarioService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	sc, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *ScenarioService) GetByName(ctx context.Context, name string) (*domain.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrScenarioName
	}
	sc, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *ScenarioService) List(ctx context.Context, limit int) ([]domain.Scenario, error) {
	if limit <= 0 {
		limit = defaultScenarioListLimit
	}
	if limit > maxScenarioListLimit {
		limit = maxScenarioListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *ScenarioService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrScenarioNotFound
		}
		return err
	}
	return nil
}

// Report loads a scenario and analyses its parameters.
func (s *ScenarioService) Report(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	sc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.economy.Report(ctx, sc.Params)
}
