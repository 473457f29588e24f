package domain

import (
	"context"

	"github.com/google/uuid"
)

type ScenarioStore interface {
	Create(ctx context.Context, s *Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*Scenario, error)
	GetByName(ctx context.Context, name string) (*Scenario, error)
	List(ctx context.Context, limit int) ([]Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
