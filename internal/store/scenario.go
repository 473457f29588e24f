package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScenarioStore struct {
	db *pgxpool.Pool
}

func NewScenarioStore(db *pgxpool.Pool) *ScenarioStore {
	return &ScenarioStore{db: db}
}

const scenarioColumns = `id, name, description, alpha, beta, w1a, w2a, created_at, updated_at`

func (s *ScenarioStore) Create(ctx context.Context, sc *domain.Scenario) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO scenarios (name, description, alpha, beta, w1a, w2a)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		sc.Name, sc.Description, sc.Params.Alpha, sc.Params.Beta, sc.Params.W1A, sc.Params.W2A,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *ScenarioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	row := s.db.QueryRow(ctx, `SELECT `+scenarioColumns+` FROM scenarios WHERE id = $1`, id)
	return scanScenario(row)
}

func (s *ScenarioStore) GetByName(ctx context.Context, name string) (*domain.Scenario, error) {
	row := s.db.QueryRow(ctx, `SELECT `+scenarioColumns+` FROM scenarios WHERE name = $1`, name)
	return scanScenario(row)
}

func (s *ScenarioStore) List(ctx context.Context, limit int) ([]domain.Scenario, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

func (s *ScenarioStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanScenario reads one row; B's endowment is derived, never stored.
func scanScenario(row pgx.Row) (*domain.Scenario, error) {
	sc := &domain.Scenario{}
	var alpha, beta, w1a, w2a float64
	err := row.Scan(&sc.ID, &sc.Name, &sc.Description, &alpha, &beta, &w1a, &w2a, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sc.Params = domain.NewParams(alpha, beta, w1a, w2a)
	return sc, nil
}
