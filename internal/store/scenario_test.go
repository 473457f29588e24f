package store

import (
	"errors"
	"testing"
	"time"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow feeds fixed values to Scan in column order.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestScanScenario(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	row := fakeRow{values: []any{id, "baseline", "textbook case", 1.0 / 3.0, 2.0 / 3.0, 0.8, 0.3, now, now}}

	sc, err := scanScenario(row)
	require.NoError(t, err)

	assert.Equal(t, id, sc.ID)
	assert.Equal(t, "baseline", sc.Name)
	assert.Equal(t, domain.DefaultParams(), sc.Params)
	assert.NoError(t, sc.Params.Validate())
	assert.Equal(t, now, sc.CreatedAt)
}

func TestScanScenario_NoRows(t *testing.T) {
	_, err := scanScenario(fakeRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanScenario_OtherError(t *testing.T) {
	boom := errors.New("boom")
	_, err := scanScenario(fakeRow{err: boom})
	assert.Equal(t, boom, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := embedMigrations.ReadFile("migrations/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS scenarios")
}
