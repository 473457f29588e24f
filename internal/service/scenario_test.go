package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockScenarioStore mocks the ScenarioStore interface.
type MockScenarioStore struct {
	mock.Mock
}

func (m *MockScenarioStore) Create(ctx context.Context, s *domain.Scenario) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockScenarioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioStore) GetByName(ctx context.Context, name string) (*domain.Scenario, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioStore) List(ctx context.Context, limit int) ([]domain.Scenario, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scenario), args.Error(1)
}

func (m *MockScenarioStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestScenarioService(st domain.ScenarioStore) *ScenarioService {
	logger := zap.NewNop()
	return NewScenarioService(st, NewEconomyService(domain.DefaultParams(), logger), logger)
}

func TestScenarioService_Create(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()

	sc := &domain.Scenario{Name: "  baseline ", Params: domain.DefaultParams()}
	st.On("Create", ctx, sc).Return(nil)

	err := svc.Create(ctx, sc)

	require.NoError(t, err)
	assert.Equal(t, "baseline", sc.Name)
	assert.NotEqual(t, uuid.Nil, sc.ID)
	st.AssertExpectations(t)
}

func TestScenarioService_CreateValidation(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Scenario{Name: " ", Params: domain.DefaultParams()})
	assert.ErrorIs(t, err, ErrScenarioName)

	err = svc.Create(ctx, &domain.Scenario{Name: "bad", Params: domain.NewParams(0.5, 2, 0.5, 0.5)})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)

	st.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScenarioService_CreateConflict(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()

	st.On("Create", ctx, mock.Anything).Return(store.ErrConflict)

	err := svc.Create(ctx, &domain.Scenario{Name: "baseline", Params: domain.DefaultParams()})
	assert.Equal(t, ErrScenarioConflict, err)
}

func TestScenarioService_GetByID_NotFound(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()
	id := uuid.New()

	st.On("GetByID", ctx, id).Return(nil, store.ErrNotFound)

	sc, err := svc.GetByID(ctx, id)
	assert.Nil(t, sc)
	assert.Equal(t, ErrScenarioNotFound, err)
}

func TestScenarioService_GetByID_StoreError(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()
	id := uuid.New()
	boom := errors.New("connection reset")

	st.On("GetByID", ctx, id).Return(nil, boom)

	_, err := svc.GetByID(ctx, id)
	assert.Equal(t, boom, err)
}

func TestScenarioService_GetByName(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()

	want := &domain.Scenario{ID: uuid.New(), Name: "baseline", Params: domain.DefaultParams()}
	st.On("GetByName", ctx, "baseline").Return(want, nil)
	st.On("GetByName", ctx, "missing").Return(nil, store.ErrNotFound)

	got, err := svc.GetByName(ctx, " baseline ")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	_, err = svc.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, ErrScenarioNotFound)

	_, err = svc.GetByName(ctx, "   ")
	assert.ErrorIs(t, err, ErrScenarioName)
	st.AssertExpectations(t)
}

func TestScenarioService_ListClampsLimit(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()

	st.On("List", ctx, defaultScenarioListLimit).Return([]domain.Scenario{{Name: "a"}}, nil).Once()
	st.On("List", ctx, maxScenarioListLimit).Return([]domain.Scenario{}, nil).Once()
	st.On("List", ctx, 7).Return([]domain.Scenario{}, nil).Once()

	got, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(ctx, 100000)
	require.NoError(t, err)

	_, err = svc.List(ctx, 7)
	require.NoError(t, err)

	st.AssertExpectations(t)
}

func TestScenarioService_Delete(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()

	st.On("Delete", ctx, id).Return(nil)
	st.On("Delete", ctx, missing).Return(store.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, id))
	assert.Equal(t, ErrScenarioNotFound, svc.Delete(ctx, missing))
}

func TestScenarioService_Report(t *testing.T) {
	st := new(MockScenarioStore)
	svc := newTestScenarioService(st)
	ctx := context.Background()
	id := uuid.New()

	par := domain.NewParams(0.5, 0.5, 0.6, 0.4)
	st.On("GetByID", ctx, id).Return(&domain.Scenario{ID: id, Name: "symmetric", Params: par}, nil)

	report, err := svc.Report(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, par, report.Params)
	// alpha = beta = 1/2: p1* = (0.5*0.4 + 0.5*0.6) / (0.5*0.6 + 0.5*0.4) = 1.
	assert.InDelta(t, 1.0, report.Equilibrium.P1, tol)
}
