package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.InDelta(t, 1.0/3.0, p.Alpha, 1e-12)
	assert.InDelta(t, 2.0/3.0, p.Beta, 1e-12)
	assert.Equal(t, 0.8, p.W1A)
	assert.Equal(t, 0.3, p.W2A)
	assert.InDelta(t, 0.2, p.W1B, 1e-12)
	assert.InDelta(t, 0.7, p.W2B, 1e-12)
	require.NoError(t, p.Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"defaults", DefaultParams(), false},
		{"corner endowment", NewParams(0.5, 0.5, 1, 0), false},
		{"alpha zero", NewParams(0, 0.5, 0.5, 0.5), true},
		{"alpha one", NewParams(1, 0.5, 0.5, 0.5), true},
		{"beta out of range", NewParams(0.5, 1.5, 0.5, 0.5), true},
		{"alpha NaN", NewParams(math.NaN(), 0.5, 0.5, 0.5), true},
		{"endowment above one", NewParams(0.5, 0.5, 1.2, 0.5), true},
		{"negative endowment", NewParams(0.5, 0.5, 0.5, -0.1), true},
		{"good 1 does not sum to one", Params{Alpha: 0.5, Beta: 0.5, W1A: 0.5, W2A: 0.5, W1B: 0.6, W2B: 0.5}, true},
		{"good 2 does not sum to one", Params{Alpha: 0.5, Beta: 0.5, W1A: 0.5, W2A: 0.5, W1B: 0.5, W2B: 0.4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidParams))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllocationComplement(t *testing.T) {
	a := Allocation{X1: 0.25, X2: 0.9}
	c := a.Complement()

	assert.InDelta(t, 0.75, c.X1, 1e-12)
	assert.InDelta(t, 0.1, c.X2, 1e-12)
	assert.Equal(t, DefaultParams().EndowmentB(), Allocation{X1: 1 - 0.8, X2: 1 - 0.3})
}

func TestExcessDemandSquaredError(t *testing.T) {
	e := ExcessDemand{Eps1: 0.3, Eps2: -0.4}
	assert.InDelta(t, 0.25, e.SquaredError(), 1e-12)
}
