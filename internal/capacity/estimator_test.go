package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOutputTokens(t *testing.T) {
	est := Default()
	for _, in := range []float64{1, 42, 80, 1500.5} {
		res, err := est.Compute(in, 100, 2)
		require.NoError(t, err)
		assert.InDelta(t, in*4, res.OutputTokens, 1e-9)
	}
}

func TestComputeKnownValues(t *testing.T) {
	res, err := Default().Compute(80, 1500, 5)
	require.NoError(t, err)

	// cu_seconds = (80*100 + 320*400) / 1000 = 136
	assert.InDelta(t, 320.0, res.OutputTokens, 1e-9)
	assert.InDelta(t, 136.0, res.CUSeconds, 1e-9)
	assert.InDelta(t, 136.0/60, res.CUMinutes, 1e-9)
	assert.InDelta(t, 136.0/3600, res.CUHours, 1e-9)
	assert.InDelta(t, 7500.0, res.RequestsDay, 1e-9)
	assert.InDelta(t, 7500.0*(136.0/3600)/24, res.CapacityNeed, 1e-9)
}

func TestComputeUnitConversionIdentity(t *testing.T) {
	res, err := Default().Compute(123.45, 999, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, res.CUSeconds/3600, res.CUHours, 1e-12)
	assert.InDelta(t, res.CUMinutes/60, res.CUHours, 1e-12)
}

func TestComputeInvalidInputs(t *testing.T) {
	cases := []struct {
		name       string
		in, users, q float64
	}{
		{"zero input tokens", 0, 100, 2},
		{"negative input tokens", -5, 100, 2},
		{"zero users", 80, 0, 2},
		{"negative users", 80, -1, 2},
		{"zero questions", 80, 100, 0},
		{"negative questions", 80, 100, -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Default().Compute(tc.in, tc.users, tc.q)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComputeCustomOutputFactor(t *testing.T) {
	res, err := Estimator{OutputFactor: 2}.Compute(100, 10, 1)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, res.OutputTokens, 1e-9)
	// (100*100 + 200*400) / 1000 = 90
	assert.InDelta(t, 90.0, res.CUSeconds, 1e-9)
}

func TestComputeZeroFactorFallsBack(t *testing.T) {
	res, err := Estimator{}.Compute(10, 10, 1)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, res.OutputTokens, 1e-9)
}
