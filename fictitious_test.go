package bimatrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Matching pennies has the unique mixed equilibrium (1/2, 1/2) for
// both players; the empirical frequencies of fictitious play approach
// it as the iteration budget grows.
func TestFictitiousPlay_MatchingPennies(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rowDist, colDist, err := FictitiousPlay(matchingPennies(), rng, 100000, 1e-9)
	require.NoError(t, err)
	t.Logf("Row equilibrium estimate: %v", rowDist)
	t.Logf("Column equilibrium estimate: %v", colDist)

	require.Len(t, rowDist, 2)
	require.Len(t, colDist, 2)
	for _, dist := range [][]float64{rowDist, colDist} {
		assert.InDelta(t, 0.5, dist[0], 0.05)
		assert.InDelta(t, 0.5, dist[1], 0.05)
	}
}

// With a strictly dominant action for both players, the empirical play
// concentrates on the pure equilibrium.
func TestFictitiousPlay_PrisonersDilemma(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	rowDist, colDist, err := FictitiousPlay(prisonersDilemma(), rng, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, rowDist[1], 0.9)
	assert.Greater(t, colDist[1], 0.9)
}

func TestFictitiousPlay_DistributionsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 20; trial++ {
		var paymat PayoffMatrix
		var err error
		if trial%2 == 0 {
			paymat, err = Uniform(rng, 1+rng.Intn(5), 1+rng.Intn(5), 30)
		} else {
			paymat, err = ZeroSum(rng, 1+rng.Intn(5), 1+rng.Intn(5), 30)
		}
		require.NoError(t, err)

		rowDist, colDist, err := FictitiousPlay(paymat, rng, 0, 0)
		require.NoError(t, err)
		require.Len(t, rowDist, paymat.NumRows())
		require.Len(t, colDist, paymat.NumCols())

		for _, dist := range [][]float64{rowDist, colDist} {
			total := 0.0
			for _, p := range dist {
				assert.GreaterOrEqual(t, p, 0.0)
				total += p
			}
			assert.InDelta(t, 1.0, total, 1e-9)
		}
	}
}

// A 1x1 game converges immediately to the only possible profile.
func TestFictitiousPlay_SingleCell(t *testing.T) {
	rowDist, colDist, err := FictitiousPlay(PayoffMatrix{{{Row: -3, Col: -7}}}, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, rowDist)
	assert.Equal(t, []float64{1}, colDist)
}

func TestFictitiousPlay_InvalidMatrix(t *testing.T) {
	_, _, err := FictitiousPlay(PayoffMatrix{}, nil, 0, 0)
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, _, err = FictitiousPlay(PayoffMatrix{{}}, nil, 0, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
}
