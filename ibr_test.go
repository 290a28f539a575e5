package bimatrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 3x3 game where each player's payoff grows with its own action
// index regardless of the opponent, so (2, 2) is the unique strict
// pure equilibrium.
func dominantAction3x3() PayoffMatrix {
	paymat := make(PayoffMatrix, 3)
	for i := range paymat {
		paymat[i] = make([]Payoff, 3)
		for j := range paymat[i] {
			paymat[i][j] = Payoff{Row: float64(i + 1), Col: float64(j + 1)}
		}
	}

	return paymat
}

// On a game with a unique strict pure equilibrium, the dynamics reach
// it from every possible starting profile.
func TestIBR_ConvergesFromEveryStart(t *testing.T) {
	for _, paymat := range []PayoffMatrix{prisonersDilemma(), dominantAction3x3()} {
		equilibria, err := PureEquilibria(paymat)
		require.NoError(t, err)
		require.Len(t, equilibria, 1)

		m, n := paymat.NumRows(), paymat.NumCols()
		for r := 0; r < m; r++ {
			for c := 0; c < n; c++ {
				start := Profile{Row: r, Col: c}
				final := ibrFrom(paymat, start, m*n+2)
				assert.Equal(t, equilibria[0], final, "start: %v", start)
			}
		}
	}
}

// Matching pennies has no pure equilibrium; the dynamics cycle until
// the step budget runs out and return the last profile visited.
func TestIBR_MatchingPenniesExhaustsBudget(t *testing.T) {
	paymat := matchingPennies()
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		profile, err := IBR(paymat, rng, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, profile.Row, 0)
		assert.Less(t, profile.Row, paymat.NumRows())
		assert.GreaterOrEqual(t, profile.Col, 0)
		assert.Less(t, profile.Col, paymat.NumCols())
	}
}

func TestIBR_SingleCell(t *testing.T) {
	profile, err := IBR(PayoffMatrix{{{Row: -5, Col: -5}}}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, Profile{Row: 0, Col: 0}, profile)
}

// On random games the returned profile is stable whenever the
// dynamics stopped before the budget: running them again from the
// result must not move it.
func TestIBR_ResultIsFixedPointOfItself(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		paymat, err := Uniform(rng, 4, 4, 50)
		require.NoError(t, err)

		profile, err := IBR(paymat, rng, 0)
		require.NoError(t, err)
		if isPureEquilibrium(paymat, profile) {
			again := ibrFrom(paymat, profile, paymat.NumRows()*paymat.NumCols()+2)
			assert.Equal(t, profile, again)
		}
	}
}

func TestIBR_InvalidMatrix(t *testing.T) {
	_, err := IBR(PayoffMatrix{}, nil, 0)
	require.ErrorIs(t, err, ErrEmptyMatrix)
}
