package bimatrix

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Uniform generates an m x n game where every payoff is drawn
// independently and uniformly from the integers 1..maxPayoff.
// A nil rng falls back to the global math/rand source.
func Uniform(rng *rand.Rand, m, n, maxPayoff int) (PayoffMatrix, error) {
	if m < 1 || n < 1 || maxPayoff < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension,
			"cannot generate %dx%d game with max payoff %d", m, n, maxPayoff)
	}

	paymat := make(PayoffMatrix, m)
	for i := range paymat {
		paymat[i] = make([]Payoff, n)
		for j := range paymat[i] {
			paymat[i][j] = Payoff{
				Row: float64(1 + intn(rng, maxPayoff)),
				Col: float64(1 + intn(rng, maxPayoff)),
			}
		}
	}

	return paymat, nil
}

// ZeroSum generates an m x n zero-sum game: each cell holds two payoffs
// of equal magnitude and opposite sign. The magnitude is uniform over
// 1..maxPayoff and the positive side is assigned to either player with
// probability 1/2. A nil rng falls back to the global math/rand source.
func ZeroSum(rng *rand.Rand, m, n, maxPayoff int) (PayoffMatrix, error) {
	if m < 1 || n < 1 || maxPayoff < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension,
			"cannot generate %dx%d game with max payoff %d", m, n, maxPayoff)
	}

	paymat := make(PayoffMatrix, m)
	for i := range paymat {
		paymat[i] = make([]Payoff, n)
		for j := range paymat[i] {
			payoff := float64(1 + intn(rng, maxPayoff))
			if intn(rng, 2) == 0 {
				paymat[i][j] = Payoff{Row: payoff, Col: -payoff}
			} else {
				paymat[i][j] = Payoff{Row: -payoff, Col: payoff}
			}
		}
	}

	return paymat, nil
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}

	return rng.Intn(n)
}
