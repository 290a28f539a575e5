package bimatrix

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// Default budgets for FictitiousPlay.
const (
	DefaultMaxIterations = 1000
	DefaultEpsilon       = 0.001
)

// FictitiousPlay approximates a mixed equilibrium by having both
// players repeatedly best-respond to the empirical frequency of the
// opponent's past actions. The process starts from a uniformly random
// profile and stops once the per-iteration drift of both empirical
// distributions falls to epsilon or below, or after maxIter
// iterations; maxIter <= 0 selects DefaultMaxIterations and
// epsilon <= 0 selects DefaultEpsilon.
//
// It returns the empirical distribution over the row player's actions
// (length m) and over the column player's actions (length n). Each
// sums to 1. The distributions are each other's empirical
// best-response history; no convergence to an exact mixed Nash
// equilibrium is guaranteed for general games. A nil rng falls back to
// the global math/rand source.
func FictitiousPlay(paymat PayoffMatrix, rng *rand.Rand, maxIter int, epsilon float64) ([]float64, []float64, error) {
	if err := paymat.Validate(); err != nil {
		return nil, nil, err
	}

	m, n := paymat.NumRows(), paymat.NumCols()
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}

	// colPlays[j] counts how often the column player has played j and
	// feeds the row player's belief; rowPlays[i] is the mirror image.
	// Both are seeded with one play at a random starting profile so
	// the empirical frequencies are always well-defined.
	colPlays := make([]int, n)
	rowPlays := make([]int, m)
	start := Profile{Row: intn(rng, m), Col: intn(rng, n)}
	colPlays[start.Col] = 1
	rowPlays[start.Row] = 1

	rowDrift, colDrift := 1.0, 1.0
	for iter := 0; iter < maxIter && math.Max(rowDrift, colDrift) > epsilon; iter++ {
		// Row player's best response to the column player's empirical mix.
		colSum := sum(colPlays)
		rowChoice, rowBest := 0, -math.MaxFloat64
		for i := 0; i < m; i++ {
			expected := 0.0
			for j := 0; j < n; j++ {
				expected += float64(colPlays[j]) / float64(colSum) * paymat[i][j].Row
			}
			if expected > rowBest {
				rowChoice = i
				rowBest = expected
			}
		}

		// Column player's best response to the row player's empirical mix.
		rowSum := sum(rowPlays)
		colChoice, colBest := 0, -math.MaxFloat64
		for j := 0; j < n; j++ {
			expected := 0.0
			for i := 0; i < m; i++ {
				expected += float64(rowPlays[i]) / float64(rowSum) * paymat[i][j].Col
			}
			if expected > colBest {
				colChoice = j
				colBest = expected
			}
		}

		// Drift of the opponent-chosen action's empirical probability,
		// measured before the new profile is recorded.
		rowDrift = math.Abs(float64(colPlays[colChoice])/float64(colSum) -
			float64(colPlays[colChoice]+1)/float64(colSum+1))
		colDrift = math.Abs(float64(rowPlays[rowChoice])/float64(rowSum) -
			float64(rowPlays[rowChoice]+1)/float64(rowSum+1))
		colPlays[colChoice]++
		rowPlays[rowChoice]++

		if (iter+1)%100 == 0 {
			glog.V(1).Infof("After %d iterations, row weights: %v, column weights: %v",
				iter+1, normalize(rowPlays), normalize(colPlays))
		}
	}

	return normalize(rowPlays), normalize(colPlays), nil
}

func sum(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}

	return total
}

// normalize converts play counts to an empirical distribution.
func normalize(counts []int) []float64 {
	total := sum(counts)
	dist := make([]float64, len(counts))
	for i, c := range counts {
		dist[i] = float64(c) / float64(total)
	}

	return dist
}
