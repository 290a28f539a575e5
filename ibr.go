package bimatrix

import (
	"math/rand"

	"github.com/golang/glog"
)

// IBR simulates iterative best response from a uniformly random
// starting profile. The players alternate: on even steps the row
// player revises its action, on odd steps the column player. The
// dynamics stop once neither player has changed action for two
// consecutive steps, or after maxSteps steps, whichever comes first;
// maxSteps <= 0 selects the default budget of m*n + 2.
//
// The returned profile is the last one visited. When the dynamics
// converged it is a pure Nash equilibrium; cyclic games exhaust the
// step budget instead and the result is only the best profile found.
// Non-convergence is not an error. A nil rng falls back to the global
// math/rand source. Each visited profile is traced at glog.V(2).
func IBR(paymat PayoffMatrix, rng *rand.Rand, maxSteps int) (Profile, error) {
	if err := paymat.Validate(); err != nil {
		return Profile{}, err
	}

	m, n := paymat.NumRows(), paymat.NumCols()
	if maxSteps <= 0 {
		maxSteps = m*n + 2
	}
	start := Profile{Row: intn(rng, m), Col: intn(rng, n)}

	return ibrFrom(paymat, start, maxSteps), nil
}

// ibrFrom runs the best-response dynamics from a fixed starting profile.
func ibrFrom(paymat PayoffMatrix, profile Profile, maxSteps int) Profile {
	m, n := paymat.NumRows(), paymat.NumCols()

	// updated is an optimism budget: one unit is spent per step and it
	// is refilled (capped at 2) whenever a player switches action, so
	// the loop ends after two consecutive quiet steps.
	updated := 2
	for step := 0; updated > 0 && step < maxSteps; step++ {
		glog.V(2).Infof("IBR step %d: profile %v", step, profile)
		updated--
		if step%2 == 0 {
			// Row player's turn. The running max is seeded at the
			// current payoff so only strict improvements move the
			// profile; later strict improvements replace earlier ones.
			best := paymat[profile.Row][profile.Col].Row
			for i := 0; i < m; i++ {
				if paymat[i][profile.Col].Row > best {
					profile.Row = i
					best = paymat[i][profile.Col].Row
					updated = min(updated+1, 2)
				}
			}
		} else {
			// Column player's turn.
			best := paymat[profile.Row][profile.Col].Col
			for j := 0; j < n; j++ {
				if paymat[profile.Row][j].Col > best {
					profile.Col = j
					best = paymat[profile.Row][j].Col
					updated = min(updated+1, 2)
				}
			}
		}
	}

	return profile
}
