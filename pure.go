package bimatrix

import "math"

// PureEquilibria enumerates all pure Nash equilibria of the game.
// A profile (i, j) is an equilibrium when row i is a best response to
// column j and, simultaneously, column j is a best response to row i.
// Profiles are returned in the order columns are scanned: column-outer,
// row-inner. The result is empty for games with no pure equilibrium
// (e.g. matching pennies).
func PureEquilibria(paymat PayoffMatrix) ([]Profile, error) {
	if err := paymat.Validate(); err != nil {
		return nil, err
	}
	m, n := paymat.NumRows(), paymat.NumCols()

	// Mark the column player's best responses to each row.
	colBest := make([][]bool, m)
	for i := 0; i < m; i++ {
		colBest[i] = make([]bool, n)
		cMax := -math.MaxFloat64
		for j := 0; j < n; j++ {
			if paymat[i][j].Col > cMax {
				cMax = paymat[i][j].Col
			}
		}
		for j := 0; j < n; j++ {
			if paymat[i][j].Col == cMax {
				colBest[i][j] = true
			}
		}
	}

	// Intersect with the row player's best responses to each column.
	var result []Profile
	for j := 0; j < n; j++ {
		rMax := -math.MaxFloat64
		for i := 0; i < m; i++ {
			if paymat[i][j].Row > rMax {
				rMax = paymat[i][j].Row
			}
		}
		for i := 0; i < m; i++ {
			if paymat[i][j].Row == rMax && colBest[i][j] {
				result = append(result, Profile{Row: i, Col: j})
			}
		}
	}

	return result, nil
}
