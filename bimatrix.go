// Package bimatrix computes and approximates equilibria of two-player
// games in normal form. A game is given as a matrix of payoff pairs;
// the package enumerates all pure Nash equilibria exactly, simulates
// iterative best response, and approximates a mixed equilibrium with
// fictitious play.
package bimatrix

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validation errors returned by the equilibrium algorithms. Errors
// produced deeper in the package wrap these sentinels with positional
// context.
var (
	ErrEmptyMatrix      = errors.New("payoff matrix has no rows")
	ErrInvalidDimension = errors.New("invalid payoff matrix dimensions")
)

// Payoff holds the pair of payoffs in one cell of the game matrix:
// Row is the row player's payoff, Col the column player's.
type Payoff struct {
	Row float64
	Col float64
}

// PayoffMatrix is an m x n grid of payoff pairs. Entry (i, j) is the
// outcome when the row player plays action i and the column player
// plays action j. Every algorithm treats the matrix as read-only, so
// one matrix may be shared across concurrent invocations.
type PayoffMatrix [][]Payoff

// NumRows returns the number of actions of the row player.
func (pm PayoffMatrix) NumRows() int { return len(pm) }

// NumCols returns the number of actions of the column player.
func (pm PayoffMatrix) NumCols() int {
	if len(pm) == 0 {
		return 0
	}

	return len(pm[0])
}

// At returns the payoff pair for the profile (i, j).
func (pm PayoffMatrix) At(i, j int) Payoff { return pm[i][j] }

// Validate checks that the matrix is non-empty and rectangular.
// Every algorithm in this package validates its input before touching
// any indices, so invalid games fail fast rather than as an index
// panic mid-run.
func (pm PayoffMatrix) Validate() error {
	if len(pm) == 0 {
		return ErrEmptyMatrix
	}

	n := len(pm[0])
	if n == 0 {
		return errors.Wrap(ErrInvalidDimension, "row 0 has no columns")
	}

	for i, row := range pm {
		if len(row) != n {
			return errors.Wrapf(ErrInvalidDimension,
				"row %d has %d columns, want %d", i, len(row), n)
		}
	}

	return nil
}

// Profile is a pure strategy choice for each player: the row player
// plays action Row, the column player plays action Col.
type Profile struct {
	Row int
	Col int
}

// String implements fmt.Stringer.
func (p Profile) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
