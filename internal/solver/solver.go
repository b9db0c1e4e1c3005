// Package solver solves the homogeneous stoichiometry system exactly and
// scales the solution to minimal integer coefficients.
package solver

import (
	"fmt"

	"github.com/atpage/chembal/internal/domain"
	"github.com/atpage/chembal/internal/matrix"
)

// Solve computes one exact rational coefficient per compound column of the
// homogeneous system Ax = 0. A balanceable reaction has a one-dimensional
// null space: after reduction exactly one column carries no pivot, that
// column's coefficient is normalized to 1, and the pivot columns follow
// from the reduced rows. The free column is found by rank analysis rather
// than assumed to be the last compound, so reactions whose free variable
// sits elsewhere still solve correctly.
//
// Returns domain.ErrUnbalanceable when the system has no free column
// (only the trivial all-zero solution) or more than one (under-determined
// beyond the expected single choice of scale).
func Solve(m *matrix.Stoichiometry) ([]matrix.Rational, error) {
	cells := m.Cells()
	rows, cols := m.Rows(), m.Cols()

	// Gauss-Jordan to reduced row-echelon form. Exact arithmetic: any
	// nonzero pivot works, no magnitude tolerance.
	var pivotCols []int
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p := -1
		for i := r; i < rows; i++ {
			if !cells[i][c].IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		cells[r], cells[p] = cells[p], cells[r]

		piv := cells[r][c]
		for j := c; j < cols; j++ {
			cells[r][j] = cells[r][j].Div(piv)
		}
		for i := 0; i < rows; i++ {
			if i == r || cells[i][c].IsZero() {
				continue
			}
			f := cells[i][c]
			for j := c; j < cols; j++ {
				cells[i][j] = cells[i][j].Sub(f.Mul(cells[r][j]))
			}
		}

		pivotCols = append(pivotCols, c)
		r++
	}

	rank := r
	isPivot := make([]bool, cols)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	var free []int
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}

	switch {
	case len(free) == 0:
		// rank == cols: the element equations force every coefficient
		// to zero.
		return nil, fmt.Errorf("%w: only the trivial solution exists", domain.ErrUnbalanceable)
	case len(free) > 1:
		return nil, fmt.Errorf("%w: under-determined system (rank %d for %d compounds)", domain.ErrUnbalanceable, rank, cols)
	}

	freeCol := free[0]
	x := make([]matrix.Rational, cols)
	x[freeCol] = matrix.One()
	for i, p := range pivotCols {
		// Row i reads x[p] + cells[i][freeCol]*x[freeCol] = 0.
		x[p] = cells[i][freeCol].Neg()
	}
	return x, nil
}
