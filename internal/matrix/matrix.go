// Package matrix builds the signed element-by-compound stoichiometry
// matrix and provides the exact rational arithmetic it is solved over.
package matrix

import (
	"sort"
	"strings"

	"github.com/atpage/chembal/internal/domain"
)

// Stoichiometry encodes one homogeneous linear equation per element: for a
// balanced reaction, each element's signed atom total across all compounds
// is zero. Columns follow the reaction's combined reactant-then-product
// order; reactant cells are positive, product cells negative.
type Stoichiometry struct {
	elements []string
	cells    [][]Rational
	cols     int
}

// Build constructs the matrix for the given reaction. Element row order
// is first appearance across compounds in column order, which makes the
// matrix deterministic for a given reaction.
func Build(rx domain.Reaction) *Stoichiometry {
	all := rx.Compounds()

	var elements []string
	rowOf := make(map[string]int)
	for _, c := range all {
		// Iterate the compound's symbols in a stable order; map
		// iteration alone would make row order vary between calls.
		for _, sym := range sortedSymbols(c.Counts) {
			if _, ok := rowOf[sym]; !ok {
				rowOf[sym] = len(elements)
				elements = append(elements, sym)
			}
		}
	}

	cells := make([][]Rational, len(elements))
	for i := range cells {
		row := make([]Rational, len(all))
		for j := range row {
			row[j] = Zero()
		}
		cells[i] = row
	}

	for col, c := range all {
		sign := int64(1)
		if col >= len(rx.Reactants) {
			sign = -1
		}
		for sym, n := range c.Counts {
			cells[rowOf[sym]][col] = NewInt(sign * int64(n))
		}
	}

	return &Stoichiometry{elements: elements, cells: cells, cols: len(all)}
}

// Rows returns the number of element equations.
func (m *Stoichiometry) Rows() int { return len(m.cells) }

// Cols returns the number of compound columns.
func (m *Stoichiometry) Cols() int { return m.cols }

// Elements returns the element symbols in row order.
func (m *Stoichiometry) Elements() []string { return m.elements }

// At returns the cell at row r, column c.
func (m *Stoichiometry) At(r, c int) Rational { return m.cells[r][c] }

// Cells returns a deep copy of the matrix cells, safe for in-place
// elimination.
func (m *Stoichiometry) Cells() [][]Rational {
	out := make([][]Rational, len(m.cells))
	for i, row := range m.cells {
		cp := make([]Rational, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out
}

// String renders the matrix for debug logging, one element row per line.
func (m *Stoichiometry) String() string {
	var sb strings.Builder
	for i, row := range m.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.elements[i])
		sb.WriteString(":")
		for _, cell := range row {
			sb.WriteByte(' ')
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

func sortedSymbols(counts domain.ElementCounts) []string {
	syms := make([]string, 0, len(counts))
	for sym := range counts {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
