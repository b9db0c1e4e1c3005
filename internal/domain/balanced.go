package domain

import (
	"strconv"
	"strings"
)

// Term is one coefficient-annotated compound of a balanced reaction.
type Term struct {
	Coefficient int    `json:"coefficient"`
	Formula     string `json:"formula"`
}

// BalancedReaction is the result of a successful balance: the minimal
// coprime positive integer coefficients zipped back onto the original
// formula strings, in the order they were written.
type BalancedReaction struct {
	Reactants []Term `json:"reactants"`
	Products  []Term `json:"products"`
}

// Coefficients returns all coefficients in combined reactant-then-product
// order.
func (b BalancedReaction) Coefficients() []int {
	out := make([]int, 0, len(b.Reactants)+len(b.Products))
	for _, t := range b.Reactants {
		out = append(out, t.Coefficient)
	}
	for _, t := range b.Products {
		out = append(out, t.Coefficient)
	}
	return out
}

// String renders the reaction as "2 H2 + 1 O2 -> 2 H2O".
func (b BalancedReaction) String() string {
	var sb strings.Builder
	writeSide(&sb, b.Reactants)
	sb.WriteString(" -> ")
	writeSide(&sb, b.Products)
	return sb.String()
}

func writeSide(sb *strings.Builder, terms []Term) {
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(strconv.Itoa(t.Coefficient))
		sb.WriteByte(' ')
		sb.WriteString(t.Formula)
	}
}
