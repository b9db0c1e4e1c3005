// Package reaction splits a reaction string into its compound terms.
package reaction

import (
	"fmt"
	"strings"

	"github.com/atpage/chembal/internal/domain"
)

// Arrow separates the reactant side from the product side.
const Arrow = "->"

// Parse splits a reaction such as "C4H10 + O2 -> CO2 + H2O" into its
// reactant and product formula strings, in written order, with
// surrounding whitespace trimmed from every term.
//
// Returns domain.ErrMalformedReaction unless the string contains exactly
// one arrow and every term on both sides is non-empty.
func Parse(reaction string) (reactants, products []string, err error) {
	parts := strings.Split(reaction, Arrow)
	switch {
	case len(parts) < 2:
		return nil, nil, fmt.Errorf("%w: missing %q separator", domain.ErrMalformedReaction, Arrow)
	case len(parts) > 2:
		return nil, nil, fmt.Errorf("%w: more than one %q separator", domain.ErrMalformedReaction, Arrow)
	}

	if reactants, err = splitSide(parts[0], "reactant"); err != nil {
		return nil, nil, err
	}
	if products, err = splitSide(parts[1], "product"); err != nil {
		return nil, nil, err
	}
	return reactants, products, nil
}

func splitSide(side, label string) ([]string, error) {
	terms := strings.Split(side, "+")
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("%w: empty %s term", domain.ErrMalformedReaction, label)
		}
		out = append(out, term)
	}
	return out, nil
}
