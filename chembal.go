// Package chembal balances chemical reaction equations: given an
// unbalanced reaction as text, it computes the smallest positive integer
// coefficients that equalize atom counts on both sides.
//
// Example usage:
//
//	balanced, err := chembal.Balance("C4H10 + O2 -> CO2 + H2O")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(balanced) // 2 C4H10 + 13 O2 -> 8 CO2 + 10 H2O
//
// Balancing is a pure function of the input string: no state is shared
// between calls, and Balance is safe for concurrent use. Failures are
// classified with errors.Is against ErrMalformedFormula,
// ErrMalformedReaction, ErrUnbalanceable, and ErrScaling.
package chembal

import (
	"github.com/atpage/chembal/internal/balancer"
	"github.com/atpage/chembal/internal/domain"
	"github.com/atpage/chembal/internal/formula"
	"github.com/atpage/chembal/pkg/log"
)

// BalancedReaction is the result of a successful balance: integer
// coefficients zipped onto the original formulas in written order.
type BalancedReaction = domain.BalancedReaction

// Term is one coefficient-annotated compound of a balanced reaction.
type Term = domain.Term

// ElementCounts maps element symbols to atom counts for one compound.
type ElementCounts = domain.ElementCounts

// Error kinds returned by Balance and ParseFormula.
var (
	ErrMalformedFormula  = domain.ErrMalformedFormula
	ErrMalformedReaction = domain.ErrMalformedReaction
	ErrUnbalanceable     = domain.ErrUnbalanceable
	ErrScaling           = domain.ErrScaling
)

// Balance balances the reaction "<term> (+ <term>)* -> <term> (+ <term>)*"
// and returns the minimal coprime positive integer coefficients.
func Balance(reaction string) (BalancedReaction, error) {
	return balancer.New().Balance(reaction)
}

// BalanceWithLogger is Balance with pipeline stages logged at debug level.
func BalanceWithLogger(reaction string, logger log.Logger) (BalancedReaction, error) {
	return balancer.New(balancer.WithLogger(logger)).Balance(reaction)
}

// ParseFormula parses a single compound formula such as "K4Fe(SCN)6" into
// its element counts.
func ParseFormula(f string) (ElementCounts, error) {
	return formula.Parse(f)
}
