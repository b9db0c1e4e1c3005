// Package balancer orchestrates the balancing pipeline: reaction text is
// parsed into compounds, the compounds into a stoichiometry matrix, the
// matrix into an exact rational solution, and the solution into minimal
// integer coefficients zipped back onto the original formulas.
package balancer

import (
	"fmt"

	"github.com/atpage/chembal/internal/domain"
	"github.com/atpage/chembal/internal/formula"
	"github.com/atpage/chembal/internal/matrix"
	"github.com/atpage/chembal/internal/reaction"
	"github.com/atpage/chembal/internal/solver"
	"github.com/atpage/chembal/pkg/log"
)

// Balancer balances chemical reactions. It holds no per-request state;
// one Balancer may be shared by any number of goroutines.
type Balancer struct {
	log log.Logger
}

// Option configures optional behavior of a Balancer.
type Option func(*Balancer)

// WithLogger sets a logger for pipeline observation. If not provided, a
// no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(b *Balancer) {
		b.log = logger
	}
}

// New creates a Balancer.
func New(opts ...Option) *Balancer {
	b := &Balancer{log: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Balance computes the minimal integer coefficients for the given
// reaction text. The first failing stage short-circuits the pipeline;
// its error is returned unchanged and can be classified with errors.Is
// against the domain error kinds.
func (b *Balancer) Balance(reactionText string) (domain.BalancedReaction, error) {
	var balanced domain.BalancedReaction

	reactantTerms, productTerms, err := reaction.Parse(reactionText)
	if err != nil {
		return balanced, err
	}
	b.log.Debug("parsed reaction",
		log.Int("reactants", len(reactantTerms)),
		log.Int("products", len(productTerms)))

	rx, err := parseCompounds(reactantTerms, productTerms)
	if err != nil {
		return balanced, err
	}

	m := matrix.Build(rx)
	b.log.Debug("built stoichiometry matrix",
		log.Int("elements", m.Rows()),
		log.Int("compounds", m.Cols()))

	raw, err := solver.Solve(m)
	if err != nil {
		return balanced, err
	}

	coeffs, err := solver.Scale(raw)
	if err != nil {
		return balanced, err
	}
	b.log.Debug("scaled coefficients", log.Any("coefficients", coeffs))

	balanced.Reactants = zipTerms(coeffs[:len(rx.Reactants)], rx.Reactants)
	balanced.Products = zipTerms(coeffs[len(rx.Reactants):], rx.Products)
	return balanced, nil
}

// parseCompounds parses every formula on both sides, attaching the
// offending formula to parse failures.
func parseCompounds(reactantTerms, productTerms []string) (domain.Reaction, error) {
	var rx domain.Reaction
	var err error
	if rx.Reactants, err = parseSide(reactantTerms); err != nil {
		return rx, err
	}
	if rx.Products, err = parseSide(productTerms); err != nil {
		return rx, err
	}
	return rx, nil
}

func parseSide(terms []string) ([]domain.Compound, error) {
	compounds := make([]domain.Compound, len(terms))
	for i, term := range terms {
		counts, err := formula.Parse(term)
		if err != nil {
			return nil, err
		}
		if len(counts) == 0 {
			return nil, fmt.Errorf("%w: formula %q contains no elements", domain.ErrMalformedFormula, term)
		}
		compounds[i] = domain.Compound{Formula: term, Counts: counts}
	}
	return compounds, nil
}

func zipTerms(coeffs []int, compounds []domain.Compound) []domain.Term {
	terms := make([]domain.Term, len(compounds))
	for i, c := range compounds {
		terms[i] = domain.Term{Coefficient: coeffs[i], Formula: c.Formula}
	}
	return terms
}
