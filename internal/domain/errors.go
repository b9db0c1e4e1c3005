package domain

import "errors"

// Domain errors represent the terminal failure kinds of a balancing request.
// They are returned by the public API and can be checked with errors.Is;
// callers can rely on them to tell bad input syntax apart from reactions
// that are genuinely impossible to balance.
var (
	// ErrMalformedFormula is returned when a compound formula contains
	// invalid characters, an unmatched parenthesis, or a parenthesized
	// group without a trailing multiplier.
	ErrMalformedFormula = errors.New("chembal: malformed formula")

	// ErrMalformedReaction is returned when a reaction string does not
	// contain exactly one arrow, or a side has an empty compound term.
	ErrMalformedReaction = errors.New("chembal: malformed reaction")

	// ErrUnbalanceable is returned when the element equations admit no
	// unique-up-to-scale nontrivial solution.
	ErrUnbalanceable = errors.New("chembal: reaction cannot be balanced")

	// ErrScaling is returned when the raw solution cannot be scaled to
	// positive integers (a zero or sign-inconsistent coefficient).
	ErrScaling = errors.New("chembal: cannot scale coefficients")
)
