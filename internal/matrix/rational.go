package matrix

import "math/big"

// Rational is an exact rational number. Using exact arithmetic end to end
// keeps the solver free of pivot tolerances and rounding drift.
type Rational struct{ *big.Rat }

// NewInt returns n as a Rational.
func NewInt(n int64) Rational { return Rational{big.NewRat(n, 1)} }

// NewFrac returns a/b as a Rational. b must be nonzero.
func NewFrac(a, b int64) Rational { return Rational{big.NewRat(a, b)} }

// Zero returns the rational 0.
func Zero() Rational { return NewInt(0) }

// One returns the rational 1.
func One() Rational { return NewInt(1) }

func (r Rational) Add(o Rational) Rational { return Rational{new(big.Rat).Add(r.Rat, o.Rat)} }
func (r Rational) Sub(o Rational) Rational { return Rational{new(big.Rat).Sub(r.Rat, o.Rat)} }
func (r Rational) Mul(o Rational) Rational { return Rational{new(big.Rat).Mul(r.Rat, o.Rat)} }
func (r Rational) Div(o Rational) Rational { return Rational{new(big.Rat).Quo(r.Rat, o.Rat)} }
func (r Rational) Neg() Rational           { return Rational{new(big.Rat).Neg(r.Rat)} }
func (r Rational) IsZero() bool            { return r.Sign() == 0 }
func (r Rational) Equal(o Rational) bool   { return r.Cmp(o.Rat) == 0 }
func (r Rational) String() string          { return r.Rat.RatString() }
