package solver

import (
	"fmt"
	"math"
	"math/big"

	"github.com/atpage/chembal/internal/domain"
	"github.com/atpage/chembal/internal/matrix"
)

// Scale converts an exact rational coefficient vector into the minimal
// coprime positive integers: clear denominators with their least common
// multiple, then divide by the greatest common divisor of all entries.
// The gcd of the result is 1 and every entry is >= 1.
//
// Returns domain.ErrScaling if any entry is zero or the entries disagree
// in sign; a correctly balanced reaction has strictly positive
// coefficients up to one overall sign, and an all-negative vector is
// simply negated.
func Scale(raw []matrix.Rational) ([]int, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient vector", domain.ErrScaling)
	}

	sign := raw[0].Sign()
	for i, r := range raw {
		if r.IsZero() {
			return nil, fmt.Errorf("%w: coefficient %d is zero", domain.ErrScaling, i)
		}
		if r.Sign() != sign {
			return nil, fmt.Errorf("%w: coefficients disagree in sign", domain.ErrScaling)
		}
	}

	lcm := big.NewInt(1)
	for _, r := range raw {
		d := r.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}

	ints := make([]*big.Int, len(raw))
	for i, r := range raw {
		q := new(big.Int).Div(lcm, r.Denom())
		ints[i] = new(big.Int).Mul(r.Num(), q)
	}

	g := new(big.Int).Abs(ints[0])
	for _, v := range ints[1:] {
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
	}
	for _, v := range ints {
		v.Div(v, g)
		if sign < 0 {
			v.Neg(v)
		}
	}

	out := make([]int, len(ints))
	for i, v := range ints {
		if !v.IsInt64() || v.Int64() > math.MaxInt {
			return nil, fmt.Errorf("%w: coefficient %d overflows int", domain.ErrScaling, i)
		}
		out[i] = int(v.Int64())
	}
	return out, nil
}
