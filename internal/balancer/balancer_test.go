package balancer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atpage/chembal/internal/domain"
	"github.com/atpage/chembal/internal/formula"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		reaction string
		want     []int
	}{
		{
			name:     "identity",
			reaction: "H2O -> H2O",
			want:     []int{1, 1},
		},
		{
			name:     "water synthesis",
			reaction: "H2 + O2 -> H2O",
			want:     []int{2, 1, 2},
		},
		{
			name:     "butane combustion",
			reaction: "C4H10 + O2 -> CO2 + H2O",
			want:     []int{2, 13, 8, 10},
		},
		{
			name:     "iron oxidation",
			reaction: "Fe + O2 -> Fe2O3",
			want:     []int{4, 3, 2},
		},
		{
			name:     "copper nitrate decomposition",
			reaction: "Cu(NO3)2 -> CuO + NO2 + O2",
			want:     []int{2, 2, 4, 1},
		},
		{
			name:     "nine-compound redox",
			reaction: "K4Fe(SCN)6 + K2Cr2O7 + H2SO4 -> Fe2(SO4)3 + Cr2(SO4)3 + CO2 + H2O + K2SO4 + KNO3",
			want:     []int{6, 97, 355, 3, 97, 36, 355, 91, 36},
		},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Balance(tt.reaction)
			if err != nil {
				t.Fatalf("Balance(%q) error: %v", tt.reaction, err)
			}
			if coeffs := got.Coefficients(); !reflect.DeepEqual(coeffs, tt.want) {
				t.Errorf("coefficients = %v, want %v", coeffs, tt.want)
			}
			checkConservation(t, tt.reaction, got)
			checkMinimal(t, got.Coefficients())
		})
	}
}

// checkConservation verifies that every element's weighted atom total is
// equal on both sides of the balanced reaction.
func checkConservation(t *testing.T, reactionText string, b domain.BalancedReaction) {
	t.Helper()
	totals := map[string]int{}
	for _, term := range b.Reactants {
		counts, err := formula.Parse(term.Formula)
		if err != nil {
			t.Fatal(err)
		}
		for sym, n := range counts {
			totals[sym] += term.Coefficient * n
		}
	}
	for _, term := range b.Products {
		counts, err := formula.Parse(term.Formula)
		if err != nil {
			t.Fatal(err)
		}
		for sym, n := range counts {
			totals[sym] -= term.Coefficient * n
		}
	}
	for sym, total := range totals {
		if total != 0 {
			t.Errorf("%s not conserved in %q: residual %d", sym, reactionText, total)
		}
	}
}

// checkMinimal verifies the coefficients are positive with gcd 1.
func checkMinimal(t *testing.T, coeffs []int) {
	t.Helper()
	g := 0
	for _, c := range coeffs {
		if c < 1 {
			t.Fatalf("coefficient %d is not positive", c)
		}
		g = gcd(g, c)
	}
	if g != 1 {
		t.Errorf("coefficients %v have gcd %d, want 1", coeffs, g)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestBalanceErrors(t *testing.T) {
	tests := []struct {
		name     string
		reaction string
		want     error
	}{
		{
			name:     "missing arrow",
			reaction: "H2 + O2",
			want:     domain.ErrMalformedReaction,
		},
		{
			name:     "empty product term",
			reaction: "H2 + O2 -> ",
			want:     domain.ErrMalformedReaction,
		},
		{
			name:     "unmatched parenthesis",
			reaction: "Cu(NO3 -> CuO",
			want:     domain.ErrMalformedFormula,
		},
		{
			name:     "group without multiplier",
			reaction: "Cu(NO3) -> CuO",
			want:     domain.ErrMalformedFormula,
		},
		{
			name:     "formula with no elements",
			reaction: "H0 -> H2",
			want:     domain.ErrMalformedFormula,
		},
		{
			name:     "contradictory elements",
			reaction: "H2 -> O2",
			want:     domain.ErrUnbalanceable,
		},
		{
			name:     "mixed independent reactions",
			reaction: "C + O2 + H2 -> CO2 + H2O",
			want:     domain.ErrUnbalanceable,
		},
		{
			name:     "sign-inconsistent solution",
			reaction: "X + X2 -> Y",
			want:     domain.ErrScaling,
		},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Balance(tt.reaction)
			if !errors.Is(err, tt.want) {
				t.Errorf("Balance(%q) error = %v, want %v", tt.reaction, err, tt.want)
			}
		})
	}
}

func TestBalanceRendering(t *testing.T) {
	b := New()
	got, err := b.Balance("H2 + O2 -> H2O")
	if err != nil {
		t.Fatal(err)
	}
	if s := got.String(); s != "2 H2 + 1 O2 -> 2 H2O" {
		t.Errorf("String() = %q", s)
	}
}
