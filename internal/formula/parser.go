// Package formula parses chemical formula text into element counts.
package formula

import (
	"fmt"
	"strconv"

	"github.com/atpage/chembal/internal/domain"
)

// Parse converts a compound formula such as "Cu(NO3)2" or "K4Fe(SCN)6"
// into its element counts. Nested parenthesized groups are supported to
// arbitrary depth; every closing parenthesis must be followed by at least
// one multiplier digit. Counts for a symbol appearing more than once
// ("HC2H2O2") accumulate.
//
// Returns domain.ErrMalformedFormula for characters outside [A-Za-z0-9()],
// unmatched parentheses, or a group without a multiplier.
func Parse(formula string) (domain.ElementCounts, error) {
	// One frame per open group; frame 0 is the top level.
	stack := []domain.ElementCounts{make(domain.ElementCounts)}

	i := 0
	for i < len(formula) {
		c := formula[i]
		switch {
		case c == '(':
			stack = append(stack, make(domain.ElementCounts))
			i++

		case c == ')':
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: unmatched ')' at position %d in %q", domain.ErrMalformedFormula, i, formula)
			}
			i++
			mult, width, err := parseCount(formula, i)
			if err != nil {
				return nil, err
			}
			if width == 0 {
				return nil, fmt.Errorf("%w: group ending at position %d in %q has no multiplier", domain.ErrMalformedFormula, i-1, formula)
			}
			i += width
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			for sym, n := range group {
				parent[sym] += n * mult
			}

		case isUpper(c):
			sym, count, width, err := parseToken(formula, i)
			if err != nil {
				return nil, err
			}
			i += width
			stack[len(stack)-1][sym] += count

		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d in %q", domain.ErrMalformedFormula, c, i, formula)
		}
	}

	if len(stack) > 1 {
		return nil, fmt.Errorf("%w: unmatched '(' in %q", domain.ErrMalformedFormula, formula)
	}

	counts := stack[0]
	// An explicit zero count ("H0", or a group multiplied by 0) means the
	// element is absent; drop it to keep the every-count-positive invariant.
	for sym, n := range counts {
		if n == 0 {
			delete(counts, sym)
		}
	}
	return counts, nil
}

// parseToken reads one element token at offset i: an uppercase letter,
// zero or more lowercase letters, and an optional explicit count.
func parseToken(s string, i int) (sym string, count, width int, err error) {
	start := i
	i++ // uppercase letter already checked
	for i < len(s) && isLower(s[i]) {
		i++
	}
	sym = s[start:i]

	count, cw, err := parseCount(s, i)
	if err != nil {
		return "", 0, 0, err
	}
	if cw == 0 {
		count = 1
	}
	return sym, count, i - start + cw, nil
}

// parseCount reads a maximal digit run at offset i. width is 0 when no
// digits are present.
func parseCount(s string, i int) (count, width int, err error) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i {
		return 0, 0, nil
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: count %q in %q is out of range", domain.ErrMalformedFormula, s[i:j], s)
	}
	return n, j - i, nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
