// Package words finds the dictionary words that can be spelled from a set
// of letters. It is a companion utility, composed by the CLI and never
// imported by the balancing pipeline.
package words

import "strings"

// CanSpell reports whether word can be spelled using only the given
// letters. Matching is case-insensitive. By default each letter may be
// used at most as many times as it appears; allowRepeats lifts that
// limit.
func CanSpell(letters, word string, allowRepeats bool) bool {
	available := map[rune]int{}
	for _, r := range strings.ToLower(letters) {
		available[r]++
	}
	for _, r := range strings.ToLower(word) {
		if available[r] == 0 {
			return false
		}
		if !allowRepeats {
			available[r]--
		}
	}
	return true
}

// Match returns the words in dictionary that can be spelled using only
// letters, in dictionary order.
func Match(letters string, dictionary []string, allowRepeats bool) []string {
	var results []string
	for _, word := range dictionary {
		if CanSpell(letters, word, allowRepeats) {
			results = append(results, word)
		}
	}
	return results
}
