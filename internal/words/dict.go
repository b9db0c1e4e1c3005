package words

import (
	"bufio"
	"os"
	"strings"
)

// LoadDict reads a dictionary file with one word per line, returning the
// words trimmed and lowercased. Blank lines are skipped.
func LoadDict(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dict []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		dict = append(dict, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}
