package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCanSpell(t *testing.T) {
	tests := []struct {
		name         string
		letters      string
		word         string
		allowRepeats bool
		want         bool
	}{
		{name: "exact letters", letters: "wdro", word: "word", want: true},
		{name: "subset of letters", letters: "wdrox", word: "row", want: true},
		{name: "missing letter", letters: "wdro", word: "words", want: false},
		{name: "letter used twice without repeats", letters: "wdro", word: "door", want: false},
		{name: "letter used twice with repeats", letters: "wdro", word: "door", allowRepeats: true, want: true},
		{name: "duplicate letters available", letters: "odor", word: "door", want: true},
		{name: "case-insensitive", letters: "WDRO", word: "Word", want: true},
		{name: "empty word", letters: "abc", word: "", want: true},
		{name: "empty letters", letters: "", word: "a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanSpell(tt.letters, tt.word, tt.allowRepeats)
			if got != tt.want {
				t.Errorf("CanSpell(%q, %q, %v) = %v, want %v", tt.letters, tt.word, tt.allowRepeats, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	dict := []string{"word", "row", "door", "rod", "zebra"}

	got := Match("wdro", dict, false)
	want := []string{"word", "row", "rod"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %v, want %v", got, want)
	}

	got = Match("wdro", dict, true)
	want = []string{"word", "row", "door", "rod"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match with repeats = %v, want %v", got, want)
	}
}

func TestLoadDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "Word\n\n  ROW  \ndoor\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDict(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"word", "row", "door"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadDict = %v, want %v", got, want)
	}

	if _, err := LoadDict(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
