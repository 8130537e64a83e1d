package dialogue

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{"empty", "", 10, nil},
		{"only spaces", "   \t\n ", 10, nil},
		{"fits in one", "Welcome to the game!", 60, []string{"Welcome to the game!"}},
		{"exact boundary", "abcd efgh", 9, []string{"abcd efgh"}},
		{"one over boundary", "abcd efghi", 9, []string{"abcd", "efghi"}},
		{"oversized word alone", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"collapses whitespace", "one   two\tthree", 20, []string{"one two three"}},
		{"zero width treated as one", "a b", 0, []string{"a", "b"}},
		{
			"challenge line",
			"An evil monster appears and challenges you with a coding puzzle. Solve it to advance!",
			60,
			[]string{
				"An evil monster appears and challenges you with a coding",
				"puzzle. Solve it to advance!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text, tt.maxWidth))
		})
	}
}

func TestSplitKeepsWordsWholeAndBounded(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog while the tower hums quietly",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh",
		"ünïcödé wörds cöunt by rüne nöt byte",
		"x",
	}

	for _, text := range texts {
		for width := 1; width <= 24; width++ {
			chunks := Split(text, width)
			words := strings.Fields(text)

			assert.Equal(t, strings.Join(words, " "), strings.Join(chunks, " "), "round trip at width %d", width)

			var rebuilt []string
			for _, c := range chunks {
				cw := strings.Fields(c)
				rebuilt = append(rebuilt, cw...)
				if utf8.RuneCountInString(c) > width {
					assert.Len(t, cw, 1, "oversized chunk %q must be a single word", c)
				}
			}
			assert.Equal(t, words, rebuilt, "no word split at width %d", width)
		}
	}
}
