// Package dialogue splits narrative text into box-sized chunks and reveals
// them one character at a time.
package dialogue

import (
	"strings"
	"unicode/utf8"
)

// Split packs the words of text into chunks no wider than maxWidth runes.
// Words are never broken: a word wider than maxWidth becomes a chunk of its own.
// Runs of whitespace collapse, so joining the result with single spaces
// yields the normalized text.
func Split(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	for _, word := range strings.Fields(text) {
		wl := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+wl > maxWidth {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wl
	}

	if curLen > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
