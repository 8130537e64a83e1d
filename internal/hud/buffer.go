package hud

import "strings"

// Buffer is the editor's text, edited at the end only
type Buffer struct {
	runes []rune
}

// NewBuffer creates a buffer holding s
func NewBuffer(s string) *Buffer {
	return &Buffer{runes: []rune(s)}
}

// Insert appends rs; carriage returns are dropped and tabs become two spaces
func (b *Buffer) Insert(rs ...rune) {
	for _, r := range rs {
		switch r {
		case '\r':
		case '\t':
			b.runes = append(b.runes, ' ', ' ')
		default:
			b.runes = append(b.runes, r)
		}
	}
}

// Backspace removes the last rune
func (b *Buffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Reset replaces the content with s
func (b *Buffer) Reset(s string) {
	b.runes = []rune(s)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

// Tail returns the last n lines, for drawing a view that follows the end
func (b *Buffer) Tail(n int) []string {
	lines := strings.Split(b.String(), "\n")
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
