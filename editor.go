package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"nounquest/internal/attack"
	"nounquest/internal/hud"
)

type editorAction int

const (
	editorNone editorAction = iota
	editorSubmit
	editorClose
)

const lineHeight = 16

// editor is the modal code editor opened from the Challenge scene
type editor struct {
	open  bool
	buf   *hud.Buffer
	chars []rune
	ticks int
}

func newEditor() *editor {
	return &editor{buf: hud.NewBuffer(attack.Template)}
}

func (e *editor) Show() {
	e.open = true
	e.ticks = 0
}

func (e *editor) Close() { e.open = false }

func (e *editor) Open() bool { return e.open }

func (e *editor) Source() string { return e.buf.String() }

// Update consumes this frame's keyboard input
func (e *editor) Update() editorAction {
	e.ticks++

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return editorClose
	case inpututil.IsKeyJustPressed(ebiten.KeyF5), ctrl && enter:
		return editorSubmit
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.buf.Reset(attack.Template)
		return editorNone
	}

	e.chars = ebiten.AppendInputChars(e.chars[:0])
	e.buf.Insert(e.chars...)
	if repeating(ebiten.KeyEnter) || repeating(ebiten.KeyKPEnter) {
		e.buf.Insert('\n')
	}
	if repeating(ebiten.KeyTab) {
		e.buf.Insert('\t')
	}
	if repeating(ebiten.KeyBackspace) {
		e.buf.Backspace()
	}
	return editorNone
}

func repeating(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (e *editor) Draw(screen *ebiten.Image) {
	if !e.open {
		return
	}
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	rect(screen, 0, 0, sw, sh, color.RGBA{0, 0, 0, 0x80})

	w, h := sw*0.8, sh*0.8
	x, y := (sw-w)/2, (sh-h)/2
	rect(screen, x, y, w, h, color.RGBA{0x1E, 0x1E, 0x1E, 0xF0})
	rect(screen, x, y, w, 28, color.RGBA{0x33, 0x33, 0x33, 0xFF})

	face := basicfont.Face7x13
	text.Draw(screen, "Code Challenge", face, int(x)+12, int(y)+19, color.White)
	text.Draw(screen, "[Esc] close", face, int(x+w)-90, int(y)+19, color.White)

	rows := int((h-70)/lineHeight)
	lines := e.buf.Tail(rows)
	if e.ticks/30%2 == 0 {
		lines[len(lines)-1] += "_"
	}
	for i, line := range lines {
		text.Draw(screen, line, face, int(x)+16, int(y)+50+i*lineHeight, color.RGBA{0xD4, 0xD4, 0xD4, 0xFF})
	}

	text.Draw(screen, "Ctrl+Enter or F5 to attack, Ctrl+R to reset", face, int(x)+16, int(y+h)-12, color.RGBA{0x9C, 0xDC, 0xFE, 0xFF})
}
