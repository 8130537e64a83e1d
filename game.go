package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"nounquest/internal/attack"
	"nounquest/internal/battle"
	"nounquest/internal/clock"
	"nounquest/internal/eventbus"
	"nounquest/internal/hud"
	"nounquest/internal/scene"
	"nounquest/internal/submit"
)

const (
	fadeIn    = 2 * time.Second
	monsterHP = 40
)

// settlement carries a finished submission back to the game loop
type settlement struct {
	record  attack.Record
	outcome submit.Outcome
}

type Game struct {
	width, height int

	logger   *zap.Logger
	clk      clock.Clock
	bus      *eventbus.Bus
	scenes   *scene.Machine
	workflow *submit.Workflow
	toasts   *hud.Toasts
	editor   *editor
	art      *images
	field    *battle.Field

	ctx     context.Context
	cancel  context.CancelFunc
	settled chan settlement
	hostSub eventbus.Subscription
	last    time.Time
}

func NewGame(width, height int, logger *zap.Logger, clk clock.Clock, bus *eventbus.Bus, scenes *scene.Machine, wf *submit.Workflow, toasts *hud.Toasts) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		width:    width,
		height:   height,
		logger:   logger.Named("Game"),
		clk:      clk,
		bus:      bus,
		scenes:   scenes,
		workflow: wf,
		toasts:   toasts,
		editor:   newEditor(),
		art:      newImages(logger),
		field:    battle.NewField(battle.Vec{X: float64(width)/2 + 60, Y: float64(height)/2 - 90}, monsterHP),
		ctx:      ctx,
		cancel:   cancel,
		settled:  make(chan settlement, 1),
		last:     clk.Now(),
	}
	g.hostSub = bus.Subscribe(eventbus.OpenChallengeEditor, func(any) {
		g.logger.Debug("Challenge editor opened")
		g.editor.Show()
	})
	scenes.Start()
	return g
}

// Close tears the scenes down and cancels an in-flight submission
func (g *Game) Close() {
	g.cancel()
	g.scenes.Teardown()
	g.bus.Unsubscribe(g.hostSub)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	now := g.clk.Now()
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now

	g.drainSettled()

	if g.editor.Open() {
		switch g.editor.Update() {
		case editorSubmit:
			g.submit(g.editor.Source())
		case editorClose:
			g.editor.Close()
		}
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyA) {
			g.scenes.Advance()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
			g.scenes.Confirm()
		}
	}

	g.scenes.Update()
	g.field.Update(dt)
	return nil
}

func (g *Game) submit(source string) {
	rec := attack.Extract(source)
	if g.workflow.InFlight() {
		g.toasts.Push("An attack is already on its way", hud.LevelInfo)
		return
	}
	g.editor.Close()

	go func() {
		out, err := g.workflow.Submit(g.ctx, rec)
		if errors.Is(err, submit.ErrSubmissionInProgress) {
			g.toasts.Push("An attack is already on its way", hud.LevelInfo)
			return
		}
		select {
		case g.settled <- settlement{record: rec, outcome: out}:
		case <-g.ctx.Done():
		}
	}()
}

// drainSettled publishes finished submissions on the loop goroutine
func (g *Game) drainSettled() {
	for {
		select {
		case s := <-g.settled:
			if s.outcome.OK() {
				g.field.Strike(g.heroPos(), s.record)
			}
			g.bus.Publish(eventbus.SubmissionSettled, s.outcome)
		default:
			return
		}
	}
}

func (g *Game) heroPos() battle.Vec {
	return battle.Vec{X: 120, Y: float64(g.height)/2 - 90}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	script := g.scenes.Script()

	screen.Fill(color.RGBA{0x1B, 0x2A, 0x1F, 0xFF})
	if bg := g.art.get(script.Background); bg != nil {
		drawCover(screen, bg)
	}
	if ch := g.art.get(script.Character); ch != nil {
		drawFitted(screen, ch, w/2-60, h/2-200, 140, 140)
	}

	if g.scenes.Scene() == scene.Challenge {
		g.drawBattle(screen)
	}

	// dialogue box
	rect(screen, 50, h/2-50, 700, 100, color.RGBA{0, 0, 0, 0xCC})
	face := basicfont.Face7x13
	text.Draw(screen, g.scenes.Text(), face, 60, int(h/2)-20, color.White)
	if p := g.scenes.Prompt(); p != "" {
		text.Draw(screen, p, face, 60, int(h/2)+30, color.RGBA{0xFF, 0xCC, 0x00, 0xFF})
	} else if g.scenes.Phase() == scene.AwaitingAdvance {
		text.Draw(screen, "[A] continue", face, 660, int(h/2)+30, color.RGBA{0xAA, 0xAA, 0xAA, 0xFF})
	}

	if since := g.clk.Now().Sub(g.scenes.EnteredAt()); since < fadeIn {
		a := 1 - float64(since)/float64(fadeIn)
		rect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, uint8(a * 0xFF)})
	}

	g.editor.Draw(screen)
	g.drawToasts(screen)
}

func (g *Game) drawBattle(screen *ebiten.Image) {
	m := g.field.Monster
	barW := 80.0
	rect(screen, m.Pos.X-barW/2, m.Pos.Y-120, barW, 6, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	rect(screen, m.Pos.X-barW/2, m.Pos.Y-120, barW*m.Health(), 6, color.RGBA{0x5C, 0xB8, 0x5C, 0xFF})
	label := fmt.Sprintf("%.0f/%.0f", m.HP, m.MaxHP)
	if m.Defeated() {
		label = "defeated"
	}
	text.Draw(screen, label, basicfont.Face7x13, int(m.Pos.X+barW/2)+6, int(m.Pos.Y)-113, color.White)

	for _, b := range g.field.Bolts {
		fillCircle(screen, b.X, b.Y, 6, elementColors[b.Element])
	}
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	face := basicfont.Face7x13
	x := float64(g.width) - 310
	for i, t := range g.toasts.Active() {
		y := 10 + float64(i)*30
		c := color.RGBA{0x2B, 0x6C, 0xB0, 0xE0}
		switch t.Level {
		case hud.LevelSuccess:
			c = color.RGBA{0x3C, 0x8D, 0x3C, 0xE0}
		case hud.LevelError:
			c = color.RGBA{0xB0, 0x3A, 0x2E, 0xE0}
		}
		rect(screen, x, y, 300, 24, c)
		text.Draw(screen, hud.Clip(t.Text, 41), face, int(x)+8, int(y)+16, color.White)
	}
}
