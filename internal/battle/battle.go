// Package battle animates a verified attack: bolts fly from the hero to the
// monster and chip away at its health.
package battle

import (
	"math"

	"nounquest/internal/attack"
)

const (
	boltSpeed = 400 // px/sec
	hitRadius = 18
)

type Vec struct{ X, Y float64 }

type Monster struct {
	Pos   Vec
	HP    float64
	MaxHP float64
}

// Health is the remaining fraction of MaxHP in [0, 1]
func (m *Monster) Health() float64 {
	if m.MaxHP <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, m.HP/m.MaxHP))
}

func (m *Monster) Defeated() bool { return m.HP <= 0 }

type Bolt struct {
	X, Y    float64
	Tx, Ty  float64
	Speed   float64
	Damage  float64
	Element attack.Element
}

// Field holds the monster and the bolts in flight
type Field struct {
	Monster *Monster
	Bolts   []*Bolt
}

func NewField(monster Vec, hp float64) *Field {
	return &Field{Monster: &Monster{Pos: monster, HP: hp, MaxHP: hp}}
}

// Strike launches one bolt per element with non-zero power, staggered so
// they do not overlap on screen.
func (f *Field) Strike(from Vec, rec attack.Record) int {
	n := 0
	for _, e := range attack.Elements {
		p := rec.Power(e)
		if p == 0 {
			continue
		}
		back := float64(n) * 30
		f.Bolts = append(f.Bolts, &Bolt{
			X:       from.X - back,
			Y:       from.Y + back/2,
			Tx:      f.Monster.Pos.X,
			Ty:      f.Monster.Pos.Y,
			Speed:   boltSpeed,
			Damage:  float64(p),
			Element: e,
		})
		n++
	}
	return n
}

// Update moves the bolts by dt milliseconds and applies those that land
func (f *Field) Update(dt float64) {
	for i := len(f.Bolts) - 1; i >= 0; i-- {
		b := f.Bolts[i]
		dx := b.Tx - b.X
		dy := b.Ty - b.Y
		d := math.Hypot(dx, dy)
		move := b.Speed * dt / 1000.0
		if d <= move || d == 0 {
			if dist(Vec{b.Tx, b.Ty}, f.Monster.Pos) < hitRadius {
				f.Monster.HP = math.Max(0, f.Monster.HP-b.Damage)
			}
			f.Bolts = append(f.Bolts[:i], f.Bolts[i+1:]...)
			continue
		}
		b.X += dx / d * move
		b.Y += dy / d * move
	}
}

// Idle reports whether no bolt is in flight
func (f *Field) Idle() bool { return len(f.Bolts) == 0 }

func dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
