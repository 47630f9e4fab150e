package rumble

import (
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/core"
)

// DropKind identifies a power-up type.
type DropKind int

const (
	DropRepair DropKind = iota
	DropRapid
	DropTriple
	DropShield
	dropKindCount
)

// String returns the HUD label for a drop kind.
func (k DropKind) String() string {
	switch k {
	case DropRepair:
		return "Repair"
	case DropRapid:
		return "Rapid Fire"
	case DropTriple:
		return "Triple Shot"
	case DropShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// drop is a power-up floating where an enemy died.
type drop struct {
	Kind DropKind
	X, Y float64
	age  int
	max  int
}

func (d drop) rect() core.Rect {
	return core.NewRect(int(d.X), int(d.Y), 1, 1)
}

func (d drop) render(dst *core.Screen) {
	// Blink during the last second of lifetime
	if d.max-d.age < 60 && (d.age/6)%2 == 0 {
		return
	}

	var r rune
	var c core.Color
	switch d.Kind {
	case DropRepair:
		r, c = '+', core.ColorBrightGreen
	case DropRapid:
		r, c = '»', core.ColorBrightYellow
	case DropTriple:
		r, c = '≡', core.ColorBrightMagenta
	case DropShield:
		r, c = '◉', core.ColorBrightCyan
	}
	dst.SetCell(int(d.X), int(d.Y), r, c)
}

// maybeDrop rolls for a power-up drop at the position of a kill.
func (g *Game) maybeDrop(x, y float64) {
	if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	g.drops = append(g.drops, drop{
		Kind: randomDropKind(g.rng),
		X:    x,
		Y:    y,
		max:  g.cfg.PowerUps.Lifetime,
	})
}

func randomDropKind(rng *rand.Rand) DropKind {
	return DropKind(rng.Intn(int(dropKindCount)))
}

// updateDrops drifts drops left and expires the stale ones.
func (g *Game) updateDrops() {
	kept := g.drops[:0]
	for _, d := range g.drops {
		d.X -= 0.1
		d.age++
		if d.age >= d.max || d.X < 0 {
			continue
		}
		kept = append(kept, d)
	}
	g.drops = kept
}

// applyDrop activates a collected power-up.
func (g *Game) applyDrop(kind DropKind) {
	switch kind {
	case DropRepair:
		g.health += g.cfg.PowerUps.RepairAmount
		if g.health > g.cfg.Player.MaxHealth {
			g.health = g.cfg.Player.MaxHealth
		}
	case DropRapid:
		g.rapidTicks = g.cfg.PowerUps.RapidDuration
	case DropTriple:
		g.tripleTicks = g.cfg.PowerUps.TripleDuration
	case DropShield:
		g.shieldTicks = g.cfg.PowerUps.ShieldDuration
	}
}

// star is one dot of the parallax backdrop.
type star struct {
	X, Y  float64
	speed float64
	layer int
}

func makeStars(rng *rand.Rand, w, h int) []star {
	stars := make([]star, 0, 60)
	for layer := 0; layer < 3; layer++ {
		for i := 0; i < 20; i++ {
			stars = append(stars, star{
				X:     rng.Float64() * float64(w),
				Y:     float64(hudRows) + rng.Float64()*float64(h-hudRows),
				speed: 0.05 + float64(layer)*0.05,
				layer: layer,
			})
		}
	}
	return stars
}

func (g *Game) updateStars() {
	w := float64(g.rt.ScreenW)
	for i := range g.stars {
		g.stars[i].X -= g.stars[i].speed
		if g.stars[i].X < 0 {
			g.stars[i].X += w
		}
	}
}

func (g *Game) renderStars(dst *core.Screen) {
	for _, s := range g.stars {
		r := '·'
		c := core.ColorGray
		if s.layer == 2 {
			r = '•'
			c = core.ColorWhite
		}
		dst.SetCell(int(s.X), int(s.Y), r, c)
	}
}
