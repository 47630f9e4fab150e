package brawl

import (
	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
)

type attackKind int

const (
	attackNone attackKind = iota
	attackJab
	attackKick
)

// animTicks is how long a landed swing stays visible.
const animTicks = 6

// Fighter is one combatant on the floor line. Position is horizontal
// only; both fighters stand at the same height.
type Fighter struct {
	X      float64
	Facing int // +1 faces right, -1 faces left
	Health int

	jabTimer   int
	kickTimer  int
	guardTimer int // remaining active guard window
	guardRest  int // cooldown before guarding again

	anim     attackKind
	animLeft int
}

func newFighter(x float64, facing int, health int) *Fighter {
	return &Fighter{X: x, Facing: facing, Health: health}
}

// respawn restores the fighter for a new round, keeping nothing from
// the previous one.
func (f *Fighter) respawn(x float64, health int) {
	f.X = x
	f.Health = health
	f.jabTimer, f.kickTimer = 0, 0
	f.guardTimer, f.guardRest = 0, 0
	f.anim, f.animLeft = attackNone, 0
}

// tick counts down cooldowns and animation timers.
func (f *Fighter) tick() {
	if f.jabTimer > 0 {
		f.jabTimer--
	}
	if f.kickTimer > 0 {
		f.kickTimer--
	}
	if f.guardTimer > 0 {
		f.guardTimer--
	} else if f.guardRest > 0 {
		f.guardRest--
	}
	if f.animLeft > 0 {
		f.animLeft--
		if f.animLeft == 0 {
			f.anim = attackNone
		}
	}
}

func (f *Fighter) guarding() bool {
	return f.guardTimer > 0
}

// beginGuard opens the guard window if it is off cooldown.
func (f *Fighter) beginGuard(cfg config.BrawlFighter) bool {
	if f.guardTimer > 0 || f.guardRest > 0 {
		return false
	}
	f.guardTimer = cfg.GuardTicks
	f.guardRest = cfg.GuardCooldown
	return true
}

func (f *Fighter) canJab() bool  { return f.jabTimer == 0 }
func (f *Fighter) canKick() bool { return f.kickTimer == 0 }

// render draws the fighter as a small figure standing on floorY.
func (f *Fighter) render(dst *core.Screen, floorY int, color core.Color) {
	x := int(f.X)
	head := floorY - 2

	if f.guarding() {
		color = core.ColorBrightBlue
	}

	dst.SetCell(x, head, 'O', color)
	dst.SetCell(x, head+1, '│', color)
	dst.SetCell(x, head+2, '╨', color)

	switch f.anim {
	case attackJab:
		dst.SetCell(x+f.Facing, head+1, '─', core.ColorBrightYellow)
		dst.SetCell(x+2*f.Facing, head+1, '─', core.ColorBrightYellow)
	case attackKick:
		dst.SetCell(x+f.Facing, head+2, '━', core.ColorBrightRed)
		dst.SetCell(x+2*f.Facing, head+2, '━', core.ColorBrightRed)
		dst.SetCell(x+3*f.Facing, head+2, '━', core.ColorBrightRed)
	default:
		if f.guarding() {
			dst.SetCell(x+f.Facing, head+1, '▐', core.ColorBrightBlue)
		}
	}
}
