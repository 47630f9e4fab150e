package heist

import (
	"math"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
)

const maxAlert = 100

// Guard walks a patrol loop until its alert meter fills, then chases.
type Guard struct {
	Pos     core.Point
	Facing  core.Point // unit axis vector of the last step
	Alert   float64
	Chasing bool

	route     []core.Point
	wpIndex   int
	stepTimer int
	waitTimer int
}

func newGuard(route []core.Point) *Guard {
	return &Guard{
		Pos:    route[0],
		Facing: core.Point{X: 1, Y: 0},
		route:  route,
		// start walking toward the next waypoint right away
		wpIndex: 1 % len(route),
	}
}

// sees reports whether the player is inside the vision cone with a
// clear line of sight.
func (g *Guard) sees(lv *Level, player core.Point, cfg config.HeistGuards) bool {
	dx := float64(player.X - g.Pos.X)
	dy := float64(player.Y - g.Pos.Y)
	dist := math.Hypot(dx, dy)
	if dist > float64(cfg.ViewDistance) {
		return false
	}
	if dist > 0 {
		facing := math.Atan2(float64(g.Facing.Y), float64(g.Facing.X))
		toPlayer := math.Atan2(dy, dx)
		diff := math.Abs(angleDiff(facing, toPlayer))
		if diff > cfg.ViewAngle/2*math.Pi/180 {
			return false
		}
	}
	return lv.LineOfSight(g.Pos, player)
}

// hears reports whether the player's noise carries to the guard.
// Earshot radius grows linearly with the noise level.
func (g *Guard) hears(player core.Point, noise float64, cfg config.HeistGuards) bool {
	if noise <= 0 || cfg.HearingScale <= 0 {
		return false
	}
	radius := noise / cfg.HearingScale
	dx := float64(player.X - g.Pos.X)
	dy := float64(player.Y - g.Pos.Y)
	return math.Hypot(dx, dy) <= radius
}

// perceive updates the alert meter for one tick and flips the guard
// into chase mode once the meter fills. A chasing guard never calms
// back down.
func (g *Guard) perceive(lv *Level, player core.Point, noise float64, cfg config.HeistGuards) {
	switch {
	case g.sees(lv, player, cfg):
		g.Alert += cfg.SightAlert
	case g.hears(player, noise, cfg):
		g.Alert += cfg.HearingAlert
	default:
		g.Alert -= cfg.AlertDecay
	}
	g.Alert = core.ClampF(g.Alert, 0, maxAlert)
	if g.Alert >= maxAlert {
		g.Chasing = true
	}
}

// update advances the guard by one tick. stepPeriod and chasePeriod
// arrive pre-scaled by the difficulty manager.
func (g *Guard) update(lv *Level, player core.Point, stepPeriod, chasePeriod, waitTicks int) {
	if g.Chasing {
		g.stepTimer++
		if g.stepTimer >= chasePeriod {
			g.stepTimer = 0
			g.stepToward(lv, player)
		}
		return
	}

	if g.waitTimer > 0 {
		g.waitTimer--
		return
	}

	g.stepTimer++
	if g.stepTimer < stepPeriod {
		return
	}
	g.stepTimer = 0

	target := g.route[g.wpIndex]
	if g.Pos == target {
		g.waitTimer = waitTicks
		g.wpIndex = (g.wpIndex + 1) % len(g.route)
		return
	}
	g.stepToward(lv, target)
}

// stepToward moves one cell toward target, preferring the axis with
// the larger distance and falling back to the other when blocked.
func (g *Guard) stepToward(lv *Level, target core.Point) {
	dx := sign(target.X - g.Pos.X)
	dy := sign(target.Y - g.Pos.Y)

	first := core.Point{X: dx, Y: 0}
	second := core.Point{X: 0, Y: dy}
	if core.Abs(target.Y-g.Pos.Y) > core.Abs(target.X-g.Pos.X) {
		first, second = second, first
	}

	for _, step := range []core.Point{first, second} {
		if step == (core.Point{}) {
			continue
		}
		next := g.Pos.Add(step.X, step.Y)
		if !lv.Wall(next.X, next.Y) {
			g.Pos = next
			g.Facing = step
			return
		}
	}
}

// visionCells returns the floor cells the guard can currently see,
// used to shade the cone during rendering.
func (g *Guard) visionCells(lv *Level, cfg config.HeistGuards) []core.Point {
	var cells []core.Point
	r := cfg.ViewDistance
	for y := g.Pos.Y - r; y <= g.Pos.Y+r; y++ {
		for x := g.Pos.X - r; x <= g.Pos.X+r; x++ {
			p := core.Point{X: x, Y: y}
			if p == g.Pos || lv.Wall(x, y) {
				continue
			}
			if g.sees(lv, p, cfg) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

func (g *Guard) render(dst *core.Screen, off core.Point) {
	color := core.ColorBrightRed
	glyph := 'G'
	if g.Chasing {
		glyph = '!'
	} else if g.Alert < maxAlert/2 {
		color = core.ColorRed
	}
	dst.SetCell(off.X+g.Pos.X, off.Y+g.Pos.Y, glyph, color)
}

// angleDiff returns the signed smallest difference between two angles
// in radians, in (-pi, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(b-a+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
