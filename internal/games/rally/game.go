// Package rally implements Midnight Rally, a top-down racing game on an
// endlessly scrolling road. Steer between the verges, overtake slower
// traffic and spend the boost meter for extra speed and score.
package rally

import (
	"fmt"
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

// GameID is the registry identifier for Midnight Rally.
const GameID = "rally"

const (
	hudRows    = 2   // Top rows reserved for score/boost readouts
	steerSpeed = 0.6 // Cells per tick while steering
	carW       = 3   // Player car footprint
	carH       = 2
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath overrides the config file location for the next New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the difficulty preset for the next New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game holds one rally run.
type Game struct {
	cfg  config.RallyConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig
	rng  *rand.Rand

	road      *road
	playerX   float64
	playerRow int // Playfield row of the car's top edge

	boost    float64
	boosting bool

	scrollAcc float64
	distance  int // Rows travelled

	score     int
	tickCount int
	gameOver  bool
	paused    bool
}

// Entry returns the registry entry for Midnight Rally.
func Entry() registry.Entry {
	return registry.Entry{
		ID:    GameID,
		Title: "Midnight Rally",
		New:   func() registry.Game { return New() },
	}
}

// New creates a Midnight Rally instance with the current config settings.
func New() *Game {
	cfg, err := config.LoadRally(configPath)
	if err != nil {
		cfg = config.DefaultRallyConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, config.DifficultyPreset(difficultyPreset))

	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Midnight Rally"
}

func (g *Game) playRows() int {
	return g.rt.ScreenH - hudRows
}

// Reset initializes or restarts the run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.road = newRoad(g.cfg, g.rng, cfg.ScreenW, g.playRows())
	g.playerX = float64(cfg.ScreenW-carW) / 2
	g.playerRow = g.playRows() - carH - 1

	g.boost = g.cfg.Boost.Capacity
	g.boosting = false
	g.scrollAcc = 0
	g.distance = 0

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.steer(in)
	g.updateBoost(in)
	g.advanceRoad()
	g.checkCrash()

	return core.StepResult{State: g.State()}
}

func (g *Game) steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.playerX -= steerSpeed
	case in.Has(core.ActionRight):
		g.playerX += steerSpeed
	}
	g.playerX = core.ClampF(g.playerX, 0, float64(g.rt.ScreenW-carW))
}

// updateBoost drains the meter while the throttle is held and the tank
// has charge, and regenerates it while coasting.
func (g *Game) updateBoost(in core.InputFrame) {
	if in.Has(core.ActionUp) && g.boost > 0 {
		g.boosting = true
		g.boost = core.ClampF(g.boost-g.cfg.Boost.DrainRate, 0, g.cfg.Boost.Capacity)
		return
	}
	g.boosting = false
	g.boost = core.ClampF(g.boost+g.cfg.Boost.RegenRate, 0, g.cfg.Boost.Capacity)
}

// advanceRoad accumulates scroll progress and steps the road one row
// at a time. The base rate speeds up with difficulty; boost multiplies
// it further.
func (g *Game) advanceRoad() {
	period := g.diff.Interval(g.cfg.Road.ScrollPeriod, g.score, g.tickCount)
	rate := 1.0 / float64(period)
	if g.boosting {
		rate *= g.cfg.Boost.SpeedFactor
	}

	spawnChance := g.diff.Intensity(g.cfg.Traffic.SpawnChance, g.score, g.tickCount)

	g.scrollAcc += rate
	for g.scrollAcc >= 1 {
		g.scrollAcc--
		g.road.scroll(spawnChance)
		g.distance++

		rowScore := g.cfg.Scoring.PerRow
		if g.boosting {
			rowScore *= g.cfg.Scoring.BoostFactor
		}
		g.score += rowScore
		g.countPasses()
	}
}

// countPasses awards score for each car that falls behind the player.
func (g *Game) countPasses() {
	for _, c := range g.road.cars {
		if !c.passed && c.Row > g.playerRow+carH-1 {
			c.passed = true
			g.score += g.cfg.Scoring.PerPass
		}
	}
}

// checkCrash ends the run on verge or traffic contact.
func (g *Game) checkCrash() {
	x0 := int(g.playerX)
	x1 := x0 + carW - 1

	for dy := 0; dy < carH; dy++ {
		if !g.road.onRoad(g.playerRow+dy, x0, x1) {
			g.gameOver = true
			return
		}
	}

	playerRect := core.NewRect(x0, g.playerRow, carW, carH)
	for _, c := range g.road.cars {
		if playerRect.Intersects(c.rect(g.cfg.Traffic)) {
			g.gameOver = true
			return
		}
	}
}

// State returns the current game state snapshot.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the road, traffic, player car and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.road.render(dst, hudRows)
	g.renderPlayer(dst)
	g.renderHUD(dst)

	if g.paused {
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawOverlay(dst, "CRASHED",
			fmt.Sprintf("Score: %d  Distance: %d  |  R restart, Esc menu", g.score, g.distance))
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	x := int(g.playerX)
	y := hudRows + g.playerRow
	color := core.ColorBrightCyan
	if g.boosting {
		color = core.ColorBrightYellow
	}

	dst.SetCell(x, y, '▄', color)
	dst.SetCell(x+1, y, '█', color)
	dst.SetCell(x+2, y, '▄', color)
	dst.SetCell(x, y+1, '▀', color)
	dst.SetCell(x+1, y+1, '█', color)
	dst.SetCell(x+2, y+1, '▀', color)

	if g.boosting {
		dst.SetCell(x+1, y+2, '▲', core.ColorOrange)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(22, 0, fmt.Sprintf("Dist %d", g.distance))

	// Boost meter
	barW := 20
	filled := 0
	if g.cfg.Boost.Capacity > 0 {
		filled = int(float64(barW) * g.boost / g.cfg.Boost.Capacity)
	}
	dst.DrawText(2, 1, "BOOST ")
	for i := 0; i < barW; i++ {
		c := core.ColorGray
		r := '░'
		if i < filled {
			r = '█'
			c = core.ColorBrightCyan
			if g.boosting {
				c = core.ColorBrightYellow
			}
		}
		dst.SetCell(8+i, 1, r, c)
	}
	if g.boosting {
		dst.DrawTextColor(30, 1, "BOOST", core.ColorBrightYellow)
	}
}

// drawOverlay draws a centered message box over the road.
func drawOverlay(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
