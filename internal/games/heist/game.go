// Package heist implements Pixel Heist, a top-down stealth game. The
// thief sneaks through a guarded floor collecting loot; guards patrol
// fixed routes and react to sight and sound.
package heist

import (
	"fmt"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

// GameID is the registry identifier for Pixel Heist.
const GameID = "heist"

const hudRows = 2 // Top rows reserved for loot/noise readouts

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

// Game holds the full heist state for one session.
type Game struct {
	cfg  config.HeistConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig

	level  *Level
	player core.Point
	guards []*Guard

	sneaking  bool
	moveTimer int
	noise     float64

	loot      []Loot
	totalLoot int
	haul      int

	score     int
	tickCount int
	gameOver  bool
	victory   bool
	paused    bool
}

// Entry returns the registry entry for Pixel Heist.
func Entry() registry.Entry {
	return registry.Entry{
		ID:    GameID,
		Title: "Pixel Heist",
		New:   func() registry.Game { return New() },
	}
}

// New creates a Pixel Heist instance with the current config settings.
func New() *Game {
	cfg, err := config.LoadHeist(configPath)
	if err != nil {
		cfg = config.DefaultHeistConfig()
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
	return "Pixel Heist"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.level = LoadLevel()
	g.player = g.level.PlayerStart

	g.loot = append([]Loot(nil), g.level.Loot...)
	g.totalLoot = len(g.loot)
	g.haul = 0

	g.guards = g.guards[:0]
	for _, route := range g.level.Routes {
		g.guards = append(g.guards, newGuard(route))
	}

	g.sneaking = false
	g.moveTimer = g.cfg.Player.WalkPeriod // first input steps right away
	g.noise = 0

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.victory = false
	g.paused = false
}

// Step advances the simulation by one tick.
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
	g.noise = core.ClampF(g.noise-g.cfg.Player.NoiseDecay, 0, g.cfg.Player.MaxNoise)

	if in.Has(core.ActionSecondary) {
		g.sneaking = !g.sneaking
	}

	g.movePlayer(in)
	g.collectLoot()
	g.updateGuards()
	g.checkBusted()

	return core.StepResult{State: g.State()}
}

func (g *Game) movePlayer(in core.InputFrame) {
	period := g.cfg.Player.WalkPeriod
	stepNoise := g.cfg.Player.WalkNoise
	if g.sneaking {
		period = g.cfg.Player.SneakPeriod
		stepNoise = g.cfg.Player.SneakNoise
	}

	if g.moveTimer < period {
		g.moveTimer++
	}

	var dir core.Point
	switch {
	case in.Has(core.ActionUp):
		dir = core.Point{Y: -1}
	case in.Has(core.ActionDown):
		dir = core.Point{Y: 1}
	case in.Has(core.ActionLeft):
		dir = core.Point{X: -1}
	case in.Has(core.ActionRight):
		dir = core.Point{X: 1}
	default:
		return
	}

	if g.moveTimer < period {
		return
	}

	next := g.player.Add(dir.X, dir.Y)
	if g.level.Wall(next.X, next.Y) {
		return
	}

	g.player = next
	g.moveTimer = 0
	g.noise = core.ClampF(g.noise+stepNoise, 0, g.cfg.Player.MaxNoise)
}

func (g *Game) collectLoot() {
	for i, l := range g.loot {
		if l.Pos != g.player {
			continue
		}
		g.haul += l.Value
		g.score = g.haul
		g.loot = append(g.loot[:i], g.loot[i+1:]...)
		break
	}

	if len(g.loot) == 0 {
		g.victory = true
		g.gameOver = true
		g.score = g.haul + g.timeBonus()
	}
}

func (g *Game) updateGuards() {
	chasePeriod := g.diff.Interval(g.cfg.Guards.ChasePeriod, g.score, g.tickCount)
	for _, gd := range g.guards {
		gd.perceive(g.level, g.player, g.noise, g.cfg.Guards)
		gd.update(g.level, g.player, g.cfg.Guards.StepPeriod, chasePeriod, g.cfg.Guards.WaitTicks)
	}
}

// checkBusted ends the run when a guard reaches the thief. A chasing
// guard catches from an adjacent cell.
func (g *Game) checkBusted() {
	if g.gameOver {
		return
	}
	for _, gd := range g.guards {
		d := gd.Pos.Manhattan(g.player)
		if d == 0 || (gd.Chasing && d <= 1) {
			g.gameOver = true
			g.victory = false
			return
		}
	}
}

// timeBonus pays out for a fast heist, decaying per second of play.
func (g *Game) timeBonus() int {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = 60
	}
	seconds := g.tickCount / rate
	bonus := g.cfg.Scoring.TimeBonus - seconds*g.cfg.Scoring.BonusDecay
	return core.Max(bonus, g.cfg.Scoring.MinTimeBonus)
}

// maxGuardAlert is the highest alert level across all guards, shown on
// the HUD so the player knows how hot the floor is.
func (g *Game) maxGuardAlert() float64 {
	top := 0.0
	for _, gd := range g.guards {
		if gd.Alert > top {
			top = gd.Alert
		}
	}
	return top
}

// State returns the current game state snapshot.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Victory:  g.victory,
		Paused:   g.paused,
	}
}

// Render draws the level, guards and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	off := core.Point{
		X: core.Max((dst.Width()-g.level.Width)/2, 0),
		Y: hudRows,
	}

	// Vision cones go under everything else.
	for _, gd := range g.guards {
		for _, p := range gd.visionCells(g.level, g.cfg.Guards) {
			dst.SetCell(off.X+p.X, off.Y+p.Y, '░', core.ColorYellow)
		}
	}

	g.level.render(dst, g.loot, off)
	for _, gd := range g.guards {
		gd.render(dst, off)
	}

	playerColor := core.ColorBrightGreen
	if g.sneaking {
		playerColor = core.ColorBrightCyan
	}
	dst.SetCell(off.X+g.player.X, off.Y+g.player.Y, '@', playerColor)

	g.renderHUD(dst)

	if g.paused {
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		if g.victory {
			drawOverlay(dst, "HEIST COMPLETE",
				fmt.Sprintf("Score: %d (haul %d + bonus %d)  |  R restart, Esc menu",
					g.score, g.haul, g.score-g.haul))
		} else {
			drawOverlay(dst, "BUSTED",
				fmt.Sprintf("Haul: %d  |  R restart, Esc menu", g.haul))
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	mode := "WALK"
	if g.sneaking {
		mode = "SNEAK"
	}
	dst.DrawText(2, 0, fmt.Sprintf("Haul: $%d", g.haul))
	dst.DrawText(22, 0, fmt.Sprintf("Loot %d/%d", g.totalLoot-len(g.loot), g.totalLoot))
	dst.DrawTextColor(36, 0, mode, core.ColorBrightCyan)

	// Noise meter
	barW := 20
	filled := 0
	if g.cfg.Player.MaxNoise > 0 {
		filled = int(float64(barW) * g.noise / g.cfg.Player.MaxNoise)
	}
	dst.DrawText(2, 1, "NOISE ")
	for i := 0; i < barW; i++ {
		c := core.ColorGray
		r := '░'
		if i < filled {
			r = '█'
			c = core.ColorBrightYellow
		}
		dst.SetCell(8+i, 1, r, c)
	}

	if alert := g.maxGuardAlert(); alert > 0 {
		c := core.ColorYellow
		if alert >= maxAlert {
			c = core.ColorBrightRed
		}
		dst.DrawTextColor(32, 1, fmt.Sprintf("ALERT %3.0f%%", alert), c)
	}
}

// drawOverlay draws a centered message box over the playfield.
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
