// Package brawl implements Button Brawl, a one-on-one fighting game
// against a computer opponent. Matches run best-of-N rounds; a round
// ends when either fighter is knocked out.
package brawl

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

// GameID is the registry identifier for Button Brawl.
const GameID = "brawl"

const hudRows = 3 // Health bars, round pips and controls hint

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

// Game holds one brawl match.
type Game struct {
	cfg  config.BrawlConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig
	rng  *rand.Rand

	player *Fighter
	cpu    *Fighter

	playerRounds int
	cpuRounds    int
	roundBreak   int // Ticks left in the between-rounds pause
	cpuThink     int

	score     int
	tickCount int
	gameOver  bool
	victory   bool
	paused    bool
}

// Entry returns the registry entry for Button Brawl.
func Entry() registry.Entry {
	return registry.Entry{
		ID:    GameID,
		Title: "Button Brawl",
		New:   func() registry.Game { return New() },
	}
}

// New creates a Button Brawl instance with the current config settings.
func New() *Game {
	cfg, err := config.LoadBrawl(configPath)
	if err != nil {
		cfg = config.DefaultBrawlConfig()
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
	return "Button Brawl"
}

// Rounds returns the round tally, player first.
func (g *Game) Rounds() (int, int) {
	return g.playerRounds, g.cpuRounds
}

// Reset initializes or restarts the match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	health := g.cfg.Fighter.MaxHealth
	g.player = newFighter(g.playerSpawnX(), 1, health)
	g.cpu = newFighter(g.cpuSpawnX(), -1, health)

	g.playerRounds, g.cpuRounds = 0, 0
	g.roundBreak = 0
	g.cpuThink = 0

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.victory = false
	g.paused = false
}

func (g *Game) playerSpawnX() float64 { return float64(g.rt.ScreenW) * 0.3 }
func (g *Game) cpuSpawnX() float64    { return float64(g.rt.ScreenW) * 0.7 }

func (g *Game) winsNeeded() int {
	return g.cfg.Rounds.BestOf/2 + 1
}

// Step advances the match by one tick.
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

	if g.roundBreak > 0 {
		g.roundBreak--
		if g.roundBreak == 0 {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	g.face()
	g.handleInput(in)
	g.updateCPU()
	g.player.tick()
	g.cpu.tick()
	g.checkKnockout()

	return core.StepResult{State: g.State()}
}

// face keeps both fighters turned toward each other.
func (g *Game) face() {
	if g.player.X < g.cpu.X {
		g.player.Facing, g.cpu.Facing = 1, -1
	} else {
		g.player.Facing, g.cpu.Facing = -1, 1
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	speed := g.cfg.Fighter.Speed
	switch {
	case in.Has(core.ActionLeft):
		g.moveFighter(g.player, g.cpu, -speed)
	case in.Has(core.ActionRight):
		g.moveFighter(g.player, g.cpu, speed)
	}

	switch {
	case in.Has(core.ActionPrimary):
		g.attack(g.player, g.cpu, attackJab)
	case in.Has(core.ActionSecondary):
		g.attack(g.player, g.cpu, attackKick)
	case in.Has(core.ActionDown):
		g.player.beginGuard(g.cfg.Fighter)
	}
}

// moveFighter shifts f by dx, staying inside the arena and never
// passing through the opponent.
func (g *Game) moveFighter(f, other *Fighter, dx float64) {
	next := core.ClampF(f.X+dx, 3, float64(g.rt.ScreenW-4))
	if math.Abs(next-other.X) < 1.5 {
		return
	}
	f.X = next
}

// attack resolves one swing. The attack always costs the cooldown;
// whether it lands depends on range, facing and the defender's guard.
func (g *Game) attack(att, def *Fighter, kind attackKind) {
	cfg := g.cfg.Fighter

	var damage, reach, cooldown int
	switch kind {
	case attackJab:
		if !att.canJab() {
			return
		}
		damage, reach, cooldown = cfg.JabDamage, cfg.JabRange, cfg.JabCooldown
		att.jabTimer = cooldown
	case attackKick:
		if !att.canKick() {
			return
		}
		damage, reach, cooldown = cfg.KickDamage, cfg.KickRange, cfg.KickCooldown
		att.kickTimer = cooldown
	default:
		return
	}

	att.anim = kind
	att.animLeft = animTicks

	dx := def.X - att.X
	if dx*float64(att.Facing) < 0 {
		return // swinging away from the opponent
	}
	if math.Abs(dx) > float64(reach) {
		return
	}

	if def.guarding() {
		damage = int(float64(damage) * cfg.GuardFactor)
	}
	def.Health -= damage
	if att == g.player && damage > 0 {
		g.score += g.cfg.Rounds.ScorePerHit
	}
}

// updateCPU runs the opponent. Decisions happen every think period;
// aggression and reaction speed scale with difficulty.
func (g *Game) updateCPU() {
	g.cpuThink++
	period := g.diff.Interval(g.cfg.CPU.ThinkPeriod, g.score, g.tickCount)
	if g.cpuThink < period {
		return
	}
	g.cpuThink = 0

	dist := math.Abs(g.player.X - g.cpu.X)
	aggression := g.diff.Intensity(g.cfg.CPU.Aggression, g.score, g.tickCount)

	// Guard reactively when the player is mid-swing.
	if g.player.anim != attackNone && g.rng.Float64() < g.cfg.CPU.GuardChance {
		if g.cpu.beginGuard(g.cfg.Fighter) {
			return
		}
	}

	inJab := dist <= float64(g.cfg.Fighter.JabRange)
	inKick := dist <= float64(g.cfg.Fighter.KickRange)

	switch {
	case inJab && g.rng.Float64() < aggression:
		if g.cpu.canKick() && g.rng.Float64() < 0.3 {
			g.attack(g.cpu, g.player, attackKick)
		} else {
			g.attack(g.cpu, g.player, attackJab)
		}
	case inKick && g.cpu.canKick() && g.rng.Float64() < aggression/2:
		g.attack(g.cpu, g.player, attackKick)
	case !inJab:
		speed := g.diff.Speed(g.cfg.Fighter.Speed, g.score, g.tickCount)
		step := speed * float64(period)
		if g.cpu.X > g.player.X {
			step = -step
		}
		g.moveFighter(g.cpu, g.player, step)
	}
}

// checkKnockout ends the round when a fighter drops to zero and the
// match when either side reaches the required wins.
func (g *Game) checkKnockout() {
	switch {
	case g.cpu.Health <= 0:
		g.playerRounds++
		g.score += g.cfg.Rounds.ScorePerRound
	case g.player.Health <= 0:
		g.cpuRounds++
	default:
		return
	}

	need := g.winsNeeded()
	if g.playerRounds >= need || g.cpuRounds >= need {
		g.gameOver = true
		g.victory = g.playerRounds > g.cpuRounds
		return
	}
	g.roundBreak = g.cfg.Rounds.BreakTicks
}

// startRound respawns both fighters for the next round.
func (g *Game) startRound() {
	health := g.cfg.Fighter.MaxHealth
	g.player.respawn(g.playerSpawnX(), health)
	g.cpu.respawn(g.cpuSpawnX(), health)
	g.cpuThink = 0
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

// Render draws the arena, fighters and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	floorY := dst.Height() - 4
	dst.DrawHLine(0, floorY+1, dst.Width(), '═')

	g.player.render(dst, floorY, core.ColorBrightGreen)
	g.cpu.render(dst, floorY, core.ColorBrightRed)

	g.renderHUD(dst)

	if g.roundBreak > 0 {
		round := g.playerRounds + g.cpuRounds + 1
		drawOverlay(dst, fmt.Sprintf("ROUND %d", round), "Get ready...")
	}
	if g.paused {
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		title := "DEFEAT"
		if g.victory {
			title = "VICTORY"
		}
		drawOverlay(dst, title,
			fmt.Sprintf("Rounds %d-%d  Score: %d  |  R restart, Esc menu",
				g.playerRounds, g.cpuRounds, g.score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	barW := w/2 - 6

	drawHealthBar(dst, 2, 0, barW, g.player.Health, g.cfg.Fighter.MaxHealth, false)
	drawHealthBar(dst, w-2-barW, 0, barW, g.cpu.Health, g.cfg.Fighter.MaxHealth, true)

	dst.DrawText(2, 1, "YOU")
	dst.DrawText(w-5, 1, "CPU")

	pips := func(wins int) string {
		s := ""
		for i := 0; i < g.winsNeeded(); i++ {
			if i < wins {
				s += "●"
			} else {
				s += "○"
			}
		}
		return s
	}
	dst.DrawTextCentered(1, fmt.Sprintf("%s  VS  %s", pips(g.playerRounds), pips(g.cpuRounds)))
	dst.DrawTextColor(2, 2, "Space jab  X kick  S guard", core.ColorGray)
	dst.DrawText(w-14, 2, fmt.Sprintf("Score %d", g.score))
}

// drawHealthBar fills right-to-left for the mirrored side.
func drawHealthBar(dst *core.Screen, x, y, width, health, max int, mirror bool) {
	filled := 0
	if max > 0 {
		filled = width * core.Max(health, 0) / max
	}
	for i := 0; i < width; i++ {
		pos := i
		if mirror {
			pos = width - 1 - i
		}
		c := core.ColorGray
		r := '░'
		if i < filled {
			r = '█'
			c = core.ColorBrightGreen
			if health*3 < max {
				c = core.ColorBrightRed
			}
		}
		dst.SetCell(x+pos, y, r, c)
	}
}

// drawOverlay draws a centered message box over the arena.
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
