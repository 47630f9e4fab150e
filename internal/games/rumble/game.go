// Package rumble implements Rocket Rumble, a side-view wave shooter.
// The player ship fights waves of enemy craft that enter from the right
// with varied movement patterns; downed enemies sometimes drop power-ups.
package rumble

import (
	"fmt"
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

// GameID is the registry identifier for Rocket Rumble.
const GameID = "rumble"

const hudRows = 2 // Top rows reserved for score/health

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config path used by the next New().
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next New().
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Bullet is a player projectile travelling right.
type Bullet struct {
	X, Y float64
	VY   float64
}

// Game implements the Rocket Rumble simulation.
type Game struct {
	cfg  config.RumbleConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig
	rng  *rand.Rand

	playerX, playerY float64
	health           int
	fireTimer        int

	rapidTicks  int
	tripleTicks int
	shieldTicks int

	bullets []Bullet
	enemies *enemyManager
	drops   []drop
	stars   []star

	score     int
	tickCount int
	gameOver  bool
	paused    bool
}

// Entry returns the registry entry for Rocket Rumble.
func Entry() registry.Entry {
	return registry.Entry{
		ID:    GameID,
		Title: "Rocket Rumble",
		New:   func() registry.Game { return New() },
	}
}

// New creates a Rocket Rumble instance with the current config settings.
func New() *Game {
	cfg, err := config.LoadRumble(configPath)
	if err != nil {
		cfg = config.DefaultRumbleConfig()
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
	return "Rocket Rumble"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.playerX = 6
	g.playerY = float64(cfg.ScreenH) / 2
	g.health = g.cfg.Player.MaxHealth
	g.fireTimer = 0
	g.rapidTicks, g.tripleTicks, g.shieldTicks = 0, 0, 0

	g.bullets = g.bullets[:0]
	g.drops = g.drops[:0]
	g.enemies = newEnemyManager(g.cfg, g.diff, g.rng, cfg.ScreenW, cfg.ScreenH)
	g.stars = makeStars(g.rng, cfg.ScreenW, cfg.ScreenH)

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
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
	g.updateStars()
	g.updateTimers()
	g.movePlayer(in)

	if in.Has(core.ActionPrimary) {
		g.fire()
	}

	g.updateBullets()
	g.enemies.update(g.score, g.tickCount)
	g.updateDrops()
	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

func (g *Game) updateTimers() {
	if g.fireTimer > 0 {
		g.fireTimer--
	}
	if g.rapidTicks > 0 {
		g.rapidTicks--
	}
	if g.tripleTicks > 0 {
		g.tripleTicks--
	}
	if g.shieldTicks > 0 {
		g.shieldTicks--
	}
}

func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	if in.Has(core.ActionUp) {
		g.playerY -= speed
	}
	if in.Has(core.ActionDown) {
		g.playerY += speed
	}
	if in.Has(core.ActionLeft) {
		g.playerX -= speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += speed
	}

	maxX := float64(g.rt.ScreenW - g.cfg.Player.Width)
	maxY := float64(g.rt.ScreenH - g.cfg.Player.Height)
	g.playerX = core.ClampF(g.playerX, 0, maxX)
	g.playerY = core.ClampF(g.playerY, hudRows, maxY)
}

func (g *Game) fire() {
	if g.fireTimer > 0 {
		return
	}

	cooldown := g.cfg.Player.FireCooldown
	if g.rapidTicks > 0 {
		cooldown /= 2
		if cooldown < 1 {
			cooldown = 1
		}
	}
	g.fireTimer = cooldown

	muzzleX := g.playerX + float64(g.cfg.Player.Width)
	muzzleY := g.playerY + float64(g.cfg.Player.Height)/2

	g.bullets = append(g.bullets, Bullet{X: muzzleX, Y: muzzleY})
	if g.tripleTicks > 0 {
		g.bullets = append(g.bullets,
			Bullet{X: muzzleX, Y: muzzleY, VY: -0.2},
			Bullet{X: muzzleX, Y: muzzleY, VY: 0.2},
		)
	}
}

func (g *Game) updateBullets() {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.X += g.cfg.Bullets.Speed
		b.Y += b.VY
		if b.X < float64(g.rt.ScreenW) && b.Y >= 0 && b.Y < float64(g.rt.ScreenH) {
			alive = append(alive, b)
		}
	}
	g.bullets = alive
}

func (g *Game) resolveCollisions() {
	playerRect := g.playerRect()

	// Bullets against enemies
	for bi := 0; bi < len(g.bullets); bi++ {
		b := g.bullets[bi]
		bulletRect := core.NewRect(int(b.X), int(b.Y), 1, 1)
		if e := g.enemies.hit(bulletRect, g.cfg.Bullets.Damage); e != nil {
			g.bullets = append(g.bullets[:bi], g.bullets[bi+1:]...)
			bi--
			if e.Health <= 0 {
				g.score += g.cfg.Enemies.ScoreValue
				g.maybeDrop(e.X, e.Y)
			}
		}
	}

	// Enemies against the player
	for range g.enemies.collide(playerRect) {
		if g.shieldTicks > 0 {
			continue
		}
		g.health -= g.cfg.Player.ContactDamage
		if g.health <= 0 {
			g.health = 0
			g.gameOver = true
			return
		}
	}

	// Drops against the player
	remaining := g.drops[:0]
	for _, d := range g.drops {
		if playerRect.Intersects(d.rect()) {
			g.applyDrop(d.Kind)
			continue
		}
		remaining = append(remaining, d)
	}
	g.drops = remaining
}

func (g *Game) playerRect() core.Rect {
	return core.NewRect(int(g.playerX), int(g.playerY), g.cfg.Player.Width, g.cfg.Player.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Wave returns the current wave number, for the HUD and tests.
func (g *Game) Wave() int {
	return g.enemies.wave
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderStars(dst)

	for _, d := range g.drops {
		d.render(dst)
	}

	for _, e := range g.enemies.alive() {
		e.render(dst)
	}

	for _, b := range g.bullets {
		dst.SetCell(int(b.X), int(b.Y), '-', core.ColorBrightCyan)
	}

	g.renderPlayer(dst)
	g.renderHUD(dst)

	if g.paused {
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Wave: %d  |  R restart, Esc menu", g.score, g.enemies.wave))
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := int(g.playerX), int(g.playerY)
	color := core.ColorBrightCyan
	if g.shieldTicks > 0 {
		color = core.ColorBrightYellow
	}

	dst.SetCell(x, y, '▛', color)
	dst.SetCell(x+1, y, '▀', color)
	dst.SetCell(x+2, y, '▶', color)
	dst.SetCell(x, y+1, '▙', color)
	dst.SetCell(x+1, y+1, '▄', color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(2+20, 0, fmt.Sprintf("Wave %d", g.enemies.wave))

	// Health bar
	barW := 20
	filled := 0
	if g.cfg.Player.MaxHealth > 0 {
		filled = barW * g.health / g.cfg.Player.MaxHealth
	}
	dst.DrawText(2, 1, "HP ")
	for i := 0; i < barW; i++ {
		c := core.ColorGray
		r := '░'
		if i < filled {
			r = '█'
			c = core.ColorBrightGreen
			if g.health*3 < g.cfg.Player.MaxHealth {
				c = core.ColorBrightRed
			}
		}
		dst.SetCell(5+i, 1, r, c)
	}

	status := ""
	if g.rapidTicks > 0 {
		status += " RAPID"
	}
	if g.tripleTicks > 0 {
		status += " TRIPLE"
	}
	if g.shieldTicks > 0 {
		status += " SHIELD"
	}
	if status != "" {
		dst.DrawTextColor(28, 1, status, core.ColorBrightYellow)
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
