package rumble

import (
	"math"
	"math/rand"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
)

// movePattern selects how an enemy crosses the screen.
type movePattern int

const (
	patternStraight movePattern = iota
	patternSine
	patternZigzag
	patternDive
)

// Enemy is one hostile craft.
type Enemy struct {
	X, Y    float64
	Health  int
	pattern movePattern

	speed     float64
	driftY    float64 // Constant vertical drift (straight pattern)
	sineAmp   float64
	sineFreq  float64
	sinePhase float64
	zigTimer  int
	zigEvery  int
	zigDir    float64
}

const (
	enemyW = 2
	enemyH = 1
)

func (e *Enemy) rect() core.Rect {
	return core.NewRect(int(e.X), int(e.Y), enemyW, enemyH)
}

func (e *Enemy) render(dst *core.Screen) {
	x, y := int(e.X), int(e.Y)
	dst.SetCell(x, y, '◀', core.ColorBrightRed)
	dst.SetCell(x+1, y, '█', core.ColorRed)
}

// advance moves the enemy one tick at the given speed multiplier.
func (e *Enemy) advance(speedScale float64, screenW int) {
	speed := e.speed * speedScale

	switch e.pattern {
	case patternStraight:
		e.X -= speed
		e.Y += e.driftY

	case patternSine:
		e.X -= speed
		e.Y += math.Sin(e.X*e.sineFreq+e.sinePhase) * e.sineAmp

	case patternZigzag:
		e.X -= speed
		e.zigTimer++
		if e.zigTimer >= e.zigEvery {
			e.zigTimer = 0
			e.zigDir = -e.zigDir
		}
		e.Y += e.zigDir * speed

	case patternDive:
		if e.X > float64(screenW)*0.7 {
			e.X -= speed
		} else {
			e.X -= speed * 0.7
			e.Y += speed * 1.2
		}
	}
}

// enemyManager owns spawning, waves and the live enemy list.
type enemyManager struct {
	cfg        config.RumbleConfig
	diff       *config.DifficultyManager
	rng        *rand.Rand
	list       []*Enemy
	wave       int
	spawned    int
	waveSize   int
	spawnTimer int
	screenW    int
	screenH    int
}

func newEnemyManager(cfg config.RumbleConfig, diff *config.DifficultyManager, rng *rand.Rand, w, h int) *enemyManager {
	return &enemyManager{
		cfg:      cfg,
		diff:     diff,
		rng:      rng,
		wave:     1,
		waveSize: cfg.Enemies.WaveSize,
		screenW:  w,
		screenH:  h,
	}
}

func (m *enemyManager) alive() []*Enemy {
	return m.list
}

// update moves all enemies, culls the off-screen ones, and spawns the
// next wave as the current one clears.
func (m *enemyManager) update(score, ticks int) {
	speedScale := 1.0
	if m.diff != nil {
		speedScale = m.diff.Speed(1.0, score, ticks)
	}

	kept := m.list[:0]
	for _, e := range m.list {
		e.advance(speedScale, m.screenW)
		if e.X+enemyW < -2 || e.Y < float64(hudRows)-2 || e.Y > float64(m.screenH)+2 {
			continue
		}
		kept = append(kept, e)
	}
	m.list = kept

	if m.spawned >= m.waveSize {
		if len(m.list) == 0 {
			m.wave++
			m.waveSize += m.cfg.Enemies.WaveGrowth
			m.spawned = 0
			m.spawnTimer = 0
		}
		return
	}

	m.spawnTimer++
	delay := m.cfg.Enemies.SpawnDelay
	if m.diff != nil {
		delay = m.diff.Interval(delay, score, ticks)
	}
	if delay < m.cfg.Enemies.MinDelay {
		delay = m.cfg.Enemies.MinDelay
	}
	if m.spawnTimer >= delay {
		m.spawnTimer = 0
		m.spawn()
	}
}

func (m *enemyManager) spawn() {
	minY := hudRows + 1
	maxY := m.screenH - 2
	if maxY <= minY {
		maxY = minY + 1
	}

	e := &Enemy{
		X:       float64(m.screenW + 2),
		Y:       float64(minY + m.rng.Intn(maxY-minY)),
		Health:  m.cfg.Enemies.Health,
		pattern: movePattern(m.rng.Intn(4)),
		speed:   m.cfg.Enemies.MinSpeed + m.rng.Float64()*(m.cfg.Enemies.MaxSpeed-m.cfg.Enemies.MinSpeed),
	}

	switch e.pattern {
	case patternStraight:
		e.driftY = (m.rng.Float64() - 0.5) * 0.1
	case patternSine:
		e.sineAmp = 0.1 + m.rng.Float64()*0.25
		e.sineFreq = 0.05 + m.rng.Float64()*0.1
		e.sinePhase = m.rng.Float64() * 2 * math.Pi
	case patternZigzag:
		e.zigEvery = 20 + m.rng.Intn(40)
		e.zigDir = 0.5
		if m.rng.Intn(2) == 0 {
			e.zigDir = -0.5
		}
	}

	m.list = append(m.list, e)
	m.spawned++
}

// hit applies bullet damage to the first enemy intersecting the rect.
// Dead enemies are removed; the struck enemy is returned either way.
func (m *enemyManager) hit(r core.Rect, damage int) *Enemy {
	for i, e := range m.list {
		if e.rect().Intersects(r) {
			e.Health -= damage
			if e.Health <= 0 {
				m.list = append(m.list[:i], m.list[i+1:]...)
			}
			return e
		}
	}
	return nil
}

// collide removes and returns every enemy overlapping the rect.
func (m *enemyManager) collide(r core.Rect) []*Enemy {
	var struck []*Enemy
	kept := m.list[:0]
	for _, e := range m.list {
		if e.rect().Intersects(r) {
			struck = append(struck, e)
			continue
		}
		kept = append(kept, e)
	}
	m.list = kept
	return struck
}
