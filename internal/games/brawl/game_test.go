package brawl

import (
	"testing"

	"github.com/pixeldrift/arcade-hall/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestJabLandsInRange(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + float64(g.cfg.Fighter.JabRange)

	g.Step(frame(core.ActionPrimary))

	want := g.cfg.Fighter.MaxHealth - g.cfg.Fighter.JabDamage
	if g.cpu.Health != want {
		t.Errorf("cpu health = %d, want %d", g.cpu.Health, want)
	}
	if g.score != g.cfg.Rounds.ScorePerHit {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Rounds.ScorePerHit)
	}
}

func TestJabWhiffsOutOfRange(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + float64(g.cfg.Fighter.JabRange) + 2

	g.Step(frame(core.ActionPrimary))

	if g.cpu.Health != g.cfg.Fighter.MaxHealth {
		t.Errorf("cpu took damage from a whiff: %d", g.cpu.Health)
	}
	if g.player.jabTimer == 0 {
		t.Error("whiff did not spend the jab cooldown")
	}
}

func TestJabCooldownBlocksSpam(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + 2

	g.Step(frame(core.ActionPrimary))
	g.Step(frame(core.ActionPrimary))

	want := g.cfg.Fighter.MaxHealth - g.cfg.Fighter.JabDamage
	if g.cpu.Health != want {
		t.Errorf("cpu health = %d, want single jab %d", g.cpu.Health, want)
	}
}

func TestKickHitsHarderOnLongerCooldown(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + float64(g.cfg.Fighter.KickRange)

	g.Step(frame(core.ActionSecondary))

	want := g.cfg.Fighter.MaxHealth - g.cfg.Fighter.KickDamage
	if g.cpu.Health != want {
		t.Errorf("cpu health = %d, want %d", g.cpu.Health, want)
	}
	if g.player.kickTimer == 0 {
		t.Error("kick cooldown not spent")
	}
}

func TestGuardSoaksDamage(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + 2
	g.cpu.beginGuard(g.cfg.Fighter)

	g.Step(frame(core.ActionPrimary))

	soaked := int(float64(g.cfg.Fighter.JabDamage) * g.cfg.Fighter.GuardFactor)
	want := g.cfg.Fighter.MaxHealth - soaked
	if g.cpu.Health != want {
		t.Errorf("guarded cpu health = %d, want %d", g.cpu.Health, want)
	}
}

func TestGuardHasCooldown(t *testing.T) {
	f := newFighter(10, 1, 100)
	cfg := newTestGame(t).cfg.Fighter

	if !f.beginGuard(cfg) {
		t.Fatal("first guard refused")
	}
	if f.beginGuard(cfg) {
		t.Error("guard allowed while already active")
	}
	for i := 0; i < cfg.GuardTicks; i++ {
		f.tick()
	}
	if f.beginGuard(cfg) {
		t.Error("guard allowed during rest period")
	}
	for i := 0; i < cfg.GuardCooldown; i++ {
		f.tick()
	}
	if !f.beginGuard(cfg) {
		t.Error("guard refused after full cooldown")
	}
}

func TestKnockoutAwardsRoundAndRespawns(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + 2
	g.cpu.Health = 1

	g.Step(frame(core.ActionPrimary))

	if g.playerRounds != 1 {
		t.Fatalf("playerRounds = %d, want 1", g.playerRounds)
	}
	wantScore := g.cfg.Rounds.ScorePerHit + g.cfg.Rounds.ScorePerRound
	if g.score != wantScore {
		t.Errorf("score = %d, want %d", g.score, wantScore)
	}
	if g.roundBreak != g.cfg.Rounds.BreakTicks {
		t.Fatalf("roundBreak = %d, want %d", g.roundBreak, g.cfg.Rounds.BreakTicks)
	}

	for i := 0; i < g.cfg.Rounds.BreakTicks; i++ {
		g.Step(frame())
	}
	if g.cpu.Health != g.cfg.Fighter.MaxHealth || g.player.Health != g.cfg.Fighter.MaxHealth {
		t.Error("fighters not respawned after round break")
	}
	if g.player.X != g.playerSpawnX() || g.cpu.X != g.cpuSpawnX() {
		t.Error("fighters not returned to spawn positions")
	}
}

func TestWinningMajorityEndsMatch(t *testing.T) {
	g := newTestGame(t)
	g.playerRounds = 1
	g.cpu.X = g.player.X + 2
	g.cpu.Health = 1

	g.Step(frame(core.ActionPrimary))

	st := g.State()
	if !st.GameOver || !st.Victory {
		t.Fatalf("state = %+v, want victorious game over", st)
	}
	if p, c := g.Rounds(); p != 2 || c != 0 {
		t.Errorf("rounds = %d-%d, want 2-0", p, c)
	}
}

func TestLosingMajorityEndsMatch(t *testing.T) {
	g := newTestGame(t)
	g.cpuRounds = 1
	g.player.Health = 0

	g.Step(frame())

	st := g.State()
	if !st.GameOver || st.Victory {
		t.Fatalf("state = %+v, want defeat", st)
	}
}

func TestFightersCannotCross(t *testing.T) {
	g := newTestGame(t)
	g.cpu.X = g.player.X + 1
	before := g.player.X

	g.Step(frame(core.ActionRight))

	if g.player.X != before {
		t.Errorf("player walked through opponent: %v -> %v", before, g.player.X)
	}
}

func TestPlayerStaysInArena(t *testing.T) {
	g := newTestGame(t)
	g.player.X = 3

	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionLeft))
	}
	if g.player.X < 3 {
		t.Errorf("player left the arena: %v", g.player.X)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	ticks := g.tickCount

	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionPrimary))
	}
	if g.tickCount != ticks {
		t.Error("simulation advanced while paused")
	}
	if g.cpu.Health != g.cfg.Fighter.MaxHealth {
		t.Error("attack resolved while paused")
	}
}
