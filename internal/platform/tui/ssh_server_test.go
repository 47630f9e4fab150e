package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

// fakeGame is a minimal Game for driving the session state machine.
type fakeGame struct {
	id     string
	resets int
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return g.id }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }

func (g *fakeGame) Render(dst *core.Screen) {}

func (g *fakeGame) State() core.GameState { return core.GameState{} }

func fakeEntry(id string) registry.Entry {
	return registry.Entry{
		ID:    id,
		Title: id,
		New:   func() registry.Game { return &fakeGame{id: id} },
	}
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	reg, err := registry.New(fakeEntry("alpha"), fakeEntry("bravo"))
	if err != nil {
		t.Fatalf("registry.New() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewSessionModel(reg, nil, cfg)
}

func pressKey(t *testing.T, m SessionModel, key string) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionSelectStartsGame(t *testing.T) {
	m := newTestSession(t)

	m, _ = pressKey(t, m, "down")
	m, _ = pressKey(t, m, "enter")

	if !m.inGame || m.gameModel == nil {
		t.Fatal("Selecting a game should enter the game state")
	}
	if m.gameModel.game.ID() != "bravo" {
		t.Errorf("Started game %q, expected bravo (second menu item)", m.gameModel.game.ID())
	}
}

func TestSessionEscReturnsToMenuInOneUpdate(t *testing.T) {
	m := newTestSession(t)
	m, _ = pressKey(t, m, "down")
	m, _ = pressKey(t, m, "enter")

	m, cmd := pressKey(t, m, "esc")

	if m.inGame || m.gameModel != nil {
		t.Fatal("Esc should leave the game on the same Update")
	}
	if m.quitting {
		t.Error("Esc should return to the menu, not end the session")
	}
	if isQuitCmd(cmd) {
		t.Error("Esc inside a game must not propagate quit to the session")
	}
	if m.menu.Cursor() != 1 {
		t.Errorf("Menu cursor = %d after round trip, expected preserved 1", m.menu.Cursor())
	}
}

func TestSessionQuitFromGameEndsSession(t *testing.T) {
	m := newTestSession(t)
	m, _ = pressKey(t, m, "enter")

	m, cmd := pressKey(t, m, "q")

	if !m.quitting {
		t.Error("Quit inside a game should end the session")
	}
	if !isQuitCmd(cmd) {
		t.Error("Quit should propagate tea.Quit")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t)

	m, cmd := pressKey(t, m, "q")

	if !m.quitting {
		t.Error("Quit at the menu should end the session")
	}
	if !isQuitCmd(cmd) {
		t.Error("Quit should propagate tea.Quit")
	}
}

func TestSessionConsecutiveLaunchesAreIndependent(t *testing.T) {
	m := newTestSession(t)

	m, _ = pressKey(t, m, "enter")
	first := m.gameModel.game

	m, _ = pressKey(t, m, "esc")
	m, _ = pressKey(t, m, "enter")
	second := m.gameModel.game

	if first == second {
		t.Error("Each launch should get a fresh game instance")
	}
	if fg, ok := second.(*fakeGame); ok && fg.resets != 1 {
		t.Errorf("Second instance saw %d resets, expected 1 (no carried state)", fg.resets)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)
	m, _ = pressKey(t, m, "down")

	m, _ = pressKey(t, m, "tab")
	if m.scores == nil {
		t.Fatal("Tab should open the scoreboard")
	}

	m, cmd := pressKey(t, m, "esc")
	if m.scores != nil {
		t.Fatal("Esc should close the scoreboard")
	}
	if m.quitting || isQuitCmd(cmd) {
		t.Error("Backing out of the scoreboard should not end the session")
	}
	if m.menu.Cursor() != 1 {
		t.Errorf("Menu cursor = %d after scoreboard, expected preserved 1", m.menu.Cursor())
	}
}
