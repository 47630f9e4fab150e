package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/registry"
	"github.com/pixeldrift/arcade-hall/internal/storage"
)

// roundsReporter is implemented by versus games that track a round
// tally worth persisting.
type roundsReporter interface {
	Rounds() (player, cpu int)
}

// Model is the Bubble Tea model for running one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	exit        core.ExitReason
	quitting    bool
	resultSaved bool // Score/match already persisted for this game over
	startedAt   time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		exit:       core.ExitToMenu,
		startedAt:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Back exits to the menu and Quit
// leaves the program entirely; both take effect on this update, before
// the next frame renders.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.exit = core.ExitQuit
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.exit = core.ExitToMenu
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
		return m, nil
	case core.ActionNone:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen buffer; a running game restarts with
// the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// A restart is a fresh session: new seed, nothing carried over.
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished game, best effort. A missing store
// never interrupts play.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	if vs, ok := m.game.(roundsReporter); ok {
		player, cpu := vs.Rounds()
		//nolint:errcheck // Best-effort save
		m.store.SaveMatch(storage.MatchResult{
			GameID:       m.game.ID(),
			PlayerRounds: player,
			CPURounds:    cpu,
			Won:          m.gameState.Victory,
			DurationSecs: int(time.Since(m.startedAt).Seconds()),
		})
	}
}

// saveScreenshot dumps the current frame to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade-hall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// ExitReason reports how the session ended.
func (m Model) ExitReason() core.ExitReason {
	return m.exit
}

// Run plays one game session and reports how it ended: back to the
// menu or out of the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (core.ExitReason, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.ExitQuit, err
	}

	if m, ok := final.(Model); ok {
		return m.ExitReason(), nil
	}
	return core.ExitQuit, nil
}
