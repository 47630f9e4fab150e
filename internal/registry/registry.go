// Package registry defines the game contract and the table that maps
// game identifiers to their factories. The table is built explicitly at
// startup and immutable afterwards; the launcher receives it as a value
// rather than reaching into process-wide state.
package registry

import (
	"fmt"
	"sort"

	"github.com/pixeldrift/arcade-hall/internal/core"
)

// Game is the interface every arcade game implements. Games contain
// pure simulation logic with no terminal dependencies; the platform
// handles input mapping, timing and display.
type Game interface {
	// ID returns the unique identifier used for CLI commands and
	// score storage (e.g. "rumble", "heist").
	ID() string

	// Title returns the display name (e.g. "Rocket Rumble").
	Title() string

	// Reset initializes or restarts the game for the given runtime
	// config. Called once at launch and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score/game-over/pause status.
	State() core.GameState
}

// Factory creates a fresh game instance. Each launch gets its own
// instance so consecutive sessions share no state.
type Factory func() Game

// Entry describes one registered game.
type Entry struct {
	ID    string
	Title string
	New   Factory
}

// Info is the metadata exposed to menus and CLI listings.
type Info struct {
	ID    string
	Title string
}

// Registry is an immutable identifier -> factory table.
type Registry struct {
	entries []Entry
	byID    map[string]Entry
}

// New builds a registry from the given entries. It fails if an
// identifier repeats or an entry point is not resolvable, so a broken
// table is caught at launch time rather than at selection time.
func New(entries ...Entry) (*Registry, error) {
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("registry: entry %q has empty id", e.Title)
		}
		if e.New == nil {
			return nil, fmt.Errorf("registry: game %q has no factory", e.ID)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("registry: game %q registered twice", e.ID)
		}
		byID[e.ID] = e
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &Registry{entries: sorted, byID: byID}, nil
}

// List returns metadata for all registered games, sorted by ID.
func (r *Registry) List() []Info {
	infos := make([]Info, len(r.entries))
	for i, e := range r.entries {
		infos[i] = Info{ID: e.ID, Title: e.Title}
	}
	return infos
}

// Create instantiates a new game by its ID. Unknown identifiers return
// an error; callers surface it without crashing.
func (r *Registry) Create(id string) (Game, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	g := e.New()
	if g == nil {
		return nil, fmt.Errorf("registry: factory for %q returned nil", id)
	}
	return g, nil
}

// Exists reports whether a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Title returns the display name for an ID, or the ID itself when the
// game is not registered.
func (r *Registry) Title(id string) string {
	if e, ok := r.byID[id]; ok {
		return e.Title
	}
	return id
}
