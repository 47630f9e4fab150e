package core

// RuntimeConfig is the launch context lent to a game for one session.
// It carries the screen dimensions, tick rate and RNG seed; the screen
// buffer itself is passed to Render each frame.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after a tick.
type GameState struct {
	Score    int
	GameOver bool
	Victory  bool // Set with GameOver when the game was won, not lost
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// ExitReason says why a game handed control back to the launcher.
type ExitReason int

const (
	// ExitToMenu means the player pressed Esc/back; the launcher
	// resumes its menu loop.
	ExitToMenu ExitReason = iota

	// ExitQuit means the player quit the whole session.
	ExitQuit
)

// String returns a human-readable name for the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitToMenu:
		return "menu"
	case ExitQuit:
		return "quit"
	default:
		return "unknown"
	}
}
