package engine

import (
	"time"
)

// GameState is the run-scoped mutable state. It is owned exclusively by
// the simulation goroutine: the update pass, render snapshot, and input
// handling all execute on the same thread of control, so fields are
// plain values with no locking.
type GameState struct {
	// Lifecycle
	Playing bool
	Paused  bool
	Over    bool

	// Scoring
	Score int
	Coins int
	Combo int
	// LastDodgeTime anchors the rolling combo window (game time)
	LastDodgeTime time.Time

	// Progression
	Distance float64
	// CurrentSpeed only grows during a run; it resets on restart
	CurrentSpeed float64
	// DifficultyLevel = floor(Distance/interval) + 1, recomputed every
	// frame as a monotonic threshold
	DifficultyLevel int

	// Power-up state machine: Idle when ActivePowerUp == PowerNone,
	// otherwise Active(type, expiry). Expiry is polled once per frame,
	// so an effect may outlive its nominal duration by up to one frame.
	PowerUpFlags
	ActivePowerUp PowerUpType
	PowerUpExpiry time.Time

	// Session-end bookkeeping for the game-over overlay
	NewRecord bool
}

// NewGameState creates state for a fresh run.
func NewGameState() *GameState {
	return &GameState{
		CurrentSpeed:    1.0,
		DifficultyLevel: 1,
	}
}

// Reset returns the state to run-start values.
func (gs *GameState) Reset() {
	*gs = GameState{
		CurrentSpeed:    1.0,
		DifficultyLevel: 1,
	}
}

// PowerUpActive reports whether a timed effect is running.
func (gs *GameState) PowerUpActive() bool {
	return gs.ActivePowerUp != PowerNone
}

// PowerUpRemaining returns the effect time left at now, zero when idle.
func (gs *GameState) PowerUpRemaining(now time.Time) time.Duration {
	if gs.ActivePowerUp == PowerNone {
		return 0
	}
	remaining := gs.PowerUpExpiry.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HUDSnapshot is the read-only view the renderer consumes each frame.
type HUDSnapshot struct {
	Playing bool
	Paused  bool
	Over    bool

	Score           int
	Coins           int
	Combo           int
	DifficultyLevel int
	Distance        float64

	ActivePowerUp    PowerUpType
	PowerUpRemaining time.Duration

	TopScore   int
	TotalCoins int
	NewRecord  bool

	SoundOn bool
}

// Snapshot captures HUD state at now. Persistence totals and the sound
// flag are filled in by the caller, which owns those collaborators.
func (gs *GameState) Snapshot(now time.Time) HUDSnapshot {
	return HUDSnapshot{
		Playing:          gs.Playing,
		Paused:           gs.Paused,
		Over:             gs.Over,
		Score:            gs.Score,
		Coins:            gs.Coins,
		Combo:            gs.Combo,
		DifficultyLevel:  gs.DifficultyLevel,
		Distance:         gs.Distance,
		ActivePowerUp:    gs.ActivePowerUp,
		PowerUpRemaining: gs.PowerUpRemaining(now),
		NewRecord:        gs.NewRecord,
	}
}
