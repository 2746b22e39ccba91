package engine

import (
	"math/rand"

	"github.com/lixenwraith/lanedriver/audio"
	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/storage"
)

// GameContext wires the simulation's state to its collaborators. Audio
// and Store may be nil; every caller degrades gracefully without them.
type GameContext struct {
	State *GameState
	World *World

	Cfg *config.Config

	// Time is the real clock; Clock is game time, frozen during pause.
	// The simulation reads only Clock.
	Time  TimeProvider
	Clock *PausableClock

	// Rand feeds the spawners' uniform lane/type/suppression rolls
	Rand *rand.Rand

	Audio *audio.SoundManager
	Store *storage.Manager
}

// NewGameContext assembles a context over the given real-time source.
func NewGameContext(cfg *config.Config, tp TimeProvider, rng *rand.Rand) *GameContext {
	if rng == nil {
		rng = rand.New(rand.NewSource(tp.Now().UnixNano()))
	}
	return &GameContext{
		State: NewGameState(),
		World: NewWorld(),
		Cfg:   cfg,
		Time:  tp,
		Clock: NewPausableClock(tp),
		Rand:  rng,
	}
}

// PlaySound forwards a fire-and-forget effect to the audio collaborator
func (g *GameContext) PlaySound(s audio.Sound) {
	if g.Audio != nil {
		g.Audio.Play(s)
	}
}
