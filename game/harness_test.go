package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/engine"
)

var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestSim builds a simulation over a mock clock with a fixed rng
// seed. Audio and storage are left nil; every call site degrades.
func newTestSim(t *testing.T) (*Simulation, *engine.MockTimeProvider) {
	t.Helper()
	mock := engine.NewMockTimeProvider(testStart)
	ctx := engine.NewGameContext(config.Default(), mock, rand.New(rand.NewSource(1)))
	return NewSimulation(ctx), mock
}

// startedSim is newTestSim with a run already in progress.
func startedSim(t *testing.T) (*Simulation, *engine.MockTimeProvider) {
	t.Helper()
	sim, mock := newTestSim(t)
	sim.Start()
	return sim, mock
}
