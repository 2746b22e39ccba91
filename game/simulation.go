package game

import (
	"time"

	"github.com/lixenwraith/lanedriver/audio"
	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
)

// Simulation owns one run of the game. It is constructed fresh over a
// GameContext and driven by the host calling Step once per frame.
type Simulation struct {
	ctx   *engine.GameContext
	cfg   *config.Config
	spawn spawnState
}

// NewSimulation creates a simulation over the given context.
func NewSimulation(ctx *engine.GameContext) *Simulation {
	return &Simulation{
		ctx: ctx,
		cfg: ctx.Cfg,
	}
}

// State exposes the run state for the host loop
func (s *Simulation) State() *engine.GameState {
	return s.ctx.State
}

// World exposes the entity stores for the renderer
func (s *Simulation) World() *engine.World {
	return s.ctx.World
}

// Now returns the current game time
func (s *Simulation) Now() time.Time {
	return s.ctx.Clock.Now()
}

// Snapshot builds the read-only HUD view for the renderer, folding in
// collaborator-owned values (persistence totals, sound flag).
func (s *Simulation) Snapshot() engine.HUDSnapshot {
	snap := s.ctx.State.Snapshot(s.ctx.Clock.Now())
	if s.ctx.Store != nil {
		snap.TopScore = s.ctx.Store.TopScore()
		snap.TotalCoins = s.ctx.Store.TotalCoins()
	}
	if s.ctx.Audio != nil {
		snap.SoundOn = !s.ctx.Audio.Muted()
	}
	return snap
}

// Start begins a run from the ready screen. No-op while a run is
// already in progress.
func (s *Simulation) Start() {
	if s.ctx.State.Playing {
		return
	}
	s.beginRun()
}

// Restart abandons any current run and begins a fresh one.
func (s *Simulation) Restart() {
	s.beginRun()
}

func (s *Simulation) beginRun() {
	st := s.ctx.State
	st.Reset()

	lane := s.cfg.LaneCount / 2
	laneWidth := s.cfg.LaneWidth()
	s.ctx.World.Reset(&engine.Player{
		X:      LaneToX(lane, laneWidth, constants.PlayerWidth),
		Y:      constants.PlayerY,
		Width:  constants.PlayerWidth,
		Height: constants.PlayerHeight,
		Lane:   lane,
	})

	st.Playing = true
	if s.ctx.Clock.IsPaused() {
		s.ctx.Clock.Resume()
	}
	s.startSpawners(s.ctx.Clock.Now())

	s.ctx.PlaySound(audio.SoundStart)
	if s.ctx.Audio != nil {
		s.ctx.Audio.StartHum()
	}
}

// Pause freezes the run: game time stops, spawners stop firing, state
// is untouched. Pausing an already-paused (or not running) game is a
// no-op.
func (s *Simulation) Pause() {
	st := s.ctx.State
	if !st.Playing || st.Paused {
		return
	}
	st.Paused = true
	s.ctx.Clock.Pause()
	if s.ctx.Audio != nil {
		s.ctx.Audio.StopHum()
	}
}

// Resume continues a paused run. Spawners restart with a freshly
// computed enemy interval for the current difficulty.
func (s *Simulation) Resume() {
	st := s.ctx.State
	if !st.Playing || !st.Paused {
		return
	}
	st.Paused = false
	s.ctx.Clock.Resume()
	s.resumeSpawners(s.ctx.Clock.Now())
	if s.ctx.Audio != nil {
		s.ctx.Audio.StartHum()
	}
}

// TogglePause maps the single pause key onto Pause/Resume.
func (s *Simulation) TogglePause() {
	if s.ctx.State.Paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// RequestLaneShift moves the target lane by delta (-1 or +1), clamped
// to the lane range. No-op unless playing and unpaused.
func (s *Simulation) RequestLaneShift(delta int) {
	st := s.ctx.State
	if !st.Playing || st.Paused {
		return
	}

	player := s.ctx.World.Player
	lane := ClampLane(player.Lane+delta, s.cfg.LaneCount)
	if lane == player.Lane {
		return
	}
	player.Lane = lane
	s.ctx.PlaySound(audio.SoundWhoosh)
}

// ResetTopScore forces the persisted top score to zero.
func (s *Simulation) ResetTopScore() {
	if s.ctx.Store != nil {
		s.ctx.Store.ResetTopScore()
	}
	s.ctx.PlaySound(audio.SoundBeep)
}

// ToggleSound flips the audio collaborator's mute flag.
func (s *Simulation) ToggleSound() {
	if s.ctx.Audio == nil {
		return
	}
	muted := !s.ctx.Audio.Muted()
	s.ctx.Audio.SetMuted(muted)
	if !muted {
		s.ctx.Audio.Play(audio.SoundBeep)
		if s.ctx.State.Playing && !s.ctx.State.Paused {
			s.ctx.Audio.StartHum()
		}
	}
}

// gameOver is the terminal transition: an unshielded collision ends the
// run immediately. Persistence writes are fire-and-forget.
func (s *Simulation) gameOver() {
	st := s.ctx.State
	st.Playing = false
	st.Over = true

	if s.ctx.Store != nil {
		st.NewRecord = s.ctx.Store.RecordRun(st.Score, st.Coins)
	}

	s.ctx.PlaySound(audio.SoundCrash)
	if s.ctx.Audio != nil {
		s.ctx.Audio.StopHum()
	}
}
