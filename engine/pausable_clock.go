package engine

import (
	"time"
)

// PausableClock provides game time that freezes while paused. Power-up
// expiries and combo windows are compared against this clock, so a
// pause never burns their remaining duration.
//
// The clock reads real time through a TimeProvider so tests can drive
// it with a MockTimeProvider.
type PausableClock struct {
	real TimeProvider

	realStartTime   time.Time
	gameStartTime   time.Time
	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock over the given real-time source.
func NewPausableClock(real TimeProvider) *PausableClock {
	now := real.Now()
	return &PausableClock{
		real:          real,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (frozen during pause).
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := pc.real.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns the wall clock, unaffected by pause.
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement. Pausing an already-paused clock is
// a no-op.
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.real.Now()
}

// Resume continues game time advancement. Resuming a running clock is a
// no-op.
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	if !pc.pauseStartTime.IsZero() {
		pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including the
// current pause if one is in progress.
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused && !pc.pauseStartTime.IsZero() {
		total += pc.real.Now().Sub(pc.pauseStartTime)
	}
	return total
}
