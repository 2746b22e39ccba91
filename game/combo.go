package game

import (
	"time"

	"github.com/lixenwraith/lanedriver/audio"
	"github.com/lixenwraith/lanedriver/constants"
)

// registerDodge extends or restarts the combo streak and awards the
// dodge bonus: combo*50, doubled under DoublePoints.
func (s *Simulation) registerDodge(now time.Time) {
	st := s.ctx.State

	if now.Sub(st.LastDodgeTime) < s.cfg.ComboTimeout() {
		st.Combo++
	} else {
		st.Combo = 1
	}
	st.LastDodgeTime = now

	bonus := st.Combo * constants.DodgeBonus
	if st.HasDoublePoints {
		bonus *= 2
	}
	st.Score += bonus

	if st.Combo > 1 {
		s.ctx.PlaySound(audio.SoundCombo)
	}
}

// decayCombo silently zeroes the streak once the window lapses without
// a dodge. Polled per frame; same one-frame staleness tolerance as
// power-up expiry.
func (s *Simulation) decayCombo(now time.Time) {
	st := s.ctx.State
	if st.Combo > 0 && now.Sub(st.LastDodgeTime) > s.cfg.ComboTimeout() {
		st.Combo = 0
	}
}
