package game

import (
	"time"

	"github.com/lixenwraith/lanedriver/engine"
)

// activatePowerUp transitions the power-up state machine to
// Active(t, now+duration). Any prior effect is fully reverted first:
// effects never stack, and re-collecting the active type restarts its
// window rather than extending it.
func (s *Simulation) activatePowerUp(t engine.PowerUpType, now time.Time) {
	st := s.ctx.State

	if st.ActivePowerUp != engine.PowerNone {
		st.ActivePowerUp.Revert(&st.PowerUpFlags)
	}

	st.ActivePowerUp = t
	st.PowerUpExpiry = now.Add(t.Duration(s.cfg))
	t.Apply(&st.PowerUpFlags)
}

// expirePowerUp polls the active effect against game time once per
// frame. An effect can outlive its nominal duration by at most one
// frame.
func (s *Simulation) expirePowerUp(now time.Time) {
	st := s.ctx.State
	if st.ActivePowerUp == engine.PowerNone {
		return
	}
	if now.After(st.PowerUpExpiry) {
		st.ActivePowerUp.Revert(&st.PowerUpFlags)
		st.ActivePowerUp = engine.PowerNone
		st.PowerUpExpiry = time.Time{}
	}
}
