package game

import (
	"math"
	"time"

	"github.com/lixenwraith/lanedriver/audio"
	"github.com/lixenwraith/lanedriver/constants"
)

// Step advances the simulation by one frame. Fixed order every tick:
// speed, distance, difficulty, player easing, spawn polls, enemy
// advancement and collision, coin and power-up advancement, power-up
// expiry, combo decay, continuous scoring. An unshielded collision ends
// the run mid-frame; nothing after it runs.
func (s *Simulation) Step() {
	st := s.ctx.State
	if !st.Playing || st.Paused {
		return
	}
	now := s.ctx.Clock.Now()

	st.CurrentSpeed += s.cfg.SpeedIncrement
	dt := s.timeDelta()
	st.Distance += st.CurrentSpeed * dt
	st.DifficultyLevel = int(st.Distance/s.cfg.DifficultyInterval) + 1

	s.easePlayer()
	s.pollSpawns(now)

	if crashed := s.advanceEnemies(now, dt); crashed {
		s.gameOver()
		return
	}
	s.advanceCoins(dt)
	s.advancePowerUps(now, dt)

	s.expirePowerUp(now)
	s.decayCombo(now)

	st.Score += int(math.Floor(st.CurrentSpeed * dt))
}

// timeDelta is the effective per-frame time factor: 1 normally, halved
// under SlowMo, multiplied under Nitro.
func (s *Simulation) timeDelta() float64 {
	dt := 1.0
	if s.ctx.State.HasSlowMo {
		dt *= constants.SlowMoFactor
	}
	if s.ctx.State.HasNitro {
		dt *= constants.NitroFactor
	}
	return dt
}

// easePlayer moves the player toward the target lane center with a
// first-order low-pass. It converges asymptotically and never lands on
// the exact center.
func (s *Simulation) easePlayer() {
	player := s.ctx.World.Player
	targetX := LaneToX(player.Lane, s.cfg.LaneWidth(), player.Width)
	player.X += (targetX - player.X) * constants.LaneEaseFactor
}

// advanceEnemies moves lane traffic, scores dodges, resolves collisions
// and prunes off-screen enemies. Returns true when an unshielded
// collision ends the run.
func (s *Simulation) advanceEnemies(now time.Time, dt float64) bool {
	world := s.ctx.World
	player := world.Player

	kept := world.Enemies[:0]
	for _, e := range world.Enemies {
		e.Y += e.Speed * dt

		// Dodge fires exactly once, when the box clears the player's y
		if !e.Passed && e.Y > player.Y+player.Height {
			e.Passed = true
			s.registerDodge(now)
		}

		if RectsOverlapPadded(
			e.X, e.Y, e.Width, e.Height,
			player.X, player.Y, player.Width, player.Height,
			constants.CollisionPadding,
		) {
			if !s.ctx.State.HasShield {
				world.Enemies = kept
				return true
			}
			// Shielded: pass-through, the enemy exits the bottom
			// normally and is not removed here
		}

		if e.Y <= constants.WorldHeight {
			kept = append(kept, e)
		}
	}
	world.Enemies = kept
	return false
}

// advanceCoins scrolls coins, applies the magnet pull, collects on
// overlap and prunes off-screen coins.
func (s *Simulation) advanceCoins(dt float64) {
	st := s.ctx.State
	world := s.ctx.World
	player := world.Player
	speed := s.scrollSpeed()

	kept := world.Coins[:0]
	for _, c := range world.Coins {
		c.Y += speed * dt
		c.Spin += constants.CoinSpinRate

		if st.HasMagnet {
			dx := player.CenterX() - c.CenterX()
			dy := player.CenterY() - c.CenterY()
			if dx*dx+dy*dy < s.cfg.MagnetRadius*s.cfg.MagnetRadius {
				c.X += dx * constants.MagnetPullFactor
				c.Y += dy * constants.MagnetPullFactor
			}
		}

		if CircleIntersectsRect(
			c.CenterX(), c.CenterY(), c.Size/2,
			player.X, player.Y, player.Width, player.Height,
		) {
			s.collectCoin()
			continue
		}

		if c.Y <= constants.WorldHeight {
			kept = append(kept, c)
		}
	}
	world.Coins = kept
}

// collectCoin applies the wallet and score effect of one coin. Removal
// and effect are atomic within the update pass; a coin can never pay
// twice.
func (s *Simulation) collectCoin() {
	st := s.ctx.State

	value := constants.CoinValue
	if st.HasDoublePoints {
		value *= 2
	}
	st.Coins += value
	st.Score += value * constants.CoinScoreMultiplier

	s.ctx.PlaySound(audio.SoundCoin)
}

// advancePowerUps scrolls power-up tokens, activates on pickup and
// prunes off-screen tokens.
func (s *Simulation) advancePowerUps(now time.Time, dt float64) {
	world := s.ctx.World
	player := world.Player
	speed := s.scrollSpeed()

	kept := world.PowerUps[:0]
	for _, p := range world.PowerUps {
		p.Y += speed * dt
		p.Pulse += constants.PowerUpPulseRate

		if CircleIntersectsRect(
			p.CenterX(), p.CenterY(), p.Size/2,
			player.X, player.Y, player.Width, player.Height,
		) {
			s.activatePowerUp(p.Type, now)
			s.ctx.PlaySound(audio.SoundPowerUp)
			continue
		}

		if p.Y <= constants.WorldHeight {
			kept = append(kept, p)
		}
	}
	world.PowerUps = kept
}

// scrollSpeed is the per-frame fall speed of coins and power-ups at the
// current difficulty.
func (s *Simulation) scrollSpeed() float64 {
	level := s.ctx.State.DifficultyLevel
	return constants.ScrollSpeed + constants.ScrollDifficultyStep*float64(level-1)
}
