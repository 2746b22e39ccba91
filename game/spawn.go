package game

import (
	"time"

	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
)

// spawnState holds the three independent spawn schedules. All are
// expressed in game time, so a pause freezes them implicitly; resume
// additionally reschedules with a freshly computed enemy interval.
type spawnState struct {
	enemyInterval time.Duration
	enemyNext     time.Time
	coinNext      time.Time
	powerNext     time.Time
}

// startSpawners computes intervals for the current difficulty and
// schedules the first fire of each spawner.
func (s *Simulation) startSpawners(now time.Time) {
	s.spawn.enemyInterval = s.enemySpawnInterval()
	s.spawn.enemyNext = now.Add(s.spawn.enemyInterval)
	s.spawn.coinNext = now.Add(s.cfg.CoinSpawnRate())
	s.spawn.powerNext = now.Add(s.cfg.PowerUpSpawnRate())
}

// resumeSpawners is startSpawners under a different name: the enemy
// interval is recomputed only when spawners (re)start, never
// continuously.
func (s *Simulation) resumeSpawners(now time.Time) {
	s.startSpawners(now)
}

// enemySpawnInterval shrinks with difficulty down to the configured
// floor: max(min, base - level*shrink).
func (s *Simulation) enemySpawnInterval() time.Duration {
	level := time.Duration(s.ctx.State.DifficultyLevel)
	interval := s.cfg.EnemySpawnRate() - level*s.cfg.EnemySpawnShrink()
	if interval < s.cfg.MinEnemySpawnRate() {
		interval = s.cfg.MinEnemySpawnRate()
	}
	return interval
}

// pollSpawns fires every due spawner. Each schedule advances by its own
// interval regardless of whether the spawn was suppressed or rejected,
// so rejection skips a beat rather than retrying.
func (s *Simulation) pollSpawns(now time.Time) {
	for !now.Before(s.spawn.enemyNext) {
		s.spawnEnemy()
		s.spawn.enemyNext = s.spawn.enemyNext.Add(s.spawn.enemyInterval)
	}
	for !now.Before(s.spawn.coinNext) {
		s.spawnCoin()
		s.spawn.coinNext = s.spawn.coinNext.Add(s.cfg.CoinSpawnRate())
	}
	for !now.Before(s.spawn.powerNext) {
		s.spawnPowerUp()
		s.spawn.powerNext = s.spawn.powerNext.Add(s.cfg.PowerUpSpawnRate())
	}
}

// spawnEnemy picks a uniform-random lane and delegates to the placement
// check.
func (s *Simulation) spawnEnemy() bool {
	return s.spawnEnemyInLane(s.ctx.Rand.Intn(s.cfg.LaneCount))
}

// spawnEnemyInLane places an enemy at the top of the lane unless
// another enemy there is still within two enemy-heights of the top
// (prevents stacked spawns). Spawn speed follows the difficulty
// formula; it is not clamped to MaxEnemySpeed.
func (s *Simulation) spawnEnemyInLane(lane int) bool {
	world := s.ctx.World
	if world.EnemyInLaneNear(lane, constants.EnemySpawnClearance*constants.EnemyHeight) {
		return false
	}

	speed := s.cfg.InitialEnemySpeed + float64(s.ctx.State.DifficultyLevel)*s.cfg.EnemySpeedStep

	world.Enemies = append(world.Enemies, &engine.Enemy{
		X:      LaneToX(lane, s.cfg.LaneWidth(), constants.EnemyWidth),
		Y:      -constants.EnemyHeight,
		Width:  constants.EnemyWidth,
		Height: constants.EnemyHeight,
		Lane:   lane,
		Speed:  speed,
	})
	return true
}

// spawnCoin picks a uniform-random lane and delegates to the placement
// check.
func (s *Simulation) spawnCoin() bool {
	return s.spawnCoinInLane(s.ctx.Rand.Intn(s.cfg.LaneCount))
}

// spawnCoinInLane places a coin unless an enemy in the lane is within
// three coin-sizes of the top, which would make the coin uncollectable
// bait.
func (s *Simulation) spawnCoinInLane(lane int) bool {
	world := s.ctx.World
	if world.EnemyInLaneNear(lane, constants.CoinSpawnClearance*constants.CoinSize) {
		return false
	}

	world.Coins = append(world.Coins, &engine.Coin{
		X:    LaneToX(lane, s.cfg.LaneWidth(), constants.CoinSize),
		Y:    -constants.CoinSize,
		Size: constants.CoinSize,
		Lane: lane,
	})
	return true
}

// spawnPowerUp suppresses half of all due spawns, then places a
// uniform-random type in a uniform-random lane. No occupancy check:
// overlap with enemies or coins is allowed.
func (s *Simulation) spawnPowerUp() bool {
	if s.ctx.Rand.Float64() < constants.PowerUpSuppressChance {
		return false
	}

	pool := engine.SpawnablePowerUps(s.cfg.ExtendedPowerUps)
	typ := pool[s.ctx.Rand.Intn(len(pool))]
	lane := s.ctx.Rand.Intn(s.cfg.LaneCount)

	s.spawnPowerUpInLane(lane, typ)
	return true
}

func (s *Simulation) spawnPowerUpInLane(lane int, typ engine.PowerUpType) {
	s.ctx.World.PowerUps = append(s.ctx.World.PowerUps, &engine.PowerUp{
		X:    LaneToX(lane, s.cfg.LaneWidth(), constants.PowerUpSize),
		Y:    -constants.PowerUpSize,
		Size: constants.PowerUpSize,
		Lane: lane,
		Type: typ,
	})
}
