package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation/render tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// World Geometry Constants
//
// The simulation runs in a fixed virtual viewport; the renderer maps
// world units to terminal cells each frame.
const (
	WorldWidth  = 400.0
	WorldHeight = 600.0

	DefaultLaneCount = 3

	PlayerWidth  = 50.0
	PlayerHeight = 80.0
	// PlayerY is the fixed vertical position of the player's top edge
	PlayerY = 450.0

	EnemyWidth  = 50.0
	EnemyHeight = 80.0

	CoinSize    = 30.0
	PowerUpSize = 35.0
)

// Movement Constants
const (
	// LaneEaseFactor is the per-frame first-order interpolation toward
	// the target lane. The player converges asymptotically, never
	// snapping to the exact lane center.
	LaneEaseFactor = 0.15

	// ScrollSpeed is the base per-frame fall speed of coins and
	// power-ups, before difficulty scaling
	ScrollSpeed = 4.0

	// ScrollDifficultyStep is added to ScrollSpeed per difficulty level
	// above the first
	ScrollDifficultyStep = 0.5

	// SpeedIncrement is the per-frame additive growth of currentSpeed
	SpeedIncrement = 0.002
)

// Collision Constants
const (
	// CollisionPadding is the symmetric inward margin applied to both
	// rectangles in the enemy/player overlap test. Forgiveness margin:
	// near misses look like misses.
	CollisionPadding = 10.0
)

// Scoring Constants
const (
	// DodgeBonus is awarded per dodge, multiplied by the combo streak
	DodgeBonus = 50

	// CoinValue is the wallet value of one coin before multipliers
	CoinValue = 1

	// CoinScoreMultiplier converts coin value to score points
	CoinScoreMultiplier = 10

	// ComboTimeout is the rolling window within which consecutive
	// dodges extend the streak
	ComboTimeout = 2000 * time.Millisecond
)

// Difficulty Constants
const (
	// DifficultyInterval is the distance between difficulty steps;
	// level = floor(distance/interval) + 1
	DifficultyInterval = 5000.0

	InitialEnemySpeed = 5.0

	// MaxEnemySpeed is defined as a tunable cap but the spawn-speed
	// formula does not clamp against it. Kept as-is; enemy speed grows
	// unbounded with difficulty.
	MaxEnemySpeed = 15.0

	// EnemySpeedStep is added to enemy spawn speed per difficulty level
	EnemySpeedStep = 0.5

	EnemySpawnInterval    = 1500 * time.Millisecond
	MinEnemySpawnInterval = 500 * time.Millisecond

	// EnemySpawnShrinkStep shortens the enemy spawn interval per
	// difficulty level, recomputed when spawners (re)start
	EnemySpawnShrinkStep = 100 * time.Millisecond

	CoinSpawnInterval    = 1000 * time.Millisecond
	PowerUpSpawnInterval = 8 * time.Second
)

// Power-Up Constants
const (
	ShieldDuration       = 5 * time.Second
	MagnetDuration       = 8 * time.Second
	SlowMoDuration       = 5 * time.Second
	DoublePointsDuration = 10 * time.Second
	NitroDuration        = 4 * time.Second

	// MagnetRadius is the pull range around the player center
	MagnetRadius = 150.0

	// MagnetPullFactor is the per-frame interpolation of a coin toward
	// the player while Magnet is active
	MagnetPullFactor = 0.1

	// SlowMoFactor halves the effective per-frame time delta
	SlowMoFactor = 0.5

	// NitroFactor multiplies the effective per-frame time delta
	NitroFactor = 1.8
)

// Spawn Occupancy Constants
const (
	// EnemySpawnClearance rejects an enemy spawn when another enemy in
	// the lane is still within this many enemy-heights of the top
	EnemySpawnClearance = 2.0

	// CoinSpawnClearance rejects a coin spawn when an enemy in the lane
	// is within this many coin-sizes of the top
	CoinSpawnClearance = 3.0

	// PowerUpSuppressChance is the probability that a due power-up
	// spawn is skipped entirely, halving the effective rate
	PowerUpSuppressChance = 0.5
)

// Cosmetic Constants
const (
	// CoinSpinRate advances the coin rotation phase per frame
	CoinSpinRate = 0.15

	// PowerUpPulseRate advances the power-up pulse phase per frame
	PowerUpPulseRate = 0.1
)
