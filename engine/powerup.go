package engine

import (
	"time"

	"github.com/lixenwraith/lanedriver/config"
)

// PowerUpType is a closed enum of timed effects. At most one is active
// at a time; activation fully reverts the previous effect first.
type PowerUpType int

const (
	PowerNone PowerUpType = iota
	PowerShield
	PowerMagnet
	PowerSlowMo
	PowerDoublePoints
	// PowerNitro is the extended-variant effect, present in the spawn
	// pool only when config.ExtendedPowerUps is set
	PowerNitro

	powerUpTypeCount
)

// SpawnablePowerUps returns the pool the spawner draws from.
func SpawnablePowerUps(extended bool) []PowerUpType {
	pool := []PowerUpType{PowerShield, PowerMagnet, PowerSlowMo, PowerDoublePoints}
	if extended {
		pool = append(pool, PowerNitro)
	}
	return pool
}

// String returns the display name
func (t PowerUpType) String() string {
	switch t {
	case PowerNone:
		return "none"
	case PowerShield:
		return "shield"
	case PowerMagnet:
		return "magnet"
	case PowerSlowMo:
		return "slow-mo"
	case PowerDoublePoints:
		return "double points"
	case PowerNitro:
		return "nitro"
	default:
		return "unknown"
	}
}

// Duration returns the configured active window for the effect.
func (t PowerUpType) Duration(cfg *config.Config) time.Duration {
	var ms int
	switch t {
	case PowerShield:
		ms = cfg.ShieldDurationMs
	case PowerMagnet:
		ms = cfg.MagnetDurationMs
	case PowerSlowMo:
		ms = cfg.SlowMoDurationMs
	case PowerDoublePoints:
		ms = cfg.DoublePointsDurationMs
	case PowerNitro:
		ms = cfg.NitroDurationMs
	default:
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Apply sets the effect's flag. The caller reverts any prior effect
// first; flags never stack.
func (t PowerUpType) Apply(f *PowerUpFlags) {
	switch t {
	case PowerShield:
		f.HasShield = true
	case PowerMagnet:
		f.HasMagnet = true
	case PowerSlowMo:
		f.HasSlowMo = true
	case PowerDoublePoints:
		f.HasDoublePoints = true
	case PowerNitro:
		f.HasNitro = true
	case PowerNone:
	}
}

// Revert clears the effect's flag.
func (t PowerUpType) Revert(f *PowerUpFlags) {
	switch t {
	case PowerShield:
		f.HasShield = false
	case PowerMagnet:
		f.HasMagnet = false
	case PowerSlowMo:
		f.HasSlowMo = false
	case PowerDoublePoints:
		f.HasDoublePoints = false
	case PowerNitro:
		f.HasNitro = false
	case PowerNone:
	}
}

// PowerUpFlags are the per-effect booleans the simulation branches on.
type PowerUpFlags struct {
	HasShield       bool
	HasMagnet       bool
	HasSlowMo       bool
	HasDoublePoints bool
	HasNitro        bool
}
