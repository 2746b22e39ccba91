package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lanedriver/constants"
)

// Config holds all tunable simulation parameters. Zero-valued fields in
// a loaded file fall back to defaults; durations are expressed in
// milliseconds for yaml friendliness.
type Config struct {
	LaneCount int `yaml:"laneCount"`

	InitialEnemySpeed float64 `yaml:"initialEnemySpeed"`
	// MaxEnemySpeed is a tunable cap that the spawn-speed formula does
	// not currently enforce. See constants.MaxEnemySpeed.
	MaxEnemySpeed  float64 `yaml:"maxEnemySpeed"`
	EnemySpeedStep float64 `yaml:"enemySpeedStep"`

	EnemySpawnRateMs    int `yaml:"enemySpawnRateMs"`
	MinEnemySpawnRateMs int `yaml:"minEnemySpawnRateMs"`
	EnemySpawnShrinkMs  int `yaml:"enemySpawnShrinkMs"`
	CoinSpawnRateMs     int `yaml:"coinSpawnRateMs"`
	PowerUpSpawnRateMs  int `yaml:"powerUpSpawnRateMs"`

	DifficultyInterval float64 `yaml:"difficultyInterval"`
	SpeedIncrement     float64 `yaml:"speedIncrement"`

	ComboTimeoutMs int `yaml:"comboTimeoutMs"`

	ShieldDurationMs       int     `yaml:"shieldDurationMs"`
	MagnetDurationMs       int     `yaml:"magnetDurationMs"`
	SlowMoDurationMs       int     `yaml:"slowMoDurationMs"`
	DoublePointsDurationMs int     `yaml:"doublePointsDurationMs"`
	NitroDurationMs        int     `yaml:"nitroDurationMs"`
	MagnetRadius           float64 `yaml:"magnetRadius"`

	// ExtendedPowerUps enables the Nitro variant in the spawn pool
	ExtendedPowerUps bool `yaml:"extendedPowerUps"`

	SoundEnabled bool `yaml:"soundEnabled"`
}

// Default returns the built-in tuning.
func Default() *Config {
	return &Config{
		LaneCount:              constants.DefaultLaneCount,
		InitialEnemySpeed:      constants.InitialEnemySpeed,
		MaxEnemySpeed:          constants.MaxEnemySpeed,
		EnemySpeedStep:         constants.EnemySpeedStep,
		EnemySpawnRateMs:       int(constants.EnemySpawnInterval / time.Millisecond),
		MinEnemySpawnRateMs:    int(constants.MinEnemySpawnInterval / time.Millisecond),
		EnemySpawnShrinkMs:     int(constants.EnemySpawnShrinkStep / time.Millisecond),
		CoinSpawnRateMs:        int(constants.CoinSpawnInterval / time.Millisecond),
		PowerUpSpawnRateMs:     int(constants.PowerUpSpawnInterval / time.Millisecond),
		DifficultyInterval:     constants.DifficultyInterval,
		SpeedIncrement:         constants.SpeedIncrement,
		ComboTimeoutMs:         int(constants.ComboTimeout / time.Millisecond),
		ShieldDurationMs:       int(constants.ShieldDuration / time.Millisecond),
		MagnetDurationMs:       int(constants.MagnetDuration / time.Millisecond),
		SlowMoDurationMs:       int(constants.SlowMoDuration / time.Millisecond),
		DoublePointsDurationMs: int(constants.DoublePointsDuration / time.Millisecond),
		NitroDurationMs:        int(constants.NitroDuration / time.Millisecond),
		MagnetRadius:           constants.MagnetRadius,
		ExtendedPowerUps:       true,
		SoundEnabled:           true,
	}
}

// Load reads a yaml tuning file over the defaults. A missing path is
// not an error; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.LaneCount < 2 {
		return fmt.Errorf("laneCount must be at least 2, got %d", c.LaneCount)
	}
	if c.EnemySpawnRateMs <= 0 || c.CoinSpawnRateMs <= 0 || c.PowerUpSpawnRateMs <= 0 {
		return fmt.Errorf("spawn rates must be positive")
	}
	if c.MinEnemySpawnRateMs <= 0 || c.MinEnemySpawnRateMs > c.EnemySpawnRateMs {
		return fmt.Errorf("minEnemySpawnRateMs must be in (0, enemySpawnRateMs]")
	}
	if c.DifficultyInterval <= 0 {
		return fmt.Errorf("difficultyInterval must be positive")
	}
	if c.ComboTimeoutMs <= 0 {
		return fmt.Errorf("comboTimeoutMs must be positive")
	}
	return nil
}

// LaneWidth returns the width of one lane in world units.
func (c *Config) LaneWidth() float64 {
	return constants.WorldWidth / float64(c.LaneCount)
}

func (c *Config) EnemySpawnRate() time.Duration {
	return time.Duration(c.EnemySpawnRateMs) * time.Millisecond
}

func (c *Config) MinEnemySpawnRate() time.Duration {
	return time.Duration(c.MinEnemySpawnRateMs) * time.Millisecond
}

func (c *Config) EnemySpawnShrink() time.Duration {
	return time.Duration(c.EnemySpawnShrinkMs) * time.Millisecond
}

func (c *Config) CoinSpawnRate() time.Duration {
	return time.Duration(c.CoinSpawnRateMs) * time.Millisecond
}

func (c *Config) PowerUpSpawnRate() time.Duration {
	return time.Duration(c.PowerUpSpawnRateMs) * time.Millisecond
}

func (c *Config) ComboTimeout() time.Duration {
	return time.Duration(c.ComboTimeoutMs) * time.Millisecond
}
