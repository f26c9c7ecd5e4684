// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import "github.com/vovakirdan/tui-asteroids/internal/core"

// AsteroidsConfig contains all tunable parameters of the game.
// Units are world pixels, seconds and degrees.
type AsteroidsConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Ship       ShipConfig       `yaml:"ship"`
	Platform   PlatformConfig   `yaml:"platform"`
	Primary    WeaponConfig     `yaml:"primary"`
	Secondary  SpreadConfig     `yaml:"secondary"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Levels     LevelsConfig     `yaml:"levels"`
	Modes      ModesConfig      `yaml:"modes"`
	GameOver   GameOverConfig   `yaml:"game_over"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the logical play area.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bounds returns the viewport as a core.Viewport.
func (v ViewportConfig) Bounds() core.Viewport {
	return core.Viewport{Width: v.Width, Height: v.Height}
}

// AsteroidConfig defines asteroid size, spawning and splitting.
type AsteroidConfig struct {
	MinRadius     float64 `yaml:"min_radius"`     // radius of a tier-1 asteroid; tier n has n*min_radius
	Tiers         int     `yaml:"tiers"`          // largest size tier
	Kinds         int     `yaml:"kinds"`          // cosmetic sprite variants
	SpawnCooldown float64 `yaml:"spawn_cooldown"` // seconds between edge spawns (endless)
	SpawnSpeedMin float64 `yaml:"spawn_speed_min"`
	SpawnSpeedMax float64 `yaml:"spawn_speed_max"`
	SpawnSpread   float64 `yaml:"spawn_spread"` // max deviation from the inward normal
	SplitAngleMin float64 `yaml:"split_angle_min"`
	SplitAngleMax float64 `yaml:"split_angle_max"`
	SplitBoost    float64 `yaml:"split_boost"` // child speed multiplier
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	Radius       float64 `yaml:"radius"`
	TurnSpeed    float64 `yaml:"turn_speed"`    // degrees per second
	Acceleration float64 `yaml:"acceleration"`  // pixels per second squared
	MaxSpeed     float64 `yaml:"max_speed"`     // pixels per second
	StartHeading float64 `yaml:"start_heading"` // 180 points up the screen
}

// PlatformConfig defines the defense platform hull. It never turns; four
// engines push it along the screen axes.
type PlatformConfig struct {
	Radius       float64 `yaml:"radius"`
	Acceleration float64 `yaml:"acceleration"` // per engine, pixels per second squared
	MaxSpeed     float64 `yaml:"max_speed"`    // pushes that would reach it are dropped
}

// WeaponConfig defines a single-shot gun.
type WeaponConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Cooldown float64 `yaml:"cooldown"`
	Kinds    int     `yaml:"kinds"` // cosmetic sprite variants
}

// SpreadConfig defines the secondary weapon that fires one projectile per angle.
type SpreadConfig struct {
	WeaponConfig `yaml:",inline"`
	Angles       []float64 `yaml:"angles"`
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	Steps        int     `yaml:"steps"`
	StepDuration float64 `yaml:"step_duration"`
}

// LevelsConfig defines the level progression: Level n spawns
// base + per_level*n asteroids, capped at max.
type LevelsConfig struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
	Max      int `yaml:"max"`
}

// Count returns the number of asteroids spawned at the start of level n.
func (l LevelsConfig) Count(n int) int {
	c := l.Base + l.PerLevel*n
	if l.Max > 0 && c > l.Max {
		c = l.Max
	}
	return max(c, 1)
}

// Boundary policies for entities leaving the viewport.
const (
	BoundaryKill = "kill"
	BoundaryWrap = "wrap"
)

// Ship hulls.
const (
	HullFighter  = "fighter"  // turns and thrusts along its heading
	HullPlatform = "platform" // strafes on four engines, aims at the pointer
)

// ModeRules defines the per-mode simulation rules.
type ModeRules struct {
	Boundary  string `yaml:"boundary"`  // "kill" or "wrap"
	Secondary bool   `yaml:"secondary"` // whether the spread weapon is armed
	Hull      string `yaml:"hull"`      // "fighter" or "platform"
}

// ModesConfig holds the rules for each playing mode.
type ModesConfig struct {
	Endless ModeRules `yaml:"endless"`
	Level   ModeRules `yaml:"level"`
}

// Restart targets after game over.
const (
	RestartEndless = "endless" // always start a new endless round
	RestartSame    = "same"    // replay the mode that was lost (levels restart at 1)
)

// GameOverConfig defines the game over screen behavior.
type GameOverConfig struct {
	Restart string `yaml:"restart"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "level" or "none"
	MaxAt int    `yaml:"max_at"` // Score, tick or level count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Multiplier added to asteroid speed at max difficulty
	SpawnReduction   float64 `yaml:"spawn_reduction"`    // Fraction of the spawn cooldown removed at max difficulty
	MinSpawnCooldown float64 `yaml:"min_spawn_cooldown"` // Floor for the scaled spawn cooldown
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
