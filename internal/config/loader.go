package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "asteroids.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return AsteroidsConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", configFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAsteroidsYAML)
	if err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads an optional config file. Unreadable or invalid files are skipped.
func tryFile(path string) (AsteroidsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AsteroidsConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil || cfg.Validate() != nil {
		return AsteroidsConfig{}, false
	}
	return cfg, true
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (AsteroidsConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// Validate reports every out-of-range value in the configuration.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0,
		"viewport: size must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)

	a := c.Asteroid
	check(a.MinRadius > 0, "asteroid.min_radius must be positive, got %v", a.MinRadius)
	check(a.Tiers >= 1, "asteroid.tiers must be at least 1, got %d", a.Tiers)
	check(a.Kinds >= 1, "asteroid.kinds must be at least 1, got %d", a.Kinds)
	check(a.SpawnCooldown > 0, "asteroid.spawn_cooldown must be positive, got %v", a.SpawnCooldown)
	check(a.SpawnSpeedMin > 0 && a.SpawnSpeedMin <= a.SpawnSpeedMax,
		"asteroid: spawn speed range [%v, %v] is invalid", a.SpawnSpeedMin, a.SpawnSpeedMax)
	check(a.SpawnSpread >= 0 && a.SpawnSpread < 90,
		"asteroid.spawn_spread must be in [0, 90), got %v", a.SpawnSpread)
	check(a.SplitAngleMin > 0 && a.SplitAngleMin <= a.SplitAngleMax && a.SplitAngleMax < 180,
		"asteroid: split angle range [%v, %v] must lie in (0, 180)", a.SplitAngleMin, a.SplitAngleMax)
	check(a.SplitBoost > 1, "asteroid.split_boost must be greater than 1, got %v", a.SplitBoost)

	s := c.Ship
	check(s.Radius > 0, "ship.radius must be positive, got %v", s.Radius)
	check(s.TurnSpeed > 0, "ship.turn_speed must be positive, got %v", s.TurnSpeed)
	check(s.Acceleration > 0, "ship.acceleration must be positive, got %v", s.Acceleration)
	check(s.MaxSpeed > 0, "ship.max_speed must be positive, got %v", s.MaxSpeed)

	pl := c.Platform
	check(pl.Radius > 0, "platform.radius must be positive, got %v", pl.Radius)
	check(pl.Acceleration > 0, "platform.acceleration must be positive, got %v", pl.Acceleration)
	check(pl.MaxSpeed > 0, "platform.max_speed must be positive, got %v", pl.MaxSpeed)

	checkWeapon := func(name string, w WeaponConfig) {
		check(w.Radius > 0, "%s.radius must be positive, got %v", name, w.Radius)
		check(w.Speed > 0, "%s.speed must be positive, got %v", name, w.Speed)
		check(w.Cooldown > 0, "%s.cooldown must be positive, got %v", name, w.Cooldown)
		check(w.Kinds >= 1, "%s.kinds must be at least 1, got %d", name, w.Kinds)
	}
	checkWeapon("primary", c.Primary)
	checkWeapon("secondary", c.Secondary.WeaponConfig)
	check(len(c.Secondary.Angles) > 0, "secondary.angles must not be empty")

	check(c.Explosion.Steps >= 1, "explosion.steps must be at least 1, got %d", c.Explosion.Steps)
	check(c.Explosion.StepDuration > 0, "explosion.step_duration must be positive, got %v", c.Explosion.StepDuration)

	check(c.Levels.Base >= 0 && c.Levels.PerLevel >= 0 && c.Levels.Base+c.Levels.PerLevel > 0,
		"levels: base %d and per_level %d must spawn at least one asteroid", c.Levels.Base, c.Levels.PerLevel)

	checkRules := func(name string, rules ModeRules) {
		check(rules.Boundary == BoundaryKill || rules.Boundary == BoundaryWrap,
			"modes.%s.boundary must be %q or %q, got %q", name, BoundaryKill, BoundaryWrap, rules.Boundary)
		check(rules.Hull == HullFighter || rules.Hull == HullPlatform,
			"modes.%s.hull must be %q or %q, got %q", name, HullFighter, HullPlatform, rules.Hull)
	}
	checkRules("endless", c.Modes.Endless)
	checkRules("level", c.Modes.Level)

	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressLevel, ProgressNone:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time, level or none, got %q",
			c.Difficulty.Progression.Type))
	}

	check(c.GameOver.Restart == RestartEndless || c.GameOver.Restart == RestartSame,
		"game_over.restart must be %q or %q, got %q", RestartEndless, RestartSame, c.GameOver.Restart)

	return errors.Join(errs...)
}

// ParsePreset converts a flag value to a preset. Empty means "keep file values".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset tunes cfg for a difficulty preset. The fixed preset only
// stops the ramp; it keeps the file's initial_level.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	a := &cfg.Asteroid
	switch preset {
	case DifficultyEasy:
		a.SpawnCooldown *= 1.5
		a.SpawnSpeedMax = max(a.SpawnSpeedMin, a.SpawnSpeedMax*0.8)
		cfg.Ship.TurnSpeed *= 1.2
	case DifficultyHard:
		a.SpawnCooldown *= 0.75
		a.SpawnSpeedMin = min(a.SpawnSpeedMax, a.SpawnSpeedMin*1.25)
		cfg.Primary.Cooldown *= 1.25
	}
}
