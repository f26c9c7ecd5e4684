package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// Default returns the hardcoded default configuration. It mirrors
// defaults/asteroids.yaml and is the last resort of Load.
func Default() AsteroidsConfig {
	return AsteroidsConfig{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Asteroid: AsteroidConfig{
			MinRadius:     20,
			Tiers:         3,
			Kinds:         3,
			SpawnCooldown: 0.8,
			SpawnSpeedMin: 40,
			SpawnSpeedMax: 100,
			SpawnSpread:   30,
			SplitAngleMin: 20,
			SplitAngleMax: 50,
			SplitBoost:    1.2,
		},
		Ship: ShipConfig{
			Radius:       20,
			TurnSpeed:    300,
			Acceleration: 600,
			MaxSpeed:     400,
			StartHeading: 180,
		},
		Platform: PlatformConfig{
			Radius:       30,
			Acceleration: 450,
			MaxSpeed:     300,
		},
		Primary: WeaponConfig{
			Radius:   5,
			Speed:    500,
			Cooldown: 0.3,
			Kinds:    3,
		},
		Secondary: SpreadConfig{
			WeaponConfig: WeaponConfig{
				Radius:   7,
				Speed:    400,
				Cooldown: 1.2,
				Kinds:    2,
			},
			Angles: []float64{-20, 0, 20},
		},
		Explosion: ExplosionConfig{
			Steps:        5,
			StepDuration: 0.08,
		},
		Levels: LevelsConfig{
			Base:     0,
			PerLevel: 2,
			Max:      40,
		},
		Modes: ModesConfig{
			Endless: ModeRules{Boundary: BoundaryKill, Secondary: false, Hull: HullFighter},
			Level:   ModeRules{Boundary: BoundaryWrap, Secondary: true, Hull: HullPlatform},
		},
		GameOver: GameOverConfig{
			Restart: RestartEndless,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				SpawnReduction:   0.5,
				MinSpawnCooldown: 0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
