package config

import "math"

// Progression kinds for difficulty.progression.type.
const (
	ProgressScore = "score" // max_at is a score
	ProgressTime  = "time"  // max_at is a tick count
	ProgressLevel = "level" // max_at is a level number; endless rounds stay at the start value
	ProgressNone  = "none"
)

// Progress is how far a round has come, as seen by the difficulty ramp.
type Progress struct {
	Score int
	Ticks int
	Level int
}

// Ramp turns round progress into a difficulty value in [start, 1] and scales
// asteroid speed and the endless spawn interval by it.
type Ramp struct {
	cfg   DifficultyConfig
	start float64
}

// NewRamp builds a ramp. initial_level is clamped to [0, 1].
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg, start: clamp01(cfg.InitialLevel)}
}

// Active reports whether difficulty moves during a round.
func (r *Ramp) Active() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != ProgressNone
}

// Value returns the difficulty for p.
func (r *Ramp) Value(p Progress) float64 {
	if !r.Active() {
		return r.start
	}

	var at int
	switch r.cfg.Progression.Type {
	case ProgressScore:
		at = p.Score
	case ProgressTime:
		at = p.Ticks
	case ProgressLevel:
		// Level 1 is the starting point.
		at = max(p.Level-1, 0)
	default:
		return r.start
	}

	span := float64(max(r.cfg.Progression.MaxAt, 1))
	t := clamp01(float64(at) / span)
	return r.start + t*(1-r.start)
}

// Speed scales an asteroid speed up to base * (1 + speed_multiplier).
func (r *Ramp) Speed(base float64, p Progress) float64 {
	return base * (1 + r.Value(p)*r.cfg.Scaling.SpeedMultiplier)
}

// SpawnCooldown shortens the endless spawn interval, never below
// min_spawn_cooldown unless base itself is lower.
func (r *Ramp) SpawnCooldown(base float64, p Progress) float64 {
	cd := base * (1 - r.Value(p)*r.cfg.Scaling.SpawnReduction)
	if floor := r.cfg.Scaling.MinSpawnCooldown; floor > 0 && cd < floor {
		return math.Min(floor, base)
	}
	return cd
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
