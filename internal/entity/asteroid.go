package entity

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Asteroid is a drifting rock. Its radius is Tier * minimum radius.
type Asteroid struct {
	Body
	Tier       int // size tier, 1 is the smallest
	VisualKind int // cosmetic sprite variant, 1-based
}

// NewAsteroid creates an asteroid of the given tier.
func NewAsteroid(pos, vel core.Vec2, tier, visualKind int, minRadius float64) *Asteroid {
	if tier < 1 {
		panic(fmt.Sprintf("entity: asteroid tier %d below 1", tier))
	}
	return &Asteroid{
		Body:       NewBody(pos, vel, float64(tier)*minRadius),
		Tier:       tier,
		VisualKind: visualKind,
	}
}

func (a *Asteroid) Kind() Kind { return KindAsteroid }

func (a *Asteroid) Update(dt float64) {
	a.Integrate(dt)
}

func (a *Asteroid) Sprite() string {
	return AsteroidSprite(a.Tier, a.VisualKind)
}

// Split destroys the asteroid and returns its fragments. A tier-1 asteroid
// leaves nothing. Larger ones break into two of the next tier at the same
// position, moving along the parent velocity rotated by +θ and -θ and sped
// up by the split boost. θ is drawn uniformly from the configured range.
func (a *Asteroid) Split(rng *rand.Rand, cfg config.AsteroidConfig) []*Asteroid {
	a.Kill()
	if a.Tier <= 1 {
		return nil
	}

	theta := cfg.SplitAngleMin + rng.Float64()*(cfg.SplitAngleMax-cfg.SplitAngleMin)
	tier := a.Tier - 1

	left := NewAsteroid(a.Pos, a.Vel.Rotate(theta).Scale(cfg.SplitBoost), tier, a.VisualKind, cfg.MinRadius)
	right := NewAsteroid(a.Pos, a.Vel.Rotate(-theta).Scale(cfg.SplitBoost), tier, a.VisualKind, cfg.MinRadius)
	return []*Asteroid{left, right}
}
