package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Edge identifies a side of the viewport.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// edgeSpawn describes where on an edge an asteroid appears and which way is in.
type edgeSpawn struct {
	pos    core.Vec2
	inward core.Vec2
}

// edgeInset is how far inside the viewport edge asteroids appear: the
// largest asteroid radius, capped at half the viewport.
func edgeInset(vp core.Viewport, maxRadius float64) float64 {
	return math.Max(0, math.Min(maxRadius, math.Min(vp.Width, vp.Height)/2))
}

// edgePoint returns the point at offset t in [0, 1] along edge e and the
// inward unit normal of that edge. The point sits inset from the edge and
// from both corners, so a deviated velocity cannot carry the asteroid out
// through a neighbouring edge before it drifts in.
func edgePoint(vp core.Viewport, e Edge, t, inset float64) edgeSpawn {
	along := func(length float64) float64 { return inset + t*(length-2*inset) }
	switch e {
	case EdgeTop:
		return edgeSpawn{pos: core.V(along(vp.Width), inset), inward: core.V(0, 1)}
	case EdgeBottom:
		return edgeSpawn{pos: core.V(along(vp.Width), vp.Height-inset), inward: core.V(0, -1)}
	case EdgeLeft:
		return edgeSpawn{pos: core.V(inset, along(vp.Height)), inward: core.V(1, 0)}
	default:
		return edgeSpawn{pos: core.V(vp.Width-inset, along(vp.Height)), inward: core.V(-1, 0)}
	}
}

// edgeAsteroid creates an asteroid just inside a random edge heading inward, deviated
// by up to the configured spread and moving at a random speed from the
// configured range, scaled by the current difficulty.
func (f *Field) edgeAsteroid() *entity.Asteroid {
	a := f.cfg.Asteroid

	edge := Edge(f.rng.Intn(4))
	inset := edgeInset(f.viewport, float64(a.Tiers)*a.MinRadius)
	spawn := edgePoint(f.viewport, edge, f.rng.Float64(), inset)

	deviation := (f.rng.Float64()*2 - 1) * a.SpawnSpread
	speed := a.SpawnSpeedMin + f.rng.Float64()*(a.SpawnSpeedMax-a.SpawnSpeedMin)
	speed = f.ramp.Speed(speed, f.progress())
	vel := spawn.inward.Rotate(deviation).Scale(speed)

	tier := f.rng.Intn(a.Tiers) + 1
	kind := f.rng.Intn(a.Kinds) + 1
	return entity.NewAsteroid(spawn.pos, vel, tier, kind, a.MinRadius)
}
