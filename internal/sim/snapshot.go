package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/world"
)

// Snapshot captures the observable state of a field for determinism tests.
type Snapshot struct {
	Tick        int
	Kind        Kind
	Level       int
	Score       int
	Outcome     Outcome
	ShipAlive   bool
	ShipX       float64
	ShipY       float64
	ShipHeading float64
	Asteroids   int
	Projectiles int
	Drawables   int

	// Each asteroid is 4 values: X, Y, VX, VY
	AsteroidData []float64
}

// Snapshot returns the current field snapshot.
func (f *Field) Snapshot() Snapshot {
	asteroids := f.reg.Members(world.Asteroids)
	data := make([]float64, 0, len(asteroids)*4)
	for _, e := range asteroids {
		b := entity.BodyOf(e)
		data = append(data, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	return Snapshot{
		Tick:         f.ticks,
		Kind:         f.kind,
		Level:        f.level,
		Score:        f.score,
		Outcome:      f.over,
		ShipAlive:    f.ship.Alive(),
		ShipX:        f.ship.Pos.X,
		ShipY:        f.ship.Pos.Y,
		ShipHeading:  f.ship.Rotation,
		Asteroids:    len(asteroids),
		Projectiles:  f.reg.Count(world.Projectiles),
		Drawables:    f.reg.Count(world.Drawable),
		AsteroidData: data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kind)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)             //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.ShipY)
	h = h*31 + math.Float64bits(snap.ShipHeading)
	h = h*31 + uint64(snap.Asteroids)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles) //#nosec G115 -- hash computation
	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
