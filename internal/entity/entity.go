// Package entity defines the closed set of things that live on the play
// field: the ship, asteroids, projectiles and explosions. Each variant embeds
// a Body carrying the shared physical state; behavior specific to a variant
// lives on the variant and is selected by the simulation with a type switch.
package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind discriminates entity variants for views and sprite selection.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindProjectile
	KindExplosion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindProjectile:
		return "projectile"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Body is the physical state shared by all entities.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	dead   bool
}

// NewBody creates a live body. A negative radius or a NaN position is a
// programming error and panics.
func NewBody(pos, vel core.Vec2, radius float64) Body {
	if radius < 0 {
		panic(fmt.Sprintf("entity: negative radius %v", radius))
	}
	if pos.IsNaN() || vel.IsNaN() {
		panic(fmt.Sprintf("entity: NaN in position %v or velocity %v", pos, vel))
	}
	return Body{Pos: pos, Vel: vel, Radius: radius}
}

// Alive reports whether the entity has not been destroyed.
func (b *Body) Alive() bool {
	return !b.dead
}

// Kill marks the body as destroyed. The owning registry unlinks it at the
// next sweep.
func (b *Body) Kill() {
	b.dead = true
}

// Integrate advances the position by velocity * dt.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// CollidesWith reports whether the two circles overlap or touch.
func (b *Body) CollidesWith(o *Body) bool {
	return b.Pos.Distance(o.Pos) <= b.Radius+o.Radius
}

func (b *Body) body() *Body {
	return b
}

// Entity is implemented by *Ship, *Asteroid, *Projectile and *Explosion only.
// The unexported method keeps the set closed.
type Entity interface {
	Kind() Kind
	// Update runs variant behavior and integrates motion for one frame.
	Update(dt float64)
	// Sprite returns the asset key the frontend draws this entity with.
	Sprite() string
	body() *Body
}

// BodyOf returns the shared physical state of e.
func BodyOf(e Entity) *Body {
	return e.body()
}

// Collides is the circle-overlap test used by the simulation step.
// It is symmetric: Collides(a, b) == Collides(b, a).
func Collides(a, b Entity) bool {
	return a.body().CollidesWith(b.body())
}
