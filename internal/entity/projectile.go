package entity

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// WeaponKind selects the sprite of a projectile. Every projectile destroys
// an asteroid in one hit.
type WeaponKind int

const (
	WeaponPrimary WeaponKind = iota
	WeaponSecondary
)

// Projectile is a shot travelling in a straight line.
type Projectile struct {
	Body
	Weapon     WeaponKind
	VisualKind int
}

// NewProjectile creates a projectile.
func NewProjectile(pos, vel core.Vec2, radius float64, weapon WeaponKind, visualKind int) *Projectile {
	return &Projectile{
		Body:       NewBody(pos, vel, radius),
		Weapon:     weapon,
		VisualKind: visualKind,
	}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

func (p *Projectile) Update(dt float64) {
	p.Integrate(dt)
}

func (p *Projectile) Sprite() string {
	return ProjectileSprite(p.Weapon, p.VisualKind)
}

// Explosion is a short animation left where an asteroid was destroyed.
// It never collides with anything.
type Explosion struct {
	Body
	Step         int // animation frame, 1-based
	elapsed      float64
	steps        int
	stepDuration float64
}

// NewExplosion starts an explosion at pos covering radius.
func NewExplosion(pos core.Vec2, radius float64, cfg config.ExplosionConfig) *Explosion {
	return &Explosion{
		Body:         NewBody(pos, core.Vec2{}, radius),
		Step:         1,
		steps:        cfg.Steps,
		stepDuration: cfg.StepDuration,
	}
}

func (e *Explosion) Kind() Kind { return KindExplosion }

// Update advances the animation and kills the explosion after its last step.
func (e *Explosion) Update(dt float64) {
	e.elapsed += dt
	for e.elapsed >= e.stepDuration && e.Alive() {
		e.elapsed -= e.stepDuration
		e.Step++
		if e.Step > e.steps {
			e.Step = e.steps
			e.Kill()
		}
	}
	e.Integrate(dt)
}

func (e *Explosion) Sprite() string {
	return ExplosionSprite(e.Step)
}
