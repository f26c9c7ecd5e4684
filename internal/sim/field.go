// Package sim runs the per-frame simulation of one round of play.
//
// A Field owns an entity registry, the ship, the round score and the
// spawn and boundary policies of its kind (endless or level). Step advances it
// by one frame in a fixed order:
//
//  1. spawn timer (endless only)
//  2. ship control and weapons, entity update, integration, boundary policy
//  3. ship against asteroids; a hit ends the round
//  4. asteroids against projectiles; first hit per asteroid wins
//  5. sweep of dead entities
//  6. level-clear check (level only)
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/world"
)

// Kind selects the spawn and boundary rules of a field.
type Kind int

const (
	Endless Kind = iota // timed edge spawns, no end but death
	Level               // fixed batch at start, cleared when no asteroid is left
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Endless:
		return "endless"
	case Level:
		return "level"
	default:
		return "unknown"
	}
}

// Outcome is the result of one Step.
type Outcome int

const (
	Continue Outcome = iota
	ShipLost         // ship hit an asteroid or left the viewport
	Cleared          // level mode: no asteroid left
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case ShipLost:
		return "ship_lost"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Field is one round of active play.
type Field struct {
	cfg      config.AsteroidsConfig
	kind     Kind
	level    int
	rules    config.ModeRules
	viewport core.Viewport

	reg  *world.Registry
	ship *entity.Ship
	rng  *rand.Rand
	ramp *config.Ramp

	spawning   bool
	spawnTimer float64
	score      int
	ticks      int
	over       Outcome
}

// NewEndless starts an endless round. score carries points from earlier
// play. The first asteroid arrives on the first step.
func NewEndless(cfg config.AsteroidsConfig, rng *rand.Rand, score int) *Field {
	return newField(cfg, Endless, 0, rng, score)
}

// NewLevel starts level n and spawns its whole asteroid batch at the edges.
func NewLevel(cfg config.AsteroidsConfig, rng *rand.Rand, n, score int) *Field {
	if n < 1 {
		panic(fmt.Sprintf("sim: level %d below 1", n))
	}
	f := newField(cfg, Level, n, rng, score)
	for range cfg.Levels.Count(n) {
		f.reg.Spawn(f.edgeAsteroid())
	}
	return f
}

// NewEmpty creates a field of the given kind with only the ship on it. The
// caller places asteroids with Spawn; nothing spawns on its own.
func NewEmpty(cfg config.AsteroidsConfig, kind Kind, rng *rand.Rand) *Field {
	level := 0
	if kind == Level {
		level = 1
	}
	f := newField(cfg, kind, level, rng, 0)
	f.spawning = false
	return f
}

func newField(cfg config.AsteroidsConfig, kind Kind, level int, rng *rand.Rand, score int) *Field {
	rules := cfg.Modes.Endless
	if kind == Level {
		rules = cfg.Modes.Level
	}

	f := &Field{
		cfg:      cfg,
		kind:     kind,
		level:    level,
		rules:    rules,
		viewport: cfg.Viewport.Bounds(),
		reg:      world.New(),
		rng:      rng,
		ramp:     config.NewRamp(cfg.Difficulty),
		score:    score,
		spawning: kind == Endless,
	}

	loadout := entity.Loadout{
		Primary:        cfg.Primary,
		Secondary:      cfg.Secondary,
		SecondaryArmed: rules.Secondary,
	}
	switch entity.ParseHull(rules.Hull) {
	case entity.HullPlatform:
		f.ship = entity.NewPlatform(f.viewport.Center(), cfg.Platform, loadout, rng)
	default:
		f.ship = entity.NewShip(f.viewport.Center(), cfg.Ship, loadout, rng)
	}
	f.reg.Spawn(f.ship)
	return f
}

// Step advances the field by dt seconds. A field that has already ended
// keeps returning its final outcome without simulating.
func (f *Field) Step(dt float64, in core.InputFrame) Outcome {
	if dt < 0 {
		panic(fmt.Sprintf("sim: negative frame delta %v", dt))
	}
	if f.over != Continue {
		return f.over
	}
	f.ticks++

	f.tickSpawner(dt)
	f.updateAll(dt, in)

	if !f.ship.Alive() || f.shipHit() {
		f.ship.Kill()
		f.reg.Sweep()
		f.over = ShipLost
		return f.over
	}

	f.resolveHits()
	f.reg.Sweep()

	if f.kind == Level && f.reg.Count(world.Asteroids) == 0 {
		f.over = Cleared
	}
	return f.over
}

func (f *Field) tickSpawner(dt float64) {
	if !f.spawning {
		return
	}
	f.spawnTimer -= dt
	if f.spawnTimer <= 0 {
		f.reg.Spawn(f.edgeAsteroid())
		f.spawnTimer = f.ramp.SpawnCooldown(f.cfg.Asteroid.SpawnCooldown, f.progress())
	}
}

func (f *Field) updateAll(dt float64, in core.InputFrame) {
	for h, e := range f.reg.All(world.Updatable) {
		if ship, ok := e.(*entity.Ship); ok {
			f.steer(ship, in, dt)
		}
		e.Update(dt)
		f.applyBoundary(h, e)
	}
}

// steer applies input to the ship and spawns whatever it fires. Projectiles
// fired this frame join the field at the next sweep.
func (f *Field) steer(ship *entity.Ship, in core.InputFrame, dt float64) {
	ship.Control(in, dt)

	var pointer *core.Vec2
	if in.HasPointer {
		p := in.Pointer
		pointer = &p
	}
	if in.Has(core.ActionFirePrimary) {
		if p := ship.Fire(pointer); p != nil {
			f.reg.Spawn(p)
		}
	}
	if in.Has(core.ActionFireSecondary) {
		for _, p := range ship.FireSpread(pointer) {
			f.reg.Spawn(p)
		}
	}
}

// applyBoundary kills or wraps an entity that left the viewport. Projectiles
// are always killed.
func (f *Field) applyBoundary(h world.Handle, e entity.Entity) {
	b := entity.BodyOf(e)
	if f.viewport.Contains(b.Pos) {
		return
	}
	if f.rules.Boundary == config.BoundaryKill || e.Kind() == entity.KindProjectile {
		f.reg.MarkDead(h)
		return
	}
	b.Pos = f.viewport.Wrap(b.Pos)
}

func (f *Field) shipHit() bool {
	for _, a := range f.reg.All(world.Asteroids) {
		if entity.Collides(f.ship, a) {
			return true
		}
	}
	return false
}

// resolveHits pairs asteroids (outer) with projectiles (inner). An asteroid
// is consumed by the first projectile touching it.
func (f *Field) resolveHits() {
	for _, e := range f.reg.All(world.Asteroids) {
		a := e.(*entity.Asteroid)
		for ph, p := range f.reg.All(world.Projectiles) {
			if !entity.Collides(a, p) {
				continue
			}
			f.reg.MarkDead(ph)
			for _, child := range a.Split(f.rng, f.cfg.Asteroid) {
				f.reg.Spawn(child)
			}
			f.reg.Spawn(entity.NewExplosion(a.Pos, a.Radius, f.cfg.Explosion))
			f.score++
			break
		}
	}
}

// Spawn places an entity on the field. Used to script scenarios.
func (f *Field) Spawn(e entity.Entity) world.Handle {
	return f.reg.Spawn(e)
}

// Kind returns the field kind.
func (f *Field) Kind() Kind { return f.kind }

// Level returns the level number, 0 for endless fields.
func (f *Field) Level() int { return f.level }

// Score returns the score including points carried into this round.
func (f *Field) Score() int { return f.score }

// Ticks returns the number of simulated frames.
func (f *Field) Ticks() int { return f.ticks }

// Ship returns the player's ship.
func (f *Field) Ship() *entity.Ship { return f.ship }

// Viewport returns the play area.
func (f *Field) Viewport() core.Viewport { return f.viewport }

func (f *Field) progress() config.Progress {
	return config.Progress{Score: f.score, Ticks: f.ticks, Level: f.level}
}

// Registry exposes the entity registry for rendering and inspection.
func (f *Field) Registry() *world.Registry { return f.reg }

// Drawables returns the live drawable entities in spawn order.
func (f *Field) Drawables() []entity.Entity {
	return f.reg.Members(world.Drawable)
}

// Asteroids returns the live asteroids.
func (f *Field) Asteroids() []*entity.Asteroid {
	members := f.reg.Members(world.Asteroids)
	out := make([]*entity.Asteroid, 0, len(members))
	for _, e := range members {
		out = append(out, e.(*entity.Asteroid))
	}
	return out
}
