package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// EngineState is a draw hint for the ship sprite: which engines burned on
// the last control step. A fighter only ever sets EngineThrust.
type EngineState uint8

const EngineIdle EngineState = 0

const (
	EngineThrust EngineState = 1 << iota
	EngineTop                // pushes down the screen
	EngineBottom             // pushes up the screen
	EngineLeft               // pushes right
	EngineRight              // pushes left
)

// Has reports whether every engine in e2 is burning.
func (e EngineState) Has(e2 EngineState) bool {
	return e2 != 0 && e&e2 == e2
}

// Hull is the airframe a ship flies.
type Hull int

const (
	// HullFighter turns and thrusts along its heading and fires from the nose.
	HullFighter Hull = iota
	// HullPlatform never turns. Four engines strafe it and the guns track the pointer.
	HullPlatform
)

// ParseHull maps a config hull name; anything unknown is a fighter.
func ParseHull(name string) Hull {
	if name == config.HullPlatform {
		return HullPlatform
	}
	return HullFighter
}

// Loadout describes the weapons mounted on a ship.
type Loadout struct {
	Primary        config.WeaponConfig
	Secondary      config.SpreadConfig
	SecondaryArmed bool
}

// Ship is the player-controlled craft.
type Ship struct {
	Body
	Rotation          float64 // degrees in [0, 360); 0 points down the screen
	ShotCooldown      float64 // seconds until the primary gun may fire
	SecondaryCooldown float64 // seconds until the spread weapon may fire
	Engine            EngineState

	hull    Hull
	cfg     config.ShipConfig
	loadout Loadout
	rng     *rand.Rand
}

// NewShip creates a fighter at rest at pos, facing the configured start
// heading. rng picks projectile sprite variants.
func NewShip(pos core.Vec2, cfg config.ShipConfig, loadout Loadout, rng *rand.Rand) *Ship {
	return &Ship{
		Body:     NewBody(pos, core.Vec2{}, cfg.Radius),
		Rotation: core.NormalizeDegrees(cfg.StartHeading),
		hull:     HullFighter,
		cfg:      cfg,
		loadout:  loadout,
		rng:      rng,
	}
}

// NewPlatform creates a defense platform at rest at pos. Its heading is
// fixed pointing up the screen and only matters when no pointer is known.
func NewPlatform(pos core.Vec2, cfg config.PlatformConfig, loadout Loadout, rng *rand.Rand) *Ship {
	s := NewShip(pos, config.ShipConfig{
		Radius:       cfg.Radius,
		Acceleration: cfg.Acceleration,
		MaxSpeed:     cfg.MaxSpeed,
		StartHeading: 180,
	}, loadout, rng)
	s.hull = HullPlatform
	return s
}

func (s *Ship) Kind() Kind { return KindShip }

// Hull returns the airframe.
func (s *Ship) Hull() Hull { return s.hull }

// Rotates reports whether the sprite follows Rotation.
func (s *Ship) Rotates() bool { return s.hull == HullFighter }

// Forward returns the unit heading vector.
func (s *Ship) Forward() core.Vec2 {
	return core.Forward(s.Rotation)
}

// Nose returns the point where projectiles leave the ship.
func (s *Ship) Nose() core.Vec2 {
	return s.Pos.Add(s.Forward().Scale(s.Radius))
}

// SecondaryArmed reports whether the spread weapon is mounted.
func (s *Ship) SecondaryArmed() bool {
	return s.loadout.SecondaryArmed
}

// SecondaryCooling reports whether a mounted spread weapon is recharging.
func (s *Ship) SecondaryCooling() bool {
	return s.loadout.SecondaryArmed && s.SecondaryCooldown > 0
}

// Control applies one frame of input: cooldown decay, then turning and
// thrust for a fighter or engine pushes for a platform. Movement itself
// happens in Update.
func (s *Ship) Control(in core.InputFrame, dt float64) {
	s.ShotCooldown -= dt
	s.SecondaryCooldown -= dt

	if s.hull == HullPlatform {
		s.drive(in, dt)
		return
	}

	if in.Has(core.ActionTurnLeft) {
		s.Rotation = core.NormalizeDegrees(s.Rotation - s.cfg.TurnSpeed*dt)
	}
	if in.Has(core.ActionTurnRight) {
		s.Rotation = core.NormalizeDegrees(s.Rotation + s.cfg.TurnSpeed*dt)
	}

	s.Engine = EngineIdle
	if in.Has(core.ActionThrust) {
		s.Engine = EngineThrust
		s.thrust(dt)
	}
}

// thrust accelerates along the heading. Once the result would exceed the
// maximum speed the ship flies at exactly max speed along its heading.
func (s *Ship) thrust(dt float64) {
	forward := s.Forward()
	v := s.Vel.Add(forward.Scale(s.cfg.Acceleration * dt))
	if v.Len() > s.cfg.MaxSpeed {
		v = forward.Scale(s.cfg.MaxSpeed)
	}
	s.Vel = v
}

// platformEngines pairs each platform engine with its input and push
// direction. The engine sits on the side opposite to where it pushes.
var platformEngines = [...]struct {
	action core.Action
	engine EngineState
	push   core.Vec2
}{
	{core.ActionTurnRight, EngineLeft, core.V(1, 0)},
	{core.ActionTurnLeft, EngineRight, core.V(-1, 0)},
	{core.ActionThrust, EngineBottom, core.V(0, -1)},
	{core.ActionReverse, EngineTop, core.V(0, 1)},
}

// Push returns the unit push of a single platform engine and zero for
// anything else.
func (e EngineState) Push() core.Vec2 {
	for _, pe := range platformEngines {
		if pe.engine == e {
			return pe.push
		}
	}
	return core.Vec2{}
}

// drive sums the pushes of every burning engine. A push that would reach
// max speed is dropped and the old velocity kept.
func (s *Ship) drive(in core.InputFrame, dt float64) {
	s.Engine = EngineIdle
	var push core.Vec2
	for _, e := range platformEngines {
		if in.Has(e.action) {
			s.Engine |= e.engine
			push = push.Add(e.push)
		}
	}
	if push.IsZero() {
		return
	}

	v := s.Vel.Add(push.Scale(s.cfg.Acceleration * dt))
	if v.Len() < s.cfg.MaxSpeed {
		s.Vel = v
	}
}

func (s *Ship) Update(dt float64) {
	s.Integrate(dt)
}

func (s *Ship) Sprite() string {
	if s.hull == HullPlatform {
		return PlatformSprite(s.SecondaryCooling())
	}
	return ShipSprite(s.Engine)
}

// EngineSprites returns the overlay keys for the platform engines that
// burned on the last control step, drawn on top of the body sprite.
func (s *Ship) EngineSprites() []string {
	if s.hull != HullPlatform {
		return nil
	}
	var keys []string
	for _, e := range platformEngines {
		if s.Engine.Has(e.engine) {
			keys = append(keys, PlatformEngineSprite(e.engine))
		}
	}
	return keys
}

// aim is the unit direction towards pointer, or the heading when no
// pointer is known.
func (s *Ship) aim(pointer *core.Vec2) core.Vec2 {
	if pointer != nil {
		if d := pointer.Sub(s.Pos); !d.IsZero() {
			return d.Normalize()
		}
	}
	return s.Forward()
}

// Fire shoots the primary gun. A fighter fires from the nose along its
// heading and ignores pointer; a platform fires towards pointer from its
// rim. It returns nil while the gun is cooling down.
func (s *Ship) Fire(pointer *core.Vec2) *Projectile {
	if s.ShotCooldown > 0 {
		return nil
	}
	s.ShotCooldown = s.loadout.Primary.Cooldown

	dir := s.Forward()
	if s.hull == HullPlatform {
		dir = s.aim(pointer)
	}

	w := s.loadout.Primary
	origin := s.Pos.Add(dir.Scale(s.Radius))
	return NewProjectile(origin, dir.Scale(w.Speed), w.Radius, WeaponPrimary, s.pickKind(w.Kinds))
}

// FireSpread shoots one secondary projectile per configured angle around the
// aim direction. The aim is towards the pointer when one is given, else along
// the heading. It returns nil when unarmed or cooling down.
func (s *Ship) FireSpread(pointer *core.Vec2) []*Projectile {
	if !s.loadout.SecondaryArmed || s.SecondaryCooldown > 0 {
		return nil
	}
	w := s.loadout.Secondary
	s.SecondaryCooldown = w.Cooldown

	aim := s.aim(pointer)
	origin := s.Pos.Add(aim.Scale(s.Radius))
	shots := make([]*Projectile, 0, len(w.Angles))
	for _, angle := range w.Angles {
		vel := aim.Rotate(angle).Scale(w.Speed)
		shots = append(shots, NewProjectile(origin, vel, w.Radius, WeaponSecondary, s.pickKind(w.Kinds)))
	}
	return shots
}

func (s *Ship) pickKind(kinds int) int {
	if kinds <= 1 || s.rng == nil {
		return 1
	}
	return s.rng.Intn(kinds) + 1
}
