package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// Sprite keys for the ships.
const (
	SpriteShip         = "ship"
	SpriteShipThrust   = "ship_thrust"
	SpritePlatform     = "platform"
	SpritePlatformCool = "platform_cd"
)

// ShipSprite returns the fighter key for an engine state.
func ShipSprite(e EngineState) string {
	if e.Has(EngineThrust) {
		return SpriteShipThrust
	}
	return SpriteShip
}

// PlatformSprite returns the platform key; cooling marks a recharging
// spread weapon.
func PlatformSprite(cooling bool) string {
	if cooling {
		return SpritePlatformCool
	}
	return SpritePlatform
}

var engineNames = map[EngineState]string{
	EngineTop:    "top",
	EngineBottom: "bottom",
	EngineLeft:   "left",
	EngineRight:  "right",
}

// PlatformEngineSprite returns "platform_engine_<side>" for a single
// platform engine.
func PlatformEngineSprite(e EngineState) string {
	return "platform_engine_" + engineNames[e]
}

// AsteroidSprite returns "asteroid_<tier>_<kind>".
func AsteroidSprite(tier, kind int) string {
	return fmt.Sprintf("asteroid_%d_%d", tier, kind)
}

// ProjectileSprite returns "shot_<kind>" or "spread_<kind>".
func ProjectileSprite(w WeaponKind, kind int) string {
	if w == WeaponSecondary {
		return fmt.Sprintf("spread_%d", kind)
	}
	return fmt.Sprintf("shot_%d", kind)
}

// ExplosionSprite returns "explosion_<step>".
func ExplosionSprite(step int) string {
	return fmt.Sprintf("explosion_%d", step)
}

// SpriteSpec describes one sprite key and what it shows. Only the fields
// relevant to Kind are set.
type SpriteSpec struct {
	Key    string
	Kind   Kind
	Radius float64 // body radius the sprite is drawn for

	Hull    Hull        // ships
	Engine  EngineState // fighter thrust, or the single engine of a platform overlay
	Overlay bool        // drawn on top of a platform body
	Cooling bool        // platform with a recharging spread weapon
	Tier    int         // asteroids
	Variant int         // asteroids and projectiles
	Weapon  WeaponKind  // projectiles
	Step    int         // explosions
	Steps   int
}

// Sprites lists every sprite the game can produce under cfg. Frontends
// register one handle per entry before the first frame.
func Sprites(cfg config.AsteroidsConfig) []SpriteSpec {
	fighter := cfg.Ship.Radius
	platform := cfg.Platform.Radius
	specs := []SpriteSpec{
		{Key: SpriteShip, Kind: KindShip, Radius: fighter, Hull: HullFighter},
		{Key: SpriteShipThrust, Kind: KindShip, Radius: fighter, Hull: HullFighter, Engine: EngineThrust},
		{Key: SpritePlatform, Kind: KindShip, Radius: platform, Hull: HullPlatform},
		{Key: SpritePlatformCool, Kind: KindShip, Radius: platform, Hull: HullPlatform, Cooling: true},
	}
	for _, e := range platformEngines {
		specs = append(specs, SpriteSpec{
			Key: PlatformEngineSprite(e.engine), Kind: KindShip, Radius: platform,
			Hull: HullPlatform, Engine: e.engine, Overlay: true,
		})
	}

	for tier := 1; tier <= cfg.Asteroid.Tiers; tier++ {
		for kind := 1; kind <= cfg.Asteroid.Kinds; kind++ {
			specs = append(specs, SpriteSpec{
				Key: AsteroidSprite(tier, kind), Kind: KindAsteroid,
				Radius: float64(tier) * cfg.Asteroid.MinRadius, Tier: tier, Variant: kind,
			})
		}
	}

	for kind := 1; kind <= max(cfg.Primary.Kinds, 1); kind++ {
		specs = append(specs, SpriteSpec{
			Key: ProjectileSprite(WeaponPrimary, kind), Kind: KindProjectile,
			Radius: cfg.Primary.Radius, Weapon: WeaponPrimary, Variant: kind,
		})
	}
	for kind := 1; kind <= max(cfg.Secondary.Kinds, 1); kind++ {
		specs = append(specs, SpriteSpec{
			Key: ProjectileSprite(WeaponSecondary, kind), Kind: KindProjectile,
			Radius: cfg.Secondary.Radius, Weapon: WeaponSecondary, Variant: kind,
		})
	}

	for step := 1; step <= cfg.Explosion.Steps; step++ {
		specs = append(specs, SpriteSpec{
			Key: ExplosionSprite(step), Kind: KindExplosion,
			Radius: 1, Step: step, Steps: cfg.Explosion.Steps,
		})
	}
	return specs
}
