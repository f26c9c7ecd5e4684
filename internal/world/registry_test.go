package world

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

func rock(x, y float64) *entity.Asteroid {
	return entity.NewAsteroid(core.V(x, y), core.Vec2{}, 1, 1, 20)
}

func shot(x, y float64) *entity.Projectile {
	return entity.NewProjectile(core.V(x, y), core.Vec2{}, 5, entity.WeaponPrimary, 1)
}

func TestSpawnJoinsViews(t *testing.T) {
	r := New()
	cfg := config.Default()
	ship := entity.NewShip(core.V(0, 0), cfg.Ship, entity.Loadout{Primary: cfg.Primary}, rand.New(rand.NewSource(1)))

	r.Spawn(ship)
	r.Spawn(rock(10, 10))
	r.Spawn(rock(20, 20))
	r.Spawn(shot(5, 5))
	r.Spawn(entity.NewExplosion(core.V(1, 1), 10, cfg.Explosion))

	tests := []struct {
		view View
		want int
	}{
		{Updatable, 5},
		{Drawable, 5},
		{Asteroids, 2},
		{Projectiles, 1},
	}
	for _, tc := range tests {
		if got := r.Count(tc.view); got != tc.want {
			t.Errorf("Count(%s) = %d, expected %d", tc.view, got, tc.want)
		}
	}
}

func TestHandlesAreStable(t *testing.T) {
	r := New()
	a := rock(1, 1)
	b := rock(2, 2)
	ha := r.Spawn(a)
	hb := r.Spawn(b)

	if ha == 0 || hb == 0 || ha == hb {
		t.Fatalf("handles should be distinct and non-zero, got %d and %d", ha, hb)
	}
	if r.Get(ha) != a || r.Get(hb) != b {
		t.Error("Get should return the spawned entities")
	}

	r.MarkDead(ha)
	r.Sweep()
	if r.Get(ha) != nil {
		t.Error("swept entity should no longer be reachable")
	}
	if r.Get(hb) != b {
		t.Error("surviving entity should keep its handle")
	}
}

func TestMarkDeadThenSweep(t *testing.T) {
	r := New()
	h := r.Spawn(rock(1, 1))
	r.Spawn(rock(2, 2))

	r.MarkDead(h)
	// Dead but not yet unlinked
	if r.Len() != 2 {
		t.Errorf("Len() = %d before sweep, expected 2", r.Len())
	}
	if r.Count(Asteroids) != 1 {
		t.Errorf("Count() = %d, dead entities should not be counted", r.Count(Asteroids))
	}

	r.Sweep()
	if r.Len() != 1 || r.Count(Asteroids) != 1 || r.Count(Drawable) != 1 {
		t.Errorf("after sweep Len=%d asteroids=%d drawable=%d, expected 1 each",
			r.Len(), r.Count(Asteroids), r.Count(Drawable))
	}

	// Marking an already swept handle is a no-op
	r.MarkDead(h)
}

func TestForEachSkipsEntitiesKilledMidPass(t *testing.T) {
	r := New()
	first := r.Spawn(rock(1, 1))
	second := r.Spawn(rock(2, 2))
	r.Spawn(rock(3, 3))

	var visited []Handle
	r.ForEach(Asteroids, func(h Handle, e entity.Entity) {
		visited = append(visited, h)
		if h == first {
			r.MarkDead(second)
		}
	})

	if len(visited) != 2 {
		t.Errorf("visited %v, expected the second asteroid to be skipped", visited)
	}
	for _, h := range visited {
		if h == second {
			t.Error("entity marked dead earlier in the pass must not be visited")
		}
	}
}

func TestSpawnDuringIterationIsDeferred(t *testing.T) {
	r := New()
	r.Spawn(rock(1, 1))

	calls := 0
	r.ForEach(Updatable, func(h Handle, e entity.Entity) {
		calls++
		r.Spawn(rock(5, 5))
	})

	if calls != 1 {
		t.Errorf("ForEach visited %d entities, spawned ones must wait for sweep", calls)
	}
	if r.Count(Asteroids) != 1 || r.Pending() != 1 {
		t.Errorf("before sweep: count=%d pending=%d, expected 1 and 1", r.Count(Asteroids), r.Pending())
	}

	r.Sweep()
	if r.Count(Asteroids) != 2 || r.Pending() != 0 {
		t.Errorf("after sweep: count=%d pending=%d, expected 2 and 0", r.Count(Asteroids), r.Pending())
	}
}

func TestNestedIterationWithBreak(t *testing.T) {
	r := New()
	r.Spawn(rock(0, 0))
	r.Spawn(shot(0, 0))
	r.Spawn(shot(1, 0))

	hits := 0
	for _, a := range r.All(Asteroids) {
		for ph, p := range r.All(Projectiles) {
			if entity.Collides(a, p) {
				r.MarkDead(ph)
				hits++
				break
			}
		}
	}

	if hits != 1 {
		t.Errorf("hits = %d, expected the inner loop to stop at the first hit", hits)
	}
	// Iteration has fully unwound, so sweeping is legal again
	r.Sweep()
	if r.Count(Projectiles) != 1 {
		t.Errorf("Count(projectiles) = %d, expected 1", r.Count(Projectiles))
	}
}

func TestContractViolationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Registry)
	}{
		{"nil spawn", func(r *Registry) { r.Spawn(nil) }},
		{"unknown view", func(r *Registry) { r.Count(View(42)) }},
		{"sweep during iteration", func(r *Registry) {
			r.Spawn(rock(1, 1))
			r.ForEach(Asteroids, func(Handle, entity.Entity) { r.Sweep() })
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn(New())
		})
	}
}

func TestMembersKeepsSpawnOrder(t *testing.T) {
	r := New()
	a := rock(1, 1)
	b := rock(2, 2)
	c := rock(3, 3)
	r.Spawn(a)
	hb := r.Spawn(b)
	r.Spawn(c)
	r.MarkDead(hb)

	got := r.Members(Asteroids)
	if len(got) != 2 || got[0] != entity.Entity(a) || got[1] != entity.Entity(c) {
		t.Errorf("Members() = %v, expected [a c]", got)
	}
}
