// Package world provides the entity registry owned by one play session.
//
// The registry is the single owner of every entity on the field. Role views
// (updatable, drawable, asteroids, projectiles) reference entities by handle,
// so one entity can sit in several views without being duplicated. Removal is
// two-phase: MarkDead flags an entity, Sweep unlinks it. Entities spawned while
// a view is being iterated are linked at the next Sweep as well, so no view
// ever changes under a running iteration.
package world

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Handle is a stable identity for a spawned entity. The zero Handle is never
// issued.
type Handle uint64

// View selects a role-based subset of the registry.
type View int

const (
	Updatable View = iota
	Drawable
	Asteroids
	Projectiles
	viewCount
)

// String returns a human-readable name for the view.
func (v View) String() string {
	switch v {
	case Updatable:
		return "updatable"
	case Drawable:
		return "drawable"
	case Asteroids:
		return "asteroids"
	case Projectiles:
		return "projectiles"
	default:
		return "unknown"
	}
}

// viewsFor returns the views an entity kind belongs to.
func viewsFor(k entity.Kind) []View {
	switch k {
	case entity.KindAsteroid:
		return []View{Updatable, Drawable, Asteroids}
	case entity.KindProjectile:
		return []View{Updatable, Drawable, Projectiles}
	default:
		return []View{Updatable, Drawable}
	}
}

// Registry owns the entities of one play session. It is not safe for
// concurrent use; a single simulation step has exclusive access.
type Registry struct {
	next      Handle
	entities  map[Handle]entity.Entity
	views     [viewCount][]Handle
	pending   []Handle
	iterating int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entities: make(map[Handle]entity.Entity)}
}

// Spawn takes ownership of e and returns its handle. Outside of iteration e
// joins its views immediately; during iteration it joins them at the next
// Sweep.
func (r *Registry) Spawn(e entity.Entity) Handle {
	if e == nil {
		panic("world: spawn of nil entity")
	}
	r.next++
	h := r.next
	r.entities[h] = e

	if r.iterating > 0 {
		r.pending = append(r.pending, h)
	} else {
		r.link(h, e)
	}
	return h
}

func (r *Registry) link(h Handle, e entity.Entity) {
	for _, v := range viewsFor(e.Kind()) {
		r.views[v] = append(r.views[v], h)
	}
}

// MarkDead flags the entity as destroyed. It stays in its views until the
// next Sweep. Unknown or already swept handles are ignored.
func (r *Registry) MarkDead(h Handle) {
	if e, ok := r.entities[h]; ok {
		entity.BodyOf(e).Kill()
	}
}

// Get returns the entity for a handle, or nil once it has been swept.
func (r *Registry) Get(h Handle) entity.Entity {
	return r.entities[h]
}

// Sweep links entities spawned during iteration and unlinks every dead
// entity from all views. Calling it while a view is being iterated panics.
func (r *Registry) Sweep() {
	if r.iterating > 0 {
		panic("world: sweep during iteration")
	}

	for _, h := range r.pending {
		r.link(h, r.entities[h])
	}
	r.pending = r.pending[:0]

	for v := range r.views {
		live := r.views[v][:0]
		for _, h := range r.views[v] {
			if entity.BodyOf(r.entities[h]).Alive() {
				live = append(live, h)
			}
		}
		clear(r.views[v][len(live):])
		r.views[v] = live
	}

	for h, e := range r.entities {
		if !entity.BodyOf(e).Alive() {
			delete(r.entities, h)
		}
	}
}

// All iterates the live members of a view in spawn order. The set of
// handles is fixed when iteration starts; members marked dead before they
// are reached are skipped. Breaking out of the loop is allowed.
func (r *Registry) All(v View) iter.Seq2[Handle, entity.Entity] {
	r.checkView(v)
	return func(yield func(Handle, entity.Entity) bool) {
		r.iterating++
		defer func() { r.iterating-- }()

		for _, h := range r.views[v] {
			e := r.entities[h]
			if !entity.BodyOf(e).Alive() {
				continue
			}
			if !yield(h, e) {
				return
			}
		}
	}
}

// ForEach applies fn to every live member of a view. fn may mark members
// dead and spawn new entities; both take effect at the next Sweep.
func (r *Registry) ForEach(v View, fn func(Handle, entity.Entity)) {
	for h, e := range r.All(v) {
		fn(h, e)
	}
}

// Members returns the live members of a view in spawn order.
func (r *Registry) Members(v View) []entity.Entity {
	r.checkView(v)
	out := make([]entity.Entity, 0, len(r.views[v]))
	for _, h := range r.views[v] {
		if e := r.entities[h]; entity.BodyOf(e).Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live, linked members of a view.
func (r *Registry) Count(v View) int {
	r.checkView(v)
	n := 0
	for _, h := range r.views[v] {
		if entity.BodyOf(r.entities[h]).Alive() {
			n++
		}
	}
	return n
}

// Len returns the number of owned entities, including dead and pending ones
// that have not been swept yet.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Pending returns the number of entities waiting to be linked.
func (r *Registry) Pending() int {
	return len(r.pending)
}

func (r *Registry) checkView(v View) {
	if v < 0 || v >= viewCount {
		panic(fmt.Sprintf("world: unknown view %d", v))
	}
}
