package pool

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"rendergov/internal/scene"
)

// Particle is a transient pooled renderable: a scene object plus the
// per-spawn state the demo's particle system animates.
type Particle struct {
	scene.Object
	Velocity mgl32.Vec3
	Age      float64
}

func (p *Particle) reset() {
	p.Transform.Reset()
	p.Velocity = mgl32.Vec3{}
	p.Age = 0
	p.Visible = false
}

// Pool manages a bounded set of reusable particles. It pre-allocates
// initial objects, grows on demand up to max, and is the sole owner of
// every particle it ever creates; callers only borrow handles.
type Pool struct {
	bounds    scene.BoundingSphere
	max       int
	limit     int // effective capacity, <= max; lowered by Resize
	available []*Particle
	active    map[*Particle]struct{}
	disposed  bool
	warned    bool
}

// New creates a pool with initial particles pre-allocated and a hard cap
// of max. initial is clamped into [0, max]; max must be at least 1.
func New(initial, max int, bounds scene.BoundingSphere) *Pool {
	if max < 1 {
		max = 1
	}
	if initial < 0 {
		initial = 0
	}
	if initial > max {
		initial = max
	}
	p := &Pool{
		bounds:    bounds,
		max:       max,
		limit:     max,
		available: make([]*Particle, 0, max),
		active:    make(map[*Particle]struct{}),
	}
	for i := 0; i < initial; i++ {
		p.available = append(p.available, p.newParticle())
	}
	return p
}

func (p *Pool) newParticle() *Particle {
	b := p.bounds
	pt := &Particle{Object: *scene.NewObject(&b)}
	pt.Visible = false
	return pt
}

// Acquire hands out a particle, preferring a free one, constructing a new
// one while under capacity, and returning nil when the pool is exhausted
// or disposed. The caller must tolerate nil by skipping that spawn.
func (p *Pool) Acquire() *Particle {
	if p.disposed {
		if !p.warned {
			log.Printf("particle pool: acquire on disposed pool")
			p.warned = true
		}
		return nil
	}
	if len(p.active) >= p.limit {
		if !p.warned {
			log.Printf("particle pool exhausted (%d/%d active), skipping spawn", len(p.active), p.limit)
			p.warned = true
		}
		return nil
	}
	var pt *Particle
	if n := len(p.available); n > 0 {
		pt = p.available[n-1]
		p.available = p.available[:n-1]
	} else {
		pt = p.newParticle()
	}
	p.warned = false
	pt.Visible = true
	p.active[pt] = struct{}{}
	return pt
}

// Release returns a particle to the free set with its transform reset to
// identity. Releasing a particle that is not active is a no-op, so
// double-release is harmless.
func (p *Pool) Release(pt *Particle) {
	if pt == nil {
		return
	}
	if _, ok := p.active[pt]; !ok {
		return
	}
	delete(p.active, pt)
	pt.reset()
	p.available = append(p.available, pt)
}

// ReleaseAll releases every active particle; used on scene teardown.
func (p *Pool) ReleaseAll() {
	for pt := range p.active {
		delete(p.active, pt)
		pt.reset()
		p.available = append(p.available, pt)
	}
}

// Dispose releases everything and empties both sets. The pool is terminal
// afterward: Acquire returns nil forever and handles are never
// resurrected. Safe to call with particles still checked out.
func (p *Pool) Dispose() {
	p.ReleaseAll()
	p.available = nil
	p.active = nil
	p.disposed = true
	// keep active as an empty map so Release stays a safe no-op
	p.active = make(map[*Particle]struct{})
}

// Resize sets the effective capacity, clamped into [0, max]. Shrinking
// releases checked-out overflow back to the free set; it never destroys
// objects. Acquire enforces the new capacity until a later Resize raises
// it again.
func (p *Pool) Resize(capacity int) []*Particle {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > p.max {
		capacity = p.max
	}
	p.limit = capacity
	var released []*Particle
	for pt := range p.active {
		if len(p.active) <= capacity {
			break
		}
		delete(p.active, pt)
		pt.reset()
		p.available = append(p.available, pt)
		released = append(released, pt)
	}
	return released
}

// IsActive reports whether the handle is currently checked out of this
// pool. Callers tracking borrowed handles use this instead of inferring
// membership from render state.
func (p *Pool) IsActive(pt *Particle) bool {
	_, ok := p.active[pt]
	return ok
}

// Active returns the number of checked-out particles.
func (p *Pool) Active() int { return len(p.active) }

// Available returns the number of free particles.
func (p *Pool) Available() int { return len(p.available) }

// Cap returns the hard capacity.
func (p *Pool) Cap() int { return p.max }
