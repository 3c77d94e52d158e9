// Package timeline reuses animation-timeline handles keyed by identifier
// and coalesces high-frequency input events onto a configurable delay.
package timeline

// Handle is a reusable animation timeline. Position is playback progress
// in seconds; the host animation system advances it while Playing.
type Handle struct {
	Key      string
	Position float64
	Playing  bool
}

func (h *Handle) Play() {
	h.Playing = true
}

func (h *Handle) Pause() {
	h.Playing = false
}

// Seek jumps the playhead; negative positions clamp to zero.
func (h *Handle) Seek(pos float64) {
	if pos < 0 {
		pos = 0
	}
	h.Position = pos
}

// Pool tracks reusable handles by key with active/inactive bookkeeping so
// idle timelines can be reclaimed in one sweep.
type Pool struct {
	handles map[string]*Handle
	active  map[string]bool
}

// NewPool creates an empty timeline pool.
func NewPool() *Pool {
	return &Pool{
		handles: make(map[string]*Handle),
		active:  make(map[string]bool),
	}
}

// GetOrCreate returns the existing handle for key or constructs one.
// Either way the handle is marked active: handing out a handle and then
// reclaiming it in the same sweep would leave the caller holding a
// destroyed timeline.
func (p *Pool) GetOrCreate(key string) *Handle {
	if h, ok := p.handles[key]; ok {
		p.active[key] = true
		return h
	}
	h := &Handle{Key: key}
	p.handles[key] = h
	p.active[key] = true
	return h
}

// MarkActive flags a handle as in use, protecting it from Cleanup.
// Unknown keys are ignored.
func (p *Pool) MarkActive(key string) {
	if _, ok := p.handles[key]; ok {
		p.active[key] = true
	}
}

// MarkInactive flags a handle as idle, pauses it and rewinds the playhead
// so the next user starts from a clean state.
func (p *Pool) MarkInactive(key string) {
	h, ok := p.handles[key]
	if !ok {
		return
	}
	p.active[key] = false
	h.Pause()
	h.Seek(0)
}

// Cleanup destroys and forgets every handle not currently active.
// Returns the number of handles reclaimed.
func (p *Pool) Cleanup() int {
	reclaimed := 0
	for key := range p.handles {
		if !p.active[key] {
			delete(p.handles, key)
			delete(p.active, key)
			reclaimed++
		}
	}
	return reclaimed
}

// Clear destroys every handle regardless of active state; full teardown
// at scene unmount.
func (p *Pool) Clear() {
	p.handles = make(map[string]*Handle)
	p.active = make(map[string]bool)
}

// Len returns the number of handles currently held, active or not.
func (p *Pool) Len() int {
	return len(p.handles)
}
