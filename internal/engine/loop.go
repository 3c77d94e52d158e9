// Package engine owns the per-tick orchestration: sample frame time, run
// the periodic quality check, apply its settings, then cull and pick LOD
// tiers for the live object set.
package engine

import (
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"rendergov/internal/config"
	"rendergov/internal/culling"
	"rendergov/internal/frametime"
	"rendergov/internal/lod"
	"rendergov/internal/pool"
	"rendergov/internal/profiling"
	"rendergov/internal/quality"
	"rendergov/internal/scene"
	"rendergov/internal/timeline"
)

// Frame budget at the 60 Hz target; ticks that exceed it get a diagnostic
// log line with the most expensive stages.
const frameBudget = 16 * time.Millisecond

const particleLifetime = 4.0 // seconds

// Loop is the render-loop owner holding one of everything: constructed at
// scene mount, closed at unmount. No process-wide state.
type Loop struct {
	cfg        *config.Config
	sampler    *frametime.Sampler
	limiter    *frametime.Limiter
	controller *quality.Controller
	culler     *culling.Culler
	particles  *pool.Pool
	timelines  *timeline.Pool
	frame      *profiling.Frame

	Camera *scene.Camera
	tiers  []lod.Tier

	settings   quality.Settings
	active     []*pool.Particle
	objScratch []*scene.Object
	lodChoices []lod.Tier
	spawnAcc   float64
	lastTick   time.Time
}

// TickStats is what one Tick reports back to the host renderer.
type TickStats struct {
	Metrics  frametime.Metrics
	Settings quality.Settings
	Visible  int
	Active   int
}

// New builds a loop from the config. The camera starts at the demo default
// and is mutated directly by the host (resize, orbit).
func New(cfg *config.Config) *Loop {
	initial, max := cfg.PoolSizes()
	l := &Loop{
		cfg:        cfg,
		sampler:    frametime.NewSampler(),
		limiter:    frametime.NewLimiter(),
		controller: quality.NewController(quality.High),
		culler:     culling.NewCuller(),
		particles:  pool.New(initial, max, scene.BoundingSphere{Radius: 0.5}),
		timelines:  timeline.NewPool(),
		frame:      profiling.NewFrame(),
		Camera:     scene.NewCamera(900, 600),
		tiers:      lod.NewBandedTiers(lod.Representation{Name: "particle", Segments: 32}),
		settings:   quality.SettingsFor(quality.High),
	}
	l.controller.SetCheckInterval(cfg.CheckInterval())
	l.particles.Resize(l.settings.MaxParticles)
	return l
}

// Tick advances the whole controller by one frame. Particle motion uses
// the delta between calls; the quality check gates itself internally on
// the configured interval.
func (l *Loop) Tick(now time.Time) TickStats {
	l.frame.Reset()
	start := time.Now()

	dt := 0.0
	if !l.lastTick.IsZero() {
		dt = now.Sub(l.lastTick).Seconds()
	}
	l.lastTick = now

	stop := l.frame.Track("frametime.Update")
	metrics := l.sampler.Update(now)
	stop()

	l.controller.SetCheckInterval(l.cfg.CheckInterval())
	if tier, changed := l.controller.Update(now, metrics); changed {
		l.applySettings(quality.SettingsFor(tier))
	}

	stop = l.frame.Track("particles.simulate")
	l.spawn(dt)
	l.simulate(dt)
	stop()

	stop = l.frame.Track("culling.Apply")
	visible := l.cull()
	stop()

	stop = l.frame.Track("lod.Select")
	l.selectLOD()
	stop()

	if d := time.Since(start); d > frameBudget {
		log.Printf("Slow tick: %v. Top stages: %s", d, l.frame.TopN(5))
	}

	return TickStats{
		Metrics:  metrics,
		Settings: l.settings,
		Visible:  visible,
		Active:   len(l.active),
	}
}

// Wait enforces the configured FPS cap; call after rendering the frame.
func (l *Loop) Wait() {
	l.limiter.Wait(l.cfg.FPSCap())
}

func (l *Loop) applySettings(s quality.Settings) {
	l.settings = s
	l.particles.Resize(s.MaxParticles)
	l.pruneReleased()
}

// spawn feeds new particles through the pool at the configured rate,
// honoring the active tier's particle cap. A nil acquire skips that spawn.
func (l *Loop) spawn(dt float64) {
	l.spawnAcc += dt * float64(l.cfg.SpawnsPerSecond())
	for l.spawnAcc >= 1 {
		l.spawnAcc--
		if len(l.active) >= l.settings.MaxParticles {
			continue
		}
		p := l.particles.Acquire()
		if p == nil {
			continue
		}
		initParticle(p, len(l.active))
		l.active = append(l.active, p)
	}
}

// initParticle spreads spawn directions by index so the demo needs no RNG
// state: a deterministic fountain from below the camera target.
func initParticle(p *pool.Particle, seed int) {
	angle := float64(seed%64) / 64.0 * 2 * math.Pi
	p.Transform.Position = mgl32.Vec3{0, -4, 0}
	p.Velocity = mgl32.Vec3{
		float32(math.Cos(angle)) * 3,
		6 + float32(seed%7),
		float32(math.Sin(angle)) * 3,
	}
	p.Age = 0
}

func (l *Loop) simulate(dt float64) {
	gravity := mgl32.Vec3{0, -9.8, 0}
	n := 0
	for _, p := range l.active {
		p.Age += dt
		if p.Age >= particleLifetime {
			l.particles.Release(p)
			continue
		}
		p.Velocity = p.Velocity.Add(gravity.Mul(float32(dt)))
		p.Transform.Position = p.Transform.Position.Add(p.Velocity.Mul(float32(dt)))
		l.active[n] = p
		n++
	}
	l.active = l.active[:n]
}

// pruneReleased drops handles the pool reclaimed out from under us
// (Resize after a quality drop). Membership comes from the pool itself:
// the Visible flag also changes under culling, so it says nothing about
// whether a handle is still checked out.
func (l *Loop) pruneReleased() {
	n := 0
	for _, p := range l.active {
		if l.particles.IsActive(p) {
			l.active[n] = p
			n++
		}
	}
	l.active = l.active[:n]
}

func (l *Loop) cull() int {
	l.objScratch = l.objScratch[:0]
	for _, p := range l.active {
		l.objScratch = append(l.objScratch, &p.Object)
	}
	return l.culler.Apply(l.objScratch, l.Camera)
}

// selectLOD records each live particle's tier for the renderer. Distances
// are scaled by the inverse tier multiplier so lower quality pulls LOD
// transitions closer to the viewer.
func (l *Loop) selectLOD() {
	l.lodChoices = l.lodChoices[:0]
	mult := l.settings.LODDistanceMultiplier
	if mult <= 0 {
		mult = 1
	}
	for _, p := range l.active {
		if !p.Visible {
			l.lodChoices = append(l.lodChoices, lod.Tier{})
			continue
		}
		d := p.DistanceTo(l.Camera.Position) / mult
		l.lodChoices = append(l.lodChoices, lod.Select(l.tiers, d))
	}
}

// Particles returns the live handles in the same order LODChoices indexes.
func (l *Loop) Particles() []*pool.Particle {
	return l.active
}

// LODChoices returns the tier selected for each live particle this tick;
// the zero Tier marks culled particles.
func (l *Loop) LODChoices() []lod.Tier {
	return l.lodChoices
}

// Timelines exposes the shared timeline pool for host animations.
func (l *Loop) Timelines() *timeline.Pool {
	return l.timelines
}

// Quality returns the active tier.
func (l *Loop) Quality() quality.Tier {
	return l.controller.Current()
}

// SetQuality applies a manual tier override. The override timestamp is
// the loop's own tick clock so hosts driving synthetic time stay
// consistent.
func (l *Loop) SetQuality(t quality.Tier) {
	now := l.lastTick
	if now.IsZero() {
		now = time.Now()
	}
	l.controller.SetQuality(now, t)
	l.applySettings(quality.SettingsFor(t))
}

// Settings returns the renderer settings for the active tier.
func (l *Loop) Settings() quality.Settings {
	return l.settings
}

// Close tears the loop down at scene unmount: every checked-out particle
// is forced back, the pool disposed, and all timeline handles destroyed.
func (l *Loop) Close() {
	l.active = l.active[:0]
	l.particles.Dispose()
	l.timelines.Clear()
}
