package engine

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"rendergov/internal/config"
	"rendergov/internal/quality"
)

// run drives the loop with synthetic ticks at a fixed frame duration.
func run(l *Loop, start time.Time, frame time.Duration, ticks int) (time.Time, TickStats) {
	now := start
	var stats TickStats
	for i := 0; i < ticks; i++ {
		stats = l.Tick(now)
		now = now.Add(frame)
	}
	return now, stats
}

func TestLoopStartsAtHigh(t *testing.T) {
	l := New(config.New())
	defer l.Close()
	if l.Quality() != quality.High {
		t.Fatalf("loop should start at high, got %s", l.Quality())
	}
}

func TestSustainedSlowFramesStepDown(t *testing.T) {
	l := New(config.New())
	defer l.Close()

	// 40ms frames = 25 FPS average, below the step-down threshold.
	now, _ := run(l, time.Unix(0, 0), 40*time.Millisecond, 55) // ~2.2s
	if l.Quality() != quality.Medium {
		t.Fatalf("after one interval of 25 FPS want medium, got %s", l.Quality())
	}
	run(l, now, 40*time.Millisecond, 55)
	if l.Quality() != quality.Low {
		t.Fatalf("after two intervals want low, got %s", l.Quality())
	}
}

func TestTierDropEnforcesParticleCap(t *testing.T) {
	cfg := config.New()
	cfg.SetSpawnsPerSecond(1000)
	l := New(cfg)
	defer l.Close()

	// Fill up at high quality with fast frames (no tier change).
	now, stats := run(l, time.Unix(0, 0), 10*time.Millisecond, 100)
	if stats.Active == 0 {
		t.Fatal("expected live particles")
	}

	// Drop straight to low; the cap must apply immediately.
	l.SetQuality(quality.Low)
	capLow := quality.SettingsFor(quality.Low).MaxParticles
	if got := len(l.Particles()); got > capLow {
		t.Fatalf("active particles %d exceed low-tier cap %d after override", got, capLow)
	}

	// And stay applied on subsequent ticks.
	_, stats = run(l, now, 10*time.Millisecond, 30)
	if stats.Active > capLow {
		t.Fatalf("cap not enforced during spawning: %d > %d", stats.Active, capLow)
	}
}

func TestRecoveryStepsBackUp(t *testing.T) {
	l := New(config.New())
	defer l.Close()
	now, _ := run(l, time.Unix(0, 0), 10*time.Millisecond, 1)
	l.SetQuality(quality.Low)

	// 10ms frames = 100 FPS, above the step-up threshold. Two intervals.
	now, _ = run(l, now, 10*time.Millisecond, 210) // ~2.1s
	if l.Quality() != quality.Medium {
		t.Fatalf("after one interval of 100 FPS want medium, got %s", l.Quality())
	}
	run(l, now, 10*time.Millisecond, 210)
	if l.Quality() != quality.High {
		t.Fatalf("after two intervals want high, got %s", l.Quality())
	}
}

func TestLODChoicesTrackParticles(t *testing.T) {
	cfg := config.New()
	cfg.SetSpawnsPerSecond(500)
	l := New(cfg)
	defer l.Close()

	run(l, time.Unix(0, 0), 16*time.Millisecond, 60)
	particles := l.Particles()
	choices := l.LODChoices()
	if len(particles) == 0 {
		t.Fatal("expected live particles")
	}
	if len(choices) != len(particles) {
		t.Fatalf("LOD choices (%d) must parallel particles (%d)", len(choices), len(particles))
	}
	for i, p := range particles {
		if p.Visible && choices[i].Rep.Segments == 0 {
			t.Fatalf("visible particle %d has no LOD representation", i)
		}
	}
}

func TestTierChangeKeepsCulledParticles(t *testing.T) {
	cfg := config.New()
	cfg.SetSpawnsPerSecond(1000)
	l := New(cfg)
	defer l.Close()

	// Aim the camera away from the fountain so live particles are culled
	// while still checked out of the pool.
	l.Camera.Target = mgl32.Vec3{0, 0, 1000}

	now, _ := run(l, time.Unix(0, 0), 10*time.Millisecond, 100)
	culled := 0
	for _, p := range l.Particles() {
		if !p.Visible {
			culled++
		}
	}
	if culled == 0 {
		t.Fatal("setup: expected culled-but-alive particles")
	}

	l.SetQuality(quality.Medium)
	if got, want := len(l.Particles()), l.particles.Active(); got != want {
		t.Fatalf("engine tracks %d particles but pool has %d checked out", got, want)
	}
	capMed := quality.SettingsFor(quality.Medium).MaxParticles
	if l.particles.Active() > capMed {
		t.Fatalf("pool active %d exceeds medium cap %d", l.particles.Active(), capMed)
	}

	// Survivors must keep aging out and recycling; a leaked handle would
	// stay checked out forever and desync the two counts.
	for i := 0; i < 600; i++ {
		l.Tick(now)
		now = now.Add(10 * time.Millisecond)
		if got, want := len(l.Particles()), l.particles.Active(); got != want {
			t.Fatalf("tick %d: engine tracks %d particles, pool has %d checked out", i, got, want)
		}
	}
}

func TestCloseDisposesEverything(t *testing.T) {
	l := New(config.New())
	run(l, time.Unix(0, 0), 16*time.Millisecond, 30)
	l.Timelines().GetOrCreate("hero")
	l.Close()
	if len(l.Particles()) != 0 {
		t.Fatal("close must drop live particles")
	}
	if l.Timelines().Len() != 0 {
		t.Fatal("close must clear timeline handles")
	}
}

func TestTickStatsReportSettings(t *testing.T) {
	l := New(config.New())
	defer l.Close()
	_, stats := run(l, time.Unix(0, 0), 16*time.Millisecond, 5)
	if stats.Settings.Tier != l.Quality() {
		t.Fatalf("stats tier %s disagrees with controller %s", stats.Settings.Tier, l.Quality())
	}
	if stats.Settings.MaxParticles == 0 || stats.Settings.TextureSize == 0 {
		t.Fatalf("settings not populated: %+v", stats.Settings)
	}
}
