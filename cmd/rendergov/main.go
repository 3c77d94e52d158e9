package main

import (
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"rendergov/internal/config"
	"rendergov/internal/engine"
	"rendergov/internal/quality"
	"rendergov/internal/sched"
	"rendergov/internal/texture"
	"rendergov/internal/timeline"
)

const (
	winW = 900
	winH = 600

	resizeDebounce = 150 * time.Millisecond
)

func init() { runtime.LockOSThread() }

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in float pointSize;
uniform mat4 viewProj;
void main() {
	gl_Position = viewProj * vec4(position, 1.0);
	gl_PointSize = pointSize;
}` + "\x00"

const fragmentSrc = `#version 410 core
uniform sampler2D sprite;
out vec4 fragColor;
void main() {
	fragColor = texture(sprite, gl_PointCoord);
}` + "\x00"

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(winW, winH, "rendergov", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	cfg := config.New()
	cfg.SetFPSCap(0)
	loop := engine.New(cfg)
	closer.Bind(loop.Close)

	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		log.Fatal(err)
	}
	closer.Bind(func() { gl.DeleteProgram(program) })

	r := newParticleRenderer(program, cfg)
	closer.Bind(r.destroy)
	r.applySettings(loop.Settings())

	// Coalesce resize storms onto one camera/viewport update. The debounce
	// fires on a timer goroutine, so it only flips a flag; the GL work
	// happens on the main thread at the next frame boundary.
	var resizeDirty atomic.Bool
	resize, cancelResize := timeline.Debounce(sched.Wall{}, resizeDebounce, func() {
		resizeDirty.Store(true)
	})
	closer.Bind(cancelResize)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) { resize() })

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.Key1:
			loop.SetQuality(quality.Low)
		case glfw.Key2:
			loop.SetQuality(quality.Medium)
		case glfw.Key3:
			loop.SetQuality(quality.High)
		}
	})

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.05, 0.06, 0.09, 1.0)

	lastTier := loop.Quality()
	statusAt := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		if resizeDirty.Swap(false) {
			w, h := window.GetFramebufferSize()
			gl.Viewport(0, 0, int32(w), int32(h))
			loop.Camera.SetAspect(w, h)
		}

		stats := loop.Tick(time.Now())

		if tier := stats.Settings.Tier; tier != lastTier {
			lastTier = tier
			r.applySettings(stats.Settings)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		r.draw(loop)
		window.SwapBuffers()

		if time.Since(statusAt) >= time.Second {
			statusAt = time.Now()
			fmt.Printf("fps avg %.0f (min %.0f max %.0f) | tier %s | particles %d visible %d\n",
				stats.Metrics.Average, stats.Metrics.Min, stats.Metrics.Max,
				stats.Settings.Tier, stats.Active, stats.Visible)
		}

		loop.Wait()
	}

	closer.Close()
}

// particleRenderer draws the pooled particles as textured point sprites.
// Point size carries the LOD decision: far tiers get smaller, cheaper
// sprites.
type particleRenderer struct {
	cfg     *config.Config
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	buf     []float32
}

func newParticleRenderer(program uint32, cfg *config.Config) *particleRenderer {
	r := &particleRenderer{cfg: cfg, program: program}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// interleaved: xyz + pointSize
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 4*4, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)
	gl.GenTextures(1, &r.tex)
	return r
}

// applySettings re-uploads the sprite at the tier's texture resolution and
// toggles multisampling.
func (r *particleRenderer) applySettings(s quality.Settings) {
	img := texture.ForQuality(texture.Checker(1024, 8), s.TextureSize)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if s.Antialias {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
	log.Printf("renderer: tier %s applied (texture %d, antialias %v, cap %d)",
		s.Tier, s.TextureSize, s.Antialias, s.MaxParticles)
}

func (r *particleRenderer) draw(loop *engine.Loop) {
	particles := loop.Particles()
	choices := loop.LODChoices()
	r.buf = r.buf[:0]
	for i, p := range particles {
		if !p.Visible {
			continue
		}
		pos := p.Transform.Position
		size := float32(choices[i].Rep.Segments) // 32/16/8 px by LOD tier
		r.buf = append(r.buf, pos.X(), pos.Y(), pos.Z(), size)
	}
	if len(r.buf) == 0 {
		return
	}

	gl.UseProgram(r.program)
	vp := loop.Camera.ViewProjection()
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.program, gl.Str("viewProj\x00")), 1, false, &vp[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("sprite\x00")), 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.buf)/4))
	gl.BindVertexArray(0)
}

func (r *particleRenderer) destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteTextures(1, &r.tex)
}
