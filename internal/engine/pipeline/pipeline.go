// Package pipeline owns the shader program, the GPU-resident mesh
// buffers and the per-frame transform composition.
package pipeline

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/sombrero/internal/engine/pipeline/shaders"
	"github.com/Faultbox/sombrero/internal/engine/shader"
	"github.com/Faultbox/sombrero/internal/engine/surface"
	"github.com/Faultbox/sombrero/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds the pipeline configuration: shader sources, the semantic
// attribute-name-to-slot mapping, and the camera/animation constants.
type Config struct {
	VertexSource   string
	FragmentSource string
	Attribs        map[string]uint32

	FovYDeg        float32
	Near           float32
	Far            float32
	CameraDistance float32

	YawRate   float32
	PitchRate float32

	ClearColor [3]float32
}

// Default returns the built-in shaders bound to slots 0/1 and the fixed
// camera used by the viewer.
func Default() Config {
	return Config{
		VertexSource:   shaders.SurfaceVertexShader,
		FragmentSource: shaders.SurfaceFragmentShader,
		Attribs:        map[string]uint32{"aPos": 0, "aCol": 1},
		FovYDeg:        60,
		Near:           0.1,
		Far:            50,
		CameraDistance: 4.5,
		YawRate:        0.9,
		PitchRate:      0.5,
		ClearColor:     [3]float32{0.02, 0.02, 0.03},
	}
}

// Pipeline renders the uploaded mesh once per frame. It has two states:
// uninitialized before New, ready after; Close is the only teardown.
type Pipeline struct {
	cfg     Config
	program uint32
	locMVP  int32

	vao        uint32
	positionBO uint32
	colorBO    uint32
	indexBO    uint32
	indexCount int32
}

// New initializes OpenGL state and compiles the shader program.
// IMPORTANT: Must be called AFTER the OpenGL context is created.
// A compile or link failure is returned as a *shader.BuildError; the
// caller decides whether it is fatal.
func New(cfg Config) (*Pipeline, error) {
	p := &Pipeline{cfg: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Depth testing stays on for the process lifetime; the surface must
	// self-occlude correctly while it rotates.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	program, err := shader.CompileProgram(cfg.VertexSource, cfg.FragmentSource, cfg.Attribs)
	if err != nil {
		return nil, err
	}
	p.program = program
	p.locMVP = shader.GetUniform(program, "uMVP")

	logger.Debug("pipeline ready", zap.Uint32("program", program))
	return p, nil
}

// Upload creates the GPU buffers for the mesh. The buffers are immutable
// and owned by the pipeline until Close.
func (p *Pipeline) Upload(m *surface.Mesh) {
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	posSlot := p.cfg.Attribs["aPos"]
	colSlot := p.cfg.Attribs["aCol"]

	gl.GenBuffers(1, &p.positionBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.positionBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, unsafe.Pointer(&m.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(posSlot, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(posSlot)

	gl.GenBuffers(1, &p.colorBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.colorBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Colors)*4, unsafe.Pointer(&m.Colors[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(colSlot, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(colSlot)

	gl.GenBuffers(1, &p.indexBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.indexBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	p.indexCount = int32(m.IndexCount())

	logger.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", p.indexCount),
	)
}

// Resize updates the GL viewport after a window resize.
func (p *Pipeline) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// RenderFrame clears the frame and issues one indexed draw of the mesh
// rotated to the given angle. width and height are the current viewport
// size used for the aspect ratio.
func (p *Pipeline) RenderFrame(angle float32, width, height int) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if p.indexCount == 0 {
		return
	}

	mvp := ModelViewProjection(p.cfg, angle, width, height)

	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.locMVP, 1, false, mvp.Ptr())

	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// Close releases the shader program and GPU buffers. Safe to call once at
// shutdown.
func (p *Pipeline) Close() {
	logger.Info("closing pipeline")
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.positionBO != 0 {
		gl.DeleteBuffers(1, &p.positionBO)
		p.positionBO = 0
	}
	if p.colorBO != 0 {
		gl.DeleteBuffers(1, &p.colorBO)
		p.colorBO = 0
	}
	if p.indexBO != 0 {
		gl.DeleteBuffers(1, &p.indexBO)
		p.indexBO = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
