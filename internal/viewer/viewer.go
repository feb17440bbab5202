// Package viewer implements the main frame loop: it owns the window, the
// render pipeline and the rotation angle.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sombrero/internal/config"
	"github.com/Faultbox/sombrero/internal/engine/input"
	"github.com/Faultbox/sombrero/internal/engine/pipeline"
	"github.com/Faultbox/sombrero/internal/engine/surface"
	"github.com/Faultbox/sombrero/internal/engine/window"
	"github.com/Faultbox/sombrero/internal/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Viewer is the running application instance.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	pipeline *pipeline.Pipeline
	input    *input.Input

	angle    float32
	spinStep float32
}

// New creates the window, the pipeline and the surface mesh.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		spinStep: cfg.Animation.SpinStep,
	}

	// Window first: the pipeline needs a live OpenGL context
	var err error
	v.window, err = window.New(window.Config{
		Title:      "Spinning Sombrero",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	pipeCfg := pipeline.Default()
	pipeCfg.YawRate = cfg.Animation.YawRate
	pipeCfg.PitchRate = cfg.Animation.PitchRate

	v.pipeline, err = pipeline.New(pipeCfg)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	mesh := surface.Build(surface.Params{
		Resolution:   cfg.Surface.Resolution,
		DomainRadius: cfg.Surface.DomainRadius,
		HeightScale:  cfg.Surface.HeightScale,
		Frequency:    cfg.Surface.Frequency,
	})
	logger.Info("surface mesh built",
		zap.Int("resolution", mesh.Resolution),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", mesh.IndexCount()),
	)
	v.pipeline.Upload(mesh)

	w, h := v.window.GetSize()
	v.pipeline.Resize(w, h)

	v.input = input.New()

	logger.Info("viewer initialized")
	return v, nil
}

// Run drives the frame loop until quit.
func (v *Viewer) Run() error {
	v.running = true

	width, height := v.window.GetSize()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				width, height = event.Width, event.Height
				v.pipeline.Resize(width, height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					v.running = false
				}
			}
		}

		v.pipeline.RenderFrame(v.angle, width, height)
		v.window.SwapBuffers()

		// Uncapped; trig periodicity makes an explicit wrap unnecessary
		v.angle += v.spinStep

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the pipeline and the window, in that order.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.pipeline != nil {
		v.pipeline.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
