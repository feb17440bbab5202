package pipeline

import (
	gomath "math"

	"github.com/Faultbox/sombrero/pkg/math"
)

// Rotation composes the tumbling object-space rotation for the given
// angle: RotateY(angle*yawRate) * RotateX(angle*pitchRate). Two
// independent rates keep the surface from spinning about a single axis.
func Rotation(angle, yawRate, pitchRate float32) math.Mat4 {
	return math.RotateY(angle * yawRate).Mul(math.RotateX(angle * pitchRate))
}

// ModelViewProjection builds the per-frame transform in the fixed order
// Projection * View * Rotation. Rotation applies in object space first,
// then the camera translation, then the projection; matrix multiplication
// is not commutative so this order is load-bearing.
func ModelViewProjection(cfg Config, angle float32, width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	proj := math.Perspective(cfg.FovYDeg*gomath.Pi/180, aspect, cfg.Near, cfg.Far)
	view := math.Translate(0, 0, -cfg.CameraDistance)
	rot := Rotation(angle, cfg.YawRate, cfg.PitchRate)

	return proj.Mul(view.Mul(rot))
}
