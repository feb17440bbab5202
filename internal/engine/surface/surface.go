// Package surface builds the height-colored sombrero mesh, sampling
// z = scale*sin(freq*r)/r over a square grid.
package surface

import (
	"github.com/chewxy/math32"
)

const (
	// MinResolution is the smallest grid that still has interior cells.
	MinResolution = 3
	// MaxResolution is capped by the 16-bit index buffer: 256x256 grids
	// produce 65536 vertices, the most a uint16 can address.
	MaxResolution = 256

	// modelRadius is the fixed display radius the domain is rescaled
	// into, so visual size does not depend on DomainRadius.
	modelRadius = 1.5

	// minSampleRadius bounds r away from the singularity at the origin.
	// sin(r)/r tends to freq there, so the error introduced is small.
	minSampleRadius = 1e-4
)

// Params are the inputs of the mesh builder. DomainRadius must be
// positive. A nil Colorize falls back to HeightColor.
type Params struct {
	Resolution   int
	DomainRadius float32
	HeightScale  float32
	Frequency    float32
	Colorize     func(t float32) (r, g, b float32)
}

// DefaultParams returns the compiled-in surface parameters.
func DefaultParams() Params {
	return Params{
		Resolution:   128,
		DomainRadius: 6.0,
		HeightScale:  1.0,
		Frequency:    1.0,
	}
}

// Mesh holds the immutable buffers the pipeline uploads once at startup.
// Positions and Colors are tightly packed xyz / rgb float triples in
// row-major grid order; Indices is a triangle list.
type Mesh struct {
	Resolution int
	Positions  []float32
	Colors     []float32
	Indices    []uint16
	MinZ       float32
	MaxZ       float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// IndexCount returns the number of triangle-list indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Build samples the height function on an NxN grid and derives per-vertex
// colors and a quad tessellation. It is a pure function of its parameters:
// identical Params yield bit-identical buffers. Resolution is clamped to
// [MinResolution, MaxResolution].
func Build(p Params) *Mesh {
	n := p.Resolution
	if n < MinResolution {
		n = MinResolution
	}
	if n > MaxResolution {
		n = MaxResolution
	}

	colorize := p.Colorize
	if colorize == nil {
		colorize = HeightColor
	}

	vertexCount := n * n
	positions := make([]float32, 0, vertexCount*3)

	// First pass: sample positions and track the z range
	zmin := math32.Inf(1)
	zmax := math32.Inf(-1)
	for j := 0; j < n; j++ {
		ty := float32(j) / float32(n-1)
		y := -p.DomainRadius + ty*2*p.DomainRadius
		for i := 0; i < n; i++ {
			tx := float32(i) / float32(n-1)
			x := -p.DomainRadius + tx*2*p.DomainRadius

			r := math32.Hypot(x, y)
			if r < minSampleRadius {
				r = minSampleRadius
			}
			z := p.HeightScale * math32.Sin(p.Frequency*r) / r

			positions = append(positions,
				x/p.DomainRadius*modelRadius,
				y/p.DomainRadius*modelRadius,
				z,
			)
			if z < zmin {
				zmin = z
			}
			if z > zmax {
				zmax = z
			}
		}
	}

	// Second pass: color by rank within the sampled range. A flat
	// surface degenerates to t=0 everywhere.
	zrange := zmax - zmin
	if zrange < 1e-6 {
		zrange = 1
	}
	colors := make([]float32, 0, vertexCount*3)
	for v := 0; v < vertexCount; v++ {
		z := positions[v*3+2]
		t := (z - zmin) / zrange
		r, g, b := colorize(t)
		colors = append(colors, r, g, b)
	}

	// Two triangles per cell, shared diagonal, uniform winding
	indices := make([]uint16, 0, (n-1)*(n-1)*6)
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			a := uint16(j*n + i)
			b := uint16(j*n + i + 1)
			c := uint16((j+1)*n + i)
			d := uint16((j+1)*n + i + 1)
			indices = append(indices, a, c, b, b, c, d)
		}
	}

	return &Mesh{
		Resolution: n,
		Positions:  positions,
		Colors:     colors,
		Indices:    indices,
		MinZ:       zmin,
		MaxZ:       zmax,
	}
}
