package surface

import (
	"math"
	"testing"
)

func params(n int, radius, scale, freq float32) Params {
	return Params{
		Resolution:   n,
		DomainRadius: radius,
		HeightScale:  scale,
		Frequency:    freq,
	}
}

func TestBuildSmallGrid(t *testing.T) {
	m := Build(params(3, 1.0, 1.0, 1.0))

	if m.VertexCount() != 9 {
		t.Errorf("expected 9 vertices, got %d", m.VertexCount())
	}
	if m.IndexCount() != 24 {
		t.Errorf("expected 24 indices (2 triangles x 4 cells), got %d", m.IndexCount())
	}

	for i, p := range m.Positions {
		if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
			t.Fatalf("position element %d is not finite: %f", i, p)
		}
	}
}

func TestBuildDefaultGrid(t *testing.T) {
	m := Build(DefaultParams())

	if m.VertexCount() != 16384 {
		t.Errorf("expected 16384 vertices, got %d", m.VertexCount())
	}
	// 127 * 127 cells * 6 indices
	if m.IndexCount() != 96774 {
		t.Errorf("expected 96774 indices, got %d", m.IndexCount())
	}
}

func TestBuildIsPure(t *testing.T) {
	p := params(33, 6.0, 1.0, 1.0)
	a := Build(p)
	b := Build(p)

	if len(a.Positions) != len(b.Positions) || len(a.Colors) != len(b.Colors) || len(a.Indices) != len(b.Indices) {
		t.Fatal("repeated builds produced different buffer sizes")
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("positions diverge at %d: %f vs %f", i, a.Positions[i], b.Positions[i])
		}
	}
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			t.Fatalf("colors diverge at %d: %f vs %f", i, a.Colors[i], b.Colors[i])
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("indices diverge at %d: %d vs %d", i, a.Indices[i], b.Indices[i])
		}
	}
}

func TestIndexBounds(t *testing.T) {
	m := Build(params(17, 6.0, 1.0, 1.0))

	limit := uint16(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= limit {
			t.Fatalf("index %d out of bounds: %d >= %d", i, idx, limit)
		}
	}
}

func TestTriangleCount(t *testing.T) {
	for _, n := range []int{3, 8, 64} {
		m := Build(params(n, 6.0, 1.0, 1.0))
		want := 6 * (n - 1) * (n - 1)
		if m.IndexCount() != want {
			t.Errorf("resolution %d: expected %d indices, got %d", n, want, m.IndexCount())
		}
	}
}

func TestColorRange(t *testing.T) {
	m := Build(params(32, 6.0, 1.0, 1.0))

	for i, c := range m.Colors {
		if c < 0 || c > 1 {
			t.Fatalf("color element %d outside [0,1]: %f", i, c)
		}
	}
}

func TestColorExtremes(t *testing.T) {
	m := Build(params(64, 6.0, 1.0, 1.0))

	checkedMin, checkedMax := false, false
	for v := 0; v < m.VertexCount(); v++ {
		z := m.Positions[v*3+2]
		r, g, b := m.Colors[v*3], m.Colors[v*3+1], m.Colors[v*3+2]
		if z == m.MinZ {
			if r != 0 || g != 0 || b != 1 {
				t.Errorf("min-z vertex %d: expected (0,0,1), got (%f,%f,%f)", v, r, g, b)
			}
			checkedMin = true
		}
		if z == m.MaxZ {
			if r != 1 || g != 1 || b != 0 {
				t.Errorf("max-z vertex %d: expected (1,1,0), got (%f,%f,%f)", v, r, g, b)
			}
			checkedMax = true
		}
	}
	if !checkedMin || !checkedMax {
		t.Fatal("mesh should contain vertices at both z extremes")
	}
}

func TestOriginSample(t *testing.T) {
	// Odd resolution places a sample exactly at the origin, where the
	// clamped radius keeps sin(r)/r finite.
	m := Build(params(5, 2.0, 1.0, 1.0))

	center := (m.VertexCount() - 1) / 2
	z := float64(m.Positions[center*3+2])
	if math.IsNaN(z) || math.IsInf(z, 0) {
		t.Fatalf("origin sample is not finite: %f", z)
	}
	// sin(r)/r -> 1 as r -> 0 with freq=1
	if math.Abs(z-1.0) > 1e-3 {
		t.Errorf("origin sample should approach 1.0, got %f", z)
	}
}

func TestFlatSurface(t *testing.T) {
	// Zero height scale flattens every sample to z=0; the range guard
	// must still give every vertex a well-defined color.
	m := Build(params(9, 6.0, 0.0, 1.0))

	if m.MinZ != 0 || m.MaxZ != 0 {
		t.Fatalf("expected flat surface, got z range [%f, %f]", m.MinZ, m.MaxZ)
	}
	for v := 0; v < m.VertexCount(); v++ {
		r, g, b := m.Colors[v*3], m.Colors[v*3+1], m.Colors[v*3+2]
		if r != 0 || g != 0 || b != 1 {
			t.Fatalf("flat surface vertex %d: expected (0,0,1), got (%f,%f,%f)", v, r, g, b)
		}
	}
}

func TestResolutionClamp(t *testing.T) {
	low := Build(params(1, 6.0, 1.0, 1.0))
	if low.Resolution != MinResolution {
		t.Errorf("resolution 1 should clamp to %d, got %d", MinResolution, low.Resolution)
	}
	if low.VertexCount() != MinResolution*MinResolution {
		t.Errorf("clamped mesh should have %d vertices, got %d", MinResolution*MinResolution, low.VertexCount())
	}

	high := Build(params(1024, 6.0, 1.0, 1.0))
	if high.Resolution != MaxResolution {
		t.Errorf("resolution 1024 should clamp to %d, got %d", MaxResolution, high.Resolution)
	}
}

func TestModelSpaceRescale(t *testing.T) {
	// x,y extents are fixed by the display radius regardless of the
	// sampling domain.
	small := Build(params(9, 1.0, 1.0, 1.0))
	large := Build(params(9, 20.0, 1.0, 1.0))

	if small.Positions[0] != large.Positions[0] || small.Positions[1] != large.Positions[1] {
		t.Errorf("corner x,y should be domain-independent: (%f,%f) vs (%f,%f)",
			small.Positions[0], small.Positions[1], large.Positions[0], large.Positions[1])
	}
	if small.Positions[0] != -1.5 {
		t.Errorf("corner x should sit at -1.5, got %f", small.Positions[0])
	}
}

func TestCustomColorize(t *testing.T) {
	p := params(3, 1.0, 1.0, 1.0)
	p.Colorize = func(t float32) (float32, float32, float32) {
		return 0.5, 0.5, 0.5
	}
	m := Build(p)

	for i, c := range m.Colors {
		if c != 0.5 {
			t.Fatalf("custom ramp ignored at element %d: got %f", i, c)
		}
	}
}

func TestWindingConsistency(t *testing.T) {
	// Both triangles of each cell must share the a-c/c-b diagonal and
	// keep the same vertex ordering convention across the grid.
	m := Build(params(3, 1.0, 1.0, 1.0))

	n := m.Resolution
	cell := 0
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			a := uint16(j*n + i)
			b := uint16(j*n + i + 1)
			c := uint16((j+1)*n + i)
			d := uint16((j+1)*n + i + 1)

			tri := m.Indices[cell*6 : cell*6+6]
			want := []uint16{a, c, b, b, c, d}
			for k := range want {
				if tri[k] != want[k] {
					t.Fatalf("cell (%d,%d) triangle indices %v, want %v", i, j, tri, want)
				}
			}
			cell++
		}
	}
}
