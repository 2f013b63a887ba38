package viz

import (
	"math"

	"github.com/san-kum/riemann/internal/surface"
)

// BoxAspect is the scene box the surface is scaled into: the disk spans
// [-1, 1] in x and y, all sheets together span [-BoxAspect, BoxAspect] in z.
const BoxAspect = 0.6

// DefaultMeshLines is roughly how many grid lines are drawn per axis.
const DefaultMeshLines = 12

type MeshOptions struct {
	// Lines per axis; 0 or less draws every sample line.
	Lines int
	// Hidden sheets are left out of the mesh.
	Hidden map[int]bool
	Axes   bool
}

// Normalizer maps surface coordinates into the scene box.
type Normalizer struct {
	radius     float64
	zLo, zSpan float64
}

func NewNormalizer(s *surface.Surface) Normalizer {
	lo, hi := s.Bounds()
	radius := math.Max(math.Max(math.Abs(lo.X), math.Abs(hi.X)), math.Max(math.Abs(lo.Y), math.Abs(hi.Y)))
	if radius == 0 {
		radius = 1
	}
	span := hi.Z - lo.Z
	if span == 0 {
		span = 1
	}
	return Normalizer{radius: radius, zLo: lo.Z, zSpan: span}
}

func (n Normalizer) Apply(p surface.Point) Vec3 {
	return Vec3{
		X: p.X / n.radius,
		Y: p.Y / n.radius,
		Z: ((p.Z-n.zLo)/n.zSpan*2 - 1) * BoxAspect,
	}
}

// NewMesh builds the wireframe of every visible sheet, topmost sheet first.
// Each sheet contributes rings of constant radius and spokes of constant
// angle, tagged with the sheet index as layer.
func NewMesh(s *surface.Surface, opts MeshOptions) *Wireframe {
	w := NewWireframe()
	if s == nil || len(s.Sheets) == 0 {
		return w
	}
	norm := NewNormalizer(s)

	for k := len(s.Sheets) - 1; k >= 0; k-- {
		sh := s.Sheets[k]
		if opts.Hidden[sh.Index] {
			continue
		}
		g := sh.Points
		rows, cols := g.Rows(), g.Cols()
		for _, i := range lineIndices(rows, opts.Lines) {
			for j := 0; j+1 < cols; j++ {
				w.AddEdge(norm.Apply(g[i][j]), norm.Apply(g[i][j+1]), sh.Index)
			}
		}
		for _, j := range lineIndices(cols, opts.Lines) {
			for i := 0; i+1 < rows; i++ {
				w.AddEdge(norm.Apply(g[i][j]), norm.Apply(g[i+1][j]), sh.Index)
			}
		}
	}

	if opts.Axes {
		axes := CreateAxesWireframe(Vec3{0, 0, -BoxAspect}, 1.2)
		w.Edges = append(w.Edges, axes.Edges...)
	}
	return w
}

// lineIndices picks about lines evenly strided indices out of n, always
// including the first and last.
func lineIndices(n, lines int) []int {
	if n <= 0 {
		return nil
	}
	stride := 1
	if lines > 0 && n-1 > lines {
		stride = (n - 1 + lines - 1) / lines
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}
