package surface

import "math"

// Point is one sample of a sheet in 3D space.
type Point struct {
	X, Y, Z float64
}

// Grid holds points indexed as [radiusIndex][angleIndex].
type Grid [][]Point

// Rows returns the number of radial samples.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of angular samples.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Bounds returns the axis-aligned extent of the grid.
func (g Grid) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, row := range g {
		for _, p := range row {
			lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
			lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
			lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
		}
	}
	return lo, hi
}

// Sheet is a single branch of the root.
type Sheet struct {
	Index  int
	Points Grid
}

// Surface is the full result of one build: every sheet plus the sampled
// domain they share.
type Surface struct {
	Order  int
	Radii  []float64
	Angles []float64
	Sheets []Sheet
	Label  string
	Title  string

	// VerticalOffsetUnit is the spacing that was used between sheets.
	VerticalOffsetUnit float64
}

// Bounds returns the extent of all sheets together.
func (s *Surface) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, sh := range s.Sheets {
		l, h := sh.Points.Bounds()
		lo.X, hi.X = math.Min(lo.X, l.X), math.Max(hi.X, h.X)
		lo.Y, hi.Y = math.Min(lo.Y, l.Y), math.Max(hi.Y, h.Y)
		lo.Z, hi.Z = math.Min(lo.Z, l.Z), math.Max(hi.Z, h.Z)
	}
	return lo, hi
}
