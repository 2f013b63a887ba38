package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

const (
	minElevation = -90.0
	maxElevation = 90.0
	minZoom      = 0.2
	maxZoom      = 8.0
)

// Camera orbits the origin. Angles are in degrees, z is up.
type Camera struct {
	Elevation, Azimuth float64
	Zoom               float64
	PanX, PanY         float64
	// Distance from the origin for perspective; 0 means orthographic.
	Distance float64
}

func NewCamera(elevation, azimuth, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{Azimuth: azimuth, Zoom: zoom, Distance: 8}
	c.SetElevation(elevation)
	return c
}

func (c *Camera) Rotate(dAzimuth float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzimuth, 360)
	if c.Azimuth < 0 {
		c.Azimuth += 360
	}
}

func (c *Camera) SetElevation(e float64)  { c.Elevation = math.Max(minElevation, math.Min(maxElevation, e)) }
func (c *Camera) Tilt(dElevation float64) { c.SetElevation(c.Elevation + dElevation) }
func (c *Camera) ZoomIn()                 { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut()                { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// Pan shifts the view in screen units of the scene box.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// View returns p in camera space: X to the right, Y up on screen and Z
// toward the viewer.
func (c *Camera) View(p Vec3) Vec3 {
	sa, ca := math.Sincos(c.Azimuth * math.Pi / 180)
	se, ce := math.Sincos(c.Elevation * math.Pi / 180)
	right := p.X*ca + p.Y*sa
	toward := -p.X*sa + p.Y*ca
	return Vec3{
		X: right,
		Y: p.Z*ce - toward*se,
		Z: toward*ce + p.Z*se,
	}
}

// Project maps p onto a sw × sh screen. It returns screen coordinates, the
// depth (larger is nearer) and whether the point is in front of the camera.
func (c *Camera) Project(p Vec3, sw, sh float64) (float64, float64, float64, bool) {
	v := c.View(p)
	scale := 1.0
	if c.Distance > 0 {
		if v.Z >= c.Distance-0.1 {
			return 0, 0, v.Z, false
		}
		scale = c.Distance / (c.Distance - v.Z)
	}
	unit := math.Min(sw, sh) / 3.0 * c.Zoom
	sx := (v.X*scale+c.PanX)*unit + sw/2
	sy := -(v.Y*scale+c.PanY)*unit + sh/2
	return sx, sy, v.Z, true
}

// AxisLayer marks edges that belong to no sheet.
const AxisLayer = -1

type Edge struct {
	Start, End Vec3
	Layer      int
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                    { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, layer int) { w.Edges = append(w.Edges, Edge{s, e, layer}) }

type ProjectedEdge struct {
	X1, Y1, X2, Y2 float64
	Depth          float64
	Layer          int
}

// ProjectWireframe projects every visible edge and orders them far to near.
// Edges at equal depth keep their wireframe order.
func ProjectWireframe(w *Wireframe, cam *Camera, sw, sh float64) []ProjectedEdge {
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 && v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Layer})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	return proj
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	for _, e := range ProjectWireframe(w, cam, float64(sw), float64(sh)) {
		c.DrawLineLayer(int(math.Round(e.X1)), int(math.Round(e.Y1)), int(math.Round(e.X2)), int(math.Round(e.Y2)), e.Layer)
	}
}

// CreateAxesWireframe draws three axes of length l starting at o.
func CreateAxesWireframe(o Vec3, l float64) *Wireframe {
	w := NewWireframe()
	w.AddEdge(o, o.Add(Vec3{l, 0, 0}), AxisLayer)
	w.AddEdge(o, o.Add(Vec3{0, l, 0}), AxisLayer)
	w.AddEdge(o, o.Add(Vec3{0, 0, l}), AxisLayer)
	return w
}
