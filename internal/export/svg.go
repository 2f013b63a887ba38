package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/riemann/internal/surface"
	"github.com/san-kum/riemann/internal/viz"
)

// SVGRenderer writes a figure as a vector drawing: one stroked path group
// per sheet, projected with the same camera as the terminal views.
type SVGRenderer struct {
	Width, Height int
	Camera        *viz.Camera
	Theme         viz.Theme
	Lines         int
	// Braille rasterizes through the terminal canvas and writes its dots
	// instead of vector paths.
	Braille bool
}

func NewSVGRenderer(cam *viz.Camera, theme viz.Theme) *SVGRenderer {
	return &SVGRenderer{Width: 800, Height: 700, Camera: cam, Theme: theme, Lines: viz.DefaultMeshLines}
}

func (r *SVGRenderer) Render(w io.Writer, fig viz.Figure) error {
	if fig.Surface == nil {
		return viz.ErrEmptyFigure
	}
	var doc string
	if r.Braille {
		canvas, err := viz.Rasterize(fig, r.Camera, r.Width/8, r.Height/16, viz.MeshOptions{Lines: r.Lines, Axes: true})
		if err != nil {
			return err
		}
		doc = CanvasToSVG(canvas, 4, string(r.Theme.Background), string(r.Theme.Primary))
	} else {
		doc = r.vector(fig)
	}
	_, err := io.WriteString(w, doc)
	return err
}

func (r *SVGRenderer) vector(fig viz.Figure) string {
	mesh := viz.NewMesh(fig.Surface, viz.MeshOptions{Lines: r.Lines, Axes: true})
	edges := viz.ProjectWireframe(mesh, r.Camera, float64(r.Width), float64(r.Height))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, r.Width, r.Height, r.Width, r.Height, r.Theme.Background))

	// Consecutive edges of the same layer share one path element.
	layer, open := 0, false
	for _, e := range edges {
		if !open || e.Layer != layer {
			if open {
				sb.WriteString("\"/>\n")
			}
			layer, open = e.Layer, true
			sb.WriteString(fmt.Sprintf(`<path class="%s" fill="none" stroke="%s" stroke-width="%s" d="`,
				layerClass(layer), r.Theme.SheetColor(layer), strokeWidth(layer)))
		}
		sb.WriteString(fmt.Sprintf("M%.1f,%.1f L%.1f,%.1f ", e.X1, e.Y1, e.X2, e.Y2))
	}
	if open {
		sb.WriteString("\"/>\n")
	}
	r.ticks(&sb, fig)

	sb.WriteString(fmt.Sprintf(`<g font-family="monospace" fill="%s">
<text x="%d" y="24" font-size="18" text-anchor="middle">%s</text>
<text x="12" y="%d" font-size="13">x: %s   y: %s   z: %s</text>
</g>
</svg>`, r.Theme.Text, r.Width/2, html.EscapeString(fig.Title), r.Height-12,
		html.EscapeString(fig.XLabel), html.EscapeString(fig.YLabel), html.EscapeString(fig.ZLabel)))
	return sb.String()
}

// ticks marks the figure's z ticks along the vertical axis.
func (r *SVGRenderer) ticks(sb *strings.Builder, fig viz.Figure) {
	norm := viz.NewNormalizer(fig.Surface)
	for _, tk := range fig.ZTicks {
		x, y, _, ok := r.Camera.Project(norm.Apply(surface.Point{Z: tk.Z}), float64(r.Width), float64(r.Height))
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<line class="tick" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
<text class="tick" x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="%s">%s</text>
`, x-4, y, x+4, y, r.Theme.Axis, x+7, y+4, r.Theme.Muted, html.EscapeString(tk.Label)))
	}
}

func layerClass(layer int) string {
	if layer == viz.AxisLayer {
		return "axis"
	}
	return fmt.Sprintf("sheet-%d", layer)
}

func strokeWidth(layer int) string {
	if layer == viz.AxisLayer {
		return "1.5"
	}
	return "0.8"
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, background, fill string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.Grow(256 + canvas.Dots()*48)

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, fill))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ProfileToSVG draws each height series as a polyline across the shared
// angle axis, one color per series.
func ProfileToSVG(series [][]float64, width, height int, colors []string) string {
	if len(series) == 0 || len(series[0]) < 2 || len(colors) == 0 {
		return ""
	}

	minY, maxY := series[0][0], series[0][0]
	for _, s := range series {
		for _, v := range s {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for k, s := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, colors[k%len(colors)]))
		for i, v := range s {
			x := float64(i) / float64(len(s)-1) * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
