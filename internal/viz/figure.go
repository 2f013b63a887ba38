package viz

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/riemann/internal/surface"
)

// ErrEmptyFigure is returned when a figure carries no surface.
var ErrEmptyFigure = errors.New("viz: figure has no surface")

// Figure is everything a renderer needs to draw one surface.
type Figure struct {
	Title  string
	Label  string
	XLabel string
	YLabel string
	ZLabel string
	ZTicks []Tick

	Surface *surface.Surface
}

func NewFigure(s *surface.Surface) Figure {
	return Figure{
		Title:   s.Title,
		Label:   s.Label,
		XLabel:  "Re(z)",
		YLabel:  "Im(z)",
		ZLabel:  fmt.Sprintf("z ~ θ/%d", s.Order),
		ZTicks:  HeightTicks(s),
		Surface: s,
	}
}

// Tick is a labelled height on the z axis.
type Tick struct {
	Z     float64
	Label string
}

// HeightTicks marks multiples of π/2 from 0 up to the top of the surface.
// Tall stacks above 4π are marked every π instead.
func HeightTicks(s *surface.Surface) []Tick {
	if s == nil || len(s.Sheets) == 0 {
		return nil
	}
	_, hi := s.Bounds()
	step := 1
	if hi.Z > 4*math.Pi {
		step = 2
	}
	var ticks []Tick
	for halves := 0; float64(halves)*math.Pi/2 <= hi.Z+1e-9; halves += step {
		ticks = append(ticks, Tick{Z: float64(halves) * math.Pi / 2, Label: piLabel(halves)})
	}
	return ticks
}

// piLabel writes halves·π/2 as a reduced multiple of π.
func piLabel(halves int) string {
	switch {
	case halves == 0:
		return "0"
	case halves == 1:
		return "π/2"
	case halves == 2:
		return "π"
	case halves%2 == 0:
		return fmt.Sprintf("%dπ", halves/2)
	default:
		return fmt.Sprintf("%dπ/2", halves)
	}
}

// TickLabels joins tick labels for a one-line legend.
func TickLabels(ticks []Tick) string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.Label
	}
	return strings.Join(labels, " ")
}

// Renderer draws a figure. Implementations own every presentation choice.
type Renderer interface {
	Render(w io.Writer, fig Figure) error
}

// Rasterize projects the figure's mesh onto a fresh Braille canvas of
// width × height cells.
func Rasterize(fig Figure, cam *Camera, width, height int, opts MeshOptions) (*Canvas, error) {
	if fig.Surface == nil {
		return nil, ErrEmptyFigure
	}
	c := NewCanvas(width, height)
	Render3D(c, NewMesh(fig.Surface, opts), cam)
	return c, nil
}

// TerminalRenderer writes a single static frame.
type TerminalRenderer struct {
	Width, Height int
	Camera        *Camera
	Theme         Theme
	Lines         int
	// Plain disables ANSI styling.
	Plain bool
}

func NewTerminalRenderer(cam *Camera, theme Theme) *TerminalRenderer {
	return &TerminalRenderer{Width: 80, Height: 30, Camera: cam, Theme: theme, Lines: DefaultMeshLines}
}

func (r *TerminalRenderer) Render(w io.Writer, fig Figure) error {
	canvas, err := Rasterize(fig, r.Camera, r.Width, r.Height, MeshOptions{Lines: r.Lines, Axes: true})
	if err != nil {
		return err
	}

	var b strings.Builder
	if r.Plain {
		b.WriteString(fig.Title + "\n\n")
		b.WriteString(canvas.String())
	} else {
		b.WriteString(GradientText(fig.Title, r.Theme.Primary, r.Theme.Secondary) + "\n\n")
		b.WriteString(canvas.StyledString(r.Theme.LayerStyle()))
	}
	b.WriteString(r.axes(fig) + "\n")
	b.WriteString(r.legend(fig) + "\n")

	_, err = io.WriteString(w, b.String())
	return err
}

func (r *TerminalRenderer) axes(fig Figure) string {
	line := fmt.Sprintf("x: %s   y: %s   z: %s\nz ticks: %s", fig.XLabel, fig.YLabel, fig.ZLabel, TickLabels(fig.ZTicks))
	if r.Plain {
		return line
	}
	return lipgloss.NewStyle().Foreground(r.Theme.Axis).Render(line)
}

func (r *TerminalRenderer) legend(fig Figure) string {
	parts := make([]string, len(fig.Surface.Sheets))
	for i, sh := range fig.Surface.Sheets {
		entry := fmt.Sprintf("■ k=%d", sh.Index)
		if !r.Plain {
			entry = lipgloss.NewStyle().Foreground(r.Theme.SheetColor(sh.Index)).Render(entry)
		}
		parts[i] = entry
	}
	return strings.Join(parts, "  ")
}
