package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/riemann/internal/surface"
	"github.com/san-kum/riemann/internal/viz"
)

func figure(t *testing.T, order int) viz.Figure {
	t.Helper()
	opts := surface.DefaultOptions()
	opts.Order, opts.RadialSamples, opts.AngularSamples = order, 6, 24
	s, err := surface.Build(opts)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return viz.NewFigure(s)
}

func TestSVGRenderer_Vector(t *testing.T) {
	fig := figure(t, 3)
	r := NewSVGRenderer(viz.NewCamera(25, 35, 1), viz.ThemeOcean)

	var buf bytes.Buffer
	if err := r.Render(&buf, fig); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Error("output is not a complete SVG document")
	}
	for _, want := range []string{`class="sheet-0"`, `class="sheet-1"`, `class="sheet-2"`, `class="axis"`, fig.Title, "Re(z)"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.Contains(out, string(viz.ThemeOcean.SheetColor(2))) {
		t.Error("sheet color not used")
	}

	if got := strings.Count(out, `<text class="tick"`); got != len(fig.ZTicks) {
		t.Errorf("expected %d z tick labels, got %d", len(fig.ZTicks), got)
	}
	for _, want := range []string{">0<", ">π/2<", ">3π/2<", ">2π<"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing tick label %q", want)
		}
	}
}

func TestSVGRenderer_Deterministic(t *testing.T) {
	fig := figure(t, 2)
	render := func() string {
		var buf bytes.Buffer
		if err := NewSVGRenderer(viz.NewCamera(25, 35, 1), viz.ThemeMinimal).Render(&buf, fig); err != nil {
			t.Fatalf("render failed: %v", err)
		}
		return buf.String()
	}
	if render() != render() {
		t.Error("same figure rendered differently")
	}
}

func TestSVGRenderer_Braille(t *testing.T) {
	r := NewSVGRenderer(viz.NewCamera(25, 35, 1), viz.ThemeCyberpunk)
	r.Braille = true

	var buf bytes.Buffer
	if err := r.Render(&buf, figure(t, 2)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<circle") {
		t.Error("braille mode should emit dots")
	}
}

func TestSVGRenderer_EmptyFigure(t *testing.T) {
	r := NewSVGRenderer(viz.NewCamera(25, 35, 1), viz.ThemeCyberpunk)
	if err := r.Render(&bytes.Buffer{}, viz.Figure{}); !errors.Is(err, viz.ErrEmptyFigure) {
		t.Errorf("expected ErrEmptyFigure, got %v", err)
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, "#000000", "#ffffff") != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(2, 1)
	c.SetLayer(0, 0, 0)
	c.SetLayer(3, 3, 0)
	out := CanvasToSVG(c, 2, "#000000", "#00ff00")
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(out, `width="8" height="8"`) {
		t.Error("unexpected document size")
	}
}

func TestProfileToSVG(t *testing.T) {
	series := [][]float64{{0, 1, 2}, {3, 4, 5}}
	out := ProfileToSVG(series, 100, 50, []string{"#ff0000", "#00ff00"})
	if got := strings.Count(out, "<path"); got != 2 {
		t.Errorf("expected 2 paths, got %d", got)
	}
	if !strings.Contains(out, "#00ff00") {
		t.Error("second series color missing")
	}
	if ProfileToSVG(nil, 100, 50, []string{"#fff"}) != "" {
		t.Error("empty series should give empty output")
	}
}
