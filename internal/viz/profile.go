package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/riemann/internal/surface"
)

var profileColors = []asciigraph.AnsiColor{
	asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green,
	asciigraph.Orange, asciigraph.Blue, asciigraph.Red, asciigraph.White,
}

// HeightProfile returns, for every sheet, z along the ring at radiusIndex.
// Read left to right and sheet after sheet it traces the helix a point
// climbs while circling the origin.
func HeightProfile(s *surface.Surface, radiusIndex int) ([][]float64, error) {
	if s == nil || len(s.Sheets) == 0 {
		return nil, ErrEmptyFigure
	}
	if radiusIndex < 0 || radiusIndex >= len(s.Radii) {
		return nil, fmt.Errorf("viz: radius index %d out of range [0, %d)", radiusIndex, len(s.Radii))
	}
	series := make([][]float64, len(s.Sheets))
	for k, sh := range s.Sheets {
		row := sh.Points[radiusIndex]
		zs := make([]float64, len(row))
		for j, p := range row {
			zs[j] = p.Z
		}
		series[k] = zs
	}
	return series, nil
}

// PlotProfile charts the height profile of every sheet at the outer radius.
func PlotProfile(fig Figure, width, height int) (string, error) {
	if fig.Surface == nil {
		return "", ErrEmptyFigure
	}
	series, err := HeightProfile(fig.Surface, len(fig.Surface.Radii)-1)
	if err != nil {
		return "", err
	}
	colors := make([]asciigraph.AnsiColor, len(series))
	for k := range colors {
		colors[k] = profileColors[k%len(profileColors)]
	}
	caption := fmt.Sprintf("%s: height vs θ per sheet (r = %.2f)", fig.Label, fig.Surface.Radii[len(fig.Surface.Radii)-1])
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	), nil
}
