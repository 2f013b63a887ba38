package surface

import "math"

const (
	// GapAngle is the angular width in radians left empty on each side of
	// the branch cut. It only keeps adjacent sheets visually apart.
	GapAngle = 0.03

	// VerticalOffsetUnit is the extra height added per sheet index. The
	// height function alone already separates sheets by 2π/n; the offset
	// keeps the stacks readable for large n where that step gets small.
	VerticalOffsetUnit = 1.0

	// MinOrder is the smallest root order with more than one branch.
	MinOrder = 2

	// MinSamples is the smallest sample count that still spans a surface.
	MinSamples = 2
)

const (
	DefaultOrder          = 2
	DefaultRadialSamples  = 16
	DefaultAngularSamples = 64
	DefaultRadiusMax      = 1.0
)

// Options configures a surface build.
type Options struct {
	Order          int
	RadialSamples  int
	AngularSamples int
	RadiusMin      float64
	RadiusMax      float64

	GapAngle           float64
	VerticalOffsetUnit float64
}

// DefaultOptions returns a square-root surface on the unit disk.
func DefaultOptions() Options {
	return Options{
		Order:              DefaultOrder,
		RadialSamples:      DefaultRadialSamples,
		AngularSamples:     DefaultAngularSamples,
		RadiusMax:          DefaultRadiusMax,
		GapAngle:           GapAngle,
		VerticalOffsetUnit: VerticalOffsetUnit,
	}
}

// Validate reports the first invalid option. Order is checked first, then
// resolution, then the domain.
func (o Options) Validate() error {
	if o.Order < MinOrder {
		return invalid("order", o.Order, ErrInvalidOrder)
	}
	if o.RadialSamples < MinSamples {
		return invalid("radial_samples", o.RadialSamples, ErrInvalidResolution)
	}
	if o.AngularSamples < MinSamples {
		return invalid("angular_samples", o.AngularSamples, ErrInvalidResolution)
	}
	if !(o.RadiusMax > 0) || math.IsInf(o.RadiusMax, 0) {
		return invalid("radius_max", o.RadiusMax, ErrInvalidDomain)
	}
	if !(o.RadiusMin >= 0) || o.RadiusMin >= o.RadiusMax {
		return invalid("radius_min", o.RadiusMin, ErrInvalidDomain)
	}
	if !(o.GapAngle > 0) || o.GapAngle >= math.Pi/2 {
		return invalid("gap_angle", o.GapAngle, ErrInvalidDomain)
	}
	if !(o.VerticalOffsetUnit >= 1) || math.IsInf(o.VerticalOffsetUnit, 0) {
		return invalid("vertical_offset", o.VerticalOffsetUnit, ErrInvalidDomain)
	}
	return nil
}

// Height is the helical height of angle theta on sheet k of an order-n root.
func Height(theta float64, k, order int) float64 {
	return (theta + 2*math.Pi*float64(k)) / float64(order)
}

// BuildSheets samples radialSamples × angularSamples points on the disk of
// radius radiusMax and returns one grid per branch of the order-th root.
// Nothing is returned unless every input is valid. The gap and sheet offset
// are the package constants.
func BuildSheets(order, radialSamples, angularSamples int, radiusMax float64) ([]Sheet, error) {
	s, err := Build(Options{
		Order:              order,
		RadialSamples:      radialSamples,
		AngularSamples:     angularSamples,
		RadiusMax:          radiusMax,
		GapAngle:           GapAngle,
		VerticalOffsetUnit: VerticalOffsetUnit,
	})
	if err != nil {
		return nil, err
	}
	return s.Sheets, nil
}

// Build validates opts and computes every sheet of the surface. Zero gap or
// offset values are rejected, not defaulted.
func Build(opts Options) (*Surface, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	radii := linspace(opts.RadiusMin, opts.RadiusMax, opts.RadialSamples)
	angles := linspace(opts.GapAngle, 2*math.Pi-opts.GapAngle, opts.AngularSamples)

	cos := make([]float64, len(angles))
	sin := make([]float64, len(angles))
	for j, th := range angles {
		sin[j], cos[j] = math.Sincos(th)
	}

	sheets := make([]Sheet, opts.Order)
	for k := range sheets {
		offset := float64(k) * opts.VerticalOffsetUnit
		heights := make([]float64, len(angles))
		for j, th := range angles {
			heights[j] = Height(th, k, opts.Order) + offset
		}

		backing := make([]Point, len(radii)*len(angles))
		grid := make(Grid, len(radii))
		for i, r := range radii {
			row := backing[i*len(angles) : (i+1)*len(angles) : (i+1)*len(angles)]
			for j := range angles {
				row[j] = Point{X: r * cos[j], Y: r * sin[j], Z: heights[j]}
			}
			grid[i] = row
		}
		sheets[k] = Sheet{Index: k, Points: grid}
	}

	return &Surface{
		Order:              opts.Order,
		Radii:              radii,
		Angles:             angles,
		Sheets:             sheets,
		Label:              RootLabel(opts.Order),
		Title:              Title(opts.Order),
		VerticalOffsetUnit: opts.VerticalOffsetUnit,
	}, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
