package config

import (
	"fmt"
	"os"

	"github.com/san-kum/riemann/internal/surface"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "cyberpunk"
	DefaultElevation = 25.0
	DefaultAzimuth   = 35.0
	DefaultZoom      = 1.0
)

// DefaultDemoOrders are rendered when the CLI runs without a subcommand.
var DefaultDemoOrders = []Order{2, 4, 8, 16}

// Order is a root order read from YAML. Only integer scalars decode; a
// float such as 3.9 is an invalid order, never a truncated one.
type Order int

func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("%w: %q at line %d is not an integer", surface.ErrInvalidOrder, node.Value, node.Line)
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("%w: %v", surface.ErrInvalidOrder, err)
	}
	*o = Order(n)
	return nil
}

type Config struct {
	Order          Order        `yaml:"order"`
	RadialSamples  int          `yaml:"radial_samples"`
	AngularSamples int          `yaml:"angular_samples"`
	RadiusMin      float64      `yaml:"radius_min"`
	RadiusMax      float64      `yaml:"radius_max"`
	GapAngle       float64      `yaml:"gap_angle"`
	VerticalOffset float64      `yaml:"vertical_offset"`
	Theme          string       `yaml:"theme"`
	DemoOrders     []Order      `yaml:"demo_orders"`
	Camera         CameraConfig `yaml:"camera"`
}

// CameraConfig is the initial view, in degrees.
type CameraConfig struct {
	Elevation float64 `yaml:"elevation"`
	Azimuth   float64 `yaml:"azimuth"`
	Zoom      float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		Order:          surface.DefaultOrder,
		RadialSamples:  surface.DefaultRadialSamples,
		AngularSamples: surface.DefaultAngularSamples,
		RadiusMax:      surface.DefaultRadiusMax,
		GapAngle:       surface.GapAngle,
		VerticalOffset: surface.VerticalOffsetUnit,
		Theme:          DefaultTheme,
		DemoOrders:     append([]Order(nil), DefaultDemoOrders...),
		Camera: CameraConfig{
			Elevation: DefaultElevation,
			Azimuth:   DefaultAzimuth,
			Zoom:      DefaultZoom,
		},
	}
}

// Load reads a YAML file on top of the defaults; keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the sampling part of the config for the surface builder.
func (c *Config) Options() surface.Options {
	return surface.Options{
		Order:              int(c.Order),
		RadialSamples:      c.RadialSamples,
		AngularSamples:     c.AngularSamples,
		RadiusMin:          c.RadiusMin,
		RadiusMax:          c.RadiusMax,
		GapAngle:           c.GapAngle,
		VerticalOffsetUnit: c.VerticalOffset,
	}
}

// WithOrder returns a copy of c rendering a different order.
func (c *Config) WithOrder(order Order) *Config {
	cp := *c
	cp.Order = order
	cp.DemoOrders = append([]Order(nil), c.DemoOrders...)
	return &cp
}
