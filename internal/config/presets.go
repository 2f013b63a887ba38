package config

import "sort"

// Presets are named sampling setups. They only fix resolution and domain;
// order, theme and camera come from the defaults or flags.
var Presets = map[string]*Config{
	"coarse": {
		RadialSamples: 8, AngularSamples: 32, RadiusMax: 1.0,
	},
	"default": {
		RadialSamples: 16, AngularSamples: 64, RadiusMax: 1.0,
	},
	"fine": {
		RadialSamples: 40, AngularSamples: 240, RadiusMax: 1.0,
	},
	// classic mirrors the grid of the first matplotlib renderings: an
	// annulus r ∈ [0.15, 2] with a very dense angular sweep.
	"classic": {
		RadialSamples: 160, AngularSamples: 1600, RadiusMin: 0.15, RadiusMax: 2.0, GapAngle: 1e-3,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's sampling fields onto c. Zero fields in the
// preset leave c untouched.
func (c *Config) Apply(p *Config) {
	if p == nil {
		return
	}
	if p.RadialSamples != 0 {
		c.RadialSamples = p.RadialSamples
	}
	if p.AngularSamples != 0 {
		c.AngularSamples = p.AngularSamples
	}
	if p.RadiusMax != 0 {
		c.RadiusMax = p.RadiusMax
	}
	if p.RadiusMin != 0 {
		c.RadiusMin = p.RadiusMin
	}
	if p.GapAngle != 0 {
		c.GapAngle = p.GapAngle
	}
	if p.VerticalOffset != 0 {
		c.VerticalOffset = p.VerticalOffset
	}
}
