package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/riemann/internal/surface"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Order != 2 {
		t.Errorf("expected order 2, got %d", cfg.Order)
	}
	if cfg.RadiusMax <= 0 {
		t.Error("radius should be positive")
	}
	if err := cfg.Options().Validate(); err != nil {
		t.Errorf("default options should validate: %v", err)
	}
	if d := cmp.Diff([]Order{2, 4, 8, 16}, cfg.DemoOrders); d != "" {
		t.Errorf("demo orders (-want +got):\n%s", d)
	}
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("order: 8\nangular_samples: 100\ncamera:\n  azimuth: 90\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := DefaultConfig()
	want.Order = 8
	want.AngularSamples = 100
	want.Camera.Azimuth = 90
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
}

func TestParse_RejectsNonIntegerOrder(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"fractional order", "order: 3.9\n"},
		{"whole float order", "order: 2.0\n"},
		{"string order", "order: four\n"},
		{"list as order", "order: [2]\n"},
		{"fractional demo order", "demo_orders: [2, 4.5]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, surface.ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got %v", err)
			}
			if cfg != nil {
				t.Errorf("expected no config on error, got %+v", cfg)
			}
		})
	}
}

func TestParse_IntegerOrders(t *testing.T) {
	cfg, err := Parse([]byte("order: 5\ndemo_orders: [3, 7]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Order != 5 {
		t.Errorf("order = %d, want 5", cfg.Order)
	}
	if d := cmp.Diff([]Order{3, 7}, cfg.DemoOrders); d != "" {
		t.Errorf("demo orders (-want +got):\n%s", d)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riemann.yaml")
	cfg := DefaultConfig()
	cfg.Order = 5
	cfg.Theme = "ocean"
	cfg.DemoOrders = []Order{3, 5}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d := cmp.Diff(cfg, loaded); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptions_InvalidOrderSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = 1
	if _, err := surface.Build(cfg.Options()); !errors.Is(err, surface.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestWithOrder(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.WithOrder(16)
	cp.DemoOrders[0] = 99

	if cp.Order != 16 || cfg.Order != 2 {
		t.Errorf("WithOrder changed the original: %d/%d", cfg.Order, cp.Order)
	}
	if cfg.DemoOrders[0] != 2 {
		t.Error("WithOrder shares demo order storage")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.RadiusMin != 0.15 || cfg.RadiusMax != 2.0 {
		t.Errorf("expected annulus [0.15, 2], got [%f, %f]", cfg.RadiusMin, cfg.RadiusMax)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if d := cmp.Diff([]string{"classic", "coarse", "default", "fine"}, ListPresets()); d != "" {
		t.Errorf("presets (-want +got):\n%s", d)
	}
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = 4
	cfg.Apply(GetPreset("coarse"))

	if cfg.RadialSamples != 8 || cfg.AngularSamples != 32 {
		t.Errorf("preset not applied: %dx%d", cfg.RadialSamples, cfg.AngularSamples)
	}
	if cfg.Order != 4 || cfg.GapAngle != surface.GapAngle {
		t.Error("preset overwrote fields it does not set")
	}

	for _, name := range ListPresets() {
		c := DefaultConfig()
		c.Apply(GetPreset(name))
		if err := c.Options().Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}
