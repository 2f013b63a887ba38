package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/riemann/internal/config"
	"github.com/san-kum/riemann/internal/export"
	"github.com/san-kum/riemann/internal/surface"
	"github.com/san-kum/riemann/internal/viz"
	"github.com/spf13/cobra"
)

var (
	radialSamples  int
	angularSamples int
	radiusMin      float64
	radiusMax      float64
	gapAngle       float64
	verticalOffset float64
	configFile     string
	preset         string
	theme          string
	verbose        bool
	plain          bool
	// Output for svg
	outFile string
	braille bool
	// Profile options
	profileSVG string
)

// main registers commands and flags, renders the demo orders when no
// subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "riemann",
		Short: "Riemann surfaces of w = z^(1/n)",
		Long: "riemann draws the multi-sheet surface of the n-th root of z, one helical\n" +
			"sheet per branch, stacked so each branch can be told apart.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: runDemo,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&radialSamples, "radial", surface.DefaultRadialSamples, "radial samples")
	pf.IntVar(&angularSamples, "angular", surface.DefaultAngularSamples, "angular samples")
	pf.Float64Var(&radiusMin, "radius-min", 0, "inner radius of the sampled annulus")
	pf.Float64Var(&radiusMax, "radius", surface.DefaultRadiusMax, "outer radius of the sampled disk")
	pf.Float64Var(&gapAngle, "gap", surface.GapAngle, "branch-cut gap in radians")
	pf.Float64Var(&verticalOffset, "offset", surface.VerticalOffsetUnit, "vertical offset between sheets")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset resolution")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&plain, "plain", false, "disable colors")

	renderCmd := &cobra.Command{
		Use:   "render [order]",
		Short: "render one surface to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderOrder,
	}

	viewCmd := &cobra.Command{
		Use:   "view [order]",
		Short: "interactive viewer with camera controls",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewOrder,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [order]",
		Short: "export a surface as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default riemann-<order>.svg)")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "export the braille raster instead of vectors")

	profileCmd := &cobra.Command{
		Use:   "profile [order]",
		Short: "plot sheet height against angle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotProfile,
	}
	profileCmd.Flags().StringVar(&profileSVG, "svg", "", "also write the profile to this SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %4d × %-5d r ∈ [%.2f, %.2f]\n",
					name, p.RadialSamples, p.AngularSamples, p.RadiusMin, p.RadiusMax)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			slog.Info("config written", "path", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, viewCmd, svgCmd, profileCmd, presetsCmd, initCmd)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadConfig resolves defaults, then preset, then config file, then any
// flag the user set explicitly. An order argument overrides the result.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
		slog.Debug("preset applied", "preset", preset)
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		if preset != "" {
			slog.Warn("config file replaces preset values", "preset", preset, "config", configFile)
		}
		slog.Debug("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("radial") {
		cfg.RadialSamples = radialSamples
	}
	if flags.Changed("angular") {
		cfg.AngularSamples = angularSamples
	}
	if flags.Changed("radius-min") {
		cfg.RadiusMin = radiusMin
	}
	if flags.Changed("radius") {
		cfg.RadiusMax = radiusMax
	}
	if flags.Changed("gap") {
		cfg.GapAngle = gapAngle
	}
	if flags.Changed("offset") {
		cfg.VerticalOffset = verticalOffset
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if len(args) > 0 {
		order, err := parseOrder(args[0])
		if err != nil {
			return nil, err
		}
		cfg.Order = config.Order(order)
	}
	return cfg, nil
}

func parseOrder(s string) (int, error) {
	order, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", surface.ErrInvalidOrder, s)
	}
	return order, nil
}

func buildFigure(cfg *config.Config) (viz.Figure, error) {
	s, err := surface.Build(cfg.Options())
	if err != nil {
		return viz.Figure{}, err
	}
	slog.Debug("surface built",
		"order", s.Order,
		"sheets", len(s.Sheets),
		"radial", len(s.Radii),
		"angular", len(s.Angles),
	)
	return viz.NewFigure(s), nil
}

func camera(cfg *config.Config) *viz.Camera {
	return viz.NewCamera(cfg.Camera.Elevation, cfg.Camera.Azimuth, cfg.Camera.Zoom)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	for _, order := range cfg.DemoOrders {
		if err := render(cmd, cfg.WithOrder(order)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func renderOrder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	return render(cmd, cfg)
}

func render(cmd *cobra.Command, cfg *config.Config) error {
	fig, err := buildFigure(cfg)
	if err != nil {
		return err
	}
	r := viz.NewTerminalRenderer(camera(cfg), viz.GetTheme(cfg.Theme))
	r.Plain = plain
	return r.Render(cmd.OutOrStdout(), fig)
}

func viewOrder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	fig, err := buildFigure(cfg)
	if err != nil {
		return err
	}
	return viz.RunViewer(fig, camera(cfg), viz.GetTheme(cfg.Theme))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	fig, err := buildFigure(cfg)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = fmt.Sprintf("riemann-%d.svg", cfg.Order)
	}
	r := export.NewSVGRenderer(camera(cfg), viz.GetTheme(cfg.Theme))
	r.Braille = braille
	var buf bytes.Buffer
	if err := r.Render(&buf, fig); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	slog.Info("svg written", "path", path, "order", cfg.Order)
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	fig, err := buildFigure(cfg)
	if err != nil {
		return err
	}

	chart, err := viz.PlotProfile(fig, 80, 15)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), chart)

	if profileSVG == "" {
		return nil
	}
	series, err := viz.HeightProfile(fig.Surface, len(fig.Surface.Radii)-1)
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Theme)
	colors := make([]string, len(th.Sheets))
	for i, c := range th.Sheets {
		colors[i] = string(c)
	}
	if err := os.WriteFile(profileSVG, []byte(export.ProfileToSVG(series, 800, 400, colors)), 0644); err != nil {
		return err
	}
	slog.Info("profile svg written", "path", profileSVG)
	return nil
}
