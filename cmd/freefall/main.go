package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/export"
	"github.com/san-kum/freefall/internal/freefall"
	"github.com/san-kum/freefall/internal/sampler"
	"github.com/san-kum/freefall/internal/scene"
	"github.com/san-kum/freefall/internal/tui"
	"github.com/san-kum/freefall/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	body       string
	gravity    float64
	height     float64
	mass       float64
	formulas   bool
	frames     int
	fps        int
	theme      string
	verbose    bool
	// drop
	save    bool
	noClear bool
	// svg, chart
	outPath string
	// duration
	allHeights bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "freefall"})

// main registers commands and flags, launches the interactive view when no
// subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "freefall",
		Short:         "interactive free-fall lab",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&body, "body", config.DefaultBody, "celestial body (sets gravity)")
	pf.Float64Var(&gravity, "gravity", freefall.StandardGravity, "gravitational acceleration (m/s²)")
	pf.Float64Var(&height, "height", config.DefaultHeight, "initial height (m)")
	pf.Float64Var(&mass, "mass", config.DefaultMass, "mass (kg, no effect in vacuum)")
	pf.BoolVar(&formulas, "formulas", true, "show step-by-step formulas")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "animation frame count")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive drop with playback controls",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	dropCmd := &cobra.Command{
		Use:   "drop",
		Short: "animate a drop in the console",
		Args:  cobra.NoArgs,
		RunE:  runDrop,
	}
	dropCmd.Flags().BoolVar(&save, "save", false, "store the rendered run")
	dropCmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of redrawing")

	atCmd := &cobra.Command{
		Use:   "at [time]",
		Short: "state at an elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE:  runAt,
	}

	scrubCmd := &cobra.Command{
		Use:   "scrub [fraction]",
		Short: "state at a fraction of the fall (0..1)",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrub,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [time]",
		Short: "formula substitution at an elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}

	durationCmd := &cobra.Command{
		Use:   "duration",
		Short: "fall duration",
		Args:  cobra.NoArgs,
		RunE:  runDuration,
	}
	durationCmd.Flags().BoolVar(&allHeights, "all", false, "every height choice")

	svgCmd := &cobra.Command{
		Use:   "svg [time]",
		Short: "export the scene at an elapsed time as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and bodies",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "save a PNG chart of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <data>/<run_id>/chart.png)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(liveCmd, dropCmd, atCmd, scrubCmd, traceCmd, durationCmd, svgCmd, presetsCmd,
		listCmd, plotCmd, chartCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// resolveConfig applies preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("body") {
		g, ok := config.BodyGravity(body)
		if !ok {
			return nil, fmt.Errorf("unknown body: %s (available: %v)", body, config.ListBodies())
		}
		cfg.Body = body
		cfg.Gravity = g
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
		if !flags.Changed("body") {
			cfg.Body = "custom"
		}
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("formulas") {
		cfg.ShowFormulas = formulas
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !config.IsAllowedHeight(cfg.Height) {
		logger.Warn("height is not one of the standard choices", "height", cfg.Height, "choices", config.Heights)
	}
	logger.Debug("config resolved",
		"body", cfg.Body, "gravity", cfg.Gravity, "height", cfg.Height,
		"mass", cfg.Mass, "frames", cfg.Frames, "formulas", cfg.ShowFormulas)
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, freefall.Model, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, freefall.Model{}, err
	}
	m, err := cfg.Model()
	if err != nil {
		return nil, freefall.Model{}, err
	}
	return cfg, m, nil
}

func parseTime(arg string, h0 float64) (float64, error) {
	t, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", arg, err)
	}
	if err := freefall.Validate(h0, t); err != nil {
		return 0, err
	}
	return t, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	return viz.Run(m, viz.Options{
		Body:   cfg.Body,
		Params: cfg.Params(),
		Frames: cfg.Frames,
		FPS:    cfg.FPS,
		Theme:  cfg.Theme,
	})
}

func runDrop(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := cfg.Params()
	result, err := sampler.Render(ctx, m, p, cfg.Frames)
	if err != nil {
		return err
	}
	logger.Debug("frames rendered", "count", len(result), "fall_duration", m.FallDuration(p.InitialHeight))

	r := tui.NewLiveRenderer(os.Stdout, m, p, cfg.FPS)
	r.SetClear(!noClear)
	if err := r.Play(ctx, result); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("drop interrupted")
			return nil
		}
		return err
	}

	if save {
		st := newStore(cfg)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Body, m, p, result)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved", "id", runID, "dir", cfg.DataDir)
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func printSample(cfg *config.Config, s freefall.Sample) {
	fmt.Printf("h0 = %s m   g = %s m/s²   T = %s s\n",
		freefall.FormatDisplay(cfg.Height), freefall.FormatDisplay(cfg.Gravity),
		freefall.FormatDisplay(s.State.FallDuration))
	fmt.Printf("t = %s s\n", freefall.FormatDisplay(s.State.ElapsedTime))
	fmt.Printf("v = %s m/s\n", freefall.FormatDisplay(s.State.Velocity))
	fmt.Printf("y = %s m\n", freefall.FormatDisplay(s.State.Height))
	fmt.Printf("\n[%s] %s\n", s.Phase, s.Phase.Narrative())
	if s.Trace != nil {
		fmt.Println("\nStep-by-step formulas:")
		for _, line := range s.Trace.Lines() {
			fmt.Printf("  - %s\n", line)
		}
	}
}

func runAt(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := parseTime(args[0], cfg.Height)
	if err != nil {
		return err
	}
	if T := m.FallDuration(cfg.Height); t > T {
		logger.Warn("time is past landing", "time", t, "fall_duration", T)
	}
	printSample(cfg, m.Sample(cfg.Height, t, cfg.ShowFormulas))
	return nil
}

func runScrub(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	fraction, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid fraction %q: %w", args[0], err)
	}
	printSample(cfg, sampler.Scrub(m, cfg.Params(), fraction))
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := parseTime(args[0], cfg.Height)
	if err != nil {
		return err
	}

	tr := m.FormulaTrace(cfg.Height, t)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EQUATION\tSUBSTITUTION")
	for _, eq := range tr.Equations {
		fmt.Fprintf(w, "%s\t%s\n", eq.Label, eq.Substitution)
	}
	return w.Flush()
}

func runDuration(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}

	heights := []float64{cfg.Height}
	if allHeights {
		heights = config.Heights
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HEIGHT\tDURATION\tIMPACT SPEED")
	for _, h0 := range heights {
		T := m.FallDuration(h0)
		fmt.Fprintf(w, "%s m\t%s s\t%s m/s\n",
			freefall.FormatDisplay(h0), freefall.FormatDisplay(T),
			freefall.FormatDisplay(m.StateAt(h0, T).Velocity))
	}
	return w.Flush()
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := parseTime(args[0], cfg.Height)
	if err != nil {
		return err
	}

	f := scene.Build(m, cfg.Height, m.Sample(cfg.Height, t, false))
	svg := export.SceneSVG(f, 320, 480)
	if outPath == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("scene written", "path", outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODY\tGRAVITY\tHEIGHT\tFRAMES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.1f m\t%d\n", name, p.Body, p.Gravity, p.Height, p.Frames)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nbodies:")
	for _, b := range config.ListBodies() {
		g, _ := config.BodyGravity(b)
		fmt.Printf("  %-8s %.2f m/s²\n", b, g)
	}
	return nil
}
