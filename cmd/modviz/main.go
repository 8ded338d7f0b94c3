package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/modviz/internal/config"
	"github.com/san-kum/modviz/internal/export"
	"github.com/san-kum/modviz/internal/gui"
	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/scene"
	"github.com/san-kum/modviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	ticks      int
	fps        int
	cycle      bool
	generator  int
	verbose    bool
	theme      string
	plot       bool
	outFile    string
)

// main registers the command tree. With no subcommand the GUI opens; two
// positional arguments preload the operand and modulus and generate
// immediately.
func main() {
	log.SetFlags(0)
	log.SetPrefix("modviz: ")

	rootCmd := &cobra.Command{
		Use:   "modviz [natural] [modulus]",
		Short: "visualize modular reduction and cyclic orbits",
		Long: `modviz draws the residues of a modulus on a circle.

In reduction mode the natural number is laid out over concentric rings and
an arrow joins it to its remainder. In cycle mode (--cycle) the natural
number is used as the generator and arrows follow x -> x+natural.`,
		Args: naturalArgs,
		RunE: runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&ticks, "ticks", config.DefaultTicks, "animation length in frames")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVarP(&cycle, "cycle", "c", false, "enable cycle mode")
	pf.IntVar(&generator, "generator", config.DefaultGenerator, "generator for cycle mode")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log scene events")

	guiCmd := &cobra.Command{
		Use:   "gui [natural] [modulus]",
		Short: "open the graphical window",
		Args:  naturalArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [natural] [modulus]",
		Short: "run in the terminal",
		Args:  naturalArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	reduceCmd := &cobra.Command{
		Use:   "reduce <natural> <modulus>",
		Short: "print natural mod modulus",
		Args:  cobra.ExactArgs(2),
		RunE:  runReduce,
	}

	cycleCmd := &cobra.Command{
		Use:   "cycle <generator> <modulus>",
		Short: "print the orbit of 0 under repeated addition",
		Args:  cobra.ExactArgs(2),
		RunE:  runCycle,
	}
	cycleCmd.Flags().BoolVar(&plot, "plot", false, "plot residue against step")

	svgCmd := &cobra.Command{
		Use:   "svg <natural> <modulus>",
		Short: "render the finished drawing as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "output", "o", "", "write to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %-9s natural=%d modulus=%d generator=%d\n",
					name, p.Mode, p.Operand, p.Modulus, p.Generator)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, reduceCmd, cycleCmd, svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// naturalArgs accepts either nothing or a natural/modulus pair.
func naturalArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 || len(args) > 2 {
		return fmt.Errorf("expected [natural] [modulus], got %d argument(s)", len(args))
	}
	for i, a := range args {
		field := scene.FieldOperand
		if i == 1 {
			field = scene.FieldModulus
		}
		if _, err := modarith.ParseNatural(field, a); err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// loadConfig resolves settings from defaults, preset, config file, then
// explicitly set flags and positional arguments, in increasing priority.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("generator") {
		cfg.Generator = generator
	}
	if flags.Changed("cycle") {
		cfg.Mode = config.ModeReduction
		if cycle {
			cfg.Mode = config.ModeCycle
		}
	}

	if len(args) == 2 {
		natural, err := modarith.ParseNatural(scene.FieldOperand, args[0])
		if err != nil {
			return nil, err
		}
		modulus, err := modarith.ParseNatural(scene.FieldModulus, args[1])
		if err != nil {
			return nil, err
		}
		cfg.Operand, cfg.Modulus = natural, modulus
		if cfg.Cycle() && !flags.Changed("generator") {
			cfg.Generator = natural
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScene(cfg *config.Config) *scene.Scene {
	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "modviz: ", log.Ltime)
	}
	mode := scene.ModeReduction
	if cfg.Cycle() {
		mode = scene.ModeCycle
	}
	return scene.New(scene.Options{
		Params: scene.Params{
			Operand:   cfg.Operand,
			Modulus:   cfg.Modulus,
			Generator: cfg.Generator,
		},
		Mode:       mode,
		Ticks:      cfg.Ticks,
		MaxModulus: config.MaxModulus,
		MaxValue:   config.MaxValue,
		Logger:     logger,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	gui.Run(newScene(cfg), cfg, len(args) == 2 || preset != "")
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s := newScene(cfg)
	if len(args) == 2 || preset != "" {
		if err := s.OnGenerate(); err != nil {
			return err
		}
	}
	return viz.Run(s, cfg.FPS, theme)
}

func runReduce(cmd *cobra.Command, args []string) error {
	natural, err := modarith.ParseNatural(scene.FieldOperand, args[0])
	if err != nil {
		return err
	}
	modulus, err := modarith.ParseNatural(scene.FieldModulus, args[1])
	if err != nil {
		return err
	}
	r, err := modarith.Reduce(natural, modulus)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r)
	fmt.Fprintf(out, "%d = %d·%d + %d\n", natural, r.Quotient(), modulus, r.Remainder)
	fmt.Fprintf(out, "rings: %d\n", modarith.RingCount(natural, modulus))
	return nil
}

func runCycle(cmd *cobra.Command, args []string) error {
	g, err := modarith.ParseNatural(scene.FieldGenerator, args[0])
	if err != nil {
		return err
	}
	modulus, err := modarith.ParseNatural(scene.FieldModulus, args[1])
	if err != nil {
		return err
	}
	seq, err := modarith.GenerateCycle(g, modulus)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, seq)
	fmt.Fprintf(out, "orbit length: %d of %d\n", seq.Len(), modulus)

	if plot && len(seq.Residues) > 1 {
		data := make([]float64, len(seq.Residues))
		for i, r := range seq.Residues {
			data[i] = float64(r)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Caption(fmt.Sprintf("residue per step, +%d mod %d", g, modulus)),
		))
	}
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s := newScene(cfg)
	if err := s.OnGenerate(); err != nil {
		return err
	}
	for s.Animation().Active {
		s.AdvanceFrame()
	}

	svg := export.SnapshotToSVG(s.Snapshot())
	if outFile == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	log.Printf("wrote %s", outFile)
	return nil
}
