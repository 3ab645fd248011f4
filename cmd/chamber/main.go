package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/chamber/internal/config"
	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/export"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/render"
	"github.com/san-kum/chamber/internal/stats"
	"github.com/san-kum/chamber/internal/viz"
	"github.com/spf13/cobra"
)

var (
	seed       int64
	configFile string
	preset     string
	theme      string
	numEvents  int
)

// main registers the chamber CLI; with no subcommand it launches the
// interactive chamber display.
func main() {
	rootCmd := &cobra.Command{
		Use:   "chamber",
		Short: "bubble chamber particle identification trainer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(event.DefaultScenario)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "generate one event and print its track table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEvent,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list available scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range event.NewRegistry().List() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [scenario]",
		Short: "generate one event and export it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, nums, err := generate(args)
			if err != nil {
				return err
			}
			return export.JSON(os.Stdout, ev, nums)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [scenario]",
		Short: "generate one event and export it as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, nums, err := generate(args)
			if err != nil {
				return err
			}
			return export.CSV(os.Stdout, ev, nums)
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario]",
		Short: "generate one event and export the revealed picture as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, nums, err := generate(args)
			if err != nil {
				return err
			}
			t := viz.GetTheme(theme)
			_, err = fmt.Fprint(os.Stdout, export.SVG(ev, nums, render.ModeIdentified, t, 800, 800))
			return err
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats [scenario]",
		Short: "generate a batch of events and summarize distributions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&numEvents, "events", 1000, "number of events to generate")

	tuiCmd := &cobra.Command{
		Use:   "tui [scenario]",
		Short: "interactive chamber display",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(scenarioArg(args))
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.AddCommand(runCmd, scenariosCmd, presetsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, statsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scenarioArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return event.DefaultScenario
}

func loadConfig(scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scenario = scenario

	if preset != "" {
		p := config.GetPreset(scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
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
	if theme != "" {
		cfg.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cfg.Scenario == "" {
		cfg.Scenario = scenario
	}
	return cfg, nil
}

func generate(args []string) (*event.Event, *numbering.Map, error) {
	rng := rand.New(rand.NewSource(seed))
	ev, err := event.NewRegistry().Generate(scenarioArg(args), rng)
	if err != nil {
		return nil, nil, err
	}
	return ev, numbering.New(ev, rng), nil
}

func runEvent(cmd *cobra.Command, args []string) error {
	ev, nums, err := generate(args)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", ev.Scenario)
	fmt.Printf("identifiable particles: %d\n", ev.N)
	fmt.Printf("neutrinos: %d\n\n", ev.Neutrinos)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tNUM\tPARTICLE\tSYMBOL\tCHARGE\tMOMENTUM\tSHAPE\tNESTED")

	for _, row := range export.Rows(ev, nums) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%+d\t%.2f\t%s\t%v\n",
			row.Seq, row.Display, row.Name, row.Symbol, row.Charge,
			row.Momentum, row.Shape, row.Nested)
	}
	return w.Flush()
}

func runStats(cmd *cobra.Command, args []string) error {
	scenario := scenarioArg(args)
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	batch, err := stats.Run(scenario, numEvents, rng)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Print(batch.Summary())
	fmt.Printf("generated in %v\n\n", elapsed)

	series, err := stats.MomentumSeries(scenario, 120, rng)
	if err != nil {
		return err
	}
	fmt.Println(stats.Plot(series, "primary momentum per event"))
	return nil
}
