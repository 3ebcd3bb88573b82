package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	// simulation overrides
	dt       float64
	steps    int
	sigma    float64
	rho      float64
	beta     float64
	random   int
	perturb  float64
	seed     int64
	tail     int
	stride   int
	interval time.Duration
	repeat   bool
	theme    string

	// output
	gifOut    string
	gifWidth  int
	gifHeight int
	svgOut    string
	svgWidth  int
	svgHeight int
	frame     int
	maxFrames int
	trajIdx   int

	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepN     int
	sweepTime  float64
)

// main registers the lorenzviz commands and runs the terminal player when
// no subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lorenzviz",
		Short:        "animated Lorenz attractor trajectories",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lorenzviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	addSimFlags(rootCmd)
	addPlayFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui [run_id]",
		Short: "play in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	addSimFlags(tuiCmd)
	addPlayFlags(tuiCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [run_id]",
		Short: "play in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)
	addPlayFlags(guiCmd)

	gifCmd := &cobra.Command{
		Use:   "gif [run_id]",
		Short: "record one pass as an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderGIF,
	}
	addSimFlags(gifCmd)
	addPlayFlags(gifCmd)
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "lorenz.gif", "output file")
	gifCmd.Flags().IntVar(&gifWidth, "width", 640, "image width")
	gifCmd.Flags().IntVar(&gifHeight, "height", 480, "image height")
	gifCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "stop after this many frames (0 = full pass)")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "render a single frame as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSVG,
	}
	addSimFlags(svgCmd)
	addPlayFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "lorenz.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 1000, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	svgCmd.Flags().IntVar(&frame, "frame", -1, "frame index (-1 = last)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate and store a trajectory set",
		Args:  cobra.NoArgs,
		RunE:  generateRun,
	}
	addSimFlags(generateCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot x, y, z of one trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&trajIdx, "traj", 0, "trajectory index")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export one trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&trajIdx, "traj", 0, "trajectory index")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum, divergence and Lyapunov estimate",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %d seeds, %d steps, tail %d, stride %d\n", name, len(p.Seeds), p.Steps, p.Tail, p.Stride)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  dumpConfig,
	}
	addSimFlags(configCmd)
	addPlayFlags(configCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "generate and store every run in a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a coefficient and plot the Lyapunov estimate",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "rho", "coefficient to sweep (sigma, rho, beta)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1, "start value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 40, "end value")
	sweepCmd.Flags().IntVar(&sweepN, "n", 40, "number of values")
	sweepCmd.Flags().Float64Var(&sweepTime, "time", 40, "simulated time per value")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time trajectory set generation",
		Args:  cobra.NoArgs,
		RunE:  benchGenerate,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, gifCmd, svgCmd, generateCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, analyzeCmd, presetsCmd, configCmd, batchCmd, sweepCmd, benchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "integration steps per trajectory")
	cmd.Flags().Float64Var(&sigma, "sigma", 10, "sigma coefficient")
	cmd.Flags().Float64Var(&rho, "rho", 28, "rho coefficient")
	cmd.Flags().Float64Var(&beta, "beta", 8.0/3.0, "beta coefficient")
	cmd.Flags().IntVar(&random, "random", 0, "replace seeds with this many random seeds near the first")
	cmd.Flags().Float64Var(&perturb, "perturb", 0.01, "random seed spread per axis")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&tail, "tail", config.DefaultTail, "trail length in points")
	cmd.Flags().IntVar(&stride, "stride", config.DefaultStride, "points advanced per frame")
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "delay between frames")
	cmd.Flags().BoolVar(&repeat, "repeat", true, "loop playback")
	cmd.Flags().StringVar(&theme, "theme", "neon", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}
