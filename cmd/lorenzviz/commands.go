package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lorenzviz/internal/analysis"
	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/automation"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/export"
	"github.com/san-kum/lorenzviz/internal/gui"
	"github.com/san-kum/lorenzviz/internal/integrators"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/storage"
	"github.com/san-kum/lorenzviz/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// resolveConfig applies preset, then config file, then explicitly set
// flags, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config
	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("sigma") {
		cfg.Params.Sigma = sigma
	}
	if flags.Changed("rho") {
		cfg.Params.Rho = rho
	}
	if flags.Changed("beta") {
		cfg.Params.Beta = beta
	}
	if flags.Changed("tail") {
		cfg.Tail = tail
	}
	if flags.Changed("stride") {
		cfg.Stride = stride
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("repeat") {
		cfg.Repeat = repeat
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("random") && random > 0 {
		cfg.Seeds = automation.PerturbedSeeds(cfg.Seeds[0], perturb, random, seed)
		colors := make([]string, random)
		for i := range colors {
			colors[i] = cfg.Colors[i%len(cfg.Colors)]
		}
		cfg.Colors = colors
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSet returns the stored run named by args, or generates a fresh set.
// Playback settings of a stored run still come from flags and config.
func loadSet(cmd *cobra.Command, args []string) (*sim.Set, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if len(args) == 1 {
		set, meta, err := storage.New(dataDir).LoadSet(args[0])
		if err != nil {
			return nil, nil, err
		}
		stored := meta.Config()
		cfg.Params, cfg.Dt, cfg.Steps = stored.Params, stored.Dt, stored.Steps
		cfg.Seeds, cfg.Colors = stored.Seeds, stored.Colors
		return set, cfg, nil
	}

	set, err := automation.BuildSet(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return set, cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	set, cfg, err := loadSet(cmd, args)
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewModel(set, cfg), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	set, cfg, err := loadSet(cmd, args)
	if err != nil {
		return err
	}
	gui.Run(set, cfg)
	return nil
}

func renderGIF(cmd *cobra.Command, args []string) error {
	set, cfg, err := loadSet(cmd, args)
	if err != nil {
		return err
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	n, err := export.WriteGIF(cmd.Context(), f, set, cfg, export.GIFOptions{
		Width:     gifWidth,
		Height:    gifHeight,
		MaxFrames: maxFrames,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d frames in %v\n", gifOut, n, time.Since(start).Round(time.Millisecond))
	return nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	set, cfg, err := loadSet(cmd, args)
	if err != nil {
		return err
	}

	scene := viz.NewScene()
	u := anim.NewUpdater(scene, set, cfg.Tail, cfg.Stride, anim.DefaultStyle())
	idx := frame
	if idx < 0 || idx >= u.FrameCount() {
		idx = u.FrameCount() - 1
	}
	u.Update(idx)

	f, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteSVG(f, scene, svgWidth, svgHeight, viz.GetTheme(cfg.Theme)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: frame %d/%d\n", svgOut, idx+1, u.FrameCount())
	return nil
}

func generateRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "generating %d trajectories...\n", len(cfg.Seeds))
	start := time.Now()

	set, err := automation.BuildSet(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	metrics := automation.RunMetrics(cfg, set)
	runID, err := st.Save(cfg, set, metrics)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "states per trajectory: %d\n", set.TrajectoryLen())
	fmt.Fprintln(out, "\nmetrics (trajectory 0):")
	for name, val := range metrics {
		fmt.Fprintf(out, "  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTRAJ\tSTEPS\tDT\tSIGMA\tRHO\tBETA")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%.3g\t%.3g\t%.3g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Trajectories,
			run.Steps,
			run.Dt,
			run.Params.Sigma,
			run.Params.Rho,
			run.Params.Beta,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	tr, _, err := st.LoadTrajectory(runID, trajIdx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "trajectory: %d\n", trajIdx)
	fmt.Fprintf(out, "samples: %d\n\n", tr.Len())

	for k, caption := range []string{"x vs time", "y vs time", "z vs time"} {
		graph := asciigraph.Plot(tr.Column(k),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	tr, times, err := st.LoadTrajectory(runID, trajIdx)
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	for i := 0; i < tr.Len(); i++ {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(tr.X[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Y[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Z[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	set, meta, err := storage.New(dataDir).LoadSet(args[0])
	if err != nil {
		return err
	}
	return export.ExportJSON(cmd.OutOrStdout(), meta.Config(), set)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	set, meta, err := storage.New(dataDir).LoadSet(runID)
	if err != nil {
		return err
	}

	cfg := meta.Config()
	sys := physics.NewLorenz(cfg.Params)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "parameters: %s\n\n", formatParams(sys))

	sp := analysis.ComputeSpectrum(set.Entry(0).Trajectory.X, meta.Dt)
	if len(sp.Power) > 1 {
		// the interesting band is well below Nyquist
		plotData := sp.Power[:max(2, len(sp.Power)/8)]
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("amplitude spectrum (x, trajectory 0)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)

		freq, _ := sp.Dominant()
		fmt.Fprintf(out, "dominant frequency: %.3f\n", freq)
		if freq > 0 {
			fmt.Fprintf(out, "period: %.3f\n", 1.0/freq)
		}
	}

	for i, d := range analysis.Divergence(set) {
		if k, ok := analysis.SeparationStep(d, 1.0); ok {
			fmt.Fprintf(out, "trajectory %d separates from 0 at t=%.3f\n", i+1, float64(k)*meta.Dt)
		} else {
			fmt.Fprintf(out, "trajectory %d stays within 1.0 of trajectory 0\n", i+1)
		}
	}

	lambda := analysis.LyapunovExponent(sys, integrators.NewEuler(),
		set.Entry(0).Trajectory.At(0), cfg.Dt, float64(cfg.Steps)*cfg.Dt, 1e-8)
	fmt.Fprintf(out, "\nlargest Lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Fprintln(out, "(chaotic)")
	}
	return nil
}

// formatParams lists a system's parameters as sorted key=value pairs.
func formatParams(c dynamo.Configurable) string {
	params := c.GetParams()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%.4g", k, params[k])
	}
	return strings.Join(parts, " ")
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(cfg)
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	ids, err := automation.RunScenario(cmd.Context(), sc, st, out)
	for _, id := range ids {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepN,
		Duration:  sweepTime,
		Dt:        cfg.Dt,
		InitState: cfg.InitStates()[0],
		Base:      cfg.Params,
	}, out)
	if err != nil {
		return err
	}

	lambdas := make([]float64, len(results))
	for i, r := range results {
		lambdas[i] = r.Lyapunov
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(lambdas,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("largest Lyapunov exponent vs %s [%.2f, %.2f]", sweepParam, sweepMin, sweepMax)),
	))
	return nil
}

func benchGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEEDS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range []int{1, 5, 20} {
		for _, s := range []int{1000, 8000, 50000} {
			cfg := config.DefaultConfig()
			cfg.Steps = s
			cfg.Seeds = automation.PerturbedSeeds(cfg.Seeds[0], 0.01, n, 42)
			cfg.Colors = make([]string, n)

			start := time.Now()
			if _, err := automation.BuildSet(cmd.Context(), cfg); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, s, elapsed, float64(n*s)/elapsed.Seconds())
		}
	}

	return w.Flush()
}
