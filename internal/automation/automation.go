package automation

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/lorenzviz/internal/analysis"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/integrators"
	"github.com/san-kum/lorenzviz/internal/metrics"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted batch of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run in a scenario. Zero-valued overrides keep the
// preset's value.
type ScenarioStep struct {
	Preset string          `yaml:"preset"`
	Params *physics.Params `yaml:"params"`
	Dt     float64         `yaml:"dt"`
	Steps  int             `yaml:"steps"`
	Seeds  [][3]float64    `yaml:"seeds"`
	Colors []string        `yaml:"colors"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config resolves the step against its preset.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Params != nil {
		cfg.Params = *s.Params
	}
	if s.Dt > 0 {
		cfg.Dt = s.Dt
	}
	if s.Steps > 0 {
		cfg.Steps = s.Steps
	}
	if len(s.Seeds) > 0 {
		cfg.Seeds = s.Seeds
	}
	if len(s.Colors) > 0 {
		cfg.Colors = s.Colors
	}
	return cfg, cfg.Validate()
}

// BuildSet generates the trajectory set described by cfg.
func BuildSet(ctx context.Context, cfg *config.Config) (*sim.Set, error) {
	gen, err := sim.NewGenerator(physics.NewLorenz(cfg.Params), integrators.NewEuler(), cfg.Dt)
	if err != nil {
		return nil, err
	}
	return sim.BuildSet(ctx, gen, cfg.InitStates(), cfg.Colors, cfg.Steps)
}

// RunScenario generates and stores every step, reporting progress to out.
// It returns the stored run ids.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, out io.Writer) ([]string, error) {
	ids := make([]string, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Preset)

		cfg, err := step.Config()
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}

		set, err := BuildSet(ctx, cfg)
		if err != nil {
			return ids, fmt.Errorf("step %d run: %w", i+1, err)
		}

		id, err := st.Save(cfg, set, RunMetrics(cfg, set))
		if err != nil {
			return ids, fmt.Errorf("step %d save: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// RunMetrics summarizes trajectory 0 of set.
func RunMetrics(cfg *config.Config, set *sim.Set) map[string]float64 {
	ms := metrics.Default(cfg.Params, [3]float64{-25, -35, 0}, [3]float64{25, 35, 55})
	return metrics.Observe(set.Entry(0).Trajectory, cfg.Dt, ms...)
}

// ParameterSweep varies one Lorenz coefficient across a range
type ParameterSweep struct {
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Duration  float64
	Dt        float64
	InitState dynamo.State
	Base      physics.Params
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue   float64
	Lyapunov     float64
	WingSwitches float64
	FinalState   dynamo.State
}

// RunSweep estimates the largest Lyapunov exponent and counts wing
// switches at each parameter value.
func RunSweep(ctx context.Context, sweep *ParameterSweep, out io.Writer) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step: %w", dynamo.ErrParameterBounds)
	}
	results := make([]SweepResult, 0, sweep.NumSteps)
	euler := integrators.NewEuler()

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		paramVal := sweep.ParamMin + float64(i)*paramStep
		p, err := withParam(sweep.Base, sweep.ParamName, paramVal)
		if err != nil {
			return nil, err
		}
		lorenz := physics.NewLorenz(p)

		gen, err := sim.NewGenerator(lorenz, euler, sweep.Dt)
		if err != nil {
			return nil, err
		}
		tr, err := gen.Generate(sweep.InitState, int(sweep.Duration/sweep.Dt))
		if err != nil {
			return nil, err
		}
		wings := metrics.Observe(tr, sweep.Dt, metrics.NewWingSwitches())

		results = append(results, SweepResult{
			ParamValue:   paramVal,
			Lyapunov:     analysis.LyapunovExponent(lorenz, euler, sweep.InitState, sweep.Dt, sweep.Duration, 1e-8),
			WingSwitches: wings["wing_switches"],
			FinalState:   tr.Head(),
		})

		fmt.Fprintf(out, "Sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}

func withParam(p physics.Params, name string, v float64) (physics.Params, error) {
	switch name {
	case "sigma":
		p.Sigma = v
	case "rho":
		p.Rho = v
	case "beta":
		p.Beta = v
	default:
		return p, fmt.Errorf("unknown parameter %q: %w", name, dynamo.ErrParameterBounds)
	}
	return p, nil
}

// PerturbedSeeds draws n seeds uniformly within ±perturbation of base on
// each axis. seed 0 uses the clock.
func PerturbedSeeds(base [3]float64, perturbation float64, n int, seed int64) [][3]float64 {
	rng := rand.New(rand.NewSource(seed))
	if seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	seeds := make([][3]float64, n)
	for i := range seeds {
		for k, v := range base {
			seeds[i][k] = v + (rng.Float64()-0.5)*2*perturbation
		}
	}
	return seeds
}
