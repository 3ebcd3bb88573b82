package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/integrators"
	"github.com/san-kum/lorenzviz/internal/physics"
)

func newLorenzGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator(physics.NewLorenz(physics.DefaultParams()), integrators.NewEuler(), 0.005)
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	return gen
}

func TestGenerateZeroStepsIsSeed(t *testing.T) {
	gen := newLorenzGenerator(t)
	seeds := []dynamo.State{{0.1, 0, 0}, {-3, 4.5, 20}, {0, 0, 0}}

	for _, seed := range seeds {
		traj, err := gen.Generate(seed, 0)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if traj.Len() != 1 {
			t.Fatalf("expected 1 state, got %d", traj.Len())
		}
		got := traj.At(0)
		for i := range seed {
			if got[i] != seed[i] {
				t.Errorf("seed %v: state[0] = %v", seed, got)
			}
		}
	}
}

func TestGenerateOriginStaysFixed(t *testing.T) {
	gen := newLorenzGenerator(t)
	traj, err := gen.Generate(dynamo.State{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if traj.Len() != 2 {
		t.Fatalf("expected 2 states, got %d", traj.Len())
	}
	head := traj.Head()
	if head[0] != 0 || head[1] != 0 || head[2] != 0 {
		t.Errorf("origin moved to %v", head)
	}
}

func TestGenerateFirstStep(t *testing.T) {
	gen := newLorenzGenerator(t)
	traj, err := gen.Generate(dynamo.State{0.1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if math.Abs(traj.X[1]-0.095) > 1e-15 {
		t.Errorf("x[1] = %.17f, want 0.095", traj.X[1])
	}
}

func TestGenerateRecurrence(t *testing.T) {
	p := physics.DefaultParams()
	gen := newLorenzGenerator(t)
	traj, err := gen.Generate(dynamo.State{0.1, 0.01, 0}, 8000)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if traj.Len() != 8001 {
		t.Fatalf("expected 8001 states, got %d", traj.Len())
	}
	for _, i := range []int{1, 2, 100, 4000, 8000} {
		want := physics.Step(traj.At(i-1), p, 0.005)
		got := traj.At(i)
		for k := range want {
			if got[k] != want[k] {
				t.Errorf("state %d component %d: got %v, want %v", i, k, got[k], want[k])
			}
		}
	}
}

func TestGenerateDoesNotAliasSeed(t *testing.T) {
	gen := newLorenzGenerator(t)
	seed := dynamo.State{1, 1, 1}
	if _, err := gen.Generate(seed, 10); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if seed[0] != 1 || seed[1] != 1 || seed[2] != 1 {
		t.Errorf("seed mutated: %v", seed)
	}
}

func TestGenerateNegativeSteps(t *testing.T) {
	gen := newLorenzGenerator(t)
	traj, err := gen.Generate(dynamo.State{1, 2, 3}, -5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if traj.Len() != 1 {
		t.Errorf("expected 1 state, got %d", traj.Len())
	}
}

func TestGenerateDimensionMismatch(t *testing.T) {
	gen := newLorenzGenerator(t)
	_, err := gen.Generate(dynamo.State{1, 2}, 10)
	if !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNewGeneratorInvalidDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"zero dt", 0},
		{"negative dt", -0.005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(physics.NewLorenz(physics.DefaultParams()), integrators.NewEuler(), tt.dt)
			if !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestTrajectorySlice(t *testing.T) {
	gen := newLorenzGenerator(t)
	traj, _ := gen.Generate(dynamo.State{0.1, 0, 0}, 100)

	xs, ys, zs := traj.Slice(10, 30)
	if len(xs) != 20 || len(ys) != 20 || len(zs) != 20 {
		t.Fatalf("slice lengths %d %d %d, want 20", len(xs), len(ys), len(zs))
	}
	if xs[0] != traj.X[10] || zs[19] != traj.Z[29] {
		t.Error("slice does not match trajectory window")
	}
	if c := traj.Column(1); &c[0] != &traj.Y[0] {
		t.Error("Column(1) should be the y axis")
	}
}

// runaway returns an infinite derivative once t reaches blowup.
type runaway struct{ blowup float64 }

func (r runaway) StateDim() int { return 3 }

func (r runaway) Derive(_ dynamo.State, t float64) dynamo.State {
	if t >= r.blowup {
		return dynamo.State{math.Inf(1), 0, 0}
	}
	return dynamo.State{1, 0, 0}
}

func TestGenerateStopsOnNonFiniteState(t *testing.T) {
	gen, err := NewGenerator(runaway{blowup: 0.01}, integrators.NewEuler(), 0.005)
	if err != nil {
		t.Fatal(err)
	}

	_, err = gen.Generate(dynamo.State{0, 0, 0}, 10)
	if !errors.Is(err, dynamo.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	var simErr *dynamo.SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected *SimulationError, got %T", err)
	}
	if simErr.Step != 3 {
		t.Errorf("step = %d, want 3", simErr.Step)
	}
	if math.Abs(simErr.Time-0.015) > 1e-12 {
		t.Errorf("time = %v, want 0.015", simErr.Time)
	}
	if !math.IsInf(simErr.State[0], 1) {
		t.Errorf("state = %v, want +Inf x", simErr.State)
	}
}
