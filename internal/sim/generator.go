package sim

import (
	"fmt"

	"github.com/san-kum/lorenzviz/internal/dynamo"
)

// Generator materializes trajectories of a 3D system with a fixed step.
type Generator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	dt         float64
}

func NewGenerator(dyn dynamo.System, integrator dynamo.Integrator, dt float64) (*Generator, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f: %w", dt, dynamo.ErrParameterBounds)
	}
	if dyn.StateDim() != 3 {
		return nil, fmt.Errorf("system has %d dimensions, want 3: %w", dyn.StateDim(), dynamo.ErrDimensionMismatch)
	}
	return &Generator{dyn: dyn, integrator: integrator, dt: dt}, nil
}

// Generate returns steps+1 states starting at seed; element i is the
// integrator applied to element i-1. Negative steps are treated as zero.
// A state that stops being finite aborts with a *dynamo.SimulationError.
func (g *Generator) Generate(seed dynamo.State, steps int) (*Trajectory, error) {
	if len(seed) != g.dyn.StateDim() {
		return nil, fmt.Errorf("seed %v: %w", seed, dynamo.ErrDimensionMismatch)
	}
	if steps < 0 {
		steps = 0
	}

	traj := newTrajectory(steps + 1)
	x := seed.Clone()
	traj.append(x)

	t := 0.0
	for i := 0; i < steps; i++ {
		x = g.integrator.Step(g.dyn, x, t, g.dt)
		t += g.dt
		if !x.IsValid() {
			return nil, &dynamo.SimulationError{Step: i + 1, Time: t, State: x, Wrapped: dynamo.ErrInvalidState}
		}
		traj.append(x)
	}
	return traj, nil
}
