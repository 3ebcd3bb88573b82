package dynamo

import "math"

// State is a point in phase space.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Distance is the Euclidean distance between two states of equal dimension.
func (s State) Distance(other State) float64 {
	return s.Sub(other).Norm()
}

// System is an autonomous or time-dependent vector field dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Integrator advances a state by one fixed step.
type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

// Configurable exposes a system's parameters for display.
type Configurable interface {
	GetParams() map[string]float64
}

// Metric accumulates a scalar summary over the states of a run.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}
