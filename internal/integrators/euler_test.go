package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/physics"
)

type decay struct{}

func (d *decay) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{-x[0]} }
func (d *decay) StateDim() int                                  { return 1 }

func TestEulerDecay(t *testing.T) {
	integ := NewEuler()
	x := dynamo.State{1.0}
	dt := 0.001
	for i := 0; i < 1000; i++ {
		x = integ.Step(&decay{}, x, float64(i)*dt, dt)
	}
	expected := math.Exp(-1)
	if math.Abs(x[0]-expected) > 1e-3 {
		t.Errorf("got %.6f, expected ~%.6f", x[0], expected)
	}
}

func TestEulerMatchesLorenzStep(t *testing.T) {
	p := physics.DefaultParams()
	dyn := physics.NewLorenz(p)
	integ := NewEuler()

	x := dynamo.State{0.1, 0.01, 0}
	for i := 0; i < 50; i++ {
		a := integ.Step(dyn, x, 0, 0.005)
		b := physics.Step(x, p, 0.005)
		for k := range a {
			if a[k] != b[k] {
				t.Fatalf("step %d component %d: %v != %v", i, k, a[k], b[k])
			}
		}
		x = a
	}
}

func TestEulerDeterministic(t *testing.T) {
	dyn := physics.NewLorenz(physics.DefaultParams())
	integ := NewEuler()
	x := dynamo.State{-0.1, 0, 0}

	a := integ.Step(dyn, x, 0, 0.005)
	b := integ.Step(dyn, x, 0, 0.005)
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Errorf("component %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEulerDoesNotMutateInput(t *testing.T) {
	dyn := physics.NewLorenz(physics.DefaultParams())
	x := dynamo.State{1, 1, 1}
	NewEuler().Step(dyn, x, 0, 0.005)
	if x[0] != 1 || x[1] != 1 || x[2] != 1 {
		t.Errorf("input mutated: %v", x)
	}
}
