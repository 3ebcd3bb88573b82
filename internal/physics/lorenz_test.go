package physics

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzviz/internal/dynamo"
)

func TestLorenzOriginIsFixedPoint(t *testing.T) {
	l := NewLorenz(DefaultParams())
	d := l.Derive(dynamo.State{0, 0, 0}, 0)
	for i, v := range d {
		if v != 0 {
			t.Errorf("derivative[%d] = %v, want 0", i, v)
		}
	}
}

func TestLorenzDerive(t *testing.T) {
	l := NewLorenz(Params{Sigma: 10, Rho: 28, Beta: 2})
	d := l.Derive(dynamo.State{1, 2, 3}, 0)
	want := dynamo.State{10, 1*(28-3) - 2, 1*2 - 2*3}
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("derivative[%d] = %v, want %v", i, d[i], want[i])
		}
	}
}

func TestStepSingleEulerUpdate(t *testing.T) {
	next := Step(dynamo.State{0.1, 0, 0}, DefaultParams(), 0.005)
	if math.Abs(next[0]-0.095) > 1e-15 {
		t.Errorf("x = %.17f, want 0.095", next[0])
	}
	if math.Abs(next[1]-0.014) > 1e-15 {
		t.Errorf("y = %.17f, want 0.014", next[1])
	}
	if next[2] != 0 {
		t.Errorf("z = %v, want 0", next[2])
	}
}

func TestGetParams(t *testing.T) {
	p := NewLorenz(DefaultParams()).GetParams()
	if p["sigma"] != 10 || p["rho"] != 28 || p["beta"] != 8.0/3.0 {
		t.Errorf("unexpected params: %v", p)
	}
}
