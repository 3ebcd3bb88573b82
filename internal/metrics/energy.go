package metrics

import (
	"math"

	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/physics"
)

// Energy tracks the peak of V = ρx² + σy² + σ(z − 2ρ)², which stays
// bounded on the attractor.
type Energy struct {
	name    string
	params  physics.Params
	samples int
	peak    float64
}

func NewEnergy(p physics.Params) *Energy {
	return &Energy{
		name:   "energy",
		params: p,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(x dynamo.State, t float64) {
	if len(x) < 3 {
		return
	}
	e.samples++
	e.peak = math.Max(e.peak, LorenzEnergy(x, e.params))
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.peak
}

func (e *Energy) Reset() {
	e.samples = 0
	e.peak = 0
}

func LorenzEnergy(x dynamo.State, p physics.Params) float64 {
	dz := x[2] - 2*p.Rho
	return p.Rho*x[0]*x[0] + p.Sigma*x[1]*x[1] + p.Sigma*dz*dz
}
