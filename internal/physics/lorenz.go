package physics

import "github.com/san-kum/lorenzviz/internal/dynamo"

// Params are the Lorenz system coefficients.
type Params struct {
	Sigma float64 `yaml:"sigma" json:"sigma"`
	Rho   float64 `yaml:"rho" json:"rho"`
	Beta  float64 `yaml:"beta" json:"beta"`
}

// DefaultParams returns the classic chaotic regime (10, 28, 8/3).
func DefaultParams() Params { return Params{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

type Lorenz struct{ p Params }

func NewLorenz(p Params) *Lorenz { return &Lorenz{p: p} }
func (l *Lorenz) StateDim() int  { return 3 }
func (l *Lorenz) Params() Params { return l.p }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{l.p.Sigma * (s[1] - s[0]), s[0]*(l.p.Rho-s[2]) - s[1], s[0]*s[1] - l.p.Beta*s[2]}
}

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.p.Sigma, "rho": l.p.Rho, "beta": l.p.Beta}
}

// Step applies one forward Euler update of the Lorenz field.
func Step(s dynamo.State, p Params, dt float64) dynamo.State {
	dx := p.Sigma * (s[1] - s[0])
	dy := s[0]*(p.Rho-s[2]) - s[1]
	dz := s[0]*s[1] - p.Beta*s[2]
	return dynamo.State{s[0] + dx*dt, s[1] + dy*dt, s[2] + dz*dt}
}
