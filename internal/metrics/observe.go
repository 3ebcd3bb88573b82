package metrics

import (
	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
)

// Default is the metric set recorded for every stored run.
func Default(p physics.Params, min, max [3]float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergy(p),
		NewStability(min, max),
		NewWingSwitches(),
	}
}

// Observe resets ms, feeds them every state of tr and returns their values
// by name.
func Observe(tr *sim.Trajectory, dt float64, ms ...dynamo.Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < tr.Len(); i++ {
		x := tr.At(i)
		t := float64(i) * dt
		for _, m := range ms {
			m.Observe(x, t)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
