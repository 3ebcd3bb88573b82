package analysis

import (
	"math"

	"github.com/san-kum/lorenzviz/internal/sim"
)

// Divergence returns, for every trajectory after the first, its distance
// from trajectory 0 at each step.
func Divergence(set *sim.Set) [][]float64 {
	if set.Len() < 2 {
		return nil
	}
	ref := set.Entry(0).Trajectory
	out := make([][]float64, set.Len()-1)
	for i := 1; i < set.Len(); i++ {
		tr := set.Entry(i).Trajectory
		d := make([]float64, tr.Len())
		for k := range d {
			dx, dy, dz := tr.X[k]-ref.X[k], tr.Y[k]-ref.Y[k], tr.Z[k]-ref.Z[k]
			d[k] = math.Sqrt(dx*dx + dy*dy + dz*dz)
		}
		out[i-1] = d
	}
	return out
}

// SeparationStep is the first index where dist exceeds threshold.
func SeparationStep(dist []float64, threshold float64) (int, bool) {
	for k, d := range dist {
		if d > threshold {
			return k, true
		}
	}
	return 0, false
}
