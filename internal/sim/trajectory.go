package sim

import "github.com/san-kum/lorenzviz/internal/dynamo"

// Trajectory is an ordered sequence of 3D states stored column-wise so a
// contiguous window of any axis is a plain sub-slice.
type Trajectory struct {
	X, Y, Z []float64
}

func newTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		X: make([]float64, 0, capacity),
		Y: make([]float64, 0, capacity),
		Z: make([]float64, 0, capacity),
	}
}

func (t *Trajectory) append(s dynamo.State) {
	t.X = append(t.X, s[0])
	t.Y = append(t.Y, s[1])
	t.Z = append(t.Z, s[2])
}

func (t *Trajectory) Len() int { return len(t.X) }

// At returns a copy of the i-th state.
func (t *Trajectory) At(i int) dynamo.State {
	return dynamo.State{t.X[i], t.Y[i], t.Z[i]}
}

// Head returns the last state, or nil for an empty trajectory.
func (t *Trajectory) Head() dynamo.State {
	if t.Len() == 0 {
		return nil
	}
	return t.At(t.Len() - 1)
}

// Slice returns the [start, end) window of each axis. The slices alias the
// trajectory's storage and must not be written to.
func (t *Trajectory) Slice(start, end int) (xs, ys, zs []float64) {
	return t.X[start:end], t.Y[start:end], t.Z[start:end]
}

// Column returns one axis by index (0=x, 1=y, 2=z).
func (t *Trajectory) Column(k int) []float64 {
	switch k {
	case 0:
		return t.X
	case 1:
		return t.Y
	default:
		return t.Z
	}
}
