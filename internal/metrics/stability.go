package metrics

import "github.com/san-kum/lorenzviz/internal/dynamo"

// Stability is the fraction of states inside an axis-aligned box.
type Stability struct {
	name       string
	min, max   [3]float64
	violations int
	samples    int
}

func NewStability(min, max [3]float64) *Stability {
	return &Stability{
		name: "stability",
		min:  min,
		max:  max,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x dynamo.State, t float64) {
	s.samples++
	for i := 0; i < 3 && i < len(x); i++ {
		if x[i] < s.min[i] || x[i] > s.max[i] {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
