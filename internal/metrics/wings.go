package metrics

import "github.com/san-kum/lorenzviz/internal/dynamo"

// WingSwitches counts how often the trajectory crosses x = 0, i.e. hops
// between the two lobes.
type WingSwitches struct {
	name  string
	sign  int
	count int
}

func NewWingSwitches() *WingSwitches {
	return &WingSwitches{name: "wing_switches"}
}

func (w *WingSwitches) Name() string { return w.name }

func (w *WingSwitches) Observe(x dynamo.State, t float64) {
	if len(x) == 0 || x[0] == 0 {
		return
	}
	s := 1
	if x[0] < 0 {
		s = -1
	}
	if w.sign != 0 && s != w.sign {
		w.count++
	}
	w.sign = s
}

func (w *WingSwitches) Value() float64 { return float64(w.count) }

func (w *WingSwitches) Reset() {
	w.sign = 0
	w.count = 0
}
