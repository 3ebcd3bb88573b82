package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
)

type TrajectoryData struct {
	Color string     `json:"color"`
	Seed  [3]float64 `json:"seed"`
	X     []float64  `json:"x"`
	Y     []float64  `json:"y"`
	Z     []float64  `json:"z"`
}

type ExportData struct {
	Params       physics.Params   `json:"params"`
	Dt           float64          `json:"dt"`
	Steps        int              `json:"steps"`
	Tail         int              `json:"tail"`
	Stride       int              `json:"stride"`
	Trajectories []TrajectoryData `json:"trajectories"`
}

// ExportJSON writes the set and the settings that produced it.
func ExportJSON(w io.Writer, cfg *config.Config, set *sim.Set) error {
	data := ExportData{
		Params:       cfg.Params,
		Dt:           cfg.Dt,
		Steps:        cfg.Steps,
		Tail:         cfg.Tail,
		Stride:       cfg.Stride,
		Trajectories: make([]TrajectoryData, set.Len()),
	}
	for i, e := range set.Entries() {
		head := e.Trajectory.At(0)
		data.Trajectories[i] = TrajectoryData{
			Color: e.Color,
			Seed:  [3]float64{head[0], head[1], head[2]},
			X:     e.Trajectory.X,
			Y:     e.Trajectory.Y,
			Z:     e.Trajectory.Z,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
