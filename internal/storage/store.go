package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
)

var ErrCorruptRun = errors.New("storage: corrupt run")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Params       physics.Params     `json:"params"`
	Dt           float64            `json:"dt"`
	Steps        int                `json:"steps"`
	Tail         int                `json:"tail"`
	Stride       int                `json:"stride"`
	Seeds        [][3]float64       `json:"seeds"`
	Colors       []string           `json:"colors"`
	Trajectories int                `json:"trajectories"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

// Config rebuilds the settings a run was generated with.
func (m *RunMetadata) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Params = m.Params
	cfg.Dt = m.Dt
	cfg.Steps = m.Steps
	cfg.Tail = m.Tail
	cfg.Stride = m.Stride
	cfg.Seeds = m.Seeds
	cfg.Colors = m.Colors
	return cfg
}

// Save writes metadata.json and one traj_<i>.csv per trajectory under a
// new run directory and returns the run id.
func (s *Store) Save(cfg *config.Config, set *sim.Set, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("lorenz_%d", now.Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for n := 1; ; n++ {
		if _, err := os.Stat(runDir); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("lorenz_%d_%d", now.Unix(), n)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    now,
		Params:       cfg.Params,
		Dt:           cfg.Dt,
		Steps:        cfg.Steps,
		Tail:         cfg.Tail,
		Stride:       cfg.Stride,
		Seeds:        cfg.Seeds,
		Colors:       cfg.Colors,
		Trajectories: set.Len(),
		Metrics:      metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for i, e := range set.Entries() {
		if err := writeTrajectory(filepath.Join(runDir, trajectoryFile(i)), e.Trajectory, cfg.Dt); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func trajectoryFile(i int) string { return fmt.Sprintf("traj_%d.csv", i) }

func writeTrajectory(path string, tr *sim.Trajectory, dt float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}
	for i := 0; i < tr.Len(); i++ {
		row := []string{
			strconv.FormatFloat(float64(i)*dt, 'f', 6, 64),
			strconv.FormatFloat(tr.X[i], 'g', -1, 64),
			strconv.FormatFloat(tr.Y[i], 'g', -1, 64),
			strconv.FormatFloat(tr.Z[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads trajectory i of a run along with its time column.
func (s *Store) LoadTrajectory(runID string, i int) (*sim.Trajectory, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile(i)))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, trajectoryFile(i), err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%w: %s has no samples", ErrCorruptRun, trajectoryFile(i))
	}

	n := len(records) - 1
	tr := &sim.Trajectory{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	times := make([]float64, n)
	for k, record := range records[1:] {
		vals := [4]float64{}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s row %d: %v", ErrCorruptRun, trajectoryFile(i), k+1, err)
			}
			vals[j] = v
		}
		times[k] = vals[0]
		tr.X[k], tr.Y[k], tr.Z[k] = vals[1], vals[2], vals[3]
	}
	return tr, times, nil
}

// LoadSet rebuilds the full trajectory set of a run.
func (s *Store) LoadSet(runID string) (*sim.Set, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]sim.Entry, meta.Trajectories)
	for i := range entries {
		tr, _, err := s.LoadTrajectory(runID, i)
		if err != nil {
			return nil, nil, err
		}
		color := ""
		if i < len(meta.Colors) {
			color = meta.Colors[i]
		}
		entries[i] = sim.Entry{Trajectory: tr, Color: color}
	}
	set, err := sim.NewSet(entries)
	if err != nil {
		return nil, nil, err
	}
	return set, meta, nil
}
