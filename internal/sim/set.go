package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/lorenzviz/internal/dynamo"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptySet          = errors.New("sim: trajectory set is empty")
	ErrSeedColorMismatch = errors.New("sim: number of seeds and colors differ")
	ErrLengthMismatch    = errors.New("sim: trajectories have different lengths")
)

// Entry pairs a trajectory with the color it is drawn in.
type Entry struct {
	Trajectory *Trajectory
	Color      string
}

// Set is the fixed, ordered collection of trajectories shown together.
// It is read-only once built.
type Set struct {
	entries []Entry
}

// NewSet checks that every trajectory has the same length.
func NewSet(entries []Entry) (*Set, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySet
	}
	n := entries[0].Trajectory.Len()
	for i, e := range entries[1:] {
		if e.Trajectory.Len() != n {
			return nil, fmt.Errorf("trajectory %d has %d states, trajectory 0 has %d: %w", i+1, e.Trajectory.Len(), n, ErrLengthMismatch)
		}
	}
	return &Set{entries: entries}, nil
}

func (s *Set) Len() int           { return len(s.entries) }
func (s *Set) Entry(i int) Entry  { return s.entries[i] }
func (s *Set) Entries() []Entry   { return s.entries }
func (s *Set) TrajectoryLen() int { return s.entries[0].Trajectory.Len() }
func (s *Set) Color(i int) string { return s.entries[i].Color }

// BuildSet generates one trajectory per seed concurrently. seeds and colors
// pair by index.
func BuildSet(ctx context.Context, gen *Generator, seeds []dynamo.State, colors []string, steps int) (*Set, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptySet
	}
	if len(seeds) != len(colors) {
		return nil, fmt.Errorf("%d seeds, %d colors: %w", len(seeds), len(colors), ErrSeedColorMismatch)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			traj, err := gen.Generate(seed, steps)
			if err != nil {
				return fmt.Errorf("trajectory %d: %w", i, err)
			}
			entries[i] = Entry{Trajectory: traj, Color: colors[i]}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewSet(entries)
}
