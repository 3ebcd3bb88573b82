package anim

import (
	"context"
	"time"
)

// Phase is the driver's playback state.
type Phase int

const (
	Idle Phase = iota
	Playing
	Looping
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Looping:
		return "looping"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// RenderFunc draws one frame.
type RenderFunc func(frame int)

// Driver schedules frames 0..frames-1 in order and, when repeat is set,
// starts over from 0 after the last one. It does no timing of its own: each
// Tick renders exactly one frame, and the host decides when to tick.
type Driver struct {
	render   RenderFunc
	frames   int
	interval time.Duration
	repeat   bool

	phase Phase
	next  int
	last  int
	loops int
}

func NewDriver(frames int, interval time.Duration, repeat bool, render RenderFunc) *Driver {
	return &Driver{
		render:   render,
		frames:   max(1, frames),
		interval: interval,
		repeat:   repeat,
		phase:    Idle,
		last:     -1,
	}
}

func (d *Driver) Phase() Phase            { return d.phase }
func (d *Driver) Frames() int             { return d.frames }
func (d *Driver) Interval() time.Duration { return d.interval }
func (d *Driver) Loops() int              { return d.loops }

// Frame is the last rendered frame, or -1 before the first tick.
func (d *Driver) Frame() int { return d.last }

// Start begins playback from the current position. It is a no-op unless
// the driver is idle.
func (d *Driver) Start() {
	if d.phase == Idle {
		d.phase = Playing
	}
}

// Tick renders the next frame and reports whether one was rendered.
func (d *Driver) Tick() bool {
	switch d.phase {
	case Idle, Stopped:
		return false
	case Looping:
		d.next = 0
		d.loops++
		d.phase = Playing
	}

	frame := d.next
	d.render(frame)
	d.last = frame
	d.next++

	if d.next >= d.frames {
		if d.repeat {
			d.phase = Looping
		} else {
			d.phase = Stopped
		}
	}
	return true
}

// Seek moves the play position so the next tick renders frame. Seeking a
// looping or stopped driver resumes playback.
func (d *Driver) Seek(frame int) {
	d.next = min(max(0, frame), d.frames-1)
	if d.phase == Looping || d.phase == Stopped {
		d.phase = Playing
	}
}

// Run starts the driver and ticks once per value received from ticks until
// ctx is done, ticks is closed, or playback stops.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	d.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if !d.Tick() {
				return nil
			}
			if d.phase == Stopped {
				return nil
			}
		}
	}
}
