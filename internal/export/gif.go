package export

import (
	"context"
	"io"
	"time"

	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/viz"
)

// GIFOptions sizes a headless recording.
type GIFOptions struct {
	Width, Height int
	// MaxFrames caps the recording; 0 records one full pass.
	MaxFrames int
}

// WriteGIF plays one pass of set through a driver without a display and
// encodes every rendered frame. Frame delay follows cfg.Interval.
func WriteGIF(ctx context.Context, w io.Writer, set *sim.Set, cfg *config.Config, opts GIFOptions) (int, error) {
	scene := viz.NewScene()
	theme := viz.GetTheme(cfg.Theme)
	u := anim.NewUpdater(scene, set, cfg.Tail, cfg.Stride, anim.DefaultStyle())
	rec := viz.NewRecorder(opts.Width, opts.Height, cfg.Interval)

	frames := u.FrameCount()
	if opts.MaxFrames > 0 && opts.MaxFrames < frames {
		frames = opts.MaxFrames
	}
	d := anim.NewDriver(frames, cfg.Interval, false, func(f int) {
		u.Update(f)
		rec.Capture(scene, theme)
	})

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		for i := 0; i < frames; i++ {
			select {
			case ticks <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	if err := d.Run(ctx, ticks); err != nil {
		return rec.Frames(), err
	}
	return rec.Frames(), rec.Encode(w)
}
