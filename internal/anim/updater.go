package anim

import (
	"math"

	"github.com/san-kum/lorenzviz/internal/sim"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Title      = "🦋 LORENZ ATTRACTOR · CHAOS THEORY"
	Credit     = "Go · lorenzviz"
	Background = "#000005"

	pulseBase   = 5.0
	pulseAmp    = 2.0
	pulseRate   = 0.3
	titleShadow = "#001122"
)

// Style holds the per-layer stroke settings shared by every trajectory.
// Only width, alpha and marker shape vary; color comes from the set.
type Style struct {
	Glow       [2]LineStyle
	Core       LineStyle
	Marker     MarkerStyle
	Counter    TextStyle
	TitleText  TextStyle
	CreditText TextStyle
}

func DefaultStyle() Style {
	return Style{
		Glow: [2]LineStyle{
			{Width: 6, Alpha: 0.05},
			{Width: 3, Alpha: 0.15},
		},
		Core:       LineStyle{Width: 1.2, Alpha: 0.9},
		Marker:     MarkerStyle{Size: 6, EdgeColor: "#ffffff", EdgeWidth: 0.3},
		Counter:    TextStyle{X: 0.98, Y: 0.02, Align: AlignRight, Size: 8, Color: "#333344"},
		TitleText:  TextStyle{X: 0.5, Y: 0.95, Align: AlignCenter, Size: 16, Color: "#00f5ff", Shadow: titleShadow},
		CreditText: TextStyle{X: 0.98, Y: 0.005, Align: AlignRight, Size: 7, Color: "#111122"},
	}
}

// Handles are the drawing primitives owned by one trajectory.
type Handles struct {
	Glow [2]Line
	Core Line
	Head Marker
}

// Frame summarizes what Update pushed to the surface.
type Frame struct {
	Index      int
	Span       Span
	Pose       Pose
	MarkerSize float64
	Percent    int
	Counter    string
}

// Updater owns the render handles for a trajectory set and refreshes them
// for a given frame index.
type Updater struct {
	surface Surface
	set     *sim.Set
	tail    int
	stride  int
	handles []Handles
	counter Label
	printer *message.Printer
}

// NewUpdater allocates one set of handles per trajectory plus the static
// labels. The set is shared, not copied.
func NewUpdater(surface Surface, set *sim.Set, tail, stride int, style Style) *Updater {
	u := &Updater{
		surface: surface,
		set:     set,
		tail:    tail,
		stride:  stride,
		handles: make([]Handles, set.Len()),
		printer: message.NewPrinter(language.English),
	}

	surface.Label(style.TitleText).SetText(Title)
	surface.Label(style.CreditText).SetText(Credit)

	for i, e := range set.Entries() {
		var h Handles
		for k, g := range style.Glow {
			g.Color = e.Color
			h.Glow[k] = surface.Line(g)
		}
		core := style.Core
		core.Color = e.Color
		h.Core = surface.Line(core)

		marker := style.Marker
		marker.Color = e.Color
		h.Head = surface.Marker(marker)
		u.handles[i] = h
	}

	u.counter = surface.Label(style.Counter)
	return u
}

// FrameCount is the number of frames in one pass over the set.
func (u *Updater) FrameCount() int {
	return FrameCount(u.set.TrajectoryLen(), u.tail, u.stride)
}

func (u *Updater) Handles(i int) Handles { return u.handles[i] }

// Update renders frame into the surface and returns what it drew.
func (u *Updater) Update(frame int) Frame {
	pose := PoseAt(frame)
	u.surface.SetView(pose.Elevation, pose.Azimuth)

	size := MarkerSize(frame)
	for i, e := range u.set.Entries() {
		span := Window(frame, u.tail, u.stride, e.Trajectory.Len())
		xs, ys, zs := e.Trajectory.Slice(span.Start, span.End)

		h := u.handles[i]
		h.Glow[0].SetData(xs, ys, zs)
		h.Glow[1].SetData(xs, ys, zs)
		h.Core.SetData(xs, ys, zs)

		if !span.Empty() {
			last := len(xs) - 1
			h.Head.SetData(xs[last:], ys[last:], zs[last:])
			h.Head.SetSize(size)
		}
	}

	// Progress follows trajectory 0 only; every trajectory in a set has the
	// same length, so the windows are identical.
	length := u.set.TrajectoryLen()
	span := Window(frame, u.tail, u.stride, length)
	pct := Percent(span.End, length)
	text := u.printer.Sprintf("Points: %d | %d%%", span.End, pct)
	u.counter.SetText(text)

	return Frame{
		Index:      frame,
		Span:       span,
		Pose:       pose,
		MarkerSize: size,
		Percent:    pct,
		Counter:    text,
	}
}

// MarkerSize is the pulsing head size for frame.
func MarkerSize(frame int) float64 {
	return pulseBase + pulseAmp*math.Sin(float64(frame)*pulseRate)
}

// Percent is the truncated share of length covered by end.
func Percent(end, length int) int {
	if length <= 0 {
		return 0
	}
	return 100 * end / length
}
