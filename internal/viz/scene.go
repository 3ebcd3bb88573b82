package viz

import "github.com/san-kum/lorenzviz/internal/anim"

// SceneLine is the retained state of one polyline handle.
type SceneLine struct {
	Style   anim.LineStyle
	X, Y, Z []float64
}

func (l *SceneLine) SetData(xs, ys, zs []float64) { l.X, l.Y, l.Z = xs, ys, zs }

func (l *SceneLine) Len() int { return len(l.X) }

func (l *SceneLine) Point(i int) Vec3 { return Vec3{l.X[i], l.Y[i], l.Z[i]} }

type SceneMarker struct {
	SceneLine
	Marker anim.MarkerStyle
	Size   float64
}

func (m *SceneMarker) SetSize(size float64) { m.Size = size }

// Position is the marker's point, if it has been placed.
func (m *SceneMarker) Position() (Vec3, bool) {
	if m.Len() == 0 {
		return Vec3{}, false
	}
	return m.Point(m.Len() - 1), true
}

type SceneLabel struct {
	Style anim.TextStyle
	Text  string
}

func (l *SceneLabel) SetText(text string) { l.Text = text }

// Scene is a retained-mode anim.Surface: it only records handle state, and
// the terminal, image, SVG and window renderers read it back.
type Scene struct {
	Lines   []*SceneLine
	Markers []*SceneMarker
	Labels  []*SceneLabel
	Camera  *Camera
}

func NewScene() *Scene {
	return &Scene{Camera: NewCamera()}
}

func (s *Scene) Line(style anim.LineStyle) anim.Line {
	l := &SceneLine{Style: style}
	s.Lines = append(s.Lines, l)
	return l
}

func (s *Scene) Marker(style anim.MarkerStyle) anim.Marker {
	m := &SceneMarker{Marker: style, Size: style.Size}
	m.Style = anim.LineStyle{Color: style.Color, Alpha: 1}
	s.Markers = append(s.Markers, m)
	return m
}

func (s *Scene) Label(style anim.TextStyle) anim.Label {
	l := &SceneLabel{Style: style}
	s.Labels = append(s.Labels, l)
	return l
}

func (s *Scene) SetView(elevation, azimuth float64) {
	s.Camera.SetView(elevation, azimuth)
}
