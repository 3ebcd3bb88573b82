package anim

type fakeLine struct {
	style      LineStyle
	xs, ys, zs []float64
	sets       int
}

func (l *fakeLine) SetData(xs, ys, zs []float64) {
	l.xs, l.ys, l.zs = xs, ys, zs
	l.sets++
}

type fakeMarker struct {
	fakeLine
	mstyle MarkerStyle
	size   float64
}

func (m *fakeMarker) SetSize(size float64) { m.size = size }

type fakeLabel struct {
	style TextStyle
	text  string
}

func (l *fakeLabel) SetText(text string) { l.text = text }

type fakeSurface struct {
	lines   []*fakeLine
	markers []*fakeMarker
	labels  []*fakeLabel
	views   []Pose
}

func (s *fakeSurface) Line(style LineStyle) Line {
	l := &fakeLine{style: style}
	s.lines = append(s.lines, l)
	return l
}

func (s *fakeSurface) Marker(style MarkerStyle) Marker {
	m := &fakeMarker{mstyle: style}
	s.markers = append(s.markers, m)
	return m
}

func (s *fakeSurface) Label(style TextStyle) Label {
	l := &fakeLabel{style: style}
	s.labels = append(s.labels, l)
	return l
}

func (s *fakeSurface) SetView(elevation, azimuth float64) {
	s.views = append(s.views, Pose{Elevation: elevation, Azimuth: azimuth})
}
