package anim

// Align is the horizontal anchor of a label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type LineStyle struct {
	Color string
	Width float64
	Alpha float64
}

type MarkerStyle struct {
	Color     string
	Size      float64
	EdgeColor string
	EdgeWidth float64
}

// TextStyle positions a label in figure coordinates, (0,0) bottom left and
// (1,1) top right.
type TextStyle struct {
	X, Y   float64
	Align  Align
	Size   float64
	Color  string
	Shadow string
}

// Line is a polyline handle in data coordinates.
type Line interface {
	SetData(xs, ys, zs []float64)
}

// Marker is a point handle; SetData takes a single-point sequence.
type Marker interface {
	Line
	SetSize(size float64)
}

type Label interface {
	SetText(text string)
}

// Surface is the drawing toolkit the animation renders into. Handles are
// created once and mutated every frame.
type Surface interface {
	Line(style LineStyle) Line
	Marker(style MarkerStyle) Marker
	Label(style TextStyle) Label
	SetView(elevation, azimuth float64)
}
