package viz

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// subpixelsPerPoint converts a stroke width in points to a braille brush
// radius.
const subpixelsPerPoint = 1.0 / 3.0

// DrawScene rasterizes every line and marker of s onto c, in creation
// order, with the scene camera. The canvas is cleared first.
func DrawScene(c *Canvas, s *Scene, theme Theme) {
	c.Background = theme.BackgroundColor()
	c.Clear()
	w, h := c.PixelSize()

	for _, l := range s.Lines {
		if l.Len() == 0 {
			continue
		}
		col := theme.Color(l.Style.Color)
		radius := int(math.Round(l.Style.Width * subpixelsPerPoint / 2))
		px, py, _ := s.Camera.Project(l.Point(0), w, h)
		for i := 1; i < l.Len(); i++ {
			x, y, _ := s.Camera.Project(l.Point(i), w, h)
			c.DrawLine(int(px), int(py), int(x), int(y), col, l.Style.Alpha, radius)
			px, py = x, y
		}
		if l.Len() == 1 {
			c.stamp(int(px), int(py), col, l.Style.Alpha, radius)
		}
	}

	for _, m := range s.Markers {
		p, ok := m.Position()
		if !ok {
			continue
		}
		x, y, _ := s.Camera.Project(p, w, h)
		r := int(math.Round(m.Size * subpixelsPerPoint))
		if m.Marker.EdgeColor != "" && m.Marker.EdgeWidth > 0 {
			edge := theme.Color(m.Marker.EdgeColor)
			c.FillCircle(int(x), int(y), r+1, edge, m.Marker.EdgeWidth)
		}
		c.FillCircle(int(x), int(y), r, theme.Color(m.Marker.Color), 1)
	}
}

// blendOver returns dst with src composited over it at the given alpha.
func blendOver(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return src
	}
	if alpha <= 0 {
		return dst
	}
	return dst.BlendRgb(src, alpha).Clamped()
}
