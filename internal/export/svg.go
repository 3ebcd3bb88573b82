package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/viz"
)

// WriteSVG writes the current state of scene as a still SVG image. Each
// line handle becomes one path with its own stroke width and opacity, so
// the glow layers stack the same way they do on screen.
func WriteSVG(w io.Writer, scene *viz.Scene, width, height int, theme viz.Theme) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.BackgroundColor().Hex()))

	for _, l := range scene.Lines {
		if l.Len() < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" stroke-linejoin="round" d="M`,
			theme.Color(l.Style.Color).Hex(), l.Style.Width, l.Style.Alpha))
		for i := 0; i < l.Len(); i++ {
			x, y, _ := scene.Camera.Project(l.Point(i), width, height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, m := range scene.Markers {
		p, ok := m.Position()
		if !ok {
			continue
		}
		x, y, _ := scene.Camera.Project(p, width, height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>
`, x, y, m.Size/2, theme.Color(m.Marker.Color).Hex(), m.Marker.EdgeColor, m.Marker.EdgeWidth))
	}

	for _, l := range scene.Labels {
		if l.Text == "" {
			continue
		}
		x := l.Style.X * float64(width)
		y := (1 - l.Style.Y) * float64(height)
		anchor := "start"
		switch l.Style.Align {
		case anim.AlignCenter:
			anchor = "middle"
		case anim.AlignRight:
			anchor = "end"
		}
		if l.Style.Shadow != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.0f" font-family="monospace" text-anchor="%s" fill="%s">%s</text>
`, x+1, y+1, l.Style.Size, anchor, l.Style.Shadow, escape(l.Text)))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.0f" font-family="monospace" text-anchor="%s" fill="%s">%s</text>
`, x, y, l.Style.Size, anchor, l.Style.Color, escape(l.Text)))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
