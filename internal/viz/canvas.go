package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille grid with one blended color per character cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
	Background    colorful.Color
}

func NewCanvas(w, h int, bg colorful.Color) *Canvas {
	c := &Canvas{
		Width:      w,
		Height:     h,
		Grid:       make([][]rune, h),
		Colors:     make([][]colorful.Color, h),
		Background: bg,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the sub-pixel at (x, y) and blends col into its cell with
// weight alpha.
func (c *Canvas) Set(x, y int, col colorful.Color, alpha float64) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	cell := x / 2
	row := y / 4
	if cell >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][cell] |= rune(pixelMap[subY][subX])
	c.Colors[row][cell] = blendOver(c.Colors[row][cell], col, alpha)
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = c.Background
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. radius > 0 thickens it
// to a square brush of that many sub-pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col colorful.Color, alpha float64, radius int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.stamp(x0, y0, col, alpha, radius)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle lights every sub-pixel within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, col colorful.Color, alpha float64) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.Set(cx+x, cy+y, col, alpha)
			}
		}
	}
}

func (c *Canvas) stamp(x, y int, col colorful.Color, alpha float64, radius int) {
	if radius <= 0 {
		c.Set(x, y, col, alpha)
		return
	}
	for oy := -radius; oy <= radius; oy++ {
		for ox := -radius; ox <= radius; ox++ {
			c.Set(x+ox, y+oy, col, alpha)
		}
	}
}

// String renders the grid without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the grid with per-cell foreground colors, merging runs of
// equal color into one styled span.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j].Hex() == c.Colors[i][start].Hex() {
				continue
			}
			span := string(row[start:j])
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors[i][start].Hex()))
			b.WriteString(style.Render(span))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
