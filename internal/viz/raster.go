package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenzviz/internal/anim"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// pixelsPerPoint scales stroke widths and marker sizes to image pixels.
const pixelsPerPoint = 1.0

// RenderImage draws s into a new w x h image: lines, then markers, then
// labels on top.
func RenderImage(s *Scene, w, h int, theme Theme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := theme.BackgroundColor()
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, l := range s.Lines {
		if l.Len() == 0 {
			continue
		}
		col := theme.Color(l.Style.Color)
		r := math.Max(l.Style.Width*pixelsPerPoint/2, 0.5)
		px, py, _ := s.Camera.Project(l.Point(0), w, h)
		for i := 1; i < l.Len(); i++ {
			x, y, _ := s.Camera.Project(l.Point(i), w, h)
			strokeSegment(img, px, py, x, y, r, col, l.Style.Alpha)
			px, py = x, y
		}
	}

	for _, m := range s.Markers {
		p, ok := m.Position()
		if !ok {
			continue
		}
		x, y, _ := s.Camera.Project(p, w, h)
		r := m.Size * pixelsPerPoint / 2
		if m.Marker.EdgeColor != "" && m.Marker.EdgeWidth > 0 {
			fillDisc(img, x, y, r+1, theme.Color(m.Marker.EdgeColor), m.Marker.EdgeWidth)
		}
		fillDisc(img, x, y, r, theme.Color(m.Marker.Color), 1)
	}

	for _, l := range s.Labels {
		drawLabel(img, l, theme)
	}
	return img
}

// strokeSegment sweeps a disc of radius r from (x0, y0) to (x1, y1). Each
// pixel is blended at most once per segment so the alpha stays uniform.
func strokeSegment(img *image.RGBA, x0, y0, x1, y1, r float64, col colorful.Color, alpha float64) {
	minX := int(math.Floor(math.Min(x0, x1) - r))
	maxX := int(math.Ceil(math.Max(x0, x1) + r))
	minY := int(math.Floor(math.Min(y0, y1) - r))
	maxY := int(math.Ceil(math.Max(y0, y1) + r))
	dx, dy := x1-x0, y1-y0
	ll := dx*dx + dy*dy

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			t := 0.0
			if ll > 0 {
				t = ((fx-x0)*dx + (fy-y0)*dy) / ll
				t = math.Max(0, math.Min(1, t))
			}
			cx, cy := x0+t*dx-fx, y0+t*dy-fy
			if cx*cx+cy*cy <= r*r {
				blendPixel(img, x, y, col, alpha)
			}
		}
	}
}

func fillDisc(img *image.RGBA, cx, cy, r float64, col colorful.Color, alpha float64) {
	strokeSegment(img, cx, cy, cx, cy, r, col, alpha)
}

func blendPixel(img *image.RGBA, x, y int, col colorful.Color, alpha float64) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	dst, _ := colorful.MakeColor(img.RGBAAt(x, y))
	r, g, b := blendOver(dst, col, alpha).RGB255()
	img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
}

// drawLabel places a label at its figure coordinates. Figure y grows
// upward; the basic face only covers Latin-1 so other runes are dropped.
func drawLabel(img *image.RGBA, l *SceneLabel, theme Theme) {
	text := Latin1(l.Text)
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	b := img.Bounds()
	d := &font.Drawer{Dst: img, Face: face}
	tw := d.MeasureString(text).Ceil()

	x := int(l.Style.X * float64(b.Dx()))
	switch l.Style.Align {
	case anim.AlignCenter:
		x -= tw / 2
	case anim.AlignRight:
		x -= tw
	}
	y := int((1 - l.Style.Y) * float64(b.Dy()))
	if y < face.Metrics().Ascent.Ceil() {
		y = face.Metrics().Ascent.Ceil()
	}
	if y > b.Dy()-2 {
		y = b.Dy() - 2
	}

	if l.Style.Shadow != "" {
		d.Src = image.NewUniform(theme.Color(l.Style.Shadow))
		d.Dot = fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}
		d.DrawString(text)
	}
	d.Src = image.NewUniform(textColor(l.Style.Color, theme))
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(text)
}

// textColor resolves label colors without the trajectory tint.
func textColor(hex string, theme Theme) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return theme.Color(string(theme.Text))
	}
	return c
}

// Latin1 drops runes outside Latin-1 for renderers with a basic bitmap font.
func Latin1(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x100 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Recorder collects rendered frames into a looping GIF.
type Recorder struct {
	Width, Height int
	Delay         int // hundredths of a second per frame

	seq gif.GIF
}

// NewRecorder returns a recorder whose frames advance every interval.
func NewRecorder(w, h int, interval time.Duration) *Recorder {
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	return &Recorder{Width: w, Height: h, Delay: delay}
}

// Capture renders s and appends it as the next frame.
func (r *Recorder) Capture(s *Scene, theme Theme) {
	rgba := RenderImage(s, r.Width, r.Height, theme)
	img := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(img, img.Bounds(), rgba, image.Point{})
	r.seq.Image = append(r.seq.Image, img)
	r.seq.Delay = append(r.seq.Delay, r.Delay)
}

func (r *Recorder) Frames() int { return len(r.seq.Image) }

// Reset drops captured frames.
func (r *Recorder) Reset() {
	r.seq.Image = nil
	r.seq.Delay = nil
}

// Encode writes the captured frames. LoopCount 0 loops forever.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.seq.Image) == 0 {
		return ErrNoFrames
	}
	r.seq.LoopCount = 0
	return gif.EncodeAll(w, &r.seq)
}
