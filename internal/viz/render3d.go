package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Box is an axis-aligned data range; the camera maps it onto a unit cube.
type Box struct {
	Min, Max Vec3
}

// LorenzBox is the fixed view volume of the attractor.
var LorenzBox = Box{Min: Vec3{-25, -35, 0}, Max: Vec3{25, 35, 55}}

func (b Box) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// normalize maps p into [-1, 1] on each axis.
func (b Box) normalize(p Vec3) Vec3 {
	c := b.Center()
	return Vec3{
		(p.X - c.X) / ((b.Max.X - b.Min.X) / 2),
		(p.Y - c.Y) / ((b.Max.Y - b.Min.Y) / 2),
		(p.Z - c.Z) / ((b.Max.Z - b.Min.Z) / 2),
	}
}

// Camera orbits the box center. Elevation and azimuth are in degrees and
// follow the usual z-up convention: azimuth spins about z, elevation tilts
// toward the xy plane.
type Camera struct {
	Elevation, Azimuth float64
	Distance           float64
	Zoom               float64
	Box                Box

	eye, right, up Vec3
}

func NewCamera() *Camera {
	c := &Camera{Distance: 10, Zoom: 1.0, Box: LorenzBox}
	c.SetView(30, -60)
	return c
}

// SetView updates the orientation and recomputes the view basis.
func (c *Camera) SetView(elevation, azimuth float64) {
	c.Elevation, c.Azimuth = elevation, azimuth
	el := elevation * math.Pi / 180
	az := azimuth * math.Pi / 180
	ce, se := math.Cos(el), math.Sin(el)
	ca, sa := math.Cos(az), math.Sin(az)

	c.eye = Vec3{ce * ca, ce * sa, se}
	c.right = Vec3{-sa, ca, 0}
	c.up = Vec3{-se * ca, -se * sa, ce}
}

// Eye is the unit vector from the box center toward the viewer, in data axes.
func (c *Camera) Eye() Vec3 { return c.eye }

// Project maps a data point to screen coordinates in a sw x sh viewport.
// Depth grows toward the viewer.
func (c *Camera) Project(p Vec3, sw, sh int) (sx, sy, depth float64) {
	n := c.Box.normalize(p)
	depth = n.Dot(c.eye)
	persp := c.Distance / (c.Distance - depth)
	scale := math.Min(float64(sw), float64(sh)) * 0.3 * c.Zoom * persp
	sx = float64(sw)/2 + n.Dot(c.right)*scale
	sy = float64(sh)/2 - n.Dot(c.up)*scale
	return sx, sy, depth
}
