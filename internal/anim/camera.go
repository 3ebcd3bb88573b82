package anim

import "math"

const (
	baseElevation  = 25.0
	elevationSwing = 5.0
	elevationRate  = 0.02
	azimuthRate    = 0.45
)

// Pose is a camera orientation in degrees. Azimuth is not wrapped.
type Pose struct {
	Elevation, Azimuth float64
}

// PoseAt returns the camera pose for frame: a slow elevation bob over a
// steady azimuth spin.
func PoseAt(frame int) Pose {
	f := float64(frame)
	return Pose{
		Elevation: baseElevation + elevationSwing*math.Sin(f*elevationRate),
		Azimuth:   f * azimuthRate,
	}
}
