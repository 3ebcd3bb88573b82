package anim

import (
	"math"
	"testing"
)

func TestPoseAtOrigin(t *testing.T) {
	p := PoseAt(0)
	if p.Elevation != 25 || p.Azimuth != 0 {
		t.Errorf("PoseAt(0) = %+v, want {25 0}", p)
	}
}

func TestPoseAtIsPure(t *testing.T) {
	for _, f := range []int{1, 77, 325, 5000} {
		a, b := PoseAt(f), PoseAt(f)
		if math.Float64bits(a.Elevation) != math.Float64bits(b.Elevation) ||
			math.Float64bits(a.Azimuth) != math.Float64bits(b.Azimuth) {
			t.Errorf("frame %d: %+v != %+v", f, a, b)
		}
	}
}

func TestPoseAtMotion(t *testing.T) {
	for f := 0; f < 2000; f += 7 {
		p := PoseAt(f)
		if p.Elevation < 20 || p.Elevation > 30 {
			t.Fatalf("frame %d: elevation %v outside [20, 30]", f, p.Elevation)
		}
		if math.Abs(p.Azimuth-0.45*float64(f)) > 1e-9 {
			t.Fatalf("frame %d: azimuth %v", f, p.Azimuth)
		}
	}
	// Azimuth is not wrapped.
	if PoseAt(1000).Azimuth != 450 {
		t.Errorf("azimuth at 1000 = %v, want 450", PoseAt(1000).Azimuth)
	}
}

func TestMarkerSize(t *testing.T) {
	if got := MarkerSize(0); got != 5 {
		t.Errorf("MarkerSize(0) = %v, want 5", got)
	}
	// 0.3*5 = 1.5 is the integer frame nearest pi/2.
	if got := MarkerSize(5); got < 6.99 || got > 7 {
		t.Errorf("MarkerSize(5) = %v, want close to 7", got)
	}
	for f := 0; f < 500; f++ {
		if s := MarkerSize(f); s < 3 || s > 7 {
			t.Fatalf("frame %d: size %v outside [3, 7]", f, s)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		end, length, want int
	}{
		{0, 8001, 0},
		{1500, 8001, 18},
		{8000, 8001, 99},
		{8001, 8001, 100},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.end, tt.length); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.end, tt.length, got, tt.want)
		}
	}
}
