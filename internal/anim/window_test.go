package anim

import "testing"

const (
	tail   = 1500
	stride = 20
	length = 8001
)

func TestWindowFirstFrame(t *testing.T) {
	tests := []struct {
		name         string
		tail, length int
		want         Span
	}{
		{"default", tail, length, Span{0, 1500}},
		{"short trajectory", tail, 900, Span{0, 900}},
		{"zero tail", 0, length, Span{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(0, tt.tail, stride, tt.length); got != tt.want {
				t.Errorf("Window(0) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWindowMonotoneAndBounded(t *testing.T) {
	prev := Window(0, tail, stride, length)
	for frame := 1; frame < 1000; frame++ {
		w := Window(frame, tail, stride, length)
		if w.End < prev.End {
			t.Fatalf("frame %d: end went backwards %d -> %d", frame, prev.End, w.End)
		}
		if w.End > length {
			t.Fatalf("frame %d: end %d exceeds length", frame, w.End)
		}
		if w.Len() < 0 || w.Len() > tail {
			t.Fatalf("frame %d: width %d out of [0, %d]", frame, w.Len(), tail)
		}
		prev = w
	}
}

func TestWindowSaturates(t *testing.T) {
	// tail + frame*stride >= length from frame 326 on.
	for _, frame := range []int{326, 400, 10000} {
		w := Window(frame, tail, stride, length)
		if w.End != length {
			t.Errorf("frame %d: end = %d, want %d", frame, w.End, length)
		}
		if w.Len() != tail {
			t.Errorf("frame %d: width = %d, want %d", frame, w.Len(), tail)
		}
	}
}

func TestWindowSlides(t *testing.T) {
	if w := Window(2, 200, 50, 1000); w != (Span{100, 300}) {
		t.Errorf("sliding window = %+v, want {100 300}", w)
	}
	for frame := 0; frame < 326; frame++ {
		w := Window(frame, tail, stride, length)
		if w.Len() != tail {
			t.Fatalf("frame %d: width %d, want %d", frame, w.Len(), tail)
		}
		if w.Start != frame*stride {
			t.Fatalf("frame %d: start %d, want %d", frame, w.Start, frame*stride)
		}
	}
}

func TestWindowIsPure(t *testing.T) {
	a := Window(137, tail, stride, length)
	Window(9, tail, stride, length)
	b := Window(137, tail, stride, length)
	if a != b {
		t.Errorf("Window not reproducible: %+v vs %+v", a, b)
	}
}

func TestWindowNegativeFrame(t *testing.T) {
	if got := Window(-5, tail, stride, length); got != Window(0, tail, stride, length) {
		t.Errorf("negative frame = %+v", got)
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name                 string
		length, tail, stride int
		want                 int
	}{
		{"default", 8001, 1500, 20, 326},
		{"exact division", 1600, 1500, 20, 6},
		{"tail longer than trajectory", 100, 1500, 20, 1},
		{"zero stride", 8001, 1500, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameCount(tt.length, tt.tail, tt.stride); got != tt.want {
				t.Errorf("FrameCount = %d, want %d", got, tt.want)
			}
		})
	}
}
