package anim

// Span is the half-open [Start, End) index range of a trajectory that is
// visible in one frame.
type Span struct {
	Start, End int
}

func (s Span) Len() int    { return s.End - s.Start }
func (s Span) Empty() bool { return s.End <= s.Start }

// Window returns the visible range for frame. The trail grows from the
// first point until it is tail points long, then slides forward stride
// points per frame until End reaches length.
func Window(frame, tail, stride, length int) Span {
	if frame < 0 {
		frame = 0
	}
	end := min(tail+frame*stride, length)
	start := max(0, end-tail)
	return Span{Start: start, End: end}
}

// FrameCount is the number of distinct frames in one pass of the animation.
// It is never less than one.
func FrameCount(length, tail, stride int) int {
	if stride <= 0 {
		return 1
	}
	return max(1, (length-tail)/stride+1)
}
