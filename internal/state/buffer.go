package state

// minCurvePoints is the length a live buffer has to exceed before the curve
// renderer starts stroking. The first samples of a gesture are noisy.
const minCurvePoints = 3

// LiveBuffer holds the points of the stroke currently being drawn.
// It only grows until Reset or Take empties it.
type LiveBuffer struct {
	points []Point
}

// Append adds p to the end of the buffer.
func (b *LiveBuffer) Append(p Point) {
	b.points = append(b.points, p)
}

// Last returns the most recently appended point.
func (b *LiveBuffer) Last() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	return b.points[len(b.points)-1], true
}

// SecondToLast returns the point appended before Last.
func (b *LiveBuffer) SecondToLast() (Point, bool) {
	if len(b.points) < 2 {
		return Point{}, false
	}
	return b.points[len(b.points)-2], true
}

// HasEnoughPoints reports whether curve smoothing can start.
func (b *LiveBuffer) HasEnoughPoints() bool {
	return len(b.points) > minCurvePoints
}

func (b *LiveBuffer) Len() int {
	return len(b.points)
}

// Points returns a copy of the buffered points.
func (b *LiveBuffer) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

// Take moves the buffered points out and leaves the buffer empty.
func (b *LiveBuffer) Take() []Point {
	pts := b.points
	b.points = nil
	if pts == nil {
		pts = []Point{}
	}
	return pts
}

// Reset empties the buffer.
func (b *LiveBuffer) Reset() {
	b.points = nil
}
