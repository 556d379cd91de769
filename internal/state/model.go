package state

// Point is one captured input sample in surface-local coordinates.
// W is the pressure-derived weight and C the color active at capture time.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	C string  `json:"c"`
}

func NewPoint(x, y, w float64, c string) Point {
	return Point{X: x, Y: y, W: w, C: c}
}

// Stroke is one committed gesture. Points are in capture order.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

// Len returns the number of points in the stroke.
func (s Stroke) Len() int {
	return len(s.Points)
}
