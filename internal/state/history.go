package state

import "github.com/google/uuid"

// History is the ordered list of committed strokes, oldest first.
// It is not safe for concurrent use; the board owns it.
type History struct {
	strokes []Stroke
}

// Commit stores a copy of points as a new stroke and returns it.
// Empty strokes are legal and stored like any other.
func (h *History) Commit(points []Point) Stroke {
	cp := make([]Point, len(points))
	copy(cp, points)
	s := Stroke{ID: uuid.NewString(), Points: cp}
	h.strokes = append(h.strokes, s)
	return s
}

// Pop removes and returns the most recent stroke.
func (h *History) Pop() (Stroke, bool) {
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	last := h.strokes[len(h.strokes)-1]
	h.strokes[len(h.strokes)-1] = Stroke{}
	h.strokes = h.strokes[:len(h.strokes)-1]
	return last, true
}

// Strokes returns a deep copy of the committed strokes.
func (h *History) Strokes() []Stroke {
	out := make([]Stroke, len(h.strokes))
	for i, s := range h.strokes {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		out[i] = Stroke{ID: s.ID, Points: pts}
	}
	return out
}

func (h *History) Len() int {
	return len(h.strokes)
}
