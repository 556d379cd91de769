package render

import "Drawall/internal/state"

// MaxLineWidth is the line width of a point with weight 1.
const MaxLineWidth = 10.0

// CurveRenderer paints a live buffer as a chain of quadratic segments
// through the midpoints of consecutive samples. The pen keeps the current
// position between calls.
type CurveRenderer struct {
	pen      Pen
	maxWidth float64
}

// NewCurveRenderer returns a renderer drawing on pen. A non-positive
// maxWidth selects MaxLineWidth.
func NewCurveRenderer(pen Pen, maxWidth float64) *CurveRenderer {
	if maxWidth <= 0 {
		maxWidth = MaxLineWidth
	}
	return &CurveRenderer{pen: pen, maxWidth: maxWidth}
}

// Render paints the segment ending at the latest point of buf and reports
// whether anything was stroked. Until buf has enough points it only moves
// the pen to the latest point.
//
// The segment uses the color and weight of the second to last point, so a
// color change shows up one sample late.
func (r *CurveRenderer) Render(buf *state.LiveBuffer) bool {
	last, ok := buf.Last()
	if !ok {
		return false
	}
	if !buf.HasEnoughPoints() {
		r.pen.BeginPath()
		r.pen.MoveTo(last.X, last.Y)
		return false
	}
	prev, _ := buf.SecondToLast()
	mx := (last.X + prev.X) / 2
	my := (last.Y + prev.Y) / 2

	r.pen.SetStrokeColor(prev.C)
	r.pen.SetLineWidth(prev.W * r.maxWidth)
	r.pen.QuadraticTo(prev.X, prev.Y, mx, my)
	r.pen.LineTo(mx, my)
	r.pen.Stroke()
	r.pen.BeginPath()
	r.pen.MoveTo(mx, my)
	return true
}

// Replay renders points one by one into buf as if they were drawn live.
// buf is reset first and left empty afterwards.
func (r *CurveRenderer) Replay(buf *state.LiveBuffer, points []state.Point) {
	buf.Reset()
	for _, p := range points {
		buf.Append(p)
		r.Render(buf)
	}
	buf.Reset()
}
