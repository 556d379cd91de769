package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Drawall/internal/state"
)

// recordingPen logs every call it receives.
type recordingPen struct {
	ops []string
}

func (p *recordingPen) add(format string, args ...any) {
	p.ops = append(p.ops, fmt.Sprintf(format, args...))
}

func (p *recordingPen) SetStrokeColor(c string)          { p.add("color %s", c) }
func (p *recordingPen) SetLineWidth(w float64)           { p.add("width %g", w) }
func (p *recordingPen) BeginPath()                       { p.add("begin") }
func (p *recordingPen) MoveTo(x, y float64)              { p.add("move %g,%g", x, y) }
func (p *recordingPen) QuadraticTo(cx, cy, x, y float64) { p.add("quad %g,%g %g,%g", cx, cy, x, y) }
func (p *recordingPen) LineTo(x, y float64)              { p.add("line %g,%g", x, y) }
func (p *recordingPen) Stroke()                          { p.add("stroke") }
func (p *recordingPen) FillText(s string, x, y float64, c string) {
	p.add("text %s %g,%g %s", s, x, y, c)
}

func (p *recordingPen) count(op string) int {
	n := 0
	for _, o := range p.ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestCurveRendererGating(t *testing.T) {
	pen := &recordingPen{}
	r := NewCurveRenderer(pen, 0)
	var buf state.LiveBuffer

	for i := 0; i < 3; i++ {
		buf.Append(state.NewPoint(float64(i*10), 0, 0.5, "#000"))
		assert.False(t, r.Render(&buf), "point %d", i+1)
	}
	assert.Equal(t, 0, pen.count("stroke"))

	buf.Append(state.NewPoint(30, 0, 0.5, "#000"))
	assert.True(t, r.Render(&buf), "the 4th point draws the first segment")
	assert.Equal(t, 1, pen.count("stroke"))
}

func TestCurveRendererSegment(t *testing.T) {
	pen := &recordingPen{}
	r := NewCurveRenderer(pen, 0)
	var buf state.LiveBuffer
	buf.Append(state.NewPoint(0, 0, 0.1, "#000"))
	buf.Append(state.NewPoint(0, 0, 0.1, "#000"))
	buf.Append(state.NewPoint(10, 10, 0.3, "#f00"))
	buf.Append(state.NewPoint(20, 30, 0.9, "#00f"))
	pen.ops = nil

	require.True(t, r.Render(&buf))
	assert.Equal(t, []string{
		"color #f00",
		"width 3",
		"quad 10,10 15,20",
		"line 15,20",
		"stroke",
		"begin",
		"move 15,20",
	}, pen.ops, "segment uses the previous point's color and weight")
}

func TestCurveRendererEmptyBuffer(t *testing.T) {
	pen := &recordingPen{}
	r := NewCurveRenderer(pen, 0)
	assert.False(t, r.Render(&state.LiveBuffer{}))
	assert.Empty(t, pen.ops)
}

func TestCurveRendererCustomWidth(t *testing.T) {
	pen := &recordingPen{}
	r := NewCurveRenderer(pen, 4)
	var buf state.LiveBuffer
	for i := 0; i < 4; i++ {
		buf.Append(state.NewPoint(float64(i), 0, 0.5, "#000"))
	}
	r.Render(&buf)
	assert.Equal(t, 1, pen.count("width 2"))
}

func TestCurveRendererReplay(t *testing.T) {
	pen := &recordingPen{}
	r := NewCurveRenderer(pen, 0)
	var buf state.LiveBuffer
	buf.Append(state.NewPoint(99, 99, 1, "#000"))

	pts := make([]state.Point, 6)
	for i := range pts {
		pts[i] = state.NewPoint(float64(i), 0, 0.5, "#000")
	}
	r.Replay(&buf, pts)

	assert.Equal(t, 3, pen.count("stroke"), "points 4, 5 and 6 draw segments")
	assert.Equal(t, 0, buf.Len())
	assert.NotContains(t, pen.ops, "move 99,99")
}
