package board

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Drawall/internal/input"
)

type fakeHost struct {
	rect input.Rect
}

func (h *fakeHost) Bounds() input.Rect { return h.rect }

func newBoard(t *testing.T, touch, guides bool) (*Board, *fakeHost) {
	t.Helper()
	host := &fakeHost{rect: input.Rect{Left: 10, Top: 10, Width: 120, Height: 80}}
	b, err := New(host, Options{UseTouchMode: &touch, ShowGuides: guides})
	require.NoError(t, err)
	return b, host
}

// recordEvents collects every event type the board emits, except logs.
func recordEvents(b *Board) *[]EventType {
	var got []EventType
	b.OnAny(func(ev Event) {
		if ev.Type != Log {
			got = append(got, ev.Type)
		}
	})
	return &got
}

func pointer(kind input.Kind, x, y float64) input.PointerInput {
	return input.PointerInput{Type: kind, ClientX: x, ClientY: y, Pressure: 0.5}
}

// drawLine draws a horizontal pointer stroke of n moves starting at (x, y)
// in client coordinates.
func drawLine(b *Board, x, y float64, n int) {
	b.Dispatch(pointer(input.KindStart, x, y))
	for i := 1; i <= n; i++ {
		b.Dispatch(pointer(input.KindMove, x+float64(i*8), y+float64(i)))
	}
	b.Dispatch(pointer(input.KindEnd, x+float64(n*8), y))
}

func samePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())
	r := want.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Fatalf("pixel (%d,%d) differs: want %v got %v", x, y, want.At(x, y), got.At(x, y))
			}
		}
	}
}

func blank(img image.Image) bool {
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return false
			}
		}
	}
	return true
}

func TestNewInvalidHost(t *testing.T) {
	_, err := New(&fakeHost{}, Options{})
	assert.Error(t, err)
}

func TestNewUsesDetector(t *testing.T) {
	host := &fakeHost{rect: input.Rect{Width: 10, Height: 10}}
	b, err := New(host, Options{Detector: input.Static(true)})
	require.NoError(t, err)
	assert.Equal(t, input.TouchMode, b.Mode())
	assert.Equal(t, "none", b.TouchAction())
	assert.Equal(t, DefaultColor, b.Color())
	assert.Empty(t, b.History(), "construction commits nothing")

	touch := false
	b, err = New(host, Options{Detector: input.Static(true), UseTouchMode: &touch})
	require.NoError(t, err)
	assert.Equal(t, input.PointerMode, b.Mode())
	assert.Equal(t, "", b.TouchAction())
}

func TestTouchNormalization(t *testing.T) {
	b, _ := newBoard(t, true, false)
	var points []float64
	b.On(DrawStart, func(ev Event) { points = append(points, ev.Point.W) })
	b.On(DrawMove, func(ev Event) { points = append(points, ev.Point.W) })

	b.Dispatch(input.TouchInput{Type: input.KindStart, Touches: []input.Contact{{ClientX: 20, ClientY: 20, Force: 0.3}}})
	b.Dispatch(input.TouchInput{Type: input.KindMove, Touches: []input.Contact{{ClientX: 21, ClientY: 20}}})

	assert.Equal(t, []float64{math.Log(1.3), 0.2}, points)
}

func TestCoordinateTranslation(t *testing.T) {
	host := &fakeHost{rect: input.Rect{Left: 10, Top: 20, Width: 50, Height: 50}}
	touch := false
	b, err := New(host, Options{UseTouchMode: &touch})
	require.NoError(t, err)

	var x, y float64
	b.On(DrawStart, func(ev Event) { x, y = ev.Point.X, ev.Point.Y })
	b.Dispatch(pointer(input.KindStart, 15, 25))

	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)
}

func TestCommitResetsLiveBuffer(t *testing.T) {
	b, _ := newBoard(t, false, false)
	b.Dispatch(pointer(input.KindStart, 20, 20))
	b.Dispatch(pointer(input.KindMove, 30, 20))
	assert.Equal(t, 2, b.LiveLen())
	assert.True(t, b.Drawing())

	before := len(b.History())
	b.Dispatch(pointer(input.KindEnd, 30, 20))

	assert.Equal(t, 0, b.LiveLen())
	assert.False(t, b.Drawing())
	require.Len(t, b.History(), before+1)
	assert.Len(t, b.History()[0].Points, 2)
}

func TestEndWithoutStrokeIsIgnored(t *testing.T) {
	b, _ := newBoard(t, false, false)
	got := recordEvents(b)

	b.Dispatch(pointer(input.KindLeave, 0, 0))
	b.Dispatch(pointer(input.KindEnd, 0, 0))
	b.Dispatch(pointer(input.KindMove, 20, 20))

	assert.Empty(t, b.History())
	assert.Empty(t, *got)
}

func TestStartWhileDrawingCommitsFirst(t *testing.T) {
	b, _ := newBoard(t, false, false)
	b.Dispatch(pointer(input.KindStart, 20, 20))
	b.Dispatch(pointer(input.KindMove, 30, 20))
	b.Dispatch(pointer(input.KindStart, 50, 50))

	require.Len(t, b.History(), 1)
	assert.Len(t, b.History()[0].Points, 2)
	assert.Equal(t, 1, b.LiveLen())
	assert.True(t, b.Drawing())
}

func TestUndoMatchesRedraw(t *testing.T) {
	for _, guides := range []bool{false, true} {
		b, _ := newBoard(t, false, guides)
		drawLine(b, 20, 30, 8)
		b.ChangeColor("#e33")
		drawLine(b, 15, 60, 10)
		require.Len(t, b.History(), 2)
		s1 := b.History()[0]

		b.Undo()
		require.Len(t, b.History(), 1)
		assert.Equal(t, s1, b.History()[0])

		want, _ := newBoard(t, false, guides)
		drawLine(want, 20, 30, 8)
		samePixels(t, want.Image(), b.Image())
	}
}

func TestUndoEmpty(t *testing.T) {
	b, _ := newBoard(t, false, true)
	before := b.Image()

	assert.NotPanics(t, b.Undo)
	assert.Empty(t, b.History())
	samePixels(t, before, b.Image())
}

func TestUndoDuringStroke(t *testing.T) {
	b, _ := newBoard(t, false, false)
	drawLine(b, 20, 30, 6)
	b.Dispatch(pointer(input.KindStart, 20, 60))
	b.Dispatch(pointer(input.KindMove, 30, 60))

	b.Undo()
	assert.Empty(t, b.History())
	assert.Equal(t, 2, b.LiveLen(), "the stroke in progress survives")
	assert.True(t, b.Drawing())

	b.Dispatch(pointer(input.KindEnd, 30, 60))
	assert.Len(t, b.History(), 1)
}

func TestUndoDuringStrokeRepaintsLiveStroke(t *testing.T) {
	stroke := func(b *Board, from, to int) {
		for i := from; i <= to; i++ {
			b.Dispatch(pointer(input.KindMove, 20+float64(i*9), 60-float64(i*3)))
		}
	}

	b, _ := newBoard(t, false, true)
	drawLine(b, 20, 20, 6)
	b.Dispatch(pointer(input.KindStart, 20, 60))
	stroke(b, 1, 6)
	b.Undo()
	stroke(b, 7, 10)
	b.Dispatch(pointer(input.KindEnd, 110, 30))

	want, _ := newBoard(t, false, true)
	want.Dispatch(pointer(input.KindStart, 20, 60))
	stroke(want, 1, 10)
	want.Dispatch(pointer(input.KindEnd, 110, 30))

	samePixels(t, want.Image(), b.Image())
	assert.Equal(t, want.History()[0].Points, b.History()[0].Points)
}

func TestHistoryIsACopy(t *testing.T) {
	b, _ := newBoard(t, false, false)
	drawLine(b, 20, 30, 4)

	b.History()[0].Points[0].X = -1
	assert.Equal(t, 10.0, b.History()[0].Points[0].X)
}

func TestModeSwitchCommitsStroke(t *testing.T) {
	b, _ := newBoard(t, false, false)
	got := recordEvents(b)
	b.Dispatch(pointer(input.KindStart, 20, 20))
	b.Dispatch(pointer(input.KindMove, 25, 20))

	b.SetInputMode(true)

	assert.False(t, b.Drawing())
	assert.Equal(t, 0, b.LiveLen())
	assert.Len(t, b.History(), 1)
	assert.Equal(t, []EventType{DrawStart, DrawMove, DrawEnd}, *got)
	assert.Equal(t, input.TouchMode, b.Mode())
	assert.Equal(t, "none", b.TouchAction())

	assert.False(t, b.Dispatch(pointer(input.KindStart, 20, 20)), "pointer listeners are unbound")
	assert.True(t, b.Dispatch(input.TouchInput{Type: input.KindStart, Touches: []input.Contact{{ClientX: 20, ClientY: 20}}}))
	assert.True(t, b.Drawing())
}

func TestModeSwitchIdle(t *testing.T) {
	b, _ := newBoard(t, true, false)
	b.SetInputMode(false)
	b.SetInputMode(false)
	assert.Empty(t, b.History())
	assert.Equal(t, "", b.TouchAction())
}

func TestChangeColorAppliesToNewPoints(t *testing.T) {
	b, _ := newBoard(t, false, false)
	var logs []string
	b.On(Log, func(ev Event) { logs = append(logs, ev.Log.Message) })

	b.Dispatch(pointer(input.KindStart, 20, 20))
	b.ChangeColor("#00f")
	b.Dispatch(pointer(input.KindMove, 30, 20))
	b.Dispatch(pointer(input.KindEnd, 30, 20))

	pts := b.History()[0].Points
	assert.Equal(t, DefaultColor, pts[0].C)
	assert.Equal(t, "#00f", pts[1].C)
	assert.Contains(t, logs, "Color changed to #00f")
}

func TestResizeSurface(t *testing.T) {
	b, host := newBoard(t, false, false)
	drawLine(b, 20, 30, 8)
	require.False(t, blank(b.Image()))

	host.rect = input.Rect{Left: 0, Top: 0, Width: 200, Height: 100}
	require.NoError(t, b.ResizeSurface())

	w, h := b.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.True(t, blank(b.Image()), "resize erases the pixels")
	assert.Len(t, b.History(), 1, "but keeps the history")

	var x float64
	b.On(DrawStart, func(ev Event) { x = ev.Point.X })
	b.Dispatch(pointer(input.KindStart, 15, 5))
	assert.Equal(t, 15.0, x, "origin is re-measured")

	host.rect.Width = 0
	assert.Error(t, b.ResizeSurface())
}

func TestClearKeepsHistory(t *testing.T) {
	b, _ := newBoard(t, false, true)
	guidesOnly := b.Image()
	drawLine(b, 20, 30, 8)

	b.Clear()
	samePixels(t, guidesOnly, b.Image())
	assert.Len(t, b.History(), 1)
}

func TestEventSequence(t *testing.T) {
	b, _ := newBoard(t, false, false)
	var seqs []uint64
	b.OnAny(func(ev Event) { seqs = append(seqs, ev.Seq) })
	drawLine(b, 20, 20, 2)

	require.NotEmpty(t, seqs)
	for i := 1; i < len(seqs); i++ {
		assert.Equal(t, seqs[i-1]+1, seqs[i])
	}
}

func TestScenario(t *testing.T) {
	host := &fakeHost{rect: input.Rect{Left: 10, Top: 10, Width: 100, Height: 100}}
	touch := false
	b, err := New(host, Options{UseTouchMode: &touch, ShowGuides: true})
	require.NoError(t, err)
	guidesOnly := b.Image()

	var starts, moves, ends int
	var first Event
	b.On(DrawStart, func(ev Event) { starts++; first = ev })
	b.On(DrawMove, func(Event) { moves++ })
	b.On(DrawEnd, func(ev Event) {
		ends++
		assert.Nil(t, ev.Point)
	})

	b.Dispatch(pointer(input.KindStart, 10, 10))
	require.Equal(t, 1, starts)
	assert.Equal(t, 0.0, first.Point.X)
	assert.Equal(t, 0.0, first.Point.Y)
	assert.Equal(t, math.Log(1.5), first.Point.W)

	for i := 1; i <= 5; i++ {
		b.Dispatch(pointer(input.KindMove, 10+float64(i*10), 10+float64(i*10)))
	}
	assert.Equal(t, 5, moves)

	b.Dispatch(pointer(input.KindEnd, 60, 60))
	assert.Equal(t, 1, ends)
	assert.Len(t, b.History(), 1)

	b.Undo()
	assert.Empty(t, b.History())
	samePixels(t, guidesOnly, b.Image())
}
