// Package board is the drawing core: it turns raw touch or pointer events
// into smoothed strokes on a raster surface and keeps an undo history.
//
// A Board is single-threaded. The host delivers events and calls its
// operations from one goroutine, the UI event loop.
package board

import (
	"fmt"
	"image"

	"Drawall/internal/input"
	"Drawall/internal/logx"
	"Drawall/internal/render"
	"Drawall/internal/state"
)

// DefaultColor is the stroke color of a new board.
const DefaultColor = "#000"

// Host measures the surface. Bounds returns the surface rectangle in client
// coordinates, sized to fill its parent container.
type Host interface {
	Bounds() input.Rect
}

// Options configure a new Board.
type Options struct {
	// UseTouchMode selects touch listeners. Nil lets Detector decide.
	UseTouchMode *bool
	ShowGuides   bool
	// Detector defaults to the user agent of the running platform.
	Detector     input.Detector
	Color        string
	MaxLineWidth float64
}

type Board struct {
	host       Host
	canvas     *render.Canvas
	curve      *render.CurveRenderer
	guides     render.Guides
	normalizer input.Normalizer
	ctrl       *input.Controller

	live    state.LiveBuffer
	scratch state.LiveBuffer
	history state.History
	clock   state.Clock
	color   string
	drawing bool

	listeners listeners
}

// New creates a board sized to host, draws the guides and binds the
// listeners for the selected input mode.
func New(host Host, opts Options) (*Board, error) {
	if opts.Detector == nil {
		opts.Detector = input.RuntimeUserAgent()
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	useTouch := opts.Detector.TouchPreferred()
	if opts.UseTouchMode != nil {
		useTouch = *opts.UseTouchMode
	}

	r := host.Bounds()
	canvas, err := render.NewCanvas(int(r.Width), int(r.Height))
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	b := &Board{
		host:   host,
		canvas: canvas,
		curve:  render.NewCurveRenderer(canvas, opts.MaxLineWidth),
		guides: render.Guides{Enabled: opts.ShowGuides},
		ctrl:   input.NewController(),
		color:  opts.Color,
	}
	if err := b.ResizeSurface(); err != nil {
		return nil, err
	}
	b.SetInputMode(useTouch)
	return b, nil
}

// On registers fn for events of type typ.
func (b *Board) On(typ EventType, fn Listener) {
	b.listeners.add(typ, fn)
}

// OnAny registers fn for every event.
func (b *Board) OnAny(fn Listener) {
	b.listeners.all = append(b.listeners.all, fn)
}

// Dispatch delivers a raw host event to the bound listener. It returns
// false when the event type is not bound in the current mode.
func (b *Board) Dispatch(ev input.Event) bool {
	return b.ctrl.Dispatch(ev)
}

// ChangeColor sets the color of subsequently captured points.
func (b *Board) ChangeColor(c string) {
	b.color = c
	b.log("Color changed to "+c, nil)
}

// SetInputMode rebinds the listeners for touch or pointer input. A stroke
// in progress is committed before the new listeners are bound.
func (b *Board) SetInputMode(useTouch bool) {
	mode := input.ModeFor(useTouch)
	b.ctrl.Switch(mode, input.Handlers{
		Start: b.drawStart,
		Move:  b.drawMove,
		End:   b.drawEnd,
	}, b.endStroke)
	b.log("Drawall set to "+mode.String(), nil)
}

// ResizeSurface re-measures the host and resets the pixel buffer to match.
// This erases the visible strokes; History keeps them.
func (b *Board) ResizeSurface() error {
	r := b.host.Bounds()
	w, h := int(r.Width), int(r.Height)
	if err := b.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	b.normalizer.SetOrigin(r)
	b.log(fmt.Sprintf("Resized canvas to %dx%d", w, h), nil)
	b.drawGuides()
	return nil
}

// Clear wipes the pixels and redraws the guides. History is untouched.
func (b *Board) Clear() {
	b.canvas.Clear()
	b.drawGuides()
}

// Undo drops the most recent committed stroke and repaints the remaining
// ones, then the stroke in progress. It does nothing when History is empty.
func (b *Board) Undo() {
	if b.history.Len() == 0 {
		return
	}
	b.Clear()
	b.history.Pop()
	for _, s := range b.history.Strokes() {
		b.curve.Replay(&b.scratch, s.Points)
	}
	// The stroke in progress is repainted too; the pen ends where live
	// rendering left it.
	b.curve.Replay(&b.scratch, b.live.Points())
	b.log("Undo", map[string]any{"strokes": b.history.Len()})
}

func (b *Board) drawStart(ev input.Event) {
	if b.drawing {
		b.endStroke()
	}
	p, ok := b.capture(ev)
	if !ok {
		return
	}
	b.drawing = true
	b.live.Append(p)
	b.log("Start drawing", nil)
	b.emit(Event{Type: DrawStart, Point: &p})
}

func (b *Board) drawMove(ev input.Event) {
	if !b.drawing {
		return
	}
	p, ok := b.capture(ev)
	if !ok {
		return
	}
	b.live.Append(p)
	b.curve.Render(&b.live)
	b.log("Drawing", nil)
	b.emit(Event{Type: DrawMove, Point: &p})
}

func (b *Board) drawEnd(input.Event) {
	b.endStroke()
}

// endStroke moves the live buffer into History. Without a stroke in
// progress there is nothing to commit.
func (b *Board) endStroke() {
	if !b.drawing {
		return
	}
	b.drawing = false
	s := b.history.Commit(b.live.Take())
	b.log("End drawing", map[string]any{"id": s.ID, "points": s.Len()})
	b.emit(Event{Type: DrawEnd})
}

func (b *Board) capture(ev input.Event) (state.Point, bool) {
	p, ok := b.normalizer.Normalize(b.ctrl.Mode(), ev, b.color)
	if !ok {
		logx.Logger().Debug("board: event without coordinates", "event", ev.Name())
		return p, false
	}
	b.log(fmt.Sprintf("x: %v, y: %v, w: %v", p.X, p.Y, p.W), map[string]float64{"x": p.X, "y": p.Y, "w": p.W})
	return p, true
}

func (b *Board) drawGuides() {
	w, h := b.canvas.Size()
	b.guides.Draw(b.canvas, float64(w), float64(h))
}

func (b *Board) log(msg string, data any) {
	if data != nil {
		logx.Logger().Debug(msg, "data", data)
	} else {
		logx.Logger().Debug(msg)
	}
	b.emit(Event{Type: Log, Log: &LogDetail{Message: msg, Data: data}})
}

func (b *Board) emit(ev Event) {
	ev.Seq = b.clock.Tick()
	b.listeners.call(ev)
}

// History returns the committed strokes, oldest first.
func (b *Board) History() []state.Stroke {
	return b.history.Strokes()
}

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool { return b.drawing }

// LiveLen is the number of points in the stroke in progress.
func (b *Board) LiveLen() int { return b.live.Len() }

func (b *Board) Mode() input.Mode { return b.ctrl.Mode() }

// TouchAction is the gesture suppression flag for the host surface.
func (b *Board) TouchAction() string { return b.ctrl.TouchAction() }

func (b *Board) Color() string { return b.color }

// Size is the pixel size of the surface.
func (b *Board) Size() (int, int) { return b.canvas.Size() }

// Image returns a snapshot of the surface pixels.
func (b *Board) Image() image.Image { return b.canvas.Image() }
