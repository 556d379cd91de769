package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"Drawall/internal/board"
	"Drawall/internal/input"
	"Drawall/internal/logx"
)

// mousePressure is the pressure a mouse reports while a button is held.
const mousePressure = 0.5

// BoardWidget shows a board and feeds it the window's mouse and touch
// events. It is also the board's Host: it measures itself.
type BoardWidget struct {
	widget.BaseWidget
	board   *board.Board
	image   *canvas.Image
	initial fyne.Size
	lastPos fyne.Position
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)
var _ board.Host = (*BoardWidget)(nil)

// NewBoardWidget creates the widget and its board. size is used until the
// widget is laid out for the first time.
func NewBoardWidget(opts board.Options, size fyne.Size) (*BoardWidget, error) {
	w := &BoardWidget{initial: size}
	w.ExtendBaseWidget(w)
	b, err := board.New(w, opts)
	if err != nil {
		return nil, err
	}
	w.board = b
	w.image = canvas.NewImageFromImage(b.Image())
	w.image.FillMode = canvas.ImageFillStretch
	w.image.ScaleMode = canvas.ImageScalePixels
	return w, nil
}

// Board returns the drawing core behind the widget.
func (w *BoardWidget) Board() *board.Board {
	return w.board
}

// Bounds implements board.Host.
func (w *BoardWidget) Bounds() input.Rect {
	size := w.Size()
	if size.IsZero() {
		size = w.initial
	}
	var pos fyne.Position
	if a := fyne.CurrentApp(); a != nil && a.Driver() != nil {
		pos = a.Driver().AbsolutePositionForObject(w)
	}
	return input.Rect{
		Left:   float64(pos.X),
		Top:    float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

func (w *BoardWidget) Resize(size fyne.Size) {
	if size == w.Size() {
		return
	}
	w.BaseWidget.Resize(size)
	if w.board == nil {
		return
	}
	if err := w.board.ResizeSurface(); err != nil {
		logx.Logger().Warn("ui: resize failed", "err", err)
		return
	}
	w.repaint()
}

// ChangeColor, SetInputMode, Undo and Clear forward to the board and
// repaint.

func (w *BoardWidget) ChangeColor(c string) {
	w.board.ChangeColor(c)
}

func (w *BoardWidget) SetInputMode(useTouch bool) {
	w.board.SetInputMode(useTouch)
	w.repaint()
}

func (w *BoardWidget) Undo() {
	w.board.Undo()
	w.repaint()
}

func (w *BoardWidget) Clear() {
	w.board.Clear()
	w.repaint()
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.pointer(input.KindStart, e.AbsolutePosition, mousePressure)
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.pointer(input.KindEnd, e.AbsolutePosition, 0)
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved also sees the first small moves of a held button, before the
// driver starts reporting them as drags.
func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	pressure := 0.0
	if e.Button == desktop.MouseButtonPrimary {
		pressure = mousePressure
	}
	w.pointer(input.KindMove, e.AbsolutePosition, pressure)
}

func (w *BoardWidget) MouseOut() {
	w.pointer(input.KindLeave, w.lastPos, 0)
}

// Dragged carries the moves of a held mouse button and of a finger.
func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.board.Mode() == input.TouchMode {
		w.touch(input.KindMove, e.AbsolutePosition)
		return
	}
	w.pointer(input.KindMove, e.AbsolutePosition, mousePressure)
}

func (w *BoardWidget) DragEnd() {}

func (w *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	w.finger(input.KindStart, e.AbsolutePosition)
}

func (w *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	w.finger(input.KindEnd, e.AbsolutePosition)
}

func (w *BoardWidget) TouchCancel(e *mobile.TouchEvent) {
	w.finger(input.KindCancel, e.AbsolutePosition)
}

func (w *BoardWidget) pointer(kind input.Kind, pos fyne.Position, pressure float64) {
	w.lastPos = pos
	w.dispatch(input.PointerInput{
		Type:     kind,
		ClientX:  float64(pos.X),
		ClientY:  float64(pos.Y),
		Pressure: pressure,
	})
}

// touch reports a single contact; fyne does not expose touch force.
func (w *BoardWidget) touch(kind input.Kind, pos fyne.Position) {
	w.lastPos = pos
	w.dispatch(input.TouchInput{
		Type:    kind,
		Touches: []input.Contact{{ClientX: float64(pos.X), ClientY: float64(pos.Y)}},
	})
}

// finger reports a contact as a touch event and as a pointer event, like a
// touch screen does. Only the family bound in the current mode is handled.
func (w *BoardWidget) finger(kind input.Kind, pos fyne.Position) {
	if kind == input.KindStart {
		w.touch(kind, pos)
	} else {
		w.dispatch(input.TouchInput{Type: kind})
	}
	w.pointer(kind, pos, mousePressure)
}

func (w *BoardWidget) dispatch(ev input.Event) {
	drawing := w.board.Drawing()
	if !w.board.Dispatch(ev) {
		return
	}
	if drawing || w.board.Drawing() {
		w.repaint()
	}
}

func (w *BoardWidget) repaint() {
	if w.image == nil {
		return
	}
	w.image.Image = w.board.Image()
	canvas.Refresh(w.image)
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.White)
	return widget.NewSimpleRenderer(container.NewStack(background, w.image))
}

func (w *BoardWidget) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
