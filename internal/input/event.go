package input

// Kind is the lifecycle role of a raw input event.
type Kind int

const (
	KindStart Kind = iota
	KindMove
	KindEnd
	KindCancel
	KindLeave
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindMove:
		return "move"
	case KindEnd:
		return "end"
	case KindCancel:
		return "cancel"
	case KindLeave:
		return "leave"
	}
	return "unknown"
}

// Event is a raw event delivered by the host. Only TouchInput and
// PointerInput implement it.
type Event interface {
	// Name is the listener name the event is delivered under, e.g. "pointerdown".
	Name() string
	Kind() Kind
	variant()
}

// Rect is a rectangle in client coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contact is one finger on a touch surface. Force is 0 (or NaN) when the
// device does not report it.
type Contact struct {
	ClientX float64
	ClientY float64
	Force   float64
}

// TouchInput is a touch event. Touches lists the active contacts, first
// contact first; end events usually carry none.
type TouchInput struct {
	Type    Kind
	Touches []Contact
}

var touchNames = map[Kind]string{
	KindStart:  "touchstart",
	KindMove:   "touchmove",
	KindEnd:    "touchend",
	KindCancel: "touchcancel",
	KindLeave:  "touchleave",
}

func (e TouchInput) Name() string { return touchNames[e.Type] }
func (e TouchInput) Kind() Kind   { return e.Type }
func (TouchInput) variant()       {}

// PointerInput is a pointer (mouse, pen, touch-as-pointer) event.
// Pressure is in [0, 1]; NaN means the device reports none.
type PointerInput struct {
	Type     Kind
	ClientX  float64
	ClientY  float64
	Pressure float64
}

var pointerNames = map[Kind]string{
	KindStart:  "pointerdown",
	KindMove:   "pointermove",
	KindEnd:    "pointerup",
	KindCancel: "pointercancel",
	KindLeave:  "pointerleave",
}

func (e PointerInput) Name() string { return pointerNames[e.Type] }
func (e PointerInput) Kind() Kind   { return e.Type }
func (PointerInput) variant()       {}
