package input

// Handler receives a raw event from a bound listener.
type Handler func(Event)

// Handlers maps stroke lifecycle operations to the board. End also
// receives cancel and leave events.
type Handlers struct {
	Start Handler
	Move  Handler
	End   Handler
}

type binding struct {
	name string
	kind Kind
}

var touchBindings = []binding{
	{"touchstart", KindStart},
	{"touchmove", KindMove},
	{"touchend", KindEnd},
	{"touchcancel", KindCancel},
	{"touchleave", KindLeave},
}

var pointerBindings = []binding{
	{"pointerdown", KindStart},
	{"pointermove", KindMove},
	{"pointerup", KindEnd},
	{"pointercancel", KindCancel},
	{"pointerleave", KindLeave},
}

// Controller keeps the listener table of one surface and switches it
// between touch and pointer listeners.
type Controller struct {
	mode        Mode
	listeners   map[string]Handler
	touchAction string
}

func NewController() *Controller {
	return &Controller{listeners: make(map[string]Handler)}
}

// Switch moves the controller to mode. Every listener of both kinds is
// unbound, terminate runs with nothing bound, then the gesture flag is set
// and the listeners for mode are bound.
func (c *Controller) Switch(mode Mode, h Handlers, terminate func()) {
	c.unbind(touchBindings)
	c.unbind(pointerBindings)
	if terminate != nil {
		terminate()
	}
	c.mode = mode
	if mode == TouchMode {
		c.touchAction = "none"
	} else {
		c.touchAction = ""
	}
	if mode == TouchMode {
		c.bind(touchBindings, h)
	} else {
		c.bind(pointerBindings, h)
	}
}

// Dispatch delivers ev to the listener bound under its name. It returns
// false when nothing is bound, in which case the event is dropped.
func (c *Controller) Dispatch(ev Event) bool {
	fn, ok := c.listeners[ev.Name()]
	if !ok {
		return false
	}
	fn(ev)
	return true
}

// Bound reports whether a listener is bound under name.
func (c *Controller) Bound(name string) bool {
	_, ok := c.listeners[name]
	return ok
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// TouchAction is the gesture suppression flag: "none" while native touch
// gestures are suppressed, "" for the platform default.
func (c *Controller) TouchAction() string {
	return c.touchAction
}

func (c *Controller) bind(bs []binding, h Handlers) {
	for _, b := range bs {
		var fn Handler
		switch b.kind {
		case KindStart:
			fn = h.Start
		case KindMove:
			fn = h.Move
		default:
			fn = h.End
		}
		if fn != nil {
			c.listeners[b.name] = fn
		}
	}
}

// unbind is a no-op for names that are not bound.
func (c *Controller) unbind(bs []binding) {
	for _, b := range bs {
		delete(c.listeners, b.name)
	}
}
