package input

import (
	"math"

	"Drawall/internal/state"
)

// DefaultWeight is used when a touch device reports no usable force.
const DefaultWeight = 0.2

// Normalizer turns raw events into surface-local points. The origin is the
// surface's top-left corner in client space, cached at the last resize.
type Normalizer struct {
	origin Rect
}

// SetOrigin caches the surface rectangle measured at resize.
func (n *Normalizer) SetOrigin(r Rect) {
	n.origin = r
}

// Normalize extracts one point from ev using the extraction rule of mode.
// It returns false when the event has no usable coordinates.
func (n *Normalizer) Normalize(mode Mode, ev Event, color string) (state.Point, bool) {
	switch mode {
	case TouchMode:
		t, ok := ev.(TouchInput)
		if !ok {
			return state.Point{}, false
		}
		return n.touchPoint(t, color)
	default:
		p, ok := ev.(PointerInput)
		if !ok {
			return state.Point{}, false
		}
		return n.pointerPoint(p, color)
	}
}

func (n *Normalizer) touchPoint(ev TouchInput, color string) (state.Point, bool) {
	if len(ev.Touches) == 0 {
		return state.Point{}, false
	}
	c := ev.Touches[0]
	if math.IsNaN(c.ClientX) || math.IsNaN(c.ClientY) {
		return state.Point{}, false
	}
	return state.NewPoint(c.ClientX-n.origin.Left, c.ClientY-n.origin.Top, TouchWeight(c.Force), color), true
}

func (n *Normalizer) pointerPoint(ev PointerInput, color string) (state.Point, bool) {
	if math.IsNaN(ev.ClientX) || math.IsNaN(ev.ClientY) {
		return state.Point{}, false
	}
	return state.NewPoint(ev.ClientX-n.origin.Left, ev.ClientY-n.origin.Top, PointerWeight(ev.Pressure), color), true
}

// TouchWeight maps a touch force to a weight: ln(force+1), or DefaultWeight
// when that comes out zero or undefined.
func TouchWeight(force float64) float64 {
	w := math.Log(force + 1)
	if w == 0 || math.IsNaN(w) {
		return DefaultWeight
	}
	return clampWeight(w)
}

// PointerWeight maps a pointer pressure to ln(pressure+1). A missing
// pressure (NaN) gets DefaultWeight.
func PointerWeight(pressure float64) float64 {
	if math.IsNaN(pressure) {
		return DefaultWeight
	}
	return clampWeight(math.Log(pressure + 1))
}

// clampWeight keeps weights non-negative. There is no upper bound.
func clampWeight(w float64) float64 {
	if w < 0 || math.IsNaN(w) {
		return 0
	}
	return w
}
