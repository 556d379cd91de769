package board

import "Drawall/internal/state"

// EventType names an event emitted by the board.
type EventType string

const (
	DrawStart EventType = "drawstart"
	DrawMove  EventType = "drawmove"
	DrawEnd   EventType = "drawend"
	Log       EventType = "log"
)

// LogDetail is the payload of a Log event.
type LogDetail struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Event is what listeners receive. Point is set for DrawStart and DrawMove,
// Log for Log events. Seq increases by one per emitted event.
type Event struct {
	Type  EventType    `json:"type"`
	Seq   uint64       `json:"seq"`
	Point *state.Point `json:"point,omitempty"`
	Log   *LogDetail   `json:"log,omitempty"`
}

type Listener func(Event)

// listeners holds the registered listeners per event type, called in
// registration order.
type listeners struct {
	byType map[EventType][]Listener
	all    []Listener
}

func (ls *listeners) add(typ EventType, fn Listener) {
	if ls.byType == nil {
		ls.byType = make(map[EventType][]Listener)
	}
	ls.byType[typ] = append(ls.byType[typ], fn)
}

func (ls *listeners) call(ev Event) {
	for _, fn := range ls.byType[ev.Type] {
		fn(ev)
	}
	for _, fn := range ls.all {
		fn(ev)
	}
}
