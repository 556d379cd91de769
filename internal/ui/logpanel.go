package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"Drawall/internal/board"
)

// logLines is how many entries the panel keeps.
const logLines = 50

// LogPanel shows the newest board events first.
type LogPanel struct {
	label  *widget.Label
	scroll *container.Scroll
	lines  []string
	max    int
}

func NewLogPanel(max int) *LogPanel {
	if max <= 0 {
		max = logLines
	}
	p := &LogPanel{label: widget.NewLabel(""), max: max}
	p.label.TextStyle = fyne.TextStyle{Monospace: true}
	p.scroll = container.NewVScroll(p.label)
	p.scroll.SetMinSize(fyne.NewSize(260, 0))
	return p
}

// Add puts msg on top and drops the oldest entries beyond the limit.
func (p *LogPanel) Add(msg string) {
	p.lines = append([]string{msg}, p.lines...)
	if len(p.lines) > p.max {
		p.lines = p.lines[:p.max]
	}
	p.label.SetText(strings.Join(p.lines, "\n"))
}

func (p *LogPanel) Lines() []string {
	return append([]string(nil), p.lines...)
}

func (p *LogPanel) Object() fyne.CanvasObject {
	return p.scroll
}

// Attach shows the events of b in the panel.
func (p *LogPanel) Attach(b *board.Board) {
	b.OnAny(func(ev board.Event) {
		p.Add(formatEvent(ev))
	})
}

func formatEvent(ev board.Event) string {
	switch ev.Type {
	case board.DrawStart, board.DrawMove:
		data, _ := json.Marshal(ev.Point)
		return fmt.Sprintf("%s: %s", ev.Type, data)
	case board.Log:
		return "drawall: " + ev.Log.Message
	}
	return string(ev.Type)
}
