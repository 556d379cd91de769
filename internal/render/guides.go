package render

import (
	"fmt"
	"math"
	"strconv"
)

// Guides draws centerlines and coordinate labels over the surface. They
// are never part of the stroke history.
type Guides struct {
	Enabled bool
}

// Draw paints the overlay for a w x h surface. Disabled guides draw nothing.
func (g Guides) Draw(p Pen, w, h float64) {
	if !g.Enabled {
		return
	}
	p.SetStrokeColor("#f00")
	p.SetLineWidth(0.5)
	p.BeginPath()
	p.MoveTo(0, h/2)
	p.LineTo(w, h/2)
	p.Stroke()
	p.BeginPath()
	p.MoveTo(w/2, 0)
	p.LineTo(w/2, h)
	p.Stroke()

	p.FillText("0,0", 0, 12, "#000")
	p.FillText(fmt.Sprintf("%d,%d", int(math.Round(w/2)), int(math.Round(h/2))), w/2, h/2, "#000")
	p.FillText(num(w)+","+num(h), w-30, h-5, "#000")
	p.BeginPath()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
