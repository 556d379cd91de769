package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"Drawall/internal/logx"
)

// ErrInvalidSize is returned for surfaces without a positive area.
var ErrInvalidSize = errors.New("render: invalid surface size")

// labelSize is the point size of guide labels.
const labelSize = 8

// Pen is the path drawing API the curve renderer and the guide overlay
// paint through. Paths are canvas-like: BeginPath drops the current path,
// Stroke paints it.
type Pen interface {
	SetStrokeColor(c string)
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	LineTo(x, y float64)
	Stroke()
	FillText(s string, x, y float64, c string)
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
)

func labelFace() text.Face {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			logx.Logger().Warn("render: label font unavailable", "err", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	return fontSource.Face(labelSize)
}

// Canvas is a raster drawing surface backed by the gg software renderer.
type Canvas struct {
	dc     *gg.Context
	stroke color.Color
}

var _ Pen = (*Canvas)(nil)

// NewCanvas allocates a transparent w x h surface.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new canvas %dx%d: %w", w, h, ErrInvalidSize)
	}
	c := &Canvas{dc: gg.NewContext(w, h), stroke: color.Black}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.dc.SetFont(labelFace())
	return c, nil
}

// Resize resets the backing pixels to w x h. Content is always cleared,
// even when the size does not change.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize canvas %dx%d: %w", w, h, ErrInvalidSize)
	}
	if err := c.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	c.Clear()
	return nil
}

// Clear wipes every pixel to transparent and drops the current path.
func (c *Canvas) Clear() {
	c.dc.Clear()
	c.dc.ClearPath()
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Image returns a snapshot of the pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SetStrokeColor sets the stroke color. Unparseable colors are ignored and
// the previous color stays active.
func (c *Canvas) SetStrokeColor(s string) {
	col, ok := ParseColor(s)
	if !ok {
		logx.Logger().Debug("render: ignoring color", "color", s)
		return
	}
	c.stroke = col
}

func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// QuadraticTo starts at the control point when the path is empty.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	if _, _, ok := c.dc.GetCurrentPoint(); !ok {
		c.dc.MoveTo(cx, cy)
	}
	c.dc.QuadraticTo(cx, cy, x, y)
}

// LineTo behaves like MoveTo when the path is empty.
func (c *Canvas) LineTo(x, y float64) {
	if _, _, ok := c.dc.GetCurrentPoint(); !ok {
		c.dc.MoveTo(x, y)
		return
	}
	c.dc.LineTo(x, y)
}

// Stroke paints the current path with the stroke color and clears it.
func (c *Canvas) Stroke() {
	c.dc.SetColor(c.stroke)
	if err := c.dc.Stroke(); err != nil {
		logx.Logger().Warn("render: stroke failed", "err", err)
	}
}

// FillText draws s with its baseline at y. The current path is kept.
func (c *Canvas) FillText(s string, x, y float64, fill string) {
	col, ok := ParseColor(fill)
	if !ok {
		col = color.Black
	}
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}
