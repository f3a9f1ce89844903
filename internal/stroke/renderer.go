package stroke

import (
	"image"

	"SketchPad/internal/state"
)

// Renderer turns a stream of pointer positions into connected segments on a
// canvas. It keeps only the current anchor; segments are painted and dropped.
type Renderer struct {
	canvas *state.Canvas
	anchor state.Point
	active bool
}

func NewRenderer(c *state.Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Begin records p as the anchor of a new stroke. Nothing is painted.
func (r *Renderer) Begin(p state.Point) {
	r.anchor = p
	r.active = true
}

// Continue paints a segment from the anchor to p and moves the anchor there.
// Without an anchor it does nothing and returns an empty rectangle.
func (r *Renderer) Continue(p state.Point, color state.RGB, width int) image.Rectangle {
	if !r.active {
		return image.Rectangle{}
	}
	dirty := Rasterize(r.canvas, Segment{From: r.anchor, To: p, Color: color, Width: width})
	r.anchor = p
	return dirty
}

// End drops the anchor. Continue is a no-op until the next Begin.
func (r *Renderer) End() {
	r.active = false
}

func (r *Renderer) Active() bool { return r.active }

// Anchor returns the current anchor and whether one exists.
func (r *Renderer) Anchor() (state.Point, bool) {
	return r.anchor, r.active
}
