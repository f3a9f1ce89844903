package stroke

import (
	"fmt"
	"image"
	"math"

	"SketchPad/internal/state"
)

// Segment is one straight piece of a freehand stroke.
type Segment struct {
	From, To state.Point
	Color    state.RGB
	Width    int
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v %s w=%d", s.From, s.To, s.Color, s.Width)
}

// Bounds is the rectangle the segment can touch, before clipping.
func (s Segment) Bounds() image.Rectangle {
	pad := int(math.Ceil(s.radius()))
	r := image.Rect(s.From.X, s.From.Y, s.To.X, s.To.Y) // canonicalised
	return image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad+1, r.Max.Y+pad+1)
}

func (s Segment) radius() float64 {
	w := s.Width
	if w < state.MinBrushWidth {
		w = state.MinBrushWidth
	}
	return float64(w) / 2
}

// Rasterize paints s into c as a capsule: every pixel within width/2 of the
// segment is overwritten, which gives round caps and round joins between
// consecutive segments. The Bresenham centre line is plotted as well so a
// one pixel stroke never breaks on diagonals. It returns the damaged area.
func Rasterize(c *state.Canvas, s Segment) image.Rectangle {
	area := s.Bounds().Intersect(c.Bounds())
	if area.Empty() {
		return image.Rectangle{}
	}

	r := s.radius()
	limit := r*r + 1e-9
	ax, ay := float64(s.From.X), float64(s.From.Y)
	bx, by := float64(s.To.X), float64(s.To.Y)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if distSq(float64(x), float64(y), ax, ay, bx, by) <= limit {
				c.Set(x, y, s.Color)
			}
		}
	}

	line(s.From, s.To, func(x, y int) { c.Set(x, y, s.Color) })
	return area
}

// distSq is the squared distance from (px, py) to the segment a-b.
func distSq(px, py, ax, ay, bx, by float64) float64 {
	abx, aby := bx-ax, by-ay
	apx, apy := px-ax, py-ay
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return apx*apx + apy*apy
	}
	t := (apx*abx + apy*aby) / l2
	t = math.Max(0, math.Min(1, t))
	dx, dy := px-(ax+t*abx), py-(ay+t*aby)
	return dx*dx + dy*dy
}

// line walks the Bresenham line from a to b, endpoints included.
func line(a, b state.Point, plot func(x, y int)) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
