package state

// Brush width limits. The width on the Pen is the only brush-width source;
// every toolbar control reads and writes it.
const (
	MinBrushWidth = 1
	MaxBrushWidth = 10
)

// BrushSizes are the discrete widths offered next to the slider.
var BrushSizes = []int{1, 2, 5, 10}

// Pen holds the active drawing parameters.
type Pen struct {
	Color  RGB
	Width  int
	Eraser bool

	// saved is the colour that was active when the eraser was switched on.
	saved RGB
}

func NewPen(c RGB, width int) *Pen {
	p := &Pen{Color: c}
	p.SetWidth(width)
	return p
}

// SetColor picks a new paint colour. Picking a colour always means painting,
// so an active eraser is switched off without restoring the saved colour.
func (p *Pen) SetColor(c RGB) {
	p.Color = c
	p.Eraser = false
}

// SetWidth clamps w to [MinBrushWidth, MaxBrushWidth].
func (p *Pen) SetWidth(w int) {
	if w < MinBrushWidth {
		w = MinBrushWidth
	}
	if w > MaxBrushWidth {
		w = MaxBrushWidth
	}
	p.Width = w
}

// ToggleEraser switches the eraser on or off. The pen colour is saved when the
// eraser turns on and restored when it turns off, so two toggles are a no-op.
func (p *Pen) ToggleEraser() bool {
	if p.Eraser {
		p.Color = p.saved
		p.Eraser = false
	} else {
		p.saved = p.Color
		p.Eraser = true
	}
	return p.Eraser
}

// Effective is the colour strokes are painted with. With the eraser on that is
// the canvas background, so erasing is plain painting.
func (p *Pen) Effective(background RGB) RGB {
	if p.Eraser {
		return background
	}
	return p.Color
}
