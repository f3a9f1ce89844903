package ui

import (
	"errors"
	"fmt"
	"image"
	"log"

	"SketchPad/internal/state"
	"SketchPad/internal/stroke"
)

// Prompter shows the modal dialogs the controller needs. Every done callback
// runs on the UI thread; a dismissed dialog reports state.ErrCancelled.
type Prompter interface {
	ChooseColor(current state.RGB, done func(c state.RGB, err error))
	AskSize(width, height int, done func(width, height int, err error))
	AskSavePath(done func(path string, err error))
	ShowInfo(title, message string)
	ShowError(err error)
}

// Mode is the pointer state of the controller.
type Mode int

const (
	Idle Mode = iota
	Stroking
)

func (m Mode) String() string {
	if m == Stroking {
		return "stroking"
	}
	return "idle"
}

// Controller owns the application state and turns pointer events and
// toolbar commands into canvas operations.
type Controller struct {
	Canvas *state.Canvas
	Pen    *state.Pen

	// Verbose logs every painted segment.
	Verbose bool

	renderer *stroke.Renderer
	clock    *state.StrokeClock
	prompt   Prompter

	mode     Mode
	strokeID string
	segments int

	OnCanvasChanged func(dirty image.Rectangle)
	OnCanvasResized func(width, height int)
	OnPenChanged    func(pen state.Pen)
	OnSaved         func(path string)
}

func NewController(c *state.Canvas, pen *state.Pen, prompt Prompter) *Controller {
	return &Controller{
		Canvas:   c,
		Pen:      pen,
		renderer: stroke.NewRenderer(c),
		clock:    state.NewStrokeClock(),
		prompt:   prompt,
	}
}

func (c *Controller) Mode() Mode { return c.mode }

// Session is the id prefix shared by every stroke id of this run.
func (c *Controller) Session() string { return c.clock.Session() }

// PointerPressed starts a stroke at p.
func (c *Controller) PointerPressed(p state.Point) {
	c.renderer.Begin(p)
	c.mode = Stroking
	c.strokeID = c.clock.Next()
	c.segments = 0
	if c.Verbose {
		log.Printf("[STROKE] %s begin at %v", c.strokeID, p)
	}
}

// PointerMoved extends the current stroke to p. Ignored while idle.
func (c *Controller) PointerMoved(p state.Point) {
	if c.mode != Stroking {
		return
	}
	color := c.Pen.Effective(c.Canvas.Background())
	dirty := c.renderer.Continue(p, color, c.Pen.Width)
	c.segments++
	if c.Verbose {
		log.Printf("[STROKE] %s segment to %v %s w=%d", c.strokeID, p, color, c.Pen.Width)
	}
	if !dirty.Empty() {
		c.canvasChanged(dirty)
	}
}

// PointerReleased ends the current stroke. Ignored while idle.
func (c *Controller) PointerReleased() {
	if c.mode != Stroking {
		return
	}
	c.renderer.End()
	c.mode = Idle
	log.Printf("[STROKE] %s done, %d segments", c.strokeID, c.segments)
}

// PickColorAt makes the canvas colour under p the pen colour. Outside the
// canvas the pen is left alone and state.ErrOutOfBounds is returned.
func (c *Controller) PickColorAt(p state.Point) error {
	rgb, err := c.Canvas.At(p.X, p.Y)
	if err != nil {
		log.Printf("[UI] Colour pick ignored: %v", err)
		return err
	}
	log.Printf("[UI] Picked %s from canvas at %v", rgb, p)
	c.SetColor(rgb)
	return nil
}

// ChooseColor asks the user for a pen colour.
func (c *Controller) ChooseColor() {
	c.prompt.ChooseColor(c.Pen.Color, func(rgb state.RGB, err error) {
		if err != nil {
			log.Printf("[UI] Colour dialog: %v", err)
			return
		}
		c.SetColor(rgb)
	})
}

func (c *Controller) SetColor(rgb state.RGB) {
	c.Pen.SetColor(rgb)
	log.Printf("[UI] Pen colour %s", rgb)
	c.penChanged()
}

func (c *Controller) SetBrushWidth(w int) {
	if w == c.Pen.Width {
		return
	}
	c.Pen.SetWidth(w)
	log.Printf("[UI] Brush width %d", c.Pen.Width)
	c.penChanged()
}

func (c *Controller) ToggleEraser() {
	on := c.Pen.ToggleEraser()
	log.Printf("[UI] Eraser on=%v, pen colour %s", on, c.Pen.Color)
	c.penChanged()
}

func (c *Controller) Clear() {
	c.endStroke()
	c.Canvas.Clear()
	c.canvasChanged(c.Canvas.Bounds())
}

// Resize asks for a new canvas size. Cancelling or entering a non-positive
// size leaves the canvas as it was.
func (c *Controller) Resize() {
	c.prompt.AskSize(c.Canvas.Width(), c.Canvas.Height(), func(w, h int, err error) {
		if err != nil {
			log.Printf("[UI] Resize dialog: %v", err)
			return
		}
		if err := c.ResizeTo(w, h); err != nil {
			log.Printf("[UI] Resize rejected: %v", err)
		}
	})
}

func (c *Controller) ResizeTo(w, h int) error {
	if err := c.Canvas.Resize(w, h); err != nil {
		return err
	}
	c.endStroke()
	if c.OnCanvasResized != nil {
		c.OnCanvasResized(w, h)
	}
	c.canvasChanged(c.Canvas.Bounds())
	return nil
}

// Save asks for a destination and writes the canvas there. The outcome is
// always reported to the user, except for a cancelled dialog.
func (c *Controller) Save() {
	c.prompt.AskSavePath(func(path string, err error) {
		if errors.Is(err, state.ErrCancelled) {
			log.Printf("[UI] Save cancelled")
			return
		}
		if err != nil {
			c.prompt.ShowError(err)
			return
		}
		written, err := c.SaveTo(path)
		if err != nil {
			c.prompt.ShowError(err)
			return
		}
		c.prompt.ShowInfo("Saved", fmt.Sprintf("Image saved to %s", written))
	})
}

// SaveTo writes the canvas to path, adding .png when missing, and returns
// the path written.
func (c *Controller) SaveTo(path string) (string, error) {
	written, err := c.Canvas.ExportToFile(path)
	if err != nil {
		log.Printf("[UI] Save failed: %v", err)
		return written, err
	}
	if c.OnSaved != nil {
		c.OnSaved(written)
	}
	return written, nil
}

func (c *Controller) endStroke() {
	if c.mode == Stroking {
		c.PointerReleased()
	}
}

func (c *Controller) canvasChanged(dirty image.Rectangle) {
	if c.OnCanvasChanged != nil {
		c.OnCanvasChanged(dirty)
	}
}

func (c *Controller) penChanged() {
	if c.OnPenChanged != nil {
		c.OnPenChanged(*c.Pen)
	}
}
