package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/state"
)

var surroundColor = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xcc, A: 0xff}

// BoardWidget shows the canvas buffer and feeds mouse input to the
// controller. It never draws strokes itself: the picture on screen is the
// raster buffer, refreshed after every change.
type BoardWidget struct {
	widget.BaseWidget
	ctrl  *Controller
	image *canvas.Image
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *Controller) *BoardWidget {
	b := &BoardWidget{ctrl: ctrl}
	b.image = canvas.NewImageFromImage(ctrl.Canvas.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.fitImage()
	b.ExtendBaseWidget(b)
	return b
}

// fitImage sizes the image so one unit is one canvas pixel.
func (b *BoardWidget) fitImage() {
	size := fyne.NewSize(float32(b.ctrl.Canvas.Width()), float32(b.ctrl.Canvas.Height()))
	b.image.SetMinSize(size)
	b.image.Resize(size)
}

// Redraw pushes the current buffer contents to the screen.
func (b *BoardWidget) Redraw() {
	b.image.Refresh()
}

// CanvasResized picks up the new buffer after a resize.
func (b *BoardWidget) CanvasResized() {
	b.image.Image = b.ctrl.Canvas.Image()
	b.fitImage()
	b.Refresh()
}

// toCanvas converts a widget position to canvas pixel coordinates.
func toCanvas(pos fyne.Position) state.Point {
	return state.Pt(int(math.Floor(float64(pos.X))), int(math.Floor(float64(pos.Y))))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.ctrl.PointerPressed(toCanvas(e.Position))
	case desktop.MouseButtonSecondary:
		b.ctrl.PickColorAt(toCanvas(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.ctrl.PointerReleased()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.PointerMoved(toCanvas(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.ctrl.PointerReleased()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(surroundColor)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

// Layout pins the image to the top-left corner at its pixel size, whatever
// space the widget is given, so pointer positions map straight to pixels.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.board.image.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.image.MinSize()
}

func (r *boardWidgetRenderer) Refresh() {
	r.Layout(r.board.Size())
	r.background.Refresh()
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
