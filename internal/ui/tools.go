package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/state"
)

// palette is the row of quick colour swatches.
var palette = []state.RGB{
	state.Black,
	{R: 255},         // Red
	{G: 255},         // Green
	{B: 255},         // Blue
	{R: 255, G: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.RGB
	OnTapped func(state.RGB)
}

func newColorSwatch(c state.RGB, tapped func(state.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls above the board. Brush width has one source,
// the controller's Pen; the size menu and the slider are both redrawn from it
// in SyncPen so they cannot disagree.
type Toolbar struct {
	ctrl *Controller

	Preview *canvas.Rectangle
	Sizes   *widget.Select
	Slider  *widget.Slider
	Eraser  *widget.Button
	Status  *widget.Label

	object fyne.CanvasObject
}

func NewToolbar(ctrl *Controller) *Toolbar {
	t := &Toolbar{ctrl: ctrl}

	clearButton := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), ctrl.Clear)
	choose := widget.NewButtonWithIcon("Colour", theme.ColorPaletteIcon(), ctrl.ChooseColor)
	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), ctrl.Save)
	resize := widget.NewButtonWithIcon("Resize", theme.ViewFullScreenIcon(), ctrl.Resize)
	t.Eraser = widget.NewButtonWithIcon("Eraser", theme.DeleteIcon(), ctrl.ToggleEraser)

	// --- Color Palette ---
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, ctrl.SetColor))
	}
	t.Preview = canvas.NewRectangle(ctrl.Pen.Effective(ctrl.Canvas.Background()))
	t.Preview.SetMinSize(fyne.NewSize(40, 30))
	t.Preview.StrokeColor = color.Gray{Y: 150}
	t.Preview.StrokeWidth = 1

	// --- Brush width ---
	sizes := make([]string, len(state.BrushSizes))
	for i, s := range state.BrushSizes {
		sizes[i] = strconv.Itoa(s)
	}
	t.Sizes = widget.NewSelect(sizes, func(s string) {
		if w, err := strconv.Atoi(s); err == nil {
			ctrl.SetBrushWidth(w)
		}
	})
	t.Slider = widget.NewSlider(state.MinBrushWidth, state.MaxBrushWidth)
	t.Slider.Step = 1
	t.Slider.OnChanged = func(v float64) {
		ctrl.SetBrushWidth(int(v))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.Slider)

	t.Status = widget.NewLabel("")

	t.object = container.NewHBox(
		clearButton, choose, save,
		widget.NewSeparator(),
		widget.NewLabel("Colour:"),
		swatches,
		t.Preview,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		t.Sizes,
		sliderContainer,
		t.Eraser,
		widget.NewSeparator(),
		resize,
		layout.NewSpacer(),
	)

	t.SyncPen(*ctrl.Pen)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

// SyncPen redraws every pen control from pen.
func (t *Toolbar) SyncPen(pen state.Pen) {
	t.Preview.FillColor = pen.Effective(t.ctrl.Canvas.Background())
	t.Preview.Refresh()

	if t.Slider.Value != float64(pen.Width) {
		t.Slider.SetValue(float64(pen.Width))
	}
	label := strconv.Itoa(pen.Width)
	if t.Sizes.Selected != label {
		t.Sizes.ClearSelected()
		for _, s := range t.Sizes.Options {
			if s == label {
				t.Sizes.SetSelected(label)
			}
		}
	}

	if pen.Eraser {
		t.Eraser.Importance = widget.HighImportance
	} else {
		t.Eraser.Importance = widget.MediumImportance
	}
	t.Eraser.Refresh()
	t.updateStatus()
}

func (t *Toolbar) updateStatus() {
	pen := t.ctrl.Pen
	tool := "pen " + pen.Color.Hex()
	if pen.Eraser {
		tool = "eraser"
	}
	t.Status.SetText(fmt.Sprintf("%s, width %d, canvas %dx%d",
		tool, pen.Width, t.ctrl.Canvas.Width(), t.ctrl.Canvas.Height()))
}

// SyncCanvas refreshes the status line after a resize.
func (t *Toolbar) SyncCanvas() {
	t.updateStatus()
}
