package ui

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"SketchPad/internal/state"
)

// fakePrompter answers every dialog immediately with canned values.
type fakePrompter struct {
	color    state.RGB
	colorErr error

	width, height int
	sizeErr       error

	path    string
	pathErr error

	infos  []string
	errors []error
}

func (p *fakePrompter) ChooseColor(_ state.RGB, done func(state.RGB, error)) {
	done(p.color, p.colorErr)
}

func (p *fakePrompter) AskSize(_, _ int, done func(int, int, error)) {
	done(p.width, p.height, p.sizeErr)
}

func (p *fakePrompter) AskSavePath(done func(string, error)) {
	done(p.path, p.pathErr)
}

func (p *fakePrompter) ShowInfo(_, message string) { p.infos = append(p.infos, message) }
func (p *fakePrompter) ShowError(err error)        { p.errors = append(p.errors, err) }

func newTestController(t *testing.T) (*Controller, *fakePrompter) {
	t.Helper()
	c, err := state.NewCanvas(600, 400, state.White)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	p := &fakePrompter{}
	return NewController(c, state.NewPen(state.Black, 2), p), p
}

func loadPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode(%s) error = %v", path, err)
	}
	return img
}

func assertPixel(t *testing.T, c *state.Canvas, x, y int, want state.RGB) {
	t.Helper()
	got, err := c.At(x, y)
	if err != nil {
		t.Fatalf("At(%d,%d) error = %v", x, y, err)
	}
	if got != want {
		t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestController_DiagonalStrokeExport(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.SetBrushWidth(3)

	ctrl.PointerPressed(state.Pt(10, 10))
	ctrl.PointerMoved(state.Pt(50, 50))
	ctrl.PointerReleased()

	path, err := ctrl.SaveTo(filepath.Join(t.TempDir(), "diagonal"))
	if err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	img := loadPNG(t, path)
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Fatalf("exported size = %dx%d, want 600x400", b.Dx(), b.Dy())
	}
	for k := 10; k <= 50; k++ {
		if got := state.RGBFromColor(img.At(k, k)); got != state.Black {
			t.Errorf("exported (%d,%d) = %v, want black", k, k, got)
		}
	}
	for _, p := range []image.Point{{0, 0}, {10, 50}, {50, 10}, {300, 300}, {599, 399}, {5, 5}, {55, 55}} {
		if got := state.RGBFromColor(img.At(p.X, p.Y)); got != state.White {
			t.Errorf("exported %v = %v, want white", p, got)
		}
	}
}

func TestController_ExportRoundTrip(t *testing.T) {
	ctrl, _ := newTestController(t)
	strokes := []struct {
		color  state.RGB
		width  int
		points []state.Point
	}{
		{state.RGB{R: 255}, 3, []state.Point{{X: 30, Y: 30}, {X: 90, Y: 45}, {X: 140, Y: 120}, {X: 60, Y: 200}}},
		{state.RGB{G: 180, B: 90}, 8, []state.Point{{X: 400, Y: 50}, {X: 380, Y: 300}, {X: 590, Y: 390}}},
		{state.RGB{R: 17, G: 34, B: 51}, 1, []state.Point{{X: 0, Y: 399}, {X: 599, Y: 0}}},
	}
	for _, s := range strokes {
		ctrl.SetColor(s.color)
		ctrl.SetBrushWidth(s.width)
		ctrl.PointerPressed(s.points[0])
		for _, p := range s.points[1:] {
			ctrl.PointerMoved(p)
		}
		ctrl.PointerReleased()
	}

	path, err := ctrl.SaveTo(filepath.Join(t.TempDir(), "roundtrip.png"))
	if err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	img := loadPNG(t, path)
	if img.Bounds() != ctrl.Canvas.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), ctrl.Canvas.Bounds())
	}
	for y := 0; y < 400; y++ {
		for x := 0; x < 600; x++ {
			want, _ := ctrl.Canvas.At(x, y)
			if got := state.RGBFromColor(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestController_EraseIsExactBackground(t *testing.T) {
	ctrl, _ := newTestController(t)
	red := state.RGB{R: 255}
	ctrl.SetColor(red)
	ctrl.SetBrushWidth(5)
	ctrl.PointerPressed(state.Pt(20, 100))
	ctrl.PointerMoved(state.Pt(200, 100))
	ctrl.PointerReleased()
	assertPixel(t, ctrl.Canvas, 100, 100, red)

	ctrl.ToggleEraser()
	ctrl.PointerPressed(state.Pt(80, 100))
	ctrl.PointerMoved(state.Pt(120, 100))
	ctrl.PointerReleased()

	for x := 80; x <= 120; x++ {
		for y := 98; y <= 102; y++ {
			assertPixel(t, ctrl.Canvas, x, y, state.White)
		}
	}
	assertPixel(t, ctrl.Canvas, 40, 100, red)
	assertPixel(t, ctrl.Canvas, 180, 100, red)

	ctrl.ToggleEraser()
	if ctrl.Pen.Color != red {
		t.Errorf("pen colour after eraser off = %v, want %v", ctrl.Pen.Color, red)
	}
}

func TestController_StateMachine(t *testing.T) {
	ctrl, _ := newTestController(t)
	var changes int
	ctrl.OnCanvasChanged = func(image.Rectangle) { changes++ }

	ctrl.PointerMoved(state.Pt(5, 5))
	ctrl.PointerReleased()
	if ctrl.Mode() != Idle || changes != 0 {
		t.Fatalf("idle move: mode %v, %d changes", ctrl.Mode(), changes)
	}

	ctrl.PointerPressed(state.Pt(5, 5))
	if ctrl.Mode() != Stroking {
		t.Fatalf("Mode() = %v after press, want stroking", ctrl.Mode())
	}
	if changes != 0 {
		t.Errorf("press alone reported %d changes", changes)
	}
	ctrl.PointerMoved(state.Pt(6, 6))
	ctrl.PointerMoved(state.Pt(7, 9))
	if changes != 2 {
		t.Errorf("changes = %d after two moves, want 2", changes)
	}
	ctrl.PointerReleased()
	if ctrl.Mode() != Idle {
		t.Errorf("Mode() = %v after release, want idle", ctrl.Mode())
	}

	ctrl.PointerMoved(state.Pt(300, 300))
	assertPixel(t, ctrl.Canvas, 300, 300, state.White)
}

func TestController_PickColor(t *testing.T) {
	ctrl, _ := newTestController(t)
	green := state.RGB{G: 200}
	ctrl.Canvas.Set(30, 40, green)

	var penChanges int
	ctrl.OnPenChanged = func(state.Pen) { penChanges++ }

	if err := ctrl.PickColorAt(state.Pt(30, 40)); err != nil {
		t.Fatalf("PickColorAt() error = %v", err)
	}
	if ctrl.Pen.Color != green || penChanges != 1 {
		t.Errorf("pen = %v (%d changes), want %v", ctrl.Pen.Color, penChanges, green)
	}

	for _, p := range []state.Point{{X: -1, Y: 0}, {X: 600, Y: 10}, {X: 10, Y: 400}} {
		if err := ctrl.PickColorAt(p); !errors.Is(err, state.ErrOutOfBounds) {
			t.Errorf("PickColorAt(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}
	if ctrl.Pen.Color != green || penChanges != 1 {
		t.Errorf("pen changed by out-of-bounds pick: %v", ctrl.Pen.Color)
	}
}

func TestController_ChooseColor(t *testing.T) {
	ctrl, p := newTestController(t)
	p.color = state.RGB{R: 1, G: 2, B: 3}
	ctrl.ChooseColor()
	if ctrl.Pen.Color != p.color {
		t.Errorf("pen = %v, want %v", ctrl.Pen.Color, p.color)
	}

	p.color, p.colorErr = state.White, state.ErrCancelled
	ctrl.ChooseColor()
	if ctrl.Pen.Color != (state.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("cancelled dialog changed pen to %v", ctrl.Pen.Color)
	}
}

func TestController_Resize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		err           error
		wantW, wantH  int
	}{
		{"confirmed", 320, 240, nil, 320, 240},
		{"cancelled", 320, 240, state.ErrCancelled, 600, 400},
		{"zero width", 0, 240, nil, 600, 400},
		{"negative height", 100, -1, nil, 600, 400},
		{"invalid input", 0, 0, state.ErrInvalidDimensions, 600, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, p := newTestController(t)
			ctrl.Canvas.Set(1, 1, state.Black)
			var resized bool
			ctrl.OnCanvasResized = func(int, int) { resized = true }

			p.width, p.height, p.sizeErr = tt.width, tt.height, tt.err
			ctrl.Resize()

			if w, h := ctrl.Canvas.Width(), ctrl.Canvas.Height(); w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			changed := tt.wantW != 600
			if resized != changed {
				t.Errorf("OnCanvasResized called = %v, want %v", resized, changed)
			}
			if !changed {
				assertPixel(t, ctrl.Canvas, 1, 1, state.Black)
			} else {
				assertPixel(t, ctrl.Canvas, 1, 1, state.White)
			}
		})
	}
}

func TestController_ResizeEndsStroke(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.PointerPressed(state.Pt(500, 300))
	if err := ctrl.ResizeTo(100, 100); err != nil {
		t.Fatalf("ResizeTo() error = %v", err)
	}
	if ctrl.Mode() != Idle {
		t.Errorf("Mode() = %v after resize, want idle", ctrl.Mode())
	}
}

func TestController_Clear(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.PointerPressed(state.Pt(10, 10))
	ctrl.PointerMoved(state.Pt(90, 90))
	ctrl.PointerReleased()
	ctrl.Clear()
	for y := 0; y < ctrl.Canvas.Height(); y += 7 {
		for x := 0; x < ctrl.Canvas.Width(); x += 7 {
			assertPixel(t, ctrl.Canvas, x, y, state.White)
		}
	}
	if ctrl.Canvas.Width() != 600 || ctrl.Canvas.Height() != 400 {
		t.Errorf("size = %dx%d after Clear", ctrl.Canvas.Width(), ctrl.Canvas.Height())
	}
}

func TestController_Save(t *testing.T) {
	dir := t.TempDir()

	t.Run("appends extension", func(t *testing.T) {
		ctrl, p := newTestController(t)
		var saved string
		ctrl.OnSaved = func(path string) { saved = path }
		p.path = filepath.Join(dir, "art")
		ctrl.Save()

		want := filepath.Join(dir, "art.png")
		if saved != want {
			t.Errorf("saved to %q, want %q", saved, want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Errorf("Stat(%q) error = %v", want, err)
		}
		if len(p.infos) != 1 || len(p.errors) != 0 {
			t.Errorf("infos %v errors %v, want one confirmation", p.infos, p.errors)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl, p := newTestController(t)
		p.pathErr = state.ErrCancelled
		ctrl.Save()
		if len(p.infos) != 0 || len(p.errors) != 0 {
			t.Errorf("infos %v errors %v, want nothing shown", p.infos, p.errors)
		}
	})

	t.Run("unwritable", func(t *testing.T) {
		ctrl, p := newTestController(t)
		p.path = filepath.Join(dir, "missing", "art.png")
		ctrl.Save()
		if len(p.errors) != 1 || !errors.Is(p.errors[0], state.ErrIO) {
			t.Fatalf("errors = %v, want one ErrIO", p.errors)
		}
		if len(p.infos) != 0 {
			t.Errorf("infos = %v after failure", p.infos)
		}
	})

	t.Run("dialog failure", func(t *testing.T) {
		ctrl, p := newTestController(t)
		p.pathErr = errors.New("portal unavailable")
		ctrl.Save()
		if len(p.errors) != 1 {
			t.Errorf("errors = %v, want the dialog error", p.errors)
		}
	})
}

func TestController_BrushAndEraserNotify(t *testing.T) {
	ctrl, _ := newTestController(t)
	var last state.Pen
	var n int
	ctrl.OnPenChanged = func(p state.Pen) { last = p; n++ }

	ctrl.SetBrushWidth(2) // unchanged
	ctrl.SetBrushWidth(7)
	ctrl.ToggleEraser()
	if n != 2 {
		t.Errorf("OnPenChanged called %d times, want 2", n)
	}
	if last.Width != 7 || !last.Eraser {
		t.Errorf("last pen = %+v, want width 7 with eraser", last)
	}
}
