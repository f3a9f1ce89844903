package ui

import (
	"image"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"SketchPad/internal/config"
	"SketchPad/internal/state"
)

const windowTitle = "SketchPad"

// App is the wired-up window: one controller, its board and its toolbar.
type App struct {
	Controller *Controller
	Board      *BoardWidget
	Tools      *Toolbar
	Window     fyne.Window

	prefs fyne.Preferences
}

// NewApp builds the window for cfg without showing it.
func NewApp(a fyne.App, cfg config.Config) (*App, error) {
	c, err := state.NewCanvas(cfg.Width, cfg.Height, cfg.BackgroundRGB())
	if err != nil {
		return nil, err
	}
	c.Policy = cfg.ResizePolicy
	pen := state.NewPen(cfg.PenRGB(), cfg.BrushWidth)

	win := a.NewWindow(windowTitle)
	prompt := newDialogPrompter(win, cfg.SaveDir)
	ctrl := NewController(c, pen, prompt)
	ctrl.Verbose = cfg.Verbose

	app := &App{
		Controller: ctrl,
		Board:      NewBoardWidget(ctrl),
		Tools:      NewToolbar(ctrl),
		Window:     win,
		prefs:      a.Preferences(),
	}

	scroll := container.NewScroll(app.Board)
	ctrl.OnCanvasChanged = func(image.Rectangle) {
		app.Board.Redraw()
	}
	ctrl.OnCanvasResized = func(w, h int) {
		app.Board.CanvasResized()
		app.Tools.SyncCanvas()
		scroll.Refresh()
	}
	ctrl.OnPenChanged = func(p state.Pen) {
		app.Tools.SyncPen(p)
		app.remember(func(cfg *config.Config) {
			if !p.Eraser {
				cfg.PenColor = p.Color.Hex()
			}
			cfg.BrushWidth = p.Width
		})
	}
	ctrl.OnSaved = func(path string) {
		dir := filepath.Dir(path)
		prompt.saveDir = dir
		app.remember(func(cfg *config.Config) { cfg.SaveDir = dir })
	}

	app.addShortcuts()
	win.SetContent(container.NewBorder(app.Tools.Object(), app.Tools.Status, nil, nil, scroll))
	win.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+120))
	return app, nil
}

func (a *App) addShortcuts() {
	canvas := a.Window.Canvas()
	save := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	canvas.AddShortcut(save, func(fyne.Shortcut) { a.Controller.Save() })
	// The desktop driver delivers Ctrl+C as ShortcutCopy, never as a key combo.
	canvas.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { a.Controller.ChooseColor() })
}

// remember applies update to the stored preferences, not to the running
// config, so command-line overrides stay with this run.
func (a *App) remember(update func(*config.Config)) {
	if a.prefs == nil {
		return
	}
	stored := config.Load(a.prefs)
	update(&stored)
	stored.Store(a.prefs)
}

// RunApp builds the window and blocks until it is closed.
func RunApp(a fyne.App, cfg config.Config) error {
	app, err := NewApp(a, cfg)
	if err != nil {
		return err
	}
	log.Printf("[UI] Window ready, canvas %dx%d, session %s", cfg.Width, cfg.Height, app.Controller.Session())
	app.Window.ShowAndRun()
	return nil
}
