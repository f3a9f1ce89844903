package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/export"
	"SketchPad/internal/state"
)

const defaultFileName = "drawing" + export.Ext

// dialogPrompter implements Prompter with fyne dialogs on one window.
type dialogPrompter struct {
	win     fyne.Window
	saveDir string
}

var _ Prompter = (*dialogPrompter)(nil)

func newDialogPrompter(win fyne.Window, saveDir string) *dialogPrompter {
	return &dialogPrompter{win: win, saveDir: saveDir}
}

// ChooseColor never calls done when the picker is dismissed.
func (p *dialogPrompter) ChooseColor(current state.RGB, done func(state.RGB, error)) {
	d := dialog.NewColorPicker("Pen colour", "Choose the pen colour", func(c color.Color) {
		done(state.RGBFromColor(c), nil)
	}, p.win)
	d.Advanced = true
	d.SetColor(current)
	d.Show()
}

func (p *dialogPrompter) AskSize(width, height int, done func(int, int, error)) {
	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(width))
	widthEntry.Validator = validateDimension
	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(height))
	heightEntry.Validator = validateDimension

	items := []*widget.FormItem{
		widget.NewFormItem("Width", widthEntry),
		widget.NewFormItem("Height", heightEntry),
	}
	dialog.ShowForm("Resize canvas", "Resize", "Cancel", items, func(ok bool) {
		if !ok {
			done(0, 0, state.ErrCancelled)
			return
		}
		w, werr := parseDimension(widthEntry.Text)
		h, herr := parseDimension(heightEntry.Text)
		done(w, h, errors.Join(werr, herr))
	}, p.win)
}

func validateDimension(s string) error {
	_, err := parseDimension(s)
	return err
}

// parseDimension accepts a positive integer.
func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", state.ErrInvalidDimensions, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", state.ErrInvalidDimensions, n)
	}
	return n, nil
}

func (p *dialogPrompter) AskSavePath(done func(string, error)) {
	start := p.saveDir
	if start == "" {
		start, _ = os.Getwd()
	}
	before := snapshotDir(start)
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			done("", err)
			return
		}
		if w == nil {
			done("", state.ErrCancelled)
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			log.Printf("[UI] Closing %s: %v", path, err)
		}
		discardPlaceholder(path, before)
		done(path, nil)
	}, p.win)
	d.SetFileName(defaultFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{export.Ext}))
	if start != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

// dirSnapshot records which names a directory held when the save dialog
// opened. A nil names map means the listing failed and nothing is known.
type dirSnapshot struct {
	dir   string
	names map[string]bool
}

func snapshotDir(dir string) dirSnapshot {
	snap := dirSnapshot{dir: filepath.Clean(dir)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return snap
	}
	snap.names = make(map[string]bool, len(entries))
	for _, e := range entries {
		snap.names[e.Name()] = true
	}
	return snap
}

// created reports whether path is known to have appeared after the snapshot.
func (s dirSnapshot) created(path string) bool {
	return s.names != nil && filepath.Dir(path) == s.dir && !s.names[filepath.Base(path)]
}

// discardPlaceholder removes the empty file the save dialog creates for a
// name without .png, since the export goes to name.png instead. Files that
// were already there are left alone.
func discardPlaceholder(path string, before dirSnapshot) {
	if export.HasPNGExt(path) || !before.created(path) {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Printf("[UI] Removing placeholder %s: %v", path, err)
	}
}

func (p *dialogPrompter) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, p.win)
}

func (p *dialogPrompter) ShowError(err error) {
	dialog.ShowError(err, p.win)
}
