package config

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"SketchPad/internal/state"
)

// Preference keys.
const (
	keyWidth        = "canvas.width"
	keyHeight       = "canvas.height"
	keyBackground   = "canvas.background"
	keyResizePolicy = "canvas.resize_policy"
	keyPenColor     = "pen.color"
	keyBrushWidth   = "pen.width"
	keySaveDir      = "export.dir"
)

// Config is everything the program remembers between runs.
type Config struct {
	Width        int
	Height       int
	Background   string
	PenColor     string
	BrushWidth   int
	ResizePolicy state.ResizePolicy
	SaveDir      string

	// Verbose is a per-run switch and never stored.
	Verbose bool
}

func Default() Config {
	return Config{
		Width:        600,
		Height:       400,
		Background:   "white",
		PenColor:     "black",
		BrushWidth:   state.BrushSizes[1],
		ResizePolicy: state.ResizeDiscard,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d: %w", c.Width, c.Height, state.ErrInvalidDimensions))
	}
	if _, err := state.ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := state.ParseColor(c.PenColor); err != nil {
		errs = append(errs, fmt.Errorf("pen colour: %w", err))
	}
	if c.BrushWidth < state.MinBrushWidth || c.BrushWidth > state.MaxBrushWidth {
		errs = append(errs, fmt.Errorf("brush width %d outside %d..%d", c.BrushWidth, state.MinBrushWidth, state.MaxBrushWidth))
	}
	if !c.ResizePolicy.Valid() {
		errs = append(errs, fmt.Errorf("unknown resize policy %q", c.ResizePolicy))
	}
	return errors.Join(errs...)
}

// BackgroundRGB and PenRGB assume a validated config.
func (c Config) BackgroundRGB() state.RGB {
	rgb, _ := state.ParseColor(c.Background)
	return rgb
}

func (c Config) PenRGB() state.RGB {
	rgb, _ := state.ParseColor(c.PenColor)
	return rgb
}

// Load reads stored preferences on top of the defaults. A stored value that
// does not validate is replaced by its default.
func Load(prefs fyne.Preferences) Config {
	def := Default()
	cfg := Config{
		Width:        prefs.IntWithFallback(keyWidth, def.Width),
		Height:       prefs.IntWithFallback(keyHeight, def.Height),
		Background:   prefs.StringWithFallback(keyBackground, def.Background),
		PenColor:     prefs.StringWithFallback(keyPenColor, def.PenColor),
		BrushWidth:   prefs.IntWithFallback(keyBrushWidth, def.BrushWidth),
		ResizePolicy: state.ResizePolicy(prefs.StringWithFallback(keyResizePolicy, string(def.ResizePolicy))),
		SaveDir:      prefs.StringWithFallback(keySaveDir, ""),
	}
	return cfg.withDefaults(def)
}

func (c Config) withDefaults(def Config) Config {
	if c.Width <= 0 || c.Height <= 0 {
		log.Printf("[CONFIG] Ignoring stored canvas size %dx%d", c.Width, c.Height)
		c.Width, c.Height = def.Width, def.Height
	}
	if _, err := state.ParseColor(c.Background); err != nil {
		log.Printf("[CONFIG] Ignoring stored background: %v", err)
		c.Background = def.Background
	}
	if _, err := state.ParseColor(c.PenColor); err != nil {
		log.Printf("[CONFIG] Ignoring stored pen colour: %v", err)
		c.PenColor = def.PenColor
	}
	if c.BrushWidth < state.MinBrushWidth || c.BrushWidth > state.MaxBrushWidth {
		log.Printf("[CONFIG] Ignoring stored brush width %d", c.BrushWidth)
		c.BrushWidth = def.BrushWidth
	}
	if !c.ResizePolicy.Valid() {
		log.Printf("[CONFIG] Ignoring stored resize policy %q", c.ResizePolicy)
		c.ResizePolicy = def.ResizePolicy
	}
	return c
}

// Store writes the settings the user changes at run time back to prefs.
// Canvas size and background are only ever read.
func (c Config) Store(prefs fyne.Preferences) {
	prefs.SetString(keyPenColor, c.PenColor)
	prefs.SetInt(keyBrushWidth, c.BrushWidth)
	prefs.SetString(keyResizePolicy, string(c.ResizePolicy))
	prefs.SetString(keySaveDir, c.SaveDir)
}
