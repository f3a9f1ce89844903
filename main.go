package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2/app"

	"SketchPad/internal/config"
	"SketchPad/internal/state"
	"SketchPad/internal/ui"
)

const appID = "io.sketchpad.app"

func main() {
	width := flag.Int("width", 0, "canvas width in pixels")
	height := flag.Int("height", 0, "canvas height in pixels")
	background := flag.String("background", "", "canvas background colour (name or #rrggbb)")
	penColor := flag.String("color", "", "initial pen colour (name or #rrggbb)")
	brush := flag.Int("brush", 0, "initial brush width, 1-10")
	policy := flag.String("resize-policy", "", "what resizing does to the picture: discard or scale")
	verbose := flag.Bool("v", false, "log every stroke segment")
	flag.Parse()

	a := app.NewWithID(appID)
	cfg := config.Load(a.Preferences())

	// Only flags given on the command line override stored preferences.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "background":
			cfg.Background = *background
		case "color":
			cfg.PenColor = *penColor
		case "brush":
			cfg.BrushWidth = *brush
		case "resize-policy":
			cfg.ResizePolicy = state.ResizePolicy(*policy)
		}
	})
	cfg.Verbose = *verbose
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	log.Printf("Starting SketchPad (%dx%d, resize policy %s)", cfg.Width, cfg.Height, cfg.ResizePolicy)
	if err := ui.RunApp(a, cfg); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
