package state

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/draw"

	"SketchPad/internal/export"
)

// ResizePolicy decides what happens to the artwork when the canvas is resized.
type ResizePolicy string

const (
	// ResizeDiscard starts over with a blank canvas of the new size.
	ResizeDiscard ResizePolicy = "discard"
	// ResizeScale stretches the current picture to the new size.
	ResizeScale ResizePolicy = "scale"
)

func (p ResizePolicy) Valid() bool {
	return p == ResizeDiscard || p == ResizeScale
}

// Canvas is the raster buffer everything is drawn into. The on-screen view is
// derived from Image(), so the two can never drift apart.
type Canvas struct {
	img        *image.RGBA
	background RGB
	Policy     ResizePolicy
}

// NewCanvas allocates a width x height canvas filled with background.
func NewCanvas(width, height int, background RGB) (*Canvas, error) {
	img, err := blank(width, height, background)
	if err != nil {
		return nil, err
	}
	log.Printf("[CANVAS] New %dx%d canvas, background %s", width, height, background)
	return &Canvas{img: img, background: background, Policy: ResizeDiscard}, nil
}

func blank(width, height int, background RGB) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	return img, nil
}

func (c *Canvas) Width() int              { return c.img.Rect.Dx() }
func (c *Canvas) Height() int             { return c.img.Rect.Dy() }
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }
func (c *Canvas) Background() RGB         { return c.background }

// Image returns the live backing image. Callers must not modify it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Resize replaces the buffer with a new one of the given size. Under the
// default policy the old picture is discarded. Invalid dimensions leave the
// canvas untouched.
func (c *Canvas) Resize(width, height int) error {
	img, err := blank(width, height, c.background)
	if err != nil {
		return err
	}
	if c.Policy == ResizeScale {
		draw.CatmullRom.Scale(img, img.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	}
	log.Printf("[CANVAS] Resized %dx%d -> %dx%d (%s)", c.Width(), c.Height(), width, height, c.policy())
	c.img = img
	return nil
}

func (c *Canvas) policy() ResizePolicy {
	if c.Policy == "" {
		return ResizeDiscard
	}
	return c.Policy
}

// Clear blanks the canvas, keeping its size.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.background.NRGBA()), image.Point{}, draw.Src)
	log.Printf("[CANVAS] Cleared %dx%d", c.Width(), c.Height())
}

// At samples the pixel at (x, y).
func (c *Canvas) At(x, y int) (RGB, error) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return RGB{}, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, c.Width(), c.Height())
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}, nil
}

// Set overwrites one pixel. Coordinates outside the canvas are ignored, so
// strokes may run off the edge.
func (c *Canvas) Set(x, y int, col RGB) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, 0xff
}

// ExportToFile writes the canvas as a PNG and returns the path actually
// written, which always ends in .png.
func (c *Canvas) ExportToFile(path string) (string, error) {
	path = export.EnsurePNGExt(path)
	if err := export.WritePNG(path, c.img); err != nil {
		return path, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return path, nil
}
