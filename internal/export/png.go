package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const Ext = ".png"

// HasPNGExt reports whether path already ends in .png (any case).
func HasPNGExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// EnsurePNGExt appends .png unless the path already has it.
func EnsurePNGExt(path string) string {
	if HasPNGExt(path) {
		return path
	}
	return path + Ext
}

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG writes img to w. Opaque RGBA images are written as 8-bit RGB.
func EncodePNG(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// WritePNG creates or truncates path and writes img to it. A partially
// written file is removed.
func WritePNG(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := EncodePNG(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	b := img.Bounds()
	log.Printf("[EXPORT] Wrote %dx%d PNG to %s", b.Dx(), b.Dy(), path)
	return nil
}
