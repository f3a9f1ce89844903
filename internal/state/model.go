package state

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Point is an integer canvas coordinate.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Point) In(r image.Rectangle) bool {
	return image.Pt(p.X, p.Y).In(r)
}

// RGB is an opaque 8-bit colour. Canvas pixels carry no alpha.
type RGB struct{ R, G, B uint8 }

var (
	Black = RGB{}
	White = RGB{R: 255, G: 255, B: 255}
)

var _ color.Color = RGB{}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// RGBFromColor flattens any colour to opaque RGB. Colour pickers hand back
// non-premultiplied values, so the straight components are kept and alpha
// is dropped.
func RGBFromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseColor accepts #rgb, #rrggbb or an SVG colour name such as "black".
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RGB{}, fmt.Errorf("empty colour")
	}
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[s]
		if !ok {
			return RGB{}, fmt.Errorf("unknown colour name %q", s)
		}
		return RGBFromColor(named), nil
	}

	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	var c RGB
	if len(hex) == 3 {
		c = RGB{R: uint8(v>>8&0xf) * 0x11, G: uint8(v>>4&0xf) * 0x11, B: uint8(v&0xf) * 0x11}
	} else {
		c = RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	}
	return c, nil
}
