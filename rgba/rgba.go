// Package rgba holds the 8-bit RGB plus floating alpha color used throughout
// hueseek, and parses it from CSS-style color strings.
package rgba

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hueseek/hueseek/util"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied sRGB color. R, G and B are in [0, 255],
// A is in [0, 1].
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Opaque returns the fully opaque color with the given channels.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromStd converts any image/color value, un-premultiplying its channels.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}
}

// FromColorful converts a colorful.Color, clamping it into the sRGB gamut.
func FromColorful(c colorful.Color, alpha float64) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// Valid reports whether the alpha channel is a finite value in [0, 1].
func (c Color) Valid() bool {
	return !math.IsNaN(c.A) && c.A >= 0 && c.A <= 1
}

// Colorful returns the color as a colorful.Color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// String renders the color as rgba(r, g, b, a).
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex renders #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	a := uint8(math.Round(util.Clamp(c.A, 0, 1) * 255))
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, a)
}
