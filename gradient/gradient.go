// Package gradient synthesizes sample colors along a multi-stop color gradient.
package gradient

import (
	"fmt"
	"math"

	"github.com/hueseek/hueseek/rgba"
	"github.com/hueseek/hueseek/util"
)

// DefaultStops are the stops of the built-in spectrum swatch.
var DefaultStops = []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}

// Spectrum is a gradient of evenly spaced stops over [0, 1].
type Spectrum struct {
	stops []rgba.Color
}

// Default is the red to violet spectrum.
var Default = MustNamed(DefaultStops...)

// New builds a spectrum from stop colors. Stop alpha is ignored.
func New(stops ...rgba.Color) Spectrum {
	return Spectrum{stops: append([]rgba.Color(nil), stops...)}
}

// Named builds a spectrum from color strings.
func Named(stops ...string) (Spectrum, error) {
	colors := make([]rgba.Color, len(stops))
	for i, s := range stops {
		c, err := rgba.Parse(s)
		if err != nil {
			return Spectrum{}, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		colors[i] = c
	}
	return New(colors...), nil
}

// MustNamed is like Named but panics on error.
func MustNamed(stops ...string) Spectrum {
	s, err := Named(stops...)
	if err != nil {
		panic(err)
	}
	return s
}

// Stops returns a copy of the stop colors.
func (s Spectrum) Stops() []rgba.Color {
	return append([]rgba.Color(nil), s.stops...)
}

// At returns the opaque color at position t. t is clamped to [0, 1], NaN
// reads as 0, and channels are interpolated in sRGB between the two
// surrounding stops.
func (s Spectrum) At(t float64) rgba.Color {
	switch len(s.stops) {
	case 0:
		return rgba.Opaque(0, 0, 0)
	case 1:
		return opaque(s.stops[0])
	}

	if math.IsNaN(t) {
		t = 0
	}
	t = util.Clamp(t, 0, 1)

	segment := t * float64(len(s.stops)-1)
	i := int(math.Floor(segment))
	if i >= len(s.stops)-1 {
		return opaque(s.stops[len(s.stops)-1])
	}

	from, to := s.stops[i].Colorful(), s.stops[i+1].Colorful()
	return rgba.FromColorful(from.BlendRgb(to, segment-float64(i)), 1)
}

// Samples returns n colors taken at evenly spaced positions, both ends included.
func (s Spectrum) Samples(n int) []rgba.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []rgba.Color{s.At(0)}
	}

	out := make([]rgba.Color, n)
	for i := range out {
		out[i] = s.At(float64(i) / float64(n-1))
	}
	return out
}

func opaque(c rgba.Color) rgba.Color {
	c.A = 1
	return c
}
