// Package style provides a functional API for composing lipgloss styles and color swatches.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/rgba"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Text helpers.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a visually highlighted banner using dominant error status colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// SwatchWidth is the number of cells a swatch occupies.
const SwatchWidth = 2

// Swatch renders a block of cells filled with c.
func Swatch(c rgba.Color) string {
	return Colored("", color.Of(c)).Render(strings.Repeat(" ", SwatchWidth))
}

// Strip renders colors side by side as a single-cell bar.
func Strip(colors []rgba.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(Colored("", color.Of(c)).Render(" "))
	}
	return b.String()
}
