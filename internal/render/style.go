// Package render rasterizes a computed overlap result and its layout into
// a diagram image.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/config"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// Style holds the cosmetic parameters of a diagram. None of them affect
// the geometry template or the computed regions.
type Style struct {
	Colors      []color.RGBA
	Alpha       float64
	LabelHeight float64
	Width       int
	Height      int
}

// StyleFromConfig parses the configured hex palette into a Style
func StyleFromConfig(cfg config.StyleConfig) (Style, error) {
	colors := make([]color.RGBA, 0, len(cfg.Colors))
	for _, hex := range cfg.Colors {
		parsed, err := ParseHexColor(hex)
		if err != nil {
			return Style{}, err
		}
		colors = append(colors, parsed)
	}

	style := Style{
		Colors:      colors,
		Alpha:       cfg.Alpha,
		LabelHeight: cfg.LabelHeight,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}
	return style, style.Validate()
}

// Validate checks the style against the same bounds the original tool
// enforced: alpha 0-1, label height 0.9-1.6.
func (s Style) Validate() error {
	if s.Alpha < 0 || s.Alpha > 1 {
		return venn.NewConfigurationError("alpha", s.Alpha, "must be between 0 and 1")
	}
	if s.LabelHeight < 0.9 || s.LabelHeight > 1.6 {
		return venn.NewConfigurationError("label_height", s.LabelHeight, "must be between 0.9 and 1.6")
	}
	if s.Width < 100 || s.Height < 100 {
		return venn.NewConfigurationError("canvas", fmt.Sprintf("%dx%d", s.Width, s.Height), "canvas must be at least 100x100")
	}
	if len(s.Colors) == 0 {
		return venn.NewConfigurationError("colors", nil, "at least one color is required")
	}
	return nil
}

// ColorFor returns the fill color for set index i, cycling the palette
func (s Style) ColorFor(i int) color.RGBA {
	return s.Colors[i%len(s.Colors)]
}

// SetColor replaces the color for set index i, growing the palette by
// cycling when needed. Returns the updated style; Style is a value type.
func (s Style) SetColor(i int, c color.RGBA) Style {
	colors := make([]color.RGBA, len(s.Colors))
	copy(colors, s.Colors)
	for len(colors) <= i {
		colors = append(colors, colors[len(colors)%len(s.Colors)])
	}
	colors[i] = c
	s.Colors = colors
	return s
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	expand := func(h string) string {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	if len(trimmed) == 3 {
		trimmed = expand(trimmed)
	}
	if len(trimmed) != 6 {
		return color.RGBA{}, venn.NewConfigurationError("color", hex, "expected #rrggbb")
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return color.RGBA{}, venn.NewConfigurationError("color", hex, "invalid hex digits")
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}

// FormatHex renders a color back to "#rrggbb" for display and config
func FormatHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
