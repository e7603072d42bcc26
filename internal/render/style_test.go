package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/config"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#f4c27a")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xf4, G: 0xc2, B: 0x7a, A: 0xff}, c)

	c, err = ParseHexColor("  a6d49f ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xa6, G: 0xd4, B: 0x9f, A: 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	for _, bad := range []string{"", "#12345", "#gggggg", "#1234567"} {
		_, err := ParseHexColor(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, venn.IsConfigurationError(err))
	}
}

func TestFormatHexRoundTrip(t *testing.T) {
	original := "#f4c27a"
	parsed, err := ParseHexColor(original)
	require.NoError(t, err)
	assert.Equal(t, original, FormatHex(parsed))
}

func TestStyleFromConfig(t *testing.T) {
	style, err := StyleFromConfig(config.Default().Style)
	require.NoError(t, err)

	assert.InDelta(t, 0.45, style.Alpha, 1e-9)
	assert.Len(t, style.Colors, 6)
	// Palette cycles past its end.
	assert.Equal(t, style.Colors[0], style.ColorFor(6))
}

func TestStyleFromConfigBadColor(t *testing.T) {
	cfg := config.Default().Style
	cfg.Colors = []string{"#f4c27a", "not-a-color"}

	_, err := StyleFromConfig(cfg)
	require.Error(t, err)
	assert.True(t, venn.IsConfigurationError(err))
}

func TestStyleValidate(t *testing.T) {
	style, err := StyleFromConfig(config.Default().Style)
	require.NoError(t, err)

	bad := style
	bad.Alpha = 2
	assert.Error(t, bad.Validate())

	bad = style
	bad.LabelHeight = 2.0
	assert.Error(t, bad.Validate())

	bad = style
	bad.Width = 10
	assert.Error(t, bad.Validate())
}

func TestSetColor(t *testing.T) {
	style, err := StyleFromConfig(config.Default().Style)
	require.NoError(t, err)

	red := color.RGBA{R: 0xff, A: 0xff}
	updated := style.SetColor(1, red)

	assert.Equal(t, red, updated.ColorFor(1))
	// Original style untouched.
	assert.NotEqual(t, red, style.ColorFor(1))
}
