package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.NRGBA{
		"#000000":     {A: 0xff},
		"#ff0000":     {R: 0xff, A: 0xff},
		"#F00":        {R: 0xff, A: 0xff},
		"#00ff0080":   {G: 0xff, A: 0x80},
		"blue":        {B: 0xff, A: 0xff},
		" Red ":       {R: 0xff, A: 0xff},
		"transparent": {},
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#ggg", "#1234567", "rgb(1,2,3)", "notacolor"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrBadColor, in)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff0000", FormatColor(color.NRGBA{R: 0xff, A: 0xff}))
	assert.Equal(t, "#00ff0080", FormatColor(color.NRGBA{G: 0xff, A: 0x80}))

	c, err := ParseColor(FormatColor(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, c)
}
