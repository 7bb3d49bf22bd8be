package palette

import (
	"image/color"
	"testing"

	"motionlab/internal/core/theme"

	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestFor_ForcesVariant(t *testing.T) {
	test.NewTempApp(t)
	base := fynetheme.DefaultTheme()

	dark := For(theme.Dark)
	assert.Equal(t, base.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark),
		dark.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))

	light := For(theme.Light)
	assert.Equal(t, base.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight),
		light.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
}

func TestFor_ColorfulAccents(t *testing.T) {
	colorful := For(theme.Colorful)
	assert.Equal(t, theme.Colorful, colorful.Selection())
	assert.Equal(t, color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, colorful.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
	assert.Equal(t, color.White, colorful.Color(fynetheme.ColorNameForeground, fynetheme.VariantDark))
}
