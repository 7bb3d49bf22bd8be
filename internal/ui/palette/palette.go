package palette

import (
	"image/color"

	"motionlab/internal/core/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Theme renders a theme selection with the stock fyne theme as a base.
type Theme struct {
	selection theme.Selection
	base      fyne.Theme
}

var _ fyne.Theme = (*Theme)(nil)

// For returns the fyne theme of selection.
func For(selection theme.Selection) *Theme {
	return &Theme{selection: selection, base: fynetheme.DefaultTheme()}
}

// Selection returns the selection this theme renders.
func (palette *Theme) Selection() theme.Selection {
	return palette.selection
}

// Color forces the variant of the selection and overrides the colorful
// accents.
func (palette *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := fynetheme.VariantLight
	if palette.selection == theme.Dark {
		variant = fynetheme.VariantDark
	}
	if palette.selection == theme.Colorful {
		if accent, ok := colorfulAccent(name); ok {
			return accent
		}
	}
	return palette.base.Color(name, variant)
}

func (palette *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return palette.base.Font(style)
}

func (palette *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return palette.base.Icon(name)
}

func (palette *Theme) Size(name fyne.ThemeSizeName) float32 {
	return palette.base.Size(name)
}

func colorfulAccent(name fyne.ThemeColorName) (color.Color, bool) {
	switch name {
	case fynetheme.ColorNameBackground:
		return color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, true
	case fynetheme.ColorNameButton:
		return color.NRGBA{R: 0xf0, G: 0x93, B: 0xfb, A: 0xff}, true
	case fynetheme.ColorNamePrimary:
		return color.NRGBA{R: 0xf5, G: 0x57, B: 0x6c, A: 0xff}, true
	case fynetheme.ColorNameForeground:
		return color.White, true
	case fynetheme.ColorNameInputBackground:
		return color.NRGBA{R: 0x76, G: 0x4b, B: 0xa2, A: 0xff}, true
	default:
		return nil, false
	}
}

// Accent colours shared by the playground surfaces.
var (
	AccentBlue   = color.NRGBA{R: 0x4f, G: 0xac, B: 0xfe, A: 0xff}
	AccentPink   = color.NRGBA{R: 0xf0, G: 0x93, B: 0xfb, A: 0xff}
	AccentGreen  = color.NRGBA{R: 0x43, G: 0xe9, B: 0x7b, A: 0xff}
	AccentIndigo = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	AccentRed    = color.NRGBA{R: 0xf5, G: 0x57, B: 0x6c, A: 0xff}
)
