package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme is the fixed dark presentation for the scatter browser.
// The variant is ignored on purpose: chart images render with
// transparent backgrounds and light fonts, so the chrome must stay
// dark to match.
type CustomTheme struct{}

var _ fyne.Theme = (*CustomTheme)(nil)

func (m CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff} // Dark background
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff} // Material Blue
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0x90, G: 0xca, B: 0xf9, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff} // Light text
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	case theme.ColorNameForegroundOnPrimary:
		return color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 24
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
