package scatter

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// categoricalPalette cycles for distinct values of a categorical color
// column, in order of first appearance.
var categoricalPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorRed,
	chart.ColorYellow,
	chart.ColorAlternateBlue,
	chart.ColorAlternateGreen,
	chart.ColorAlternateYellow,
	chart.ColorAlternateGray,
}

// categoricalColor returns the palette color for the n-th distinct
// category.
func categoricalColor(n int) drawing.Color {
	return categoricalPalette[n%len(categoricalPalette)]
}

// rampLow and rampHigh anchor the continuous color scale used for
// numeric color columns.
var (
	rampLow  = drawing.Color{R: 59, G: 76, B: 192, A: 255}
	rampHigh = drawing.Color{R: 221, G: 68, B: 33, A: 255}
)

// continuousColor linearly interpolates the ramp for v in [min, max].
func continuousColor(v, min, max float64) drawing.Color {
	if max <= min {
		return rampLow
	}
	f := (v - min) / (max - min)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + f*(float64(b)-float64(a)))
	}
	return drawing.Color{
		R: lerp(rampLow.R, rampHigh.R),
		G: lerp(rampLow.G, rampHigh.G),
		B: lerp(rampLow.B, rampHigh.B),
		A: 255,
	}
}
