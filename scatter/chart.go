// Copyright 2025 The splot authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scatter

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"splot/table"
)

// Fixed presentation policy: chart padding plus the approximate gutter
// the axis tick labels occupy inside it. The geometry handed to
// overlays assumes these values, so they must match the rendered
// chart's layout.
const (
	padTopPx    = 14
	padRightPx  = 12
	padLeftPx   = 16
	padBottomPx = 28

	axisLeftGutterPx   = 42
	axisBottomGutterPx = 26

	minDotWidth     = 3
	maxDotWidth     = 11
	defaultDotWidth = 4
)

var (
	axisFontColor   = drawing.Color{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	axisStrokeColor = drawing.Color{R: 0x77, G: 0x77, B: 0x77, A: 0xff}
	gridStrokeColor = drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0x20}
)

// Points extracts the plottable points for the encoding's x/y
// channels. Rows whose x or y cell is null or non-numeric are skipped;
// the surviving points keep their original row indices.
func Points(t *table.Table, enc Encoding) []Point {
	pts := make([]Point, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		x, ok := t.Float(row, enc.X)
		if !ok {
			continue
		}
		y, ok := t.Float(row, enc.Y)
		if !ok {
			continue
		}
		pts = append(pts, Point{Row: row, X: x, Y: y})
	}
	return pts
}

// paddedRange widens [min,max] by 5% on each side so edge points do
// not sit on the plot border. A degenerate range widens by one unit.
func paddedRange(min, max float64) (float64, float64) {
	if max <= min {
		return min - 1, max + 1
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}

func axisStyle() chart.Style {
	return chart.Style{
		FontColor:   axisFontColor,
		StrokeColor: axisStrokeColor,
		FontSize:    9,
	}
}

// blank returns a transparent placeholder image so the UI still
// updates when there is nothing to plot.
func blank(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Render draws the scatter chart for the table under the given
// encoding at the given pixel size. It returns the rendered image and
// the Geometry needed to map interactive gestures back to row indices.
func Render(t *table.Table, enc Encoding, width, height int) (image.Image, Geometry, error) {
	if err := enc.Validate(t); err != nil {
		return nil, Geometry{}, err
	}

	pts := Points(t, enc)

	geom := Geometry{
		Width:     width,
		Height:    height,
		PadLeft:   padLeftPx + axisLeftGutterPx,
		PadRight:  padRightPx,
		PadTop:    padTopPx,
		PadBottom: padBottomPx + axisBottomGutterPx,
	}

	if len(pts) == 0 {
		return blank(width, height), geom, nil
	}

	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	geom.XMin, geom.XMax = paddedRange(xMin, xMax)
	geom.YMin, geom.YMax = paddedRange(yMin, yMax)

	colors := dotColors(t, enc, pts)
	widths := dotWidths(t, enc, pts)

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	// go-chart rejects single-value series; pad with a duplicate point.
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
		colors = append(colors, colors[0])
		widths = append(widths, widths[0])
	}

	st := chart.Style{
		StrokeWidth: 0,
		DotWidth:    defaultDotWidth,
		DotWidthProvider: func(xr, yr chart.Range, index int, x, y float64) float64 {
			return widths[index]
		},
		DotColorProvider: func(xr, yr chart.Range, index int, x, y float64) drawing.Color {
			return colors[index]
		},
	}

	xName, _ := t.ColumnName(enc.X)
	yName, _ := t.ColumnName(enc.Y)

	ch := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: drawing.ColorTransparent,
			Padding:   chart.Box{Top: padTopPx, Left: padLeftPx, Right: padRightPx, Bottom: padBottomPx},
		},
		Canvas: chart.Style{FillColor: drawing.ColorTransparent},
		XAxis: chart.XAxis{
			Name:           xName,
			Style:          axisStyle(),
			NameStyle:      axisStyle(),
			Range:          &chart.ContinuousRange{Min: geom.XMin, Max: geom.XMax},
			GridMajorStyle: chart.Style{StrokeColor: gridStrokeColor, StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:           yName,
			Style:          axisStyle(),
			NameStyle:      axisStyle(),
			Range:          &chart.ContinuousRange{Min: geom.YMin, Max: geom.YMax},
			GridMajorStyle: chart.Style{StrokeColor: gridStrokeColor, StrokeWidth: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, Geometry{}, fmt.Errorf("chart render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, Geometry{}, fmt.Errorf("chart decode: %w", err)
	}
	return img, geom, nil
}

// dotColors resolves the color channel to one color per point. Numeric
// color columns use the continuous ramp; everything else is
// categorical by distinct formatted value, in order of first
// appearance. Null cells fall back to the default palette color.
func dotColors(t *table.Table, enc Encoding, pts []Point) []drawing.Color {
	colors := make([]drawing.Color, len(pts))
	if enc.Color == NoColumn {
		for i := range colors {
			colors[i] = chart.ColorBlue
		}
		return colors
	}

	dt, err := t.ColumnType(enc.Color)
	if err != nil {
		for i := range colors {
			colors[i] = chart.ColorBlue
		}
		return colors
	}

	if dt.IsNumeric() {
		min, max := 0.0, 0.0
		seen := false
		vals := make([]float64, len(pts))
		ok := make([]bool, len(pts))
		for i, p := range pts {
			v, has := t.Float(p.Row, enc.Color)
			vals[i], ok[i] = v, has
			if !has {
				continue
			}
			if !seen || v < min {
				min = v
			}
			if !seen || v > max {
				max = v
			}
			seen = true
		}
		for i := range pts {
			if ok[i] {
				colors[i] = continuousColor(vals[i], min, max)
			} else {
				colors[i] = chart.ColorAlternateGray
			}
		}
		return colors
	}

	// Categorical: distinct values get palette colors by first
	// appearance in row order.
	order := map[string]int{}
	for i, p := range pts {
		v, err := t.Cell(p.Row, enc.Color)
		if err != nil || v.IsNull {
			colors[i] = chart.ColorAlternateGray
			continue
		}
		n, found := order[v.Formatted]
		if !found {
			n = len(order)
			order[v.Formatted] = n
		}
		colors[i] = categoricalColor(n)
	}
	return colors
}

// dotWidths resolves the size channel to one dot width per point,
// scaled linearly between minDotWidth and maxDotWidth.
func dotWidths(t *table.Table, enc Encoding, pts []Point) []float64 {
	widths := make([]float64, len(pts))
	if enc.Size == NoColumn {
		for i := range widths {
			widths[i] = defaultDotWidth
		}
		return widths
	}

	vals := make([]float64, len(pts))
	ok := make([]bool, len(pts))
	min, max := 0.0, 0.0
	seen := false
	for i, p := range pts {
		v, has := t.Float(p.Row, enc.Size)
		vals[i], ok[i] = v, has
		if !has {
			continue
		}
		if !seen || v < min {
			min = v
		}
		if !seen || v > max {
			max = v
		}
		seen = true
	}

	for i := range pts {
		if !ok[i] || max <= min {
			widths[i] = minDotWidth
			continue
		}
		f := (vals[i] - min) / (max - min)
		widths[i] = minDotWidth + f*(maxDotWidth-minDotWidth)
	}
	return widths
}
