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

import "math"

// Point is one plottable row: its original row index plus its data
// coordinates on the x and y channels. Rows with null or non-numeric
// x/y cells never become Points but keep their indices, so selection
// addressing stays aligned with the source table.
type Point struct {
	Row int
	X   float64
	Y   float64
}

// Geometry describes where the plot area sits inside a rendered chart
// image and which data ranges it spans. It lets overlay widgets map
// positions between view, image, and data space.
type Geometry struct {
	// Image size in pixels.
	Width  int
	Height int

	// Plot-area insets in image pixels.
	PadLeft   float64
	PadRight  float64
	PadTop    float64
	PadBottom float64

	// Data ranges of the axes, matching the ranges the chart was
	// rendered with.
	XMin, XMax float64
	YMin, YMax float64
}

// PlotWidth returns the plot area width in image pixels.
func (g Geometry) PlotWidth() float64 {
	w := float64(g.Width) - g.PadLeft - g.PadRight
	if w < 1 {
		return float64(g.Width)
	}
	return w
}

// PlotHeight returns the plot area height in image pixels.
func (g Geometry) PlotHeight() float64 {
	h := float64(g.Height) - g.PadTop - g.PadBottom
	if h < 1 {
		return float64(g.Height)
	}
	return h
}

// DataToImage maps data coordinates to image pixel coordinates. The
// image y axis grows downward.
func (g Geometry) DataToImage(x, y float64) (float64, float64) {
	fx := (x - g.XMin) / (g.XMax - g.XMin)
	fy := (y - g.YMin) / (g.YMax - g.YMin)
	px := g.PadLeft + fx*g.PlotWidth()
	py := g.PadTop + (1-fy)*g.PlotHeight()
	return px, py
}

// ImageToData maps image pixel coordinates back to data coordinates.
func (g Geometry) ImageToData(px, py float64) (float64, float64) {
	fx := (px - g.PadLeft) / g.PlotWidth()
	fy := 1 - (py-g.PadTop)/g.PlotHeight()
	x := g.XMin + fx*(g.XMax-g.XMin)
	y := g.YMin + fy*(g.YMax-g.YMin)
	return x, y
}

// ContainRect is the rectangle a chart image occupies inside a larger
// view when scaled with contain semantics (canvas.ImageFillContain).
type ContainRect struct {
	X, Y  float32
	W, H  float32
	Scale float32
}

// Contain computes the drawn rectangle for an imgW x imgH image shown
// inside a viewW x viewH area with contain scaling.
func Contain(imgW, imgH, viewW, viewH float32) ContainRect {
	if imgW <= 0 || imgH <= 0 {
		return ContainRect{W: viewW, H: viewH, Scale: 1}
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale := sx
	if sy < sx {
		scale = sy
	}
	w := imgW * scale
	h := imgH * scale
	return ContainRect{
		X:     (viewW - w) / 2,
		Y:     (viewH - h) / 2,
		W:     w,
		H:     h,
		Scale: scale,
	}
}

// Inside reports whether a view position falls on the drawn image.
func (c ContainRect) Inside(vx, vy float32) bool {
	return vx >= c.X && vx <= c.X+c.W && vy >= c.Y && vy <= c.Y+c.H
}

// ViewToImage maps a view position to image pixel coordinates.
func (c ContainRect) ViewToImage(vx, vy float32) (float64, float64) {
	if c.Scale <= 0 {
		return float64(vx), float64(vy)
	}
	return float64((vx - c.X) / c.Scale), float64((vy - c.Y) / c.Scale)
}

// Vertex is a lasso polygon vertex in image pixel coordinates.
type Vertex struct {
	X, Y float64
}

// PointsInBox returns the row indices of the points whose image pixel
// position falls within the rectangle spanned by the two corners
// (x0,y0) and (x1,y1), in ascending point order.
func PointsInBox(g Geometry, pts []Point, x0, y0, x1, y1 float64) []int {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	var rows []int
	for _, p := range pts {
		px, py := g.DataToImage(p.X, p.Y)
		if px >= x0 && px <= x1 && py >= y0 && py <= y1 {
			rows = append(rows, p.Row)
		}
	}
	return rows
}

// PointsInLasso returns the row indices of the points whose image
// pixel position falls within the given polygon, in ascending point
// order. Containment uses the even-odd ray casting rule.
func PointsInLasso(g Geometry, pts []Point, poly []Vertex) []int {
	if len(poly) < 3 {
		return nil
	}
	var rows []int
	for _, p := range pts {
		px, py := g.DataToImage(p.X, p.Y)
		if pointInPolygon(px, py, poly) {
			rows = append(rows, p.Row)
		}
	}
	return rows
}

// pointInPolygon implements even-odd ray casting against a polygon.
func pointInPolygon(x, y float64, poly []Vertex) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > y) != (yj > y) {
			cross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// NearestPoint returns the plottable point closest to the given image
// pixel position, provided it lies within maxDist pixels. Used for
// pointer-over hover lookups.
func NearestPoint(g Geometry, pts []Point, px, py, maxDist float64) (Point, bool) {
	best := Point{Row: -1}
	bestD := math.MaxFloat64
	for _, p := range pts {
		qx, qy := g.DataToImage(p.X, p.Y)
		d := math.Hypot(qx-px, qy-py)
		if d < bestD {
			bestD = d
			best = p
		}
	}
	if best.Row < 0 || bestD > maxDist {
		return Point{Row: -1}, false
	}
	return best, true
}
