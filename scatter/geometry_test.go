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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() Geometry {
	return Geometry{
		Width: 800, Height: 500,
		PadLeft: 58, PadRight: 12, PadTop: 14, PadBottom: 54,
		XMin: 0, XMax: 10,
		YMin: 0, YMax: 100,
	}
}

func TestDataToImageCorners(t *testing.T) {
	g := testGeometry()

	px, py := g.DataToImage(g.XMin, g.YMin)
	assert.InDelta(t, g.PadLeft, px, 1e-9)
	assert.InDelta(t, float64(g.Height)-g.PadBottom, py, 1e-9, "y min sits at the plot bottom")

	px, py = g.DataToImage(g.XMax, g.YMax)
	assert.InDelta(t, float64(g.Width)-g.PadRight, px, 1e-9)
	assert.InDelta(t, g.PadTop, py, 1e-9)
}

func TestImageToDataInverts(t *testing.T) {
	g := testGeometry()

	for _, p := range []struct{ x, y float64 }{
		{0, 0}, {10, 100}, {5, 50}, {2.5, 87.3},
	} {
		px, py := g.DataToImage(p.x, p.y)
		x, y := g.ImageToData(px, py)
		assert.InDelta(t, p.x, x, 1e-9)
		assert.InDelta(t, p.y, y, 1e-9)
	}
}

func TestContain(t *testing.T) {
	// 800x500 image inside a 1600x1200 view: width-limited, centered
	// vertically
	c := Contain(800, 500, 1600, 1200)
	assert.InDelta(t, 2.0, c.Scale, 1e-6)
	assert.InDelta(t, 0.0, c.X, 1e-6)
	assert.InDelta(t, 100.0, c.Y, 1e-6)
	assert.InDelta(t, 1600.0, c.W, 1e-6)
	assert.InDelta(t, 1000.0, c.H, 1e-6)

	assert.True(t, c.Inside(800, 600))
	assert.False(t, c.Inside(800, 50))

	ix, iy := c.ViewToImage(0, 100)
	assert.InDelta(t, 0.0, ix, 1e-6)
	assert.InDelta(t, 0.0, iy, 1e-6)

	ix, iy = c.ViewToImage(1600, 1100)
	assert.InDelta(t, 800.0, ix, 1e-6)
	assert.InDelta(t, 500.0, iy, 1e-6)
}

func TestContainDegenerate(t *testing.T) {
	c := Contain(0, 0, 300, 200)
	assert.Equal(t, float32(1), c.Scale)
	assert.Equal(t, float32(300), c.W)
}

// evenPoints places rows 0..4 at x=0..4, y=10+x, matching a table
// whose even rows will fall inside the test regions.
func evenPoints() []Point {
	pts := make([]Point, 5)
	for i := range pts {
		pts[i] = Point{Row: i, X: float64(i), Y: 10 + float64(i)}
	}
	return pts
}

func TestPointsInBox(t *testing.T) {
	g := Geometry{
		Width: 800, Height: 500,
		PadLeft: 58, PadRight: 12, PadTop: 14, PadBottom: 54,
		XMin: -0.5, XMax: 4.5,
		YMin: 9.5, YMax: 14.5,
	}
	pts := evenPoints()

	// a box around everything selects everything
	x0, y0 := g.DataToImage(-0.5, 14.5)
	x1, y1 := g.DataToImage(4.5, 9.5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, PointsInBox(g, pts, x0, y0, x1, y1))

	// corners may come in any order
	assert.Equal(t, []int{0, 1, 2, 3, 4}, PointsInBox(g, pts, x1, y1, x0, y0))

	// a tight box around the middle point
	x0, y0 = g.DataToImage(1.5, 12.5)
	x1, y1 = g.DataToImage(2.5, 11.5)
	assert.Equal(t, []int{2}, PointsInBox(g, pts, x0, y0, x1, y1))

	// an empty region selects nothing
	x0, y0 = g.DataToImage(-0.4, 14.4)
	x1, y1 = g.DataToImage(-0.3, 14.3)
	assert.Empty(t, PointsInBox(g, pts, x0, y0, x1, y1))
}

func TestPointsInLasso(t *testing.T) {
	g := Geometry{
		Width: 800, Height: 500,
		PadLeft: 58, PadRight: 12, PadTop: 14, PadBottom: 54,
		XMin: -0.5, XMax: 4.5,
		YMin: 9.5, YMax: 14.5,
	}
	pts := evenPoints()

	// a diamond around the point at (2, 12)
	poly := make([]Vertex, 0, 4)
	for _, d := range []struct{ x, y float64 }{
		{2, 12.8}, {2.8, 12}, {2, 11.2}, {1.2, 12},
	} {
		px, py := g.DataToImage(d.x, d.y)
		poly = append(poly, Vertex{X: px, Y: py})
	}
	assert.Equal(t, []int{2}, PointsInLasso(g, pts, poly))

	// fewer than three vertices cannot enclose anything
	assert.Nil(t, PointsInLasso(g, pts, poly[:2]))
}

func TestPointsInLassoSkipsGaps(t *testing.T) {
	g := Geometry{
		Width: 800, Height: 500,
		PadLeft: 58, PadRight: 12, PadTop: 14, PadBottom: 54,
		XMin: -0.5, XMax: 4.5,
		YMin: 9.5, YMax: 14.5,
	}
	// rows 1 and 3 are missing, as if their cells were null
	pts := []Point{
		{Row: 0, X: 0, Y: 10},
		{Row: 2, X: 2, Y: 12},
		{Row: 4, X: 4, Y: 14},
	}

	// enclose the whole plot: only plottable rows are selectable
	poly := make([]Vertex, 0, 4)
	for _, d := range []struct{ x, y float64 }{
		{-0.5, 14.5}, {4.5, 14.5}, {4.5, 9.5}, {-0.5, 9.5},
	} {
		px, py := g.DataToImage(d.x, d.y)
		poly = append(poly, Vertex{X: px, Y: py})
	}
	assert.Equal(t, []int{0, 2, 4}, PointsInLasso(g, pts, poly))
}

func TestNearestPoint(t *testing.T) {
	g := testGeometry()
	pts := []Point{
		{Row: 0, X: 2, Y: 20},
		{Row: 1, X: 8, Y: 80},
	}

	px, py := g.DataToImage(2, 20)
	p, ok := NearestPoint(g, pts, px+3, py-2, 10)
	require.True(t, ok)
	assert.Equal(t, 0, p.Row)

	_, ok = NearestPoint(g, pts, px+200, py, 10)
	assert.False(t, ok, "outside maxDist")

	_, ok = NearestPoint(g, nil, px, py, 10)
	assert.False(t, ok, "no points")
}
