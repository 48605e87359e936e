/*
Copyright 2025 The splot authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package windows

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"splot/scatter"
	"splot/session"
	"splot/table"
)

// ChartView is the chart tab: the primary scatter plot with its
// gesture overlay on top, and below it either a hint label or, once a
// selection is active, the filtered rows and a secondary chart drawn
// with the same encoding.
type ChartView struct {
	primary *canvas.Image
	overlay *selectionOverlay
	hint    *widget.Label

	secondary *canvas.Image
	selLabel  *widget.Label
	selTable  *TableView
	selBox    *fyne.Container

	// filtered is the currently displayed sub-table; released when
	// replaced so the Arrow buffers are returned.
	filtered *table.Table

	state   session.State
	content fyne.CanvasObject
}

func NewChartView(onSelection func([]int)) *ChartView {
	cv := &ChartView{}

	cv.primary = canvas.NewImageFromImage(nil)
	cv.primary.FillMode = canvas.ImageFillContain
	cv.primary.SetMinSize(fyne.NewSize(640, 320))

	cv.overlay = newSelectionOverlay(onSelection, cv.hoverFor)

	cv.hint = widget.NewLabel("Drag a box or lasso over the chart to filter rows.")
	cv.hint.Alignment = fyne.TextAlignCenter

	cv.secondary = canvas.NewImageFromImage(nil)
	cv.secondary.FillMode = canvas.ImageFillContain
	cv.secondary.SetMinSize(fyne.NewSize(640, 320))

	cv.selLabel = widget.NewLabel("")
	cv.selLabel.TextStyle = fyne.TextStyle{Bold: true}

	cv.selTable = NewTableView()
	selScroll := container.NewStack(cv.selTable.CanvasObject())
	// widget.Table scrolls internally but needs a height of its own
	// inside a VBox
	selWrap := container.NewGridWrap(fyne.NewSize(640, 220), selScroll)

	cv.selBox = container.NewVBox(
		widget.NewSeparator(),
		cv.selLabel,
		selWrap,
		cv.secondary,
	)
	cv.selBox.Hide()

	chartStack := container.NewStack(cv.primary, cv.overlay)

	cv.content = container.NewVScroll(container.NewVBox(
		chartStack,
		cv.hint,
		cv.selBox,
	))

	return cv
}

// SetTool forwards the gesture tool choice to the overlay.
func (cv *ChartView) SetTool(tool SelectionTool) {
	cv.overlay.SetTool(tool)
}

// hoverFor builds the hover label text for a data row from the hover
// channel of the current encoding.
func (cv *ChartView) hoverFor(row int) string {
	t := cv.state.Table
	if t == nil || len(cv.state.Encoding.Hover) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cv.state.Encoding.Hover))
	for _, col := range cv.state.Encoding.Hover {
		name, err := t.ColumnName(col)
		if err != nil {
			continue
		}
		v, err := t.Cell(row, col)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, v.Formatted))
	}
	return strings.Join(parts, "\n")
}

// Redraw re-renders both charts from the session state. Rendering
// errors are returned for the caller to surface; the previous chart
// stays on screen.
func (cv *ChartView) Redraw(st session.State) error {
	cv.state = st

	if st.Table == nil {
		cv.primary.Image = nil
		cv.primary.Refresh()
		cv.overlay.SetChart(scatter.Geometry{}, nil)
		cv.hint.SetText("Open a .csv or .xlsx file to begin.")
		cv.selBox.Hide()
		return nil
	}

	w, h := chartDimensions(int(cv.content.Size().Width))

	img, geom, err := scatter.Render(st.Table, st.Encoding, w, h)
	if err != nil {
		return err
	}
	cv.primary.Image = img
	cv.primary.Refresh()
	cv.overlay.SetChart(geom, scatter.Points(st.Table, st.Encoding))

	if st.Phase != session.PhaseSelectionActive {
		cv.hint.SetText("Drag a box or lasso over the chart to filter rows.")
		cv.hint.Show()
		cv.selBox.Hide()
		cv.setFiltered(nil)
		return nil
	}

	filtered, err := st.Filtered()
	if err != nil {
		return err
	}

	subImg, _, err := scatter.Render(filtered, st.Encoding, w, h)
	if err != nil {
		filtered.Release()
		return err
	}

	cv.hint.Hide()
	cv.selLabel.SetText(fmt.Sprintf("Selection: %d of %d rows", filtered.NumRows(), st.Table.NumRows()))
	cv.setFiltered(filtered)
	cv.secondary.Image = subImg
	cv.secondary.Refresh()
	cv.selBox.Show()
	return nil
}

func (cv *ChartView) setFiltered(t *table.Table) {
	cv.selTable.SetTable(t)
	if cv.filtered != nil {
		cv.filtered.Release()
	}
	cv.filtered = t
}

// Filtered returns the sub-table currently on display, or nil.
func (cv *ChartView) Filtered() *table.Table {
	return cv.filtered
}

// CanvasObject returns the renderable view.
func (cv *ChartView) CanvasObject() fyne.CanvasObject {
	return cv.content
}
