package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"splot/table"
)

// TableView renders a Table read-only in a widget.Table with a header
// row. The first rendered row carries the column names; data rows
// follow in original order.
type TableView struct {
	grid *widget.Table
	tbl  *table.Table
}

func NewTableView() *TableView {
	tv := &TableView{}

	tv.grid = widget.NewTable(
		func() (int, int) {
			if tv.tbl == nil {
				return 1, 1
			}
			return tv.tbl.NumRows() + 1, tv.tbl.NumCols()
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if tv.tbl == nil {
				lbl.SetText("")
				return
			}
			if id.Row == 0 {
				name, err := tv.tbl.ColumnName(id.Col)
				if err != nil {
					lbl.SetText("")
					return
				}
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(name)
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			v, err := tv.tbl.Cell(id.Row-1, id.Col)
			if err != nil {
				lbl.SetText("")
				return
			}
			lbl.SetText(v.Formatted)
		},
	)

	return tv
}

// SetTable swaps the displayed table. A nil table blanks the view.
func (tv *TableView) SetTable(t *table.Table) {
	tv.tbl = t
	if t != nil {
		for col := 0; col < t.NumCols(); col++ {
			tv.grid.SetColumnWidth(col, 120)
		}
	}
	tv.grid.Refresh()
}

// CanvasObject returns the renderable widget.
func (tv *TableView) CanvasObject() fyne.CanvasObject {
	return tv.grid
}
