package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"splot/scatter"
	"splot/table"
)

const noneOption = "(none)"

// EncodingPanel is the sidebar of channel selectors: X and Y are
// mandatory selects, Color and Size optional, Hover a multi-select.
// It also hosts the selection tool picker and the clear button. No
// cross-validation happens here; misconfigurations surface from the
// renderer.
type EncodingPanel struct {
	columns []string

	xSelect     *widget.Select
	ySelect     *widget.Select
	colorSelect *widget.Select
	sizeSelect  *widget.Select
	hoverGroup  *widget.CheckGroup
	toolRadio   *widget.RadioGroup
	clearBtn    *widget.Button

	// suppress change callbacks while options are being rebuilt
	rebuilding bool

	OnEncodingChanged func(scatter.Encoding)
	OnToolChanged     func(SelectionTool)
	OnClearSelection  func()

	content fyne.CanvasObject
}

func NewEncodingPanel() *EncodingPanel {
	p := &EncodingPanel{}

	changed := func(string) {
		if p.rebuilding {
			return
		}
		if p.OnEncodingChanged != nil {
			p.OnEncodingChanged(p.Encoding())
		}
	}

	p.xSelect = widget.NewSelect(nil, changed)
	p.ySelect = widget.NewSelect(nil, changed)
	p.colorSelect = widget.NewSelect(nil, changed)
	p.sizeSelect = widget.NewSelect(nil, changed)
	p.hoverGroup = widget.NewCheckGroup(nil, func([]string) {
		if p.rebuilding {
			return
		}
		if p.OnEncodingChanged != nil {
			p.OnEncodingChanged(p.Encoding())
		}
	})

	p.toolRadio = widget.NewRadioGroup([]string{"Box", "Lasso"}, func(v string) {
		if p.OnToolChanged == nil {
			return
		}
		if v == "Lasso" {
			p.OnToolChanged(ToolLasso)
		} else {
			p.OnToolChanged(ToolBox)
		}
	})
	p.toolRadio.Selected = "Box"

	p.clearBtn = widget.NewButton("Clear Selection", func() {
		if p.OnClearSelection != nil {
			p.OnClearSelection()
		}
	})

	hoverScroll := container.NewVScroll(p.hoverGroup)
	hoverScroll.SetMinSize(fyne.NewSize(160, 120))

	p.content = container.NewVBox(
		widget.NewCard("", "Encodings", container.NewVBox(
			widget.NewLabel("X axis"), p.xSelect,
			widget.NewLabel("Y axis"), p.ySelect,
			widget.NewLabel("Color"), p.colorSelect,
			widget.NewLabel("Size"), p.sizeSelect,
			widget.NewLabel("Hover fields"), hoverScroll,
		)),
		widget.NewCard("", "Selection", container.NewVBox(
			p.toolRadio,
			p.clearBtn,
		)),
	)

	return p
}

// SetTable rebuilds the selector options for a freshly loaded table
// and applies the given encoding as the selected state.
func (p *EncodingPanel) SetTable(t *table.Table, enc scatter.Encoding) {
	p.rebuilding = true
	defer func() { p.rebuilding = false }()

	p.columns = t.ColumnNames()
	optional := append([]string{noneOption}, p.columns...)

	p.xSelect.Options = p.columns
	p.ySelect.Options = p.columns
	p.colorSelect.Options = optional
	p.sizeSelect.Options = optional
	p.hoverGroup.Options = p.columns

	p.xSelect.Selected = p.columns[enc.X]
	p.ySelect.Selected = p.columns[enc.Y]
	p.colorSelect.Selected = optionName(p.columns, enc.Color)
	p.sizeSelect.Selected = optionName(p.columns, enc.Size)

	hover := make([]string, 0, len(enc.Hover))
	for _, col := range enc.Hover {
		if col >= 0 && col < len(p.columns) {
			hover = append(hover, p.columns[col])
		}
	}
	p.hoverGroup.Selected = hover

	p.xSelect.Refresh()
	p.ySelect.Refresh()
	p.colorSelect.Refresh()
	p.sizeSelect.Refresh()
	p.hoverGroup.Refresh()
}

func optionName(columns []string, col int) string {
	if col < 0 || col >= len(columns) {
		return noneOption
	}
	return columns[col]
}

// Encoding reads the current widget state back into an Encoding.
func (p *EncodingPanel) Encoding() scatter.Encoding {
	enc := scatter.Encoding{
		X:     columnIndex(p.columns, p.xSelect.Selected, 0),
		Y:     columnIndex(p.columns, p.ySelect.Selected, 1),
		Color: columnIndex(p.columns, p.colorSelect.Selected, scatter.NoColumn),
		Size:  columnIndex(p.columns, p.sizeSelect.Selected, scatter.NoColumn),
	}
	for _, name := range p.hoverGroup.Selected {
		if ix := columnIndex(p.columns, name, scatter.NoColumn); ix != scatter.NoColumn {
			enc.Hover = append(enc.Hover, ix)
		}
	}
	return enc
}

func columnIndex(columns []string, name string, fallback int) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return fallback
}

// CanvasObject returns the renderable panel.
func (p *EncodingPanel) CanvasObject() fyne.CanvasObject {
	return p.content
}
