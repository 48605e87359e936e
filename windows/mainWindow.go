package windows

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"splot/scatter"
	"splot/session"
	"splot/table"
)

const (
	prefLastDataDir = "lastDataDir"
	prefWindowW     = "windowWidth"
	prefWindowH     = "windowHeight"
)

type MainWindow struct {
	a fyne.App
	w fyne.Window

	top       fyne.CanvasObject
	bottom    fyne.CanvasObject
	statusBar *widget.Label

	panel     *EncodingPanel
	tableView *TableView
	chartView *ChartView
	tabs      *container.AppTabs

	state    session.State
	filePath string
}

func CreateMainWindow() *MainWindow {
	var v MainWindow
	v.NewMainWindow()
	return &v
}

// SetStatus updates the status bar message.
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

func (t *MainWindow) NewMainWindow() {
	t.a = app.NewWithID("splot")
	t.a.Settings().SetTheme(&CustomTheme{})
	t.w = t.a.NewWindow("splot")

	w := t.a.Preferences().FloatWithFallback(prefWindowW, 1100)
	h := t.a.Preferences().FloatWithFallback(prefWindowH, 760)
	t.w.Resize(fyne.NewSize(float32(w), float32(h)))
	t.w.SetOnClosed(func() {
		size := t.w.Canvas().Size()
		t.a.Preferences().SetFloat(prefWindowW, float64(size.Width))
		t.a.Preferences().SetFloat(prefWindowH, float64(size.Height))
	})

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}
	t.bottom = container.NewHBox(t.statusBar)

	t.tableView = NewTableView()

	t.chartView = NewChartView(func(rows []int) {
		t.dispatch(session.SelectionMade{Indices: rows})
	})

	t.panel = NewEncodingPanel()
	t.panel.OnEncodingChanged = func(enc scatter.Encoding) {
		t.dispatch(session.EncodingChanged{Encoding: enc})
	}
	t.panel.OnToolChanged = func(tool SelectionTool) {
		t.chartView.SetTool(tool)
	}
	t.panel.OnClearSelection = func() {
		t.dispatch(session.SelectionCleared{})
	}

	t.tabs = container.NewAppTabs(
		container.NewTabItem("Data", t.tableView.CanvasObject()),
		container.NewTabItem("Chart", t.chartView.CanvasObject()),
	)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			t.OpenDataFile()
		}),
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			t.ExportData()
		}),
	)
	t.top = toolbar

	left := container.NewVScroll(t.panel.CanvasObject())
	leftWrap := container.NewGridWrap(fyne.NewSize(220, 700), left)

	c := container.NewBorder(t.top, t.bottom, leftWrap, nil, t.tabs)
	t.w.SetContent(c)
	t.chartView.Redraw(t.state)
	t.w.ShowAndRun()
}

// OpenDataFile shows the file picker and loads the chosen file.
func (t *MainWindow) OpenDataFile() {
	startDir := t.a.Preferences().String(prefLastDataDir)
	fd := NewDataFileDialog(t.w, startDir, func(path string, err error) {
		if err != nil {
			t.SetStatus("Error opening file")
			dialog.ShowError(err, t.w)
			return
		}
		if path == "" {
			return
		}
		t.a.Preferences().SetString(prefLastDataDir, filepath.Dir(path))
		t.loadFile(path)
	})
	fd.Show()
}

// loadFile parses the file, derives the default encoding and replaces
// the session table. Nothing about the prior session survives a load.
func (t *MainWindow) loadFile(path string) {
	t.SetStatus("Loading " + truncatePath(path, 60) + "...")

	c := make(chan bool)
	go func(c chan bool) {
		pbi := widget.NewProgressBarInfinite()
		di := dialog.NewCustomWithoutButtons(fmt.Sprintf("Loading %s...", filepath.Base(path)), pbi, t.w)
		di.Resize(fyne.NewSize(300, 100))
		di.Show()
		pbi.Start()
		for {
			select {
			case <-c:
				di.Hide()
				pbi.Stop()
				return
			default:
				time.Sleep(time.Millisecond * 100)
			}
		}
	}(c)

	tbl, err := table.LoadFile(path)
	c <- true
	if err != nil {
		log.Printf("load %s: %v", path, err)
		t.SetStatus("Error loading file")
		dialog.ShowError(err, t.w)
		return
	}

	enc, err := scatter.DefaultEncoding(tbl)
	if err != nil {
		tbl.Release()
		log.Printf("load %s: %v", path, err)
		t.SetStatus("Error loading file")
		dialog.ShowError(err, t.w)
		return
	}

	old := t.state.Table
	t.filePath = path
	t.tableView.SetTable(tbl)
	t.panel.SetTable(tbl, enc)
	t.dispatch(session.FileLoaded{Table: tbl, Encoding: enc})
	if old != nil {
		old.Release()
	}

	log.Printf("loaded %s: %d rows, %d columns", path, tbl.NumRows(), tbl.NumCols())
	t.SetStatus(fmt.Sprintf("Loaded %s (%d rows, %d columns)",
		truncatePath(path, 60), tbl.NumRows(), tbl.NumCols()))
}

// dispatch routes one event through the session reducer and syncs the
// chart to the resulting state.
func (t *MainWindow) dispatch(e session.Event) {
	t.state = session.Reduce(t.state, e)

	if err := t.chartView.Redraw(t.state); err != nil {
		log.Printf("chart render: %v", err)
		t.SetStatus("Chart error")
		dialog.ShowError(err, t.w)
		return
	}

	switch t.state.Phase {
	case session.PhaseSelectionActive:
		t.SetStatus(fmt.Sprintf("Selection: %d rows", len(t.state.Selection)))
	default:
		if t.state.Table != nil {
			t.SetStatus("Ready")
		}
	}
}

// ExportData saves the active selection, or the full table when no
// selection exists, in a user-chosen format.
func (t *MainWindow) ExportData() {
	if t.state.Table == nil {
		dialog.ShowInformation("Nothing to Export", "Open a data file first.", t.w)
		return
	}

	target := t.state.Table
	base := filepath.Base(t.filePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if sel := t.chartView.Filtered(); sel != nil {
		target = sel
		name += "_selection"
	}

	formats := widget.NewRadioGroup([]string{"CSV", "Parquet", "JSON"}, nil)
	formats.Selected = "CSV"

	dialog.ShowCustomConfirm("Export Data", "Export", "Cancel", formats, func(ok bool) {
		if !ok {
			return
		}
		var format table.ExportFormat
		switch formats.Selected {
		case "Parquet":
			format = table.FormatParquet
		case "JSON":
			format = table.FormatJSON
		default:
			format = table.FormatCSV
		}
		exportTable(t.w, target, format, name)
	}, t.w)
}
