package windows

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"splot/table"
)

// exportTable drives the save dialog and progress indicator around a
// table export. The export itself runs on the dialog callback thread;
// the progress dialog spins in its own goroutine until signalled.
func exportTable(w fyne.Window, t *table.Table, format table.ExportFormat, baseName string) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}
		defer writer.Close()

		filePath := writer.URI().Path()

		c := make(chan bool)
		go func(c chan bool) {
			pbi := widget.NewProgressBarInfinite()
			progressDialog := dialog.NewCustomWithoutButtons("Exporting...", pbi, w)
			progressDialog.Resize(fyne.NewSize(300, 100))
			progressDialog.Show()
			pbi.Start()
			for {
				select {
				case <-c:
					progressDialog.Hide()
					pbi.Stop()
					return
				default:
					time.Sleep(time.Millisecond * 500)
				}
			}
		}(c)

		exportErr := table.Export(t, format, filePath)

		c <- true

		if exportErr != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", exportErr), w)
		} else {
			dialog.ShowInformation("Export Successful",
				fmt.Sprintf("Data exported successfully to:\n%s", filePath), w)
		}
	}, w)

	saveDialog.SetFileName(cleanFilename(baseName) + format.Ext())
	saveDialog.Show()
}

// cleanFilename turns an arbitrary display name into a safe filename
// stem: spaces become underscores, anything exotic is dropped.
func cleanFilename(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "export"
	}
	return b.String()
}
