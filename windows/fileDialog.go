package windows

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DataFileDialog is a directory-browsing picker for tabular data
// files. Only .csv and .xlsx files (and directories) are listed; the
// extension gate proper lives in the table loader, this is just a
// courtesy filter.
type DataFileDialog struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string, error)
	fileList    *widget.List
	files       []string
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
}

func NewDataFileDialog(w fyne.Window, startDir string, callback func(string, error)) *DataFileDialog {
	fd := &DataFileDialog{
		window:   w,
		callback: callback,
		files:    make([]string, 0),
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fd.homeDir = homeDir
	fd.currentPath = homeDir
	if startDir != "" {
		if info, err := os.Stat(startDir); err == nil && info.IsDir() {
			fd.currentPath = startDir
		}
	}

	return fd
}

// CurrentPath returns the directory the dialog is showing, so callers
// can remember it for the next open.
func (fd *DataFileDialog) CurrentPath() string {
	return fd.currentPath
}

func isDataFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".xlsx")
}

func (fd *DataFileDialog) Show() {
	fd.pathLabel = widget.NewLabel(fd.currentPath)
	fd.pathLabel.Wrapping = fyne.TextTruncate
	fd.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	fd.fileList = widget.NewList(
		func() int {
			return len(fd.files)
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(theme.DocumentIcon())
			label := widget.NewLabel("template")
			return container.NewHBox(icon, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cont := obj.(*fyne.Container)
			icon := cont.Objects[0].(*widget.Icon)
			label := cont.Objects[1].(*widget.Label)

			fileName := fd.files[id]
			label.SetText(fileName)

			fullPath := filepath.Join(fd.currentPath, fileName)
			fileInfo, err := os.Stat(fullPath)
			if err == nil && fileInfo.IsDir() {
				icon.SetResource(theme.FolderIcon())
			} else if isDataFile(fileName) {
				icon.SetResource(theme.DocumentIcon())
			} else {
				icon.SetResource(theme.FileIcon())
			}
		},
	)

	fd.fileList.OnSelected = func(id widget.ListItemID) {
		fileName := fd.files[id]
		fullPath := filepath.Join(fd.currentPath, fileName)

		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return
		}

		if fileInfo.IsDir() {
			fd.currentPath = fullPath
			fd.loadDirectory()
			fd.fileList.UnselectAll()
		} else {
			fd.callback(fullPath, nil)
			fd.dialog.Hide()
		}
	}

	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fd.currentPath = fd.homeDir
		fd.loadDirectory()
	})

	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		parent := filepath.Dir(fd.currentPath)
		if parent != fd.currentPath {
			fd.currentPath = parent
			fd.loadDirectory()
		}
	})

	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		fd.loadDirectory()
	})

	filterInfo := widget.NewLabel("Showing: .csv and .xlsx files, and directories")
	filterInfo.TextStyle = fyne.TextStyle{Italic: true}

	navToolbar := container.NewBorder(
		nil, nil,
		container.NewHBox(homeButton, upButton, refreshButton),
		nil,
		fd.pathLabel,
	)

	instructions := widget.NewRichTextFromMarkdown("**Select a data file (.csv or .xlsx)**\n\nClick a folder to navigate, or click a file to load it.")
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		container.NewVBox(
			instructions,
			widget.NewSeparator(),
			navToolbar,
			widget.NewSeparator(),
			filterInfo,
		),
		nil, nil, nil,
		fd.fileList,
	)

	fd.dialog = dialog.NewCustom("Open Data File", "Close", content, fd.window)
	fd.dialog.Resize(fyne.NewSize(800, 600))

	fd.loadDirectory()

	fd.dialog.Show()
}

func (fd *DataFileDialog) loadDirectory() {
	entries, err := os.ReadDir(fd.currentPath)
	if err != nil {
		dialog.ShowError(err, fd.window)
		return
	}

	fd.files = make([]string, 0)

	// Add directories first
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			fd.files = append(fd.files, entry.Name())
		}
	}

	// Then the data files
	for _, entry := range entries {
		if !entry.IsDir() && isDataFile(entry.Name()) {
			fd.files = append(fd.files, entry.Name())
		}
	}

	fd.pathLabel.SetText(fd.currentPath)
	fd.fileList.Refresh()
}
