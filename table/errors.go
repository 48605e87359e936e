package table

import "errors"

// Common errors returned by the table package.
var (
	// ErrUnsupportedFormat is returned when a file's extension is not
	// one of the recognized tabular formats.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInsufficientColumns is returned when a loaded table has fewer
	// than two columns and therefore cannot populate default axes.
	ErrInsufficientColumns = errors.New("table must have at least 2 columns")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrEmptyData is returned when a file contains no data rows at all.
	ErrEmptyData = errors.New("data is empty")

	// ErrExportFailed is returned when an export operation fails.
	ErrExportFailed = errors.New("export failed")
)
