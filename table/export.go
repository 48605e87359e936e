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

package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ExportFormat represents the supported export formats.
type ExportFormat int

const (
	FormatCSV ExportFormat = iota
	FormatParquet
	FormatJSON
)

// Ext returns the file extension for the format, including the dot.
func (f ExportFormat) Ext() string {
	switch f {
	case FormatParquet:
		return ".parquet"
	case FormatJSON:
		return ".json"
	default:
		return ".csv"
	}
}

// Export writes the table to filePath in the given format.
func Export(t *Table, format ExportFormat, filePath string) error {
	switch format {
	case FormatParquet:
		return ExportParquet(t, filePath)
	case FormatJSON:
		return ExportJSON(t, filePath)
	case FormatCSV:
		return ExportCSV(t, filePath)
	default:
		return fmt.Errorf("%w: unknown format %d", ErrExportFailed, format)
	}
}

// ExportParquet writes the table to a Parquet file with snappy
// compression and the Arrow schema stored alongside.
func ExportParquet(t *Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	at := t.Arrow()
	defer at.Release()

	writer, err := pqarrow.NewFileWriter(at.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteTable(at, at.NumRows()); err != nil {
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	return nil
}

// ExportCSV writes the table to a comma-delimited file with a header
// row.
func ExportCSV(t *Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, t.NumCols())
	for r := 0; r < t.NumRows(); r++ {
		for c := 0; c < t.NumCols(); c++ {
			v, err := t.Cell(r, c)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrExportFailed, err)
			}
			row[c] = v.Formatted
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ExportJSON writes the table as an indented JSON array of objects,
// preserving value types.
func ExportJSON(t *Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	names := t.ColumnNames()
	records := make([]map[string]interface{}, 0, t.NumRows())
	for r := 0; r < t.NumRows(); r++ {
		record := make(map[string]interface{}, t.NumCols())
		for c := 0; c < t.NumCols(); c++ {
			v, err := t.Cell(r, c)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrExportFailed, err)
			}
			if v.IsNull {
				record[names[c]] = nil
			} else {
				record[names[c]] = v.Raw
			}
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
