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
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Table is an immutable, ordered collection of rows with named, typed
// columns. Row order is stable and defines the row indices 0..N-1 used
// for selection addressing. The data lives in a single Arrow record.
type Table struct {
	schema *arrow.Schema
	rec    arrow.Record
	types  []DataType
}

// arrowType maps a column DataType to its Arrow storage type.
func arrowType(dt DataType) arrow.DataType {
	switch dt {
	case TypeInt:
		return arrow.PrimitiveTypes.Int64
	case TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case TypeBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// newTable wraps a set of freshly built Arrow arrays. Ownership of the
// arrays transfers to the table.
func newTable(names []string, types []DataType, cols []arrow.Array, numRows int) *Table {
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		fields[i] = arrow.Field{Name: name, Type: arrowType(types[i]), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, cols, int64(numRows))
	for _, c := range cols {
		c.Release()
	}
	return &Table{schema: schema, rec: rec, types: types}
}

// FromGrid builds a Table from a header row and a grid of raw string
// cells. Column types are inferred over the full grid; empty cells
// become nulls. Short rows are padded with nulls.
func FromGrid(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmptyData
	}

	types := make([]DataType, len(header))
	for col := range header {
		types[col] = inferColumnType(rows, col)
	}

	pool := memory.NewGoAllocator()
	cols := make([]arrow.Array, len(header))
	for col := range header {
		arr, err := buildColumn(pool, types[col], rows, col)
		if err != nil {
			for _, c := range cols {
				if c != nil {
					c.Release()
				}
			}
			return nil, fmt.Errorf("column %q: %w", header[col], err)
		}
		cols[col] = arr
	}

	return newTable(header, types, cols, len(rows)), nil
}

// Release frees the underlying Arrow memory.
func (t *Table) Release() {
	if t.rec != nil {
		t.rec.Release()
		t.rec = nil
	}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return int(t.rec.NumRows()) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return int(t.rec.NumCols()) }

// ColumnNames returns all column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, t.NumCols())
	for i, f := range t.schema.Fields() {
		names[i] = f.Name
	}
	return names
}

// ColumnName returns the name of the column at the given index.
func (t *Table) ColumnName(col int) (string, error) {
	if col < 0 || col >= t.NumCols() {
		return "", ErrInvalidColumn
	}
	return t.schema.Field(col).Name, nil
}

// ColumnType returns the inferred data type of the column at the given
// index.
func (t *Table) ColumnType(col int) (DataType, error) {
	if col < 0 || col >= t.NumCols() {
		return TypeString, ErrInvalidColumn
	}
	return t.types[col], nil
}

// Cell returns the value at the specified row and column.
func (t *Table) Cell(row, col int) (Value, error) {
	if row < 0 || row >= t.NumRows() {
		return Value{}, ErrInvalidRow
	}
	if col < 0 || col >= t.NumCols() {
		return Value{}, ErrInvalidColumn
	}

	arr := t.rec.Column(col)
	dt := t.types[col]
	if arr.IsNull(row) {
		return NewNullValue(dt), nil
	}

	switch a := arr.(type) {
	case *array.String:
		return NewValue(a.Value(row), dt), nil
	case *array.Int64:
		return NewValue(a.Value(row), dt), nil
	case *array.Float64:
		return NewValue(a.Value(row), dt), nil
	case *array.Boolean:
		return NewValue(a.Value(row), dt), nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected storage %s", ErrInvalidColumn, arr.DataType())
	}
}

// Row returns all values for the specified row.
func (t *Table) Row(row int) ([]Value, error) {
	if row < 0 || row >= t.NumRows() {
		return nil, ErrInvalidRow
	}
	vals := make([]Value, t.NumCols())
	for col := range vals {
		v, err := t.Cell(row, col)
		if err != nil {
			return nil, err
		}
		vals[col] = v
	}
	return vals, nil
}

// Float returns the cell at (row, col) coerced to float64. The second
// result is false when the cell is null or the column is not numeric.
func (t *Table) Float(row, col int) (float64, bool) {
	v, err := t.Cell(row, col)
	if err != nil {
		return 0, false
	}
	return v.Float()
}

// Arrow materializes the table as an arrow.Table for export. The
// caller must Release the result.
func (t *Table) Arrow() arrow.Table {
	return array.NewTableFromRecords(t.schema, []arrow.Record{t.rec})
}
