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

// Filter derives a new Table holding the rows of t at the given
// indices, in the given order, with the original column set. The
// arrays are rebuilt so the result is independent of t's lifetime.
func Filter(t *Table, indices []int) (*Table, error) {
	n := t.NumRows()
	for _, ix := range indices {
		if ix < 0 || ix >= n {
			return nil, fmt.Errorf("%w: %d (table has %d rows)", ErrInvalidRow, ix, n)
		}
	}

	pool := memory.NewGoAllocator()
	names := t.ColumnNames()
	types := make([]DataType, t.NumCols())
	cols := make([]arrow.Array, t.NumCols())

	for col := 0; col < t.NumCols(); col++ {
		types[col] = t.types[col]
		builder := array.NewBuilder(pool, arrowType(types[col]))

		src := t.rec.Column(col)
		for _, row := range indices {
			appendFromArray(builder, src, row)
		}

		cols[col] = builder.NewArray()
		builder.Release()
	}

	return newTable(names, types, cols, len(indices)), nil
}

// appendFromArray appends a single typed value from an Arrow array to
// a builder of the same type.
func appendFromArray(builder array.Builder, col arrow.Array, pos int) {
	if col.IsNull(pos) {
		builder.AppendNull()
		return
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		builder.(*array.StringBuilder).Append(col.(*array.String).Value(pos))
	case arrow.INT64:
		builder.(*array.Int64Builder).Append(col.(*array.Int64).Value(pos))
	case arrow.FLOAT64:
		builder.(*array.Float64Builder).Append(col.(*array.Float64).Value(pos))
	case arrow.BOOL:
		builder.(*array.BooleanBuilder).Append(col.(*array.Boolean).Value(pos))
	default:
		builder.AppendNull()
	}
}
