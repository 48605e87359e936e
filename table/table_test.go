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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGridTypeInference(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"name", "count", "ratio", "active"},
		[][]string{
			{"alpha", "1", "0.5", "true"},
			{"beta", "2", "1.25", "false"},
			{"gamma", "3", "2", "true"},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 4, tbl.NumCols())
	assert.Equal(t, []string{"name", "count", "ratio", "active"}, tbl.ColumnNames())

	for col, want := range []DataType{TypeString, TypeInt, TypeFloat, TypeBool} {
		dt, err := tbl.ColumnType(col)
		require.NoError(t, err)
		assert.Equal(t, want, dt, "column %d", col)
	}
}

func TestFromGridMixedNumericBecomesFloat(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"2.5", "y"},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	dt, err := tbl.ColumnType(0)
	require.NoError(t, err)
	assert.Equal(t, TypeFloat, dt)
}

func TestFromGridEmptyCellsAreNull(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"", "y"},
			{"3", ""},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	v, err := tbl.Cell(1, 0)
	require.NoError(t, err)
	assert.True(t, v.IsNull)
	assert.Equal(t, "", v.Formatted)

	v, err = tbl.Cell(2, 1)
	require.NoError(t, err)
	assert.True(t, v.IsNull)

	// inference skips empty cells, so column a is still numeric
	dt, err := tbl.ColumnType(0)
	require.NoError(t, err)
	assert.Equal(t, TypeInt, dt)
}

func TestFromGridShortRowsPadWithNulls(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "x", "true"},
			{"2"},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	v, err := tbl.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, v.IsNull)

	v, err = tbl.Cell(1, 2)
	require.NoError(t, err)
	assert.True(t, v.IsNull)
}

func TestFromGridAllEmptyColumnIsString(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"a", "b"},
		[][]string{
			{"1", ""},
			{"2", ""},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	dt, err := tbl.ColumnType(1)
	require.NoError(t, err)
	assert.Equal(t, TypeString, dt)
}

func TestFromGridEmptyHeader(t *testing.T) {
	_, err := FromGrid(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestCellBounds(t *testing.T) {
	tbl, err := FromGrid([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	defer tbl.Release()

	_, err = tbl.Cell(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidRow)
	_, err = tbl.Cell(1, 0)
	assert.ErrorIs(t, err, ErrInvalidRow)
	_, err = tbl.Cell(0, 2)
	assert.ErrorIs(t, err, ErrInvalidColumn)
	_, err = tbl.ColumnName(5)
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestFloatCoercion(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"i", "f", "s"},
		[][]string{
			{"7", "2.5", "x"},
			{"", "1", "y"},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	v, ok := tbl.Float(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	v, ok = tbl.Float(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = tbl.Float(1, 0)
	assert.False(t, ok, "null cell")

	_, ok = tbl.Float(0, 2)
	assert.False(t, ok, "string column")
}

func TestRow(t *testing.T) {
	tbl, err := FromGrid(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"2", "y"},
		},
	)
	require.NoError(t, err)
	defer tbl.Release()

	vals, err := tbl.Row(1)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "2", vals[0].Formatted)
	assert.Equal(t, "y", vals[1].Formatted)

	_, err = tbl.Row(2)
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestValueFormatting(t *testing.T) {
	assert.Equal(t, "42", NewValue(int64(42), TypeInt).Formatted)
	assert.Equal(t, "1.5", NewValue(1.5, TypeFloat).Formatted)
	assert.Equal(t, "true", NewValue(true, TypeBool).Formatted)
	assert.Equal(t, "hi", NewValue("hi", TypeString).Formatted)

	null := NewNullValue(TypeFloat)
	assert.True(t, null.IsNull)
	_, ok := null.Float()
	assert.False(t, ok)
}
