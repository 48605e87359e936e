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

package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splot/table"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromGrid(
		[]string{"x", "y", "label", "size"},
		[][]string{
			{"0", "10", "a", "1"},
			{"1", "11", "b", "2"},
			{"2", "12", "c", "3"},
			{"3", "", "d", "4"},
			{"4", "14", "e", "5"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestDefaultEncoding(t *testing.T) {
	tbl := testTable(t)
	defer tbl.Release()

	enc, err := DefaultEncoding(tbl)
	require.NoError(t, err)

	assert.Equal(t, 0, enc.X)
	assert.Equal(t, 1, enc.Y)
	assert.Equal(t, NoColumn, enc.Color)
	assert.Equal(t, NoColumn, enc.Size)
	assert.Empty(t, enc.Hover)
}

func TestDefaultEncodingInsufficientColumns(t *testing.T) {
	tbl, err := table.FromGrid([]string{"only"}, [][]string{{"1"}})
	require.NoError(t, err)
	defer tbl.Release()

	_, err = DefaultEncoding(tbl)
	assert.ErrorIs(t, err, table.ErrInsufficientColumns)
}

func TestValidate(t *testing.T) {
	tbl := testTable(t)
	defer tbl.Release()

	tests := []struct {
		name    string
		enc     Encoding
		wantErr error
	}{
		{
			name: "numeric x and y",
			enc:  Encoding{X: 0, Y: 1, Color: NoColumn, Size: NoColumn},
		},
		{
			name:    "string x",
			enc:     Encoding{X: 2, Y: 1, Color: NoColumn, Size: NoColumn},
			wantErr: ErrIncompatibleEncoding,
		},
		{
			name:    "string y",
			enc:     Encoding{X: 0, Y: 2, Color: NoColumn, Size: NoColumn},
			wantErr: ErrIncompatibleEncoding,
		},
		{
			name: "string color is fine",
			enc:  Encoding{X: 0, Y: 1, Color: 2, Size: NoColumn},
		},
		{
			name: "numeric size",
			enc:  Encoding{X: 0, Y: 1, Color: NoColumn, Size: 3},
		},
		{
			name:    "string size",
			enc:     Encoding{X: 0, Y: 1, Color: NoColumn, Size: 2},
			wantErr: ErrIncompatibleEncoding,
		},
		{
			name: "hover takes any column",
			enc:  Encoding{X: 0, Y: 1, Color: NoColumn, Size: NoColumn, Hover: []int{2, 3}},
		},
		{
			name:    "x out of range",
			enc:     Encoding{X: 9, Y: 1, Color: NoColumn, Size: NoColumn},
			wantErr: table.ErrInvalidColumn,
		},
		{
			name:    "hover out of range",
			enc:     Encoding{X: 0, Y: 1, Color: NoColumn, Size: NoColumn, Hover: []int{9}},
			wantErr: table.ErrInvalidColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.enc.Validate(tbl)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
