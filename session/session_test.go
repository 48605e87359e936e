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

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splot/scatter"
	"splot/table"
)

func loadedState(t *testing.T) State {
	t.Helper()
	tbl, err := table.FromGrid(
		[]string{"x", "y", "label"},
		[][]string{
			{"0", "10", "a"},
			{"1", "11", "b"},
			{"2", "12", "c"},
			{"3", "13", "d"},
			{"4", "14", "e"},
		},
	)
	require.NoError(t, err)
	t.Cleanup(tbl.Release)

	enc, err := scatter.DefaultEncoding(tbl)
	require.NoError(t, err)

	return Reduce(State{}, FileLoaded{Table: tbl, Encoding: enc})
}

func TestFileLoaded(t *testing.T) {
	s := loadedState(t)

	assert.NotNil(t, s.Table)
	assert.Equal(t, 0, s.Encoding.X)
	assert.Equal(t, 1, s.Encoding.Y)
	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
}

func TestSelectionMade(t *testing.T) {
	s := loadedState(t)

	s = Reduce(s, SelectionMade{Indices: []int{4, 0, 2}})
	assert.Equal(t, PhaseSelectionActive, s.Phase)
	assert.Equal(t, []int{0, 2, 4}, s.Selection, "indices are sorted ascending")
}

func TestSelectionNormalized(t *testing.T) {
	s := loadedState(t)

	s = Reduce(s, SelectionMade{Indices: []int{2, 2, 0, 4, 0}})
	assert.Equal(t, []int{0, 2, 4}, s.Selection, "duplicates collapse")
}

func TestSelectionReplacedWholesale(t *testing.T) {
	s := loadedState(t)

	s = Reduce(s, SelectionMade{Indices: []int{0, 1}})
	s = Reduce(s, SelectionMade{Indices: []int{3}})
	assert.Equal(t, []int{3}, s.Selection, "a new gesture does not accumulate")
	assert.Equal(t, PhaseSelectionActive, s.Phase)
}

func TestEmptySelectionDegrades(t *testing.T) {
	s := loadedState(t)

	s = Reduce(s, SelectionMade{Indices: []int{1, 2}})
	s = Reduce(s, SelectionMade{Indices: nil})
	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
}

func TestStaleSelectionDegradesSilently(t *testing.T) {
	s := loadedState(t)

	// indices past the table's 5 rows are stale, not an error
	s = Reduce(s, SelectionMade{Indices: []int{2, 99}})
	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)

	s = Reduce(s, SelectionMade{Indices: []int{-1}})
	assert.Equal(t, PhaseNoSelection, s.Phase)
}

func TestSelectionWithoutTableDegrades(t *testing.T) {
	s := Reduce(State{}, SelectionMade{Indices: []int{0}})
	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
}

func TestEncodingChangeInvalidatesSelection(t *testing.T) {
	s := loadedState(t)

	s = Reduce(s, SelectionMade{Indices: []int{1, 3}})
	require.Equal(t, PhaseSelectionActive, s.Phase)

	enc := s.Encoding
	enc.Y = 0
	s = Reduce(s, EncodingChanged{Encoding: enc})

	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
	assert.Equal(t, 0, s.Encoding.Y)
}

func TestFileLoadInvalidatesSelection(t *testing.T) {
	s := loadedState(t)
	s = Reduce(s, SelectionMade{Indices: []int{1}})
	require.Equal(t, PhaseSelectionActive, s.Phase)

	tbl, err := table.FromGrid([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	t.Cleanup(tbl.Release)
	enc, err := scatter.DefaultEncoding(tbl)
	require.NoError(t, err)

	s = Reduce(s, FileLoaded{Table: tbl, Encoding: enc})
	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
	assert.Same(t, tbl, s.Table)
}

func TestSelectionCleared(t *testing.T) {
	s := loadedState(t)
	s = Reduce(s, SelectionMade{Indices: []int{0, 1, 2}})
	s = Reduce(s, SelectionCleared{})

	assert.Equal(t, PhaseNoSelection, s.Phase)
	assert.Nil(t, s.Selection)
	assert.NotNil(t, s.Table, "clearing the selection keeps the table")
}

func TestFiltered(t *testing.T) {
	s := loadedState(t)

	sub, err := s.Filtered()
	require.NoError(t, err)
	assert.Nil(t, sub, "no selection, no sub-table")

	s = Reduce(s, SelectionMade{Indices: []int{4, 0, 2}})
	sub, err = s.Filtered()
	require.NoError(t, err)
	require.NotNil(t, sub)
	defer sub.Release()

	assert.Equal(t, 3, sub.NumRows())
	assert.Equal(t, s.Table.ColumnNames(), sub.ColumnNames())

	labels := make([]string, sub.NumRows())
	for r := range labels {
		v, err := sub.Cell(r, 2)
		require.NoError(t, err)
		labels[r] = v.Formatted
	}
	assert.Equal(t, []string{"a", "c", "e"}, labels, "rows stay in original table order")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "NoSelection", PhaseNoSelection.String())
	assert.Equal(t, "SelectionActive", PhaseSelectionActive.String())
}
