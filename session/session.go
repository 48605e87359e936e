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

// Package session models the interaction state of one browsing
// session as an explicit reducer: Reduce(State, Event) -> State.
//
// The interesting part is the selection lifecycle. A selection is
// created fresh by each lasso/box gesture, replaced wholesale by the
// next gesture, and invalidated by anything that rebuilds the primary
// chart: an encoding change or a table replacement. A selection that
// references rows outside the current table degrades silently to the
// no-selection phase.
package session

import (
	"sort"

	"splot/scatter"
	"splot/table"
)

// Phase is the selection filter's state machine phase.
type Phase int

const (
	// PhaseNoSelection is the initial phase after a chart render or
	// after an encoding change invalidated the prior chart.
	PhaseNoSelection Phase = iota
	// PhaseSelectionActive holds while a non-empty selection exists.
	PhaseSelectionActive
)

// String returns the phase name for status messages.
func (p Phase) String() string {
	switch p {
	case PhaseSelectionActive:
		return "SelectionActive"
	default:
		return "NoSelection"
	}
}

// State is the full mutable session state, passed explicitly through
// each interaction handler rather than held as process globals.
type State struct {
	// Table is the currently loaded table, nil before the first load.
	Table *table.Table

	// Encoding is the current channel mapping for the primary chart.
	Encoding scatter.Encoding

	// Selection holds the selected row indices, ascending and
	// deduplicated. Nil in PhaseNoSelection.
	Selection []int

	// Phase is the current selection filter phase.
	Phase Phase
}

// Event is one user interaction against the session.
type Event interface {
	isEvent()
}

// FileLoaded replaces the session's table. Any prior selection is
// discarded and the encoding resets to the new table's defaults.
type FileLoaded struct {
	Table    *table.Table
	Encoding scatter.Encoding
}

// EncodingChanged replaces the channel mapping. The primary chart is
// rebuilt, which invalidates the prior selection entirely.
type EncodingChanged struct {
	Encoding scatter.Encoding
}

// SelectionMade carries the row indices under a completed lasso or box
// gesture. The indices replace any prior selection wholesale.
type SelectionMade struct {
	Indices []int
}

// SelectionCleared reports an empty gesture or an explicit clear.
type SelectionCleared struct{}

func (FileLoaded) isEvent()       {}
func (EncodingChanged) isEvent()  {}
func (SelectionMade) isEvent()    {}
func (SelectionCleared) isEvent() {}

// Reduce applies one event to the state and returns the next state.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case FileLoaded:
		s.Table = ev.Table
		s.Encoding = ev.Encoding
		s.Selection = nil
		s.Phase = PhaseNoSelection

	case EncodingChanged:
		s.Encoding = ev.Encoding
		s.Selection = nil
		s.Phase = PhaseNoSelection

	case SelectionMade:
		sel := normalize(ev.Indices)
		if len(sel) == 0 || s.Table == nil || outOfRange(sel, s.Table.NumRows()) {
			// Stale or empty selections are not errors; they degrade
			// to the no-selection phase.
			s.Selection = nil
			s.Phase = PhaseNoSelection
			return s
		}
		s.Selection = sel
		s.Phase = PhaseSelectionActive

	case SelectionCleared:
		s.Selection = nil
		s.Phase = PhaseNoSelection
	}

	return s
}

// Filtered derives the read-only sub-table for the current selection:
// the table's rows at the selected indices, original column set,
// ascending original row order. It is recomputed on demand and returns
// nil in PhaseNoSelection.
func (s State) Filtered() (*table.Table, error) {
	if s.Phase != PhaseSelectionActive || s.Table == nil {
		return nil, nil
	}
	return table.Filter(s.Table, s.Selection)
}

// normalize sorts ascending and deduplicates a gesture's indices.
func normalize(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

// outOfRange reports whether any index falls outside [0, numRows).
// Assumes sorted input.
func outOfRange(sorted []int, numRows int) bool {
	return sorted[0] < 0 || sorted[len(sorted)-1] >= numRows
}
