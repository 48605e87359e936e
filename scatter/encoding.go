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

// Package scatter maps table columns onto the visual channels of a 2-D
// scatter chart and renders it, recording enough plot geometry that an
// interactive overlay can translate a drawn region back into row
// indices.
package scatter

import (
	"errors"
	"fmt"

	"splot/table"
)

// NoColumn marks an unused optional channel.
const NoColumn = -1

// Encoding maps table columns to chart channels. X and Y are
// mandatory column indices; Color and Size are optional (NoColumn when
// unused); Hover lists the columns shown on pointer-over.
type Encoding struct {
	X     int
	Y     int
	Color int
	Size  int
	Hover []int
}

// ErrIncompatibleEncoding is returned when a channel references a
// column whose data type cannot feed that channel, surfaced before the
// chart library gets a chance to fail on its own.
var ErrIncompatibleEncoding = errors.New("incompatible encoding")

// DefaultEncoding returns the default channel mapping for a freshly
// loaded table: x is the first column, y the second, everything else
// unset.
func DefaultEncoding(t *table.Table) (Encoding, error) {
	if t.NumCols() < 2 {
		return Encoding{}, table.ErrInsufficientColumns
	}
	return Encoding{X: 0, Y: 1, Color: NoColumn, Size: NoColumn}, nil
}

// Validate checks the encoding against the table's columns. X and Y
// must reference existing numeric columns; a Size column must be
// numeric. Color and Hover accept any column type.
func (e Encoding) Validate(t *table.Table) error {
	for _, ch := range []struct {
		name string
		col  int
	}{{"x", e.X}, {"y", e.Y}} {
		dt, err := t.ColumnType(ch.col)
		if err != nil {
			return fmt.Errorf("%s channel: %w", ch.name, err)
		}
		if !dt.IsNumeric() {
			name, _ := t.ColumnName(ch.col)
			return fmt.Errorf("%w: %s channel needs a numeric column, %q is %s",
				ErrIncompatibleEncoding, ch.name, name, dt)
		}
	}

	if e.Color != NoColumn {
		if _, err := t.ColumnType(e.Color); err != nil {
			return fmt.Errorf("color channel: %w", err)
		}
	}

	if e.Size != NoColumn {
		dt, err := t.ColumnType(e.Size)
		if err != nil {
			return fmt.Errorf("size channel: %w", err)
		}
		if !dt.IsNumeric() {
			name, _ := t.ColumnName(e.Size)
			return fmt.Errorf("%w: size channel needs a numeric column, %q is %s",
				ErrIncompatibleEncoding, name, dt)
		}
	}

	for _, col := range e.Hover {
		if _, err := t.ColumnType(col); err != nil {
			return fmt.Errorf("hover channel: %w", err)
		}
	}

	return nil
}
