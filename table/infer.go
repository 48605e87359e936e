package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// cellAt returns the raw string cell for a possibly short row. Missing
// cells read as empty, which the builders treat as null.
func cellAt(rows [][]string, row, col int) string {
	if col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

// inferColumnType scans a column's raw string cells and picks the
// narrowest type that holds every non-empty cell: Int, then Float,
// then Bool, falling back to String. An all-empty column is String.
func inferColumnType(rows [][]string, col int) DataType {
	allInt, allFloat, allBool := true, true, true
	seen := false

	for row := range rows {
		s := strings.TrimSpace(cellAt(rows, row, col))
		if s == "" {
			continue
		}
		seen = true
		if allInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if _, err := strconv.ParseBool(s); err != nil {
				allBool = false
			}
		}
		if !allInt && !allFloat && !allBool {
			return TypeString
		}
	}

	switch {
	case !seen:
		return TypeString
	case allInt:
		return TypeInt
	case allFloat:
		return TypeFloat
	case allBool:
		return TypeBool
	default:
		return TypeString
	}
}

// buildColumn converts one column of raw string cells into an Arrow
// array of the inferred type.
func buildColumn(pool memory.Allocator, dt DataType, rows [][]string, col int) (arrow.Array, error) {
	switch dt {
	case TypeInt:
		b := array.NewInt64Builder(pool)
		defer b.Release()
		for row := range rows {
			s := strings.TrimSpace(cellAt(rows, row, col))
			if s == "" {
				b.AppendNull()
				continue
			}
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			b.Append(v)
		}
		return b.NewArray(), nil

	case TypeFloat:
		b := array.NewFloat64Builder(pool)
		defer b.Release()
		for row := range rows {
			s := strings.TrimSpace(cellAt(rows, row, col))
			if s == "" {
				b.AppendNull()
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			b.Append(v)
		}
		return b.NewArray(), nil

	case TypeBool:
		b := array.NewBooleanBuilder(pool)
		defer b.Release()
		for row := range rows {
			s := strings.TrimSpace(cellAt(rows, row, col))
			if s == "" {
				b.AppendNull()
				continue
			}
			v, err := strconv.ParseBool(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			b.Append(v)
		}
		return b.NewArray(), nil

	default:
		b := array.NewStringBuilder(pool)
		defer b.Release()
		for row := range rows {
			s := cellAt(rows, row, col)
			if s == "" {
				b.AppendNull()
				continue
			}
			b.Append(s)
		}
		return b.NewArray(), nil
	}
}
