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

// Package table holds the in-memory tabular data model and the file
// loaders that produce it. A Table is an immutable, ordered collection
// of rows with named, typed columns backed by Apache Arrow arrays.
package table

import (
	"fmt"
	"strconv"
)

// DataType represents the inferred type of data in a column.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data.
	TypeInt
	// TypeFloat represents floating-point data.
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// IsNumeric reports whether values of this type can feed a numeric
// chart channel (position or size).
func (dt DataType) IsNumeric() bool {
	return dt == TypeInt || dt == TypeFloat
}

// Value is a typed container for cell values.
// It holds the raw value, type information, and a pre-formatted string
// for display.
type Value struct {
	// Raw holds the underlying value.
	// The type depends on the DataType field.
	Raw interface{}

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/nil.
	IsNull bool

	// Formatted is a pre-formatted string representation for display.
	Formatted string
}

// NewValue creates a new Value from a raw value and type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return NewNullValue(dataType)
	}

	return Value{
		Raw:       raw,
		Type:      dataType,
		IsNull:    false,
		Formatted: formatRaw(raw, dataType),
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Raw:       nil,
		Type:      dataType,
		IsNull:    true,
		Formatted: "",
	}
}

// Float returns the value coerced to float64. The second result is
// false when the value is null or not numeric.
func (v Value) Float() (float64, bool) {
	if v.IsNull {
		return 0, false
	}
	switch x := v.Raw.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// formatRaw converts a raw value to a formatted string.
func formatRaw(raw interface{}, dataType DataType) string {
	switch dataType {
	case TypeInt:
		if i, ok := raw.(int64); ok {
			return strconv.FormatInt(i, 10)
		}
	case TypeFloat:
		if f, ok := raw.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case TypeBool:
		if b, ok := raw.(bool); ok {
			return strconv.FormatBool(b)
		}
	}
	return fmt.Sprintf("%v", raw)
}
