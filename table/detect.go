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
	"path/filepath"
	"strings"
)

// FileType represents the type of data file.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeXLSX
)

// DetectFileType determines the type of file based on extension. The
// extension is the sole discriminator; content is never sniffed.
func DetectFileType(filePath string) FileType {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return FileTypeCSV
	case ".xlsx":
		return FileTypeXLSX
	default:
		return FileTypeUnknown
	}
}

// LoadFile loads a data file using the loader for its extension. Files
// with an unrecognized extension fail with ErrUnsupportedFormat before
// any content is read.
func LoadFile(filePath string) (*Table, error) {
	switch DetectFileType(filePath) {
	case FileTypeCSV:
		return LoadCSV(filePath)
	case FileTypeXLSX:
		return LoadXLSX(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filePath))
	}
}
