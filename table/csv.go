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
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// detectCSVSeparator tries to detect the separator from the first line.
func detectCSVSeparator(filePath string) (rune, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return ',', fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		// Empty file or error, use default comma
		return ',', nil
	}

	firstLine := scanner.Text()
	if firstLine == "" {
		return ',', nil
	}

	// Count occurrences of common separators
	separators := map[rune]int{
		',':  strings.Count(firstLine, ","),
		';':  strings.Count(firstLine, ";"),
		'\t': strings.Count(firstLine, "\t"),
		'|':  strings.Count(firstLine, "|"),
	}

	// Pick the separator with the highest count
	maxCount := 0
	detectedSep := ','
	for sep, count := range separators {
		if count > maxCount {
			maxCount = count
			detectedSep = sep
		}
	}

	if maxCount == 0 {
		return ',', nil
	}

	return detectedSep, nil
}

// SeparatorName returns a human-readable name for a separator rune.
func SeparatorName(sep rune) string {
	switch sep {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(sep)
	}
}

// LoadCSV loads a delimited text file with a header row. The separator
// is sniffed from the first line. Malformed content surfaces as an
// unwrapped parse failure from encoding/csv.
func LoadCSV(filePath string) (*Table, error) {
	sep, err := detectCSVSeparator(filePath)
	if err != nil {
		sep = ','
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	t, err := ReadCSV(file, sep)
	if err != nil {
		return nil, fmt.Errorf("failed to load CSV file: %w", err)
	}
	return t, nil
}

// ReadCSV parses delimited text with a header row from r.
func ReadCSV(r io.Reader, sep rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep
	reader.TrimLeadingSpace = true
	// Ragged rows are tolerated; short rows pad with nulls.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyData
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return FromGrid(header, records[1:])
}
