// Package sheet reads CSV exports of the requirements workbook into raw
// rows for the conversion pipeline.
//
// The first record is the header. A column missing from the header yields
// an absent cell downstream; a present-but-empty cell stays a blank text
// cell. The reader performs no validation beyond CSV well-formedness —
// typing and vocabulary checks belong to the normalizer.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/starford/gebo/internal/rows"
)

// Read parses one CSV sheet into raw rows.
func Read(r io.Reader) ([]rows.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // tolerate ragged exports

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty sheet: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []rows.Row
	for lineNum := 2; ; lineNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		row := make(rows.Row, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = rows.Text(record[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// ReadFile parses the CSV sheet at path.
func ReadFile(path string) ([]rows.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	rs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}
