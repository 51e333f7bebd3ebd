// Package testutil provides shared test helpers for building rows and sheets.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/gebo/internal/rows"
)

// RequirementRow builds a minimal valid requirement row.
func RequirementRow(puid, reqType, foreignID, name string) rows.Row {
	return rows.Row{
		"ie_puid":    rows.Text(puid),
		"req_type":   rows.Text(reqType),
		"foreign_id": rows.Text(foreignID),
		"name":       rows.Text(name),
	}
}

// RelationRow builds a relation row addressing both endpoints by IE PUID.
func RelationRow(kind, sourcePUID, targetPUID string) rows.Row {
	return rows.Row{
		"relation_type":  rows.Text(kind),
		"source_ie_puid": rows.Text(sourcePUID),
		"target_ie_puid": rows.Text(targetPUID),
	}
}

// With returns a copy of the row with one extra cell set.
func With(row rows.Row, key string, cell rows.Cell) rows.Row {
	out := make(rows.Row, len(row)+1)
	for k, v := range row {
		out[k] = v
	}
	out[key] = cell
	return out
}

// TempCSV writes content to a temporary file and returns its path. The file
// is removed when the test finishes.
func TempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
