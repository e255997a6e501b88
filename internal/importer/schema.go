// Package importer reads time records from outside sources: JSON import
// files and the legacy zTimeSpent tracking database.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportFile is the top-level JSON structure for record import.
type ImportFile struct {
	Records []RecordImport `json:"records"`
}

// RecordImport is one record in the import file. Category may be omitted
// when ProjectID falls in a configured category range.
type RecordImport struct {
	Date      string  `json:"date"`
	ProjectID int     `json:"project_id,omitempty"`
	Category  string  `json:"category,omitempty"`
	Hours     float64 `json:"hours"`
	Note      string  `json:"note,omitempty"`
}

// LoadImportFile reads and parses a record import JSON file.
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f ImportFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &f, nil
}
