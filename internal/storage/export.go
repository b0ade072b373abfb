package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"siga/internal/academic"
	"siga/internal/log"
)

// ExportFile is the JSON snapshot written under the data directory.
const ExportFile = "export.json"

// Snapshot is the JSON export of the whole store, tagged so successive
// exports can be told apart.
type Snapshot struct {
	ExportID      string                  `json:"export_id"`
	ExportedAt    time.Time               `json:"exported_at"`
	Students      []academic.Student      `json:"students"`
	Courses       []academic.Course       `json:"courses"`
	Registrations []academic.Registration `json:"registrations"`
	GradeRecords  []academic.GradeRecord  `json:"grade_records"`
}

// ExportJSON writes the store to export.json under the data directory and
// returns the file path.
func (c *CSVStore) ExportJSON(store *academic.Store) (string, error) {
	snapshot := Snapshot{
		ExportID:      uuid.NewString(),
		ExportedAt:    time.Now().UTC(),
		Students:      store.Students,
		Courses:       store.Courses,
		Registrations: store.Registrations,
		GradeRecords:  store.GradeRecords,
	}

	path := filepath.Join(c.dir, ExportFile)
	f, err := os.Create(path) //nolint:gosec // G304: path is the configured data directory
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}

	log.Info(log.CatStorage, "Exported snapshot", "path", path, "id", snapshot.ExportID)
	return path, nil
}
