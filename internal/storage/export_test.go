package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siga/internal/testutil"
)

func TestExportJSON_WritesTaggedSnapshot(t *testing.T) {
	dir := t.TempDir()
	csv, err := NewCSVStore(dir)
	require.NoError(t, err)

	store := testutil.NewBuilder(t).WithStandardTestData().Build()

	path, err := csv.ExportJSON(store)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ExportFile), path)

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	_, err = uuid.Parse(snapshot.ExportID)
	require.NoError(t, err, "export id is a uuid")
	assert.False(t, snapshot.ExportedAt.IsZero())
	assert.Len(t, snapshot.Students, 3)
	assert.Len(t, snapshot.Courses, 3)
	assert.Len(t, snapshot.Registrations, 4)
	assert.Len(t, snapshot.GradeRecords, 3)
}

func TestExportJSON_SuccessiveExportsDiffer(t *testing.T) {
	csv, err := NewCSVStore(t.TempDir())
	require.NoError(t, err)
	store := testutil.NewBuilder(t).WithStudent("E1").Build()

	exportOnce := func() string {
		path, err := csv.ExportJSON(store)
		require.NoError(t, err)
		data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
		require.NoError(t, err)
		var snapshot Snapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))
		return snapshot.ExportID
	}

	assert.NotEqual(t, exportOnce(), exportOnce())
}
