package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditor(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "manifests")
	auditor := NewAuditor(tempDir)

	t.Run("SaveManifest creates directory and names file after run", func(t *testing.T) {
		manifest := Manifest{
			RunID:         "run-1",
			Format:        "xml",
			StartedAt:     time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC),
			TotalItems:    3,
			ItemsExported: 3,
			Pages: []ManifestPage{
				{Start: 0, Count: 2, Exported: 2, FilePath: "/out/items_0_2.xml"},
				{Start: 2, Count: 2, Exported: 1, FilePath: "/out/items_2_2.xml"},
			},
		}

		path, err := auditor.SaveManifest(manifest)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "export-run-1.json"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var saved Manifest
		require.NoError(t, json.Unmarshal(content, &saved))
		assert.Equal(t, "run-1", saved.RunID)
		require.Len(t, saved.Pages, 2)
		assert.Equal(t, "/out/items_2_2.xml", saved.Pages[1].FilePath)
	})

	t.Run("SaveManifest assigns a run id when missing", func(t *testing.T) {
		path, err := auditor.SaveManifest(Manifest{Format: "csv"})
		require.NoError(t, err)
		assert.Regexp(t, `export-[0-9a-f-]{36}\.json$`, path)
	})
}
