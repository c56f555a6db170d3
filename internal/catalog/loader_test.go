package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleBrandFile = `{
	"brand_id": 3,
	"models": [
		{
			"id": "m-1",
			"model": "Vios",
			"body_type": "sedan",
			"model_years": [
				{
					"id": "my-1",
					"year": 2024,
					"trims": [
						{"id": "t-1", "name": "1.5 Entry", "title": "Vios 1.5 Entry 2024"},
						{"id": "t-2", "name": "1.5 Smart"}
					]
				},
				{
					"id": "my-2",
					"year": 2022
				}
			]
		}
	]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(zap.NewNop())

	path := writeFile(t, dir, "toyota.json", sampleBrandFile)

	file, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, file.BrandID)
	require.Equal(t, "toyota.json", file.FileName)
	require.Len(t, file.Models, 1)
	require.Equal(t, "Vios", file.Models[0].Name)
	require.Len(t, file.Models[0].ModelYears, 2)
	require.Len(t, file.Models[0].ModelYears[0].Trims, 2)
	require.Empty(t, file.Models[0].ModelYears[1].Trims)
}

func TestLoadFileMissingModels(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(zap.NewNop())

	for name, content := range map[string]string{
		"no-models.json":   `{"brand_id": 1}`,
		"null-models.json": `{"brand_id": 1, "models": null}`,
		"bad-models.json":  `{"brand_id": 1, "models": "oops"}`,
	} {
		writeFile(t, dir, name, content)
		_, err := loader.LoadFile(filepath.Join(dir, name))
		require.ErrorIs(t, err, ErrMalformedFile, name)
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(zap.NewNop())

	path := writeFile(t, dir, "broken.json", `{"brand_id": `)

	_, err := loader.LoadFile(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMalformedFile)
}

func TestLoadDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(zap.NewNop())

	writeFile(t, dir, "toyota.json", sampleBrandFile)
	writeFile(t, dir, "broken.json", `{"brand_id": 1}`)
	writeFile(t, dir, "notes.txt", "not a catalog file")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	files, err := loader.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "toyota.json", files[0].FileName)
}

func TestLoadDirMissing(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	_, err := loader.LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
