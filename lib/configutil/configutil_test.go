package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name     string   `json:"name"`
	PerPage  int      `json:"per_page"`
	Patterns []string `json:"patterns"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestSplitExt(t *testing.T) {
	name, ext := splitExt("config.json5")
	require.Equal(t, "config", name)
	require.Equal(t, "json5", ext)

	name, ext = splitExt("noext")
	require.Equal(t, "noext", name)
	require.Equal(t, "", ext)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{
		// comments are allowed
		name: "base",
		per_page: 100,
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ per_page: 25 }`)

	cfg, err := ReadConfigWithDefaults(path, testConfig{})
	require.NoError(t, err)
	require.Equal(t, "base", cfg.Name)
	require.Equal(t, 25, cfg.PerPage)
}

func TestReadConfigWithDefaults(t *testing.T) {
	defaults := testConfig{
		Name:     "default",
		PerPage:  100,
		Patterns: []string{"placeholder"},
	}

	dir := t.TempDir()
	cfg, err := ReadConfigWithDefaults(filepath.Join(dir, "config.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)

	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{ name: "custom" }`)
	cfg, err = ReadConfigWithDefaults(path, defaults)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		Name:     "custom",
		PerPage:  100,
		Patterns: []string{"placeholder"},
	}, cfg)
}

func TestReadConfigKeepsExplicitZeros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{ per_page: 0, patterns: [] }`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ name: "" }`)

	cfg, err := ReadConfigWithDefaults(path, testConfig{
		Name:     "default",
		PerPage:  100,
		Patterns: []string{"placeholder"},
	})
	require.NoError(t, err)
	require.Equal(t, "", cfg.Name)
	require.Equal(t, 0, cfg.PerPage)
	require.Empty(t, cfg.Patterns)
}

func TestReadConfigWithDefaultsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	writeFile(t, path, `{ name: `)

	_, err := ReadConfigWithDefaults(path, testConfig{})
	require.Error(t, err)
}
