package commands

import (
	"os"
	"path/filepath"
	"testing"

	"consultant-gaps/internal/gaps"
	"consultant-gaps/internal/scrapers/swiftype"
	"consultant-gaps/lib/configutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultSearchOptions(t *testing.T) {
	opts := defaultConfig().Search.options()
	if diff := cmp.Diff(swiftype.DefaultOptions(), opts); diff != "" {
		t.Fatalf("search options mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{
		// only override what differs
		search: { page_delay_ms: 50, page_retries: 2 },
		files: { output_html: "out.html" },
		classifier: { placeholder_patterns: ["avatar"] },
	}`), 0644)
	require.NoError(t, err)

	cfg, err := configutil.ReadConfigWithDefaults(path, defaultConfig())
	require.NoError(t, err)

	require.Equal(t, 50, cfg.Search.PageDelayMs)
	require.Equal(t, 2, cfg.Search.PageRetries)
	require.Equal(t, 100, cfg.Search.PerPage)
	require.Equal(t, "out.html", cfg.Files.OutputHTML)
	require.Equal(t, "nuffield_consultants.csv", cfg.Files.Consultants)
	require.Equal(t, []string{"avatar"}, cfg.Classifier.PlaceholderPatterns)
	require.Equal(t, 20, cfg.Report.TopTreatments)
	require.Len(t, cfg.Report.Styles, len(gaps.AllFlags))
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	cfg, err := configutil.ReadConfigWithDefaults(filepath.Join(t.TempDir(), "config.json5"), defaultConfig())
	require.NoError(t, err)
	require.Equal(t, defaultConfig().Files, cfg.Files)
}

func TestConfigKeepsExplicitZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	err := os.WriteFile(path, []byte(`{
		search: { page_delay_ms: 0, failure_backoff_ms: 0 },
		classifier: { placeholder_patterns: [] },
		report: { top_treatments: 0 },
	}`), 0644)
	require.NoError(t, err)

	cfg, err := configutil.ReadConfigWithDefaults(path, defaultConfig())
	require.NoError(t, err)

	require.Equal(t, 0, cfg.Search.PageDelayMs)
	require.Equal(t, 0, cfg.Search.FailureBackoffMs)
	require.Empty(t, cfg.Classifier.PlaceholderPatterns)
	require.Equal(t, 0, cfg.Report.TopTreatments)
	require.Equal(t, 100, cfg.Search.PerPage)
}
