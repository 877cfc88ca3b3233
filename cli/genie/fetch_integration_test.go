//go:build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, tempDir string) (cfgPath, cacheDir string) {
	t.Helper()
	cfgPath = filepath.Join(tempDir, "config.yaml")
	cacheDir = filepath.Join(tempDir, "cache")

	yamlContent := `settings:
  cache_dir: ` + cacheDir + `
  http_timeout: 5s
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o600))
	return cfgPath, cacheDir
}

func TestFetch_LocalFile(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, cacheDir := writeTestConfig(t, tempDir)

	src := filepath.Join(tempDir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("integration content"), 0o644))
	dst := filepath.Join(tempDir, "out", "dst.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "fetch", "file://" + src, dst})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("integration content"), got)

	// The fetch populated exactly one cache file.
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFetch_SecondFetchServedFromCache(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, cacheDir := writeTestConfig(t, tempDir)

	src := filepath.Join(tempDir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("cached across runs"), 0o644))

	for i, name := range []string{"dst1.txt", "dst2.txt"} {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--config", cfgPath, "fetch", "file://" + src, filepath.Join(tempDir, name)})
		require.NoError(t, cmd.ExecuteContext(context.Background()), "run %d", i)
	}

	got, err := os.ReadFile(filepath.Join(tempDir, "dst2.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cached across runs"), got)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "both fetches map to the same cache file")
}

func TestFetch_MissingSourceFails(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, _ := writeTestConfig(t, tempDir)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "fetch", "file://" + filepath.Join(tempDir, "missing.txt"), filepath.Join(tempDir, "dst.txt")})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch file")
	assert.Contains(t, err.Error(), "missing.txt")
}
