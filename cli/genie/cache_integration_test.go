//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestCache_InfoCleanAndDir(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, cacheDir := writeTestConfig(t, tempDir)

	src := filepath.Join(tempDir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("cache me"), 0o644))

	fetchCmd := newRootCmd()
	fetchCmd.SetArgs([]string{"--config", cfgPath, "fetch", "file://" + src, filepath.Join(tempDir, "dst.txt")})
	require.NoError(t, fetchCmd.ExecuteContext(context.Background()))

	infoOutput := captureStdout(t, func() {
		infoCmd := newRootCmd()
		infoCmd.SetArgs([]string{"--config", cfgPath, "cache", "info"})
		require.NoError(t, infoCmd.ExecuteContext(context.Background()))
	})
	assert.Contains(t, infoOutput, "Cache Information:")
	assert.Contains(t, infoOutput, cacheDir)
	assert.Contains(t, infoOutput, "Files: 1")

	dirOutput := captureStdout(t, func() {
		dirCmd := newRootCmd()
		dirCmd.SetArgs([]string{"--config", cfgPath, "cache", "dir"})
		require.NoError(t, dirCmd.ExecuteContext(context.Background()))
	})
	assert.Contains(t, strings.TrimSpace(dirOutput), cacheDir)

	cleanOutput := captureStdout(t, func() {
		cleanCmd := newRootCmd()
		cleanCmd.SetArgs([]string{"--config", cfgPath, "cache", "clean"})
		require.NoError(t, cleanCmd.ExecuteContext(context.Background()))
	})
	assert.Contains(t, cleanOutput, "Freed")

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "clean must empty the cache directory")
}
