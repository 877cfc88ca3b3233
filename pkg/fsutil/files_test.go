package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string) (src, dst string)
		expectError bool
	}{
		{
			name: "copies file contents",
			setup: func(t *testing.T, dir string) (string, string) {
				src := filepath.Join(dir, "src.txt")
				require.NoError(t, os.WriteFile(src, []byte("hello"), FileModeDefault))
				return src, filepath.Join(dir, "dst.txt")
			},
		},
		{
			name: "creates missing destination directory",
			setup: func(t *testing.T, dir string) (string, string) {
				src := filepath.Join(dir, "src.txt")
				require.NoError(t, os.WriteFile(src, []byte("nested"), FileModeDefault))
				return src, filepath.Join(dir, "a", "b", "dst.txt")
			},
		},
		{
			name: "missing source fails",
			setup: func(t *testing.T, dir string) (string, string) {
				return filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dst.txt")
			},
			expectError: true,
		},
		{
			name: "directory source fails",
			setup: func(t *testing.T, dir string) (string, string) {
				src := filepath.Join(dir, "srcdir")
				require.NoError(t, os.Mkdir(src, DirModeDefault))
				return src, filepath.Join(dir, "dst.txt")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src, dst := tt.setup(t, dir)

			err := Copy(src, dst)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want, err := os.ReadFile(src)
			require.NoError(t, err)
			got, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCopyPreservesModTime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), FileModeDefault))

	stamp := time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))

	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, Copy(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(stamp), "destination mtime should match source")
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("move me"), FileModeDefault))

	dst := filepath.Join(dir, "sub", "dst.txt")
	require.NoError(t, Move(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be gone after move")

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("move me"), got)
}

func TestMoveEmptyPaths(t *testing.T) {
	assert.Error(t, Move("", "dst"))
	assert.Error(t, Move("src", ""))
}
