package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
	"github.com/is00hcw/genie/pkg/fsutil"
)

func TestLocalFetch(t *testing.T) {
	tests := []struct {
		name       string
		remotePath func(dir string) string
	}{
		{
			name:       "plain path",
			remotePath: func(dir string) string { return filepath.Join(dir, "src.txt") },
		},
		{
			name:       "file uri",
			remotePath: func(dir string) string { return "file://" + filepath.Join(dir, "src.txt") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "src.txt")
			require.NoError(t, os.WriteFile(src, []byte("local bytes"), fsutil.FileModeDefault))

			dst := filepath.Join(dir, "out", "dst.txt")
			l := NewLocal()
			require.NoError(t, l.Fetch(context.Background(), tt.remotePath(dir), dst))

			got, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, []byte("local bytes"), got)
		})
	}
}

func TestLocalFetchMissingSource(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal()

	err := l.Fetch(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dst.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrFileNotFound)
}

func TestLocalLastModified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), fsutil.FileModeDefault))

	stamp := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))

	l := NewLocal()
	got, err := l.LastModified(context.Background(), src)
	require.NoError(t, err)
	assert.True(t, got.Equal(stamp))

	_, err = l.LastModified(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, pkgerrors.ErrFileNotFound)
}

func TestLocalRejectsForeignScheme(t *testing.T) {
	l := NewLocal()
	err := l.Fetch(context.Background(), "s3://bucket/a.txt", filepath.Join(t.TempDir(), "dst"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidRemotePath)
}

func TestLocalFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLocal()
	err := l.Fetch(ctx, "/tmp/whatever", filepath.Join(t.TempDir(), "dst"))
	assert.ErrorIs(t, err, context.Canceled)
}
