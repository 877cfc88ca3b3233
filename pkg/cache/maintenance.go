package cache

import (
	"os"
	"path/filepath"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
	"github.com/is00hcw/genie/pkg/fsutil"
)

// Info describes the on-disk state of the cache directory.
type Info struct {
	Directory string
	Files     int
	TotalSize int64
}

// Info reports the cache directory, the number of cached files, and their
// total size in bytes.
func (c *FileCache) Info() (*Info, error) {
	info := &Info{Directory: c.baseDir}

	err := filepath.Walk(c.baseDir, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			info.Files++
			info.TotalSize += fi.Size()
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "error walking cache directory %s", c.baseDir)
	}
	return info, nil
}

// Clean removes every cached file and drops the in-memory mapping. It returns
// the number of bytes freed. Clean takes the refresh lock, so it cannot run
// concurrently with an invalidation.
func (c *FileCache) Clean() (int64, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	info, err := c.Info()
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.files = make(map[string]string)
	c.mu.Unlock()

	if err := os.RemoveAll(c.baseDir); err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to remove cache directory %s", c.baseDir)
	}
	if err := fsutil.EnsureDir(c.baseDir); err != nil {
		return info.TotalSize, pkgerrors.Wrapf(err, "failed to recreate cache directory %s", c.baseDir)
	}
	return info.TotalSize, nil
}
