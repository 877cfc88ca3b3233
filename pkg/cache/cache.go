// Package cache implements a read-through file cache for remote files.
//
// A FileCache maps remote paths (URI-like strings) to local copies under a
// single cache directory. Loads are deduplicated per key with singleflight,
// staleness is detected by comparing the remote's last-modified time against
// the cached file's on-disk mtime, and invalidation is serialized by a single
// cache-wide mutex: refreshes are rare relative to reads, so global
// serialization of the rare path buys a simple invalidation story.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
	"github.com/is00hcw/genie/pkg/fsutil"
	"github.com/is00hcw/genie/pkg/logger"
	"github.com/is00hcw/genie/pkg/transfer"
)

// FileCache is a process-local read-through cache of remote files. All methods
// are safe for concurrent use.
type FileCache struct {
	baseDir  string
	resolver transfer.Resolver
	local    transfer.FileTransferer

	// group deduplicates in-flight loads per remote path.
	group singleflight.Group

	// mu guards files, the remote path -> cached local path mapping.
	mu    sync.RWMutex
	files map[string]string

	// refreshMu serializes the invalidate-and-reload path across all keys.
	refreshMu sync.Mutex

	stats counters
}

// New creates a FileCache rooted at baseDir, creating the directory if needed.
// resolver supplies the backend for each remote path; local performs the final
// local-to-local copy to the caller's destination.
func New(baseDir string, resolver transfer.Resolver, local transfer.FileTransferer) (*FileCache, error) {
	if baseDir == "" {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCacheDirectory, "cache directory cannot be empty")
	}
	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrCacheDirectory, "%s: %v", baseDir, err)
	}
	if err := fsutil.EnsureDir(absDir); err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrCacheDirectory, "%s: %v", absDir, err)
	}

	return &FileCache{
		baseDir:  absDir,
		resolver: resolver,
		local:    local,
		files:    make(map[string]string),
	}, nil
}

// BaseDir returns the resolved cache root directory.
func (c *FileCache) BaseDir() string {
	return c.baseDir
}

// Get materializes the file at srcRemotePath into dstLocalPath, serving it
// from the cache when the cached copy is still fresh. It either succeeds with
// a valid destination file or fails with a wrapped error naming the remote
// path; it never leaves a partially written destination.
func (c *FileCache) Get(ctx context.Context, srcRemotePath, dstLocalPath string) error {
	cachedFile, err := c.materialize(ctx, srcRemotePath)
	if err != nil {
		return wrapFetchErr(srcRemotePath, err)
	}

	err = c.local.Fetch(ctx, cachedFile, dstLocalPath)
	if errors.Is(err, pkgerrors.ErrFileNotFound) {
		// The cached file was deleted by a concurrent invalidation between
		// the staleness check and the copy. Reload once and retry.
		cachedFile, err = c.refresh(ctx, srcRemotePath, cachedFile, time.Time{})
		if err == nil {
			err = c.local.Fetch(ctx, cachedFile, dstLocalPath)
		}
	}
	return wrapFetchErr(srcRemotePath, err)
}

// wrapFetchErr reports every failure mode of Get as a single wrapped error
// carrying the remote path and the original cause.
func wrapFetchErr(remotePath string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w %s: %w", pkgerrors.ErrFetchFailed, remotePath, err)
}

// materialize resolves a remote path to a fresh cached local file.
func (c *FileCache) materialize(ctx context.Context, remotePath string) (string, error) {
	c.mu.RLock()
	cached, present := c.files[remotePath]
	c.mu.RUnlock()

	if !present {
		c.stats.misses.Add(1)
		logger.Debug("cache miss", logrus.Fields{"remote": remotePath})
		return c.load(ctx, remotePath)
	}

	c.stats.hits.Add(1)
	logger.Debug("cache hit", logrus.Fields{"remote": remotePath, "cached": cached})

	t, err := c.resolver.TransfererFor(remotePath)
	if err != nil {
		return "", err
	}
	// Always queried fresh; the remote timestamp is never cached.
	remoteModified, err := t.LastModified(ctx, remotePath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(cached)
	switch {
	case err == nil && !remoteModified.After(info.ModTime()):
		return cached, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", pkgerrors.Wrapf(err, "failed to stat cached file %s", cached)
	}
	return c.refresh(ctx, remotePath, cached, remoteModified)
}

// load fetches the remote file into the cache, deduplicating concurrent loads
// of the same key: callers that request a key while its load is in flight wait
// for that load and share its result.
func (c *FileCache) load(ctx context.Context, remotePath string) (string, error) {
	v, err, _ := c.group.Do(remotePath, func() (interface{}, error) {
		// A load that finished while we queued for the group may have
		// installed the entry already.
		c.mu.RLock()
		cached, ok := c.files[remotePath]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		c.stats.loads.Add(1)
		localFile, err := c.loadFile(ctx, remotePath)
		if err != nil {
			c.stats.loadErrors.Add(1)
			return nil, err
		}

		c.mu.Lock()
		c.files[remotePath] = localFile
		c.mu.Unlock()
		return localFile, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// loadFile performs the backend fetch into the canonical cache location. A
// failed fetch installs nothing: the backend writes through a temp file, so no
// partial entry is ever observable at the cache path.
func (c *FileCache) loadFile(ctx context.Context, remotePath string) (string, error) {
	t, err := c.resolver.TransfererFor(remotePath)
	if err != nil {
		return "", err
	}

	localFile := filepath.Join(c.baseDir, DeriveKey(remotePath))
	if _, err := os.Stat(localFile); err == nil {
		// A previous process instance already cached this path.
		return localFile, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", pkgerrors.Wrapf(err, "failed to stat cache file %s", localFile)
	}

	if err := t.Fetch(ctx, remotePath, localFile); err != nil {
		return "", err
	}
	return localFile, nil
}

// refresh runs the invalidation protocol for a stale entry. The whole cache
// shares one refresh lock; inside it the staleness test is repeated against
// the file's current mtime, since a thread that waited here may find the
// refresh already done. A zero remoteModified only treats a missing file as
// stale.
func (c *FileCache) refresh(ctx context.Context, remotePath, cached string, remoteModified time.Time) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	info, err := os.Stat(cached)
	if err == nil && !remoteModified.After(info.ModTime()) {
		return cached, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", pkgerrors.Wrapf(err, "failed to stat cached file %s", cached)
	}

	logger.Warn("refreshing stale cache entry", logrus.Fields{"remote": remotePath, "cached": cached})

	c.mu.Lock()
	delete(c.files, remotePath)
	c.mu.Unlock()

	if err := os.Remove(cached); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", pkgerrors.Wrapf(err, "failed to delete stale cache file %s", cached)
	}

	return c.load(ctx, remotePath)
}
