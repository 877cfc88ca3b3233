package transfer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
	"github.com/is00hcw/genie/pkg/fsutil"
)

// Local transfers files already on the local filesystem. It backs the "file"
// scheme and doubles as the local-to-local copy primitive used to place cached
// bytes at a caller's destination. Copies preserve the source's mtime, so a
// fetched copy carries the same freshness marker as its source.
type Local struct{}

// NewLocal creates a local filesystem transferer.
func NewLocal() *Local {
	return &Local{}
}

// Fetch copies srcRemotePath (a plain path or file:// URI) to dstLocalPath.
func (l *Local) Fetch(ctx context.Context, srcRemotePath, dstLocalPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := localPath(srcRemotePath)
	if err != nil {
		return err
	}
	if err := fsutil.Copy(src, dstLocalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pkgerrors.Wrapf(pkgerrors.ErrFileNotFound, "%s", srcRemotePath)
		}
		return fmt.Errorf("%w: %v", pkgerrors.ErrTransferFailed, err)
	}
	return nil
}

// LastModified reports the file's on-disk modification time.
func (l *Local) LastModified(ctx context.Context, remotePath string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	path, err := localPath(remotePath)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, pkgerrors.Wrapf(pkgerrors.ErrFileNotFound, "%s", remotePath)
		}
		return time.Time{}, pkgerrors.Wrapf(err, "failed to stat %s", remotePath)
	}
	return info.ModTime(), nil
}

// localPath strips an optional file:// scheme from a remote path.
func localPath(remotePath string) (string, error) {
	if !strings.Contains(remotePath, "://") {
		return remotePath, nil
	}
	u, err := url.Parse(remotePath)
	if err != nil {
		return "", pkgerrors.Wrapf(pkgerrors.ErrInvalidRemotePath, "%s: %v", remotePath, err)
	}
	if u.Scheme != SchemeFile {
		return "", pkgerrors.Wrapf(pkgerrors.ErrInvalidRemotePath, "%s is not a local path", remotePath)
	}
	return u.Path, nil
}
