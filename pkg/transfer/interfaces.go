//go:generate mockgen -destination=mocks/transfer.go . FileTransferer,Resolver
package transfer

import (
	"context"
	"time"
)

// FileTransferer is the capability to move a class of remote files (selected by
// URI scheme) to the local filesystem and to report their modification times.
// Implementations must never leave a partial file at dstLocalPath on failure.
type FileTransferer interface {
	// Fetch copies the file at srcRemotePath to dstLocalPath. Where the remote
	// source exposes a modification time, implementations set the local file's
	// mtime to match so callers can use it as a freshness marker.
	Fetch(ctx context.Context, srcRemotePath, dstLocalPath string) error

	// LastModified returns the current modification time of the remote file.
	// A zero time with a nil error means the source does not report one.
	LastModified(ctx context.Context, remotePath string) (time.Time, error)
}

// Resolver looks up the FileTransferer able to handle a given remote path.
// The cache consumes this indirection so that adding a new remote source type
// requires only registering a new FileTransferer implementation.
type Resolver interface {
	TransfererFor(remotePath string) (FileTransferer, error)
}
