package transfer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
)

// HTTP transfers files over http and https. Fetched files get their mtime set
// from the Last-Modified response header when the server sends one, so the
// cache's on-disk freshness marker matches the origin's clock rather than the
// download time.
type HTTP struct {
	client    *http.Client
	userAgent string
}

// NewHTTP creates an HTTP transferer with the given timeout and user agent.
func NewHTTP(timeout time.Duration, userAgent string) *HTTP {
	if userAgent == "" {
		userAgent = "genie/1.0"
	}
	return &HTTP{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads srcRemotePath to dstLocalPath.
func (h *HTTP) Fetch(ctx context.Context, srcRemotePath, dstLocalPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcRemotePath, http.NoBody)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", pkgerrors.ErrTransferFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return pkgerrors.Wrapf(pkgerrors.ErrFileNotFound, "%s", srcRemotePath)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrTransferFailed)
	}

	return installFile(resp.Body, dstLocalPath, parseLastModified(resp.Header))
}

// LastModified issues a HEAD request and reports the Last-Modified header.
// Servers that omit the header yield a zero time, which callers treat as
// "never newer than the cached copy".
func (h *HTTP) LastModified(ctx context.Context, remotePath string) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, remotePath, http.NoBody)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", pkgerrors.ErrTransferFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return time.Time{}, pkgerrors.Wrapf(pkgerrors.ErrFileNotFound, "%s", remotePath)
	case resp.StatusCode != http.StatusOK:
		return time.Time{}, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrTransferFailed)
	}

	return parseLastModified(resp.Header), nil
}

func parseLastModified(header http.Header) time.Time {
	value := header.Get("Last-Modified")
	if value == "" {
		return time.Time{}
	}
	t, err := http.ParseTime(value)
	if err != nil {
		return time.Time{}
	}
	return t
}
