package transfer

import (
	"net/url"
	"strings"

	"github.com/is00hcw/genie/pkg/errors"
)

// Scheme constants for the built-in backends.
const (
	SchemeFile  = "file"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeS3    = "s3"
)

// Registry maps URI schemes to FileTransferer implementations. It implements
// Resolver. Registration happens at construction time; lookups are read-only
// afterwards, so no locking is required.
type Registry struct {
	transferers map[string]FileTransferer
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{transferers: make(map[string]FileTransferer)}
}

// Register associates a URI scheme with a FileTransferer. Registering the same
// scheme twice replaces the earlier entry.
func (r *Registry) Register(scheme string, t FileTransferer) {
	r.transferers[strings.ToLower(scheme)] = t
}

// TransfererFor resolves the backend for a remote path by its URI scheme.
// Paths without a scheme are treated as local files.
func (r *Registry) TransfererFor(remotePath string) (FileTransferer, error) {
	scheme, err := Scheme(remotePath)
	if err != nil {
		return nil, err
	}
	t, ok := r.transferers[scheme]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSchemeNotRegistered, "%q", scheme)
	}
	return t, nil
}

// Scheme extracts the lower-cased URI scheme of a remote path, defaulting to
// "file" for scheme-less paths.
func Scheme(remotePath string) (string, error) {
	if remotePath == "" {
		return "", errors.Wrap(errors.ErrInvalidRemotePath, "path is empty")
	}
	u, err := url.Parse(remotePath)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidRemotePath, "%s: %v", remotePath, err)
	}
	if u.Scheme == "" {
		return SchemeFile, nil
	}
	return strings.ToLower(u.Scheme), nil
}
