package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")

	// Cache errors.
	ErrCacheDirectory = fmt.Errorf("failed to create cache directory")
	ErrFetchFailed    = fmt.Errorf("failed to fetch file")

	// Transfer errors.
	ErrSchemeNotRegistered = fmt.Errorf("no file transferer registered for scheme")
	ErrInvalidRemotePath   = fmt.Errorf("invalid remote path")
	ErrTransferFailed      = fmt.Errorf("file transfer failed")
	ErrFileNotFound        = fmt.Errorf("remote file not found")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
