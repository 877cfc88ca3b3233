package transfer

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/is00hcw/genie/pkg/errors"
	"github.com/is00hcw/genie/pkg/fsutil"
)

// installFile streams body into dstLocalPath via a temp file in the same
// directory and an atomic rename, so a failed transfer never leaves a partial
// file at the destination. When modTime is non-zero the installed file's mtime
// is set to it.
func installFile(body io.Reader, dstLocalPath string, modTime time.Time) error {
	if err := fsutil.EnsureFileDir(dstLocalPath); err != nil {
		return errors.Wrap(err, "could not create destination directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dstLocalPath), "transfer-*.tmp")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not write file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not close file")
	}
	if err := os.Chmod(tmpPath, fsutil.FileModeDefault); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not set permissions")
	}

	if err := fsutil.Move(tmpPath, dstLocalPath); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not finalize file")
	}

	if !modTime.IsZero() {
		if err := os.Chtimes(dstLocalPath, modTime, modTime); err != nil {
			return errors.Wrap(err, "could not set modification time")
		}
	}
	return nil
}
