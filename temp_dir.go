package tempfile

import (
	"os"
)

// TempDir owns a temporary directory. While Path is non-empty the
// directory exists on disk and belongs exclusively to this value. Close
// removes it.
type TempDir struct {
	path string
}

// Path returns the directory's path, or "" if ownership has been
// released.
func (d *TempDir) Path() string {
	return d.path
}

// Release transfers ownership of the path to the caller and leaves d
// released, so a later Close does nothing. The caller becomes
// responsible for removing the directory.
func (d *TempDir) Release() string {
	path := d.path
	d.path = ""
	return path
}

// Close removes the directory, which must be empty. It is a no-op,
// returning nil, if ownership was already released or d was already
// closed. A removal error (such as the directory not being empty) is
// reported once; d is left released either way.
func (d *TempDir) Close() error {
	if d.path == "" {
		return nil
	}
	path := d.path
	d.path = ""
	return os.Remove(path)
}
