package tempfile

import (
	"os"
)

// TempFile owns a temporary file: its path and the open *os.File returned
// by the creating call. While Path is non-empty the file exists on disk
// and belongs exclusively to this value. Close releases both.
type TempFile struct {
	file *os.File
	path string
}

// Path returns the file's path, or "" if ownership has been released.
func (f *TempFile) Path() string {
	return f.path
}

// File returns the open file handle, or nil if ownership has been
// released. The handle remains owned by f; do not close it directly.
func (f *TempFile) File() *os.File {
	return f.file
}

// Release transfers ownership of the open handle and path to the caller
// and leaves f released, so a later Close does nothing. The caller
// becomes responsible for closing the handle and removing the file.
func (f *TempFile) Release() (*os.File, string) {
	file, path := f.file, f.path
	f.file = nil
	f.path = ""
	return file, path
}

// Close closes the file handle and removes the file. It is a no-op,
// returning nil, if ownership was already released or f was already
// closed. A removal error is reported once; f is left released either
// way.
func (f *TempFile) Close() error {
	if f.path == "" {
		return nil
	}
	path := f.path
	f.path = ""

	// Close before removing. POSIX allows removing an open file, Windows
	// does not.
	var closeErr error
	if f.file != nil {
		closeErr = f.file.Close()
		f.file = nil
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	return closeErr
}
