//go:build linux

package tempfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// MakeUnnamedFile creates a scratch file under dir, or under baseDir()
// if dir is empty. On Linux the file is created with O_TMPFILE and never
// has a name; on filesystems without O_TMPFILE support it is created
// normally and unlinked immediately.
func MakeUnnamedFile(dir string) (File, error) {
	if dir == "" {
		dir = baseDir()
	}
	fd, err := unix.Open(dir, unix.O_RDWR|unix.O_CLOEXEC|unix.O_TMPFILE|unix.O_EXCL, 0600)
	if err == nil {
		return os.NewFile(uintptr(fd), "<unnamed temp file>"), nil
	}

	f, err := createFile(dir, DefaultFilePrefix)
	if err != nil {
		return nil, err
	}
	// Unlink so the file is deleted as soon as it's closed.
	os.Remove(f.Name())
	return f, nil
}
