//go:build unix

package tempfile

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Environment variables consulted for the temporary directory, in
// priority order.
var tempDirEnvVars = []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"}

const defaultTempDir = "/tmp"

// Same bound os.CreateTemp uses. Only reachable if the random suffix
// keeps colliding with existing names.
const maxUniqueAttempts = 10000

// baseDir returns the first temp-directory environment variable that is
// set, even if set to the empty string, or /tmp if none are.
func baseDir() string {
	for _, v := range tempDirEnvVars {
		if dir, ok := os.LookupEnv(v); ok {
			return dir
		}
	}
	return defaultTempDir
}

// createFile atomically creates and opens a new file named
// prefix+<6 random chars> under dir, or under baseDir() if dir is empty.
// O_EXCL guarantees the name did not previously exist, so there is no
// create/open race; EEXIST just means the candidate lost the name
// lottery and another is tried.
func createFile(dir, prefix string) (*os.File, error) {
	if dir == "" {
		dir = baseDir()
	}
	for i := 0; i < maxUniqueAttempts; i++ {
		name := filepath.Join(dir, prefix+randomSuffix())
		fd, err := unix.Open(name, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0600)
		if err == unix.EEXIST {
			continue
		}
		if err != nil {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}
		return os.NewFile(uintptr(fd), name), nil
	}
	return nil, ErrExhausted
}

// createDir atomically creates a new directory named
// prefix+<6 random chars> under dir, or under baseDir() if dir is empty.
func createDir(dir, prefix string) (string, error) {
	if dir == "" {
		dir = baseDir()
	}
	for i := 0; i < maxUniqueAttempts; i++ {
		name := filepath.Join(dir, prefix+randomSuffix())
		err := unix.Mkdir(name, 0700)
		if err == unix.EEXIST {
			continue
		}
		if err != nil {
			return "", &os.PathError{Op: "mkdir", Path: name, Err: err}
		}
		return name, nil
	}
	return "", ErrExhausted
}
