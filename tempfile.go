// Package tempfile creates uniquely-named temporary files and directories
// that are owned by the returned value and removed when it is closed.
//
// Files and directories are created as
// <temp-dir>/<prefix><6 random chars>, where <temp-dir> is resolved from
// the environment (TMPDIR, TMP, TEMP, TEMPDIR, in that order, defaulting
// to /tmp) on Unix-like systems, and from os.TempDir on Windows. Creation
// is atomic with respect to name collisions: concurrent callers, including
// other processes, never receive the same name.
package tempfile

import (
	"math/rand"

	"github.com/pkg/errors"
)

const (
	// DefaultFilePrefix and DefaultDirPrefix are used when the caller
	// passes an empty prefix. They differ so that intent is visible in a
	// directory listing.
	DefaultFilePrefix = "temp-file-"
	DefaultDirPrefix  = "temp-dir-"

	suffixLen   = 6
	suffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrExhausted is returned when the creation loop runs out of attempts
// without finding an unused name.
var ErrExhausted = errors.New("tempfile: no unused temporary name found")

// randomSuffix returns the 6 characters that complete a candidate name.
// Uniqueness does not depend on this; the exclusive-create primitives do
// the real work. Randomness only keeps the expected retry count low.
func randomSuffix() string {
	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = suffixChars[rand.Intn(len(suffixChars))]
	}
	return string(b)
}

// MakeTempFile creates and opens a new temporary file in the
// environment-selected temporary directory. The file's name is
// prefix followed by 6 random characters. If prefix is empty,
// DefaultFilePrefix is used. The file is the caller's to close.
func MakeTempFile(prefix string) (*TempFile, error) {
	return MakeTempFileIn("", prefix)
}

// MakeTempFileIn is like MakeTempFile, but creates the file under dir
// instead of the environment-selected temporary directory. An empty dir
// selects the default location.
func MakeTempFileIn(dir, prefix string) (*TempFile, error) {
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	f, err := createFile(dir, prefix)
	if err != nil {
		return nil, err
	}
	return &TempFile{file: f, path: f.Name()}, nil
}

// MustMakeTempFile is like MakeTempFile, but panics on failure. The panic
// value is an error whose message includes the underlying OS error.
func MustMakeTempFile(prefix string) *TempFile {
	f, err := MakeTempFile(prefix)
	if err != nil {
		panic(errors.Wrap(err, "unable to create temporary file"))
	}
	return f
}

// MakeTempDir creates a new temporary directory in the
// environment-selected temporary directory. The directory's name is
// prefix followed by 6 random characters. If prefix is empty,
// DefaultDirPrefix is used.
func MakeTempDir(prefix string) (*TempDir, error) {
	return MakeTempDirIn("", prefix)
}

// MakeTempDirIn is like MakeTempDir, but creates the directory under dir
// instead of the environment-selected temporary directory. An empty dir
// selects the default location.
func MakeTempDirIn(dir, prefix string) (*TempDir, error) {
	if prefix == "" {
		prefix = DefaultDirPrefix
	}
	path, err := createDir(dir, prefix)
	if err != nil {
		return nil, err
	}
	return &TempDir{path: path}, nil
}

// MustMakeTempDir is like MakeTempDir, but panics on failure. The panic
// value is an error whose message includes the underlying OS error.
func MustMakeTempDir(prefix string) *TempDir {
	d, err := MakeTempDir(prefix)
	if err != nil {
		panic(errors.Wrap(err, "unable to create temporary directory"))
	}
	return d
}
