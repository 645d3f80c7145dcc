//go:build windows

package tempfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Windows has no atomic name-reserving primitive equivalent to
// mkstemp/mkdtemp, so creation races with other processes between
// picking a candidate and creating it. The loop bounds the cost of
// losing that race instead of retrying forever.
const maxUniqueAttempts = 100

// createFile creates and opens a new file named prefix+<6 random chars>
// under dir, or under os.TempDir() if dir is empty. "Already exists" is
// the only retryable failure; any other error aborts immediately.
func createFile(dir, prefix string) (*os.File, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	for i := 0; i < maxUniqueAttempts; i++ {
		name := filepath.Join(dir, prefix+randomSuffix())
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, ErrExhausted
}

// createDir creates a new directory named prefix+<6 random chars> under
// dir, or under os.TempDir() if dir is empty. Same retry policy as
// createFile.
func createDir(dir, prefix string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	for i := 0; i < maxUniqueAttempts; i++ {
		name := filepath.Join(dir, prefix+randomSuffix())
		err := os.Mkdir(name, 0700)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return name, nil
	}
	return "", ErrExhausted
}
