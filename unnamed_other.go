//go:build !linux

package tempfile

import (
	"os"
)

// MakeUnnamedFile creates a scratch file under dir, or under the default
// temporary directory if dir is empty. The file is created normally and
// unlinked immediately so it is deleted as soon as it's closed.
func MakeUnnamedFile(dir string) (File, error) {
	f, err := createFile(dir, DefaultFilePrefix)
	if err != nil {
		return nil, err
	}
	os.Remove(f.Name())
	return f, nil
}
