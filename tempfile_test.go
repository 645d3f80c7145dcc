package tempfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMakeTempFilePattern(t *testing.T) {
	f, err := MakeTempFile("test-pattern-")
	require.NoError(t, err)
	defer f.Close()

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	require.True(t, info.Mode().IsRegular())

	base := filepath.Base(f.Path())
	require.True(t, strings.HasPrefix(base, "test-pattern-"), "name %q missing prefix", base)
	require.Len(t, base, len("test-pattern-")+suffixLen)
}

func TestMakeTempFileDefaultPrefix(t *testing.T) {
	f := MustMakeTempFile("")
	defer f.Close()

	base := filepath.Base(f.Path())
	require.True(t, strings.HasPrefix(base, DefaultFilePrefix), "name %q missing default prefix", base)
}

func TestTempFileRemovedOnClose(t *testing.T) {
	f := MustMakeTempFile("test-close-")
	path := f.Path()
	require.FileExists(t, path)

	require.NoError(t, f.Close())
	require.NoFileExists(t, path)
	require.Equal(t, "", f.Path())
	require.Nil(t, f.File())

	// Closing again is a no-op.
	require.NoError(t, f.Close())
}

func TestTempFileWriteRead(t *testing.T) {
	f, err := MakeTempFile("test-rw-")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.File().WriteAt([]byte("hello"), 0)
	require.NoError(t, err)

	buf, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf))
}

func TestTempFileRelease(t *testing.T) {
	src, err := MakeTempFile("test-release-")
	require.NoError(t, err)

	file, path := src.Release()
	require.NotNil(t, file)
	require.NotEqual(t, "", path)
	require.Equal(t, "", src.Path())
	require.Nil(t, src.File())

	// Closing the released source must not remove the file.
	require.NoError(t, src.Close())
	require.FileExists(t, path)

	// The new owner's Close removes it exactly then.
	dst := &TempFile{file: file, path: path}
	require.NoError(t, dst.Close())
	require.NoFileExists(t, path)
}

func TestMakeTempFileIn(t *testing.T) {
	dir := t.TempDir()
	f, err := MakeTempFileIn(dir, "test-in-")
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, dir, filepath.Dir(f.Path()))
}

func TestMakeTempFileUnique(t *testing.T) {
	paths := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		f, err := MakeTempFile("test-unique-")
		require.NoError(t, err)
		defer f.Close()

		_, dup := paths[f.Path()]
		require.False(t, dup, "duplicate path %s", f.Path())
		paths[f.Path()] = struct{}{}
	}
}

func TestMakeTempFileConcurrentUnique(t *testing.T) {
	var mu sync.Mutex
	paths := make(map[string]struct{})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 25; j++ {
				f, err := MakeTempFile("test-concurrent-")
				if err != nil {
					return err
				}
				path := f.Path()
				mu.Lock()
				_, dup := paths[path]
				paths[path] = struct{}{}
				mu.Unlock()
				if dup {
					f.Close()
					return fmt.Errorf("duplicate path %s", path)
				}
				if err := f.Close(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Len(t, paths, 8*25)
}
