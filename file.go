package tempfile

import (
	"io"
)

// File is a scratch file with no name visible on the filesystem. Its
// storage is reclaimed when it is closed; no explicit removal is needed.
type File interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
}
