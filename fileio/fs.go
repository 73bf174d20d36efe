package fileio

import (
	"io"
	"os"
)

// File is the handle the file access capability returns. Read-only
// implementations still satisfy the full interface and fail writes.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// FileSystem is the capability every helper in this package opens files
// through. Open is for reading an existing file, Create truncates or
// creates for writing.
type FileSystem interface {
	Open(name string) (File, error)
	Create(name string) (File, error)
}

// osFileSystem is the real filesystem, the default capability. Opens go
// through the stale handle retry path.
type osFileSystem struct{}

func (osFileSystem) Open(name string) (File, error) {
	f, err := OpenWithRetry(name, defaultRetry)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (osFileSystem) Create(name string) (File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

var osFS FileSystem = osFileSystem{}

// activeFS is the capability in effect. Replaced once at startup when a
// platform packages its assets; read on every open afterwards.
var activeFS = osFS

// OSFileSystem returns the direct operating system capability.
func OSFileSystem() FileSystem {
	return osFS
}

// SetFileSystem installs fs as the file access capability for the whole
// package. Passing nil restores direct operating system access. Call this
// once at startup before other goroutines open files.
func SetFileSystem(fs FileSystem) {
	if fs == nil {
		fs = osFS
	}
	activeFS = fs
}

// ResetFileSystem restores direct operating system access.
func ResetFileSystem() {
	activeFS = osFS
}

// fsys returns the active capability.
func fsys() FileSystem {
	return activeFS
}

// defaultRetry is the retry policy the default capability applies to
// opens and stats.
var defaultRetry = DefaultRetryConfig()

// SetRetryConfig replaces the retry policy of the default capability.
// Call this once at startup after loading configuration.
func SetRetryConfig(config RetryConfig) {
	defaultRetry = config
}

// fileSize reports the size of an open file by seeking to the end and
// back. It works for any seekable File, including packaged assets.
func fileSize(f File) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}
