package assetfs

import (
	"os"
	"path/filepath"

	"github.com/noloitering/raylib/fileio"
)

// DirFS serves files straight from the filesystem, optionally rooted at
// a base directory. It implements fileio.FileSystem.
type DirFS struct {
	root string
}

// NewDirFS returns a DirFS rooted at root. An empty root uses paths as
// given; absolute paths always bypass the root.
func NewDirFS(root string) *DirFS {
	return &DirFS{root: root}
}

func (d *DirFS) path(name string) string {
	if d.root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.root, filepath.FromSlash(name))
}

// Open opens a file for reading through the default capability, so stale
// handle retries apply.
func (d *DirFS) Open(name string) (fileio.File, error) {
	observeOpen("direct")
	return fileio.OSFileSystem().Open(d.path(name))
}

// Create creates or truncates a file for writing, making parent
// directories as needed.
func (d *DirFS) Create(name string) (fileio.File, error) {
	observeOpen("direct")
	full := d.path(name)
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(full)
}
