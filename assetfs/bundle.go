package assetfs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/klauspost/compress/zip"

	"github.com/noloitering/raylib/fileio"
	"github.com/noloitering/raylib/internal/workers"
	"github.com/noloitering/raylib/tracelog"
)

// ErrReadOnly is returned when writing to a file served from a bundle.
var ErrReadOnly = errors.New("asset bundle is read-only")

// Bundle is a read only asset container with a directory fallback for
// files that live outside it. It implements fileio.FileSystem.
type Bundle struct {
	zr       *zip.Reader
	closer   io.Closer // set when the bundle owns the underlying file
	dataPath string
	entries  map[string]*zip.File
}

// OpenBundle opens the container at bundlePath. dataPath is the directory
// where writes land and where reads fall back when an entry is not
// packaged; empty means paths are used as given.
func OpenBundle(bundlePath, dataPath string) (*Bundle, error) {
	rc, err := zip.OpenReader(bundlePath)
	if err != nil {
		tracelog.Warning("ASSETS: [%s] Failed to open asset bundle", bundlePath)
		return nil, fmt.Errorf("open asset bundle: %w", err)
	}

	b := newBundle(&rc.Reader, rc, dataPath)
	tracelog.Info("ASSETS: [%s] Asset bundle opened successfully (%d entries)", bundlePath, len(b.entries))
	return b, nil
}

// NewBundle reads a container from memory or any random access source.
func NewBundle(r io.ReaderAt, size int64, dataPath string) (*Bundle, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read asset bundle: %w", err)
	}
	return newBundle(zr, nil, dataPath), nil
}

func newBundle(zr *zip.Reader, closer io.Closer, dataPath string) *Bundle {
	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// Container names are slash separated
		entries[path.Clean(f.Name)] = f
	}
	return &Bundle{zr: zr, closer: closer, dataPath: dataPath, entries: entries}
}

// lookup finds the container entry for a name, normalizing separators.
func (b *Bundle) lookup(name string) (*zip.File, bool) {
	entry, ok := b.entries[path.Clean(filepath.ToSlash(name))]
	return entry, ok
}

// fallbackPath maps a name to its location on the real filesystem.
func (b *Bundle) fallbackPath(name string) string {
	if b.dataPath == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.dataPath, filepath.FromSlash(name))
}

// Open serves name from the container when it is packaged and from the
// data path otherwise. Container entries come back as in-memory read only
// files; writing to one fails with ErrReadOnly.
func (b *Bundle) Open(name string) (fileio.File, error) {
	if entry, ok := b.lookup(name); ok {
		rc, err := entry.Open()
		if err != nil {
			tracelog.Warning("ASSETS: [%s] Failed to read bundle entry", name)
			return nil, fmt.Errorf("read bundle entry %s: %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			tracelog.Warning("ASSETS: [%s] Failed to read bundle entry", name)
			return nil, fmt.Errorf("read bundle entry %s: %w", name, err)
		}
		observeOpen("bundle")
		return &assetFile{name: name, r: bytes.NewReader(data)}, nil
	}

	// Files pushed outside the container live under the data path
	observeOpen("fallback")
	return fileio.OSFileSystem().Open(b.fallbackPath(name))
}

// Create never touches the container; new files go to the real
// filesystem under the data path, with parent directories made as
// needed.
func (b *Bundle) Create(name string) (fileio.File, error) {
	observeOpen("direct")
	full := b.fallbackPath(name)
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(full)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns the packaged entry names in sorted order.
func (b *Bundle) List() []string {
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EntrySize returns the uncompressed size of a packaged entry, or 0 when
// it is not packaged.
func (b *Bundle) EntrySize(name string) int64 {
	entry, ok := b.lookup(name)
	if !ok {
		return 0
	}
	return int64(entry.UncompressedSize64)
}

// Count returns the number of packaged entries.
func (b *Bundle) Count() int {
	return len(b.entries)
}

// TotalSize returns the summed uncompressed size of every packaged entry.
func (b *Bundle) TotalSize() int64 {
	var total int64
	for _, entry := range b.entries {
		total += int64(entry.UncompressedSize64)
	}
	return total
}

// Verify reads every packaged entry end to end, letting the container's
// checksums catch corruption. Entries are checked by a pool of workers
// sized for CPU-bound decompression; the first damaged entry found is
// reported and no further entries are dispatched.
func (b *Bundle) Verify() error {
	names := b.List()
	if len(names) == 0 {
		return nil
	}

	numWorkers := workers.ForCPU(8)
	if numWorkers > len(names) {
		numWorkers = len(names)
	}
	tracelog.Debug("ASSETS: Verifying %d bundle entries with %d workers", len(names), numWorkers)

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				if err := b.verifyEntry(name); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}

	for _, name := range names {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}
		jobs <- name
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

func (b *Bundle) verifyEntry(name string) error {
	rc, err := b.entries[name].Open()
	if err == nil {
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
	}
	if err != nil {
		tracelog.Warning("ASSETS: [%s] Bundle entry corrupted", name)
		return fmt.Errorf("bundle entry %s: %w", name, err)
	}
	return nil
}

// Close releases the container.
func (b *Bundle) Close() error {
	if b.closer != nil {
		return b.closer.Close()
	}
	return nil
}

// assetFile adapts a fully decompressed container entry to the
// fileio.File interface. Reads and seeks work on the in-memory copy.
type assetFile struct {
	name string
	r    *bytes.Reader
}

func (f *assetFile) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

func (f *assetFile) Seek(offset int64, whence int) (int64, error) {
	return f.r.Seek(offset, whence)
}

func (f *assetFile) Write(p []byte) (int, error) {
	tracelog.Warning("ASSETS: [%s] Write access denied, bundle is read-only", f.name)
	return 0, ErrReadOnly
}

func (f *assetFile) Close() error {
	return nil
}
