package fileio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetFileSystem(t *testing.T) {
	t.Cleanup(ResetFileSystem)

	fake := &fakeFS{}
	SetFileSystem(fake)
	if fsys() != FileSystem(fake) {
		t.Error("SetFileSystem did not install the capability")
	}

	SetFileSystem(nil)
	if fsys() != osFS {
		t.Error("SetFileSystem(nil) should restore the operating system capability")
	}

	SetFileSystem(fake)
	ResetFileSystem()
	if fsys() != osFS {
		t.Error("ResetFileSystem should restore the operating system capability")
	}
}

func TestOSFileSystem(t *testing.T) {
	if OSFileSystem() != osFS {
		t.Error("OSFileSystem() should return the default capability")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "file.bin")

	f, err := OSFileSystem().Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.Write([]byte("content")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := OSFileSystem().Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	size, err := fileSize(r)
	if err != nil {
		t.Fatalf("fileSize() error = %v", err)
	}
	if size != int64(len("content")) {
		t.Errorf("fileSize() = %d, want %d", size, len("content"))
	}

	// The size probe must leave the cursor at the start
	buf := make([]byte, size)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "content" {
		t.Errorf("Read() = %q, want %q", buf, "content")
	}
}

func TestFileSize_Fake(t *testing.T) {
	f := newFakeFile([]byte("12345"))

	size, err := fileSize(f)
	if err != nil {
		t.Fatalf("fileSize() error = %v", err)
	}
	if size != 5 {
		t.Errorf("fileSize() = %d, want 5", size)
	}

	buf := make([]byte, 5)
	n, _ := f.Read(buf)
	if n != 5 || string(buf) != "12345" {
		t.Errorf("Read() after fileSize = %q (%d bytes), want full content", buf[:n], n)
	}
}

func TestSetRetryConfig(t *testing.T) {
	original := defaultRetry
	defer func() { defaultRetry = original }()

	custom := RetryConfig{
		MaxRetries:     5,
		InitialBackoff: 20 * time.Millisecond,
		MaxBackoff:     time.Second,
	}
	SetRetryConfig(custom)

	if defaultRetry.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", defaultRetry.MaxRetries)
	}
	if defaultRetry.InitialBackoff != 20*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 20ms", defaultRetry.InitialBackoff)
	}
}

func TestOSCreate_Truncate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.bin")
	if err := os.WriteFile(path, []byte("old content that is long"), 0o644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	f, err := OSFileSystem().Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.Write([]byte("new")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}
