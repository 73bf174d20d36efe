package fileio

import (
	"path/filepath"
	"strings"

	"github.com/noloitering/raylib/tracelog"
)

// FileExists reports whether fileName exists and is a regular file.
func FileExists(fileName string) bool {
	info, err := StatWithRetry(fileName, defaultRetry)
	return err == nil && !info.IsDir()
}

// DirectoryExists reports whether dirPath exists and is a directory.
func DirectoryExists(dirPath string) bool {
	info, err := StatWithRetry(dirPath, defaultRetry)
	return err == nil && info.IsDir()
}

// GetFileLength returns the size of a file in bytes, or 0 when it cannot
// be inspected.
func GetFileLength(fileName string) int64 {
	info, err := StatWithRetry(fileName, defaultRetry)
	if err != nil {
		tracelog.Warning("FILEIO: [%s] Failed to open file", fileName)
		return 0
	}
	return info.Size()
}

// GetFileExtension returns the extension of the last path element
// including the leading dot, or "" when there is none.
func GetFileExtension(fileName string) string {
	return filepath.Ext(fileName)
}

// IsFileExtension checks whether a file carries any extension from a
// semicolon separated list such as ".png;.jpg;.jpeg". Matching is case
// insensitive; files without an extension never match.
func IsFileExtension(fileName, exts string) bool {
	fileExt := filepath.Ext(fileName)
	if fileExt == "" {
		return false
	}
	for _, ext := range strings.Split(exts, ";") {
		if strings.EqualFold(fileExt, strings.TrimSpace(ext)) {
			return true
		}
	}
	return false
}

// GetFileName returns the last element of a path.
func GetFileName(filePath string) string {
	return filepath.Base(filePath)
}

// GetFileNameWithoutExt returns the last element of a path with its
// extension removed.
func GetFileNameWithoutExt(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
