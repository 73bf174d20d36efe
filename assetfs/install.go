package assetfs

import (
	"github.com/noloitering/raylib/fileio"
)

// installed is the capability this package routed library opens through,
// nil when none is active.
var installed fileio.FileSystem

// Install makes fs the library wide file access capability. Platform
// startup code calls this once before anything opens files.
func Install(fs fileio.FileSystem) {
	installed = fs
	fileio.SetFileSystem(fs)
}

// Installed returns the capability installed by this package, or nil.
func Installed() fileio.FileSystem {
	return installed
}

// Reset restores direct filesystem access.
func Reset() {
	installed = nil
	fileio.ResetFileSystem()
}

// InitBundle opens the container at bundlePath and installs it, so every
// subsequent open in the library is served from packaged assets with
// dataPath as the write target and read fallback.
func InitBundle(bundlePath, dataPath string) (*Bundle, error) {
	b, err := OpenBundle(bundlePath, dataPath)
	if err != nil {
		return nil, err
	}
	Install(b)
	return b, nil
}
