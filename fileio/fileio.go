package fileio

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/noloitering/raylib/tracelog"
)

var (
	// ErrInvalidName is returned when the file name is empty.
	ErrInvalidName = errors.New("file name provided is not valid")
	// ErrEmptyFile is returned when a file to load has no content.
	ErrEmptyFile = errors.New("file is empty")
)

// LoadFileData reads an entire binary file through the active capability
// and returns its contents. A short read is reported on the trace log and
// the bytes that were read are returned without an error; the caller
// decides whether a partial payload is usable.
func LoadFileData(fileName string) ([]byte, error) {
	start := time.Now()

	if fileName == "" {
		tracelog.Warning("FILEIO: File name provided is not valid")
		observe().ObserveOperation("load", "error", time.Since(start).Seconds(), 0)
		return nil, ErrInvalidName
	}

	f, err := fsys().Open(fileName)
	if err != nil {
		tracelog.Warning("FILEIO: [%s] Failed to open file", fileName)
		observe().ObserveOperation("load", "error", time.Since(start).Seconds(), 0)
		return nil, err
	}
	defer f.Close()

	size, err := fileSize(f)
	if err != nil || size == 0 {
		tracelog.Warning("FILEIO: [%s] Failed to read file", fileName)
		observe().ObserveOperation("load", "error", time.Since(start).Seconds(), 0)
		if err != nil {
			return nil, err
		}
		return nil, ErrEmptyFile
	}

	data := make([]byte, size)
	n, _ := io.ReadFull(f, data)
	if int64(n) < size {
		tracelog.Warning("FILEIO: [%s] File partially loaded", fileName)
		observe().ObserveOperation("load", "partial", time.Since(start).Seconds(), n)
		return data[:n], nil
	}

	tracelog.Info("FILEIO: [%s] File loaded successfully", fileName)
	observe().ObserveOperation("load", "success", time.Since(start).Seconds(), n)
	return data, nil
}

// SaveFileData writes data as the complete contents of the named file,
// creating or truncating it through the active capability.
func SaveFileData(fileName string, data []byte) error {
	start := time.Now()

	if fileName == "" {
		tracelog.Warning("FILEIO: File name provided is not valid")
		observe().ObserveOperation("save", "error", time.Since(start).Seconds(), 0)
		return ErrInvalidName
	}

	f, err := fsys().Create(fileName)
	if err != nil {
		tracelog.Warning("FILEIO: [%s] Failed to open file", fileName)
		observe().ObserveOperation("save", "error", time.Since(start).Seconds(), 0)
		return err
	}

	n, werr := f.Write(data)
	switch {
	case n == 0 && len(data) > 0:
		tracelog.Warning("FILEIO: [%s] Failed to write file", fileName)
		observe().ObserveOperation("save", "error", time.Since(start).Seconds(), 0)
	case n < len(data):
		tracelog.Warning("FILEIO: [%s] File partially written", fileName)
		observe().ObserveOperation("save", "partial", time.Since(start).Seconds(), n)
	case len(data) == 0:
		// Zero payload writes nothing; kept as a warning rather than success
		tracelog.Warning("FILEIO: [%s] Failed to write file", fileName)
		observe().ObserveOperation("save", "success", time.Since(start).Seconds(), 0)
	default:
		tracelog.Info("FILEIO: [%s] File saved successfully", fileName)
		observe().ObserveOperation("save", "success", time.Since(start).Seconds(), n)
	}

	cerr := f.Close()
	if werr == nil && n < len(data) {
		werr = io.ErrShortWrite
	}
	if werr != nil {
		return werr
	}
	return cerr
}

// LoadFileText reads an entire text file through the active capability and
// returns it as a string. Windows line endings are normalized to '\n', so
// the result can be shorter than the file on disk.
func LoadFileText(fileName string) (string, error) {
	start := time.Now()

	if fileName == "" {
		tracelog.Warning("FILEIO: File name provided is not valid")
		observe().ObserveOperation("load_text", "error", time.Since(start).Seconds(), 0)
		return "", ErrInvalidName
	}

	f, err := fsys().Open(fileName)
	if err != nil {
		tracelog.Warning("FILEIO: [%s] Failed to open text file", fileName)
		observe().ObserveOperation("load_text", "error", time.Since(start).Seconds(), 0)
		return "", err
	}
	defer f.Close()

	size, err := fileSize(f)
	if err != nil || size == 0 {
		tracelog.Warning("FILEIO: [%s] Failed to read text file", fileName)
		observe().ObserveOperation("load_text", "error", time.Since(start).Seconds(), 0)
		if err != nil {
			return "", err
		}
		return "", ErrEmptyFile
	}

	data := make([]byte, size)
	n, _ := io.ReadFull(f, data)
	// A short read only shrinks the text, matching the size drift text
	// mode translation always caused here
	text := string(normalizeNewlines(data[:n]))

	tracelog.Info("FILEIO: [%s] Text file loaded successfully", fileName)
	observe().ObserveOperation("load_text", "success", time.Since(start).Seconds(), n)
	return text, nil
}

// SaveFileText writes text as the complete contents of the named file,
// creating or truncating it through the active capability. The string is
// written as is; no newline is appended.
func SaveFileText(fileName, text string) error {
	start := time.Now()

	if fileName == "" {
		tracelog.Warning("FILEIO: File name provided is not valid")
		observe().ObserveOperation("save_text", "error", time.Since(start).Seconds(), 0)
		return ErrInvalidName
	}

	f, err := fsys().Create(fileName)
	if err != nil {
		tracelog.Warning("FILEIO: [%s] Failed to open text file", fileName)
		observe().ObserveOperation("save_text", "error", time.Since(start).Seconds(), 0)
		return err
	}

	n, werr := io.WriteString(f, text)
	if werr != nil {
		tracelog.Warning("FILEIO: [%s] Failed to write text file", fileName)
		observe().ObserveOperation("save_text", "error", time.Since(start).Seconds(), n)
		f.Close()
		return werr
	}

	tracelog.Info("FILEIO: [%s] Text file saved successfully", fileName)
	observe().ObserveOperation("save_text", "success", time.Since(start).Seconds(), n)
	return f.Close()
}

// normalizeNewlines rewrites CRLF pairs to bare LF.
func normalizeNewlines(data []byte) []byte {
	if !bytes.Contains(data, []byte("\r\n")) {
		return data
	}
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}
