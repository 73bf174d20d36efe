package fileio

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/noloitering/raylib/tracelog"
)

// CompressData compresses data with DEFLATE and returns the compressed
// bytes.
func CompressData(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	tracelog.Info("SYSTEM: Compress data: Original size: %d -> Comp. size: %d", len(data), buf.Len())
	return buf.Bytes(), nil
}

// DecompressData inflates DEFLATE compressed data back to its original
// form.
func DecompressData(compData []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(compData))
	data, err := io.ReadAll(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		tracelog.Warning("SYSTEM: Failed to decompress data")
		return nil, err
	}

	tracelog.Info("SYSTEM: Decompress data: Comp. size: %d -> Original size: %d", len(compData), len(data))
	return data, nil
}
