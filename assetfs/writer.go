package assetfs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/noloitering/raylib/tracelog"
)

// WriteBundle packs every regular file under srcDir into a new container
// at dst. Entry names are slash separated paths relative to srcDir;
// entries are deflate compressed.
func WriteBundle(dst, srcDir string) error {
	out, err := os.Create(dst)
	if err != nil {
		tracelog.Warning("ASSETS: [%s] Failed to write bundle", dst)
		return fmt.Errorf("create bundle: %w", err)
	}

	zw := zip.NewWriter(out)
	count := 0
	err = filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		name := filepath.ToSlash(rel)
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: info.ModTime(),
		})
		if err != nil {
			return err
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			return err
		}

		tracelog.Debug("ASSETS: [%s] Packed into bundle", name)
		count++
		return nil
	})
	if err != nil {
		zw.Close()
		out.Close()
		tracelog.Warning("ASSETS: [%s] Failed to write bundle", dst)
		return fmt.Errorf("write bundle: %w", err)
	}

	if err := zw.Close(); err != nil {
		out.Close()
		tracelog.Warning("ASSETS: [%s] Failed to write bundle", dst)
		return fmt.Errorf("finish bundle: %w", err)
	}
	if err := out.Close(); err != nil {
		tracelog.Warning("ASSETS: [%s] Failed to write bundle", dst)
		return fmt.Errorf("close bundle: %w", err)
	}

	tracelog.Info("ASSETS: [%s] Bundle written successfully (%d entries)", dst, count)
	return nil
}
