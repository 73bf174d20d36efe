package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/noloitering/raylib/tracelog"
)

// reloadDelay gives editors that truncate and rewrite time to finish
// before the file is re-read.
const reloadDelay = 100 * time.Millisecond

// Watch re-reads the named configuration file whenever it is written or
// recreated and hands the result to onChange. The returned stop function
// releases the watcher.
//
// If the file does not exist yet its parent directory is watched instead,
// so a file dropped in later is still picked up.
func Watch(path string, onChange func(*Config)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write | fsnotify.Create) {
					continue
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				tracelog.Debug("CONFIG: [%s] Change detected, reloading", path)
				time.Sleep(reloadDelay)
				cfg, err := LoadFile(path)
				if err != nil {
					tracelog.Warning("CONFIG: [%s] Reload failed: %v", path, err)
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				tracelog.Warning("CONFIG: [%s] Watcher error: %v", path, err)
			}
		}
	}()

	if err := watcher.Add(path); err != nil {
		parent := filepath.Dir(path)
		tracelog.Debug("CONFIG: [%s] Cannot watch file (%v), watching %s instead", path, err, parent)
		if perr := watcher.Add(parent); perr != nil {
			watcher.Close()
			return nil, err
		}
	}

	return func() { _ = watcher.Close() }, nil
}
