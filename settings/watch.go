package settings

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch reloads the settings file whenever it is written and hands the new settings to fn. Files that
// fail to load are logged and skipped. The returned function stops watching.
func Watch(path string, log *logrus.Logger, fn func(Settings)) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file instead of writing to it, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	go func() {
		var last time.Time
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				now := time.Now()
				if now.Sub(last) < 100*time.Millisecond {
					continue
				}
				last = now

				s, err := Load(path)
				if err != nil {
					log.Warnf("settings: ignoring change to %s: %v", path, err)
					continue
				}
				log.Infof("settings: reloaded %s", path)
				fn(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Errorf("settings: watcher error: %v", err)
			}
		}
	}()
	return w.Close, nil
}
