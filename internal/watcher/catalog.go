// Package watcher reloads the gallery catalog when its file changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// WatchCatalog calls reload whenever path is written, created or renamed,
// until ctx is done. The parent directory is watched so that editors that
// replace the file atomically are still noticed.
func WatchCatalog(ctx context.Context, path string, reload func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	klog.Infof("watching %s for catalog changes", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			klog.V(1).Infof("catalog event: %s", event)
			if err := reload(ctx); err != nil {
				klog.Errorf("catalog reload failed, keeping previous catalog: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Warningf("watcher error: %v", err)
		}
	}
}
