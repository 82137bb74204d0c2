package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename

type implWatcher struct {
	dir     string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
	settle  time.Duration
}

// Start blocks, running the handler each time the directory settles after
// a change to a media file. One pass is scheduled immediately so files
// already present are handled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (settle: %s). Monitoring: %s", w.settle, w.dir)
	w.logger.Info(ctx, "Supported formats: %s, %s, %s", media.VideoExt, media.WebVTTExt, media.SubRipExt)

	timer := time.NewTimer(w.settle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&relevantOps == 0 || !isMediaFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring event %s", event)
				continue
			}

			w.logger.Debug(ctx, "Change detected: %s", event)
			resetTimer(timer, w.settle)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)

		case <-timer.C:
			if err := w.handler(ctx, w.dir); err != nil {
				return err
			}
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// resetTimer re-arms t, draining a pending fire so the handler never runs
// before the directory has been quiet for d.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// isMediaFile checks if the file has an extension the muxer consumes
func isMediaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case media.VideoExt, media.WebVTTExt, media.SubRipExt:
		return true
	}
	return false
}
