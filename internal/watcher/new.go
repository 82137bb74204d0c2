package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
)

// New creates a new Watcher on dir. The handler is invoked serially.
func New(dir string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2s if not specified
	if settle <= 0 {
		settle = 2 * time.Second
	}

	return &implWatcher{
		dir:     dir,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  settle,
	}, nil
}
