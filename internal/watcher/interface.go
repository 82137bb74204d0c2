package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler runs once the watched directory has been quiet for the
// settle period. A returned error stops the watcher.
type EventHandler func(ctx context.Context, dir string) error
