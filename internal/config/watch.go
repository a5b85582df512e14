package config

import (
	"context"
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors a config file and invokes onChange with the freshly
// loaded configuration on every write. Files that fail to reload keep the
// previous configuration in effect. Blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch config file: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if event.Op&fsnotify.Write == fsnotify.Write {
				config, loadErr := LoadFrom(path)
				if loadErr != nil {
					log.Printf("[Config] Reload failed: %v", loadErr)
					continue
				}
				if validateErr := config.Validate(); validateErr != nil {
					log.Printf("[Config] Reloaded config invalid: %v", validateErr)
					continue
				}
				onChange(config)
			}
		case watchErr := <-watcher.Errors:
			log.Printf("[Config] Watcher error: %v", watchErr)
		}
	}
}
