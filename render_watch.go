package modalview

import (
	"context"
	"errors"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch drops the template cache whenever a file under the view path
// changes, so edits show up without a restart. It returns once the watcher
// is installed and runs until ctx is done. Meant for dev setups; production
// keeps the cache warm.
func (t *TemplateRenderer) Watch(ctx context.Context) error {
	if t.config.ViewPath == "" {
		return errors.New("renderer has no view path to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(t.config.ViewPath); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				log.Debug().Str("file", event.Name).Msg("template changed, cache dropped")
				t.Invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("template watcher error")
			}
		}
	}()
	return nil
}
