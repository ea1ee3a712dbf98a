package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/keeper/pkg/core"
)

// Watch emits an event for every external change to a file under dir whose
// path (relative to dir) matches the doublestar pattern. The in-memory
// books never reconcile against these events; the channel only surfaces
// that the files moved underneath the session.
//
// The returned channel is closed when ctx is cancelled or the underlying
// watcher shuts down.
func Watch(ctx context.Context, dir, pattern string, logger *slog.Logger) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, relevant := mapEvent(dir, pattern, ev)
				if !relevant {
					continue
				}
				if logger != nil {
					logger.Debug("data file changed", "event", e.String())
				}
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if logger != nil {
					logger.Error("fsnotify error", "error", werr)
				}
			}
		}
	})

	return events, nil
}

// mapEvent filters and translates a raw fsnotify event.
func mapEvent(dir, pattern string, ev fsnotify.Event) (core.Event, bool) {
	rel, err := filepath.Rel(dir, ev.Name)
	if err != nil {
		return core.Event{}, false
	}
	rel = filepath.ToSlash(rel)

	// Our own atomic writes go through temp files; the rename onto the
	// target is the event that matters.
	if strings.HasPrefix(filepath.Base(rel), TempFilePrefix) {
		return core.Event{}, false
	}

	if ok, err := doublestar.Match(pattern, rel); err != nil || !ok {
		return core.Event{}, false
	}

	var etype core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		etype = core.EventCreate
	case ev.Has(fsnotify.Write):
		etype = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		etype = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      etype,
		Name:      rel,
		Timestamp: time.Now().Unix(),
	}, true
}
