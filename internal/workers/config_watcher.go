// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/store"
)

// Invalidator drops cached model configs.
type Invalidator interface {
	Invalidate(table string)
}

// ConfigWatcher invalidates the cached parse of a model when its
// model_config.ini changes on disk. Bursts of events for one model are
// collapsed into a single invalidation after the debounce delay.
type ConfigWatcher struct {
	root        string
	invalidator Invalidator
	debounce    time.Duration
	clock       clockwork.Clock

	watcher *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]clockwork.Timer

	logger *logger.Logger
}

func NewConfigWatcher(root string, invalidator Invalidator, debounce time.Duration, clock clockwork.Clock, logger *logger.Logger) *ConfigWatcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &ConfigWatcher{
		root:        root,
		invalidator: invalidator,
		debounce:    debounce,
		clock:       clock,
		timers:      make(map[string]clockwork.Timer),
		logger:      logger,
	}
}

func (w *ConfigWatcher) Run(ctx context.Context) error {
	if err := w.start(); err != nil {
		w.logger.Err(err).
			Str("event", "config_watcher.failed").
			Str("root", w.root).
			Msg("model configs are not watched, cached parses will not be invalidated")
		return err
	}

	w.loop(ctx)
	return nil
}

// start watches the web app root and every model directory below it.
func (w *ConfigWatcher) start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(w.root); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch web app root: %w", err)
	}

	w.watcher = watcher

	entries, err := os.ReadDir(w.root)
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("read web app root: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			w.watchModelDir(entry.Name())
		}
	}

	w.logger.Info().
		Str("event", "config_watcher.started").
		Str("root", w.root).
		Int("watched", len(watcher.WatchList())).
		Msg("watching model configs for changes")

	return nil
}

func (w *ConfigWatcher) watchModelDir(table string) {
	if store.ValidateTableName(table) != nil {
		return
	}

	if err := w.watcher.Add(filepath.Join(w.root, table)); err != nil {
		w.logger.Err(err).Str("event", "config_watcher.add_failed").Str("table", table).Msg("cannot watch model directory")
	}
}

func (w *ConfigWatcher) loop(ctx context.Context) {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("event", "config_watcher.stopped").Msg("config watcher stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Err(err).Str("event", "config_watcher.error").Msg("config watcher error")
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	dir, name := filepath.Split(event.Name)
	dir = filepath.Clean(dir)

	// a new model directory appeared under the root
	if dir == filepath.Clean(w.root) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				w.watchModelDir(name)
			}
		}
		return
	}

	if name != store.ModelConfigFile || filepath.Dir(dir) != filepath.Clean(w.root) {
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	table := filepath.Base(dir)
	w.logger.Debug().
		Str("event", "config_watcher.file_changed").
		Str("table", table).
		Str("op", event.Op.String()).
		Msg("model config changed")

	w.schedule(table)
}

// schedule (re)arms the debounce timer of table.
func (w *ConfigWatcher) schedule(table string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[table]; ok {
		timer.Stop()
	}

	var timer clockwork.Timer
	timer = w.clock.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.timers[table] == timer {
			delete(w.timers, table)
		}
		w.mu.Unlock()

		w.invalidator.Invalidate(table)
	})
	w.timers[table] = timer
}

func (w *ConfigWatcher) stop() {
	w.mu.Lock()
	for table, timer := range w.timers {
		timer.Stop()
		delete(w.timers, table)
	}
	w.mu.Unlock()

	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}
