// File: watch.go
// Title: Configuration Hot Reload
// Description: Polls a configuration file for modification time changes,
//              re-parses it, and notifies registered handlers with the new
//              model.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package config

import (
	"os"
	"sync"
	"time"

	"github.com/msto63/coalog/config/toml"
	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/core/log"
)

// DefaultWatchInterval is the polling interval used when Watch is
// given a non-positive interval.
const DefaultWatchInterval = 2 * time.Second

// ReloadHandler receives the freshly built model after the watched file
// changed. Diagnostics include syntax errors; the model is usable even
// then.
type ReloadHandler func(model *Model, diags []toml.Diagnostic)

// Watcher polls one configuration file and reloads it on change.
type Watcher struct {
	mu       sync.Mutex
	path     string
	interval time.Duration
	handlers []ReloadHandler
	stop     chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the given file. Watching starts with
// Watch, not here.
func NewWatcher(path string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{path: path, interval: interval}
}

// OnReload registers a handler called after every successful reload.
func (w *Watcher) OnReload(handler ReloadHandler) {
	if handler == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Watch begins polling. It fails when the file cannot be stat'ed;
// calling it on a running watcher is a no-op.
func (w *Watcher) Watch() error {
	info, err := os.Stat(w.path)
	if err != nil {
		return coalogerror.Wrap(err, "watching configuration file").
			WithCode(coalogerror.CodeConfigRead).
			WithOperation("config.Watch").
			WithArgs(w.path)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	w.running = true
	w.stop = make(chan struct{})
	go w.loop(info.ModTime())
	return nil
}

// StopWatch stops polling. Safe to call on a stopped watcher.
func (w *Watcher) StopWatch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stop)
}

func (w *Watcher) loop(lastMod time.Time) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil || !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			w.reload(lastMod)
		}
	}
}

func (w *Watcher) reload(changed time.Time) {
	raw, err := os.ReadFile(w.path)
	if err != nil {
		log.Warning("configuration reload failed", log.Str("path", w.path), log.Err(err))
		return
	}
	model, diags := Parse(string(raw))
	model.System.ChangeTime = changed
	log.Info("configuration reloaded",
		log.Str("path", w.path), log.Int("findings", len(diags)))

	w.mu.Lock()
	handlers := append([]ReloadHandler(nil), w.handlers...)
	w.mu.Unlock()
	for _, handler := range handlers {
		handler(model, diags)
	}
}
