// File: watch.go
// Title: Catalog File Watching
// Description: Implements polling-based monitoring of the locales directory
//              so that edited catalog files reload at runtime without a
//              restart.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation with polling watcher

package i18n

import (
	"os"
	"time"

	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/utils/stringx"
)

// DefaultWatchInterval is the poll interval used by StartWatching
const DefaultWatchInterval = 2 * time.Second

// StartWatching begins polling the locales directory for modified catalog
// files. Changed files reload in place and registered change handlers
// are notified per reloaded locale.
func (m *Manager) StartWatching(interval time.Duration) error {
	if stringx.IsBlank(m.localesDir) {
		return coalogerror.New("no locales directory to watch").
			WithCode(coalogerror.CodeValidationFailed).
			WithOperation("i18n.StartWatching")
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return nil
	}
	m.watching = true
	m.stopWatch = make(chan struct{})
	stop := m.stopWatch
	m.mu.Unlock()

	go m.watchLoop(interval, stop)
	return nil
}

// StopWatching ends the polling loop
func (m *Manager) StopWatching() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.watching {
		return
	}
	m.watching = false
	close(m.stopWatch)
}

// watchLoop polls the catalog files and reloads those whose modification
// time advanced since the last pass
func (m *Manager) watchLoop(interval time.Duration, stop <-chan struct{}) {
	seen := make(map[string]time.Time)
	if files, err := catalogFiles(m.localesDir, m.format); err == nil {
		for _, path := range files {
			if info, err := os.Stat(path); err == nil {
				seen[path] = info.ModTime()
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.pollOnce(seen)
		}
	}
}

// pollOnce reloads every new or modified catalog file
func (m *Manager) pollOnce(seen map[string]time.Time) {
	files, err := catalogFiles(m.localesDir, m.format)
	if err != nil {
		return
	}
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		last, known := seen[path]
		if known && !info.ModTime().After(last) {
			continue
		}
		seen[path] = info.ModTime()
		locale, entries, err := readCatalogFile(path, m.format)
		if err != nil {
			continue
		}
		m.mu.Lock()
		c, ok := m.catalogs[locale]
		if !ok {
			c = make(Catalog)
			m.catalogs[locale] = c
		}
		for key, template := range entries {
			c[key] = template
		}
		m.mu.Unlock()
		m.notify(locale)
	}
}
