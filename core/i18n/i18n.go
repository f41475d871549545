// File: i18n.go
// Title: Message Catalog Manager
// Description: Implements the catalog manager that maps stable diagnostic
//              and error codes to localized message templates. Built-in
//              catalogs for English and German ship with the library;
//              additional or overriding templates load from TOML and YAML
//              catalog files per locale.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation with TOML/YAML catalogs

package i18n

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/utils/stringx"
)

// Format represents the catalog file format
type Format int

const (
	// FormatAuto detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML parses catalog files as TOML
	FormatTOML

	// FormatYAML parses catalog files as YAML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Catalog maps a code to its message template. Templates use positional
// %s markers that are substituted with the diagnostic arguments in order.
type Catalog map[string]string

// ChangeHandler is called after a catalog file was reloaded
type ChangeHandler func(locale string)

// Options defines configuration options for the catalog manager
type Options struct {
	DefaultLocale string // e.g. "en"; defaults to "en" when blank
	LocalesDir    string // optional directory with catalog files
	Format        Format // file format, default auto-detect
	Fallback      bool   // fall back to the default locale for missing codes
}

// Manager resolves codes to localized messages
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	localesDir    string
	format        Format
	fallback      bool
	catalogs      map[string]Catalog
	handlers      []ChangeHandler
	watching      bool
	stopWatch     chan struct{}
}

// New creates a catalog manager seeded with the built-in catalogs. When
// options name a locales directory, every catalog file in it is loaded on
// top of the built-ins.
func New(options Options) (*Manager, error) {
	if stringx.IsBlank(options.DefaultLocale) {
		options.DefaultLocale = "en"
	}
	locale := NormalizeLocale(options.DefaultLocale)

	m := &Manager{
		defaultLocale: locale,
		currentLocale: locale,
		localesDir:    options.LocalesDir,
		format:        options.Format,
		fallback:      options.Fallback,
		catalogs:      builtinCatalogs(),
	}

	if !stringx.IsBlank(m.localesDir) {
		if _, err := os.Stat(m.localesDir); err != nil {
			return nil, coalogerror.Wrap(err, "locales directory not accessible").
				WithCode(coalogerror.CodeCatalogRead).
				WithOperation("i18n.New").
				WithArgs(m.localesDir)
		}
		if err := m.loadAll(); err != nil {
			return nil, err
		}
	}

	if _, ok := m.catalogs[locale]; !ok {
		return nil, coalogerror.New("no catalog for default locale").
			WithCode(coalogerror.CodeCatalogLocale).
			WithOperation("i18n.New").
			WithArgs(locale)
	}
	return m, nil
}

// Default returns a manager with the built-in catalogs and English as the
// active locale. It never fails.
func Default() *Manager {
	return &Manager{
		defaultLocale: "en",
		currentLocale: "en",
		fallback:      true,
		catalogs:      builtinCatalogs(),
	}
}

// SetLocale switches the active locale
func (m *Manager) SetLocale(locale string) error {
	locale = NormalizeLocale(locale)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.catalogs[locale]; !ok {
		return coalogerror.New("locale has no catalog").
			WithCode(coalogerror.CodeCatalogLocale).
			WithOperation("i18n.SetLocale").
			WithArgs(locale)
	}
	m.currentLocale = locale
	return nil
}

// Locale returns the active locale
func (m *Manager) Locale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// AvailableLocales returns all locales with a catalog, sorted
func (m *Manager) AvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	locales := make([]string, 0, len(m.catalogs))
	for locale := range m.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasCode reports whether the active locale can render the given code,
// taking the fallback locale into account
func (m *Manager) HasCode(code coalogerror.Code) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.lookup(string(code))
	return ok
}

// Message renders the template for a code with the given arguments. A code
// without a template renders as the code itself followed by the arguments,
// so no diagnostic is ever silently lost.
func (m *Manager) Message(code coalogerror.Code, args ...string) string {
	m.mu.RLock()
	template, ok := m.lookup(string(code))
	m.mu.RUnlock()
	if !ok {
		if len(args) == 0 {
			return string(code)
		}
		return string(code) + " " + strings.Join(args, " ")
	}
	return expand(template, args)
}

// lookup resolves a catalog entry in the active locale with fallback to
// the default locale. Callers hold at least the read lock.
func (m *Manager) lookup(key string) (string, bool) {
	if c, ok := m.catalogs[m.currentLocale]; ok {
		if template, ok := c[key]; ok {
			return template, true
		}
	}
	if m.fallback && m.currentLocale != m.defaultLocale {
		if c, ok := m.catalogs[m.defaultLocale]; ok {
			if template, ok := c[key]; ok {
				return template, true
			}
		}
	}
	return "", false
}

// expand substitutes the positional %s markers of a template in argument
// order. Surplus markers stay in place, surplus arguments are dropped.
func expand(template string, args []string) string {
	if len(args) == 0 || !strings.Contains(template, "%s") {
		return template
	}
	var sb strings.Builder
	rest := template
	for _, arg := range args {
		idx := strings.Index(rest, "%s")
		if idx < 0 {
			break
		}
		sb.WriteString(rest[:idx])
		sb.WriteString(arg)
		rest = rest[idx+2:]
	}
	sb.WriteString(rest)
	return sb.String()
}

// LoadLocaleFile loads one catalog file on top of the locale's current
// catalog. The locale is derived from the file name, e.g. "de.toml".
func (m *Manager) LoadLocaleFile(path string) error {
	locale, entries, err := readCatalogFile(path, m.format)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.catalogs[locale]
	if !ok {
		c = make(Catalog)
		m.catalogs[locale] = c
	}
	for key, template := range entries {
		c[key] = template
	}
	return nil
}

// loadAll loads every catalog file in the locales directory
func (m *Manager) loadAll() error {
	files, err := catalogFiles(m.localesDir, m.format)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := m.LoadLocaleFile(path); err != nil {
			return err
		}
	}
	return nil
}

// catalogFiles lists the catalog files of a directory matching the format
func catalogFiles(dir string, format Format) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, coalogerror.Wrap(err, "cannot list locales directory").
			WithCode(coalogerror.CodeCatalogRead).
			WithOperation("i18n.catalogFiles").
			WithArgs(dir)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		switch format {
		case FormatTOML:
			if ext != ".toml" {
				continue
			}
		case FormatYAML:
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
		default:
			if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
				continue
			}
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// readCatalogFile reads and decodes one catalog file
func readCatalogFile(path string, format Format) (string, Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, coalogerror.Wrap(err, "cannot read catalog file").
			WithCode(coalogerror.CodeCatalogRead).
			WithOperation("i18n.readCatalogFile").
			WithArgs(path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if format == FormatAuto {
		if ext == ".yaml" || ext == ".yml" {
			format = FormatYAML
		} else {
			format = FormatTOML
		}
	}

	entries := make(Catalog)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		err = toml.Unmarshal(data, &entries)
	}
	if err != nil {
		return "", nil, coalogerror.Wrap(err, "cannot decode catalog file").
			WithCode(coalogerror.CodeCatalogRead).
			WithOperation("i18n.readCatalogFile").
			WithArgs(path)
	}

	locale := NormalizeLocale(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return locale, entries, nil
}

// OnChange registers a handler invoked after a catalog reload
func (m *Manager) OnChange(handler ChangeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// notify calls the registered change handlers
func (m *Manager) notify(locale string) {
	m.mu.RLock()
	handlers := append([]ChangeHandler(nil), m.handlers...)
	m.mu.RUnlock()
	for _, handler := range handlers {
		handler(locale)
	}
}
