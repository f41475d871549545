// File: runtime.go
// Title: Logging Runtime Assembly
// Description: Opens the output resources of a configuration model as
//              live loggers: console, file, and memory-buffer sinks with
//              the formats, policies, and modes the model describes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package coalog

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/msto63/coalog/config"
	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/core/log"
	"github.com/msto63/coalog/utils/filex"
)

// Runtime holds the live loggers assembled from a configuration model.
// One logger exists per configured resource.
type Runtime struct {
	mu      sync.Mutex
	model   *config.Model
	loggers map[string]*log.Logger
	buffers map[string]*MemorySink
	files   []*os.File
	closed  bool
}

// Open assembles a runtime from the model. File resources are opened
// under the system output path, falling back to the fallback path when
// the output path is not writable. Opening fails only when a file
// resource has no usable location at all.
func Open(model *config.Model) (*Runtime, error) {
	r := &Runtime{
		model:   model,
		loggers: make(map[string]*log.Logger),
		buffers: make(map[string]*MemorySink),
	}
	for _, res := range model.Resources {
		if err := r.open(res); err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

func (r *Runtime) open(res *config.Resource) error {
	format := r.model.Format(res.Format)
	policy := r.model.Policy(res.Policy)

	var out io.Writer
	switch res.Type {
	case config.ResourceFile:
		file, err := r.openFile(res)
		if err != nil {
			return err
		}
		r.files = append(r.files, file)
		out = file
	case config.ResourceMemory:
		sink := NewMemorySink(policy.BufferSize)
		r.buffers[res.Name] = sink
		out = sink
	default:
		out = os.Stdout
	}

	r.loggers[res.Name] = log.NewWithConfig(log.Config{
		Name:       res.Name,
		Triggers:   effectiveTriggers(format.Triggers, res.Level),
		Formatter:  log.NewPatternFormatter(format.Pattern, format.TimeFormat),
		Output:     out,
		Async:      res.Type == config.ResourceFile,
		BufferSize: policy.BufferSize,
	})
	return nil
}

// openFile opens the resource target for appending, trying the output
// path first and the fallback path second.
func (r *Runtime) openFile(res *config.Resource) (*os.File, error) {
	var lastErr error
	for _, base := range []string{r.model.System.OutputPath, r.model.System.FallbackPath} {
		if base == "" {
			continue
		}
		path := filex.Resolve(base, res.Target)
		dir := filepath.Dir(path)
		if err := filex.EnsureDir(dir); err != nil {
			lastErr = err
			continue
		}
		if !filex.IsWritableDir(dir) {
			continue
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			lastErr = err
			continue
		}
		return file, nil
	}
	e := coalogerror.New("no usable location for log file").
		WithCode(coalogerror.CodeResourceOpen).
		WithOperation("coalog.Open").
		WithArgs(res.Name, res.Target)
	if lastErr != nil {
		e = coalogerror.Wrap(lastErr, "no usable location for log file").
			WithCode(coalogerror.CodeResourceOpen).
			WithOperation("coalog.Open").
			WithArgs(res.Name, res.Target)
	}
	return nil, e
}

// effectiveTriggers restricts a format's trigger set to levels at or
// above the resource's minimum level.
func effectiveTriggers(triggers log.TriggerSet, min log.Level) log.TriggerSet {
	var levels []log.Level
	for _, l := range log.AllLevels() {
		if triggers.Contains(l) && l >= min {
			levels = append(levels, l)
		}
	}
	return log.NewTriggerSet(levels...)
}

// Logger returns the logger of the named resource. After Close every
// lookup fails with CodeResourceClosed.
func (r *Runtime) Logger(name string) (*log.Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, coalogerror.New("runtime is closed").
			WithCode(coalogerror.CodeResourceClosed).
			WithOperation("coalog.Logger").
			WithArgs(name)
	}
	logger, ok := r.loggers[name]
	if !ok {
		return nil, coalogerror.Newf("no resource named %s", name).
			WithCode(coalogerror.CodeResourceOpen).
			WithOperation("coalog.Logger").
			WithArgs(name)
	}
	return logger, nil
}

// Buffer returns the memory sink of the named memory resource, or nil.
func (r *Runtime) Buffer(name string) *MemorySink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffers[name]
}

// ActivateMode applies the named mode: every resource the mode lists
// switches to the mode's trigger set.
func (r *Runtime) ActivateMode(name string) error {
	mode := r.findMode(name)
	if mode == nil {
		return coalogerror.Newf("no mode named %s", name).
			WithCode(coalogerror.CodeUnknown).
			WithOperation("coalog.ActivateMode").
			WithArgs(name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resource := range mode.Resources {
		if logger, ok := r.loggers[resource]; ok {
			logger.SetTriggers(mode.Triggers)
		}
	}
	return nil
}

// DeactivateMode restores the configured trigger sets of the resources
// the named mode touched.
func (r *Runtime) DeactivateMode(name string) error {
	mode := r.findMode(name)
	if mode == nil {
		return coalogerror.Newf("no mode named %s", name).
			WithCode(coalogerror.CodeUnknown).
			WithOperation("coalog.DeactivateMode").
			WithArgs(name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resource := range mode.Resources {
		res := r.model.Resource(resource)
		logger, ok := r.loggers[resource]
		if res == nil || !ok {
			continue
		}
		format := r.model.Format(res.Format)
		logger.SetTriggers(effectiveTriggers(format.Triggers, res.Level))
	}
	return nil
}

func (r *Runtime) findMode(name string) *config.Mode {
	for _, mode := range r.model.Modes {
		if mode.Name == name {
			return mode
		}
	}
	return nil
}

// Close drains and closes every logger, then closes the underlying
// files. Close is idempotent.
func (r *Runtime) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	loggers := r.loggers
	files := r.files
	r.mu.Unlock()

	for _, logger := range loggers {
		logger.Close()
	}
	var firstErr error
	for _, file := range files {
		if err := file.Close(); err != nil && firstErr == nil {
			firstErr = coalogerror.Wrap(err, "closing log file").
				WithCode(coalogerror.CodeResourceClosed).
				WithOperation("coalog.Close")
		}
	}
	return firstErr
}
