// File: model.go
// Title: Configuration Model
// Description: The typed runtime model built from a parsed configuration
//              document, together with its defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package config

import (
	"time"

	"github.com/msto63/coalog/core/log"
)

// Model is the complete runtime configuration. Every field is
// populated; missing sections fall back to defaults.
type Model struct {
	System    System
	Formats   map[string]*Format
	Policies  map[string]*Policy
	Resources []*Resource
	Modes     []*Mode
}

// System holds the application identity and the base paths for output.
type System struct {
	AppID        string
	AppName      string
	Version      string
	OutputPath   string
	FallbackPath string

	// ChangeTime is the modification time of the loaded file. Zero when
	// the model was built from a string or from defaults.
	ChangeTime time.Time
}

// Format describes how records are rendered: a pattern with
// $-variables, a timestamp layout, and the trigger set selecting which
// levels use this format.
type Format struct {
	Name       string
	Pattern    string
	TimeFormat string
	Triggers   log.TriggerSet
}

// RolloverUnit names the condition that closes a log file and starts
// the next one.
type RolloverUnit string

const (
	RolloverNone  RolloverUnit = "none"
	RolloverDay   RolloverUnit = "day"
	RolloverHour  RolloverUnit = "hour"
	RolloverSize  RolloverUnit = "size"
	RolloverMonth RolloverUnit = "month"
)

// knownRolloverUnits lists every accepted unit.
var knownRolloverUnits = map[RolloverUnit]bool{
	RolloverNone:  true,
	RolloverDay:   true,
	RolloverHour:  true,
	RolloverSize:  true,
	RolloverMonth: true,
}

// Rollover describes when a file resource rotates and how many closed
// files are kept. The model carries the policy; executing the rotation
// is outside this package.
type Rollover struct {
	Unit      RolloverUnit
	Every     int
	Keep      int
	MaxSizeKB int64
}

// Policy bundles buffering and rollover settings referenced by name
// from resources.
type Policy struct {
	Name       string
	BufferSize int
	Rollover   Rollover
}

// ResourceType names the kind of sink a resource writes to.
type ResourceType string

const (
	ResourceConsole ResourceType = "console"
	ResourceFile    ResourceType = "file"
	ResourceMemory  ResourceType = "memory"
)

// Resource is one output sink: where records go, which format renders
// them, which policy buffers and rotates them, and the minimum level.
type Resource struct {
	Name   string
	Type   ResourceType
	Target string
	Format string
	Policy string
	Level  log.Level
}

// Mode is a trigger-activated rule: when one of its trigger levels
// fires, the named resources are activated.
type Mode struct {
	Name      string
	Triggers  log.TriggerSet
	Resources []string
}

// DefaultFormatName is the name of the format every model carries.
const DefaultFormatName = "default"

// DefaultPolicyName is the name of the policy every model carries.
const DefaultPolicyName = "default"

// Defaults returns a model that logs everything to the console through
// the default pattern.
func Defaults() *Model {
	return &Model{
		System: System{
			AppName:      "coalog",
			OutputPath:   ".",
			FallbackPath: ".",
		},
		Formats: map[string]*Format{
			DefaultFormatName: {
				Name:       DefaultFormatName,
				Pattern:    log.DefaultPattern,
				TimeFormat: log.DefaultTimeFormat,
				Triggers:   log.AllTriggers(),
			},
		},
		Policies: map[string]*Policy{
			DefaultPolicyName: {
				Name:       DefaultPolicyName,
				BufferSize: 128,
				Rollover:   Rollover{Unit: RolloverNone},
			},
		},
		Resources: []*Resource{
			{
				Name:   "console",
				Type:   ResourceConsole,
				Format: DefaultFormatName,
				Policy: DefaultPolicyName,
				Level:  log.LevelInfo,
			},
		},
	}
}

// Format returns the named format, falling back to the default format.
func (m *Model) Format(name string) *Format {
	if f, ok := m.Formats[name]; ok {
		return f
	}
	return m.Formats[DefaultFormatName]
}

// Policy returns the named policy, falling back to the default policy.
func (m *Model) Policy(name string) *Policy {
	if p, ok := m.Policies[name]; ok {
		return p
	}
	return m.Policies[DefaultPolicyName]
}

// Resource returns the named resource, or nil.
func (m *Model) Resource(name string) *Resource {
	for _, r := range m.Resources {
		if r.Name == name {
			return r
		}
	}
	return nil
}
