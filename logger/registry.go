package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

// Component loggers looked up by the library packages.
const (
	ComponentView          = "view"
	ComponentConfig        = "config"
	ComponentObservability = "observability"
)

// Components is the set RegisterDefaults always creates.
var Components = []string{ComponentView, ComponentConfig, ComponentObservability}

var components sync.Map // component name -> *Logger

// Register makes l the logger returned by Get(name).
func Register(name string, l *Logger) {
	components.Store(name, l)
}

// Get returns the logger registered for a component. Components that were
// never registered get the global logger tagged with their name.
func Get(name string) *Logger {
	if l, ok := components.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers one logger per entry in Components and per key
// of cfg.Stages. A stage level replaces cfg.Level for that component only.
// Call it after Init so the loggers share the global writer.
func RegisterDefaults(cfg *Config) {
	base := GetGlobalLogger()
	for _, name := range Components {
		Register(name, stageLogger(base, cfg, name))
	}
	for name := range cfg.Stages {
		Register(name, stageLogger(base, cfg, name))
	}
}

// StageLevel reports the level a component logs at under cfg.
func StageLevel(cfg *Config, name string) zerolog.Level {
	if level, ok := cfg.Stages[name]; ok {
		return parseLevel(level)
	}
	return parseLevel(cfg.Level)
}

func stageLogger(base *Logger, cfg *Config, name string) *Logger {
	l := base.WithComponent(name)
	l.logger = l.logger.Level(StageLevel(cfg, name))
	return l
}

// lowestLevel is the most verbose level any component needs, so the
// zerolog global filter never hides a stage override.
func lowestLevel(cfg *Config) zerolog.Level {
	lowest := parseLevel(cfg.Level)
	for _, level := range cfg.Stages {
		if l := parseLevel(level); l < lowest {
			lowest = l
		}
	}
	return lowest
}

func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
