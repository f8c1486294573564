// Package logging provides pre-configured logrus loggers for statusline
// components. The status command's stdout is the prompt itself, so loggers
// default to a file sink (or silence): nothing may leak onto stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/paths"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	return NewLoggerWithConfig(component, Config{})
}

// NewLoggerWithConfig creates a logger for a component using the logging
// section of a loaded statusline.yml. Environment variables win over the
// config file.
func NewLoggerWithConfig(component string, logCfg Config) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	// Configure Level
	levelStr := "info" // Default level
	if os.Getenv("STATUSLINE_LOG_LEVEL") != "" {
		levelStr = os.Getenv("STATUSLINE_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("STATUSLINE_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	// Configure Output Sinks
	var writers []io.Writer

	if logCfg.File.Enabled {
		logPath := logCfg.File.Path
		if logPath == "" {
			if state := paths.StateDir(); state != "" {
				logPath = filepath.Join(state, "statusline.log")
			}
		}
		if logPath != "" {
			if expanded, err := paths.Expand(logPath); err == nil {
				logPath = expanded
			}
			dir := filepath.Dir(logPath)
			if err := os.MkdirAll(dir, 0755); err == nil {
				file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
				if err == nil {
					writers = append(writers, file)
				}
			}
		}
	}

	// Stderr gets structured logs only when debugging, or when stderr is not
	// a terminal (piped, CI). An interactive prompt stays clean.
	isDebug := os.Getenv("STATUSLINE_DEBUG") == "1" || logger.GetLevel() == logrus.DebugLevel
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if isDebug || !isInteractive {
		writers = append(writers, os.Stderr)
	}

	// Configure the output based on the number of writers
	if len(writers) == 0 {
		logger.SetOutput(io.Discard)
	} else if len(writers) == 1 {
		logger.SetOutput(writers[0])
	} else {
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Reset clears the per-component logger cache.
// This is primarily used for testing.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}

