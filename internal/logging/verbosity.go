package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no `-v` flag is given. Each `-v` raises the level by one.
const DefaultLevel = log.WarnLevel

// SetVerbosity defines the verbosity level of the application
func SetVerbosity(v []bool) {
	log.SetLevel(VerbosityLevel(len(v)))
}

// VerbosityLevel maps the number of `-v` flags to a logrus level, capped at TraceLevel.
func VerbosityLevel(count int) log.Level {
	verbosity := DefaultLevel + log.Level(count)
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	return verbosity
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
