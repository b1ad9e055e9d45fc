package logging

import (
	"github.com/bokysan/b64par/internal/args"
	"github.com/bokysan/b64par/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options. Logs always go to
// stderr or to the log file, as stdout carries the encoded output.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.Wrapf(err, "Could not open log file %v", *args.General.LogFile))
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// NewFormatter creates a JSON formatter if format is "json" and a text formatter otherwise.
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}
