package util

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99
)

// ExitCode returns the process exit code for the given error. `nil` and help requests map to 0,
// a `flags.Error` (also when wrapped) maps to its type and anything else to ErrGeneric.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit with the code from ExitCode.
// Help requests exit with 0 and are not logged.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
