package main

import (
	"fmt"
	"github.com/bokysan/b64par/internal/args"
	"github.com/bokysan/b64par/internal/commands/encode"
	"github.com/bokysan/b64par/internal/commands/version"
	b64Flags "github.com/bokysan/b64par/internal/flags"
	"github.com/bokysan/b64par/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// B64Par is the main executable
type B64Par struct {
	parser *flags.Parser
}

// NewB64Par will create a new instance of B64Par and initialize the parser
func NewB64Par() *B64Par {
	executablePath := path.Base(os.Args[0])

	bp := &B64Par{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bp.setupGeneral()
	bp.setupVersion()
	bp.setupEncode()

	return bp
}

// setupGeneral will configure general options
func (bp *B64Par) setupGeneral() {
	if _, err := bp.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (bp *B64Par) setupVersion() {
	_, err := bp.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bp *B64Par) setupEncode() {
	_, err := bp.parser.AddCommand(
		"encode",
		"Encode to base64",
		"Encode files (or stdin) to standard base64 text, one line per input",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts b64par and reads the configuration file
func main() {

	b64par := NewB64Par()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return &flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			}
		}

		args.General.ConfigurationFilePath = file
		return b64Flags.NewYamlParser(b64par.parser).ParseFile(file)
	}

	_, err := b64par.parser.Parse()
	util.MustErrorNilOrExit(err)

}
