package encode

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/bokysan/b64par/internal/logging"
	"github.com/bokysan/b64par/internal/streams"
	"github.com/bokysan/b64par/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdioName is the file name which stands for stdin (as input) or stdout (as output)
const StdioName = "-"

// Command encodes files (or stdin) to base-64 text, one line per input.
type Command struct {
	Parallel bool   `yaml:"parallel" short:"p" long:"parallel" env:"PARALLEL"                description:"Spread the encoding over multiple CPU cores"`
	Workers  int    `yaml:"workers"  short:"w" long:"workers"  env:"WORKERS"  default:"0"    description:"Maximum number of parallel workers. 0 uses all available cores."`
	Output   string `yaml:"output"   short:"o" long:"output"   env:"OUTPUT"   default:"-"    description:"Output file. If not set, defaults to stdout."`
	Wrap     int    `yaml:"wrap"               long:"wrap"     env:"WRAP"     default:"0"    description:"Break encoded lines after this many characters. 0 disables wrapping."`

	Args struct {
		Inputs []string `positional-arg-name:"FILE" description:"Files to encode. Use '-' or nothing for stdin."`
	} `positional-args:"yes"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Output: StdioName,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run(append(c.Args.Inputs, args...))
}

// Encoder returns the encoder configured by the command options
func (c *Command) Encoder() *enc.Base64Encoder {
	return &enc.Base64Encoder{
		Parallel: c.Parallel,
		Workers:  c.Workers,
	}
}

// Run encodes every input into the configured output. A failing input does not stop the
// others; all input errors are returned together. A failing output stops immediately.
func (c *Command) Run(inputs []string) error {
	if err := c.validate(); err != nil {
		return err
	}

	if len(inputs) == 0 {
		inputs = []string{StdioName}
	}

	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	encoder := c.Encoder()
	log.Debugf("Encoding %v input(s) with %v, workers=%v", len(inputs), encoder, encoder.WorkerCount())

	var errs error
	for _, input := range inputs {
		data, err := c.readInput(input)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		start := time.Now()
		encoded := encoder.Encode(data)
		log.WithFields(log.Fields{
			"input":    input,
			"bytes":    len(data),
			"encoded":  len(encoded),
			"parallel": encoder.Parallel,
			"elapsed":  time.Since(start),
		}).Debugf("Encoded %v", input)

		if err := WriteWrapped(out, encoded, c.Wrap); err != nil {
			return multierror.Append(errs, errors.Wrapf(err, "Could not write to %v", c.Output))
		}
	}

	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "Could not close %v", c.Output))
	}

	if errs == nil {
		log.Infof("Encoded %v input(s) into %v", len(inputs), c.Output)
	}
	return errs
}

func (c *Command) validate() error {
	if c.Workers < 0 {
		return &flags.Error{
			Type:    flags.ErrInvalidChoice,
			Message: fmt.Sprintf("invalid number of workers: %v", c.Workers),
		}
	}
	if c.Wrap < 0 {
		return &flags.Error{
			Type:    flags.ErrInvalidChoice,
			Message: fmt.Sprintf("invalid wrap width: %v", c.Wrap),
		}
	}
	return nil
}

func (c *Command) openOutput() (*streams.SafeWriter, error) {
	if c.Output == "" || c.Output == StdioName {
		return streams.NewSafeWriter(streams.NopWriteCloser(c.stdout)), nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create output file %v", c.Output)
	}
	return streams.NewSafeWriter(f), nil
}

func (c *Command) readInput(name string) ([]byte, error) {
	if name == StdioName {
		data, err := ioutil.ReadAll(c.stdin)
		if err != nil {
			return nil, errors.Wrap(err, "Could not read stdin")
		}
		return data, nil
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", name)
	}
	return data, nil
}

// WriteWrapped writes encoded followed by a newline. If width is positive, a newline is also
// inserted after every width characters.
func WriteWrapped(w io.Writer, encoded string, width int) error {
	if width <= 0 || len(encoded) <= width {
		_, err := io.WriteString(w, encoded+"\n")
		return errors.WithStack(err)
	}

	for len(encoded) > 0 {
		n := width
		if len(encoded) < n {
			n = len(encoded)
		}
		if _, err := io.WriteString(w, encoded[:n]+"\n"); err != nil {
			return errors.WithStack(err)
		}
		encoded = encoded[n:]
	}
	return nil
}
