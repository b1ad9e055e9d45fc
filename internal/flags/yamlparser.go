package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. Files referenced from the YAML (anchors, aliases)
// are resolved relative to the directory of the file.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another, separated by triple dashes (`---`), and applies
// each of them to the parser.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key of the document to a command or group of the same name,
// e.g. "encode:" is applied to the options of the `encode` command. Unknown keys are an error.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := yaml.Unmarshal(conv, groupData(command)); err != nil {
			return errors.Wrapf(err, "Could not apply configuration for '%s'", name)
		}
	}
	return nil
}

// groupData returns the pointer to the options struct behind the command. The flags library keeps
// it in an unexported field, so it has to be read via reflection.
func groupData(command *flags.Command) interface{} {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	dataField := group.FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
