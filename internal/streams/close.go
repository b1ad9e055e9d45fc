package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

// LogClose closes the closer, unless it reports itself as already closed, and logs any error.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// NopWriteCloser returns a WriteCloser whose Close does nothing. Used for stdout, which must stay open.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}
