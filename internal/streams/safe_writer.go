package streams

import (
	"io"
)

// SafeWriter implements the io.WriteCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error.
type SafeWriter struct {
	io.WriteCloser
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if scs, ok := wrapped.(*SafeWriter); ok {
		return scs
	}

	return &SafeWriter{
		WriteCloser: wrapped,
	}
}

// Write fails with io.ErrClosedPipe once the writer has been closed
func (ns *SafeWriter) Write(p []byte) (int, error) {
	if ns.closed {
		return 0, io.ErrClosedPipe
	}
	return ns.WriteCloser.Write(p)
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeWriter) Close() error {
	if ns.closed {
		return nil
	}
	err := LogClose(ns.WriteCloser)
	ns.closed = true

	return err
}

// Closed will return `true` if SafeWriter.Close has been called at least once
func (ns *SafeWriter) Closed() bool {
	return ns.closed
}

// Unwrap returns the embedded io.WriteCloser
func (ns *SafeWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloser
}
