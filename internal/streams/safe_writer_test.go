package streams

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"io"
	"io/ioutil"
	"os"
	"testing"
)

func Test_SafeWriter_MultipleClose(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewSafeWriter(f)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	err = obj.Close()
	require.NoErrorf(t, err, "Could not close file %s: %v", f.Name(), err)
	require.True(t, obj.Closed(), "Stream is not closed!")

	err = obj.Close()
	require.NoErrorf(t, err, "Error when retrying close on file %s: %v", f.Name(), err)
}

func Test_SafeWriter_WriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	obj := NewSafeWriter(NopWriteCloser(&buf))

	_, err := obj.Write([]byte("TWFu"))
	require.NoError(t, err)
	require.NoError(t, obj.Close())

	_, err = obj.Write([]byte("TQ=="))
	require.Equal(t, io.ErrClosedPipe, err)
	require.Equal(t, "TWFu", buf.String())
}

func Test_SafeWriter_NoDoubleWrap(t *testing.T) {
	var buf bytes.Buffer
	obj := NewSafeWriter(NopWriteCloser(&buf))
	require.Same(t, obj, NewSafeWriter(obj))
}
