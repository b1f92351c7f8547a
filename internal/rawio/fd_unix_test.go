//go:build unix

package rawio

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFD_WriteToPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer func() { _ = r.Close() }()

	fd := FD(w.Fd())

	n, err := fd.Write([]byte("/*\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = fd.Write(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, w.Close())

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "/*\n", string(got))
}

func TestFD_WriteReadOnlyDescriptor(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	_, err = FD(r.Fd()).Write([]byte("x"))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestWriter_OverFD(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer func() { _ = r.Close() }()

	out := NewWriter(FD(w.Fd()))
	out.Print("/*\n")
	out.PrintQuoted("/*\n")
	require.NoError(t, out.Err())
	require.NoError(t, w.Close())

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "/*\n\"/*\\n\",\n", string(got))
}
