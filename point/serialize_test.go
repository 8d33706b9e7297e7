package point

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New[int16](1, -2)))
	require.Equal(t, []byte{0x00, 0x01, 0xff, 0xfe}, buf.Bytes())
}

func TestRead(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		var buf bytes.Buffer
		want := New[int32](-70000, 12)
		require.NoError(t, Write(&buf, want))
		require.Equal(t, 8, buf.Len())
		got, err := Read[int32](&buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
	t.Run("float64", func(t *testing.T) {
		var buf bytes.Buffer
		want := New(3.25, -0.5)
		require.NoError(t, Write(&buf, want))
		got, err := Read[float64](&buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
	t.Run("short", func(t *testing.T) {
		_, err := Read[uint16](bytes.NewReader([]byte{0x00, 0x01, 0x02}))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Read[uint8](bytes.NewReader(nil))
		require.ErrorIs(t, err, io.EOF)
	})
}
