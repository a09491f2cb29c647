package bitio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/dargueta/huff/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBitsMSBFirst(t *testing.T) {
	buffer := bytes.Buffer{}
	writer := bitio.NewWriter(&buffer)

	require.NoError(t, writer.WriteBits(3, 0b101))
	require.NoError(t, writer.WriteBits(5, 0b00111))
	require.NoError(t, writer.Close())

	assert.Equal(t, []byte{0b10100111}, buffer.Bytes())
	assert.EqualValues(t, 8, writer.BitsWritten())
	assert.EqualValues(t, 1, writer.BytesWritten())
}

func TestWriteBitsIgnoresHighBits(t *testing.T) {
	buffer := bytes.Buffer{}
	writer := bitio.NewWriter(&buffer)

	require.NoError(t, writer.WriteBits(8, 0xffffff0f))
	require.NoError(t, writer.Close())

	assert.Equal(t, []byte{0x0f}, buffer.Bytes())
}

func TestFlushPadsWithZeroBits(t *testing.T) {
	buffer := bytes.Buffer{}
	writer := bitio.NewWriter(&buffer)

	require.NoError(t, writer.WriteBits(4, 0xf))
	require.NoError(t, writer.Close())

	assert.Equal(t, []byte{0xf0}, buffer.Bytes())
	assert.EqualValues(
		t, 4, writer.BitsWritten(), "padding must not count as written bits")
	assert.EqualValues(t, 1, writer.BytesWritten())
}

func TestFlushOnByteBoundaryWritesNothing(t *testing.T) {
	buffer := bytes.Buffer{}
	writer := bitio.NewWriter(&buffer)

	require.NoError(t, writer.WriteBits(16, 0xbeef))
	require.NoError(t, writer.Close())

	assert.Equal(t, []byte{0xbe, 0xef}, buffer.Bytes())
	assert.EqualValues(t, 2, writer.BytesWritten())
}

func TestReadBitsMSBFirst(t *testing.T) {
	reader := bitio.NewReader(bytes.NewReader([]byte{0b10100111, 0xff}))

	value, err := reader.ReadBits(3)
	require.NoError(t, err)
	assert.EqualValues(t, 0b101, value)

	value, err = reader.ReadBits(13)
	require.NoError(t, err)
	assert.EqualValues(t, 0b0011111111111, value)
	assert.EqualValues(t, 16, reader.BitsRead())

	_, err = reader.ReadBits(1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadBitsEndOfDataMidValue(t *testing.T) {
	// Asking for more bits than the stream holds is end-of-data, with no
	// partial value to recover.
	reader := bitio.NewReader(bytes.NewReader([]byte{0xab}))

	_, err := reader.ReadBits(9)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadBitsBadCount(t *testing.T) {
	reader := bitio.NewReader(bytes.NewReader([]byte{0xab}))

	_, err := reader.ReadBits(0)
	assert.ErrorIs(t, err, bitio.ErrBadBitCount)
	_, err = reader.ReadBits(33)
	assert.ErrorIs(t, err, bitio.ErrBadBitCount)
}

func TestWriteBitsBadCount(t *testing.T) {
	writer := bitio.NewWriter(&bytes.Buffer{})

	assert.ErrorIs(t, writer.WriteBits(0, 0), bitio.ErrBadBitCount)
	assert.ErrorIs(t, writer.WriteBits(33, 0), bitio.ErrBadBitCount)
}

func TestReset(t *testing.T) {
	reader := bitio.NewReader(bytes.NewReader([]byte{0xa5, 0x3c}))

	_, err := reader.ReadBits(11)
	require.NoError(t, err)

	require.NoError(t, reader.Reset())
	assert.EqualValues(t, 0, reader.BitsRead())

	value, err := reader.ReadBits(16)
	require.NoError(t, err)
	assert.EqualValues(t, 0xa53c, value)
}

func TestResetNotSeekable(t *testing.T) {
	// bytes.Buffer doesn't implement io.Seeker.
	reader := bitio.NewReader(bytes.NewBufferString("xy"))

	_, err := reader.ReadBits(8)
	require.NoError(t, err)
	assert.ErrorIs(t, reader.Reset(), bitio.ErrNotSeekable)
}

func TestWriteReadRoundTrip(t *testing.T) {
	buffer := bytes.Buffer{}
	writer := bitio.NewWriter(&buffer)

	require.NoError(t, writer.WriteBits(32, 0xface8201))
	require.NoError(t, writer.WriteBits(1, 1))
	require.NoError(t, writer.WriteBits(9, 256))
	require.NoError(t, writer.Close())

	reader := bitio.NewReader(bytes.NewReader(buffer.Bytes()))

	value, err := reader.ReadBits(32)
	require.NoError(t, err)
	assert.EqualValues(t, 0xface8201, value)

	value, err = reader.ReadBits(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, value)

	value, err = reader.ReadBits(9)
	require.NoError(t, err)
	assert.EqualValues(t, 256, value)
}
