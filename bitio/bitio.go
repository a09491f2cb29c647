// Package bitio provides bit-granular reading and writing on top of ordinary
// byte-oriented streams.
//
// Bits are always in MSB-first order: the first bit written to a stream is
// the most significant bit of the first byte, and reads consume bits in the
// same order. A writer that stops on a non-byte boundary pads the final byte
// with zero bits when flushed.
package bitio

import (
	"errors"
	"io"
)

// ErrNotSeekable is returned by [Reader.Reset] when the underlying stream
// doesn't implement io.Seeker.
var ErrNotSeekable = errors.New("bitio: underlying stream does not support seeking")

// ErrBadBitCount is returned when a caller asks for fewer than 1 or more
// than 32 bits at once.
var ErrBadBitCount = errors.New("bitio: bit count must be between 1 and 32")

// Reader reads an exact number of bits at a time from a byte stream.
type Reader struct {
	source   io.Reader
	current  byte
	nbits    int
	bitsRead int64
}

// NewReader wraps a byte stream in a bit-level reader.
func NewReader(source io.Reader) *Reader {
	return &Reader{source: source}
}

// ReadBits reads exactly `count` bits (1 to 32) and returns them as the low
// bits of the result, first bit read in the most significant position. If the
// stream runs out before `count` bits have been read, it returns io.EOF; the
// reader is then exhausted and there is no partial value to recover.
func (rd *Reader) ReadBits(count int) (uint32, error) {
	if count < 1 || count > 32 {
		return 0, ErrBadBitCount
	}

	var value uint32
	for i := 0; i < count; i++ {
		if rd.nbits == 0 {
			var buffer [1]byte
			_, err := io.ReadFull(rd.source, buffer[:])
			if err != nil {
				return 0, err
			}
			rd.current = buffer[0]
			rd.nbits = 8
		}
		rd.nbits--
		value = (value << 1) | uint32((rd.current>>uint(rd.nbits))&1)
		rd.bitsRead++
	}
	return value, nil
}

// Reset rewinds the reader to the beginning of the stream and discards any
// partially consumed byte. The underlying stream must be seekable; if it
// isn't, Reset fails with [ErrNotSeekable].
func (rd *Reader) Reset() error {
	seeker, ok := rd.source.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return err
	}
	rd.current = 0
	rd.nbits = 0
	rd.bitsRead = 0
	return nil
}

// BitsRead returns the number of bits consumed since construction or the
// last Reset.
func (rd *Reader) BitsRead() int64 {
	return rd.bitsRead
}

// Writer writes an exact number of bits at a time to a byte stream. Complete
// bytes are written out immediately; callers must Close (or Flush) to emit a
// trailing partial byte.
type Writer struct {
	dest         io.Writer
	current      byte
	nbits        int
	bitsWritten  int64
	bytesWritten int64
}

// NewWriter wraps a byte stream in a bit-level writer.
func NewWriter(dest io.Writer) *Writer {
	return &Writer{dest: dest}
}

// WriteBits writes the low `count` bits (1 to 32) of `value`, most
// significant of those bits first.
func (wr *Writer) WriteBits(count int, value uint32) error {
	if count < 1 || count > 32 {
		return ErrBadBitCount
	}

	for i := count - 1; i >= 0; i-- {
		wr.current = (wr.current << 1) | byte((value>>uint(i))&1)
		wr.nbits++
		wr.bitsWritten++
		if wr.nbits == 8 {
			if err := wr.flushByte(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush pads any buffered partial byte with zero bits and writes it out. A
// writer sitting on a byte boundary flushes nothing.
func (wr *Writer) Flush() error {
	if wr.nbits == 0 {
		return nil
	}
	wr.current <<= uint(8 - wr.nbits)
	return wr.flushByte()
}

// Close flushes the writer. The underlying stream is left open; closing it
// is the caller's responsibility since the caller opened it.
func (wr *Writer) Close() error {
	return wr.Flush()
}

// BitsWritten returns the number of bits written so far, not counting any
// zero padding added by Flush.
func (wr *Writer) BitsWritten() int64 {
	return wr.bitsWritten
}

// BytesWritten returns the number of bytes emitted to the underlying stream,
// including the padded final byte once the writer has been flushed.
func (wr *Writer) BytesWritten() int64 {
	return wr.bytesWritten
}

func (wr *Writer) flushByte() error {
	_, err := wr.dest.Write([]byte{wr.current})
	wr.current = 0
	wr.nbits = 0
	if err != nil {
		return err
	}
	wr.bytesWritten++
	return nil
}
