package huff

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type returned for anything wrong with a compressed
// stream itself, as opposed to I/O failures from the underlying streams.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

// ErrMalformedStream means the input isn't a valid compressed artifact: it
// doesn't begin with the expected magic number, or the coded data ends before
// the end-of-stream code is reached.
var ErrMalformedStream = rootError.WithMessage("Not a valid compressed stream")

// ErrMalformedHeader means the tree header was truncated or corrupted; the
// bit source ran out in the middle of the preorder parse.
var ErrMalformedHeader = rootError.WithMessage("Compressed stream has a malformed tree header")

// ErrNotRewindable means the input stream couldn't be rewound for the second
// compression pass.
var ErrNotRewindable = rootError.WithMessage("Input stream cannot be rewound")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
