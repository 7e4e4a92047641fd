package qoi

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidMagic         = errors.New("not a valid QOI image: bad magic")
	ErrUnknownChannelFormat = errors.New("unknown channel format")
	ErrUnknownColorspace    = errors.New("unknown colorspace")

	// ErrTruncated matches an *IOError caused by a short read.
	ErrTruncated = errors.New("truncated QOI header")
)

// IOError reports a failed seek or read against the byte source. Short reads
// are IOErrors too: the header has a fixed size, so a partial read means the
// file is truncated.
type IOError struct {
	Field  string
	Offset int64
	Size   int
	Err    error
}

func (e *IOError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("qoi: read %d bytes at offset %d: %v", e.Size, e.Offset, e.Err)
	}
	return fmt.Sprintf("qoi: read %s (%d bytes at offset %d): %v", e.Field, e.Size, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	if target != ErrTruncated {
		return false
	}
	return errors.Is(e.Err, io.EOF) || errors.Is(e.Err, io.ErrUnexpectedEOF)
}

// UnknownChannelFormatError carries the offending channels byte.
type UnknownChannelFormatError struct {
	Value uint8
}

func (e *UnknownChannelFormatError) Error() string {
	return fmt.Sprintf("unknown channel format with %d components", e.Value)
}

func (e *UnknownChannelFormatError) Unwrap() error {
	return ErrUnknownChannelFormat
}

// UnknownColorspaceError carries the offending colorspace byte.
type UnknownColorspaceError struct {
	Value uint8
}

func (e *UnknownColorspaceError) Error() string {
	return fmt.Sprintf("unknown colorspace format %d", e.Value)
}

func (e *UnknownColorspaceError) Unwrap() error {
	return ErrUnknownColorspace
}
