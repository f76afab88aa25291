package io

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when neither the OpenCV decoder nor the
// Go image decoders recognise the data, or when a save path names a format
// the editor cannot write.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a bitmap that could not be encoded for the requested path.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure while writing an encoded image.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
