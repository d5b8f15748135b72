// Package io provides the external image formats of the μMIC emulator:
// the control store ROM and the program image.
//
// All multi-byte values are little-endian.
package io

import (
	"io"
)

// Unmarshaler is an image that can be read from a byte stream.
type Unmarshaler interface {
	Unmarshal(r io.Reader) error
}

// Marshaler is an image that can be written to a byte stream.
type Marshaler interface {
	Marshal(w io.Writer) error
}
