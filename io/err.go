package io

import (
	"errors"

	"github.com/ezrec/umic/translate"
)

var f = translate.From

var (
	// Control store image errors
	ErrRomShort = errors.New(f("failed to read control store image"))

	// Program image errors
	ErrImageHeader = errors.New(f("failed to read program length"))
	ErrImageInit   = errors.New(f("failed to read program initialization bytes"))
	ErrImageText   = errors.New(f("failed to read complete program"))
	ErrImageFit    = errors.New(f("program does not fit in memory"))
)

// ErrImageLength is an out-of-range program length.
type ErrImageLength struct {
	Length   uint32
	Capacity uint
}

func (err *ErrImageLength) Error() string {
	return f("invalid program length %d (must be %d to %d)", err.Length, IMAGE_INIT_SIZE, err.Capacity)
}
