package cpu

import (
	"errors"

	"github.com/ezrec/umic/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStoreRange  = errors.New(f("control store address out of range"))
	ErrMemoryRange = errors.New(f("memory address out of range"))

	// Control signal errors
	ErrSignalB     = errors.New(f("b bus select"))
	ErrSignalAlu   = errors.New(f("alu operation"))
	ErrSignalShift = errors.New(f("shift mode"))
)

// ErrAddress is an out-of-range control store or memory access.
type ErrAddress struct {
	Err    error  // ErrStoreRange or ErrMemoryRange
	Offset uint64 // Offending offset.
	Size   int    // Capacity of the addressed store.
}

func (err *ErrAddress) Error() string {
	return f("%v: offset 0x%x, size 0x%x", err.Err, err.Offset, err.Size)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

// ErrSignal is an invalid control signal in a microinstruction.
type ErrSignal struct {
	Mir Micro
	Err error // ErrSignalB, ErrSignalAlu or ErrSignalShift
}

func (err *ErrSignal) Error() string {
	return f("invalid control signal %v in %v", err.Err, err.Mir)
}

func (err *ErrSignal) Unwrap() error {
	return err.Err
}

func (err *ErrSignal) Is(target error) (ok bool) {
	_, ok = target.(*ErrSignal)
	return
}
