package emulator

import (
	"errors"

	"github.com/ezrec/umic/translate"
)

var f = translate.From

var (
	ErrConditionResult = errors.New(f("no result"))
)

// ErrRuntime indicates the cycle and control store address of a runtime error.
type ErrRuntime struct {
	Tick int
	Mpc  uint16
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d mpc 0x%03x %v", err.Tick, err.Mpc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCondition is a halt condition that failed to compile or evaluate.
type ErrCondition struct {
	Expr string
	Err  error
}

func (err *ErrCondition) Error() string {
	return f("halt condition '%v' %v", err.Expr, err.Err)
}

func (err *ErrCondition) Unwrap() error {
	return err.Err
}
