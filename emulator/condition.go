package emulator

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/umic/cpu"
)

// Condition is a compiled Starlark boolean expression over the registers,
// flags, MPC and TICKS, such as "MPC == 0xff and TOS == 5".
type Condition struct {
	Expr string

	program *starlark.Program
}

// NewCondition compiles a halt condition.
func NewCondition(expr string) (cond *Condition, err error) {
	names := map[string]bool{}
	for name := range environ(&cpu.State{}) {
		names[name] = true
	}

	opts := syntax.FileOptions{}
	src := "rc = bool(" + expr + ")\n"
	_, program, err := starlark.SourceProgramOptions(&opts, "halt", src, func(name string) bool {
		return names[name]
	})
	if err != nil {
		err = &ErrCondition{Expr: expr, Err: err}
		return
	}

	cond = &Condition{
		Expr:    expr,
		program: program,
	}

	return
}

// Eval evaluates the condition against an environment.
func (cond *Condition) Eval(env iter.Seq2[string, uint32]) (ok bool, err error) {
	pred := starlark.StringDict{}
	for name, value := range env {
		pred[name] = starlark.MakeUint(uint(value))
	}

	thread := &starlark.Thread{Name: "halt"}
	globals, err := cond.program.Init(thread, pred)
	if err != nil {
		err = &ErrCondition{Expr: cond.Expr, Err: err}
		return
	}

	rc, found := globals["rc"]
	if !found {
		err = &ErrCondition{Expr: cond.Expr, Err: ErrConditionResult}
		return
	}

	ok = bool(rc.Truth())
	return
}
