// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	B_INVALID = uint32(0xffffffff) // B bus value for an invalid source.
)

// Cpu is the simulation context for the microprogrammed datapath.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // Set to fault on invalid control signals.

	State // Registers, flags and microsequencer.

	Store  Store  // Control store.
	Memory Memory // Main memory.
}

// NewCpu creates a new CPU with a specifically sized main memory.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make(Memory, size),
	}

	return
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Restarts the microsequencer at address 0.
// - Zeros the cycle counter.
//
// The control store and main memory are left intact.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		logrus.Debug("cpu: reset")
	}

	cpu.State = State{}
}

// Step executes a single micro-cycle, and returns the state after it.
func (cpu *Cpu) Step() (state State, err error) {
	err = cpu.Tick()
	state = cpu.State
	return
}

// Tick executes a single micro-cycle.
func (cpu *Cpu) Tick() (err error) {
	mir, err := cpu.Store.Fetch(cpu.Mpc)
	if err != nil {
		return
	}

	cpu.Mir = mir

	return cpu.Execute(mir)
}

// Execute executes a single microinstruction.
// On error the register file, flags and MPC are left as they were
// before the cycle.
func (cpu *Cpu) Execute(mir Micro) (err error) {
	sig := mir.Decode()

	b, ok := cpu.bBus(sig.B)
	if !ok && cpu.Strict {
		return &ErrSignal{Mir: mir, Err: ErrSignalB}
	}

	output, ok := Alu(sig.Alu, cpu.H, b)
	if !ok && cpu.Strict {
		return &ErrSignal{Mir: mir, Err: ErrSignalAlu}
	}

	n, z := Flags(output)

	output, ok = sig.Shift.Apply(output)
	if !ok && cpu.Strict {
		return &ErrSignal{Mir: mir, Err: ErrSignalShift}
	}

	prior := cpu.State

	cpu.N = n
	cpu.Z = z

	cpu.cBus(sig.C, output)

	// A failed write stores nothing, so only the registers need restoring.
	err = cpu.memory(sig.Mem)
	if err != nil {
		cpu.State = prior
		return
	}

	next := ResolveNext(sig.Next, sig.Jump, cpu.N, cpu.Z, cpu.Mbr)

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"mpc":  fmt.Sprintf("%03x", cpu.Mpc),
			"mir":  mir.String(),
			"b":    fmt.Sprintf("%08x", b),
			"c":    fmt.Sprintf("%08x", output),
			"n":    cpu.N,
			"z":    cpu.Z,
			"next": fmt.Sprintf("%03x", next),
		}).Debug("cpu: cycle")
	}

	cpu.Mpc = next
	cpu.Ticks++

	return
}

// bBus returns the value driven onto the B bus.
func (cpu *Cpu) bBus(src BSource) (value uint32, ok bool) {
	ok = true

	switch src {
	case B_MDR:
		value = cpu.Mdr
	case B_PC:
		value = cpu.Pc
	case B_MBR:
		value = uint32(int32(int8(cpu.Mbr)))
	case B_MBRU:
		value = uint32(cpu.Mbr)
	case B_SP:
		value = cpu.Sp
	case B_LV:
		value = cpu.Lv
	case B_CPP:
		value = cpu.Cpp
	case B_TOS:
		value = cpu.Tos
	case B_OPC:
		value = cpu.Opc
	default:
		value = B_INVALID
		ok = false
	}

	return
}

// cBus copies the value into every register selected by dest.
func (cpu *Cpu) cBus(dest CDest, value uint32) {
	targets := []struct {
		bit CDest
		reg *uint32
	}{
		{C_MAR, &cpu.Mar},
		{C_MDR, &cpu.Mdr},
		{C_PC, &cpu.Pc},
		{C_SP, &cpu.Sp},
		{C_LV, &cpu.Lv},
		{C_CPP, &cpu.Cpp},
		{C_TOS, &cpu.Tos},
		{C_OPC, &cpu.Opc},
		{C_H, &cpu.H},
	}

	for _, target := range targets {
		if (dest & target.bit) != 0 {
			*target.reg = value
		}
	}
}

// memory performs the fetch, read and write operations, in that order.
func (cpu *Cpu) memory(op MemOp) (err error) {
	if (op & MEM_FETCH) != 0 {
		cpu.Mbr, err = cpu.Memory.Byte(cpu.Pc)
		if err != nil {
			return
		}
	}

	if (op & MEM_READ) != 0 {
		cpu.Mdr, err = cpu.Memory.Word(cpu.Mar)
		if err != nil {
			return
		}
	}

	if (op & MEM_WRITE) != 0 {
		err = cpu.Memory.SetWord(cpu.Mar, cpu.Mdr)
		if err != nil {
			return
		}
	}

	return
}
