package cpu

import (
	"fmt"
	"iter"
)

// State is the register file, flags and microsequencer of the datapath.
type State struct {
	Mar uint32 // Memory address (word).
	Mdr uint32 // Memory data.
	Pc  uint32 // Program counter (byte).
	Mbr uint8  // Memory byte buffer.
	Sp  uint32 // Stack pointer.
	Lv  uint32 // Local variable pointer.
	Cpp uint32 // Constant pool pointer.
	Tos uint32 // Top of stack.
	Opc uint32 // Old program counter, or scratch.
	H   uint32 // Holding register, the ALU A input.

	N bool // Nonzero ALU result.
	Z bool // Zero ALU result.

	Mpc uint16 // Next control store address.
	Mir Micro  // Microinstruction executed last.

	Ticks int // Cycles since reset.
}

var _register_names = []string{"MAR", "MDR", "PC", "MBR", "SP", "LV", "CPP", "TOS", "OPC", "H"}

// Registers iterates the datapath registers in display order.
func (st *State) Registers() iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		values := []uint32{st.Mar, st.Mdr, st.Pc, uint32(st.Mbr),
			st.Sp, st.Lv, st.Cpp, st.Tos, st.Opc, st.H}
		for n, name := range _register_names {
			if !yield(name, values[n]) {
				return
			}
		}
	}
}

// Flags iterates the N and Z flags as 0 or 1.
func (st *State) Flags() iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		if !yield("N", b2u(st.N)) {
			return
		}
		yield("Z", b2u(st.Z))
	}
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// String returns the state as a register listing.
func (st *State) String() (text string) {
	for name, val := range st.Registers() {
		text += fmt.Sprintf("% 5s: %04X_%04X\n", name, val>>16, val&0xffff)
	}
	for name, val := range st.Flags() {
		text += fmt.Sprintf("% 5s: %v\n", name, val)
	}
	text += fmt.Sprintf("% 5s: %03X\n", "MPC", st.Mpc)
	text += fmt.Sprintf("% 5s: %v\n", "MIR", st.Mir)

	return
}
