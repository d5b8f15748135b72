// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strings"
)

// Microinstruction field layout, least significant bit first.
const (
	MICRO_B_SHIFT     = 0
	MICRO_B_MASK      = 0xf
	MICRO_MEM_SHIFT   = 4
	MICRO_MEM_MASK    = 0x7
	MICRO_C_SHIFT     = 7
	MICRO_C_MASK      = 0x1ff
	MICRO_ALU_SHIFT   = 16
	MICRO_ALU_MASK    = 0x3f
	MICRO_SHIFT_SHIFT = 22
	MICRO_SHIFT_MASK  = 0x3
	MICRO_JUMP_SHIFT  = 24
	MICRO_JUMP_MASK   = 0x7
	MICRO_NEXT_SHIFT  = 27
	MICRO_NEXT_MASK   = 0x1ff

	MICRO_BITS = 36 // Significant bits of a microinstruction.
)

// BSource selects the register driven onto the B bus.
type BSource int

//go:generate go tool stringer -linecomment -type=BSource
const (
	B_MDR  = BSource(0) // mdr
	B_PC   = BSource(1) // pc
	B_MBR  = BSource(2) // mbr
	B_MBRU = BSource(3) // mbru
	B_SP   = BSource(4) // sp
	B_LV   = BSource(5) // lv
	B_CPP  = BSource(6) // cpp
	B_TOS  = BSource(7) // tos
	B_OPC  = BSource(8) // opc
)

// MemOp is the memory operation bitmask.
type MemOp int

const (
	MEM_FETCH = MemOp(1 << 0) // MBR <- memory[PC]
	MEM_READ  = MemOp(1 << 1) // MDR <- word[MAR]
	MEM_WRITE = MemOp(1 << 2) // word[MAR] <- MDR
)

var _mem_names = []string{"fetch", "read", "write"}

func (mem MemOp) String() string {
	return maskString(_mem_names, int(mem))
}

// CDest is the C bus destination register bitmask.
type CDest int

const (
	C_MAR = CDest(1 << 0)
	C_MDR = CDest(1 << 1)
	C_PC  = CDest(1 << 2)
	C_SP  = CDest(1 << 3)
	C_LV  = CDest(1 << 4)
	C_CPP = CDest(1 << 5)
	C_TOS = CDest(1 << 6)
	C_OPC = CDest(1 << 7)
	C_H   = CDest(1 << 8)
)

var _c_names = []string{"mar", "mdr", "pc", "sp", "lv", "cpp", "tos", "opc", "h"}

func (c CDest) String() string {
	return maskString(_c_names, int(c))
}

// AluOp is the ALU function, as the six F0/F1/ENA/ENB/INVA/INC control lines.
type AluOp int

const (
	ALU_OP_AND       = AluOp(12) // H & B
	ALU_OP_ONE       = AluOp(17) // 1
	ALU_OP_MINUS_ONE = AluOp(18) // -1
	ALU_OP_B         = AluOp(20) // B
	ALU_OP_H         = AluOp(24) // H
	ALU_OP_NOT_H     = AluOp(26) // ~H
	ALU_OP_OR        = AluOp(28) // H | B
	ALU_OP_NOT_B     = AluOp(44) // ~B
	ALU_OP_B_INC     = AluOp(53) // B + 1
	ALU_OP_B_DEC     = AluOp(54) // B - 1
	ALU_OP_H_INC     = AluOp(57) // H + 1
	ALU_OP_H_NEG     = AluOp(59) // -H
	ALU_OP_ADD       = AluOp(60) // H + B
	ALU_OP_ADD_INC   = AluOp(61) // H + B + 1
	ALU_OP_SUB       = AluOp(63) // B - H
)

var _alu_names = map[AluOp]string{
	ALU_OP_AND:       "and",
	ALU_OP_ONE:       "one",
	ALU_OP_MINUS_ONE: "minus1",
	ALU_OP_B:         "b",
	ALU_OP_H:         "h",
	ALU_OP_NOT_H:     "noth",
	ALU_OP_OR:        "or",
	ALU_OP_NOT_B:     "notb",
	ALU_OP_B_INC:     "binc",
	ALU_OP_B_DEC:     "bdec",
	ALU_OP_H_INC:     "hinc",
	ALU_OP_H_NEG:     "hneg",
	ALU_OP_ADD:       "add",
	ALU_OP_ADD_INC:   "addinc",
	ALU_OP_SUB:       "sub",
}

// Valid returns true if the ALU operation is defined.
func (op AluOp) Valid() bool {
	_, ok := _alu_names[op]
	return ok
}

func (op AluOp) String() string {
	name, ok := _alu_names[op]
	if !ok {
		return fmt.Sprintf("AluOp(%d)", int(op))
	}
	return name
}

// Shift is the post-ALU shifter mode.
type Shift int

//go:generate go tool stringer -linecomment -type=Shift
const (
	SHIFT_NONE = Shift(0) // -
	SHIFT_SLL8 = Shift(1) // sll8
	SHIFT_SRL1 = Shift(2) // srl1
)

// Jump is the next-address condition bitmask.
type Jump int

const (
	JUMP_N   = Jump(1 << 0) // OR N into bit 8
	JUMP_Z   = Jump(1 << 1) // OR Z into bit 8
	JUMP_MBR = Jump(1 << 2) // OR MBR into bits 0-7
)

var _jump_names = []string{"n", "z", "mbr"}

func (jump Jump) String() string {
	return maskString(_jump_names, int(jump))
}

// maskString formats a bitmask as names joined by '|'.
func maskString(names []string, mask int) string {
	if mask == 0 {
		return "-"
	}

	var parts []string
	for n, name := range names {
		if (mask & (1 << n)) != 0 {
			parts = append(parts, name)
			mask &^= 1 << n
		}
	}
	if mask != 0 {
		parts = append(parts, fmt.Sprintf("%#x", mask))
	}

	return strings.Join(parts, "|")
}

// Signals are the control lines of a decoded microinstruction.
type Signals struct {
	B     BSource
	Mem   MemOp
	C     CDest
	Alu   AluOp
	Shift Shift
	Jump  Jump
	Next  uint16
}

// Micro is a packed microinstruction.
type Micro uint64

// MakeMicro packs the control signals into a microinstruction.
func MakeMicro(sig Signals) Micro {
	return Micro(uint64(sig.B&MICRO_B_MASK)<<MICRO_B_SHIFT |
		uint64(sig.Mem&MICRO_MEM_MASK)<<MICRO_MEM_SHIFT |
		uint64(sig.C&MICRO_C_MASK)<<MICRO_C_SHIFT |
		uint64(sig.Alu&MICRO_ALU_MASK)<<MICRO_ALU_SHIFT |
		uint64(sig.Shift&MICRO_SHIFT_MASK)<<MICRO_SHIFT_SHIFT |
		uint64(sig.Jump&MICRO_JUMP_MASK)<<MICRO_JUMP_SHIFT |
		uint64(sig.Next&MICRO_NEXT_MASK)<<MICRO_NEXT_SHIFT)
}

// Decode unpacks the microinstruction into its control signals.
func (mi Micro) Decode() (sig Signals) {
	word := uint64(mi)
	sig.B = BSource((word >> MICRO_B_SHIFT) & MICRO_B_MASK)
	sig.Mem = MemOp((word >> MICRO_MEM_SHIFT) & MICRO_MEM_MASK)
	sig.C = CDest((word >> MICRO_C_SHIFT) & MICRO_C_MASK)
	sig.Alu = AluOp((word >> MICRO_ALU_SHIFT) & MICRO_ALU_MASK)
	sig.Shift = Shift((word >> MICRO_SHIFT_SHIFT) & MICRO_SHIFT_MASK)
	sig.Jump = Jump((word >> MICRO_JUMP_SHIFT) & MICRO_JUMP_MASK)
	sig.Next = uint16((word >> MICRO_NEXT_SHIFT) & MICRO_NEXT_MASK)
	return
}

// Binary returns the significant bits of the microinstruction, grouped
// as next, jump, shift+alu, c, mem and b.
func (mi Micro) Binary() string {
	var sb strings.Builder
	for n := MICRO_BITS - 1; n >= 0; n-- {
		switch n {
		case MICRO_NEXT_SHIFT - 1, MICRO_JUMP_SHIFT - 1, MICRO_ALU_SHIFT - 1, MICRO_C_SHIFT - 1, MICRO_MEM_SHIFT - 1:
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte((uint64(mi)>>n)&1))
	}
	return sb.String()
}

// String returns the symbolic form of the microinstruction.
func (mi Micro) String() string {
	sig := mi.Decode()
	return fmt.Sprintf("%03x.%v.%v.%v.%v.%v.%v",
		sig.Next, sig.Jump, sig.Shift, sig.Alu, sig.C, sig.Mem, sig.B)
}
