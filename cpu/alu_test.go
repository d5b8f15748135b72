package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	const h = uint32(0x0000_00f0)
	const b = uint32(0x0000_003c)

	table := [](struct {
		op     AluOp
		output uint32
	}){
		{ALU_OP_AND, 0x30},
		{ALU_OP_ONE, 1},
		{ALU_OP_MINUS_ONE, 0xffffffff},
		{ALU_OP_B, b},
		{ALU_OP_H, h},
		{ALU_OP_NOT_H, 0xffffff0f},
		{ALU_OP_OR, 0xfc},
		{ALU_OP_NOT_B, 0xffffffc3},
		{ALU_OP_B_INC, 0x3d},
		{ALU_OP_B_DEC, 0x3b},
		{ALU_OP_H_INC, 0xf1},
		{ALU_OP_H_NEG, 0xffffff10},
		{ALU_OP_ADD, 0x12c},
		{ALU_OP_ADD_INC, 0x12d},
		{ALU_OP_SUB, 0xffffff4c},
	}

	for _, entry := range table {
		output, ok := Alu(entry.op, h, b)
		assert.True(ok, entry.op.String())
		assert.Equal(entry.output, output, entry.op.String())
		assert.True(entry.op.Valid())
	}

	defined := 0
	for op := range AluOp(MICRO_ALU_MASK + 1) {
		if op.Valid() {
			defined++
			continue
		}
		output, ok := Alu(op, h, b)
		assert.False(ok, op.String())
		assert.Zero(output, op.String())
	}
	assert.Equal(len(table), defined)
}

func TestAlu_Wrap(t *testing.T) {
	assert := assert.New(t)

	output, _ := Alu(ALU_OP_B_INC, 0, 0xffffffff)
	assert.Zero(output)

	output, _ = Alu(ALU_OP_B_DEC, 0, 0)
	assert.Equal(uint32(0xffffffff), output)

	output, _ = Alu(ALU_OP_H_NEG, 0x80000000, 0)
	assert.Equal(uint32(0x80000000), output)
}

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	n, z := Flags(0)
	assert.False(n)
	assert.True(z)

	for _, value := range []uint32{1, 0x7fffffff, 0x80000000, 0xffffffff} {
		n, z = Flags(value)
		assert.True(n, value)
		assert.False(z, value)
	}
}

func TestShift_Apply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		shift  Shift
		input  uint32
		output uint32
		ok     bool
	}){
		{SHIFT_NONE, 0x12345678, 0x12345678, true},
		{SHIFT_SLL8, 0x12345678, 0x34567800, true},
		{SHIFT_SLL8, 0xff000001, 0x00000100, true},
		{SHIFT_SRL1, 0x80000002, 0x40000001, true},
		{SHIFT_SRL1, 0xffffffff, 0x7fffffff, true},
		{Shift(3), 0x12345678, 0x12345678, false},
	}

	for _, entry := range table {
		output, ok := entry.shift.Apply(entry.input)
		assert.Equal(entry.output, output, entry.shift.String())
		assert.Equal(entry.ok, ok, entry.shift.String())
	}
}

func TestResolveNext(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		next uint16
		jump Jump
		n, z bool
		mbr  uint8
		addr uint16
	}){
		{"none", 5, 0, true, false, 0xff, 5},
		{"n", 5, JUMP_N, true, false, 0, 261},
		{"n-clear", 5, JUMP_N, false, true, 0, 5},
		{"z", 5, JUMP_Z, false, true, 0, 261},
		{"z-clear", 5, JUMP_Z, true, false, 0, 5},
		{"mbr", 0, JUMP_MBR, false, true, 0x60, 0x60},
		{"mbr-or", 0x105, JUMP_MBR, false, true, 0x0a, 0x10f},
		{"all", 0, JUMP_N | JUMP_Z | JUMP_MBR, true, false, 0x42, 0x142},
	}

	for _, entry := range table {
		addr := ResolveNext(entry.next, entry.jump, entry.n, entry.z, entry.mbr)
		assert.Equal(entry.addr, addr, entry.name)
	}
}

func FuzzAlu(f *testing.F) {
	f.Add(uint8(ALU_OP_ADD), uint32(1), uint32(0xffffffff))
	f.Add(uint8(ALU_OP_SUB), uint32(5), uint32(5))
	f.Add(uint8(0), uint32(0), uint32(0))

	f.Fuzz(func(t *testing.T, code uint8, h uint32, b uint32) {
		assert := assert.New(t)

		op := AluOp(code & MICRO_ALU_MASK)
		output, ok := Alu(op, h, b)
		again, _ := Alu(op, h, b)
		assert.Equal(output, again)
		assert.Equal(op.Valid(), ok)
		if !ok {
			assert.Zero(output)
		}

		n, z := Flags(output)
		assert.Equal(output == 0, z)
		assert.Equal(output != 0, n)
		assert.NotEqual(n, z)
	})
}
