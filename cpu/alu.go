package cpu

// Alu performs the ALU function on the H register and the B bus.
// Undefined operations yield zero, and ok is false.
func Alu(op AluOp, h, b uint32) (output uint32, ok bool) {
	ok = true

	switch op {
	case ALU_OP_AND:
		output = h & b
	case ALU_OP_ONE:
		output = 1
	case ALU_OP_MINUS_ONE:
		output = 0xffffffff
	case ALU_OP_B:
		output = b
	case ALU_OP_H:
		output = h
	case ALU_OP_NOT_H:
		output = ^h
	case ALU_OP_OR:
		output = h | b
	case ALU_OP_NOT_B:
		output = ^b
	case ALU_OP_B_INC:
		output = b + 1
	case ALU_OP_B_DEC:
		output = b - 1
	case ALU_OP_H_INC:
		output = h + 1
	case ALU_OP_H_NEG:
		output = -h
	case ALU_OP_ADD:
		output = h + b
	case ALU_OP_ADD_INC:
		output = h + b + 1
	case ALU_OP_SUB:
		output = b - h
	default:
		ok = false
	}

	return
}

// Flags classifies an ALU result. N is set for any nonzero result,
// not only negative ones.
func Flags(output uint32) (n, z bool) {
	if output == 0 {
		return false, true
	}
	return true, false
}

// Apply the shifter to the ALU output.
// Undefined modes pass the value through, and ok is false.
func (shift Shift) Apply(value uint32) (output uint32, ok bool) {
	switch shift {
	case SHIFT_NONE:
		return value, true
	case SHIFT_SLL8:
		return value << 8, true
	case SHIFT_SRL1:
		return value >> 1, true
	}
	return value, false
}

// ResolveNext ORs the jump contributions into the next address.
func ResolveNext(next uint16, jump Jump, n, z bool, mbr uint8) uint16 {
	var extra uint16

	if (jump&JUMP_N) != 0 && n {
		extra |= 1 << 8
	}
	if (jump&JUMP_Z) != 0 && z {
		extra |= 1 << 8
	}
	if (jump & JUMP_MBR) != 0 {
		extra |= uint16(mbr)
	}

	return next | extra
}
