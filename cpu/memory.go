package cpu

import (
	"encoding/binary"
)

const (
	WORD_SIZE = 4 // Bytes per memory word.
)

// Memory is the flat main memory. Words are little-endian.
type Memory []byte

func (mem Memory) check(offset uint64, size int) (err error) {
	if offset+uint64(size) > uint64(len(mem)) {
		err = &ErrAddress{Err: ErrMemoryRange, Offset: offset, Size: len(mem)}
	}
	return
}

// Byte reads the byte at a byte address.
func (mem Memory) Byte(addr uint32) (value uint8, err error) {
	err = mem.check(uint64(addr), 1)
	if err != nil {
		return
	}

	value = mem[addr]
	return
}

// Word reads the word at a word address.
func (mem Memory) Word(addr uint32) (value uint32, err error) {
	offset := uint64(addr) * WORD_SIZE
	err = mem.check(offset, WORD_SIZE)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(mem[offset:])
	return
}

// SetWord writes the word at a word address.
func (mem Memory) SetWord(addr uint32, value uint32) (err error) {
	offset := uint64(addr) * WORD_SIZE
	err = mem.check(offset, WORD_SIZE)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(mem[offset:], value)
	return
}

// Load copies data into memory at a byte offset.
func (mem Memory) Load(offset uint64, data []byte) (err error) {
	err = mem.check(offset, len(data))
	if err != nil {
		return
	}

	copy(mem[offset:], data)
	return
}
