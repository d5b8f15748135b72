package io

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/umic/cpu"
)

func TestRom_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, cpu.STORE_SIZE*ROM_RECORD_SIZE)
	binary.LittleEndian.PutUint64(data[0:], 0x0_0000_0001)
	binary.LittleEndian.PutUint64(data[8:], 0xf_ffff_ffff)
	binary.LittleEndian.PutUint64(data[len(data)-8:], 0x8_0000_0000)

	rom := &Rom{}
	err := rom.Unmarshal(bytes.NewReader(data))
	assert.NoError(err)

	assert.Equal(cpu.Micro(1), rom.Store[0])
	assert.Equal(cpu.Micro(0xfffffffff), rom.Store[1])
	assert.Equal(cpu.Micro(0), rom.Store[2])
	assert.Equal(cpu.Micro(0x800000000), rom.Store[cpu.STORE_SIZE-1])
}

func TestRom_Unmarshal_Short(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	err := rom.Unmarshal(bytes.NewReader(make([]byte, cpu.STORE_SIZE*ROM_RECORD_SIZE-1)))
	assert.ErrorIs(err, ErrRomShort)
	assert.ErrorIs(err, io.ErrUnexpectedEOF)

	err = rom.Unmarshal(bytes.NewReader(nil))
	assert.ErrorIs(err, ErrRomShort)
}

func TestRom_Marshal(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	rom.Store[0] = cpu.MakeMicro(cpu.Signals{Alu: cpu.ALU_OP_ONE, C: cpu.C_H, Next: 1})
	rom.Store[511] = cpu.MakeMicro(cpu.Signals{Jump: cpu.JUMP_MBR, Next: 0x100})

	buff := &bytes.Buffer{}
	assert.NoError(rom.Marshal(buff))
	assert.Equal(cpu.STORE_SIZE*ROM_RECORD_SIZE, buff.Len())

	again := &Rom{}
	assert.NoError(again.Unmarshal(buff))
	assert.Equal(rom.Store, again.Store)
}
