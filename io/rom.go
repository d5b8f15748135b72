package io

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ezrec/umic/cpu"
)

const (
	ROM_NAME        = "microprog.rom" // Default control store image file.
	ROM_RECORD_SIZE = 8               // Bytes per microinstruction record.
)

// Rom is a control store image: cpu.STORE_SIZE records of ROM_RECORD_SIZE
// bytes, in control store order.
type Rom struct {
	Store cpu.Store
}

var _ Unmarshaler = (*Rom)(nil)
var _ Marshaler = (*Rom)(nil)

// Unmarshal reads a complete control store image.
func (rom *Rom) Unmarshal(r io.Reader) (err error) {
	err = binary.Read(r, binary.LittleEndian, &rom.Store)
	if err != nil {
		err = errors.Join(ErrRomShort, err)
		return
	}

	return
}

// Marshal writes the control store image.
func (rom *Rom) Marshal(w io.Writer) (err error) {
	return binary.Write(w, binary.LittleEndian, &rom.Store)
}
