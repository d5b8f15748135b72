package io

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ezrec/umic/cpu"
)

const (
	IMAGE_INIT_SIZE   = 20    // Initialization bytes, loaded at offset 0.
	IMAGE_TEXT_OFFSET = 0x401 // Load offset of the program text.
)

// Image is a program image.
//
// The image file is a 32-bit length (IMAGE_INIT_SIZE + len(Text)),
// the initialization bytes, then the program text.
type Image struct {
	Init [IMAGE_INIT_SIZE]byte
	Text []byte

	Capacity uint // Maximum program length accepted by Unmarshal.
}

var _ Unmarshaler = (*Image)(nil)
var _ Marshaler = (*Image)(nil)

// Length returns the program length field of the image.
func (img *Image) Length() uint32 {
	return uint32(IMAGE_INIT_SIZE + len(img.Text))
}

// Unmarshal reads a program image.
func (img *Image) Unmarshal(r io.Reader) (err error) {
	var length uint32
	err = binary.Read(r, binary.LittleEndian, &length)
	if err != nil {
		err = errors.Join(ErrImageHeader, err)
		return
	}

	if length < IMAGE_INIT_SIZE || uint64(length) > uint64(img.Capacity) {
		err = &ErrImageLength{Length: length, Capacity: img.Capacity}
		return
	}

	_, err = io.ReadFull(r, img.Init[:])
	if err != nil {
		err = errors.Join(ErrImageInit, err)
		return
	}

	img.Text = make([]byte, length-IMAGE_INIT_SIZE)
	_, err = io.ReadFull(r, img.Text)
	if err != nil {
		img.Text = nil
		err = errors.Join(ErrImageText, err)
		return
	}

	return
}

// Marshal writes the program image.
func (img *Image) Marshal(w io.Writer) (err error) {
	err = binary.Write(w, binary.LittleEndian, img.Length())
	if err != nil {
		return
	}

	_, err = w.Write(img.Init[:])
	if err != nil {
		return
	}

	_, err = w.Write(img.Text)
	return
}

// Install copies the image into main memory.
func (img *Image) Install(mem cpu.Memory) (err error) {
	err = mem.Load(0, img.Init[:])
	if err != nil {
		err = errors.Join(ErrImageFit, err)
		return
	}

	err = mem.Load(IMAGE_TEXT_OFFSET, img.Text)
	if err != nil {
		err = errors.Join(ErrImageFit, err)
		return
	}

	return
}
