package io

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/umic/cpu"
)

func makeImage(length uint32, body []byte) []byte {
	data := []byte{byte(length), byte(length >> 8), byte(length >> 16), byte(length >> 24)}
	return append(data, body...)
}

func TestImage_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	body := make([]byte, 25)
	for n := range body {
		body[n] = byte(n + 1)
	}

	img := &Image{Capacity: 4096}
	err := img.Unmarshal(bytes.NewReader(makeImage(25, body)))
	assert.NoError(err)
	assert.Equal(body[:20], img.Init[:])
	assert.Equal([]byte{21, 22, 23, 24, 25}, img.Text)
	assert.Equal(uint32(25), img.Length())

	mem := make(cpu.Memory, 4096)
	assert.NoError(img.Install(mem))
	assert.Equal(body[:20], []byte(mem[0:20]))
	assert.Equal(make([]byte, IMAGE_TEXT_OFFSET-20), []byte(mem[20:IMAGE_TEXT_OFFSET]))
	assert.Equal([]byte{21, 22, 23, 24, 25}, []byte(mem[1025:1030]))
	assert.Zero(mem[1030])
}

func TestImage_Unmarshal_Length(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		length uint32
		ok     bool
	}){
		{"19", 19, false},
		{"20", 20, true},
		{"capacity", 64, true},
		{"over", 65, false},
		{"huge", 0xffffffff, false},
	}

	for _, entry := range table {
		img := &Image{Capacity: 64}
		err := img.Unmarshal(bytes.NewReader(makeImage(entry.length, make([]byte, 64))))
		if entry.ok {
			assert.NoError(err, entry.name)
			continue
		}

		var lerr *ErrImageLength
		assert.True(errors.As(err, &lerr), entry.name)
		assert.Equal(entry.length, lerr.Length, entry.name)
	}
}

func TestImage_Unmarshal_Short(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		data []byte
		err  error
	}){
		{"empty", nil, ErrImageHeader},
		{"header", []byte{25, 0}, ErrImageHeader},
		{"init", makeImage(25, make([]byte, 19)), ErrImageInit},
		{"text", makeImage(25, make([]byte, 24)), ErrImageText},
	}

	for _, entry := range table {
		img := &Image{Capacity: 4096}
		err := img.Unmarshal(bytes.NewReader(entry.data))
		assert.ErrorIs(err, entry.err, entry.name)
	}

	img := &Image{Capacity: 4096}
	err := img.Unmarshal(bytes.NewReader(makeImage(30, make([]byte, 25))))
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
	assert.Nil(img.Text)
}

func TestImage_Marshal(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Text: []byte{0x10, 0x20, 0x30}}
	img.Init[0] = 0xaa
	img.Init[19] = 0xbb

	buff := &bytes.Buffer{}
	assert.NoError(img.Marshal(buff))

	data := buff.Bytes()
	assert.Equal([]byte{23, 0, 0, 0}, data[:4])
	assert.Equal(byte(0xaa), data[4])
	assert.Equal(byte(0xbb), data[23])
	assert.Equal([]byte{0x10, 0x20, 0x30}, data[24:])

	again := &Image{Capacity: 1 << 20}
	assert.NoError(again.Unmarshal(buff))
	assert.Equal(img.Init, again.Init)
	assert.Equal(img.Text, again.Text)
}

func TestImage_Install_Fit(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Text: make([]byte, 8)}

	assert.NoError(img.Install(make(cpu.Memory, IMAGE_TEXT_OFFSET+8)))

	err := img.Install(make(cpu.Memory, IMAGE_TEXT_OFFSET+7))
	assert.ErrorIs(err, ErrImageFit)
	assert.ErrorIs(err, cpu.ErrMemoryRange)

	err = img.Install(make(cpu.Memory, 16))
	assert.ErrorIs(err, ErrImageFit)
}
