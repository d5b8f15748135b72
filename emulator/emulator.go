// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/umic/cpu"
	"github.com/ezrec/umic/internal"
	"github.com/ezrec/umic/io"
)

const (
	MEMORY_SIZE = 100_000_000 // Default main memory size, in bytes.
)

// Emulator state. CPU + control store + main memory, and the stop conditions.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Halt  *Condition // If set, stop once the condition holds after a cycle.
	Limit int        // If nonzero, stop after this many cycles.
}

// NewEmulator creates a new emulator with a main memory of size bytes.
func NewEmulator(size uint) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(size),
	}

	return
}

// environ returns the names and values visible to halt conditions.
func environ(st *cpu.State) iter.Seq2[string, uint32] {
	control := map[string]uint32{
		"MPC":   uint32(st.Mpc),
		"TICKS": uint32(st.Ticks),
	}

	return internal.IterSeq2Concat(st.Registers(), st.Flags(), maps.All(control))
}

// Environ returns an iterator over the current register environment.
func (emu *Emulator) Environ() iter.Seq2[string, uint32] {
	return environ(&emu.Cpu.State)
}

// LoadRom installs a control store image.
func (emu *Emulator) LoadRom(rom *io.Rom) {
	emu.Cpu.Store = rom.Store
}

// LoadProgram installs a program image into main memory.
func (emu *Emulator) LoadProgram(img *io.Image) (err error) {
	return img.Install(emu.Cpu.Memory)
}

// Capacity returns the main memory size in bytes.
func (emu *Emulator) Capacity() uint {
	return uint(len(emu.Cpu.Memory))
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single micro-cycle of the emulator.
// done is set when the cycle limit is reached, or the halt condition holds.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ticks := emu.Cpu.Ticks
	mpc := emu.Cpu.Mpc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: ticks, Mpc: mpc, Err: err}
		}
	}()

	if emu.Limit > 0 && ticks >= emu.Limit {
		if emu.Verbose {
			logrus.WithField("ticks", ticks).Info("emulator: cycle limit")
		}
		done = true
		return
	}

	state, err := emu.Cpu.Step()
	if err != nil {
		return
	}

	if emu.Halt != nil {
		done, err = emu.Halt.Eval(environ(&state))
		if err != nil {
			return
		}
		if done && emu.Verbose {
			logrus.WithFields(logrus.Fields{
				"ticks": state.Ticks,
				"halt":  emu.Halt.Expr,
			}).Info("emulator: halt")
		}
	}

	return
}
