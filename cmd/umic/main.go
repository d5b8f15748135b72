// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	stdio "io"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/umic/emulator"
	"github.com/ezrec/umic/io"
	"github.com/ezrec/umic/monitor"
)

// errUsage is returned for a bad command line, after usage is printed.
var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// run executes the emulator with the command line args. Every exit path
// returns, so deferred cleanup (the profiler) always runs.
func run(name string, args []string, stdin stdio.Reader, stdout stdio.Writer) (err error) {
	var rom string
	var memory uint
	var strict bool
	var limit int
	var halt string
	var quiet bool
	var verbose bool
	var profdir string

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&rom, "r", io.ROM_NAME, "Control store image")
	flags.UintVar(&memory, "m", emulator.MEMORY_SIZE, "Main memory size, in bytes")
	flags.BoolVar(&strict, "s", false, "Strict mode, fault on invalid control signals")
	flags.IntVar(&limit, "n", 0, "Stop after this many cycles (0 for no limit)")
	flags.StringVar(&halt, "halt", "", "Stop when this expression holds, i.e. 'MPC == 0xff'")
	flags.BoolVar(&quiet, "q", false, "Quiet mode, no per-cycle display or pause")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.StringVar(&profdir, "profile", "", "Write a CPU profile to this directory")

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %v [options] <program>\n", name)
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return errUsage
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	program := flags.Arg(0)

	if len(profdir) != 0 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profdir),
			profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	emu := emulator.NewEmulator(memory)
	emu.Verbose = verbose
	emu.Strict = strict
	emu.Limit = limit

	if len(halt) != 0 {
		emu.Halt, err = emulator.NewCondition(halt)
		if err != nil {
			return fmt.Errorf("%v: %w", name, err)
		}
	}

	// Load the control store.
	image := &io.Rom{}
	err = load(rom, image)
	if err != nil {
		return
	}
	emu.LoadRom(image)

	// Load the program.
	prog := &io.Image{Capacity: emu.Capacity()}
	err = load(program, prog)
	if err != nil {
		return
	}
	err = emu.LoadProgram(prog)
	if err != nil {
		return fmt.Errorf("%v: %w", program, err)
	}

	emu.Reset()

	mon := monitor.NewMonitor(stdin, stdout)
	for {
		if !quiet {
			err = mon.Show(&emu.Cpu.State, emu.Cpu.Memory)
			if err != nil {
				return
			}
			err = mon.Wait()
			if errors.Is(err, stdio.EOF) {
				return nil
			}
			if err != nil {
				return
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	// Final state, after a cycle limit or halt condition.
	if quiet {
		_, err = fmt.Fprint(stdout, emu.Cpu.State.String())
	} else {
		err = mon.Show(&emu.Cpu.State, emu.Cpu.Memory)
	}

	return
}

// load reads an image file.
func load(path string, image io.Unmarshaler) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = image.Unmarshal(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}
