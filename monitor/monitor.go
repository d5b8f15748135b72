// Package monitor prints the diagnostic view of the μMIC datapath: the
// operand stack, the program area around PC, and every register in
// binary and hexadecimal.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/umic/cpu"
	umio "github.com/ezrec/umic/io"
	"github.com/ezrec/umic/translate"
)

var f = translate.From

const (
	RULE = "========================================\n"

	PROGRAM_BEFORE = 2 // Bytes shown before PC.
	PROGRAM_AFTER  = 3 // Bytes shown after PC.
)

// Monitor is an interactive single-step display.
type Monitor struct {
	Output io.Writer
	Input  *bufio.Reader
}

// NewMonitor creates a monitor reading from in and writing to out.
func NewMonitor(in io.Reader, out io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Output: out,
		Input:  bufio.NewReader(in),
	}

	return
}

// Show writes the stack, program area and registers.
func (mon *Monitor) Show(st *cpu.State, mem cpu.Memory) (err error) {
	var sb strings.Builder

	writeStack(&sb, st, mem)
	writeProgram(&sb, st, mem)
	writeRegisters(&sb, st)

	_, err = io.WriteString(mon.Output, sb.String())
	return
}

// Wait prompts, then blocks until a line of input is read.
// Returns io.EOF once the input is exhausted.
func (mon *Monitor) Wait() (err error) {
	_, err = io.WriteString(mon.Output, f("Press Enter to continue...")+"\n")
	if err != nil {
		return
	}

	line, err := mon.Input.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}

	return
}

// writeStack lists the words from SP down to LV, when both are set.
func writeStack(sb *strings.Builder, st *cpu.State, mem cpu.Memory) {
	if st.Lv == 0 || st.Sp == 0 {
		return
	}

	sb.WriteString("\n\t\t" + f("Operand Stack") + "\n")
	sb.WriteString(RULE)
	sb.WriteString(" " + f("ADDR") + "   \t" + f("Binary value") + "           \t" + f("Value") + "\n")
	// SP and LV compare as signed word addresses.
	for addr := int64(int32(st.Sp)); addr >= int64(int32(st.Lv)); addr-- {
		value, err := mem.Word(uint32(addr))
		if err != nil {
			fmt.Fprintf(sb, "     0x%X \t%v\n", uint32(addr), err)
			break
		}

		switch uint32(addr) {
		case st.Sp:
			sb.WriteString("SP ->")
		case st.Lv:
			sb.WriteString("LV ->")
		default:
			sb.WriteString("     ")
		}

		fmt.Fprintf(sb, "0x%X \t%08b %08b %08b %08b \t%d\n", addr,
			value>>24, (value>>16)&0xff, (value>>8)&0xff, value&0xff,
			int32(value))
	}
	sb.WriteString(RULE)
}

// writeProgram lists the bytes around PC, once PC is in the program text.
func writeProgram(sb *strings.Builder, st *cpu.State, mem cpu.Memory) {
	if st.Pc < umio.IMAGE_TEXT_OFFSET {
		return
	}

	sb.WriteString("\n\t\t" + f("Program Area") + "\n")
	sb.WriteString(RULE)
	sb.WriteString("        " + f("Binary") + "\t\t" + f("HEX") + "\t" + f("Byte address") + "\n")
	for addr := uint64(st.Pc) - PROGRAM_BEFORE; addr <= uint64(st.Pc)+PROGRAM_AFTER; addr++ {
		if addr == uint64(st.Pc) {
			sb.WriteString(f("Running") + " >>\t")
		} else {
			sb.WriteString("\t\t")
		}

		if addr >= uint64(len(mem)) {
			fmt.Fprintf(sb, "-------- ---- \t0x%X\n", addr)
			continue
		}

		value := mem[addr]
		fmt.Fprintf(sb, "%08b 0x%02X \t0x%X\n", value, value, addr)
	}
	sb.WriteString(RULE + "\n")
}

// writeRegisters lists the registers, MPC and MIR.
func writeRegisters(sb *strings.Builder, st *cpu.State) {
	sb.WriteString("\t\t" + f("Registers") + "\n")
	sb.WriteString("\t" + f("Binary") + "\t\t\t\t " + f("HEX") + "\n")

	for name, value := range st.Registers() {
		label := fmt.Sprintf("%-5s", name+":")
		if name == "MBR" {
			fmt.Fprintf(sb, "%v%08b\t\t0x%X\n", label, value, value)
		} else {
			fmt.Fprintf(sb, "%v%032b\t0x%X\n", label, value, value)
		}
	}

	fmt.Fprintf(sb, "%-5s%09b\t0x%X\n", "MPC:", st.Mpc, st.Mpc)
	fmt.Fprintf(sb, "%-5s%v\n", "MIR:", st.Mir.Binary())
}
