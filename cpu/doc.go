// Package cpu implements the microprogrammed datapath of the μMIC system.
//
// A 512 entry control store of 36-bit microinstructions drives a B bus,
// an ALU with N/Z flags and a shifter, a C bus fanning the result out to
// the registers, a memory unit (byte fetch at PC, word read/write at MAR),
// and a next-address resolver that ORs the flags and the fetched byte
// into the next control store address.
package cpu
