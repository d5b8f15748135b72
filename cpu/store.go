package cpu

const (
	STORE_SIZE = 512 // Control store entries.
)

// Store is the control store. It is read-only once loaded.
type Store [STORE_SIZE]Micro

// Fetch returns the microinstruction at a control store address.
func (st *Store) Fetch(addr uint16) (mir Micro, err error) {
	if int(addr) >= len(st) {
		err = &ErrAddress{Err: ErrStoreRange, Offset: uint64(addr), Size: len(st)}
		return
	}

	mir = st[addr]
	return
}
