// Package mmio provides access to memory-mapped device registers.
//
// A plain Go memory access through an unsafe pointer is an ordinary load or
// store as far as the compiler is concerned: it may be cached in a register,
// merged with a neighbouring access or dropped when the value is overwritten
// before being read back. None of that is acceptable for a device window such
// as the VGA text buffer, where every store is a bus transaction. The
// accessors in this package compile to exactly one access of the requested
// width, issued in program order.
package mmio

// Region describes a window of consecutive 16-bit device registers starting
// at physical (identity-mapped) address Base.
type Region struct {
	Base  uintptr
	Count int
}

// Load reads the index-th register of the region. The caller is responsible
// for keeping index within [0, Count).
func (r Region) Load(index int) uint16 {
	return LoadUint16(r.Base + uintptr(index)<<1)
}

// Store writes val to the index-th register of the region. The caller is
// responsible for keeping index within [0, Count).
func (r Region) Store(index int, val uint16) {
	StoreUint16(r.Base+uintptr(index)<<1, val)
}
