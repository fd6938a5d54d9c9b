//go:build !amd64

package mmio

import "unsafe"

// LoadUint16 performs a 16-bit read from addr. This port is only used by host
// builds; keeping the accessor out of line stops the compiler from folding the
// access into its callers.
//
//go:noinline
func LoadUint16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

// StoreUint16 performs a 16-bit write of val to addr.
//
//go:noinline
func StoreUint16(addr uintptr, val uint16) {
	*(*uint16)(unsafe.Pointer(addr)) = val
}
