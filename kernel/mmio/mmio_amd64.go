package mmio

// LoadUint16 performs a single 16-bit read from addr.
func LoadUint16(addr uintptr) uint16

// StoreUint16 performs a single 16-bit write of val to addr.
func StoreUint16(addr uintptr, val uint16)
