// Package console implements the cell model and framebuffer view of the
// 80x25 VGA text console (mode 0x3).
package console

import "vgaos/kernel/mmio"

const (
	// Width is the number of character columns.
	Width = 80

	// Height is the number of character rows.
	Height = 25

	// PhysAddr is the physical address of the text-mode framebuffer.
	PhysAddr uintptr = 0xb8000
)

// Buffer is a view onto a Height x Width text-mode framebuffer. It does not
// own its backing memory; it is bound once to a fixed address and every Read
// and Write is a single 16-bit device access at that cell's offset.
//
// Row and column indices are 0-based and are not bounds-checked: keeping them
// within [0, Height) and [0, Width) is the caller's job.
type Buffer struct {
	regs mmio.Region
}

// NewBuffer returns a Buffer overlaid on the framebuffer at physAddr.
func NewBuffer(physAddr uintptr) Buffer {
	return Buffer{
		regs: mmio.Region{Base: physAddr, Count: Width * Height},
	}
}

// Read returns the cell at (row, col).
func (b Buffer) Read(row, col int) ScreenChar {
	return screenCharFromWord(b.regs.Load(row*Width + col))
}

// Write stores sc at (row, col).
func (b Buffer) Write(row, col int, sc ScreenChar) {
	b.regs.Store(row*Width+col, sc.word())
}

// Fill sets every cell of the framebuffer to sc.
func (b Buffer) Fill(sc ScreenChar) {
	w := sc.word()
	for i := 0; i < b.regs.Count; i++ {
		b.regs.Store(i, w)
	}
}
