package console

import (
	"runtime"
	"testing"
	"unsafe"
)

func mockFramebuffer() ([]uint16, Buffer) {
	fb := make([]uint16, Width*Height)
	return fb, NewBuffer(uintptr(unsafe.Pointer(&fb[0])))
}

func TestScreenCharLayout(t *testing.T) {
	if got := unsafe.Sizeof(ScreenChar{}); got != 2 {
		t.Fatalf("expected ScreenChar to occupy 2 bytes; got %d", got)
	}

	if got := unsafe.Offsetof(ScreenChar{}.Color); got != 1 {
		t.Fatalf("expected the attribute to live at byte offset 1; got %d", got)
	}
}

func TestBufferWriteByteOrder(t *testing.T) {
	fb, buf := mockFramebuffer()

	buf.Write(0, 0, ScreenChar{Char: 'H', Color: NewColorCode(Yellow, Blue)})

	// Inspect the raw bytes the hardware would see.
	raw := (*[Width * Height * 2]byte)(unsafe.Pointer(&fb[0]))
	if raw[0] != 'H' {
		t.Fatalf("expected byte 0 to hold the character code; got 0x%02x", raw[0])
	}
	if raw[1] != 0x1e {
		t.Fatalf("expected byte 1 to hold the attribute 0x1e; got 0x%02x", raw[1])
	}

	runtime.KeepAlive(fb)
}

func TestBufferReadWrite(t *testing.T) {
	fb, buf := mockFramebuffer()

	specs := []struct {
		row, col int
		sc       ScreenChar
	}{
		{0, 0, ScreenChar{'a', NewColorCode(White, Black)}},
		{0, Width - 1, ScreenChar{'b', NewColorCode(Red, Green)}},
		{12, 40, ScreenChar{'c', NewColorCode(Cyan, Magenta)}},
		{Height - 1, 0, ScreenChar{'d', NewColorCode(Yellow, Black)}},
		{Height - 1, Width - 1, ScreenChar{0xfe, NewColorCode(Pink, White)}},
	}

	for specIndex, spec := range specs {
		buf.Write(spec.row, spec.col, spec.sc)

		if got := buf.Read(spec.row, spec.col); got != spec.sc {
			t.Errorf("[spec %d] expected to read back %+v; got %+v", specIndex, spec.sc, got)
		}

		exp := uint16(spec.sc.Color)<<8 | uint16(spec.sc.Char)
		if got := fb[spec.row*Width+spec.col]; got != exp {
			t.Errorf("[spec %d] expected framebuffer word 0x%04x; got 0x%04x", specIndex, exp, got)
		}
	}

	runtime.KeepAlive(fb)
}

func TestBufferFill(t *testing.T) {
	fb, buf := mockFramebuffer()
	blank := ScreenChar{Char: ' ', Color: NewColorCode(LightGray, Blue)}

	buf.Fill(blank)

	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if got := buf.Read(row, col); got != blank {
				t.Fatalf("expected cell (%d, %d) to be %+v; got %+v", row, col, blank, got)
			}
		}
	}

	runtime.KeepAlive(fb)
}
