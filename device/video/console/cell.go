package console

// ScreenChar is a single text-mode cell. The hardware expects the character
// code at byte 0 and the attribute at byte 1, which is exactly the memory
// layout of this struct; it must not be reordered or extended.
type ScreenChar struct {
	Char  byte
	Color ColorCode
}

// word returns the cell as the 16-bit little-endian value stored in the
// framebuffer.
func (sc ScreenChar) word() uint16 {
	return uint16(sc.Color)<<8 | uint16(sc.Char)
}

func screenCharFromWord(w uint16) ScreenChar {
	return ScreenChar{Char: byte(w), Color: ColorCode(w >> 8)}
}
