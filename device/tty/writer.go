// Package tty implements a scrolling text writer on top of the text-mode
// console framebuffer.
package tty

import "vgaos/device/video/console"

// placeholderGlyph is the code page 437 "black square" that stands in for
// bytes that have no printable ASCII glyph.
const placeholderGlyph = byte(0xfe)

// Writer renders a byte stream into a console.Buffer. All output goes to the
// bottom row; when that row fills up (or a '\n' is written) the whole screen
// scrolls up by one line. Writer does not interpret any control character
// other than '\n'.
//
// Writer is not safe for concurrent use; SharedWriter serializes access to it.
type Writer struct {
	buf    console.Buffer
	column int
	color  console.ColorCode
}

// AttachTo binds the writer to buf, sets the color used for subsequent cells
// and moves the cursor to the start of the bottom row. The framebuffer
// contents are left untouched.
func (w *Writer) AttachTo(buf console.Buffer, color console.ColorCode) {
	w.buf = buf
	w.color = color
	w.column = 0
}

// Column returns the cursor column on the bottom row. A value equal to
// console.Width means the row is full and the next byte wraps.
func (w *Writer) Column() int {
	return w.column
}

// ColorCode returns the attribute applied to newly written cells.
func (w *Writer) ColorCode() console.ColorCode {
	return w.color
}

// SetColorCode changes the attribute applied to cells written from now on.
// Cells already on screen keep their colors.
func (w *Writer) SetColorCode(color console.ColorCode) {
	w.color = color
}

// WriteByte implements io.ByteWriter. A '\n' starts a new line; any other
// value is stored verbatim at the cursor, wrapping first if the bottom row is
// full. WriteByte never fails.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.NewLine()
		return nil
	}

	if w.column >= console.Width {
		w.NewLine()
	}

	w.buf.Write(console.Height-1, w.column, console.ScreenChar{Char: b, Color: w.color})
	w.column++
	return nil
}

// WriteString implements io.StringWriter. Printable ASCII bytes (0x20-0x7e)
// and '\n' are passed to WriteByte unchanged; every other byte is replaced by
// a placeholder glyph so the display never shows undefined glyph codes.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(sanitize(s[i]))
	}

	return len(s), nil
}

// Write implements io.Writer with the same byte substitution as WriteString.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.WriteByte(sanitize(b))
	}

	return len(p), nil
}

// NewLine scrolls the screen up by one row, blanks the bottom row using the
// current color and moves the cursor to column 0.
func (w *Writer) NewLine() {
	for row := 1; row < console.Height; row++ {
		for col := 0; col < console.Width; col++ {
			w.buf.Write(row-1, col, w.buf.Read(row, col))
		}
	}

	w.ClearRow(console.Height - 1)
	w.column = 0
}

// ClearRow fills row with blanks in the current color.
func (w *Writer) ClearRow(row int) {
	blank := console.ScreenChar{Char: ' ', Color: w.color}
	for col := 0; col < console.Width; col++ {
		w.buf.Write(row, col, blank)
	}
}

// Clear blanks the whole screen in the current color and moves the cursor to
// column 0.
func (w *Writer) Clear() {
	w.buf.Fill(console.ScreenChar{Char: ' ', Color: w.color})
	w.column = 0
}

func sanitize(b byte) byte {
	if (b >= 0x20 && b <= 0x7e) || b == '\n' {
		return b
	}

	return placeholderGlyph
}
