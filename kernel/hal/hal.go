// Package hal wires the console hardware to the kernel's output path.
package hal

import (
	"vgaos/device/tty"
	"vgaos/device/video/console"
)

//go:generate go run ../../tools/mkcolors -config ../../vga.toml -out colors_gen.go

var (
	vgaWriter tty.Writer

	// activeTerminal is the single shared writer. It lives in package
	// storage so that no allocation is needed to set it up.
	activeTerminal tty.SharedWriter
)

// InitTerminal binds the kernel terminal to the text-mode framebuffer buf
// using the build-time default colors, clears the screen and returns the
// shared writer that all kernel output must go through.
//
// InitTerminal must be called exactly once, at boot, before any other code
// can print; the kernel passes console.NewBuffer(console.PhysAddr).
func InitTerminal(buf console.Buffer) *tty.SharedWriter {
	vgaWriter.AttachTo(buf, DefaultColorCode())
	vgaWriter.Clear()
	activeTerminal.Init(&vgaWriter)

	return &activeTerminal
}

// DefaultColorCode returns the attribute used by the kernel terminal.
func DefaultColorCode() console.ColorCode {
	return console.NewColorCode(DefaultForeground, DefaultBackground)
}
