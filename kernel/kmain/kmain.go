package kmain

import (
	"vgaos/device/video/console"
	"vgaos/kernel"
	"vgaos/kernel/cpu"
	"vgaos/kernel/hal"
	"vgaos/kernel/kfmt"
)

var (
	log = kfmt.Logger{Module: "kmain"}

	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}
)

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. This function is invoked by the rt0 assembly code after
// setting up the GDT and a minimal g0 struct that allows Go code to use the
// stack allocated by the assembly code.
//
// Kmain sets up the VGA text terminal before anything else runs so that every
// later caller, the panic path included, finds the shared writer ready.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain() {
	term := hal.InitTerminal(console.NewBuffer(console.PhysAddr))
	kfmt.SetOutputSink(term)

	kfmt.Printfln("Hello World!")
	log.Printf("text console: %dx%d at 0x%x", console.Width, console.Height, console.PhysAddr)
	log.Printf("nothing left to do; halting")

	cpu.Halt()

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating kfmt.Panic as dead-code and eliminating it.
	kfmt.Panic(errKmainReturned)
}
