package kfmt

import (
	"vgaos/kernel"
	"vgaos/kernel/cpu"
)

var (
	// cpuHaltFn is mocked by tests and is automatically inlined by the compiler.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}
)

// Panic outputs the supplied error (if not nil) to the console and halts the
// CPU with interrupts disabled. Calls to Panic never return.
//
// Panic accepts a *kernel.Error, a Go error or a string. The banner is
// printed through the shared terminal, so calling Panic from code that holds
// the terminal lock deadlocks.
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		errRuntimePanic.Message = t
		err = errRuntimePanic
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	w, s := lockOutput()
	Fprintf(w, "\n-----------------------------------\n")
	if err != nil {
		Fprintf(w, "[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	Fprintf(w, "*** kernel panic: system halted ***")
	Fprintf(w, "\n-----------------------------------\n")
	unlockOutput(s)

	cpuHaltFn()
}
