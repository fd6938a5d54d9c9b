package cpu

// Halt disables interrupts and stops instruction execution. Halt never
// returns; a spurious wake-up (NMI) puts the CPU back to sleep.
func Halt()

// Pause hints the CPU that the caller is inside a spin-wait loop.
func Pause()
