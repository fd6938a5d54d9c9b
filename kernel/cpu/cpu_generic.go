//go:build !amd64

package cpu

// Host builds of the kernel packages (tests and the programs under tools/)
// use these on architectures without an assembly port.

// Halt blocks the calling goroutine forever.
func Halt() {
	select {}
}

// Pause is a no-op on this architecture.
func Pause() {}
