package main

import "vgaos/kernel/kmain"

// main makes a dummy call to the actual kernel main entrypoint function. It
// is intentionally defined to prevent the Go compiler from optimizing away the
// real kernel code; the rt0 code jumps straight to kmain.Kmain.
func main() {
	kmain.Kmain()
}
