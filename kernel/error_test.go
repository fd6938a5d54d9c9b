package kernel

import "testing"

func TestKernelError(t *testing.T) {
	err := &Error{
		Module:  "vga",
		Message: "framebuffer unavailable",
	}

	if err.Error() != err.Message {
		t.Fatalf("expected to err.Error() to return %q; got %q", err.Message, err.Error())
	}

	var iface error = err
	if iface.Error() != "framebuffer unavailable" {
		t.Fatalf("expected error interface to report %q; got %q", err.Message, iface.Error())
	}
}
