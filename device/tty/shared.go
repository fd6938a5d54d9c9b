package tty

import "vgaos/kernel/sync"

// SharedWriter guards a Writer with a spinlock so that it can be used from
// anywhere in the kernel, including the panic path. The zero value must be
// bound to a Writer with Init before use.
//
// Holders of the lock must not print from a context that may have
// interrupted another holder: the lock is not reentrant and such a call
// spins forever.
type SharedWriter struct {
	lock   sync.Spinlock
	writer *Writer
}

// Init binds s to w. Init must run once, before s is shared.
func (s *SharedWriter) Init(w *Writer) {
	s.writer = w
}

// Lock acquires exclusive access to the underlying Writer and returns it. The
// returned Writer must not be used after the matching call to Unlock.
func (s *SharedWriter) Lock() *Writer {
	s.lock.Acquire()
	return s.writer
}

// Unlock releases the lock obtained by Lock.
func (s *SharedWriter) Unlock() {
	s.lock.Release()
}

// Write implements io.Writer. The whole of p is written while holding the
// lock so it appears on screen as one uninterrupted run.
func (s *SharedWriter) Write(p []byte) (int, error) {
	w := s.Lock()
	n, err := w.Write(p)
	s.Unlock()
	return n, err
}
