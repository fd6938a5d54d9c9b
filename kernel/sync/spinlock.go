// Package sync provides synchronization primitives that work without a
// scheduler.
package sync

import (
	"sync/atomic"

	"vgaos/kernel/cpu"
)

// spinsBeforeYield is the number of failed acquisition attempts after which
// Acquire invokes yieldFn (if set).
const spinsBeforeYield = 64

var (
	// pauseFn is invoked between acquisition attempts.
	pauseFn = cpu.Pause

	// yieldFn lets the lock holder run when the waiter shares its CPU. There
	// is no scheduler to yield to on bare metal so it stays nil there; tests
	// set it to runtime.Gosched.
	yieldFn func()
)

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available. The zero value is an unlocked lock.
//
// Critical sections guarded by a Spinlock must be short and must never block.
// Spinlock is not reentrant: an attempt to re-acquire a lock already held by
// the same flow of execution (e.g. an interrupt handler that printed while the
// interrupted code held the console lock) spins forever.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
func (l *Spinlock) Acquire() {
	for attempts := 0; ; attempts++ {
		if atomic.CompareAndSwapUint32(&l.state, 0, 1) {
			return
		}

		// Spin on a plain load so waiters don't hammer the cache line with
		// locked instructions.
		for atomic.LoadUint32(&l.state) != 0 {
			pauseFn()
			if yieldFn != nil && attempts%spinsBeforeYield == spinsBeforeYield-1 {
				yieldFn()
			}
			attempts++
		}
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.CompareAndSwapUint32(&l.state, 0, 1)
}

// Release relinquishes a held lock allowing other tasks to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
